package delaycover

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lutmap/areacover"
	"github.com/katalvlaran/lutmap/cutenum"
	"github.com/katalvlaran/lutmap/maprec"
	"github.com/katalvlaran/lutmap/sbjgraph"
)

// TestBackwardCombinesRequiredDepthByMinimumAcrossConsumers hand-crafts
// Pareto fronts (bypassing forward) for a shared node s consumed by two
// siblings p1 and p2. Both sit one level below p, so each receives p's
// budget less one (2) and proposes 1 to s, even though p2's own front
// only offers a point deeper than its budget. s's own front offers a
// shallow-expensive point (depth 1, area 10) and a deep-cheap point
// (depth 3, area 2); the combined budget of 1 forces backward to settle
// on the shallow point instead of the cheaper but too-deep one.
func TestBackwardCombinesRequiredDepthByMinimumAcrossConsumers(t *testing.T) {
	r := require.New(t)

	b := sbjgraph.NewBuilder()
	x := b.AddInput("x", nil)
	y := b.AddInput("y", nil)
	sH := b.AddAnd(x, y)
	p1H := b.AddAnd(sH, x)
	p2H := b.AddAnd(sH, y)
	pH := b.AddAnd(p1H, p2H)
	b.AddOutput("out", pH, nil)
	g, err := b.Build()
	r.NoError(err)

	s, p1, p2, p := sH.Node, p1H.Node, p2H.Node, pH.Node
	xn, yn := x.Node, y.Node

	fronts := map[int]Front{
		xn.ID: {{Depth: 0, Area: 0, Cut: cutenum.Cut{Root: xn, Leaves: []*sbjgraph.Node{xn}}}},
		yn.ID: {{Depth: 0, Area: 0, Cut: cutenum.Cut{Root: yn, Leaves: []*sbjgraph.Node{yn}}}},
		s.ID: {
			{Depth: 1, Area: 10, Cut: cutenum.Cut{Root: s}},
			{Depth: 3, Area: 2, Cut: cutenum.Cut{Root: s}},
		},
		p1.ID: {{Depth: 2, Area: 1, Cut: cutenum.Cut{Root: p1, Leaves: []*sbjgraph.Node{s, xn}}}},
		p2.ID: {{Depth: 4, Area: 1, Cut: cutenum.Cut{Root: p2, Leaves: []*sbjgraph.Node{s, yn}}}},
		p.ID:  {{Depth: 3, Area: 1, Cut: cutenum.Cut{Root: p, Leaves: []*sbjgraph.Node{p1, p2}}}},
	}

	rec := maprec.New(g.MaxID())
	c := New(areacover.Fanout)
	c.backward(g, fronts, rec, 0)

	slot, ok := rec.Get(s.ID)
	r.True(ok)
	r.Equal(1, slot.Depth, "s's combined budget must be 1, the proposal of both p1 and p2")
	r.Equal(10.0, slot.Cost, "budget 1 only admits the shallow, more expensive front point")
}

// TestCombineFrontsProducesEveryDepthDistinctCombination exercises
// combineFronts directly against two hand-built fronts, each offering a
// shallow-expensive and a deep-cheap point, confirming the lock-step
// merge yields a point at each of the three distinct max-depths (1, 2,
// 3) rather than only combining each side's shallowest representative.
func TestCombineFrontsProducesEveryDepthDistinctCombination(t *testing.T) {
	r := require.New(t)

	a := Front{{Depth: 1, Area: 5}, {Depth: 2, Area: 3}}
	b := Front{{Depth: 1, Area: 4}, {Depth: 3, Area: 1}}

	got := combineFronts(a, b)

	byDepth := make(map[int]float64, len(got))
	for _, p := range got {
		byDepth[p.Depth] = p.Area
	}

	r.Equal(9.0, byDepth[1], "depth 1: a's shallow (5) + b's shallow (4)")
	r.Equal(7.0, byDepth[2], "depth 2: a's deep point (3) + b's still-shallow point (4)")
	r.Equal(4.0, byDepth[3], "depth 3: a's deep point (3) + b's deep point (1)")
}

// TestBackwardWithNegativeSlackIgnoresDepthBudget confirms slack < 0
// lifts the required-depth constraint entirely: backward must pick the
// minimum-area front point at every node regardless of depth, even when
// that point is deeper than the slack-0 critical depth.
func TestBackwardWithNegativeSlackIgnoresDepthBudget(t *testing.T) {
	r := require.New(t)

	b := sbjgraph.NewBuilder()
	x := b.AddInput("x", nil)
	y := b.AddInput("y", nil)
	vH := b.AddAnd(x, y)
	b.AddOutput("out", vH, nil)
	g, err := b.Build()
	r.NoError(err)

	xn, yn, v := x.Node, y.Node, vH.Node

	fronts := map[int]Front{
		xn.ID: {{Depth: 0, Area: 0, Cut: cutenum.Cut{Root: xn, Leaves: []*sbjgraph.Node{xn}}}},
		yn.ID: {{Depth: 0, Area: 0, Cut: cutenum.Cut{Root: yn, Leaves: []*sbjgraph.Node{yn}}}},
		v.ID: {
			{Depth: 1, Area: 10, Cut: cutenum.Cut{Root: v}},
			{Depth: 5, Area: 1, Cut: cutenum.Cut{Root: v}},
		},
	}

	rec := maprec.New(g.MaxID())
	c := New(areacover.Fanout)
	c.backward(g, fronts, rec, -1)

	slot, ok := rec.Get(v.ID)
	r.True(ok)
	r.Equal(5, slot.Depth, "unconstrained slack must pick the cheapest point regardless of its depth")
	r.Equal(1.0, slot.Cost)
}
