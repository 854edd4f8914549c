package delaycover_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lutmap/areacover"
	"github.com/katalvlaran/lutmap/cutenum"
	"github.com/katalvlaran/lutmap/delaycover"
	"github.com/katalvlaran/lutmap/maprec"
	"github.com/katalvlaran/lutmap/sbjbuilder"
)

func TestCoverTinyAndDepthOne(t *testing.T) {
	r := require.New(t)
	g := sbjbuilder.TinyAnd()
	store, err := cutenum.Enumerate(g, 3)
	r.NoError(err)

	rec := maprec.New(g.MaxID())
	r.NoError(delaycover.New(areacover.Fanout).Run(g, store, rec, 0))

	y := g.Logic[1]
	slot, ok := rec.Get(y.ID)
	r.True(ok)
	r.Equal(1, slot.Depth)
	r.Equal(3, slot.Cut.Size())
}

func TestCoverBalancedTreeDepthMatchesLevels(t *testing.T) {
	r := require.New(t)
	g := sbjbuilder.BalancedAndTree(3) // 8 inputs, 3 levels of 2-input ANDs
	store, err := cutenum.Enumerate(g, 2)
	r.NoError(err)

	rec := maprec.New(g.MaxID())
	r.NoError(delaycover.New(areacover.Fanout).Run(g, store, rec, 0))

	root := g.Logic[len(g.Logic)-1]
	slot, ok := rec.Get(root.ID)
	r.True(ok)
	r.Equal(3, slot.Depth, "K=2 forces one LUT level per AND level")
}

func TestCoverReconvergentXorFeasible(t *testing.T) {
	r := require.New(t)
	g := sbjbuilder.ReconvergentXor()
	store, err := cutenum.Enumerate(g, 3)
	r.NoError(err)

	rec := maprec.New(g.MaxID())
	r.NoError(delaycover.New(areacover.Fanout).Run(g, store, rec, 0))

	// Only nodes reached from the outputs through chosen cuts are
	// recorded; with K=3 the root's {a,b,c} cut absorbs t1 and t2.
	reachable := rec.Reachable(g)
	r.NotEmpty(reachable)
	for _, id := range reachable {
		slot, ok := rec.Get(id)
		r.True(ok, "node %d uncovered", id)
		r.False(slot.Cut.IsTrivial())
	}
}

// TestCoverSharedLeafAreaIsFanoutDiscounted covers y1 = (a AND b) AND c
// and y2 = (a AND b) AND d under K=2, where both roots must use the
// shared ab node as a cut leaf: ab's area enters each consumer's total
// split by its fanout of 2, so y1's recorded area is 1 + 0.5*1 rather
// than an undiscounted 1 + 1.
func TestCoverSharedLeafAreaIsFanoutDiscounted(t *testing.T) {
	r := require.New(t)
	g := sbjbuilder.MultiOutputSharing()
	store, err := cutenum.Enumerate(g, 2)
	r.NoError(err)

	rec := maprec.New(g.MaxID())
	r.NoError(delaycover.New(areacover.Fanout).Run(g, store, rec, 0))

	y1 := g.Logic[1]
	slot, ok := rec.Get(y1.ID)
	r.True(ok)
	r.InDelta(1.5, slot.Cost, 1e-9, "ab's area must be split across its two consumers")
}

// TestCoverFlowPolicyFeasible runs delay covering under the flow
// weighting policy end to end, confirming the policy parameter reaches
// the area accumulation without breaking feasibility.
func TestCoverFlowPolicyFeasible(t *testing.T) {
	r := require.New(t)
	g := sbjbuilder.MultiOutputSharing()
	store, err := cutenum.Enumerate(g, 2)
	r.NoError(err)

	rec := maprec.New(g.MaxID())
	r.NoError(delaycover.New(areacover.Flow).Run(g, store, rec, 0))

	for _, v := range g.Logic {
		slot, ok := rec.Get(v.ID)
		r.True(ok, "node %d uncovered", v.ID)
		r.False(slot.Cut.IsTrivial())
	}
}
