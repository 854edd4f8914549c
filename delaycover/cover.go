package delaycover

import (
	"math"
	"sort"

	"github.com/katalvlaran/lutmap/areacover"
	"github.com/katalvlaran/lutmap/cutenum"
	"github.com/katalvlaran/lutmap/maprec"
	"github.com/katalvlaran/lutmap/sbjgraph"
)

// Cover runs depth-then-area covering under a fixed leaf-weighting
// policy. The zero value is not usable; construct with New.
type Cover struct {
	policy areacover.Policy
}

// New builds a Cover whose area accumulation weights each cut leaf with
// the given areacover policy, the same way area-oriented covering does.
func New(policy areacover.Policy) *Cover {
	return &Cover{policy: policy}
}

// Run covers every PO-reachable logic node of g, recording the chosen
// cut, cost, and depth into rec. rec must be sized for g
// (maprec.New(g.MaxID())). slack bounds how far backward may push a
// node's required depth past the slack-0 minimum (D*): slack == 0
// enforces the minimum depth exactly; slack > 0 allows required(out) =
// D*+slack at every output; slack < 0 (canonically -1) lifts the
// required-depth budget entirely, so backward always picks the
// minimum-area front point regardless of depth.
func (c *Cover) Run(g *sbjgraph.Graph, store *cutenum.Store, rec *maprec.Record, slack int) error {
	fronts, err := c.forward(g, store)
	if err != nil {
		return err
	}
	c.backward(g, fronts, rec, slack)
	return nil
}

// identityFront is the fold seed for combineFronts: combining it with
// any front f yields f itself (Depth/Area both already at f's values).
var identityFront = Front{{Depth: 0, Area: 0}}

// forward builds every logic node's Pareto front bottom-up. A cut's
// front is the fold, across its leaves in order, of combineFronts: every
// leaf's full front (not just its shallowest point) participates, so the
// front discovers every depth-distinct (max-depth, total-area)
// combination a leaf's deeper-but-cheaper alternatives can produce. Each
// leaf's area enters the fold scaled by its areacover.LeafWeights
// weight, so a shared leaf's area is split across its consumers here
// exactly as in area-oriented covering.
func (c *Cover) forward(g *sbjgraph.Graph, store *cutenum.Store) (map[int]Front, error) {
	fronts := make(map[int]Front, g.MaxID())
	for _, n := range g.Inputs {
		fronts[n.ID] = Front{{Depth: 0, Area: 0, Cut: store.Cuts(n)[0]}}
	}

	leafFront := func(n *sbjgraph.Node) (Front, bool) {
		if n.Kind == sbjgraph.KindInput {
			return fronts[n.ID], true
		}
		f, ok := fronts[n.ID]
		return f, ok && len(f) > 0
	}

	for _, v := range g.Logic {
		cuts := store.Cuts(v)
		if len(cuts) < 2 {
			return nil, ErrNoFeasibleCut
		}
		nonTrivial := cuts[:len(cuts)-1]

		var front Front
		for _, cut := range nonTrivial {
			weights := areacover.LeafWeights(c.policy, cut)
			combined := identityFront
			feasible := true
			for j, leaf := range cut.Leaves {
				lf, ok := leafFront(leaf)
				if !ok {
					feasible = false
					break
				}
				combined = combineFronts(combined, scaleArea(lf, weights[j]))
				if combined == nil {
					feasible = false
					break
				}
			}
			if !feasible {
				continue
			}
			for _, p := range combined {
				front = append(front, Point{Depth: p.Depth + 1, Area: p.Area + 1, Cut: cut})
			}
		}
		if len(front) == 0 {
			return nil, ErrNoFeasibleCut
		}
		fronts[v.ID] = prune(front)
	}

	return fronts, nil
}

// scaleArea applies one leaf's weight to every point of its front.
// Ordering and dominance are preserved: the weight is strictly positive,
// so scaling never reorders areas.
func scaleArea(f Front, w float64) Front {
	out := make(Front, len(f))
	for i, p := range f {
		out[i] = Point{Depth: p.Depth, Area: w * p.Area, Cut: p.Cut}
	}
	return out
}

// combineFronts composes two Pareto fronts (each sorted ascending by
// Depth, Area strictly decreasing as Depth increases) into the front of
// their (max-depth, summed-area) combinations, walking both in lock
// step: at each step it records the current pair, then advances
// whichever pointer holds the smaller Depth (ties advance a, then
// exhausts b), since advancing the shallower side is the only move that
// can expose a new, larger depth value overall. Returns nil if either
// front is empty (the combination is infeasible).
func combineFronts(a, b Front) Front {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make(Front, 0, len(a)+len(b))
	ai, bi := 0, 0
	for {
		depth := a[ai].Depth
		if b[bi].Depth > depth {
			depth = b[bi].Depth
		}
		out = append(out, Point{Depth: depth, Area: a[ai].Area + b[bi].Area})

		atEndA := ai == len(a)-1
		atEndB := bi == len(b)-1
		if atEndA && atEndB {
			break
		}
		switch {
		case atEndA:
			bi++
		case atEndB:
			ai++
		case a[ai].Depth <= b[bi].Depth:
			ai++
		default:
			bi++
		}
	}
	return prune(out)
}

// backward assigns a required-depth budget starting from the global
// critical depth at the primary outputs plus slack, walking nodes in
// reverse topological order so every consumer has already propagated
// its requirement before a node picks its final, area-minimal point.
func (c *Cover) backward(g *sbjgraph.Graph, fronts map[int]Front, rec *maprec.Record, slack int) {
	for _, n := range g.Inputs {
		rec.Set(n.ID, maprec.Slot{Cut: fronts[n.ID][0].Cut, Cost: 0, Depth: 0})
	}

	required := make(map[int]int, g.MaxID())
	globalDepth := 0
	for _, out := range g.Outputs {
		if out.Fanin.IsConst() {
			continue
		}
		driver := out.Fanin.Node
		f := fronts[driver.ID]
		if len(f) > 0 && f.Best().Depth > globalDepth {
			globalDepth = f.Best().Depth
		}
	}
	target := globalDepth + slack
	if slack < 0 {
		target = math.MaxInt
	}
	for _, out := range g.Outputs {
		if out.Fanin.IsConst() {
			continue
		}
		driver := out.Fanin.Node
		if cur, ok := required[driver.ID]; !ok || target > cur {
			required[driver.ID] = target
		}
	}

	for i := len(g.Logic) - 1; i >= 0; i-- {
		v := g.Logic[i]
		req, reached := required[v.ID]
		if !reached {
			continue
		}
		f := fronts[v.ID]
		chosen := f.UnderBudget(req)
		rec.Set(v.ID, maprec.Slot{Cut: chosen.Cut, Cost: chosen.Area, Depth: chosen.Depth})

		for _, leaf := range chosen.Cut.Leaves {
			if leaf.Kind != sbjgraph.KindLogic {
				continue
			}
			// Leaves inherit the node's own budget less one level, not
			// the chosen point's depth less one: unspent slack stays
			// available downstream for cheaper, deeper alternatives.
			propose := req - 1
			if req == math.MaxInt {
				propose = math.MaxInt
			}
			// A node shared by several consumers must satisfy the
			// tightest of their proposals, so budgets combine by minimum.
			if cur, ok := required[leaf.ID]; !ok || propose < cur {
				required[leaf.ID] = propose
			}
		}
	}
}

// prune keeps only the non-dominated points of front: sorted ascending
// by depth, a point survives only if its area strictly improves on
// every shallower survivor.
func prune(front Front) Front {
	sort.Slice(front, func(i, j int) bool {
		if front[i].Depth != front[j].Depth {
			return front[i].Depth < front[j].Depth
		}
		return front[i].Area < front[j].Area
	})
	out := make(Front, 0, len(front))
	minArea := math.Inf(1)
	for _, p := range front {
		if p.Area < minArea {
			out = append(out, p)
			minArea = p.Area
		}
	}
	return out
}
