package areacover

import (
	"math"
	"sort"

	"github.com/katalvlaran/lutmap/cutenum"
	"github.com/katalvlaran/lutmap/maprec"
	"github.com/katalvlaran/lutmap/sbjgraph"
)

// Run covers every logic node of g, recording the chosen cut and its
// cost/depth into rec. rec must be sized for g (maprec.New(g.MaxID())).
func (c *Cover) Run(g *sbjgraph.Graph, store *cutenum.Store, rec *maprec.Record) error {
	return c.run(g, store, rec, nil)
}

// RunWithBoundary behaves like Run, except every node in boundary has its
// cost treated as zero when it is used as a leaf by some other node's
// candidate cut (the node still receives its own best cut and true
// cost, recorded in rec as usual; only its contribution to OTHER nodes'
// totals is pinned to zero).
func (c *Cover) RunWithBoundary(g *sbjgraph.Graph, store *cutenum.Store, rec *maprec.Record, boundary []*sbjgraph.Node) error {
	set := make(map[int]struct{}, len(boundary))
	for _, n := range boundary {
		set[n.ID] = struct{}{}
	}
	return c.run(g, store, rec, set)
}

func (c *Cover) run(g *sbjgraph.Graph, store *cutenum.Store, rec *maprec.Record, boundary map[int]struct{}) error {
	for _, n := range g.Inputs {
		rec.Set(n.ID, maprec.Slot{Cut: store.Cuts(n)[0], Cost: 0, Depth: 0})
	}

	leafCost := func(n *sbjgraph.Node) float64 {
		if n.Kind == sbjgraph.KindInput {
			return 0
		}
		if boundary != nil {
			if _, pinned := boundary[n.ID]; pinned {
				return 0
			}
		}
		s, ok := rec.Get(n.ID)
		if !ok {
			return math.Inf(1)
		}
		return s.Cost
	}

	leafDepth := func(n *sbjgraph.Node) int {
		s, ok := rec.Get(n.ID)
		if !ok {
			return 0
		}
		return s.Depth
	}

	for _, v := range g.Logic {
		cuts := store.Cuts(v)
		if len(cuts) < 2 {
			return ErrNoFeasibleCut
		}
		nonTrivial := cuts[:len(cuts)-1]

		bestIdx := -1
		bestCost := math.Inf(1)
		bestDepth := 0
		for i, cut := range nonTrivial {
			weights := LeafWeights(c.policy, cut)
			sum := 0.0
			depth := 0
			feasible := true
			for j, leaf := range cut.Leaves {
				lc := leafCost(leaf)
				if math.IsInf(lc, 1) {
					feasible = false
					break
				}
				sum += weights[j] * lc
				if d := leafDepth(leaf); d > depth {
					depth = d
				}
			}
			if !feasible {
				continue
			}
			total := 1 + sum
			if total < bestCost {
				bestCost = total
				bestIdx = i
				bestDepth = depth + 1
			}
		}
		if bestIdx == -1 {
			return ErrNoFeasibleCut
		}
		rec.Set(v.ID, maprec.Slot{Cut: nonTrivial[bestIdx], Cost: bestCost, Depth: bestDepth})
	}

	return nil
}

// LeafWeights returns, parallel to cut.Leaves, the per-leaf weight p
// applies before summing leaf costs into a candidate's total. Exported
// because delaycover accumulates a cut's area with the same weighting.
func LeafWeights(p Policy, cut cutenum.Cut) []float64 {
	if p == Flow {
		return flowWeights(cut)
	}
	w := make([]float64, len(cut.Leaves))
	for i, leaf := range cut.Leaves {
		fc := leaf.FanoutCount()
		if fc == 0 {
			fc = 1
		}
		w[i] = 1.0 / float64(fc)
	}
	return w
}

// flowWeights computes, for one candidate cut, the share of one unit of
// flow entering cut.Root that reaches each leaf: the flow leaving every
// internal (non-leaf) node is divided, per fanin, by that fanin's fanout
// count, summing contributions when the cone reconverges inside the cut.
func flowWeights(cut cutenum.Cut) []float64 {
	leafIdx := make(map[int]int, len(cut.Leaves))
	for i, l := range cut.Leaves {
		leafIdx[l.ID] = i
	}
	w := make([]float64, len(cut.Leaves))

	if cut.IsTrivial() {
		if i, ok := leafIdx[cut.Root.ID]; ok {
			w[i] = 1
		}
		return w
	}

	// Collect interior (non-leaf) nodes of the cone via backward
	// traversal from Root, stopping at any leaf or constant.
	interior := map[int]*sbjgraph.Node{cut.Root.ID: cut.Root}
	stack := []*sbjgraph.Node{cut.Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, h := range [2]sbjgraph.Handle{n.Fanin0, n.Fanin1} {
			if h.IsConst() {
				continue
			}
			if _, isLeaf := leafIdx[h.Node.ID]; isLeaf {
				continue
			}
			if _, seen := interior[h.Node.ID]; seen {
				continue
			}
			interior[h.Node.ID] = h.Node
			stack = append(stack, h.Node)
		}
	}

	order := make([]*sbjgraph.Node, 0, len(interior))
	for _, n := range interior {
		order = append(order, n)
	}
	sort.Slice(order, func(i, j int) bool { return order[i].ID > order[j].ID })

	flow := make(map[int]float64, len(interior))
	flow[cut.Root.ID] = 1

	for _, n := range order {
		f := flow[n.ID]
		if f == 0 {
			continue
		}
		for _, h := range [2]sbjgraph.Handle{n.Fanin0, n.Fanin1} {
			if h.IsConst() {
				continue
			}
			fc := h.Node.FanoutCount()
			if fc == 0 {
				fc = 1
			}
			share := f / float64(fc)
			if i, isLeaf := leafIdx[h.Node.ID]; isLeaf {
				w[i] += share
				continue
			}
			flow[h.Node.ID] += share
		}
	}

	return w
}
