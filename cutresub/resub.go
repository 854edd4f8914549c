package cutresub

import (
	"math"

	"github.com/katalvlaran/lutmap/cutenum"
	"github.com/katalvlaran/lutmap/maprec"
	"github.com/katalvlaran/lutmap/sbjgraph"
)

// Resub runs cut resubstitution under a fixed required-time budget. The
// zero value is ready to use.
type Resub struct{}

// New returns a ready-to-use Resub.
func New() *Resub { return &Resub{} }

// Run resubstitutes cuts in rec in place, returning the number of nodes
// whose cut was actually replaced. rec must already hold a complete
// cover of g (e.g. from areacover or delaycover).
//
// A swap's gain is the change in the realized LUT count itself: nodes
// used only by the node's current cut fall out of the cover when the
// cut is released, and nodes the replacement cut newly references come
// back in; only a strictly positive net reduction is applied, best
// candidate first, ties toward the earlier-enumerated cut. slack bounds
// how far a primary-output driver's required depth may be pushed past
// its current recorded depth: slack == 0 requires every swap to hold
// the current depth exactly; slack > 0 allows required(out) =
// depth+slack; slack < 0 (canonically -1) lifts the depth budget
// entirely, so every swap is accepted purely on LUT count.
func (rs *Resub) Run(g *sbjgraph.Graph, store *cutenum.Store, rec *maprec.Record, slack int) (int, error) {
	reachable := rec.Reachable(g)
	if len(reachable) == 0 {
		return 0, nil
	}

	required := computeRequired(g, rec, reachable, slack)
	refs := countRefs(g, rec, reachable)

	total := 0
	// A full sweep can improve at most len(reachable) nodes once each
	// before converging; cap at that many sweeps as a termination
	// backstop even though in practice convergence happens in 1-2.
	for sweep := 0; sweep < len(reachable)+1; sweep++ {
		changed := false
		for _, v := range g.Logic {
			if refs[v.ID] == 0 {
				continue // not realized under the current cover
			}
			cuts := store.Cuts(v)
			if len(cuts) < 2 {
				return total, ErrNoFeasibleCut
			}
			nonTrivial := cuts[:len(cuts)-1]
			budget, ok := required[v.ID]
			if !ok {
				budget = math.MaxInt
			}

			curSlot, _ := rec.Get(v.ID)
			bestIdx := -1
			bestGain := 0

			for i, cut := range nonTrivial {
				if sameLeaves(cut, curSlot.Cut) {
					continue
				}
				depth, _, feasible := evalCut(rec, cut)
				if !feasible || depth > budget {
					continue
				}
				freed := release(rec, refs, curSlot.Cut, v.ID)
				added := acquire(rec, refs, cut, v.ID)
				gain := freed - added
				// Trial only: restore the reference counts exactly.
				release(rec, refs, cut, v.ID)
				acquire(rec, refs, curSlot.Cut, v.ID)
				if gain > bestGain {
					bestGain = gain
					bestIdx = i
				}
			}

			if bestIdx >= 0 {
				chosen := nonTrivial[bestIdx]
				release(rec, refs, curSlot.Cut, v.ID)
				acquire(rec, refs, chosen, v.ID)
				depth, cost, _ := evalCut(rec, chosen)
				rec.Set(v.ID, maprec.Slot{Cut: chosen, Cost: cost, Depth: depth})
				changed = true
				total++
			}
		}
		if !changed {
			break
		}
	}

	return total, nil
}

// sameLeaves reports whether two cuts name the identical leaf-id
// sequence (leaves are always sorted ascending, so positional equality
// is set equality).
func sameLeaves(a, b cutenum.Cut) bool {
	if len(a.Leaves) != len(b.Leaves) {
		return false
	}
	for i := range a.Leaves {
		if a.Leaves[i].ID != b.Leaves[i].ID {
			return false
		}
	}
	return true
}

// countRefs builds the live reference count of every realized node:
// one reference per primary output naming a logic driver, plus one per
// chosen-cut leaf edge across the realized set. A node is realized
// exactly while its count is positive.
func countRefs(g *sbjgraph.Graph, rec *maprec.Record, reachable []int) map[int]int {
	refs := make(map[int]int, len(reachable))
	for _, out := range g.Outputs {
		if !out.Fanin.IsConst() && out.Fanin.Node.Kind == sbjgraph.KindLogic {
			refs[out.Fanin.Node.ID]++
		}
	}
	for _, id := range reachable {
		slot, ok := rec.Get(id)
		if !ok {
			continue
		}
		for _, leaf := range slot.Cut.Leaves {
			if leaf.ID != id && leaf.Kind == sbjgraph.KindLogic {
				refs[leaf.ID]++
			}
		}
	}
	return refs
}

// release drops one reference from each logic leaf of cut, cascading
// through the chosen cuts of any leaf whose count reaches zero, and
// returns how many LUTs fell out of the cover. Explicit work stack:
// cascade depth follows the cover's own structure, which can be as deep
// as the graph.
func release(rec *maprec.Record, refs map[int]int, cut cutenum.Cut, rootID int) int {
	freed := 0
	var stack []*sbjgraph.Node
	for _, leaf := range cut.Leaves {
		if leaf.ID != rootID && leaf.Kind == sbjgraph.KindLogic {
			stack = append(stack, leaf)
		}
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		refs[n.ID]--
		if refs[n.ID] > 0 {
			continue
		}
		freed++
		if slot, ok := rec.Get(n.ID); ok {
			for _, leaf := range slot.Cut.Leaves {
				if leaf.ID != n.ID && leaf.Kind == sbjgraph.KindLogic {
					stack = append(stack, leaf)
				}
			}
		}
	}
	return freed
}

// acquire is release's inverse: it adds one reference to each logic
// leaf of cut, pulling any previously-unrealized leaf (count zero) back
// into the cover through its recorded cut, and returns how many LUTs
// the cover grew by.
func acquire(rec *maprec.Record, refs map[int]int, cut cutenum.Cut, rootID int) int {
	added := 0
	var stack []*sbjgraph.Node
	for _, leaf := range cut.Leaves {
		if leaf.ID != rootID && leaf.Kind == sbjgraph.KindLogic {
			stack = append(stack, leaf)
		}
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if refs[n.ID] == 0 {
			added++
			if slot, ok := rec.Get(n.ID); ok {
				for _, leaf := range slot.Cut.Leaves {
					if leaf.ID != n.ID && leaf.Kind == sbjgraph.KindLogic {
						stack = append(stack, leaf)
					}
				}
			}
		}
		refs[n.ID]++
	}
	return added
}

// evalCut computes a candidate cut's depth and bookkeeping cost from
// the leaf slots currently recorded in rec (cost is 1 plus the sum of
// each leaf's own recorded cost, depth is 1 plus the deepest leaf). A
// leaf with no recorded slot makes the candidate infeasible.
func evalCut(rec *maprec.Record, cut cutenum.Cut) (depth int, cost float64, feasible bool) {
	cost = 1
	for _, leaf := range cut.Leaves {
		if leaf.Kind == sbjgraph.KindInput {
			continue
		}
		s, ok := rec.Get(leaf.ID)
		if !ok {
			return 0, math.Inf(1), false
		}
		cost += s.Cost
		if s.Depth > depth {
			depth = s.Depth
		}
	}
	return depth + 1, cost, true
}

// computeRequired derives, once, a frozen required-depth budget for
// every node in reachable: primary-output drivers are budgeted at their
// current recorded depth plus slack (or unconstrained when slack < 0),
// and every node's budget propagates down through the CURRENT (pre-pass)
// chosen cuts. Resub never recomputes this map once a sweep starts.
func computeRequired(g *sbjgraph.Graph, rec *maprec.Record, reachable []int, slack int) map[int]int {
	required := make(map[int]int, len(reachable))
	for _, out := range g.Outputs {
		if out.Fanin.IsConst() || out.Fanin.Node.Kind != sbjgraph.KindLogic {
			continue
		}
		driver := out.Fanin.Node
		if s, ok := rec.Get(driver.ID); ok {
			budget := s.Depth + slack
			if slack < 0 {
				budget = math.MaxInt
			}
			// A node referenced by several outputs must satisfy the
			// tightest of their depths, so budgets combine by minimum.
			if cur, exists := required[driver.ID]; !exists || budget < cur {
				required[driver.ID] = budget
			}
		}
	}

	// Process in decreasing id order so every consumer has already
	// propagated its requirement down before a node's own budget is
	// read back out by its fanins.
	for i := len(g.Logic) - 1; i >= 0; i-- {
		v := g.Logic[i]
		req, ok := required[v.ID]
		if !ok {
			continue
		}
		slot, ok := rec.Get(v.ID)
		if !ok {
			continue
		}
		for _, leaf := range slot.Cut.Leaves {
			if leaf.Kind != sbjgraph.KindLogic || leaf.ID == v.ID {
				continue
			}
			propose := req - 1
			// A node shared by several consumers must satisfy the
			// tightest of their proposals, so budgets combine by minimum.
			if cur, exists := required[leaf.ID]; !exists || propose < cur {
				required[leaf.ID] = propose
			}
		}
	}

	return required
}
