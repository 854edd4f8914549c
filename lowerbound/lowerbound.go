package lowerbound

import "github.com/katalvlaran/lutmap/sbjgraph"

// Compute returns the number of fanout-1-contracted cones among g's
// PO-reachable logic nodes (an optimistic LUT count that ignores K and
// does not account for duplicating shared logic), and the reachable
// logic node count it was computed over.
func Compute(g *sbjgraph.Graph) (bound int, reachableNodes int) {
	d, reachable := cones(g)
	if len(reachable) == 0 {
		return 0, 0
	}
	roots := make(map[int]struct{}, len(reachable))
	for id := range reachable {
		roots[d.find(id)] = struct{}{}
	}
	return len(roots), len(reachable)
}

// ConeSizes returns, for every PO-reachable logic node, the size of the
// single-output cone it belongs to under the same fanout-1 grouping
// Compute counts the roots of. Nodes outside every output's fanin cone
// are absent from the result.
func ConeSizes(g *sbjgraph.Graph) map[int]int {
	d, reachable := cones(g)
	bySet := make(map[int]int, len(reachable))
	for id := range reachable {
		bySet[d.find(id)]++
	}
	out := make(map[int]int, len(reachable))
	for id := range reachable {
		out[id] = bySet[d.find(id)]
	}
	return out
}

// cones groups the PO-reachable logic nodes into single-output cones: a
// fanin edge is contracted exactly when the fanin has one fanout, so
// every resulting set is a maximal cone a single LUT could plausibly
// absorb whole.
func cones(g *sbjgraph.Graph) (*dsu, map[int]struct{}) {
	reachable := poReachableLogic(g)
	d := newDSU(g.MaxID())
	for id := range reachable {
		v := g.Node(id)
		for _, h := range [2]sbjgraph.Handle{v.Fanin0, v.Fanin1} {
			if h.IsConst() || h.Node.Kind != sbjgraph.KindLogic {
				continue
			}
			if _, ok := reachable[h.Node.ID]; !ok {
				continue
			}
			if h.Node.FanoutCount() == 1 {
				d.union(v.ID, h.Node.ID)
			}
		}
	}
	return d, reachable
}

// poReachableLogic returns the set of logic node ids reachable, through
// fanin edges, from at least one primary output (iterative, explicit
// work-stack traversal to avoid recursion depth on deep graphs).
func poReachableLogic(g *sbjgraph.Graph) map[int]struct{} {
	seen := make(map[int]struct{})
	var stack []*sbjgraph.Node
	for _, out := range g.Outputs {
		if !out.Fanin.IsConst() {
			stack = append(stack, out.Fanin.Node)
		}
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Kind != sbjgraph.KindLogic {
			continue
		}
		if _, ok := seen[n.ID]; ok {
			continue
		}
		seen[n.ID] = struct{}{}
		for _, h := range [2]sbjgraph.Handle{n.Fanin0, n.Fanin1} {
			if !h.IsConst() {
				stack = append(stack, h.Node)
			}
		}
	}
	return seen
}
