package cutenum

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lutmap/sbjgraph"
)

// Enumerate populates a fresh Store with every K-feasible cut of every
// node in g.Logic, plus the trivial cut for every input and logic node
// Cuts within one node's list appear in increasing
// leaf-set size with the trivial cut last, and contain no duplicate leaf
// sets under set-equality. Re-running with a different K is simply a
// fresh call: Store carries no state across calls.
//
// Complexity: O(sum over logic nodes of |cuts(a)|*|cuts(b)|), the
// standard bottom-up merge cost; bounded in practice by K since cuts
// larger than K are discarded immediately.
func Enumerate(g *sbjgraph.Graph, k int) (*Store, error) {
	if k < 2 || k > 16 {
		return nil, ErrInvalidK
	}

	s := &Store{k: k, perNode: make([][]Cut, g.MaxID())}

	for _, n := range g.Inputs {
		s.perNode[n.ID] = []Cut{s.trivialCut(n)}
	}

	for _, v := range g.Logic {
		seen := make(map[string]struct{})
		var list []Cut

		addIfNew := func(leaves []*sbjgraph.Node) {
			key := leafKey(leaves)
			if _, dup := seen[key]; dup {
				return
			}
			seen[key] = struct{}{}
			start := len(s.arena)
			s.arena = append(s.arena, leaves...)
			list = append(list, Cut{Root: v, Leaves: s.arena[start : start+len(leaves)]})
		}

		cutsA := s.cutsOfHandle(v.Fanin0)
		cutsB := s.cutsOfHandle(v.Fanin1)
		for _, ca := range cutsA {
			for _, cb := range cutsB {
				merged := sortedMergeByID(ca.Leaves, cb.Leaves)
				if len(merged) <= k {
					addIfNew(merged)
				}
			}
		}

		// Enumeration order from the ca x cb nested loop does not imply
		// increasing leaf-set size; sort stably so ties keep their
		// enumeration order.
		sort.SliceStable(list, func(i, j int) bool { return len(list[i].Leaves) < len(list[j].Leaves) })

		// Trivial cut is always last, even if already present in list
		// by coincidence (a single-leaf non-trivial cut can equal {v}
		// only if v itself were its own fanin, which Build forbids).
		list = append(list, s.trivialCut(v))
		s.perNode[v.ID] = list
	}

	return s, nil
}

// trivialCut builds (and arena-backs) the singleton cut {n}.
func (s *Store) trivialCut(n *sbjgraph.Node) Cut {
	start := len(s.arena)
	s.arena = append(s.arena, n)
	return Cut{Root: n, Leaves: s.arena[start : start+1]}
}

// cutsOfHandle returns the leaf-contributing cut list for a fanin Handle:
// a constant handle contributes a single cut with zero leaves (it closes
// off that branch without naming any subject-graph node); a node handle
// contributes its already-computed cut list.
func (s *Store) cutsOfHandle(h sbjgraph.Handle) []Cut {
	if h.IsConst() {
		return []Cut{{}}
	}
	return s.perNode[h.Node.ID]
}

// sortedMergeByID merges two already-sorted-by-id leaf lists, eliding
// duplicate ids so leaves shared by both branches contribute once (the
// deterministic tie-break rule).
func sortedMergeByID(a, b []*sbjgraph.Node) []*sbjgraph.Node {
	out := make([]*sbjgraph.Node, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].ID < b[j].ID:
			out = append(out, a[i])
			i++
		case a[i].ID > b[j].ID:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// leafKey renders a leaf-id sequence into a dedup key. Leaves are assumed
// already sorted by id (true of every cut this package builds).
func leafKey(leaves []*sbjgraph.Node) string {
	var sb strings.Builder
	for i, n := range leaves {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(n.ID))
	}
	return sb.String()
}
