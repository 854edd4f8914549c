package cutenum

import "github.com/katalvlaran/lutmap/sbjgraph"

// Cut is a rooted cut: Root's Boolean function realized purely in terms
// of Leaves (sorted ascending by node id, length <= K). Cuts are
// immutable once produced by Enumerate.
type Cut struct {
	Root   *sbjgraph.Node
	Leaves []*sbjgraph.Node
}

// Size is the number of leaves (the cut's input count).
func (c Cut) Size() int { return len(c.Leaves) }

// IsTrivial reports whether c is the singleton cut whose only leaf is
// its own root.
func (c Cut) IsTrivial() bool { return len(c.Leaves) == 1 && c.Leaves[0] == c.Root }

// Store holds, for every node id in the graph Enumerate was run over, the
// append-ordered list of its K-feasible cuts (trivial cut last, no
// duplicate leaf sets). Leaf slices are sub-slices of a single shared
// arena rather than individually allocated, for fewer small allocations.
type Store struct {
	k      int
	perNode [][]Cut
	arena  []*sbjgraph.Node
}

// K returns the cut-size bound this store was built with.
func (s *Store) K() int { return s.k }

// Cuts returns node's cut list in enumeration order (trivial cut last).
// The returned slice is owned by the Store and must not be mutated.
func (s *Store) Cuts(node *sbjgraph.Node) []Cut {
	return s.perNode[node.ID]
}
