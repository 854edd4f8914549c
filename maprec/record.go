package maprec

import (
	"github.com/katalvlaran/lutmap/cutenum"
	"github.com/katalvlaran/lutmap/sbjgraph"
)

// Slot is one node's covering result: the cut chosen to realize it, its
// accumulated cost under whatever policy produced it, and its mapped
// logic depth (levels of LUTs from the nearest primary input).
type Slot struct {
	Cut      cutenum.Cut
	Cost     float64
	Depth    int
	Assigned bool
}

// Record is a dense, node-id-indexed table of Slots. The zero value is
// not usable; construct with New.
type Record struct {
	slots []Slot
}

// New allocates a Record sized for a graph with maxID node ids.
func New(maxID int) *Record {
	return &Record{slots: make([]Slot, maxID)}
}

// Len is the node-id capacity of r.
func (r *Record) Len() int { return len(r.slots) }

// Set stores the slot for node id.
func (r *Record) Set(id int, slot Slot) {
	slot.Assigned = true
	r.slots[id] = slot
}

// Get returns the slot for node id and whether it has been assigned.
func (r *Record) Get(id int) (Slot, bool) {
	s := r.slots[id]
	return s, s.Assigned
}

// Clear resets the slot for node id to unassigned.
func (r *Record) Clear(id int) {
	r.slots[id] = Slot{}
}

// Clone returns an independent copy of r; mutating the clone never
// affects the original.
func (r *Record) Clone() *Record {
	out := &Record{slots: make([]Slot, len(r.slots))}
	copy(out.slots, r.slots)
	return out
}

// TotalCost sums Cost over every assigned slot whose node id is in ids.
// It is a diagnostic accumulated-estimate figure, not a LUT count:
// Reachable(g) gives the realized LUT-root set, and mapgen's estimator
// the full emitted count once polarity demands are folded in.
func (r *Record) TotalCost(ids []int) float64 {
	var total float64
	for _, id := range ids {
		if s, ok := r.Get(id); ok {
			total += s.Cost
		}
	}
	return total
}

// MaxDepth returns the largest Depth over the given node ids, 0 if ids is
// empty.
func (r *Record) MaxDepth(ids []int) int {
	max := 0
	for _, id := range ids {
		if s, ok := r.Get(id); ok && s.Depth > max {
			max = s.Depth
		}
	}
	return max
}

// Reachable back-traces from every primary output of g through the cuts
// recorded in r, returning the distinct logic node ids that actually
// become a LUT root in the mapped network. This is the authoritative
// realized set; Slot.Cost is a per-node accumulated estimate used to
// pick cuts, not the real mapped area, because it does not account for
// leaf sharing across sibling cones the way a global back-trace does.
func (r *Record) Reachable(g *sbjgraph.Graph) []int {
	seen := make(map[int]struct{})
	var order []int
	var stack []*sbjgraph.Node

	for _, out := range g.Outputs {
		if !out.Fanin.IsConst() && out.Fanin.Node.Kind == sbjgraph.KindLogic {
			stack = append(stack, out.Fanin.Node)
		}
	}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, dup := seen[n.ID]; dup {
			continue
		}
		seen[n.ID] = struct{}{}
		order = append(order, n.ID)

		slot, ok := r.Get(n.ID)
		if !ok {
			continue
		}
		for _, leaf := range slot.Cut.Leaves {
			if leaf.ID == n.ID {
				continue // trivial self-cut; nothing further to expand
			}
			if leaf.Kind == sbjgraph.KindLogic {
				stack = append(stack, leaf)
			}
		}
	}

	return order
}
