package delaycover

import "github.com/katalvlaran/lutmap/cutenum"

// Point is one non-dominated (depth, area) candidate at a node, tied to
// the cut that realizes it.
type Point struct {
	Depth int
	Area  float64
	Cut   cutenum.Cut
}

// Front is a node's Pareto front: points sorted ascending by Depth, with
// Area strictly decreasing as Depth increases (a later point is kept
// only if it improves area over every earlier, shallower point).
type Front []Point

// Best returns the point with the smallest Depth (used by backward to
// find the critical depth at the outputs, and as UnderBudget's
// fallback). Front must be non-empty.
func (f Front) Best() Point { return f[0] }

// UnderBudget returns the lowest-area point whose Depth does not exceed
// budget, or the shallowest point (f.Best()) if no point fits (a
// best-effort fallback when the required-depth budget is infeasible for
// this node on its own). Front must be non-empty.
func (f Front) UnderBudget(budget int) Point {
	found := false
	var best Point
	for _, p := range f {
		if p.Depth <= budget && (!found || p.Area < best.Area) {
			best = p
			found = true
		}
	}
	if !found {
		return f.Best()
	}
	return best
}
