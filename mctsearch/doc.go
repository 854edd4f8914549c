// Package mctsearch implements a Monte Carlo Tree Search meta-driver
// over the space of fan-out boundary selections: which
// shared (fanout > 1) nodes get pinned as forced LUT outputs before
// AreaCover re-covers the graph, trading duplication against sharing.
//
// What:
//
//   - Forced: every fanout > 1 logic node that also drives a primary
//     output (node.IsPO()) is pinned into every evaluated boundary up
//     front and never searched — it must always be a LUT root.
//   - Candidates: every remaining fanout > 1 logic node, in ascending
//     id order; a boundary selection is one bit per candidate.
//   - node: one tree node, covering a prefix of the candidate list with
//     a fixed in/out decision for each; UCB1 picks which child to
//     descend into among already-expanded ones, ties broken toward the
//     lower-id branch for determinism.
//   - Search.Run repeatedly selects, expands one new node, rolls the
//     remaining candidates out with one biased coin flip each (bias
//     from the candidate's reconvergent cone size, so structurally
//     heavier nodes lean toward selection), covers with
//     AreaCover.RunWithBoundary plus a resubstitution pass, scores the
//     result against the graph's optimistic LowerBoundCalc bound, and
//     backpropagates that normalized reward up the visited path.
//
// Why:
//
//   - Grounded on the branch-and-bound tree shape of tsp/bb.go (explicit
//     node objects holding partial-decision state plus a best-known
//     bound) and on tsp/rng.go's seeded, derived *rand.Rand discipline.
//     Children are reordered by accumulated UCB1 score after every
//     backup, keeping the best-scoring child at index 0; a child's
//     decision value lives on the node itself, never on array position,
//     so reordering can never scramble which branch means include vs.
//     exclude.
package mctsearch
