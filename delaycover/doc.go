// Package delaycover implements DelayCover: depth-first covering that
// minimizes mapped logic depth first and area second, via a forward
// Pareto-front pass followed by a required-time backward selection
//
//
// What:
//
//   - Front: the (depth, area) Pareto front kept at every node during
//     the forward pass — candidate cuts dominated on both coordinates by
//     another candidate are dropped immediately.
//   - Cover.Run performs the forward pass (building every node's front,
//     with each leaf's area weighted by the configured areacover policy
//     so shared leaves are discounted exactly as in area covering) then
//     the backward pass: starting from the primary outputs with a
//     required-depth budget, it walks down picking, at each node, the
//     front entry meeting the required depth with least area, and
//     propagates looser required depths to that entry's leaves.
//
// Why:
//
//   - Grounded on dijkstra's relaxation/options-struct shape (a forward
//     "settle the best known value per node" pass) and its area-then-depth
//     tie-break convention.
package delaycover
