// Package areacover implements AreaCover: bottom-up selection of one cut
// per subject-graph node that minimizes an accumulated area-like cost
//
//
// What:
//
//   - Policy: Fanout divides a leaf's contribution by its graph-wide
//     fanout count; Flow instead distributes a unit of flow from the
//     candidate cut's root down to its leaves, dividing at every
//     internal step by the fanout count of the node being entered.
//   - Cover.Run covers every logic node of a graph in topological order.
//   - Cover.RunWithBoundary additionally accepts a boundary set: nodes
//     in the set still get their own best cut computed, but their cost
//     is treated as zero when any other node's cut uses them as a leaf,
//     matching the "pin as a forced LUT output" semantics a meta-search
//     driver needs when re-covering around a fixed partial solution.
//
// Why:
//
//   - Grounded on flow.FlowOptions' option-struct shape for picking
//     between the two weighting policies; the bottom-up, topological-
//     order propagation pattern is grounded on dfs.TopologicalSort's
//     traversal-order contract.
//
// A node's trivial (self) cut is never a candidate for covering that
// node itself; it exists only so other nodes may reference it as a
// one-node leaf. Every logic node therefore has at least the direct
// two-fanin merge cut available, so Run never reports infeasibility on a
// well-formed graph.
package areacover
