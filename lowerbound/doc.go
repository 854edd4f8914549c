// Package lowerbound implements LowerBoundCalc: a fast, optimistic
// estimate of the number of LUTs a K-feasible covering of a graph uses,
// computed without running cut enumeration at all.
//
// What:
//
//   - Compute groups PO-reachable logic nodes with a disjoint-set
//     structure, unioning a node with a fanin whenever that fanin has
//     exactly one consumer (so it could, in the best case, always be
//     folded into the consumer's own LUT for free). Nodes with more
//     than one consumer are never unioned away: each is counted as its
//     own LUT.
//   - The resulting component count ignores K entirely. It is not
//     guaranteed to stay at or below a realized LUT count: a covering
//     that duplicates a multi-consumer node into each consumer's cut
//     uses fewer LUTs than it has components (MultiOutputSharing counts
//     3 components, while a K=3 covering of it realizes 2 LUTs).
//
// Why:
//
//   - Grounded on prim_kruskal's disjoint-set (union-by-rank,
//     path-compressed) implementation and its deterministic low-id-wins
//     tie-break on union.
package lowerbound
