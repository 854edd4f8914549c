// Package cutenum implements CutEnumerator and CutStore: exhaustive
// bottom-up enumeration of all K-feasible cuts of every node in a
// sbjgraph.Graph.
//
// What:
//
//   - Cut: an immutable {root, leaves} record; leaves are stored in a
//     shared arena rather than one slice allocation per cut, per the
//     "replace linked lists / arena allocators with typed arenas" design
//     note.
//   - Store: the per-node, append-ordered list of cuts produced by one
//     Enumerate call (trivial cut always last, no duplicate leaf sets).
//
// Why:
//
//   - Grounded on dfs.TopologicalSort's traversal-order contract (every
//     node visited only once its fanins are already processed) and on
//     the original CutHolder/CutMgr/CutList classes' "one list per node,
//     owned by one manager" shape.
//
// Errors:
//
//	ErrInvalidK - K outside [2,16].
package cutenum
