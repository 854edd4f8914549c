// Package sbjgraph defines SubjectGraph, the immutable two-input-gate DAG
// that the rest of the lutmap pipeline maps onto K-input lookup tables.
//
// A SubjectGraph is built once via a Builder and is read-only afterward:
// every node carries a dense, stable integer id and lives in exactly one
// of three ordered sequences (Inputs, Outputs, Logic), with the Logic
// sequence kept fanin-before-fanout topological order. Constants are not
// nodes; they are represented by a Handle whose Node is nil.
//
// What:
//
//   - Handle: a (possibly inverted) reference to a node, or to a constant.
//   - Node: input, output, or two-input AND/XOR logic node.
//   - Graph: the built, immutable subject graph plus reverse fanout edges.
//
// Why:
//
//   - Downstream cut enumeration and covering need O(1) id-indexed access,
//     O(1) topological-order iteration, and O(fanout) reverse traversal;
//     none of that is available from an arbitrary external Boolean-network
//     container, so the pipeline normalizes onto this single immutable
//     shape first (see package bnio for the adapter that builds one).
//
// Errors:
//
//	ErrDanglingHandle     - a fanin Handle references a node id outside the graph.
//	ErrFaninIsOutput      - a logic or output fanin references an Output node.
//	ErrNotTopological     - a logic node's fanin has a higher or equal id (not yet built).
//	ErrBuilderAlreadyUsed - Build was already called on this Builder.
package sbjgraph
