package sbjgraph

import "errors"

// Sentinel errors returned by Builder.Build. Callers MUST use errors.Is to
// branch on semantics; see package doc for the classification.
var (
	// ErrDanglingHandle indicates a fanin Handle referenced a node that
	// was never added to this Builder.
	ErrDanglingHandle = errors.New("sbjgraph: handle references unknown node")

	// ErrFaninIsOutput indicates a logic or output fanin referenced an
	// Output node, violating the invariant that logic-node fanins never
	// reference outputs.
	ErrFaninIsOutput = errors.New("sbjgraph: fanin references an output node")

	// ErrNotTopological indicates a logic node's fanin id is not strictly
	// less than the node's own id; the builder assigns ids in creation
	// order so this can only happen if a handle from a later AddAnd/AddXor
	// call is reused as a fanin of an earlier one, which callers cannot do
	// through the public API but which internal invariants still check.
	ErrNotTopological = errors.New("sbjgraph: fanin is not topologically before its consumer")

	// ErrBuilderAlreadyUsed indicates Build was already called once on
	// this Builder; Builders are single-use.
	ErrBuilderAlreadyUsed = errors.New("sbjgraph: builder already built")
)
