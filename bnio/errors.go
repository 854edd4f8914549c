package bnio

import "errors"

// Sentinel errors returned by Convert.
var (
	// ErrTruthVectorUnsupported indicates a NodeType == TruthVector node
	// was encountered; these are rejected with a diagnostic rather than mapped.
	ErrTruthVectorUnsupported = errors.New("bnio: truth-vector nodes are not supported")

	// ErrBadArity indicates a logic node's fanin count is incompatible
	// with its NodeType (e.g. NOT with two fanins, C0 with one).
	ErrBadArity = errors.New("bnio: bad fanin arity for node type")

	// ErrUnknownFanin indicates a Literal or Expr leaf referenced a
	// network id that Convert never saw defined.
	ErrUnknownFanin = errors.New("bnio: fanin references unknown node id")

	// ErrCyclicNetwork indicates the network's logic nodes do not form
	// a DAG; Convert detected a node reachable from itself.
	ErrCyclicNetwork = errors.New("bnio: network contains a combinational cycle")

	// ErrDuplicateID indicates the same network id was defined more than
	// once across inputs, DFF/latch terminals, and logic nodes.
	ErrDuplicateID = errors.New("bnio: duplicate node id")
)
