// Package bnio adapts an external Boolean-network container into an
// immutable sbjgraph.Graph. The Boolean network itself — parsing, the
// container's mutation API, sequential-element semantics — is treated as
// an external collaborator; this package only consumes the
// narrow read-only interface defined in types.go.
//
// What:
//
//   - Network: read-only view of ports, inputs, outputs, DFFs, latches,
//     and logic nodes typed as {C0,C1,BUF,NOT,AND,NAND,OR,NOR,XOR,XNOR,
//     Expr,TruthVector}.
//   - Convert: topologically walks a Network and emits the equivalent
//     sbjgraph.Graph, decomposing multi-input and non-AND/XOR gates into
//     two-input AND/XOR with inversions, exactly as a subject-graph
//     front end would.
//
// Why:
//
//   - Every downstream package only understands sbjgraph.Graph; this is
//     the single place that speaks the external network's vocabulary,
//     grounded on a two-way adapter-package pattern (adapters
//     between core.Graph and external graph libraries).
//
// Errors:
//
//	ErrTruthVectorUnsupported - a node of type TruthVector was encountered.
//	ErrBadArity               - a logic node has an arity its NodeType forbids
//	                            (e.g. NOT with != 1 fanin, C0/C1 with > 0 fanins).
//	ErrUnknownFanin           - a fanin literal names an id absent from the network.
//	ErrCyclicNetwork          - the network's logic nodes do not form a DAG.
package bnio
