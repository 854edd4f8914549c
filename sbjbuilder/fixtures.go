package sbjbuilder

import (
	"strconv"

	"github.com/katalvlaran/lutmap/sbjgraph"
)

// TinyAnd builds a minimal end-to-end fixture: inputs a,b,c;
// t = a AND b; y = t AND c; single output y.
func TinyAnd() *sbjgraph.Graph {
	b := sbjgraph.NewBuilder()
	a := b.AddInput("a", nil)
	bb := b.AddInput("b", nil)
	cc := b.AddInput("c", nil)
	t := b.AddAnd(a, bb)
	y := b.AddAnd(t, cc)
	b.AddOutput("y", y, nil)
	g, err := b.Build()
	if err != nil {
		panic(err) // unreachable: fixture is constructed correctly by hand
	}
	return g
}

// InverterChain builds a fixture with one input, n
// inverters in series, one output. Each inverter is materialized as a
// real XOR-with-constant-1 logic node (XOR(x,1) == NOT x) rather than a
// bare inversion bit, so that the chain actually exercises cut
// enumeration and covering instead of collapsing to a single wire.
func InverterChain(n int) *sbjgraph.Graph {
	if n < 1 {
		panic("sbjbuilder: InverterChain(n<1)")
	}
	b := sbjgraph.NewBuilder()
	cur := b.AddInput("in", nil)
	one := sbjgraph.Const(true)
	for i := 0; i < n; i++ {
		cur = b.AddXor(cur, one)
	}
	b.AddOutput("out", cur, nil)
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}

// ReconvergentXor builds a reconvergent-fanin fixture:
// f = (a AND b) XOR (a AND c).
func ReconvergentXor() *sbjgraph.Graph {
	b := sbjgraph.NewBuilder()
	a := b.AddInput("a", nil)
	bb := b.AddInput("b", nil)
	cc := b.AddInput("c", nil)
	t1 := b.AddAnd(a, bb)
	t2 := b.AddAnd(a, cc)
	f := b.AddXor(t1, t2)
	b.AddOutput("f", f, nil)
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}

// BalancedAndTree builds a balanced
// binary AND-tree over 2^levels inputs (levels=3 => 8 inputs, depth 3).
func BalancedAndTree(levels int) *sbjgraph.Graph {
	if levels < 1 {
		panic("sbjbuilder: BalancedAndTree(levels<1)")
	}
	b := sbjgraph.NewBuilder()
	n := 1 << uint(levels)
	cur := make([]sbjgraph.Handle, n)
	for i := 0; i < n; i++ {
		cur[i] = b.AddInput("in"+strconv.Itoa(i), nil)
	}
	for len(cur) > 1 {
		next := make([]sbjgraph.Handle, 0, len(cur)/2)
		for i := 0; i < len(cur); i += 2 {
			next = append(next, b.AddAnd(cur[i], cur[i+1]))
		}
		cur = next
	}
	b.AddOutput("y", cur[0], nil)
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}

// MultiOutputSharing builds a fixture with a shared subexpression:
// y1 = a AND b AND c, y2 = a AND b AND d, sharing the a-AND-b prefix in
// the subject graph (the covering stage decides whether the shared cut
// is reused or duplicated).
func MultiOutputSharing() *sbjgraph.Graph {
	b := sbjgraph.NewBuilder()
	a := b.AddInput("a", nil)
	bb := b.AddInput("b", nil)
	cc := b.AddInput("c", nil)
	dd := b.AddInput("d", nil)
	ab := b.AddAnd(a, bb)
	y1 := b.AddAnd(ab, cc)
	y2 := b.AddAnd(ab, dd)
	b.AddOutput("y1", y1, nil)
	b.AddOutput("y2", y2, nil)
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}
