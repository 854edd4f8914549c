package sbjgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lutmap/sbjgraph"
)

func TestTinyAnd(t *testing.T) {
	r := require.New(t)

	b := sbjgraph.NewBuilder()
	a := b.AddInput("a", nil)
	c := b.AddInput("b", nil)
	d := b.AddInput("c", nil)
	t1 := b.AddAnd(a, c)
	y := b.AddAnd(t1, d)
	b.AddOutput("y", y, nil)

	g, err := b.Build()
	r.NoError(err)
	r.Len(g.Inputs, 3)
	r.Len(g.Logic, 2)
	r.Len(g.Outputs, 1)
	r.Equal(6, g.MaxID())

	// a feeds only t1 (id 3); y (id 4) is the sole output driver.
	r.Equal(1, g.Node(0).FanoutCount())
	r.False(g.Node(3).IsPO())
	r.True(g.Node(4).IsPO())
}

func TestDanglingHandleRejected(t *testing.T) {
	r := require.New(t)
	b1 := sbjgraph.NewBuilder()
	foreign := b1.AddInput("x", nil)

	b2 := sbjgraph.NewBuilder()
	a := b2.AddInput("a", nil)
	b2.AddAnd(a, foreign)

	_, err := b2.Build()
	r.Error(err)
	r.True(errors.Is(err, sbjgraph.ErrDanglingHandle))
}

func TestFaninIsOutputRejected(t *testing.T) {
	r := require.New(t)
	b := sbjgraph.NewBuilder()
	a := b.AddInput("a", nil)
	out := b.AddOutput("y", a, nil)
	b.AddAnd(a, sbjgraph.Handle{Node: out})

	_, err := b.Build()
	r.True(errors.Is(err, sbjgraph.ErrFaninIsOutput))
}

func TestBuilderSingleUse(t *testing.T) {
	r := require.New(t)
	b := sbjgraph.NewBuilder()
	a := b.AddInput("a", nil)
	b.AddOutput("y", a, nil)
	_, err := b.Build()
	r.NoError(err)
	_, err = b.Build()
	r.True(errors.Is(err, sbjgraph.ErrBuilderAlreadyUsed))
}

func TestConstHandle(t *testing.T) {
	r := require.New(t)
	b := sbjgraph.NewBuilder()
	b.AddOutput("y", sbjgraph.Const(true), nil)
	g, err := b.Build()
	r.NoError(err)
	r.True(g.Outputs[0].Fanin.IsConst())
	r.True(g.Outputs[0].Fanin.ConstValue())
}

func TestReconvergentXorFanoutAndPomark(t *testing.T) {
	r := require.New(t)
	// f = (a AND b) XOR (a AND c)
	b := sbjgraph.NewBuilder()
	a := b.AddInput("a", nil)
	bb := b.AddInput("b", nil)
	cc := b.AddInput("c", nil)
	t1 := b.AddAnd(a, bb)
	t2 := b.AddAnd(a, cc)
	f := b.AddXor(t1, t2)
	b.AddOutput("f", f, nil)

	g, err := b.Build()
	r.NoError(err)
	r.Equal(2, g.Node(0).FanoutCount()) // a feeds both ANDs
}
