package sbjbuilder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lutmap/sbjbuilder"
)

func TestTinyAndShape(t *testing.T) {
	r := require.New(t)
	g := sbjbuilder.TinyAnd()
	r.Len(g.Inputs, 3)
	r.Len(g.Logic, 2)
	r.Len(g.Outputs, 1)
}

func TestInverterChainShape(t *testing.T) {
	r := require.New(t)
	g := sbjbuilder.InverterChain(9)
	r.Len(g.Inputs, 1)
	r.Len(g.Logic, 9)
	r.Len(g.Outputs, 1)
}

func TestBalancedAndTreeShape(t *testing.T) {
	r := require.New(t)
	g := sbjbuilder.BalancedAndTree(3)
	r.Len(g.Inputs, 8)
	r.Len(g.Logic, 7)
}

func TestMultiOutputSharingShape(t *testing.T) {
	r := require.New(t)
	g := sbjbuilder.MultiOutputSharing()
	r.Len(g.Inputs, 4)
	r.Len(g.Logic, 3)
	r.Len(g.Outputs, 2)
	r.Equal(2, g.Logic[0].FanoutCount()) // a AND b feeds both y1 and y2
}

func TestRandomAIGDeterministic(t *testing.T) {
	r := require.New(t)
	g1 := sbjbuilder.RandomAIG(sbjbuilder.WithSeed(42), sbjbuilder.WithInputs(6), sbjbuilder.WithGates(20), sbjbuilder.WithOutputs(3))
	g2 := sbjbuilder.RandomAIG(sbjbuilder.WithSeed(42), sbjbuilder.WithInputs(6), sbjbuilder.WithGates(20), sbjbuilder.WithOutputs(3))
	r.Equal(g1.MaxID(), g2.MaxID())
	r.Len(g1.Logic, 20)
	r.Len(g1.Outputs, 3)
	for i := 0; i < g1.MaxID(); i++ {
		r.Equal(g1.Node(i).Kind, g2.Node(i).Kind)
	}
}
