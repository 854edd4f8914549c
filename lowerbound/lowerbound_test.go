package lowerbound_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lutmap/lowerbound"
	"github.com/katalvlaran/lutmap/sbjbuilder"
)

func TestComputeTinyAndSingleComponent(t *testing.T) {
	r := require.New(t)
	g := sbjbuilder.TinyAnd()
	// t has fanout 1 (only y consumes it), so {t, y} collapse to one
	// component: an optimistic bound of 1 LUT.
	bound, reached := lowerbound.Compute(g)
	r.Equal(1, bound)
	r.Equal(2, reached)
}

func TestComputeMultiOutputSharingThreeComponents(t *testing.T) {
	r := require.New(t)
	g := sbjbuilder.MultiOutputSharing()
	// ab has fanout 2 (y1 and y2 both consume it), so it cannot be
	// folded into either consumer for free: it is its own component,
	// while y1 and y2 each form their own singleton component too.
	bound, reached := lowerbound.Compute(g)
	r.Equal(3, bound)
	r.Equal(3, reached)
}

func TestComputeBalancedAndTreeSingleChain(t *testing.T) {
	r := require.New(t)
	g := sbjbuilder.BalancedAndTree(2) // 4 inputs, 3 AND nodes, all fanout 1 (the root's one consumer is the output)
	bound, reached := lowerbound.Compute(g)
	r.Equal(3, reached)
	r.Equal(1, bound, "every internal AND has exactly one consumer, so the whole tree optimistically collapses")
}

func TestConeSizesMatchComponentGrouping(t *testing.T) {
	r := require.New(t)
	g := sbjbuilder.TinyAnd()
	sizes := lowerbound.ConeSizes(g)
	// {t, y} form one two-node cone, so both report size 2.
	r.Len(sizes, 2)
	for id, s := range sizes {
		r.Equalf(2, s, "node %d", id)
	}
}

func TestConeSizesSharedNodeIsItsOwnCone(t *testing.T) {
	r := require.New(t)
	g := sbjbuilder.MultiOutputSharing()
	sizes := lowerbound.ConeSizes(g)
	r.Len(sizes, 3)
	for id, s := range sizes {
		r.Equalf(1, s, "node %d", id)
	}
}
