package mctsearch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lutmap/cutenum"
	"github.com/katalvlaran/lutmap/mctsearch"
	"github.com/katalvlaran/lutmap/sbjbuilder"
)

func TestRunRejectsNonPositiveIterations(t *testing.T) {
	r := require.New(t)
	g := sbjbuilder.TinyAnd()
	store, err := cutenum.Enumerate(g, 3)
	r.NoError(err)

	s := mctsearch.New(g, store)
	_, err = s.Run(0)
	r.ErrorIs(err, mctsearch.ErrNoIterations)
}

func TestRunNoCandidatesSingleEvaluation(t *testing.T) {
	r := require.New(t)
	g := sbjbuilder.TinyAnd() // no shared nodes, so zero boundary candidates
	store, err := cutenum.Enumerate(g, 3)
	r.NoError(err)

	s := mctsearch.New(g, store)
	res, err := s.Run(10)
	r.NoError(err)
	r.Empty(res.Boundary)
	r.Equal(1, res.LUTCount)
}

func TestRunFindsShareableCoverOnMultiOutput(t *testing.T) {
	r := require.New(t)
	g := sbjbuilder.MultiOutputSharing()
	store, err := cutenum.Enumerate(g, 3)
	r.NoError(err)

	s := mctsearch.New(g, store, mctsearch.WithSeed(7))
	res, err := s.Run(40)
	r.NoError(err)
	r.GreaterOrEqual(res.LUTCount, 1)
	r.LessOrEqual(res.LUTCount, 3)
}

func TestWithExplorationPanicsOnNonPositive(t *testing.T) {
	r := require.New(t)
	r.Panics(func() { mctsearch.WithExploration(0) })
	r.Panics(func() { mctsearch.WithExploration(-1) })
}
