package cutenum_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lutmap/cutenum"
	"github.com/katalvlaran/lutmap/sbjbuilder"
)

func TestEnumerateInvalidK(t *testing.T) {
	r := require.New(t)
	g := sbjbuilder.TinyAnd()
	_, err := cutenum.Enumerate(g, 1)
	r.ErrorIs(err, cutenum.ErrInvalidK)
	_, err = cutenum.Enumerate(g, 17)
	r.ErrorIs(err, cutenum.ErrInvalidK)
}

func TestEnumerateTinyAndK3(t *testing.T) {
	r := require.New(t)
	g := sbjbuilder.TinyAnd()
	store, err := cutenum.Enumerate(g, 3)
	r.NoError(err)

	y := g.Logic[1] // y = t AND c
	cuts := store.Cuts(y)
	r.NotEmpty(cuts)

	// Trivial cut is last.
	last := cuts[len(cuts)-1]
	r.True(last.IsTrivial())

	// Every cut respects K-feasibility.
	for _, c := range cuts {
		r.LessOrEqual(c.Size(), 3)
	}

	// Non-decreasing leaf-set size among the non-trivial prefix; the
	// trivial cut is pinned last regardless of its own (smaller) size.
	nonTrivial := cuts[:len(cuts)-1]
	for i := 1; i < len(nonTrivial); i++ {
		r.LessOrEqual(nonTrivial[i-1].Size(), nonTrivial[i].Size())
	}

	// The 3-leaf cut {a,b,c} realizing y must be present exactly once.
	found := 0
	for _, c := range cuts {
		if c.Size() == 3 {
			found++
		}
	}
	r.Equal(1, found)
}

func TestEnumerateNoDuplicateLeafSets(t *testing.T) {
	r := require.New(t)
	g := sbjbuilder.ReconvergentXor()
	store, err := cutenum.Enumerate(g, 3)
	r.NoError(err)

	f := g.Logic[2] // f = t1 XOR t2
	cuts := store.Cuts(f)
	seen := make(map[string]bool)
	for _, c := range cuts {
		key := ""
		for _, l := range c.Leaves {
			key += "," + string(rune(l.ID))
		}
		r.False(seen[key], "duplicate leaf set in cut list")
		seen[key] = true
	}
}

func TestEnumerateInputsOnlyTrivial(t *testing.T) {
	r := require.New(t)
	g := sbjbuilder.TinyAnd()
	store, err := cutenum.Enumerate(g, 4)
	r.NoError(err)
	for _, in := range g.Inputs {
		cuts := store.Cuts(in)
		r.Len(cuts, 1)
		r.True(cuts[0].IsTrivial())
	}
}
