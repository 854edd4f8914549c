package mapgen

import (
	"sort"

	"github.com/katalvlaran/lutmap/cutenum"
	"github.com/katalvlaran/lutmap/sbjgraph"
)

// wordsFor returns the number of uint64 words needed to hold one bit per
// assignment of numVars Boolean variables.
func wordsFor(numVars int) int {
	total := 1 << uint(numVars)
	return (total + 63) / 64
}

// varPattern returns the truth table of the i-th of numVars free
// variables (0-indexed), batched into numWords 64-bit words: bit p of
// word w is set iff bit i of the assignment index (w*64+p) is 1.
func varPattern(i, numWords int) []uint64 {
	out := make([]uint64, numWords)
	for w := 0; w < numWords; w++ {
		var word uint64
		for p := 0; p < 64; p++ {
			assignment := w*64 + p
			if (assignment>>uint(i))&1 == 1 {
				word |= 1 << uint(p)
			}
		}
		out[w] = word
	}
	return out
}

func allOnes(numWords int) []uint64 {
	out := make([]uint64, numWords)
	for i := range out {
		out[i] = ^uint64(0)
	}
	return out
}

func notTT(a []uint64) []uint64 {
	out := make([]uint64, len(a))
	for i, w := range a {
		out[i] = ^w
	}
	return out
}

func andTT(a, b []uint64) []uint64 {
	out := make([]uint64, len(a))
	for i := range a {
		out[i] = a[i] & b[i]
	}
	return out
}

func xorTT(a, b []uint64) []uint64 {
	out := make([]uint64, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// mask clears the high bits of a single-word table beyond numVars
// meaningful assignments; a no-op once numWords > 1 since every bit of
// every word is then meaningful.
func mask(tt []uint64, numVars int) []uint64 {
	if len(tt) != 1 {
		return tt
	}
	total := 1 << uint(numVars)
	if total >= 64 {
		return tt
	}
	m := (uint64(1) << uint(total)) - 1
	return []uint64{tt[0] & m}
}

// synthesize computes cut's truth table in terms of its own leaves
// (leaf order == cut.Leaves order), by batched simulation over the
// cone of logic nodes strictly between cut.Root and cut.Leaves.
func synthesize(cut cutenum.Cut) ([]uint64, error) {
	numVars := cut.Size()
	if numVars > MaxInputs {
		return nil, ErrTooManyInputs
	}
	numWords := wordsFor(numVars)

	leafIdx := make(map[int]int, numVars)
	tt := make(map[int][]uint64, numVars)
	for i, l := range cut.Leaves {
		leafIdx[l.ID] = i
		tt[l.ID] = varPattern(i, numWords)
	}

	if cut.IsTrivial() {
		return mask(tt[cut.Root.ID], numVars), nil
	}

	interior := map[int]*sbjgraph.Node{cut.Root.ID: cut.Root}
	stack := []*sbjgraph.Node{cut.Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, h := range [2]sbjgraph.Handle{n.Fanin0, n.Fanin1} {
			if h.IsConst() {
				continue
			}
			if _, isLeaf := leafIdx[h.Node.ID]; isLeaf {
				continue
			}
			if _, seen := interior[h.Node.ID]; seen {
				continue
			}
			interior[h.Node.ID] = h.Node
			stack = append(stack, h.Node)
		}
	}

	order := make([]*sbjgraph.Node, 0, len(interior))
	for _, n := range interior {
		order = append(order, n)
	}
	sort.Slice(order, func(i, j int) bool { return order[i].ID < order[j].ID })

	operand := func(h sbjgraph.Handle) []uint64 {
		var base []uint64
		switch {
		case h.IsConst():
			if h.ConstValue() {
				return allOnes(numWords)
			}
			return make([]uint64, numWords)
		default:
			base = tt[h.Node.ID]
		}
		if h.Inverted {
			return notTT(base)
		}
		return base
	}

	for _, n := range order {
		a := operand(n.Fanin0)
		b := operand(n.Fanin1)
		if n.Gate == sbjgraph.GateXOR {
			tt[n.ID] = xorTT(a, b)
		} else {
			tt[n.ID] = andTT(a, b)
		}
	}

	return mask(tt[cut.Root.ID], numVars), nil
}

// TruthTableFor synthesizes cut's function in the requested output
// polarity. Since a LUT realizes a single-output function, serving the
// complementary polarity some downstream consumer needs costs nothing
// beyond flipping the already-computed table (the "dual-polarity"
// synthesis path: a plain call for the node's own positive-polarity
// table, this one when a specific polarity is required).
func TruthTableFor(cut cutenum.Cut, inverted bool) ([]uint64, error) {
	tt, err := synthesize(cut)
	if err != nil {
		return nil, err
	}
	if !inverted {
		return tt, nil
	}
	return mask(notTT(tt), cut.Size()), nil
}
