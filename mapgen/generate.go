package mapgen

import (
	"github.com/katalvlaran/lutmap/maprec"
	"github.com/katalvlaran/lutmap/sbjgraph"
)

// Polarity demand bits for one subject-graph node: which signs of its
// function the mapped network must actually realize as a LUT output.
const (
	needPos uint8 = 1 << iota
	needNeg
)

// emission is the shared back-trace result Generator and Estimator both
// work from: which (node, polarity) pairs become LUTs, which inverted
// input pass-throughs need a 1-input NOT LUT, and which constant-driven
// outputs need a 0-input constant LUT. LUT ids for the extra elements
// are allocated past g.MaxID() in a fixed walk order, so two runs over
// the same inputs assign identical ids.
type emission struct {
	order    []int         // realized LUT-root node ids, back-trace order
	req      map[int]uint8 // node id -> required polarities
	negID    map[int]int   // node id -> LUT id serving its inverted polarity
	notID    map[int]int   // input node id -> LUT id of its NOT pass-through
	constID  map[bool]int  // constant value -> LUT id, shared across outputs
	count    int
	maxDepth int
}

// planEmission derives the polarity demands of one completed cover: an
// output referencing a logic node demands the polarity its inversion bit
// names; every leaf of a chosen cut demands its node in positive
// polarity, because leaf-edge inversions are folded into the consuming
// LUT's own table during synthesis. Inverted input pass-throughs and
// constant-driven outputs each claim one extra LUT so the mapped
// network's only logic elements are LUTs.
func planEmission(g *sbjgraph.Graph, rec *maprec.Record) (*emission, error) {
	em := &emission{
		order:   rec.Reachable(g),
		req:     make(map[int]uint8),
		negID:   make(map[int]int),
		notID:   make(map[int]int),
		constID: make(map[bool]int),
	}

	for _, out := range g.Outputs {
		h := out.Fanin
		if h.IsConst() || h.Node.Kind != sbjgraph.KindLogic {
			continue
		}
		if h.Inverted {
			em.req[h.Node.ID] |= needNeg
		} else {
			em.req[h.Node.ID] |= needPos
		}
	}
	for _, id := range em.order {
		slot, ok := rec.Get(id)
		if !ok {
			return nil, ErrMissingSlot
		}
		for _, leaf := range slot.Cut.Leaves {
			if leaf.ID != id && leaf.Kind == sbjgraph.KindLogic {
				em.req[leaf.ID] |= needPos
			}
		}
	}

	nextID := g.MaxID()
	for _, id := range em.order {
		r := em.req[id]
		if r&needPos != 0 {
			em.count++
		}
		if r&needNeg != 0 {
			em.negID[id] = nextID
			nextID++
			em.count++
		}
	}

	for _, out := range g.Outputs {
		h := out.Fanin
		switch {
		case h.IsConst():
			if _, ok := em.constID[h.ConstValue()]; !ok {
				em.constID[h.ConstValue()] = nextID
				nextID++
				em.count++
			}
		case h.Node.Kind == sbjgraph.KindInput && h.Inverted:
			if _, ok := em.notID[h.Node.ID]; !ok {
				em.notID[h.Node.ID] = nextID
				nextID++
				em.count++
			}
		}
	}

	em.maxDepth = rec.MaxDepth(em.order)
	if len(em.notID) > 0 && em.maxDepth < 1 {
		em.maxDepth = 1
	}
	return em, nil
}

// Generator produces a concrete mapped Network from a completed
// maprec.Record. The zero value is ready to use.
type Generator struct{}

// New returns a ready-to-use Generator.
func New() *Generator { return &Generator{} }

// Generate back-traces g's primary outputs through rec, computes the
// polarity demand of every reached node, and synthesizes one LUT per
// required (node, polarity) pair. A node demanded in both polarities
// yields two LUTs over the same inputs with complementary tables; an
// output inverting a primary input yields a 1-input NOT LUT; an output
// pinned to a constant yields a 0-input constant LUT.
func (gen *Generator) Generate(g *sbjgraph.Graph, rec *maprec.Record) (*Network, error) {
	em, err := planEmission(g, rec)
	if err != nil {
		return nil, err
	}

	net := &Network{MaxDepth: em.maxDepth}
	for _, n := range g.Inputs {
		net.Inputs = append(net.Inputs, n.Name)
	}

	for _, id := range em.order {
		slot, _ := rec.Get(id)
		inputs := make([]int, len(slot.Cut.Leaves))
		for i, leaf := range slot.Cut.Leaves {
			inputs[i] = leaf.ID
		}
		r := em.req[id]
		if r&needPos != 0 {
			tt, err := TruthTableFor(slot.Cut, false)
			if err != nil {
				return nil, err
			}
			net.LUTs = append(net.LUTs, LUT{ID: id, Inputs: inputs, TruthTable: tt})
		}
		if r&needNeg != 0 {
			tt, err := TruthTableFor(slot.Cut, true)
			if err != nil {
				return nil, err
			}
			net.LUTs = append(net.LUTs, LUT{ID: em.negID[id], Inputs: inputs, TruthTable: tt})
		}
	}

	// NOT and constant LUTs are emitted by re-walking g.Outputs, the
	// same order their ids were allocated in, never by ranging over the
	// id maps.
	emittedNot := make(map[int]struct{}, len(em.notID))
	emittedConst := make(map[bool]struct{}, len(em.constID))
	for _, out := range g.Outputs {
		h := out.Fanin
		switch {
		case h.IsConst():
			v := h.ConstValue()
			if _, dup := emittedConst[v]; dup {
				continue
			}
			emittedConst[v] = struct{}{}
			word := uint64(0)
			if v {
				word = 1
			}
			net.LUTs = append(net.LUTs, LUT{ID: em.constID[v], TruthTable: []uint64{word}})
		case h.Node.Kind == sbjgraph.KindInput && h.Inverted:
			if _, dup := emittedNot[h.Node.ID]; dup {
				continue
			}
			emittedNot[h.Node.ID] = struct{}{}
			net.LUTs = append(net.LUTs, LUT{ID: em.notID[h.Node.ID], Inputs: []int{h.Node.ID}, TruthTable: []uint64{0x1}})
		}
	}

	for _, out := range g.Outputs {
		net.Outputs = append(net.Outputs, bindOutput(em, out))
	}

	return net, nil
}

// bindOutput wires one primary output to the LUT realizing its demanded
// polarity, or directly to an input name for a plain non-inverted
// pass-through (the only binding that is not a LUT).
func bindOutput(em *emission, out *sbjgraph.Node) Binding {
	b := Binding{Name: out.Name, Seq: out.Seq}
	h := out.Fanin
	switch {
	case h.IsConst():
		b.IsLUT = true
		b.LUTID = em.constID[h.ConstValue()]
	case h.Node.Kind == sbjgraph.KindInput:
		if h.Inverted {
			b.IsLUT = true
			b.LUTID = em.notID[h.Node.ID]
		} else {
			b.InputName = h.Node.Name
		}
	case h.Inverted:
		b.IsLUT = true
		b.LUTID = em.negID[h.Node.ID]
	default:
		b.IsLUT = true
		b.LUTID = h.Node.ID
	}
	return b
}
