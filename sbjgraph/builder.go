package sbjgraph

// Builder incrementally assembles a SubjectGraph. It is single-use: once
// Build succeeds (or fails), the Builder must be discarded.
//
// Complexity: each Add* call is O(1); Build is O(V+E) to compute fanout
// edges and the pomark bit.
type Builder struct {
	nodes []*Node
	built bool
}

// NewBuilder returns an empty Builder ready to accept inputs, outputs,
// and logic gates.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) alloc(n *Node) *Node {
	n.ID = len(b.nodes)
	b.nodes = append(b.nodes, n)
	return n
}

// AddInput appends a new primary-input (or DFF/latch output) node and
// returns a non-inverted Handle to it. seq is nil for a plain primary
// input.
func (b *Builder) AddInput(name string, seq *SeqInfo) Handle {
	n := b.alloc(&Node{Kind: KindInput, Name: name, Seq: seq})
	return Handle{Node: n}
}

// AddAnd appends a two-input AND gate over (a, b) and returns a
// non-inverted Handle to it. a and b must be handles previously returned
// by this same Builder (or constant handles).
func (b *Builder) AddAnd(a, b2 Handle) Handle {
	n := b.alloc(&Node{Kind: KindLogic, Gate: GateAND, Fanin0: a, Fanin1: b2})
	return Handle{Node: n}
}

// AddXor appends a two-input XOR gate over (a, b) and returns a
// non-inverted Handle to it.
func (b *Builder) AddXor(a, b2 Handle) Handle {
	n := b.alloc(&Node{Kind: KindLogic, Gate: GateXOR, Fanin0: a, Fanin1: b2})
	return Handle{Node: n}
}

// AddOutput appends a primary output (or DFF/latch data-input) node
// driven by in and returns the output Node. seq is nil for a plain
// primary output.
func (b *Builder) AddOutput(name string, in Handle, seq *SeqInfo) *Node {
	return b.alloc(&Node{Kind: KindOutput, Name: name, Fanin: in, Seq: seq})
}

// Const returns a constant Handle (Node == nil) carrying value v.
func Const(v bool) Handle { return Handle{Inverted: v} }

// Build validates and finalizes the graph: it checks every fanin handle
// references a node owned by this Builder with a strictly smaller id (so
// Logic is already fanin-before-fanout by construction order), that no
// logic or output fanin references an Output node, computes reverse
// fanout edges, and computes the pomark bit for every input/logic node.
//
// Build consumes the Builder; calling it twice returns
// ErrBuilderAlreadyUsed.
func (b *Builder) Build() (*Graph, error) {
	if b.built {
		return nil, ErrBuilderAlreadyUsed
	}
	b.built = true

	g := &Graph{byID: make([]*Node, len(b.nodes))}
	for _, n := range b.nodes {
		g.byID[n.ID] = n
		switch n.Kind {
		case KindInput:
			g.Inputs = append(g.Inputs, n)
		case KindOutput:
			g.Outputs = append(g.Outputs, n)
		case KindLogic:
			g.Logic = append(g.Logic, n)
		}
	}

	checkFanin := func(consumer *Node, h Handle) error {
		if h.IsConst() {
			return nil
		}
		if h.Node.ID < 0 || h.Node.ID >= len(g.byID) || g.byID[h.Node.ID] != h.Node {
			return ErrDanglingHandle
		}
		if h.Node.Kind == KindOutput {
			return ErrFaninIsOutput
		}
		if h.Node.ID >= consumer.ID {
			return ErrNotTopological
		}
		return nil
	}

	link := func(consumer *Node, h Handle) {
		if !h.IsConst() {
			h.Node.fanouts = append(h.Node.fanouts, consumer)
		}
	}

	for _, n := range b.nodes {
		switch n.Kind {
		case KindLogic:
			if err := checkFanin(n, n.Fanin0); err != nil {
				return nil, err
			}
			if err := checkFanin(n, n.Fanin1); err != nil {
				return nil, err
			}
			link(n, n.Fanin0)
			link(n, n.Fanin1)
		case KindOutput:
			if err := checkFanin(n, n.Fanin); err != nil {
				return nil, err
			}
			link(n, n.Fanin)
		}
	}

	for _, o := range g.Outputs {
		if !o.Fanin.IsConst() {
			o.Fanin.Node.pomark = true
		}
	}

	return g, nil
}
