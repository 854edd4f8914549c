package bnio

import (
	"fmt"

	"github.com/katalvlaran/lutmap/sbjgraph"
)

// color marks a logic node's traversal state during the iterative,
// stack-driven topological conversion (recursion in deep
// graphs must become an explicit work-stack form).
type color uint8

const (
	white color = iota
	gray
	black
)

type converter struct {
	b        *sbjgraph.Builder
	net      *Network
	logicOf  map[string]*LogicNode
	handleOf map[string]sbjgraph.Handle
	colorOf  map[string]color
}

// Convert builds an immutable sbjgraph.Graph from an external Network.
// Sequential elements are copied through as opaque SeqInfo pass-through
// pairs on the matching input/output nodes; the mapper never interprets
// them. Returns ErrTruthVectorUnsupported, ErrBadArity, ErrUnknownFanin,
// ErrCyclicNetwork, or ErrDuplicateID on malformed input.
func Convert(net *Network) (*sbjgraph.Graph, error) {
	c := &converter{
		b:        sbjgraph.NewBuilder(),
		net:      net,
		logicOf:  make(map[string]*LogicNode, len(net.Logic)),
		handleOf: make(map[string]sbjgraph.Handle, len(net.Logic)+len(net.PrimaryInputs)),
		colorOf:  make(map[string]color, len(net.Logic)),
	}

	for i := range net.Logic {
		ln := &net.Logic[i]
		if _, dup := c.logicOf[ln.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, ln.ID)
		}
		c.logicOf[ln.ID] = ln
	}

	for _, id := range net.PrimaryInputs {
		if err := c.defineInput(id, nil); err != nil {
			return nil, err
		}
	}
	for _, d := range net.DFFs {
		if err := c.defineInput(d.DataOut, &sbjgraph.SeqInfo{Clock: d.Clock, Clear: d.Clear, Preset: d.Preset}); err != nil {
			return nil, err
		}
	}
	for _, l := range net.Latches {
		if err := c.defineInput(l.DataOut, &sbjgraph.SeqInfo{IsLatch: true, Enable: l.Enable, Clear: l.Clear, Preset: l.Preset}); err != nil {
			return nil, err
		}
	}

	// Resolve in the network's own declaration order, never map order:
	// node id assignment in the built graph must be reproducible across
	// runs.
	for i := range net.Logic {
		if _, err := c.resolve(net.Logic[i].ID); err != nil {
			return nil, err
		}
	}

	for _, id := range net.PrimaryOutputs {
		h, err := c.lookup(Literal{ID: id})
		if err != nil {
			return nil, err
		}
		c.b.AddOutput(id, h, nil)
	}
	for _, d := range net.DFFs {
		h, err := c.lookup(Literal{ID: d.DataIn})
		if err != nil {
			return nil, err
		}
		c.b.AddOutput(d.DataIn, h, &sbjgraph.SeqInfo{Clock: d.Clock, Clear: d.Clear, Preset: d.Preset})
	}
	for _, l := range net.Latches {
		h, err := c.lookup(Literal{ID: l.DataIn})
		if err != nil {
			return nil, err
		}
		c.b.AddOutput(l.DataIn, h, &sbjgraph.SeqInfo{IsLatch: true, Enable: l.Enable, Clear: l.Clear, Preset: l.Preset})
	}

	return c.b.Build()
}

func (c *converter) defineInput(id string, seq *sbjgraph.SeqInfo) error {
	if _, dup := c.handleOf[id]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	c.handleOf[id] = c.b.AddInput(id, seq)
	return nil
}

// lookup resolves a Literal to a Handle, applying its inversion bit. The
// referenced id must already have a Handle (input) or have been resolved
// via resolve (logic node).
func (c *converter) lookup(lit Literal) (sbjgraph.Handle, error) {
	h, err := c.resolve(lit.ID)
	if err != nil {
		return sbjgraph.Handle{}, err
	}
	if lit.Inverted {
		h = h.Not()
	}
	return h, nil
}

// resolve returns the Handle for network id, converting its defining
// logic node (and, transitively, its fanins) on first use. Iterative:
// uses an explicit stack of pending logic-node ids rather than recursion,
// so conversion depth is bounded only by available memory, not the Go
// call stack.
func (c *converter) resolve(id string) (sbjgraph.Handle, error) {
	if h, ok := c.handleOf[id]; ok {
		return h, nil
	}
	ln, ok := c.logicOf[id]
	if !ok {
		return sbjgraph.Handle{}, fmt.Errorf("%w: %q", ErrUnknownFanin, id)
	}

	type frame struct {
		ln      *LogicNode
		faninIx int
	}
	stack := []frame{{ln: ln}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		id := top.ln.ID

		if top.faninIx == 0 {
			if c.colorOf[id] == gray {
				return sbjgraph.Handle{}, fmt.Errorf("%w: %q", ErrCyclicNetwork, id)
			}
			c.colorOf[id] = gray
		}

		// Push any not-yet-resolved fanin that is itself a logic node.
		pushed := false
		for ; top.faninIx < len(top.ln.Fanins); top.faninIx++ {
			fid := top.ln.Fanins[top.faninIx].ID
			if _, done := c.handleOf[fid]; done {
				continue
			}
			dep, isLogic := c.logicOf[fid]
			if !isLogic {
				return sbjgraph.Handle{}, fmt.Errorf("%w: %q", ErrUnknownFanin, fid)
			}
			if c.colorOf[fid] == gray {
				return sbjgraph.Handle{}, fmt.Errorf("%w: %q", ErrCyclicNetwork, fid)
			}
			top.faninIx++
			stack = append(stack, frame{ln: dep})
			pushed = true
			break
		}
		if pushed {
			continue
		}

		h, err := c.emit(top.ln)
		if err != nil {
			return sbjgraph.Handle{}, err
		}
		c.handleOf[id] = h
		c.colorOf[id] = black
		stack = stack[:len(stack)-1]
	}

	return c.handleOf[ln.ID], nil
}

// emit materializes one logic node's gate (all fanins already resolved)
// by decomposing it into the two-input AND/XOR primitives sbjgraph
// supports, applying De Morgan's laws for OR/NOR.
func (c *converter) emit(ln *LogicNode) (sbjgraph.Handle, error) {
	faninHandle := func(i int) (sbjgraph.Handle, error) {
		lit := ln.Fanins[i]
		h, ok := c.handleOf[lit.ID]
		if !ok {
			return sbjgraph.Handle{}, fmt.Errorf("%w: %q", ErrUnknownFanin, lit.ID)
		}
		if lit.Inverted {
			h = h.Not()
		}
		return h, nil
	}

	arity := len(ln.Fanins)

	switch ln.Type {
	case C0:
		if arity != 0 {
			return sbjgraph.Handle{}, fmt.Errorf("%w: %q", ErrBadArity, ln.ID)
		}
		return sbjgraph.Const(false), nil
	case C1:
		if arity != 0 {
			return sbjgraph.Handle{}, fmt.Errorf("%w: %q", ErrBadArity, ln.ID)
		}
		return sbjgraph.Const(true), nil
	case Buf, Not:
		if arity != 1 {
			return sbjgraph.Handle{}, fmt.Errorf("%w: %q", ErrBadArity, ln.ID)
		}
		h, err := faninHandle(0)
		if err != nil {
			return sbjgraph.Handle{}, err
		}
		if ln.Type == Not {
			h = h.Not()
		}
		return h, nil
	case And, Nand:
		h, err := c.foldAnd(ln, faninHandle)
		if err != nil {
			return sbjgraph.Handle{}, err
		}
		if ln.Type == Nand {
			h = h.Not()
		}
		return h, nil
	case Or, Nor:
		// a OR b = NOT(NOT a AND NOT b); fold with inverted fanins.
		invFanin := func(i int) (sbjgraph.Handle, error) {
			h, err := faninHandle(i)
			return h.Not(), err
		}
		h, err := c.foldAnd(ln, invFanin)
		if err != nil {
			return sbjgraph.Handle{}, err
		}
		if ln.Type == Or {
			h = h.Not()
		}
		return h, nil
	case Xor, Xnor:
		h, err := c.foldXor(ln, faninHandle)
		if err != nil {
			return sbjgraph.Handle{}, err
		}
		if ln.Type == Xnor {
			h = h.Not()
		}
		return h, nil
	case ExprNode:
		if ln.Expr == nil {
			return sbjgraph.Handle{}, fmt.Errorf("%w: %q has no expression", ErrBadArity, ln.ID)
		}
		return c.evalExpr(ln, ln.Expr, faninHandle)
	case TruthVector:
		return sbjgraph.Handle{}, fmt.Errorf("%w: %q", ErrTruthVectorUnsupported, ln.ID)
	default:
		return sbjgraph.Handle{}, fmt.Errorf("%w: %q unknown node type", ErrBadArity, ln.ID)
	}
}

func (c *converter) foldAnd(ln *LogicNode, fanin func(int) (sbjgraph.Handle, error)) (sbjgraph.Handle, error) {
	if len(ln.Fanins) < 2 {
		return sbjgraph.Handle{}, fmt.Errorf("%w: %q needs >= 2 fanins", ErrBadArity, ln.ID)
	}
	acc, err := fanin(0)
	if err != nil {
		return sbjgraph.Handle{}, err
	}
	for i := 1; i < len(ln.Fanins); i++ {
		h, err := fanin(i)
		if err != nil {
			return sbjgraph.Handle{}, err
		}
		acc = c.b.AddAnd(acc, h)
	}
	return acc, nil
}

func (c *converter) foldXor(ln *LogicNode, fanin func(int) (sbjgraph.Handle, error)) (sbjgraph.Handle, error) {
	if len(ln.Fanins) < 2 {
		return sbjgraph.Handle{}, fmt.Errorf("%w: %q needs >= 2 fanins", ErrBadArity, ln.ID)
	}
	acc, err := fanin(0)
	if err != nil {
		return sbjgraph.Handle{}, err
	}
	for i := 1; i < len(ln.Fanins); i++ {
		h, err := fanin(i)
		if err != nil {
			return sbjgraph.Handle{}, err
		}
		acc = c.b.AddXor(acc, h)
	}
	return acc, nil
}

// evalExpr recursively lowers an Expr tree into AND/XOR handles. Expr
// trees are expected to be shallow (hand-authored Boolean formulas), so
// plain recursion (unlike the network-wide topological walk above) is
// acceptable here.
func (c *converter) evalExpr(ln *LogicNode, e *Expr, fanin func(int) (sbjgraph.Handle, error)) (sbjgraph.Handle, error) {
	switch e.Op {
	case ExprLeaf:
		if e.LeafIdx < 0 || e.LeafIdx >= len(ln.Fanins) {
			return sbjgraph.Handle{}, fmt.Errorf("%w: %q leaf index out of range", ErrBadArity, ln.ID)
		}
		return fanin(e.LeafIdx)
	case ExprNot:
		if len(e.Children) != 1 {
			return sbjgraph.Handle{}, fmt.Errorf("%w: %q NOT expr needs 1 child", ErrBadArity, ln.ID)
		}
		h, err := c.evalExpr(ln, e.Children[0], fanin)
		if err != nil {
			return sbjgraph.Handle{}, err
		}
		return h.Not(), nil
	case ExprAnd, ExprXor:
		if len(e.Children) < 2 {
			return sbjgraph.Handle{}, fmt.Errorf("%w: %q expr needs >= 2 children", ErrBadArity, ln.ID)
		}
		acc, err := c.evalExpr(ln, e.Children[0], fanin)
		if err != nil {
			return sbjgraph.Handle{}, err
		}
		for _, ch := range e.Children[1:] {
			h, err := c.evalExpr(ln, ch, fanin)
			if err != nil {
				return sbjgraph.Handle{}, err
			}
			if e.Op == ExprAnd {
				acc = c.b.AddAnd(acc, h)
			} else {
				acc = c.b.AddXor(acc, h)
			}
		}
		return acc, nil
	case ExprOr:
		if len(e.Children) < 2 {
			return sbjgraph.Handle{}, fmt.Errorf("%w: %q expr needs >= 2 children", ErrBadArity, ln.ID)
		}
		acc, err := c.evalExpr(ln, e.Children[0], fanin)
		if err != nil {
			return sbjgraph.Handle{}, err
		}
		acc = acc.Not()
		for _, ch := range e.Children[1:] {
			h, err := c.evalExpr(ln, ch, fanin)
			if err != nil {
				return sbjgraph.Handle{}, err
			}
			acc = c.b.AddAnd(acc, h.Not())
		}
		return acc.Not(), nil
	default:
		return sbjgraph.Handle{}, fmt.Errorf("%w: %q unknown expr op", ErrBadArity, ln.ID)
	}
}
