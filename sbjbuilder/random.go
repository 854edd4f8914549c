package sbjbuilder

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/lutmap/sbjgraph"
)

// Option customizes RandomAIG. Option constructors validate and panic on
// meaningless values, matching the builder's validate-on-construction policy;
// RandomAIG itself never panics once options are applied.
type Option func(*config)

type config struct {
	inputs  int
	gates   int
	outputs int
	xorProb float64
	rng     *rand.Rand
}

// WithInputs sets the number of primary inputs (>= 2).
func WithInputs(n int) Option {
	if n < 2 {
		panic("sbjbuilder: WithInputs(n<2)")
	}
	return func(c *config) { c.inputs = n }
}

// WithGates sets the number of logic gates to generate (>= 1).
func WithGates(n int) Option {
	if n < 1 {
		panic("sbjbuilder: WithGates(n<1)")
	}
	return func(c *config) { c.gates = n }
}

// WithOutputs sets the number of primary outputs (>= 1); each output
// drives a distinct randomly chosen node so every output is reachable.
func WithOutputs(n int) Option {
	if n < 1 {
		panic("sbjbuilder: WithOutputs(n<1)")
	}
	return func(c *config) { c.outputs = n }
}

// WithXorProb sets the probability (in [0,1]) that a generated gate is
// XOR rather than AND.
func WithXorProb(p float64) Option {
	if p < 0 || p > 1 {
		panic("sbjbuilder: WithXorProb out of [0,1]")
	}
	return func(c *config) { c.xorProb = p }
}

// WithSeed seeds the deterministic RNG driving gate/fanin selection.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

func defaultConfig() config {
	return config{
		inputs:  8,
		gates:   16,
		outputs: 1,
		xorProb: 0.25,
		rng:     rand.New(rand.NewSource(1)),
	}
}

// RandomAIG builds a seeded random subject graph: c.inputs primary
// inputs, c.gates AND/XOR gates each wired to two earlier nodes (chosen
// uniformly, with a random inversion bit), and c.outputs primary outputs
// each driven by a distinct randomly chosen node (inputs or gates) so
// that every output is realizable. Deterministic given the same options.
func RandomAIG(opts ...Option) *sbjgraph.Graph {
	c := defaultConfig()
	for _, o := range opts {
		o(&c)
	}

	b := sbjgraph.NewBuilder()
	pool := make([]sbjgraph.Handle, 0, c.inputs+c.gates)
	for i := 0; i < c.inputs; i++ {
		pool = append(pool, b.AddInput("in"+strconv.Itoa(i), nil))
	}

	pick := func() sbjgraph.Handle {
		h := pool[c.rng.Intn(len(pool))]
		if c.rng.Intn(2) == 0 {
			h = h.Not()
		}
		return h
	}

	for i := 0; i < c.gates; i++ {
		lhs, rhs := pick(), pick()
		var h sbjgraph.Handle
		if c.rng.Float64() < c.xorProb {
			h = b.AddXor(lhs, rhs)
		} else {
			h = b.AddAnd(lhs, rhs)
		}
		pool = append(pool, h)
	}

	outs := c.outputs
	if outs > len(pool) {
		outs = len(pool)
	}
	// Sample distinct output drivers without replacement via a shuffled
	// index prefix, keeping determinism tied to c.rng.
	order := c.rng.Perm(len(pool))
	for i := 0; i < outs; i++ {
		b.AddOutput("out"+strconv.Itoa(i), pool[order[i]], nil)
	}

	g, err := b.Build()
	if err != nil {
		panic(err) // unreachable: generator only emits well-formed handles
	}
	return g
}
