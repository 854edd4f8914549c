package mapgen

import "github.com/katalvlaran/lutmap/sbjgraph"

// MaxInputs is the largest cut size this package's truth-table synthesis
// supports, matching cutenum's K upper bound.
const MaxInputs = 16

// LUT is one synthesized lookup table: Inputs names the leaf node ids in
// the order TruthTable's bit positions assume (bit i of an assignment
// index selects Inputs[i]); TruthTable is batched into 64-bit words,
// word w bit p realizing assignment index w*64+p.
type LUT struct {
	ID         int
	Inputs     []int
	TruthTable []uint64
}

// Binding ties a primary output (or DFF/latch data input) to the LUT
// realizing the polarity it demands, or, for a plain non-inverted
// pass-through, directly to an input name. Inverted and constant
// demands never appear here: they are realized as NOT and constant
// LUTs so every binding either names a LUT or an unmodified input.
type Binding struct {
	Name      string
	IsLUT     bool
	LUTID     int    // valid iff IsLUT
	InputName string // valid iff !IsLUT
	Seq       *sbjgraph.SeqInfo
}

// Network is a complete mapped circuit: every synthesized LUT plus the
// output bindings wiring them (and any pass-through/constant outputs)
// back to primary output names.
type Network struct {
	Inputs   []string
	LUTs     []LUT
	Outputs  []Binding
	MaxDepth int
}
