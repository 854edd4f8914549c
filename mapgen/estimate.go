package mapgen

import (
	"github.com/katalvlaran/lutmap/maprec"
	"github.com/katalvlaran/lutmap/sbjgraph"
)

// Estimate is the count-only result of Estimator.Estimate: no truth
// tables, just the numbers mctsearch/sasearch score rollouts by.
// LUTCount is the total number of LUTs Generate would emit over the
// same record, broken down by what demands them: PosPolarity counts
// nodes realized in their plain polarity, NegPolarity counts inverted
// demands (complemented-table siblings plus input NOT pass-throughs),
// ConstLUTs counts the shared 0-input constant LUTs, one per distinct
// constant value driving an output.
type Estimate struct {
	LUTCount    int
	MaxDepth    int
	PosPolarity int
	NegPolarity int
	ConstLUTs   int
}

// Estimator computes Estimate without ever synthesizing a truth table.
// The zero value is ready to use.
type Estimator struct{}

// NewEstimator returns a ready-to-use Estimator.
func NewEstimator() *Estimator { return &Estimator{} }

// Estimate back-traces g's primary outputs through rec and reports the
// LUT counts and mapped depth Generate would produce, without the
// synthesis cost.
func (e *Estimator) Estimate(g *sbjgraph.Graph, rec *maprec.Record) (Estimate, error) {
	em, err := planEmission(g, rec)
	if err != nil {
		return Estimate{}, err
	}
	pos := 0
	for _, id := range em.order {
		if em.req[id]&needPos != 0 {
			pos++
		}
	}
	return Estimate{
		LUTCount:    em.count,
		MaxDepth:    em.maxDepth,
		PosPolarity: pos,
		NegPolarity: len(em.negID) + len(em.notID),
		ConstLUTs:   len(em.constID),
	}, nil
}
