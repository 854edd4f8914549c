package sasearch

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lutmap/areacover"
	"github.com/katalvlaran/lutmap/cutenum"
	"github.com/katalvlaran/lutmap/cutresub"
	"github.com/katalvlaran/lutmap/lowerbound"
	"github.com/katalvlaran/lutmap/mapgen"
	"github.com/katalvlaran/lutmap/maprec"
	"github.com/katalvlaran/lutmap/sbjgraph"
)

// Result is the best boundary selection a Search found, with the cover
// it produced.
type Result struct {
	Boundary []*sbjgraph.Node
	Record   *maprec.Record
	LUTCount int
	Depth    int
}

// Search runs simulated annealing over which fanout>1 nodes to pin as
// forced LUT boundaries. The zero value is not usable; construct with
// New.
type Search struct {
	g          *sbjgraph.Graph
	store      *cutenum.Store
	forced     []*sbjgraph.Node
	candidates []*sbjgraph.Node
	lowerBound int
	upperBound int
	cfg        config
	rng        *rand.Rand
}

// New builds a Search over g's fanout>1 logic nodes as boundary
// candidates, in ascending id order. Primary-output driver nodes with
// fanout > 1 are pulled out of the searched candidate set and into
// forced: they must always be LUT roots, so every evaluated boundary
// includes them regardless of the current annealing state.
func New(g *sbjgraph.Graph, store *cutenum.Store, opts ...Option) *Search {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	var forced, candidates []*sbjgraph.Node
	for _, v := range g.Logic {
		if v.FanoutCount() <= 1 {
			continue
		}
		if v.IsPO() {
			forced = append(forced, v)
		} else {
			candidates = append(candidates, v)
		}
	}
	lower, _ := lowerbound.Compute(g)
	return &Search{
		g: g, store: store, forced: forced, candidates: candidates,
		lowerBound: lower, upperBound: len(g.Logic),
		cfg: cfg, rng: newRNG(cfg.seed),
	}
}

// Run performs up to the given number of propose/accept-or-reject
// iterations and returns the best boundary selection seen. With zero
// candidates, Run performs one AreaCover pass with only the forced boundary and
// returns it directly.
func (s *Search) Run(iterations int) (*Result, error) {
	if iterations <= 0 {
		return nil, ErrNoIterations
	}
	if len(s.candidates) == 0 {
		return s.evaluate(nil)
	}

	current := make([]bool, len(s.candidates))
	currentResult, err := s.evaluate(s.boundaryOf(current))
	if err != nil {
		return nil, err
	}
	best := currentResult

	temp := s.cfg.initialTemp
	for i := 0; i < iterations; i++ {
		flip := s.rng.Intn(len(s.candidates))
		candidate := make([]bool, len(current))
		copy(candidate, current)
		candidate[flip] = !candidate[flip]

		candResult, err := s.evaluate(s.boundaryOf(candidate))
		if err != nil {
			return nil, err
		}

		currentReward := rewardFor(currentResult.LUTCount, s.lowerBound, s.upperBound)
		candReward := rewardFor(candResult.LUTCount, s.lowerBound, s.upperBound)
		delta := currentReward - candReward
		if delta <= 0 || s.rng.Float64() < math.Exp(-delta/temp) {
			current = candidate
			currentResult = candResult
		}
		if currentResult.LUTCount < best.LUTCount {
			best = currentResult
		}

		temp *= s.cfg.coolingRate
		if temp < s.cfg.minTemp {
			temp = s.cfg.minTemp
		}
	}

	return best, nil
}

func (s *Search) boundaryOf(included []bool) []*sbjgraph.Node {
	var boundary []*sbjgraph.Node
	for i, in := range included {
		if in {
			boundary = append(boundary, s.candidates[i])
		}
	}
	return boundary
}

// evaluate scores one complete boundary selection: an AreaCover pass
// pinned on forced+boundary, a resubstitution pass over the result,
// then the count-only mapgen.Estimator (the same figure Generate would
// later realize).
func (s *Search) evaluate(boundary []*sbjgraph.Node) (*Result, error) {
	full := append(append([]*sbjgraph.Node{}, s.forced...), boundary...)
	rec := maprec.New(s.g.MaxID())
	cover := areacover.New(s.cfg.policy)
	if err := cover.RunWithBoundary(s.g, s.store, rec, full); err != nil {
		return nil, err
	}
	if _, err := cutresub.New().Run(s.g, s.store, rec, s.cfg.slack); err != nil {
		return nil, err
	}
	est, err := mapgen.NewEstimator().Estimate(s.g, rec)
	if err != nil {
		return nil, err
	}
	return &Result{
		Boundary: full,
		Record:   rec,
		LUTCount: est.LUTCount,
		Depth:    est.MaxDepth,
	}, nil
}
