package mctsearch

import (
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

// Search runs Monte Carlo Tree Search over which fanout>1 nodes to pin
// as forced LUT boundaries. The zero value is not usable; construct
// with New.
type Search struct {
	g          *sbjgraph.Graph
	store      *cutenum.Store
	forced     []*sbjgraph.Node
	candidates []*sbjgraph.Node
	bias       []float64 // per-candidate rollout selection probability
	lowerBound int
	upperBound int
	cfg        config
	rng        *rand.Rand
}

// New builds a Search over g's fanout>1 logic nodes as boundary
// candidates, in ascending id order. Primary-output driver nodes with
// fanout > 1 are pulled out of the searched candidate set and into
// forced: they must always be LUT roots, so every evaluated boundary
// includes them regardless of what the tree decides.
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
	// Rollout coin bias per candidate: a candidate sitting in a larger
	// single-output cone anchors more reconvergent structure, so the
	// default policy leans toward pinning it as a boundary. A cone of
	// size s gives selection probability s/(s+1), i.e. 1/2 for an
	// isolated node, approaching 1 for a large cone.
	sizes := lowerbound.ConeSizes(g)
	bias := make([]float64, len(candidates))
	for i, cand := range candidates {
		s := sizes[cand.ID]
		if s < 1 {
			s = 1
		}
		bias[i] = float64(s) / float64(s+1)
	}
	lower, _ := lowerbound.Compute(g)
	return &Search{
		g: g, store: store, forced: forced, candidates: candidates, bias: bias,
		lowerBound: lower, upperBound: len(g.Logic),
		cfg: cfg, rng: newRNG(cfg.seed),
	}
}

// Run performs the given number of select/expand/simulate/backpropagate
// iterations and returns the best boundary selection found. With zero
// candidates (no shareable decision left to search), Run still performs
// one AreaCover pass over the forced boundary and returns it directly.
func (s *Search) Run(iterations int) (*Result, error) {
	if iterations <= 0 {
		return nil, ErrNoIterations
	}
	if len(s.candidates) == 0 {
		return s.evaluate(nil)
	}

	root := &node{}
	var best *Result

	for i := 0; i < iterations; i++ {
		path := []*node{root}
		cur := root

		for cur.depth < len(s.candidates) && cur.children[0] != nil && cur.children[1] != nil {
			cur = s.selectChild(cur)
			path = append(path, cur)
		}

		if cur.depth < len(s.candidates) {
			haveFalse, haveTrue := false, false
			for _, c := range cur.children {
				if c == nil {
					continue
				}
				if c.included {
					haveTrue = true
				} else {
					haveFalse = true
				}
			}
			// Decision semantics live on node.included, never on array
			// position, since reorderChildren may swap slots after a
			// backup: try exclude (false) before include (true).
			includeNew := haveFalse && !haveTrue
			child := &node{parent: cur, depth: cur.depth + 1, included: includeNew}
			if cur.children[0] == nil {
				cur.children[0] = child
			} else {
				cur.children[1] = child
			}
			cur = child
			path = append(path, cur)
		}

		boundary := s.rollout(cur)
		result, err := s.evaluate(boundary)
		if err != nil {
			return nil, err
		}
		reward := rewardFor(result.LUTCount, s.lowerBound, s.upperBound)

		for _, n := range path {
			n.visits++
			n.totalReward += reward
			n.reorderChildren(s.cfg.explore)
		}

		if best == nil || result.LUTCount < best.LUTCount {
			best = result
		}
	}

	return best, nil
}

// reorderChildren keeps the best-scoring child at index 0 after every
// backup, so descent always tries the currently-favored branch first.
func (n *node) reorderChildren(explore float64) {
	a, b := n.children[0], n.children[1]
	if a == nil || b == nil {
		return
	}
	if b.ucb1(explore, n.visits) > a.ucb1(explore, n.visits) {
		n.children[0], n.children[1] = b, a
	}
}

func (s *Search) selectChild(n *node) *node {
	best := n.children[0]
	bestScore := best.ucb1(s.cfg.explore, n.visits)
	for _, c := range n.children[1:] {
		if c == nil {
			continue
		}
		if score := c.ucb1(s.cfg.explore, n.visits); score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

// rollout completes a full boundary decision vector: the fixed prefix
// recorded by n's ancestor chain, plus a biased coin flip for every
// undecided candidate (bias from its reconvergent cone size).
func (s *Search) rollout(n *node) []*sbjgraph.Node {
	decided := n.decisions(len(s.candidates))
	var boundary []*sbjgraph.Node
	for i, cand := range s.candidates {
		include := decided[i]
		if i >= n.depth {
			include = s.rng.Float64() < s.bias[i]
		}
		if include {
			boundary = append(boundary, cand)
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
