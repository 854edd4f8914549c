package lutmap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lutmap/areacover"
	"github.com/katalvlaran/lutmap/cutenum"
	"github.com/katalvlaran/lutmap/cutresub"
	"github.com/katalvlaran/lutmap/delaycover"
	"github.com/katalvlaran/lutmap/lowerbound"
	"github.com/katalvlaran/lutmap/mapgen"
	"github.com/katalvlaran/lutmap/maprec"
	"github.com/katalvlaran/lutmap/mctsearch"
	"github.com/katalvlaran/lutmap/sasearch"
	"github.com/katalvlaran/lutmap/sbjgraph"
)

// Result is the outcome of a successful Map call.
type Result struct {
	Network  *mapgen.Network
	LUTCount int
	Depth    int

	// LowerBound is the optimistic LUT-count bound computed up front
	// from the subject graph alone, before any covering ran; useful for
	// reporting how close LUTCount came to the best conceivable result.
	LowerBound int
}

// Manager is the mapper facade: one configured entry point from a
// sbjgraph.Graph to a mapped Result. The zero value is not usable;
// construct with New.
type Manager struct {
	cfg config
}

// New builds a Manager with the given options applied over the
// defaults (K=6, area algorithm, fanout policy, cut_resub enabled, no
// meta-search, 1000 trials, seed 1, diagnostics discarded).
func New(opts ...Option) *Manager {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Manager{cfg: cfg}
}

// Map runs the configured pipeline end to end: cut enumeration, the
// selected covering algorithm, optional resubstitution, optional
// MCT/SA boundary-selection meta-search, and truth-table synthesis.
func (m *Manager) Map(g *sbjgraph.Graph) (*Result, error) {
	sink := m.cfg.sink
	if sink == nil {
		sink = NopSink{}
	}

	store, err := cutenum.Enumerate(g, m.cfg.k)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bound, _ := lowerbound.Compute(g)
	sink.Diagnostic(SeverityInfo, "lower bound: %d LUTs", bound)

	rec := maprec.New(g.MaxID())
	if err := m.cover(g, store, rec); err != nil {
		return nil, err
	}

	if m.cfg.cutResub {
		n, err := cutresub.New().Run(g, store, rec, m.cfg.slack)
		if err != nil {
			return nil, m.wrapInfeasible(err)
		}
		sink.Diagnostic(SeverityInfo, "cut_resub: %d nodes resubstituted", n)
	}

	if m.cfg.meta != MetaNone {
		if err := m.runMeta(g, store, rec, sink); err != nil {
			return nil, err
		}
	}

	net, err := mapgen.New().Generate(g, rec)
	if err != nil {
		return nil, m.wrapInfeasible(err)
	}

	sink.Diagnostic(SeverityInfo, "mapped: %d LUTs, depth %d", len(net.LUTs), net.MaxDepth)

	return &Result{
		Network:    net,
		LUTCount:   len(net.LUTs),
		Depth:      net.MaxDepth,
		LowerBound: bound,
	}, nil
}

func (m *Manager) cover(g *sbjgraph.Graph, store *cutenum.Store, rec *maprec.Record) error {
	var err error
	switch m.cfg.algorithm {
	case AlgorithmDelay:
		err = delaycover.New(m.cfg.policy).Run(g, store, rec, m.cfg.slack)
	default:
		err = areacover.New(m.cfg.policy).Run(g, store, rec)
	}
	if err != nil {
		return m.wrapInfeasible(err)
	}
	return nil
}

// runMeta re-covers under the boundary selection the configured
// meta-search finds, adopting it only if it strictly improves on the
// LUT count the pipeline already has. Baseline and candidates are
// measured with the same count-only Estimator the searches score their
// rollouts by.
func (m *Manager) runMeta(g *sbjgraph.Graph, store *cutenum.Store, rec *maprec.Record, sink MessageSink) error {
	baseline, err := mapgen.NewEstimator().Estimate(g, rec)
	if err != nil {
		return m.wrapInfeasible(err)
	}
	current := baseline.LUTCount

	switch m.cfg.meta {
	case MetaMCT:
		search := mctsearch.New(g, store, mctsearch.WithPolicy(m.cfg.policy), mctsearch.WithSlack(m.cfg.slack), mctsearch.WithSeed(m.cfg.seed))
		res, err := search.Run(m.cfg.trials)
		if err != nil {
			return m.wrapInfeasible(err)
		}
		sink.Diagnostic(SeverityInfo, "mct: best %d LUTs over %d trials (baseline %d)", res.LUTCount, m.cfg.trials, current)
		if res.LUTCount < current {
			adopt(rec, res.Record)
		}
	case MetaSA:
		search := sasearch.New(g, store, sasearch.WithPolicy(m.cfg.policy), sasearch.WithSlack(m.cfg.slack), sasearch.WithSeed(m.cfg.seed))
		res, err := search.Run(m.cfg.trials)
		if err != nil {
			return m.wrapInfeasible(err)
		}
		sink.Diagnostic(SeverityInfo, "sa: best %d LUTs over %d trials (baseline %d)", res.LUTCount, m.cfg.trials, current)
		if res.LUTCount < current {
			adopt(rec, res.Record)
		}
	}
	return nil
}

// adopt overwrites dst's slots in place with src's, for every node id
// src carries, so dst remains the single Record the rest of Map reads
// from.
func adopt(dst, src *maprec.Record) {
	for id := 0; id < src.Len(); id++ {
		if slot, ok := src.Get(id); ok {
			dst.Set(id, slot)
		}
	}
}

func (m *Manager) wrapInfeasible(err error) error {
	return fmt.Errorf("%w: %v", ErrInfeasible, err)
}

// IsInvalidInput reports whether err (or its chain) is ErrInvalidInput.
func IsInvalidInput(err error) bool { return errors.Is(err, ErrInvalidInput) }

// IsInfeasible reports whether err (or its chain) is ErrInfeasible.
func IsInfeasible(err error) bool { return errors.Is(err, ErrInfeasible) }
