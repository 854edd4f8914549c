package lutmap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lutmap/areacover"
)

// Algorithm selects the covering strategy Map runs first.
type Algorithm int

const (
	AlgorithmArea Algorithm = iota
	AlgorithmDelay
)

func (a Algorithm) String() string {
	if a == AlgorithmDelay {
		return "delay"
	}
	return "area"
}

// MetaSearch selects the optional boundary-selection meta-search Map
// runs after the initial cover (and resubstitution, if enabled).
type MetaSearch int

const (
	MetaNone MetaSearch = iota
	MetaMCT
	MetaSA
)

func (m MetaSearch) String() string {
	switch m {
	case MetaMCT:
		return "mct"
	case MetaSA:
		return "sa"
	default:
		return "none"
	}
}

type config struct {
	k         int
	algorithm Algorithm
	policy    areacover.Policy
	cutResub  bool
	slack     int
	meta      MetaSearch
	trials    int
	seed      int64
	verbose   bool
	sink      MessageSink
}

func defaultConfig() config {
	return config{
		k:         6,
		algorithm: AlgorithmArea,
		policy:    areacover.Fanout,
		cutResub:  true,
		slack:     0,
		meta:      MetaNone,
		trials:    1000,
		seed:      1,
		sink:      NopSink{},
	}
}

// Option configures a Manager at construction time.
type Option func(*config)

// WithK sets the LUT input bound. Panics if k is outside [2,16]: this
// is always a caller mistake, the same bound cutenum.Enumerate enforces
// at runtime for values that reach it through Configure instead.
func WithK(k int) Option {
	if k < 2 || k > 16 {
		panic("lutmap: K must be in [2,16]")
	}
	return func(c *config) { c.k = k }
}

// WithAlgorithm selects area- or delay-oriented covering.
func WithAlgorithm(a Algorithm) Option {
	return func(c *config) { c.algorithm = a }
}

// WithPolicy selects the AreaCover weighting policy.
func WithPolicy(p areacover.Policy) Option {
	return func(c *config) { c.policy = p }
}

// WithCutResub enables or disables the post-cover resubstitution pass.
// Default: enabled.
func WithCutResub(enabled bool) Option {
	return func(c *config) { c.cutResub = enabled }
}

// WithSlack sets the delay slack passed to DelayCover and CutResub: 0
// enforces the minimum required depth exactly, a positive value allows
// required depth to exceed the minimum by that many levels, and -1 lifts
// the depth budget entirely so both stages optimize purely for area.
// Panics if s < -1.
func WithSlack(s int) Option {
	if s < -1 {
		panic("lutmap: slack must be >= -1")
	}
	return func(c *config) { c.slack = s }
}

// WithMeta selects the optional boundary-selection meta-search run after
// the initial cover.
func WithMeta(m MetaSearch) Option {
	return func(c *config) { c.meta = m }
}

// WithTrials sets the MCT/SA iteration count. Panics if n <= 0.
func WithTrials(n int) Option {
	if n <= 0 {
		panic("lutmap: trials must be > 0")
	}
	return func(c *config) { c.trials = n }
}

// WithSeed fixes the PRNG seed driving MCT/SA, for reproducible runs.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithVerbose toggles a built-in printf diagnostic sink when no
// explicit WithSink was given.
func WithVerbose(v bool) Option {
	return func(c *config) {
		c.verbose = v
		if v {
			if _, isNop := c.sink.(NopSink); isNop {
				c.sink = printfSink{}
			}
		}
	}
}

// WithSink injects a custom diagnostic sink. Panics on a nil sink: a nil
// MessageSink would panic on first use anyway, deeper in the call stack
// where the failure is harder to trace back to the caller.
func WithSink(sink MessageSink) Option {
	if sink == nil {
		panic("lutmap: sink must not be nil")
	}
	return func(c *config) { c.sink = sink }
}

// Configure applies a comma/colon-separated key[=value] options grammar: comma- or
// colon-separated `key` or `key=value` tokens. Recognized keys:
// k=<n>, algorithm=area|delay, fanout, flow, cut_resub, no_cut_resub,
// mct, sa, trials=<n>, seed=<n>, slack=<n>, verbose. Unknown keys are
// silently ignored, per spec; a recognized key with a malformed value
// reports ErrInvalidInput.
func (m *Manager) Configure(optsString string) error {
	tokens := strings.FieldsFunc(optsString, func(r rune) bool { return r == ',' || r == ':' })
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		key, value, _ := strings.Cut(tok, "=")
		if err := m.applyToken(key, value); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) applyToken(key, value string) error {
	switch key {
	case "k":
		n, err := strconv.Atoi(value)
		if err != nil || n < 2 || n > 16 {
			return fmt.Errorf("%w: k=%q out of range [2,16]", ErrInvalidInput, value)
		}
		m.cfg.k = n
	case "algorithm":
		switch value {
		case "area":
			m.cfg.algorithm = AlgorithmArea
		case "delay":
			m.cfg.algorithm = AlgorithmDelay
		default:
			return fmt.Errorf("%w: algorithm=%q unrecognized", ErrInvalidInput, value)
		}
	case "fanout":
		m.cfg.policy = areacover.Fanout
	case "flow":
		m.cfg.policy = areacover.Flow
	case "cut_resub":
		m.cfg.cutResub = true
	case "no_cut_resub":
		m.cfg.cutResub = false
	case "mct":
		m.cfg.meta = MetaMCT
	case "sa":
		m.cfg.meta = MetaSA
	case "trials":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: trials=%q must be a positive integer", ErrInvalidInput, value)
		}
		m.cfg.trials = n
	case "seed":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: seed=%q must be an integer", ErrInvalidInput, value)
		}
		m.cfg.seed = n
	case "slack":
		n, err := strconv.Atoi(value)
		if err != nil || n < -1 {
			return fmt.Errorf("%w: slack=%q must be an integer >= -1", ErrInvalidInput, value)
		}
		m.cfg.slack = n
	case "verbose":
		m.cfg.verbose = true
		if _, isNop := m.cfg.sink.(NopSink); isNop {
			m.cfg.sink = printfSink{}
		}
	default:
		// Unrecognized keys are silently ignored.
	}
	return nil
}
