package sasearch

import (
	"math/rand"

	"github.com/katalvlaran/lutmap/areacover"
)

// Option configures a Search at construction time.
type Option func(*config)

type config struct {
	policy      areacover.Policy
	initialTemp float64
	coolingRate float64
	minTemp     float64
	slack       int
	seed        int64
}

func defaultConfig() config {
	return config{policy: areacover.Fanout, initialTemp: 1.0, coolingRate: 0.999, minTemp: 1e-3, slack: 0, seed: 1}
}

// WithPolicy selects the AreaCover weighting policy used to score each
// candidate move. Default: areacover.Fanout.
func WithPolicy(p areacover.Policy) Option {
	return func(c *config) { c.policy = p }
}

// WithInitialTemperature sets the starting annealing temperature.
// Panics if t <= 0: a non-positive starting temperature makes the
// Metropolis acceptance probability ill-defined, always a caller
// mistake.
func WithInitialTemperature(t float64) Option {
	if t <= 0 {
		panic("sasearch: initial temperature must be > 0")
	}
	return func(c *config) { c.initialTemp = t }
}

// WithCoolingRate sets the per-iteration geometric decay factor applied
// to the temperature. Panics if r is outside (0, 1]: a rate <= 0 would
// collapse the temperature instantly or make it negative, and a rate
// > 1 would make the search heat up instead of cool down.
func WithCoolingRate(r float64) Option {
	if r <= 0 || r > 1 {
		panic("sasearch: cooling rate must be in (0, 1]")
	}
	return func(c *config) { c.coolingRate = r }
}

// WithSlack sets the depth slack handed to the resubstitution pass
// inside every candidate evaluation (-1 lifts the depth budget
// entirely). Panics if s < -1.
func WithSlack(s int) Option {
	if s < -1 {
		panic("sasearch: slack must be >= -1")
	}
	return func(c *config) { c.slack = s }
}

// WithSeed fixes the random source driving move proposals and
// Metropolis acceptance draws, for reproducible searches. Default: 1.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// rewardFor normalizes a boundary's LUT count against the optimistic
// lower bound and the trivial upper bound (one LUT per logic node), so
// a boundary landing on the lower bound scores 1 and one landing on the
// upper bound scores 0. Identical to mctsearch's normalization, per
// spec: SA's acceptance criterion compares this reward rather than raw
// LUT counts directly.
func rewardFor(lutCount, lower, upper int) float64 {
	if upper <= lower {
		return 1
	}
	reward := float64(upper-lutCount) / float64(upper-lower)
	if reward < 0 {
		return 0
	}
	if reward > 1 {
		return 1
	}
	return reward
}
