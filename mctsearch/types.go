package mctsearch

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lutmap/areacover"
)

// Option configures a Search at construction time.
type Option func(*config)

type config struct {
	policy  areacover.Policy
	explore float64
	slack   int
	seed    int64
}

func defaultConfig() config {
	return config{policy: areacover.Fanout, explore: 0.5, slack: 0, seed: 1}
}

// WithPolicy selects the AreaCover weighting policy used to score each
// rollout. Default: areacover.Fanout.
func WithPolicy(p areacover.Policy) Option {
	return func(c *config) { c.policy = p }
}

// WithExploration sets the UCB1 exploration constant Cp. Panics if k <= 0:
// a non-positive constant degrades the search to pure exploitation and
// is always a caller mistake rather than a legitimate configuration.
func WithExploration(k float64) Option {
	if k <= 0 {
		panic("mctsearch: exploration constant must be > 0")
	}
	return func(c *config) { c.explore = k }
}

// WithSlack sets the depth slack handed to the resubstitution pass
// inside every rollout evaluation (-1 lifts the depth budget entirely).
// Panics if s < -1.
func WithSlack(s int) Option {
	if s < -1 {
		panic("mctsearch: slack must be >= -1")
	}
	return func(c *config) { c.slack = s }
}

// WithSeed fixes the random source driving rollouts, for reproducible
// searches. Default: 1.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// node is one tree position: a fixed in/out decision for every
// candidate with index < depth, and an as-yet-undecided suffix.
type node struct {
	parent      *node
	children    [2]*node
	depth       int // number of leading candidates already decided
	included    bool
	visits      int
	totalReward float64
}

// ucb1 scores n for selection: mean + Cp * sqrt(2 ln N / n), with an
// unvisited child always winning.
func (n *node) ucb1(explore float64, parentVisits int) float64 {
	if n.visits == 0 {
		return math.Inf(1)
	}
	mean := n.totalReward / float64(n.visits)
	return mean + explore*math.Sqrt(2*math.Log(float64(parentVisits))/float64(n.visits))
}

// decisions walks n's ancestor chain and returns, indexed by candidate
// position, which ones were included. Only positions < n.depth are
// meaningful.
func (n *node) decisions(numCandidates int) []bool {
	out := make([]bool, numCandidates)
	for cur := n; cur.parent != nil; cur = cur.parent {
		out[cur.depth-1] = cur.included
	}
	return out
}

func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// rewardFor normalizes a rollout's LUT count against the optimistic
// lower bound and the trivial upper bound (one LUT per logic node), so
// a rollout landing on the lower bound scores 1 and one landing on the
// upper bound scores 0. Degenerates to 1 when upper == lower (a graph
// with no slack between the two bounds), since every feasible rollout
// is then optimal by construction.
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
