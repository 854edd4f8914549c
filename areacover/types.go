package areacover

// Policy selects how a candidate cut's leaves are weighted when summing
// their already-known cost into the candidate's total.
type Policy uint8

const (
	// Fanout weights each leaf by 1/leaf.FanoutCount(): a leaf shared by
	// many consumers contributes proportionally less to any one of them.
	Fanout Policy = iota
	// Flow distributes one unit of flow from the candidate cut's root
	// down to its leaves, dividing by the fanout count of the node being
	// entered at every internal step, so a leaf's weight reflects how
	// much of the cut's own internal structure actually routes through
	// it rather than its global fanout alone.
	Flow
)

func (p Policy) String() string {
	if p == Flow {
		return "flow"
	}
	return "fanout"
}

// Cover runs area-oriented covering under a fixed Policy. The zero value
// is not usable; construct with New.
type Cover struct {
	policy Policy
}

// New builds a Cover using the given weighting policy.
func New(policy Policy) *Cover {
	return &Cover{policy: policy}
}

// Policy returns the weighting policy c was constructed with.
func (c *Cover) Policy() Policy { return c.policy }
