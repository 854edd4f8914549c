package delaycover

import "errors"

// ErrNoFeasibleCut indicates a logic node had no non-trivial cut in its
// Store entry, which only happens against a Store built with a different
// (or corrupt) graph than the one passed to Run.
var ErrNoFeasibleCut = errors.New("delaycover: node has no non-trivial cut")
