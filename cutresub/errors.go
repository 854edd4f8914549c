package cutresub

import "errors"

// ErrNoFeasibleCut indicates a logic node had no non-trivial cut in its
// Store entry, which only happens against a Store built with a different
// (or corrupt) graph than the one the incoming Record was covered with.
var ErrNoFeasibleCut = errors.New("cutresub: node has no non-trivial cut")
