package mctsearch

import "errors"

// ErrNoIterations indicates Search was configured with Iterations <= 0.
var ErrNoIterations = errors.New("mctsearch: iterations must be > 0")
