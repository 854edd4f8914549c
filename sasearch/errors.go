package sasearch

import "errors"

// ErrNoIterations indicates Search was configured with Iterations <= 0.
var ErrNoIterations = errors.New("sasearch: iterations must be > 0")
