package mapgen

import "errors"

// ErrTooManyInputs indicates a LUT's cut has more leaves than this
// package's synthesis path supports.
var ErrTooManyInputs = errors.New("mapgen: cut exceeds maximum supported LUT input count")

// ErrMissingSlot indicates rec has no assigned slot for a node the
// back-trace reached, meaning rec was not fully covered before
// MapGenerator/MapEstimator ran over it.
var ErrMissingSlot = errors.New("mapgen: back-trace reached an unassigned node")
