package sbjbuilder

import "errors"

// ErrTooFewInputs indicates a requested input count is below the
// constructor's minimum (e.g. RandomAIG needs at least 2 inputs).
var ErrTooFewInputs = errors.New("sbjbuilder: too few inputs")

// ErrTooFewGates indicates a requested gate count is below the
// constructor's minimum.
var ErrTooFewGates = errors.New("sbjbuilder: too few gates")
