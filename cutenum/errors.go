package cutenum

import "errors"

// ErrInvalidK indicates K was outside the supported [2,16] range
//
var ErrInvalidK = errors.New("cutenum: K out of range [2,16]")
