package lutmap

import "errors"

// ErrInvalidInput indicates a request parameter (K, an options-string
// token value, an unsupported graph feature) is out of range or
// malformed. Fails fast, before any covering work starts.
var ErrInvalidInput = errors.New("lutmap: invalid input")

// ErrInfeasible indicates a node had no usable cut during covering. This
// cannot happen after successful cut enumeration on a well-formed graph;
// it is surfaced as a sentinel rather than a panic so tests can assert
// on it directly rather than a bare panic.
var ErrInfeasible = errors.New("lutmap: infeasible cover")
