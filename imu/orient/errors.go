package orient

import "errors"

// ErrInvalidConfig reports a configuration rejected before any
// computation: non-positive sample rate, weight outside [0,1),
// filter order below 1, or an unrecognized filter type.
var ErrInvalidConfig = errors.New("orient: invalid configuration")
