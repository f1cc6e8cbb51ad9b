package filter

import "errors"

var (
	// ErrInvalidParams reports a filter design request that cannot be
	// satisfied (bad order, cutoff outside (0, Nyquist), inverted band
	// edges, unknown type).
	ErrInvalidParams = errors.New("filter: invalid design parameters")

	// ErrUnknownType reports a filter type name outside the recognized
	// set {low, high, stop, bandpass}.
	ErrUnknownType = errors.New("filter: unknown filter type")
)
