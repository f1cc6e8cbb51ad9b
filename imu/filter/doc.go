// Package filter provides the digital smoothing stage for fused angle
// sequences: Butterworth designs built from cascaded biquad sections and a
// zero-phase (forward-backward) batch application.
//
// The filters here are batch post-processors. They are never part of the
// per-sample fusion recursion; callers apply them to a complete series
// after fusion.
package filter
