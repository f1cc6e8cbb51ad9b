package orient

import (
	"fmt"

	"github.com/ctcheune/BMEG490B-Knee-Angle-Analysis/imu/filter"
)

// DefaultWeight is the default trust given to the gyro-integrated estimate.
const DefaultWeight = 0.995

// Config holds the fusion and post-filter settings for one estimation run.
type Config struct {
	// Weight in [0,1) blends the gyro-integrated angle (Weight) against
	// the gravity estimate (1-Weight) when the validity gate passes.
	Weight float64

	// RemoveOffset subtracts the whole-series mean from each gyro axis
	// before fusion, removing a constant bias.
	RemoveOffset bool

	// FilterCutoff enables the zero-phase post-filter when its first
	// element is > 0. Lowpass and highpass use only the first element;
	// band filters use both as [low, high] edges in Hz.
	FilterCutoff [2]float64

	// FilterOrder is the Butterworth prototype order of the post-filter.
	FilterOrder int

	// FilterType selects the post-filter response shape.
	FilterType filter.Type
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the documented defaults: weight 0.995, no offset
// removal, post-filter disabled (order 2 lowpass when enabled).
func DefaultConfig() Config {
	return Config{
		Weight:      DefaultWeight,
		FilterOrder: 2,
		FilterType:  filter.Lowpass,
	}
}

// WithWeight sets the gyro trust weight.
func WithWeight(w float64) Option {
	return func(cfg *Config) { cfg.Weight = w }
}

// WithOffsetRemoval toggles whole-series gyro bias removal.
func WithOffsetRemoval(on bool) Option {
	return func(cfg *Config) { cfg.RemoveOffset = on }
}

// WithPostFilter enables the zero-phase post-filter. Lowpass and highpass
// take one cutoff; band types take the two band edges in Hz.
func WithPostFilter(typ filter.Type, cutoff ...float64) Option {
	return func(cfg *Config) {
		cfg.FilterType = typ
		cfg.FilterCutoff = [2]float64{}
		for i, c := range cutoff {
			if i >= len(cfg.FilterCutoff) {
				break
			}
			cfg.FilterCutoff[i] = c
		}
	}
}

// WithFilterOrder sets the post-filter prototype order.
func WithFilterOrder(order int) Option {
	return func(cfg *Config) { cfg.FilterOrder = order }
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate rejects configurations the recurrence cannot run with. The
// check happens before any computation; data-quality conditions inside
// the series are never configuration errors.
func (c Config) Validate(sampleRate float64) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %v Hz, must be > 0", ErrInvalidConfig, sampleRate)
	}
	if c.Weight < 0 || c.Weight >= 1 {
		return fmt.Errorf("%w: weight %v outside [0,1)", ErrInvalidConfig, c.Weight)
	}
	if c.FilterOrder < 1 {
		return fmt.Errorf("%w: filter order %d < 1", ErrInvalidConfig, c.FilterOrder)
	}
	switch c.FilterType {
	case filter.Lowpass, filter.Highpass, filter.Bandstop, filter.Bandpass:
	default:
		return fmt.Errorf("%w: %v", ErrInvalidConfig, filter.ErrUnknownType)
	}
	return nil
}

// filterEnabled reports whether the post-filter stage should run.
func (c Config) filterEnabled() bool {
	return c.FilterCutoff[0] > 0
}
