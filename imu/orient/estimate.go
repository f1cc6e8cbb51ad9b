package orient

import (
	"fmt"

	"github.com/ctcheune/BMEG490B-Knee-Angle-Analysis/imu"
	"github.com/ctcheune/BMEG490B-Knee-Angle-Analysis/imu/filter"
)

// Estimate runs the full estimation pass over one trial and returns the
// fused pitch and roll sequences in degrees, index-aligned with the input.
//
// Structural problems (mismatched series shapes, invalid configuration)
// fail before any computation. Per-sample data-quality problems such as
// NaN samples or out-of-band acceleration never fail; the validity gate
// absorbs them and the output always has the input's length.
func Estimate(t *imu.Trial, opts ...Option) (pitch, roll []float64, err error) {
	cfg := ApplyOptions(opts...)

	if len(t.Accel) == 0 || len(t.Gyro) == 0 {
		return nil, nil, fmt.Errorf("%w: empty series (accel %d, gyro %d)",
			imu.ErrShapeMismatch, len(t.Accel), len(t.Gyro))
	}
	if len(t.Accel) != len(t.Gyro) {
		return nil, nil, fmt.Errorf("%w: accel %d samples, gyro %d samples",
			imu.ErrShapeMismatch, len(t.Accel), len(t.Gyro))
	}
	if err := cfg.Validate(t.SampleRate); err != nil {
		return nil, nil, err
	}

	// Design the post-filter up front so a bad cutoff is rejected before
	// the fusion pass runs.
	var sections []filter.Coefficients
	if cfg.filterEnabled() {
		sections, err = filter.Design(cfg.FilterType, cfg.FilterCutoff, cfg.FilterOrder, t.SampleRate)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	pitchAcc, rollAcc := gravityEstimates(t.Accel)
	pitchRate, rollRate := Rates(t.Gyro, cfg.RemoveOffset)
	pitch, roll = fuse(t.Accel, pitchAcc, rollAcc, pitchRate, rollRate, t.SampleRate, cfg.Weight)

	if sections != nil {
		pitch = filter.FiltFilt(sections, pitch)
		roll = filter.FiltFilt(sections, roll)
	}
	return pitch, roll, nil
}
