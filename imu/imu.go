// Package imu holds the shared sample types for inertial measurement
// trials: paired accelerometer and gyroscope series sampled at a fixed
// rate, in the North(forward)-East(right)-Down axis convention.
package imu

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch reports accelerometer and gyroscope series that cannot
// be processed together (unequal sample counts or an empty trial).
var ErrShapeMismatch = errors.New("imu: accelerometer/gyroscope shape mismatch")

// Trial is one recording from a single body-segment IMU. Accel is in m/s²,
// Gyro in deg/s, both N×3 in NED axis order. SampleRate is in Hz.
type Trial struct {
	Accel      [][3]float64
	Gyro       [][3]float64
	SampleRate float64
}

// Len returns the number of samples in the trial.
func (t *Trial) Len() int { return len(t.Accel) }

// Validate checks the structural invariants shared by every consumer:
// both series present, equal length, positive sample rate.
func (t *Trial) Validate() error {
	if len(t.Accel) == 0 || len(t.Gyro) == 0 {
		return fmt.Errorf("%w: empty series (accel %d, gyro %d)",
			ErrShapeMismatch, len(t.Accel), len(t.Gyro))
	}
	if len(t.Accel) != len(t.Gyro) {
		return fmt.Errorf("%w: accel %d samples, gyro %d samples",
			ErrShapeMismatch, len(t.Accel), len(t.Gyro))
	}
	if t.SampleRate <= 0 {
		return fmt.Errorf("imu: sample rate must be > 0: %v", t.SampleRate)
	}
	return nil
}
