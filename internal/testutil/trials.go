package testutil

import (
	"math"

	"github.com/ctcheune/BMEG490B-Knee-Angle-Analysis/imu"
)

// Gravity is the accelerometer reading magnitude for a body at rest, m/s².
const Gravity = 9.8

// StaticTrial builds a trial for a motionless sensor: gravity straight
// down the NED vertical axis, zero gyro rates.
func StaticTrial(n int, sampleRate float64) *imu.Trial {
	t := &imu.Trial{
		Accel:      make([][3]float64, n),
		Gyro:       make([][3]float64, n),
		SampleRate: sampleRate,
	}
	for i := range t.Accel {
		t.Accel[i] = [3]float64{0, 0, -Gravity}
	}
	return t
}

// PitchRotationTrial builds a trial whose gyro reports a constant pitch
// rate (deg/s) while the accelerometer reads gravity-down. The accel
// samples stay inside the trusted magnitude band, so the fusion gate
// passes unless the caller perturbs them.
func PitchRotationTrial(n int, sampleRate, pitchRateDeg float64) *imu.Trial {
	t := StaticTrial(n, sampleRate)
	for i := range t.Gyro {
		t.Gyro[i][1] = pitchRateDeg
	}
	return t
}

// TiltedTrial builds a static trial with the gravity vector tilted by
// pitchDeg about the lateral axis.
func TiltedTrial(n int, sampleRate, pitchDeg float64) *imu.Trial {
	rad := pitchDeg * math.Pi / 180
	t := StaticTrial(n, sampleRate)
	for i := range t.Accel {
		t.Accel[i] = [3]float64{Gravity * math.Sin(rad), 0, -Gravity * math.Cos(rad)}
	}
	return t
}
