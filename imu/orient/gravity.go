package orient

import "math"

const degPerRad = 180 / math.Pi

// GravityAngles converts one accelerometer sample (m/s², NED axes) into an
// instantaneous pitch/roll estimate in degrees, from the direction of the
// measured specific force.
//
// Pitch is the angle of the forward axis against the lateral-vertical
// plane, atan2(ax, sqrt(ay²+az²)). Roll is computed analogously from the
// lateral axis and sign-inverted so a rightward tilt is positive.
//
// The function is pure. Any NaN input axis yields NaN for both angles;
// an all-zero sample has no defined gravity direction and the result is
// unspecified.
func GravityAngles(ax, ay, az float64) (pitch, roll float64) {
	pitch = math.Atan2(ax, math.Hypot(ay, az)) * degPerRad
	roll = -math.Atan2(ay, math.Hypot(ax, az)) * degPerRad
	return pitch, roll
}

// gravityEstimates maps GravityAngles over a whole accelerometer series.
func gravityEstimates(accel [][3]float64) (pitch, roll []float64) {
	pitch = make([]float64, len(accel))
	roll = make([]float64, len(accel))
	for i, a := range accel {
		pitch[i], roll[i] = GravityAngles(a[0], a[1], a[2])
	}
	return pitch, roll
}
