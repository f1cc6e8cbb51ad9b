package orient

import "math"

// Rates extracts the pitch and roll angular rates (deg/s) from a gyroscope
// series: pitch rate is the second (lateral) axis, roll rate the first
// (forward) axis. No sign flip is applied beyond axis selection; the axes
// already match the sign convention of the gravity angles.
//
// With removeOffset set, the arithmetic mean of each axis over the whole
// series (ignoring NaN samples) is subtracted from every sample of that
// axis, removing a constant gyro bias. The offset is a single whole-series
// pass, not a running estimate. An axis with no finite samples at all has
// no estimable bias and is passed through unchanged.
//
// Rates is a pure transform; it returns new slices.
func Rates(gyro [][3]float64, removeOffset bool) (pitchRate, rollRate []float64) {
	pitchRate = make([]float64, len(gyro))
	rollRate = make([]float64, len(gyro))
	for i, g := range gyro {
		rollRate[i] = g[0]
		pitchRate[i] = g[1]
	}

	if removeOffset {
		subtractMean(pitchRate)
		subtractMean(rollRate)
	}
	return pitchRate, rollRate
}

// subtractMean removes the NaN-ignoring mean from every element in place.
// A slice with no finite elements is left unchanged.
func subtractMean(x []float64) {
	var sum float64
	var n int
	for _, v := range x {
		if !math.IsNaN(v) {
			sum += v
			n++
		}
	}
	if n == 0 {
		return
	}

	mean := sum / float64(n)
	for i := range x {
		x[i] -= mean
	}
}
