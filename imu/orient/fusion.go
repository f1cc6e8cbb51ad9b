package orient

import "math"

// Acceleration magnitude band (m/s²) inside which the gravity estimate is
// trusted: roughly 0.5g to 2g, i.e. near-static or mild-dynamic motion.
// Both bounds are inclusive.
const (
	minTrustedAccel = 4.9
	maxTrustedAccel = 19.6
)

// seedWindow is the number of leading accelerometer estimates averaged to
// seed the recurrence, smoothing single-sample noise at start-up.
const seedWindow = 10

// State carries the fused angles between consecutive samples. It is the
// only state of the recurrence; each batch run owns a fresh value, and
// concurrent runs over independent series need no synchronization.
type State struct {
	Pitch, Roll float64
}

// branch is the validity-gate decision for one axis at one sample.
type branch int

const (
	// branchFused blends the gyro-integrated angle with the gravity
	// estimate. Requires trusted acceleration magnitude, a usable
	// gravity angle, and a usable previous gyro rate.
	branchFused branch = iota
	// branchGyroOnly integrates the gyro rate without correction, when
	// the gravity estimate is untrustworthy but the rate is present.
	branchGyroOnly
	// branchHold freezes the previous angle when the gyro rate is also
	// missing, so NaN never propagates into the output.
	branchHold
)

// classify picks the gate branch for one axis. magTrusted is shared by
// both axes; accAngle and prevRate are axis-specific. NaN comparisons are
// false, so a NaN magnitude lands outside the trusted band.
func classify(magTrusted bool, accAngle, prevRate float64) branch {
	switch {
	case magTrusted && !math.IsNaN(accAngle) && !math.IsNaN(prevRate):
		return branchFused
	case !math.IsNaN(prevRate):
		return branchGyroOnly
	default:
		return branchHold
	}
}

// stepAxis advances one axis of the recurrence by one sample.
func stepAxis(prev float64, b branch, accAngle, prevRate, dt, weight float64) float64 {
	switch b {
	case branchFused:
		return weight*(prev+prevRate*dt) + (1-weight)*accAngle
	case branchGyroOnly:
		return prev + prevRate*dt
	default:
		return prev
	}
}

// Step advances the fused state by one sample. accel is the current raw
// accelerometer sample (for the magnitude gate), pitchAcc/rollAcc the
// current gravity estimates, prevPitchRate/prevRollRate the gyro rates of
// the previous sample, dt the sample interval in seconds.
func Step(prev State, accel [3]float64, pitchAcc, rollAcc, prevPitchRate, prevRollRate, dt, weight float64) State {
	mag := math.Sqrt(accel[0]*accel[0] + accel[1]*accel[1] + accel[2]*accel[2])
	magTrusted := mag >= minTrustedAccel && mag <= maxTrustedAccel

	return State{
		Pitch: stepAxis(prev.Pitch, classify(magTrusted, pitchAcc, prevPitchRate),
			pitchAcc, prevPitchRate, dt, weight),
		Roll: stepAxis(prev.Roll, classify(magTrusted, rollAcc, prevRollRate),
			rollAcc, prevRollRate, dt, weight),
	}
}

// fuse runs the recurrence over a whole series. The first output sample is
// the seed (mean of the first seedWindow gravity estimates, or all of them
// for shorter series); every later sample comes from Step.
func fuse(accel [][3]float64, pitchAcc, rollAcc, pitchRate, rollRate []float64, sampleRate, weight float64) (pitch, roll []float64) {
	n := len(accel)
	pitch = make([]float64, n)
	roll = make([]float64, n)
	if n == 0 {
		return pitch, roll
	}

	s := State{
		Pitch: seedMean(pitchAcc),
		Roll:  seedMean(rollAcc),
	}
	pitch[0], roll[0] = s.Pitch, s.Roll

	dt := 1 / sampleRate
	for j := 1; j < n; j++ {
		s = Step(s, accel[j], pitchAcc[j], rollAcc[j], pitchRate[j-1], rollRate[j-1], dt, weight)
		pitch[j], roll[j] = s.Pitch, s.Roll
	}
	return pitch, roll
}

// seedMean averages the first seedWindow elements (or the whole slice if
// shorter). NaN elements propagate into the seed, exactly as a plain mean
// of the opening window would.
func seedMean(x []float64) float64 {
	n := min(len(x), seedWindow)
	var sum float64
	for _, v := range x[:n] {
		sum += v
	}
	return sum / float64(n)
}
