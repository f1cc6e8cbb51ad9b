package orient

import (
	"math"
	"testing"

	"github.com/ctcheune/BMEG490B-Knee-Angle-Analysis/internal/testutil"
)

func TestStep_MagnitudeGateBoundsInclusive(t *testing.T) {
	prev := State{Pitch: 5, Roll: 5}

	cases := []struct {
		name  string
		mag   float64
		fused bool
	}{
		{"lower bound included", 4.9, true},
		{"upper bound included", 19.6, true},
		{"just below band", 4.89, false},
		{"just above band", 19.61, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Gravity straight down with the given magnitude: the accel
			// estimate is 0° on both axes, the gyro rate is zero.
			accel := [3]float64{0, 0, -tc.mag}
			got := Step(prev, accel, 0, 0, 0, 0, 1.0/200, 0.5)

			if tc.fused {
				// Full fusion: 0.5*5 + 0.5*0.
				testutil.RequireNear(t, got.Pitch, 2.5, 1e-12)
				testutil.RequireNear(t, got.Roll, 2.5, 1e-12)
			} else {
				// Gyro-only with zero rate: angle carried forward.
				testutil.RequireNear(t, got.Pitch, 5, 1e-12)
				testutil.RequireNear(t, got.Roll, 5, 1e-12)
			}
		})
	}
}

func TestStep_PerAxisGating(t *testing.T) {
	// Pitch has a usable accel estimate, roll's is NaN: pitch fuses while
	// roll integrates gyro only.
	prev := State{Pitch: 4, Roll: 4}
	got := Step(prev, [3]float64{0, 0, -9.8}, 0, math.NaN(), 0, 2, 0.5, 0.5)

	testutil.RequireNear(t, got.Pitch, 2, 1e-12)     // 0.5*4 + 0.5*0
	testutil.RequireNear(t, got.Roll, 4+2*0.5, 1e-12) // 4 + rate*dt
}

func TestStep_HoldsWhenGyroMissing(t *testing.T) {
	prev := State{Pitch: -3, Roll: 7}
	got := Step(prev, [3]float64{0, 0, -25}, math.NaN(), math.NaN(), math.NaN(), math.NaN(), 1.0/200, 0.995)

	if got != prev {
		t.Fatalf("hold branch changed state: %+v -> %+v", prev, got)
	}
}

func TestEstimate_StaticSensorStaysAtSeed(t *testing.T) {
	trial := testutil.StaticTrial(400, 200)
	pitch, roll, err := Estimate(trial)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireConstant(t, pitch, 0, 1e-9)
	testutil.RequireConstant(t, roll, 0, 1e-9)
}

func TestEstimate_StaticTiltedSensorStaysAtTilt(t *testing.T) {
	trial := testutil.TiltedTrial(300, 100, 25)
	pitch, roll, err := Estimate(trial)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireConstant(t, pitch, 25, 1e-9)
	testutil.RequireConstant(t, roll, 0, 1e-9)
}

func TestEstimate_ZeroWeightTracksAccelerometer(t *testing.T) {
	// Tilt angle changes every sample; with weight 0 and a passing gate
	// the output must equal the per-sample gravity estimate exactly
	// (pure correction, no gyro trust) from the second sample on.
	const n = 120
	trial := testutil.StaticTrial(n, 100)
	for i := range trial.Accel {
		deg := 10 * math.Sin(2*math.Pi*float64(i)/float64(n))
		rad := deg * math.Pi / 180
		trial.Accel[i] = [3]float64{9.8 * math.Sin(rad), 0, -9.8 * math.Cos(rad)}
	}

	pitch, _, err := Estimate(trial, WithWeight(0))
	if err != nil {
		t.Fatal(err)
	}

	for j := 1; j < n; j++ {
		want, _ := GravityAngles(trial.Accel[j][0], trial.Accel[j][1], trial.Accel[j][2])
		testutil.RequireNear(t, pitch[j], want, 1e-12)
	}
}

func TestEstimate_HighWeightFollowsGyro(t *testing.T) {
	// 10°/s pitch rate for 1 s at 200 Hz with a near-unity weight: the
	// fused trajectory stays close to the pure gyro integral over this
	// short horizon.
	const (
		n    = 200
		fs   = 200.0
		rate = 10.0
	)
	trial := testutil.PitchRotationTrial(n, fs, rate)
	pitch, _, err := Estimate(trial, WithWeight(0.9999))
	if err != nil {
		t.Fatal(err)
	}

	gyroIntegral := rate * float64(n-1) / fs
	testutil.RequireNear(t, pitch[n-1], gyroIntegral, 0.2)
}

func TestEstimate_GyroOnlyIntegrationUnderHighAcceleration(t *testing.T) {
	// Acceleration magnitude 25 m/s² forces the gyro-only branch for the
	// whole series; 10°/s over 1 s must integrate to pitch[0] + ~10°.
	const (
		n    = 200
		fs   = 200.0
		rate = 10.0
	)
	trial := testutil.PitchRotationTrial(n, fs, rate)
	for i := range trial.Accel {
		trial.Accel[i] = [3]float64{0, 0, -25}
	}

	pitch, _, err := Estimate(trial)
	if err != nil {
		t.Fatal(err)
	}

	want := pitch[0] + rate*float64(n-1)/fs
	testutil.RequireNear(t, pitch[n-1], want, 1e-9)
	testutil.RequireNear(t, pitch[n-1], pitch[0]+10, 0.1)
}

func TestEstimate_NaNGyroHoldsLastValue(t *testing.T) {
	// From index 100 on, the gyro is missing and the accelerometer is
	// outside the trusted band: the output must freeze at the last valid
	// estimate instead of going NaN.
	const n = 200
	trial := testutil.TiltedTrial(n, 200, 15)
	nan := math.NaN()
	for i := 100; i < n; i++ {
		trial.Accel[i] = [3]float64{0, 0, -30}
		trial.Gyro[i] = [3]float64{nan, nan, nan}
	}

	pitch, roll, err := Estimate(trial)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireFinite(t, pitch)
	testutil.RequireFinite(t, roll)
	for j := 101; j < n; j++ {
		if pitch[j] != pitch[100] {
			t.Fatalf("index %d: pitch %v, want hold at %v", j, pitch[j], pitch[100])
		}
	}
}

func TestEstimate_Deterministic(t *testing.T) {
	trial := testutil.PitchRotationTrial(500, 200, 3)
	for i := range trial.Accel {
		// Mild noise pattern, same on both runs.
		trial.Accel[i][0] = 0.3 * math.Sin(float64(i))
	}

	p1, r1, err := Estimate(trial, WithOffsetRemoval(true))
	if err != nil {
		t.Fatal(err)
	}
	p2, r2, err := Estimate(trial, WithOffsetRemoval(true))
	if err != nil {
		t.Fatal(err)
	}

	for i := range p1 {
		if p1[i] != p2[i] || r1[i] != r2[i] {
			t.Fatalf("index %d: repeated runs differ (%v vs %v, %v vs %v)",
				i, p1[i], p2[i], r1[i], r2[i])
		}
	}
}

func TestEstimate_SeedAveragesFirstTenEstimates(t *testing.T) {
	// First ten accel samples alternate ±5° around 0; the seed and hence
	// the whole static output sit at the window mean.
	trial := testutil.StaticTrial(40, 100)
	for i := 0; i < 10; i++ {
		deg := 5.0
		if i%2 == 1 {
			deg = -5.0
		}
		rad := deg * math.Pi / 180
		trial.Accel[i] = [3]float64{9.8 * math.Sin(rad), 0, -9.8 * math.Cos(rad)}
	}

	pitch, _, err := Estimate(trial, WithWeight(0.995))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireNear(t, pitch[0], 0, 1e-9)
}

func TestEstimate_ShortSeriesSeedUsesAllSamples(t *testing.T) {
	trial := testutil.TiltedTrial(4, 100, 12)
	pitch, _, err := Estimate(trial)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireNear(t, pitch[0], 12, 1e-9)
}
