package orient

import (
	"math"
	"testing"
)

func TestGravityAngles_LevelSensor(t *testing.T) {
	pitch, roll := GravityAngles(0, 0, -9.8)
	if math.Abs(pitch) > 1e-12 || math.Abs(roll) > 1e-12 {
		t.Fatalf("level sensor: pitch=%v roll=%v, want 0,0", pitch, roll)
	}
}

func TestGravityAngles_KnownTilts(t *testing.T) {
	g := 9.8
	cases := []struct {
		name       string
		ax, ay, az float64
		pitch      float64
		roll       float64
	}{
		{"pitch forward 45", g / math.Sqrt2, 0, -g / math.Sqrt2, 45, 0},
		{"pitch back 30", -g * 0.5, 0, -g * math.Sqrt(3) / 2, -30, 0},
		{"roll right 45", 0, -g / math.Sqrt2, -g / math.Sqrt2, 0, 45},
		{"roll left 45", 0, g / math.Sqrt2, -g / math.Sqrt2, 0, -45},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pitch, roll := GravityAngles(tc.ax, tc.ay, tc.az)
			if math.Abs(pitch-tc.pitch) > 1e-9 {
				t.Fatalf("pitch=%v, want %v", pitch, tc.pitch)
			}
			if math.Abs(roll-tc.roll) > 1e-9 {
				t.Fatalf("roll=%v, want %v", roll, tc.roll)
			}
		})
	}
}

func TestGravityAngles_NaNPropagates(t *testing.T) {
	nan := math.NaN()
	for _, sample := range [][3]float64{
		{nan, 0, -9.8},
		{0, nan, -9.8},
		{0, 0, nan},
	} {
		pitch, roll := GravityAngles(sample[0], sample[1], sample[2])
		if !math.IsNaN(pitch) || !math.IsNaN(roll) {
			t.Fatalf("sample %v: pitch=%v roll=%v, want NaN,NaN", sample, pitch, roll)
		}
	}
}

func TestRates_AxisSelection(t *testing.T) {
	gyro := [][3]float64{{1, 2, 3}, {4, 5, 6}}
	pitchRate, rollRate := Rates(gyro, false)

	if pitchRate[0] != 2 || pitchRate[1] != 5 {
		t.Fatalf("pitch rate = %v, want second axis [2 5]", pitchRate)
	}
	if rollRate[0] != 1 || rollRate[1] != 4 {
		t.Fatalf("roll rate = %v, want first axis [1 4]", rollRate)
	}
}

func TestRates_DoesNotMutateInput(t *testing.T) {
	gyro := [][3]float64{{1, 2, 3}, {1, 2, 3}}
	Rates(gyro, true)
	if gyro[0] != [3]float64{1, 2, 3} {
		t.Fatalf("input mutated: %v", gyro[0])
	}
}

func TestRates_OffsetRemoval(t *testing.T) {
	gyro := make([][3]float64, 100)
	for i := range gyro {
		gyro[i] = [3]float64{2.5, -1.5, 0}
	}
	pitchRate, rollRate := Rates(gyro, true)

	for i := range pitchRate {
		if pitchRate[i] != 0 || rollRate[i] != 0 {
			t.Fatalf("index %d: rates (%v, %v) after constant-bias removal, want 0,0",
				i, pitchRate[i], rollRate[i])
		}
	}
}

func TestRates_OffsetIgnoresNaN(t *testing.T) {
	gyro := [][3]float64{{4, 4, 0}, {math.NaN(), math.NaN(), 0}, {4, 4, 0}}
	pitchRate, rollRate := Rates(gyro, true)

	// Mean over finite samples is 4; finite entries become zero, the NaN
	// entry stays NaN.
	if pitchRate[0] != 0 || rollRate[2] != 0 {
		t.Fatalf("finite rates not centered: pitch=%v roll=%v", pitchRate, rollRate)
	}
	if !math.IsNaN(pitchRate[1]) || !math.IsNaN(rollRate[1]) {
		t.Fatalf("NaN sample rewritten: pitch=%v roll=%v", pitchRate[1], rollRate[1])
	}
}

func TestRates_AllNaNAxisUnchanged(t *testing.T) {
	nan := math.NaN()
	gyro := [][3]float64{{nan, 1, 0}, {nan, 3, 0}}
	pitchRate, rollRate := Rates(gyro, true)

	// Pitch axis has a bias of 2 to remove; the roll axis has no finite
	// sample, so it passes through.
	if pitchRate[0] != -1 || pitchRate[1] != 1 {
		t.Fatalf("pitch rates = %v, want [-1 1]", pitchRate)
	}
	if !math.IsNaN(rollRate[0]) || !math.IsNaN(rollRate[1]) {
		t.Fatalf("roll rates = %v, want NaN passthrough", rollRate)
	}
}
