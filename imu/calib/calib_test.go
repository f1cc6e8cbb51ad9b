package calib

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestRotate_Identity(t *testing.T) {
	r := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	in := [][3]float64{{1, 2, 3}, {-4, 5, -6}}

	out, err := Rotate(in, r)
	if err != nil {
		t.Fatal(err)
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("index %d: %v != %v", i, out[i], in[i])
		}
	}
}

func TestRotate_QuarterTurnAboutZ(t *testing.T) {
	// +90° about the down axis maps forward onto east.
	r := mat.NewDense(3, 3, []float64{
		0, -1, 0,
		1, 0, 0,
		0, 0, 1,
	})
	out, err := Rotate([][3]float64{{1, 0, 0}}, r)
	if err != nil {
		t.Fatal(err)
	}

	want := [3]float64{0, 1, 0}
	for ax := 0; ax < 3; ax++ {
		if math.Abs(out[0][ax]-want[ax]) > 1e-12 {
			t.Fatalf("rotated = %v, want %v", out[0], want)
		}
	}
}

func TestRotate_RejectsWrongShape(t *testing.T) {
	r := mat.NewDense(2, 3, nil)
	if _, err := Rotate([][3]float64{{1, 1, 1}}, r); !errors.Is(err, ErrBadRotation) {
		t.Fatalf("err = %v, want ErrBadRotation", err)
	}
}

func TestStaticOffset(t *testing.T) {
	samples := [][3]float64{
		{1, 10, 100},
		{3, math.NaN(), 100},
		{2, 20, 100},
		{99, 99, 99}, // outside the window
	}
	offset, err := StaticOffset(samples, 0, 3)
	if err != nil {
		t.Fatal(err)
	}

	if offset[0] != 2 || offset[1] != 15 || offset[2] != 100 {
		t.Fatalf("offset = %v, want [2 15 100]", offset)
	}
}

func TestStaticOffset_BadWindow(t *testing.T) {
	samples := make([][3]float64, 10)
	for _, w := range [][2]int{{-1, 5}, {5, 11}, {7, 7}, {8, 3}} {
		if _, err := StaticOffset(samples, w[0], w[1]); err == nil {
			t.Fatalf("window %v: expected error", w)
		}
	}
}

func TestSubtractOffset(t *testing.T) {
	out := SubtractOffset([][3]float64{{5, 5, 5}}, [3]float64{1, 2, 3})
	if out[0] != [3]float64{4, 3, 2} {
		t.Fatalf("got %v, want [4 3 2]", out[0])
	}
}
