// Package calib aligns raw sensor axes with the body-segment frame before
// orientation estimation: a fixed sensor-to-body rotation applied to every
// sample, and optional static offsets estimated from a standing-still
// window.
//
// Calibration is a collaborator of the fusion core, never part of it; all
// transforms are pure and return new series.
package calib

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrBadRotation reports a sensor-to-body matrix that is not 3×3.
var ErrBadRotation = errors.New("calib: rotation matrix must be 3x3")

// Rotate applies the sensor-to-body rotation r to every sample and returns
// the rotated series. r must be 3×3; it is typically obtained from a
// functional calibration trial upstream.
func Rotate(samples [][3]float64, r *mat.Dense) ([][3]float64, error) {
	rows, cols := r.Dims()
	if rows != 3 || cols != 3 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadRotation, rows, cols)
	}

	out := make([][3]float64, len(samples))
	v := mat.NewVecDense(3, nil)
	var rv mat.VecDense
	for i, s := range samples {
		v.SetVec(0, s[0])
		v.SetVec(1, s[1])
		v.SetVec(2, s[2])
		rv.MulVec(r, v)
		out[i] = [3]float64{rv.AtVec(0), rv.AtVec(1), rv.AtVec(2)}
	}
	return out, nil
}

// StaticOffset estimates the per-axis mean of samples[start:end], a window
// in which the subject stood still. NaN samples are ignored; an axis with
// no finite sample in the window gets a zero offset.
func StaticOffset(samples [][3]float64, start, end int) ([3]float64, error) {
	if start < 0 || end > len(samples) || start >= end {
		return [3]float64{}, fmt.Errorf("calib: static window [%d,%d) outside series of %d samples",
			start, end, len(samples))
	}

	var sum [3]float64
	var n [3]int
	for _, s := range samples[start:end] {
		for ax := 0; ax < 3; ax++ {
			if !math.IsNaN(s[ax]) {
				sum[ax] += s[ax]
				n[ax]++
			}
		}
	}

	var offset [3]float64
	for ax := 0; ax < 3; ax++ {
		if n[ax] > 0 {
			offset[ax] = sum[ax] / float64(n[ax])
		}
	}
	return offset, nil
}

// SubtractOffset returns a new series with offset removed from every sample.
func SubtractOffset(samples [][3]float64, offset [3]float64) [][3]float64 {
	out := make([][3]float64, len(samples))
	for i, s := range samples {
		out[i] = [3]float64{s[0] - offset[0], s[1] - offset[1], s[2] - offset[2]}
	}
	return out
}
