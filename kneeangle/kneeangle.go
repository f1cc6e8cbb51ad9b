// Package kneeangle derives knee flexion from the fused pitch sequences
// of two body-segment IMUs: flexion = thigh pitch − shank pitch, degrees,
// positive in flexion. It also summarizes a flexion series for reporting.
package kneeangle

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/ctcheune/BMEG490B-Knee-Angle-Analysis/imu"
)

// Flexion subtracts the shank pitch from the thigh pitch sample by
// sample. Both sequences must come from the same recording and share
// length and sample rate.
func Flexion(thighPitch, shankPitch []float64) ([]float64, error) {
	if len(thighPitch) != len(shankPitch) {
		return nil, fmt.Errorf("%w: thigh %d samples, shank %d samples",
			imu.ErrShapeMismatch, len(thighPitch), len(shankPitch))
	}

	angle := make([]float64, len(thighPitch))
	for i := range angle {
		angle[i] = thighPitch[i] - shankPitch[i]
	}
	return angle, nil
}

// Summary describes one flexion series for reporting.
type Summary struct {
	Samples       int
	PeakFlexion   float64 // maximum angle, degrees
	PeakExtension float64 // minimum angle, degrees
	RangeOfMotion float64 // peak flexion − peak extension
	Mean          float64
	StdDev        float64
}

// Summarize computes the summary of a flexion series. NaN samples are
// excluded; a series with no finite samples yields a zero Summary with
// Samples = 0.
func Summarize(angle []float64) Summary {
	finite := make([]float64, 0, len(angle))
	for _, v := range angle {
		if !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return Summary{}
	}

	s := Summary{
		Samples:       len(finite),
		PeakFlexion:   finite[0],
		PeakExtension: finite[0],
	}
	for _, v := range finite {
		if v > s.PeakFlexion {
			s.PeakFlexion = v
		}
		if v < s.PeakExtension {
			s.PeakExtension = v
		}
	}
	s.RangeOfMotion = s.PeakFlexion - s.PeakExtension
	s.Mean, s.StdDev = stat.MeanStdDev(finite, nil)
	if math.IsNaN(s.StdDev) { // single sample
		s.StdDev = 0
	}
	return s
}
