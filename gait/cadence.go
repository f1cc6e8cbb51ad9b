// Package gait extracts timing parameters from joint-angle series. The
// knee flexion trace of steady walking is near-periodic at the stride
// frequency, which shows up as the dominant peak of its magnitude
// spectrum.
package gait

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Stride-frequency search band for human gait, Hz. Walking sits around
// 0.8–1.1 Hz per leg; the band leaves room for slow and fast subjects.
const (
	minStrideHz = 0.3
	maxStrideHz = 3.0
)

// ErrTooShort reports a series without enough samples to resolve the
// stride band.
var ErrTooShort = errors.New("gait: series too short for spectral analysis")

// DominantFrequency returns the stride frequency in Hz: the peak of the
// Hann-windowed magnitude spectrum of angle within the physiological
// stride band. The series must cover at least two seconds so the band
// contains more than one spectral bin.
func DominantFrequency(angle []float64, sampleRate float64) (float64, error) {
	if sampleRate <= 0 {
		return 0, fmt.Errorf("gait: sample rate %v Hz, must be > 0", sampleRate)
	}
	if float64(len(angle)) < 2*sampleRate {
		return 0, fmt.Errorf("%w: %d samples at %v Hz", ErrTooShort, len(angle), sampleRate)
	}

	fftSize := nextPow2(len(angle))
	in := make([]complex128, fftSize)

	// Mean removal keeps the DC bin from dwarfing the stride peak; the
	// Hann window bounds leakage from the series edges.
	mean := 0.0
	for _, v := range angle {
		mean += v
	}
	mean /= float64(len(angle))
	for i, v := range angle {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(len(angle)-1)))
		in[i] = complex((v-mean)*w, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("gait: %w", err)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("gait: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	binHz := sampleRate / float64(fftSize)
	lo := int(math.Ceil(minStrideHz / binHz))
	hi := int(math.Floor(maxStrideHz / binHz))
	if hi >= bins {
		hi = bins - 1
	}
	if lo < 1 {
		lo = 1
	}
	if lo >= hi {
		return 0, fmt.Errorf("%w: stride band resolves to a single bin", ErrTooShort)
	}

	peak := lo
	for i := lo + 1; i <= hi; i++ {
		if mag[i] > mag[peak] {
			peak = i
		}
	}
	return float64(peak) * binHz, nil
}

// Cadence converts the stride frequency of a single leg's knee angle to
// steps per minute, counting both legs' steps as pedometry convention
// does (two steps per stride).
func Cadence(angle []float64, sampleRate float64) (float64, error) {
	f, err := DominantFrequency(angle, sampleRate)
	if err != nil {
		return 0, err
	}
	return f * 2 * 60, nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
