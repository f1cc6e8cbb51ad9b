package filter

import (
	"fmt"
	"math"
)

// butterworthQ returns the quality factor for a Butterworth filter section.
// index ranges from 0 to (order/2 - 1) for the biquad sections.
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return 1 / math.Sqrt2 // default Q
	}

	return 1 / (2 * s)
}

// lowpassRBJ designs a lowpass biquad at freq (Hz) with quality factor q.
func lowpassRBJ(freq, q, sampleRate float64) Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := (1 - cw) / 2
	b1 := 1 - cw
	b2 := (1 - cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// highpassRBJ designs a highpass biquad at freq (Hz) with quality factor q.
func highpassRBJ(freq, q, sampleRate float64) Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := (1 + cw) / 2
	b1 := -(1 + cw)
	b2 := (1 + cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// notchRBJ designs a notch biquad centered at freq (Hz).
func notchRBJ(freq, q, sampleRate float64) Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := 1.0
	b1 := -2 * cw
	b2 := 1.0
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// firstOrderLP designs a first-order lowpass Butterworth section,
// used as the tail of odd-order cascades.
func firstOrderLP(freq, sampleRate float64) Coefficients {
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return Coefficients{
		B0: k * norm,
		B1: k * norm,
		A1: (k - 1) * norm,
	}
}

// firstOrderHP designs a first-order highpass Butterworth section,
// used as the tail of odd-order cascades.
func firstOrderHP(freq, sampleRate float64) Coefficients {
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return Coefficients{
		B0: norm,
		B1: -norm,
		A1: (k - 1) * norm,
	}
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return Coefficients{}
	}

	return Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}

// ButterworthLP designs a lowpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthLP(freq float64, order int, sampleRate float64) []Coefficients {
	if order <= 0 {
		return nil
	}
	sections := make([]Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		sections = append(sections, lowpassRBJ(freq, q, sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, firstOrderLP(freq, sampleRate))
	}
	return sections
}

// ButterworthHP designs a highpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthHP(freq float64, order int, sampleRate float64) []Coefficients {
	if order <= 0 {
		return nil
	}
	sections := make([]Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		sections = append(sections, highpassRBJ(freq, q, sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, firstOrderHP(freq, sampleRate))
	}
	return sections
}

// Design builds the section cascade for the requested type, cutoff and
// order at the given sample rate.
//
// Lowpass and Highpass use cutoff[0] only. Bandpass cascades a highpass at
// cutoff[0] with a lowpass at cutoff[1]; Bandstop cascades notch sections
// centered at the band's geometric mean with the band's width, one per
// requested order. Band designs therefore double the effective order, the
// usual convention for band filters derived from a prototype of order n.
func Design(typ Type, cutoff [2]float64, order int, sampleRate float64) ([]Coefficients, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: order %d < 1", ErrInvalidParams, order)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %v <= 0", ErrInvalidParams, sampleRate)
	}

	nyquist := sampleRate / 2
	lo, hi := cutoff[0], cutoff[1]
	if lo <= 0 || lo >= nyquist {
		return nil, fmt.Errorf("%w: cutoff %v Hz outside (0, %v)", ErrInvalidParams, lo, nyquist)
	}
	if typ.IsBand() {
		if hi <= lo || hi >= nyquist {
			return nil, fmt.Errorf("%w: band edges [%v, %v] Hz invalid for Nyquist %v",
				ErrInvalidParams, lo, hi, nyquist)
		}
	}

	switch typ {
	case Lowpass:
		return ButterworthLP(lo, order, sampleRate), nil
	case Highpass:
		return ButterworthHP(lo, order, sampleRate), nil
	case Bandpass:
		sections := ButterworthHP(lo, order, sampleRate)
		return append(sections, ButterworthLP(hi, order, sampleRate)...), nil
	case Bandstop:
		f0 := math.Sqrt(lo * hi)
		q := f0 / (hi - lo)
		sections := make([]Coefficients, order)
		for i := range sections {
			sections[i] = notchRBJ(f0, q, sampleRate)
		}
		return sections, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownType, typ)
	}
}
