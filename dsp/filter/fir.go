// Package filter provides finite-impulse-response filtering of real-valued
// signals.
package filter

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

// ErrNoCoeffs reports a filter created without coefficients.
var ErrNoCoeffs = errors.New("fir requires at least one coefficient")

// FIR applies a finite-impulse-response filter by direct convolution.
// The zero value is not usable; create one with NewFIR.
type FIR struct {
	coeffs []float64
}

// NewFIR creates a filter from the given impulse response. The coefficients
// are copied.
func NewFIR(coeffs []float64) (*FIR, error) {
	if len(coeffs) == 0 {
		return nil, ErrNoCoeffs
	}

	return &FIR{coeffs: append([]float64(nil), coeffs...)}, nil
}

// Len returns the number of filter coefficients.
func (f *FIR) Len() int { return len(f.coeffs) }

// Process convolves signal with the filter coefficients and returns the full
// convolution of length len(signal)+Len()-1. The input is never mutated; an
// empty signal yields nil.
func (f *FIR) Process(signal []float64) []float64 {
	n := len(signal)
	if n == 0 {
		return nil
	}

	m := len(f.coeffs)
	out := make([]float64, n+m-1)

	// Vectorized path pays off once the kernel has a few taps.
	const simdThreshold = 4
	if m < simdThreshold {
		for i := 0; i < n; i++ {
			for j := 0; j < m; j++ {
				out[i+j] += signal[i] * f.coeffs[j]
			}
		}

		return out
	}

	temp := make([]float64, m)
	for i := 0; i < n; i++ {
		vecmath.ScaleBlock(temp, f.coeffs, signal[i])
		vecmath.AddBlockInPlace(out[i:i+m], temp)
	}

	return out
}
