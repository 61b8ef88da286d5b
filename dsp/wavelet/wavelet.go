// Package wavelet provides the continuous wavelet transform for
// time-frequency analysis at scales the framed STFT cannot resolve.
package wavelet

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// ErrConfig reports invalid CWT inputs.
var ErrConfig = errors.New("invalid cwt configuration")

// Wavelet is a mother wavelet evaluated at shifted, scale-normalized time.
type Wavelet interface {
	Eval(t float64) complex128
}

// Morlet is the complex Morlet wavelet e^(i*omega*t) * e^(-t^2/2).
// Omega is the center frequency; 6 is the conventional choice.
type Morlet struct {
	Omega float64
}

// NewMorlet returns a Morlet wavelet with the conventional omega of 6.
func NewMorlet() Morlet { return Morlet{Omega: 6} }

// Eval returns the wavelet value at time t.
func (w Morlet) Eval(t float64) complex128 {
	gauss := math.Exp(-0.5 * t * t)
	return cmplx.Exp(complex(0, w.Omega*t)) * complex(gauss, 0)
}

// MexicanHat is the real-valued Ricker wavelet
// (1 - (t/w)^2) * e^(-(t/w)^2/2).
type MexicanHat struct {
	Width float64
}

// Eval returns the wavelet value at time t.
func (w MexicanHat) Eval(t float64) complex128 {
	u := t / w.Width
	u2 := u * u
	return complex((1-u2)*math.Exp(-0.5*u2), 0)
}

// CWT computes the continuous wavelet transform of signal by direct
// correlation with the conjugated wavelet. Row i of the result holds the
// coefficients for scales[i]; each row has len(signal) entries, one per
// shift. Coefficients are normalized by 1/sqrt(scale).
//
// Every scale must be > 0. The signal is never mutated.
func CWT(signal []float64, scales []float64, w Wavelet) ([][]complex128, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("%w: signal must not be empty", ErrConfig)
	}
	if len(scales) == 0 {
		return nil, fmt.Errorf("%w: at least one scale is required", ErrConfig)
	}
	if w == nil {
		return nil, fmt.Errorf("%w: wavelet must not be nil", ErrConfig)
	}

	n := len(signal)

	out := make([][]complex128, len(scales))
	for i, a := range scales {
		if a <= 0 {
			return nil, fmt.Errorf("%w: scale must be > 0: %v", ErrConfig, a)
		}

		norm := complex(1/math.Sqrt(a), 0)

		row := make([]complex128, n)
		for b := 0; b < n; b++ {
			var sum complex128
			for t := 0; t < n; t++ {
				shifted := float64(t-b) / a
				sum += complex(signal[t], 0) * cmplx.Conj(w.Eval(shifted))
			}
			row[b] = norm * sum
		}

		out[i] = row
	}

	return out, nil
}
