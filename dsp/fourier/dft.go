package fourier

import "math"

// DFT computes the discrete Fourier transform of x by direct summation:
//
//	X[k] = sum_n x[n] * e^(-2*pi*i*k*n/N)
//
// It runs in O(N^2), accepts any length >= 1, and allocates a fresh output.
// A length-1 input is the identity transform.
//
// This is kept as an independent implementation from the FFT plan so that it
// can serve as a correctness oracle for it.
func DFT(x []complex128) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		var sum complex128
		for t := 0; t < n; t++ {
			angle := -2 * math.Pi * float64(k) * float64(t) / float64(n)
			sum += complex(math.Cos(angle), math.Sin(angle)) * x[t]
		}
		out[k] = sum
	}

	return out, nil
}

// DFTReal computes the discrete Fourier transform of a real-valued signal.
// The output has the same length as the input.
func DFTReal(x []float64) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		var re, im float64
		for t := 0; t < n; t++ {
			angle := -2 * math.Pi * float64(k) * float64(t) / float64(n)
			re += math.Cos(angle) * x[t]
			im += math.Sin(angle) * x[t]
		}
		out[k] = complex(re, im)
	}

	return out, nil
}

// IDFT computes the inverse discrete Fourier transform by direct summation
// with the conjugate kernel, normalized by 1/N:
//
//	x[n] = (1/N) * sum_k X[k] * e^(+2*pi*i*k*n/N)
//
// It accepts any length >= 1. IDFT(DFT(x)) recovers x within floating-point
// tolerance.
func IDFT(x []complex128) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	inv := 1 / float64(n)

	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		var sum complex128
		for t := 0; t < n; t++ {
			angle := 2 * math.Pi * float64(k) * float64(t) / float64(n)
			sum += complex(math.Cos(angle), math.Sin(angle)) * x[t]
		}
		out[k] = sum * complex(inv, 0)
	}

	return out, nil
}

// IDFTReal computes the naive inverse transform of a spectrum known to come
// from a real-valued signal, discarding the imaginary parts of the result.
func IDFTReal(x []complex128) ([]float64, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	inv := 1 / float64(n)

	out := make([]float64, n)
	for k := 0; k < n; k++ {
		var sum float64
		for t := 0; t < n; t++ {
			angle := 2 * math.Pi * float64(k) * float64(t) / float64(n)
			sum += math.Cos(angle)*real(x[t]) - math.Sin(angle)*imag(x[t])
		}
		out[k] = sum * inv
	}

	return out, nil
}
