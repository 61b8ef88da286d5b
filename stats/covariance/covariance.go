// Package covariance estimates channel covariance over channels x samples
// matrices.
//
// The resulting matrix is symmetric by construction and its diagonal holds
// the per-channel variance, making it directly usable as input to a
// symmetric eigendecomposition.
package covariance

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Mode selects the covariance divisor.
type Mode int

const (
	// ModePopulation divides by the sample count N.
	ModePopulation Mode = iota
	// ModeSample divides by N-1 (Bessel's correction).
	ModeSample
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModePopulation:
		return "population"
	case ModeSample:
		return "sample"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Means returns the per-channel mean of a channels x samples matrix.
// Rows of unequal length or an empty matrix yield an error.
func Means(samples [][]float64) ([]float64, error) {
	if err := validateShape(samples); err != nil {
		return nil, err
	}

	n := float64(len(samples[0]))

	out := make([]float64, len(samples))
	for i, row := range samples {
		out[i] = floats.Sum(row) / n
	}

	return out, nil
}

// Estimate computes the channels x channels covariance matrix of a
// channels x samples matrix: per-channel means are removed and
// C[i][j] = dot(centered_i, centered_j) / divisor, with divisor N for
// ModePopulation and N-1 for ModeSample.
//
// The input is treated as read-only. Errors: empty or ragged input and
// unknown modes fail with [ErrConfig]; fewer samples than channels is
// treated as a transposed matrix and fails with [ErrOrientation];
// ModeSample with N <= 1 fails with [ErrDegenerateInput]. No partial
// result is ever returned.
func Estimate(samples [][]float64, mode Mode) (*mat.SymDense, error) {
	if err := validateShape(samples); err != nil {
		return nil, err
	}

	channels := len(samples)
	n := len(samples[0])

	if n < channels {
		return nil, fmt.Errorf("%w: %d channels but only %d samples", ErrOrientation, channels, n)
	}

	var divisor float64
	switch mode {
	case ModePopulation:
		divisor = float64(n)
	case ModeSample:
		if n <= 1 {
			return nil, fmt.Errorf("%w: sample covariance needs at least 2 samples, got %d",
				ErrDegenerateInput, n)
		}

		divisor = float64(n - 1)
	default:
		return nil, fmt.Errorf("%w: unknown mode %d", ErrConfig, int(mode))
	}

	centered := make([][]float64, channels)
	for i, row := range samples {
		mean := floats.Sum(row) / float64(n)

		c := make([]float64, n)
		for j, v := range row {
			c[j] = v - mean
		}

		centered[i] = c
	}

	cov := mat.NewSymDense(channels, nil)
	for i := 0; i < channels; i++ {
		for j := i; j < channels; j++ {
			cov.SetSym(i, j, floats.Dot(centered[i], centered[j])/divisor)
		}
	}

	return cov, nil
}

func validateShape(samples [][]float64) error {
	if len(samples) == 0 {
		return fmt.Errorf("%w: at least one channel is required", ErrConfig)
	}

	n := len(samples[0])
	if n == 0 {
		return fmt.Errorf("%w: channels must not be empty", ErrConfig)
	}

	for i, row := range samples {
		if len(row) != n {
			return fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d",
				ErrConfig, i, len(row), n)
		}
	}

	return nil
}
