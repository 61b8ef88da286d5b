package covariance

import "errors"

var (
	// ErrConfig reports an empty or ragged matrix or an unknown mode.
	ErrConfig = errors.New("invalid covariance input")

	// ErrOrientation reports a matrix that appears transposed. Rows are
	// channels and columns are samples; a recording has at least as many
	// samples as channels.
	ErrOrientation = errors.New("matrix orientation looks transposed")

	// ErrDegenerateInput reports too few samples for the requested divisor.
	ErrDegenerateInput = errors.New("not enough samples")
)
