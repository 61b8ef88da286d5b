package fourier

import "errors"

var (
	// ErrEmptyInput reports a zero-length input where at least one sample
	// is required.
	ErrEmptyInput = errors.New("input must not be empty")

	// ErrNotPowerOfTwo reports a length the fast path cannot handle.
	// Callers wanting non-power-of-two transforms must use DFT instead.
	ErrNotPowerOfTwo = errors.New("fft requires power-of-two length")

	// ErrLengthMismatch reports buffers whose lengths do not match the
	// plan size.
	ErrLengthMismatch = errors.New("buffer length does not match plan size")

	// ErrAliasedBuffers reports dst and src sharing memory.
	ErrAliasedBuffers = errors.New("dst must not alias src")
)
