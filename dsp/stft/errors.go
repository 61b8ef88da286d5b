package stft

import "errors"

// ErrConfig reports an invalid STFT configuration (hop size, window).
// Frame size errors surface as [fourier.ErrNotPowerOfTwo] instead.
var ErrConfig = errors.New("invalid stft configuration")
