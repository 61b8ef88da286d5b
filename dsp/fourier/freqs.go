package fourier

// Freqs returns the bin center frequencies in Hz for an n-point transform at
// the given sampling rate, in standard FFT order: non-negative frequencies
// first, then the negative half. Returns nil for n <= 0.
func Freqs(n int, sampleRateHz float64) []float64 {
	if n <= 0 {
		return nil
	}

	df := sampleRateHz / float64(n)

	out := make([]float64, n)
	for i := range out {
		k := i
		if i >= (n+1)/2 {
			k = i - n
		}
		out[i] = float64(k) * df
	}

	return out
}

// RFreqs returns the n/2+1 non-negative bin frequencies in Hz for an n-point
// transform of a real-valued signal. Returns nil for n <= 0.
func RFreqs(n int, sampleRateHz float64) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n/2+1)
	for i := range out {
		out[i] = float64(i) * sampleRateHz / float64(n)
	}

	return out
}
