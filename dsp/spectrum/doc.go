// Package spectrum provides magnitude, power, and phase extraction over
// complex spectra.
//
// It operates on the []complex128 bins produced by dsp/fourier and dsp/stft
// and does not implement any transform itself.
package spectrum
