// Package fourier provides discrete Fourier transforms for time-series
// analysis.
//
// Two code paths coexist on purpose. The naive DFT/IDFT accepts any length
// and acts both as the correctness reference for the fast path and as the
// production transform for lengths that are not powers of two. The radix-2
// FFT [Plan] requires a power-of-two length and never substitutes the naive
// transform on its own; callers wanting a fallback must invoke DFT
// explicitly after a failed NewPlan.
//
// An inverse FFT is intentionally not provided; only the naive IDFT exists.
package fourier
