// Package stft implements the short-time Fourier transform: framed,
// windowed radix-2 FFTs over a single-channel signal.
//
// Only the forward transform exists; the inverse STFT is out of scope along
// with the inverse FFT.
package stft

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/fourier"
	"github.com/cwbudde/algo-spectral/dsp/window"
)

// Config holds STFT parameters.
type Config struct {
	// FrameSize is the analysis frame length and FFT size. It must be a
	// power of two.
	FrameSize int
	// HopSize is the frame start increment in samples. It must be > 0.
	HopSize int
	// Window holds per-sample weights of length FrameSize. Nil selects the
	// sine window.
	Window []float64
}

// Processor segments a signal into overlapping frames and transforms each
// one through a shared FFT plan. It is immutable after creation; Process may
// be called from multiple goroutines.
type Processor struct {
	cfg    Config
	plan   *fourier.Plan
	coeffs []float64
}

// New validates cfg and creates a Processor. A FrameSize that is not a
// power of two fails with [fourier.ErrNotPowerOfTwo]; a non-positive
// HopSize or a window of the wrong length fails with [ErrConfig].
func New(cfg Config) (*Processor, error) {
	plan, err := fourier.NewPlan(cfg.FrameSize)
	if err != nil {
		return nil, err
	}

	if cfg.HopSize <= 0 {
		return nil, fmt.Errorf("%w: hop size must be > 0: %d", ErrConfig, cfg.HopSize)
	}

	coeffs := cfg.Window
	if coeffs == nil {
		coeffs = window.Generate(window.TypeSine, cfg.FrameSize)
	} else {
		if len(coeffs) != cfg.FrameSize {
			return nil, fmt.Errorf("%w: window length %d does not match frame size %d",
				ErrConfig, len(coeffs), cfg.FrameSize)
		}

		coeffs = append([]float64(nil), coeffs...)
	}

	return &Processor{cfg: cfg, plan: plan, coeffs: coeffs}, nil
}

// FrameSize returns the configured frame length.
func (p *Processor) FrameSize() int { return p.cfg.FrameSize }

// HopSize returns the configured hop length.
func (p *Processor) HopSize() int { return p.cfg.HopSize }

// NumFrames returns the number of full frames in a signal of length n:
// floor((n-frame)/hop)+1, or 0 when n < frame.
func (p *Processor) NumFrames(n int) int {
	if n < p.cfg.FrameSize {
		return 0
	}

	return (n-p.cfg.FrameSize)/p.cfg.HopSize + 1
}

// Process computes the spectrogram of samples. Frames start at 0, hop,
// 2*hop, ... while a full frame fits; trailing samples that do not fill a
// frame are dropped without zero-padding. A signal shorter than the frame
// size yields an empty spectrogram, not an error. The input is never
// mutated.
//
// Frames are independent of each other and are evaluated sequentially;
// results are exact per frame up to floating-point summation order.
func (p *Processor) Process(samples []float64) (*Spectrogram, error) {
	count := p.NumFrames(len(samples))

	sg := &Spectrogram{
		bins:    p.cfg.FrameSize,
		hopSize: p.cfg.HopSize,
		frames:  make([][]complex128, count),
	}

	windowed := make([]float64, p.cfg.FrameSize)

	for i := 0; i < count; i++ {
		start := i * p.cfg.HopSize
		copy(windowed, samples[start:start+p.cfg.FrameSize])

		if err := window.ApplyCoefficientsInPlace(windowed, p.coeffs); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfig, err)
		}

		spec := make([]complex128, p.cfg.FrameSize)
		if err := p.plan.ForwardReal(spec, windowed); err != nil {
			return nil, err
		}

		sg.frames[i] = spec
	}

	return sg, nil
}

// Compute is a one-shot STFT with the sine window.
func Compute(samples []float64, frameSize, hopSize int) (*Spectrogram, error) {
	p, err := New(Config{FrameSize: frameSize, HopSize: hopSize})
	if err != nil {
		return nil, err
	}

	return p.Process(samples)
}
