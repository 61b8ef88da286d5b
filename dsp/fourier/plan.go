package fourier

import (
	"fmt"
	"math"
	"math/bits"
)

// Plan holds precomputed state for radix-2 Cooley-Tukey FFTs of one size:
// the bit-reversal permutation of the input ordering and the twiddle factors
// e^(-2*pi*i*k/n). A Plan is immutable after creation and safe for
// concurrent use.
type Plan struct {
	n        int
	perm     []int
	twiddles []complex128
}

// NewPlan creates a plan for transforms of length n. The length must be a
// power of two >= 1; anything else fails with [ErrNotPowerOfTwo] and the
// caller must pad, truncate, or call [DFT] instead. The plan never falls
// back to the naive transform by itself.
func NewPlan(n int) (*Plan, error) {
	if n < 1 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w, got %d", ErrNotPowerOfTwo, n)
	}

	log2n := bits.TrailingZeros(uint(n))

	perm := make([]int, n)
	for i := range perm {
		perm[i] = int(bits.Reverse64(uint64(i)) >> (64 - log2n))
	}

	twiddles := make([]complex128, n/2)
	for k := range twiddles {
		angle := -2 * math.Pi * float64(k) / float64(n)
		twiddles[k] = complex(math.Cos(angle), math.Sin(angle))
	}

	return &Plan{n: n, perm: perm, twiddles: twiddles}, nil
}

// Size returns the transform length the plan was created for.
func (p *Plan) Size() int { return p.n }

// Forward computes the forward transform of src into dst. Both must have
// the plan size and must not alias; src is never mutated.
func (p *Plan) Forward(dst, src []complex128) error {
	if len(dst) != p.n || len(src) != p.n {
		return fmt.Errorf("%w: dst=%d src=%d plan=%d", ErrLengthMismatch, len(dst), len(src), p.n)
	}
	if &dst[0] == &src[0] {
		return ErrAliasedBuffers
	}

	for i, j := range p.perm {
		dst[i] = src[j]
	}

	p.combine(dst)

	return nil
}

// ForwardReal computes the forward transform of a real-valued signal.
func (p *Plan) ForwardReal(dst []complex128, src []float64) error {
	if len(dst) != p.n || len(src) != p.n {
		return fmt.Errorf("%w: dst=%d src=%d plan=%d", ErrLengthMismatch, len(dst), len(src), p.n)
	}

	for i, j := range p.perm {
		dst[i] = complex(src[j], 0)
	}

	p.combine(dst)

	return nil
}

// combine runs the log2(n) butterfly stages in place over bit-reversed data.
func (p *Plan) combine(data []complex128) {
	for size := 2; size <= p.n; size <<= 1 {
		half := size / 2
		step := p.n / size

		for start := 0; start < p.n; start += size {
			for k := 0; k < half; k++ {
				w := p.twiddles[k*step]
				a := data[start+k]
				b := data[start+k+half] * w
				data[start+k] = a + b
				data[start+k+half] = a - b
			}
		}
	}
}

// FFT is a one-shot forward transform of x, allocating a fresh output.
// The length of x must be a power of two >= 1. For repeated transforms of
// the same size, create a [Plan] once and reuse it.
func FFT(x []complex128) ([]complex128, error) {
	plan, err := NewPlan(len(x))
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(x))
	if err := plan.Forward(out, x); err != nil {
		return nil, err
	}

	return out, nil
}

// FFTReal is a one-shot forward transform of a real-valued signal.
func FFTReal(x []float64) ([]complex128, error) {
	plan, err := NewPlan(len(x))
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(x))
	if err := plan.ForwardReal(out, x); err != nil {
		return nil, err
	}

	return out, nil
}
