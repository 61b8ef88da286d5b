package wavelet

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-spectral/internal/testutil"
)

func TestCWTInvalidInputs(t *testing.T) {
	if _, err := CWT(nil, []float64{1}, NewMorlet()); !errors.Is(err, ErrConfig) {
		t.Fatalf("empty signal err=%v, want ErrConfig", err)
	}

	if _, err := CWT([]float64{1, 2}, nil, NewMorlet()); !errors.Is(err, ErrConfig) {
		t.Fatalf("empty scales err=%v, want ErrConfig", err)
	}

	if _, err := CWT([]float64{1, 2}, []float64{0}, NewMorlet()); !errors.Is(err, ErrConfig) {
		t.Fatalf("zero scale err=%v, want ErrConfig", err)
	}

	if _, err := CWT([]float64{1, 2}, []float64{1}, nil); !errors.Is(err, ErrConfig) {
		t.Fatalf("nil wavelet err=%v, want ErrConfig", err)
	}
}

func TestCWTShape(t *testing.T) {
	signal := testutil.DeterministicSine(2, 64, 1, 64)
	scales := []float64{1, 2, 4, 8}

	out, err := CWT(signal, scales, NewMorlet())
	if err != nil {
		t.Fatalf("CWT: %v", err)
	}

	if len(out) != len(scales) {
		t.Fatalf("rows=%d, want %d", len(out), len(scales))
	}

	for i, row := range out {
		if len(row) != len(signal) {
			t.Fatalf("row %d length=%d, want %d", i, len(row), len(signal))
		}
		testutil.RequireComplexFinite(t, row)
	}
}

func TestMexicanHatImpulseResponse(t *testing.T) {
	// Correlating an impulse at position p gives row[b] =
	// w((p-b)/a)/sqrt(a), so the coefficient magnitude peaks at b = p.
	const (
		n     = 33
		pos   = 16
		scale = 2.0
	)

	out, err := CWT(testutil.Impulse(n, pos), []float64{scale}, MexicanHat{Width: 1})
	if err != nil {
		t.Fatalf("CWT: %v", err)
	}

	row := out[0]

	peak := 0
	for b := range row {
		if cmplx.Abs(row[b]) > cmplx.Abs(row[peak]) {
			peak = b
		}
	}

	if peak != pos {
		t.Fatalf("peak at %d, want %d", peak, pos)
	}

	want := (MexicanHat{Width: 1}).Eval(0) * complex(1/math.Sqrt(scale), 0)
	if cmplx.Abs(row[pos]-want) > 1e-12 {
		t.Fatalf("row[%d]=%v, want %v", pos, row[pos], want)
	}
}

func TestMorletEval(t *testing.T) {
	w := NewMorlet()

	at0 := w.Eval(0)
	if cmplx.Abs(at0-1) > 1e-12 {
		t.Fatalf("Morlet(0)=%v, want 1", at0)
	}

	// Gaussian envelope decays symmetrically.
	if cmplx.Abs(w.Eval(3))-cmplx.Abs(w.Eval(-3)) > 1e-12 {
		t.Fatal("Morlet envelope should be symmetric")
	}

	if cmplx.Abs(w.Eval(5)) > cmplx.Abs(w.Eval(1)) {
		t.Fatal("Morlet envelope should decay with |t|")
	}
}
