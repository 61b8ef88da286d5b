package window

import (
	"math"
	"testing"
)

func TestSineFormula(t *testing.T) {
	w, err := Sine(4)
	if err != nil {
		t.Fatalf("Sine: %v", err)
	}

	want := []float64{
		0,
		math.Sin(math.Pi / 3),
		math.Sin(2 * math.Pi / 3),
		math.Sin(math.Pi),
	}

	for i := range want {
		if math.Abs(w[i]-want[i]) > 1e-12 {
			t.Fatalf("w[%d]=%v, want %v", i, w[i], want[i])
		}
	}
}

func TestSineLengthOneIsZero(t *testing.T) {
	// The L=1 sine window is degenerate; its single weight is defined as 0.
	w, err := Sine(1)
	if err != nil {
		t.Fatalf("Sine: %v", err)
	}

	if len(w) != 1 || w[0] != 0 {
		t.Fatalf("got %v, want [0]", w)
	}
}

func TestRectangularLengthOneIsOne(t *testing.T) {
	w := Generate(TypeRectangular, 1)
	if len(w) != 1 || w[0] != 1 {
		t.Fatalf("got %v, want [1]", w)
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	if w := Generate(TypeSine, 0); w != nil {
		t.Fatalf("Generate(0) = %v, want nil", w)
	}

	if _, err := Sine(-3); err == nil {
		t.Fatal("Sine(-3) expected error")
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(TypeSine, 64)
	b := Generate(TypeSine, 64)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic coefficient at %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestPeriodicDiffersFromSymmetric(t *testing.T) {
	a := Generate(TypeSine, 16)

	b := Generate(TypeSine, 16, WithPeriodic())
	if len(a) != 16 || len(b) != 16 {
		t.Fatalf("unexpected lengths: %d %d", len(a), len(b))
	}

	// Symmetric form ends at sin(pi) ~ 0; periodic form does not.
	if math.Abs(a[15]) > 1e-12 && math.Abs(a[15]-b[15]) < 1e-12 {
		t.Fatal("expected different end coefficient for periodic form")
	}
	if math.Abs(b[15]-math.Sin(math.Pi*15.0/16.0)) > 1e-12 {
		t.Fatalf("periodic end coefficient %v", b[15])
	}
}

func TestAllTypesFinite(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeSine, TypeHann, TypeHamming, TypeBlackman} {
		w := Generate(typ, 64)
		if len(w) != 64 {
			t.Fatalf("type=%v len=%d, want 64", typ, len(w))
		}

		for i, v := range w {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("type=%v coefficient[%d] invalid: %v", typ, i, v)
			}
		}
	}
}

func TestApplyCoefficients(t *testing.T) {
	samples := []float64{1, 2, 3, 4}
	coeffs := []float64{0, 0.5, 0.5, 0}

	out, err := ApplyCoefficients(samples, coeffs)
	if err != nil {
		t.Fatalf("ApplyCoefficients: %v", err)
	}

	want := []float64{0, 1, 1.5, 0}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Fatalf("out[%d]=%v, want %v", i, out[i], want[i])
		}
	}

	// Input must be untouched.
	if samples[1] != 2 {
		t.Fatalf("ApplyCoefficients mutated input: %v", samples)
	}

	if _, err := ApplyCoefficients(samples, coeffs[:2]); err == nil {
		t.Fatal("expected mismatched length error")
	}
}

func TestApplyCoefficientsInPlace(t *testing.T) {
	samples := []float64{2, 2}

	if err := ApplyCoefficientsInPlace(samples, []float64{0.5, 1.5}); err != nil {
		t.Fatalf("ApplyCoefficientsInPlace: %v", err)
	}

	if samples[0] != 1 || samples[1] != 3 {
		t.Fatalf("got %v, want [1 3]", samples)
	}

	if err := ApplyCoefficientsInPlace(samples, []float64{1}); err == nil {
		t.Fatal("expected mismatched length error")
	}
}

func TestEquivalentNoiseBandwidth(t *testing.T) {
	enbw, err := EquivalentNoiseBandwidth(Generate(TypeRectangular, 128))
	if err != nil {
		t.Fatalf("EquivalentNoiseBandwidth: %v", err)
	}

	if math.Abs(enbw-1) > 1e-12 {
		t.Fatalf("rectangular ENBW=%v, want 1", enbw)
	}

	if _, err := EquivalentNoiseBandwidth(nil); err == nil {
		t.Fatal("expected empty coefficients error")
	}
}
