package eigen

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-spectral/internal/testutil"
	"github.com/cwbudde/algo-spectral/stats/covariance"
)

func TestEighEmptyMatrix(t *testing.T) {
	if _, _, err := (Gonum{}).Eigh(nil); !errors.Is(err, ErrFailed) {
		t.Fatalf("nil matrix err=%v, want ErrFailed", err)
	}
}

func TestEighDiagonalMatrix(t *testing.T) {
	m := mat.NewSymDense(2, []float64{2, 0, 0, 5})

	values, vectors, err := (Gonum{}).Eigh(m)
	if err != nil {
		t.Fatalf("Eigh: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, values, []float64{2, 5}, 1e-12)

	r, c := vectors.Dims()
	if r != 2 || c != 2 {
		t.Fatalf("vectors dims %dx%d, want 2x2", r, c)
	}
}

func TestEighReconstructsCovariance(t *testing.T) {
	samples := [][]float64{
		testutil.DeterministicNoise(1, 1, 256),
		testutil.DeterministicNoise(2, 0.5, 256),
		testutil.DeterministicSine(7, 256, 1, 256),
	}

	cov, err := covariance.Estimate(samples, covariance.ModePopulation)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	values, vectors, err := (Gonum{}).Eigh(cov)
	if err != nil {
		t.Fatalf("Eigh: %v", err)
	}

	// A covariance matrix is positive semi-definite.
	for i, v := range values {
		if v < -1e-10 {
			t.Fatalf("eigenvalue %d negative: %v", i, v)
		}
	}

	// V * diag(values) * V^T must reproduce the input.
	n := len(values)

	var vd mat.Dense
	vd.Mul(vectors, diag(values))

	var rec mat.Dense
	rec.Mul(&vd, vectors.T())

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if math.Abs(rec.At(i, j)-cov.At(i, j)) > 1e-10 {
				t.Fatalf("reconstruction mismatch at (%d,%d): %v != %v",
					i, j, rec.At(i, j), cov.At(i, j))
			}
		}
	}
}

func diag(values []float64) *mat.Dense {
	n := len(values)
	d := mat.NewDense(n, n, nil)
	for i, v := range values {
		d.Set(i, i, v)
	}
	return d
}
