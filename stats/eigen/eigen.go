// Package eigen defines the eigendecomposition capability consumed by
// covariance-based analyses, together with a gonum-backed default.
//
// The core only depends on the [Decomposer] interface; any conforming
// implementation (LAPACK bindings, a remote solver) is a valid substitute.
package eigen

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrFailed reports that the eigendecomposition did not converge.
var ErrFailed = errors.New("eigendecomposition failed")

// Decomposer solves the symmetric (real Hermitian) eigenproblem.
// Implementations return eigenvalues in ascending order with the matching
// eigenvectors in the columns of vectors.
type Decomposer interface {
	Eigh(m mat.Symmetric) (values []float64, vectors *mat.Dense, err error)
}

// Gonum is the default Decomposer backed by gonum's EigenSym.
type Gonum struct{}

// Eigh factorizes m and returns its eigenvalues and eigenvectors.
func (Gonum) Eigh(m mat.Symmetric) ([]float64, *mat.Dense, error) {
	if m == nil || m.SymmetricDim() == 0 {
		return nil, nil, fmt.Errorf("%w: empty matrix", ErrFailed)
	}

	var es mat.EigenSym
	if !es.Factorize(m, true) {
		return nil, nil, ErrFailed
	}

	values := es.Values(nil)

	var vectors mat.Dense
	es.VectorsTo(&vectors)

	return values, &vectors, nil
}
