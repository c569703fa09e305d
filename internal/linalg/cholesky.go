package linalg

import (
	"errors"
	"math"
)

// ErrNotPositiveDefinite is returned by Cholesky when the input is not
// positive-definite to working precision — the solver-level
// SingularSystem condition.
var ErrNotPositiveDefinite = errors.New("linalg: matrix is not positive-definite")

// Cholesky computes the lower-triangular factor L such that A = L*L^T,
// for a square symmetric A. Only the lower triangle of A is read.
func Cholesky(a Dense) (Dense, error) {
	n := a.Rows()
	l := NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sum := a[i][j]
			for k := 0; k < j; k++ {
				sum -= l[i][k] * l[j][k]
			}
			if i == j {
				if sum <= 0 {
					return nil, ErrNotPositiveDefinite
				}
				l[i][j] = math.Sqrt(sum)
			} else {
				l[i][j] = sum / l[j][j]
			}
		}
	}
	return l, nil
}

// CholeskySolve solves A*x = b given A's Cholesky factor L (A = L L^T) by
// forward- then back-substitution.
func CholeskySolve(l Dense, b []float64) []float64 {
	n := l.Rows()
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := b[i]
		for k := 0; k < i; k++ {
			sum -= l[i][k] * y[k]
		}
		y[i] = sum / l[i][i]
	}
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for k := i + 1; k < n; k++ {
			sum -= l[k][i] * x[k]
		}
		x[i] = sum / l[i][i]
	}
	return x
}

// TriangularTranspose returns the transpose of a lower-triangular matrix
// stored densely (used to turn a Cholesky factor into a whitening
// operator W = L^T for a full-information noise model).
func TriangularTranspose(l Dense) Dense {
	return Transpose(l)
}
