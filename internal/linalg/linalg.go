// Package linalg holds the dense matrix plumbing the linear solver and
// noise models are built on: construction, transpose, multiply and
// Cholesky factorization. It is adapted from the teacher's own math.go
// (NewMat/Transpose/MultiplyMat/MultiplyMatVec), generalized from a
// fixed 6x6/3x3 bundle-adjustment block layout to arbitrary dimension
// and extended with a proper Cholesky factorization so the solver can
// satisfy the "sparse Cholesky over JtJ" contract and detect a
// non-positive-definite system instead of only detecting an exactly
// singular pivot. The teacher's own Gaussian-elimination solver is not
// carried over: a rank-deficient Gauss-Newton system must surface as a
// singular-system error (see optimize's SolverFailure scenario), not
// silently fall through to an unpivoted fallback solve.
package linalg

import "math"

// Dense is a row-major dense matrix.
type Dense [][]float64

func NewDense(rows, cols int) Dense {
	m := make(Dense, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

func (m Dense) Rows() int { return len(m) }
func (m Dense) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

func Transpose(a Dense) Dense {
	out := NewDense(a.Cols(), a.Rows())
	for i := range a {
		for j := range a[i] {
			out[j][i] = a[i][j]
		}
	}
	return out
}

func Mul(a, b Dense) Dense {
	out := NewDense(a.Rows(), b.Cols())
	for i := range out {
		for k := range a[i] {
			aik := a[i][k]
			if aik == 0 {
				continue
			}
			row := b[k]
			for j := range out[i] {
				out[i][j] += aik * row[j]
			}
		}
	}
	return out
}

func MulVec(a Dense, v []float64) []float64 {
	out := make([]float64, a.Rows())
	for i := range a {
		s := 0.0
		for k, aik := range a[i] {
			s += aik * v[k]
		}
		out[i] = s
	}
	return out
}

func AddInPlace(dst, src Dense) {
	for i := range dst {
		for j := range dst[i] {
			dst[i][j] += src[i][j]
		}
	}
}

// AddDiagonal adds lambda to every diagonal entry of a square matrix, the
// Levenberg-Marquardt damping term.
func AddDiagonal(m Dense, lambda float64) {
	for i := range m {
		m[i][i] += lambda
	}
}

func VecNormInf(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		if a := math.Abs(x); a > m {
			m = a
		}
	}
	return m
}
