// Package linear assembles a factor graph's per-factor residuals and
// Jacobian blocks into the dense normal-equation system (JtJ + lambda
// I) delta = -Jt r and solves it. Grounded on the teacher's
// bba_engine/solver.go normal-equation assembly, generalized from a
// fixed-size 6-pose/3-point block layout to an arbitrary Ordering, and
// upgraded from the teacher's Gaussian elimination to a Cholesky
// factorization so a non-positive-definite system is reported as
// SingularSystem rather than silently dividing by a near-zero pivot.
package linear

import (
	"errors"
	"fmt"

	"fgopt/factor"
	"fgopt/internal/linalg"
	"fgopt/values"
)

// ErrSingularSystem is returned by Solve when JtJ + lambda*I is not
// positive-definite at the current linearization point.
var ErrSingularSystem = errors.New("linear: singular system")

// System is the assembled Gauss-Newton normal equations: Jt J (in
// Hessian) and Jt r (in Gradient), in Ordering column order.
type System struct {
	Hessian  linalg.Dense
	Gradient []float64
	Cost     float64 // 0.5 * ||r||^2 at the linearization point
}

// Assemble linearizes every factor in g at vals and accumulates the
// Gauss-Newton normal equations over ord's column layout.
func Assemble(g *factor.Graph, vals *values.Values, ord *values.Ordering) (*System, error) {
	n := ord.Total()
	sys := &System{Hessian: linalg.NewDense(n, n), Gradient: make([]float64, n)}

	for _, f := range g.Factors() {
		r, blocks, err := f.Linearize(vals, ord)
		if err != nil {
			return nil, fmt.Errorf("linear: linearizing factor on %v: %w", f.Keys, err)
		}
		for _, x := range r {
			sys.Cost += 0.5 * x * x
		}

		for _, bi := range blocks {
			for row := range bi.J {
				for c := 0; c < bi.Dim; c++ {
					sys.Gradient[bi.GlobalOff+c] += bi.J[row][c] * r[row]
				}
			}
		}

		for _, bi := range blocks {
			for _, bj := range blocks {
				accumulateBlock(sys.Hessian, bi, bj)
			}
		}
	}
	return sys, nil
}

func accumulateBlock(h linalg.Dense, bi, bj factor.Block) {
	rows := len(bi.J)
	for a := 0; a < bi.Dim; a++ {
		for b := 0; b < bj.Dim; b++ {
			s := 0.0
			for row := 0; row < rows; row++ {
				s += bi.J[row][a] * bj.J[row][b]
			}
			h[bi.GlobalOff+a][bj.GlobalOff+b] += s
		}
	}
}

// Solve solves (H + lambda*I) delta = -g via dense Cholesky, the
// linear-solver contract every optimizer iteration relies on. A
// non-positive-definite damped Hessian is reported as
// ErrSingularSystem.
func Solve(sys *System, lambda float64) ([]float64, error) {
	n := len(sys.Gradient)
	damped := linalg.NewDense(n, n)
	for i := range damped {
		copy(damped[i], sys.Hessian[i])
	}
	linalg.AddDiagonal(damped, lambda)

	neg := make([]float64, n)
	for i, v := range sys.Gradient {
		neg[i] = -v
	}

	l, err := linalg.Cholesky(damped)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularSystem, err)
	}
	return linalg.CholeskySolve(l, neg), nil
}
