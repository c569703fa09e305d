// Package residual implements factor graph residual functions: the
// error between one or more variables and a measurement, evaluated via
// forward-mode automatic differentiation (package numeric's Dual) so a
// single call yields both the residual vector and its Jacobian with
// respect to every involved variable's tangent space.
//
// Grounded on the analytic per-observation Jacobian pattern in the
// teacher's bba/bba_engine/math.go reprojection residual, generalized
// from a fixed camera/point pair to an arbitrary manifold.Variable
// arity by seeding numeric.Dual at the linearization point instead of
// hand-deriving partial derivatives for each new factor type.
package residual

import (
	"errors"
	"fmt"

	"fgopt/manifold"
)

// ErrArity is returned when Evaluate is given the wrong number of
// variables for this residual's Arity.
var ErrArity = errors.New("residual: wrong number of variables")

// ErrKind is returned when a variable does not have the concrete
// manifold type this residual expects.
var ErrKind = errors.New("residual: unexpected variable kind")

// Residual is the capability every factor's error function provides.
// Evaluate returns the residual vector (length Dim()) and its Jacobian
// (Dim() rows, one column block per variable in vars, in order) at the
// given linearization point.
type Residual interface {
	Dim() int
	Arity() int
	Evaluate(vars []manifold.Variable) (r []float64, j [][]float64, err error)
}

func checkArity(vars []manifold.Variable, want int) error {
	if len(vars) != want {
		return fmt.Errorf("%w: want %d, got %d", ErrArity, want, len(vars))
	}
	return nil
}
