// Package manifold provides the storage-side representation of
// variables: boxed, Real-valued manifold elements satisfying the Variable
// capability interface, recovered by a tag-checked downcast at
// factor-evaluation time (see the design notes on the heterogeneous typed
// collection). The generic math itself lives in package lie; these types
// are thin Real-valued wrappers around it plus the plumbing Values and the
// optimizer need: Dim, Clone, and a float64-only retract used once per
// iteration after the linear solve.
package manifold

import "errors"

// ErrKindMismatch is returned when OMinusReal (or any operation expecting
// a matching concrete type) is given a Variable of a different kind.
var ErrKindMismatch = errors.New("manifold: variable kind mismatch")

// Variable is the capability every concrete manifold element exposes to
// Values and the optimizer. It never runs through dual numbers — AD lives
// entirely inside package residual, which downcasts to the concrete type
// to build the generic (numeric.Number[T]) lie-group call it needs.
type Variable interface {
	// Dim is the tangent dimension D_v.
	Dim() int
	// Kind identifies the concrete manifold type, for diagnostics and for
	// the type check Values.Update performs before replacing a variable.
	Kind() string
	// Clone returns an independent copy, used when the optimizer snapshots
	// Values for a trial Levenberg-Marquardt step.
	Clone() Variable
	// OPlusReal retracts by a tangent-space delta of length Dim().
	OPlusReal(delta []float64) Variable
	// OMinusReal returns the tangent vector taking x to y = this, i.e.
	// ominus(this, x). Returns ErrKindMismatch if x is a different kind.
	OMinusReal(x Variable) ([]float64, error)
}
