// Package numeric provides the scalar arithmetic abstraction the rest of
// the module is written against: a fixed active real type (Real) and a
// forward-mode dual number (see the dual subtype in dual.go) that carries
// it through the chain rule. Residual math is written once against the
// Number constraint below and instantiated at both types, the way
// hyperdual.Number is instantiated in the gonum hyperdual package this
// design is grounded on.
package numeric

// Number is the arithmetic capability every scalar type used inside
// residual math must provide. Go has no operator overloading, so this
// plays the role C++ operator overloads would play in a templated
// residual: implementors write arithmetic once against Number[T] and the
// engine instantiates T at Real (to get the residual value) and at Dual
// (to get value + Jacobian row) without duplicating the formula.
//
// Const and Seed are constructors rather than free functions because Go
// generics cannot call a type parameter's constructor directly; both are
// called on a (possibly zero-value) receiver purely to select the
// implementation — the receiver's own value is never read.
type Number[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T
	Sqrt() T
	Sin() T
	Cos() T
	Asin() T
	Atan2(T) T
	Abs() T

	// Const builds a constant of this type from a plain float64,
	// carrying no gradient information when T is Dual.
	Const(v float64) T
	// Seed builds the variable "idx" of a width-w dual perturbation,
	// i.e. the value v with a unit gradient in slot idx. For T = Real
	// idx and w are ignored and the perturbation is simply discarded.
	Seed(v float64, idx, w int) T
	// Value extracts the real part, discarding any gradient.
	Value() float64
}

// Zero returns the additive identity for T.
func Zero[T Number[T]]() T {
	var z T
	return z.Const(0)
}

// One returns the multiplicative identity for T.
func One[T Number[T]]() T {
	var z T
	return z.Const(1)
}

// FromFloat lifts a plain float64 into a constant of type T.
func FromFloat[T Number[T]](v float64) T {
	var z T
	return z.Const(v)
}
