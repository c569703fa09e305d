//go:build fake_exp

// fake_exp build: substitutes the decoupled SO(3)xR^3 retraction for
// SE3.exp, i.e. the left Jacobian V is taken to be the identity. See
// se3_exp.go for the default closed-form version.
package lie

import "fgopt/numeric"

func ExpSE3[T numeric.Number[T]](rho, omega [3]T) SE3[T] {
	return SE3[T]{R: ExpSO3(omega), T: rho}
}

func LogSE3[T numeric.Number[T]](x SE3[T]) (rho, omega [3]T) {
	omega = LogSO3(x.R)
	rho = x.T
	return
}
