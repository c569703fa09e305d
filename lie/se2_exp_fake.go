//go:build fake_exp

// fake_exp build: SE2's left Jacobian is taken to be the identity.
package lie

import "fgopt/numeric"

func ExpSE2[T numeric.Number[T]](rho [2]T, theta T) SE2[T] {
	return SE2[T]{R: ExpSO2(theta), T: rho}
}

func LogSE2[T numeric.Number[T]](x SE2[T]) (rho [2]T, theta T) {
	theta = LogSO2(x.R)
	rho = x.T
	return
}
