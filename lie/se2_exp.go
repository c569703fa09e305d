//go:build !fake_exp

// Default SE2 exponential: closed-form left Jacobian of SO(2). Build with
// -tags fake_exp for the decoupled retraction (see se2_exp_fake.go).
package lie

import "fgopt/numeric"

const so2SmallAngle = 1e-8

// leftJacobianSO2 returns V(theta) = [[a,-b],[b,a]] with a = sin(theta)/theta,
// b = (1-cos(theta))/theta.
func leftJacobianSO2[T numeric.Number[T]](theta T) (a, b T) {
	theta2 := theta.Mul(theta)
	if theta.Abs().Value() < so2SmallAngle {
		one := numeric.One[T]()
		c6 := numeric.FromFloat[T](1.0 / 6.0)
		a = one.Sub(c6.Mul(theta2))
		half := numeric.FromFloat[T](0.5)
		c24 := numeric.FromFloat[T](1.0 / 24.0)
		b = half.Mul(theta).Sub(c24.Mul(theta).Mul(theta2))
	} else {
		a = theta.Sin().Div(theta)
		one := numeric.One[T]()
		b = one.Sub(theta.Cos()).Div(theta)
	}
	return
}

func ExpSE2[T numeric.Number[T]](rho [2]T, theta T) SE2[T] {
	a, b := leftJacobianSO2(theta)
	t := [2]T{
		a.Mul(rho[0]).Sub(b.Mul(rho[1])),
		b.Mul(rho[0]).Add(a.Mul(rho[1])),
	}
	return SE2[T]{R: ExpSO2(theta), T: t}
}

func LogSE2[T numeric.Number[T]](x SE2[T]) (rho [2]T, theta T) {
	theta = LogSO2(x.R)
	a, b := leftJacobianSO2(theta)
	det := a.Mul(a).Add(b.Mul(b))
	// inverse of [[a,-b],[b,a]] is (1/det)[[a,b],[-b,a]]
	rho = [2]T{
		a.Mul(x.T[0]).Add(b.Mul(x.T[1])).Div(det),
		b.Neg().Mul(x.T[0]).Add(a.Mul(x.T[1])).Div(det),
	}
	return
}
