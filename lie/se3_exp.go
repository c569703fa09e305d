//go:build !fake_exp

// Default SE3 exponential: uses the closed-form left Jacobian of SO(3) to
// couple rotation and translation. Build with -tags fake_exp to substitute
// the decoupled SO(3)xR^3 retraction (see se3_exp_fake.go).
package lie

import "fgopt/numeric"

func leftJacobianSO3[T numeric.Number[T]](omega [3]T) [3][3]T {
	theta2 := omega[0].Mul(omega[0]).Add(omega[1].Mul(omega[1])).Add(omega[2].Mul(omega[2]))
	theta := theta2.Sqrt()
	w := Skew(omega)
	w2 := Mat3Mul(w, w)

	var a, b T
	if theta.Value() < so3SmallAngle {
		half := numeric.FromFloat[T](0.5)
		c24 := numeric.FromFloat[T](1.0 / 24.0)
		c720 := numeric.FromFloat[T](1.0 / 720.0)
		theta4 := theta2.Mul(theta2)
		a = half.Sub(c24.Mul(theta2)).Add(c720.Mul(theta4))

		c6 := numeric.FromFloat[T](1.0 / 6.0)
		c120 := numeric.FromFloat[T](1.0 / 120.0)
		c5040 := numeric.FromFloat[T](1.0 / 5040.0)
		b = c6.Sub(c120.Mul(theta2)).Add(c5040.Mul(theta4))
	} else {
		one := numeric.One[T]()
		a = one.Sub(theta.Cos()).Div(theta2)
		b = theta.Sub(theta.Sin()).Div(theta.Mul(theta2))
	}
	return Mat3Add(Mat3Add(Identity3[T](), Mat3Scale(w, a)), Mat3Scale(w2, b))
}

func leftJacobianInvSO3[T numeric.Number[T]](omega [3]T) [3][3]T {
	theta2 := omega[0].Mul(omega[0]).Add(omega[1].Mul(omega[1])).Add(omega[2].Mul(omega[2]))
	theta := theta2.Sqrt()
	w := Skew(omega)
	w2 := Mat3Mul(w, w)

	var c T
	if theta.Value() < so3SmallAngle {
		c12 := numeric.FromFloat[T](1.0 / 12.0)
		c720 := numeric.FromFloat[T](1.0 / 720.0)
		c = c12.Add(c720.Mul(theta2))
	} else {
		one := numeric.One[T]()
		two := numeric.FromFloat[T](2.0)
		c = one.Div(theta2).Sub(one.Add(theta.Cos()).Div(two.Mul(theta).Mul(theta.Sin())))
	}
	halfNeg := numeric.FromFloat[T](-0.5)
	return Mat3Add(Mat3Add(Identity3[T](), Mat3Scale(w, halfNeg)), Mat3Scale(w2, c))
}

// ExpSE3 maps (rho, omega) to a rigid motion: rotation from SO(3).exp,
// translation = V(omega) * rho where V is SO(3)'s left Jacobian.
func ExpSE3[T numeric.Number[T]](rho, omega [3]T) SE3[T] {
	r := ExpSO3(omega)
	v := leftJacobianSO3(omega)
	return SE3[T]{R: r, T: Mat3MulVec(v, rho)}
}

// LogSE3 is the inverse of ExpSE3.
func LogSE3[T numeric.Number[T]](x SE3[T]) (rho, omega [3]T) {
	omega = LogSO3(x.R)
	vinv := leftJacobianInvSO3(omega)
	rho = Mat3MulVec(vinv, x.T)
	return
}
