package lie

import "fgopt/numeric"

// SO3 is a unit quaternion in scalar-last canonical form (x, y, z, w).
// Tangent dimension is 3.
type SO3[T numeric.Number[T]] struct {
	X, Y, Z, W T
}

func IdentitySO3[T numeric.Number[T]]() SO3[T] {
	z := numeric.Zero[T]()
	return SO3[T]{X: z, Y: z, Z: z, W: numeric.One[T]()}
}

// ComposeSO3 is the Hamilton product of two scalar-last quaternions.
func ComposeSO3[T numeric.Number[T]](a, b SO3[T]) SO3[T] {
	w := a.W.Mul(b.W).Sub(a.X.Mul(b.X)).Sub(a.Y.Mul(b.Y)).Sub(a.Z.Mul(b.Z))
	x := a.W.Mul(b.X).Add(a.X.Mul(b.W)).Add(a.Y.Mul(b.Z)).Sub(a.Z.Mul(b.Y))
	y := a.W.Mul(b.Y).Sub(a.X.Mul(b.Z)).Add(a.Y.Mul(b.W)).Add(a.Z.Mul(b.X))
	zz := a.W.Mul(b.Z).Add(a.X.Mul(b.Y)).Sub(a.Y.Mul(b.X)).Add(a.Z.Mul(b.W))
	q := SO3[T]{X: x, Y: y, Z: zz, W: w}
	return NormalizeSO3(q)
}

// InverseSO3 is the conjugate, which is the inverse for a unit quaternion.
func InverseSO3[T numeric.Number[T]](a SO3[T]) SO3[T] {
	return SO3[T]{X: a.X.Neg(), Y: a.Y.Neg(), Z: a.Z.Neg(), W: a.W}
}

// NormalizeSO3 renormalizes a quaternion to unit length; composition
// re-normalizes after every product to counter drift, per the numeric
// policy of renormalizing after every composition.
func NormalizeSO3[T numeric.Number[T]](q SO3[T]) SO3[T] {
	n2 := q.X.Mul(q.X).Add(q.Y.Mul(q.Y)).Add(q.Z.Mul(q.Z)).Add(q.W.Mul(q.W))
	n := n2.Sqrt()
	return SO3[T]{X: q.X.Div(n), Y: q.Y.Div(n), Z: q.Z.Div(n), W: q.W.Div(n)}
}

const so3SmallAngle = 1e-8

// ExpSO3 maps an angle-axis tangent vector to a unit quaternion. Small
// angles use a 4th-order Taylor expansion of sinc(phi/2) instead of
// branching on an exact zero.
func ExpSO3[T numeric.Number[T]](omega [3]T) SO3[T] {
	phi2 := omega[0].Mul(omega[0]).Add(omega[1].Mul(omega[1])).Add(omega[2].Mul(omega[2]))
	phi := phi2.Sqrt()

	var sinHalfOverPhi, cosHalf T
	if phi.Value() < so3SmallAngle {
		half0 := numeric.FromFloat[T](0.5)
		c2 := numeric.FromFloat[T](1.0 / 48.0)
		c3 := numeric.FromFloat[T](1.0 / 3840.0)
		phi4 := phi2.Mul(phi2)
		sinHalfOverPhi = half0.Sub(c2.Mul(phi2)).Add(c3.Mul(phi4))

		cos0 := numeric.FromFloat[T](1.0)
		d2 := numeric.FromFloat[T](0.125)
		d3 := numeric.FromFloat[T](1.0 / 384.0)
		cosHalf = cos0.Sub(d2.Mul(phi2)).Add(d3.Mul(phi4))
	} else {
		half := phi.Mul(numeric.FromFloat[T](0.5))
		sinHalfOverPhi = half.Sin().Div(phi)
		cosHalf = half.Cos()
	}

	return SO3[T]{
		X: omega[0].Mul(sinHalfOverPhi),
		Y: omega[1].Mul(sinHalfOverPhi),
		Z: omega[2].Mul(sinHalfOverPhi),
		W: cosHalf,
	}
}

// LogSO3 returns the angle-axis tangent vector with angle in [0, pi]:
// with w >= 0 and the sin-half-angle norm non-negative, atan2 gives a
// half-angle in [0, pi/2].
func LogSO3[T numeric.Number[T]](q SO3[T]) [3]T {
	// q and -q are the same rotation; taking the w >= 0 representative
	// keeps the half-angle in [0, pi/2].
	if q.W.Value() < 0 {
		q = SO3[T]{X: q.X.Neg(), Y: q.Y.Neg(), Z: q.Z.Neg(), W: q.W.Neg()}
	}
	sinHalfNorm2 := q.X.Mul(q.X).Add(q.Y.Mul(q.Y)).Add(q.Z.Mul(q.Z))
	sinHalfNorm := sinHalfNorm2.Sqrt()

	var scale T
	if sinHalfNorm.Value() < so3SmallAngle {
		two := numeric.FromFloat[T](2.0)
		twoThirds := numeric.FromFloat[T](2.0 / 3.0)
		w3 := q.W.Mul(q.W).Mul(q.W)
		scale = two.Div(q.W).Sub(twoThirds.Mul(sinHalfNorm2).Div(w3))
	} else {
		halfAngle := sinHalfNorm.Atan2(q.W)
		scale = halfAngle.Mul(numeric.FromFloat[T](2.0)).Div(sinHalfNorm)
	}
	return [3]T{q.X.Mul(scale), q.Y.Mul(scale), q.Z.Mul(scale)}
}

func OPlusSO3[T numeric.Number[T]](x SO3[T], delta [3]T) SO3[T] {
	return oplusOrder(ComposeSO3[T], x, ExpSO3[T](delta))
}

func OMinusSO3[T numeric.Number[T]](y, x SO3[T]) [3]T {
	return LogSO3(ominusOrder(ComposeSO3[T], InverseSO3[T], y, x))
}

// RotationMatrixSO3 expands the quaternion into its equivalent 3x3
// rotation matrix.
func RotationMatrixSO3[T numeric.Number[T]](q SO3[T]) [3][3]T {
	two := numeric.FromFloat[T](2.0)
	one := numeric.One[T]()
	xx, yy, zz := q.X.Mul(q.X), q.Y.Mul(q.Y), q.Z.Mul(q.Z)
	xy, xz, yz := q.X.Mul(q.Y), q.X.Mul(q.Z), q.Y.Mul(q.Z)
	wx, wy, wz := q.W.Mul(q.X), q.W.Mul(q.Y), q.W.Mul(q.Z)

	return [3][3]T{
		{one.Sub(two.Mul(yy.Add(zz))), two.Mul(xy.Sub(wz)), two.Mul(xz.Add(wy))},
		{two.Mul(xy.Add(wz)), one.Sub(two.Mul(xx.Add(zz))), two.Mul(yz.Sub(wx))},
		{two.Mul(xz.Sub(wy)), two.Mul(yz.Add(wx)), one.Sub(two.Mul(xx.Add(yy)))},
	}
}

// RotateSO3 applies q's rotation to vector v.
func RotateSO3[T numeric.Number[T]](q SO3[T], v [3]T) [3]T {
	return Mat3MulVec(RotationMatrixSO3(q), v)
}

// AdjointSO3 is the adjoint action at q, which for SO(3) is simply its
// rotation matrix.
func AdjointSO3[T numeric.Number[T]](q SO3[T]) [3][3]T {
	return RotationMatrixSO3(q)
}
