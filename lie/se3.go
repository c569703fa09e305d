package lie

import "fgopt/numeric"

// SE3 is a rigid-motion (rotation, translation) pair in R^3. Tangent
// dimension is 6: (rho, omega), translation part then rotation part.
type SE3[T numeric.Number[T]] struct {
	R SO3[T]
	T [3]T
}

func IdentitySE3[T numeric.Number[T]]() SE3[T] {
	z := numeric.Zero[T]()
	return SE3[T]{R: IdentitySO3[T](), T: [3]T{z, z, z}}
}

// ComposeSE3 is the usual rigid-motion composition:
// (Ra, ta) * (Rb, tb) = (Ra*Rb, ta + Ra*tb).
func ComposeSE3[T numeric.Number[T]](a, b SE3[T]) SE3[T] {
	r := ComposeSO3(a.R, b.R)
	rotatedB := RotateSO3(a.R, b.T)
	return SE3[T]{R: r, T: vec3Add(a.T, rotatedB)}
}

func InverseSE3[T numeric.Number[T]](a SE3[T]) SE3[T] {
	rinv := InverseSO3(a.R)
	t := RotateSO3(rinv, a.T)
	return SE3[T]{R: rinv, T: [3]T{t[0].Neg(), t[1].Neg(), t[2].Neg()}}
}

func vec3Add[T numeric.Number[T]](a, b [3]T) [3]T {
	return [3]T{a[0].Add(b[0]), a[1].Add(b[1]), a[2].Add(b[2])}
}

func OPlusSE3[T numeric.Number[T]](x SE3[T], delta [6]T) SE3[T] {
	var rho, omega [3]T
	rho = [3]T{delta[0], delta[1], delta[2]}
	omega = [3]T{delta[3], delta[4], delta[5]}
	return oplusOrder(ComposeSE3[T], x, ExpSE3[T](rho, omega))
}

func OMinusSE3[T numeric.Number[T]](y, x SE3[T]) [6]T {
	rho, omega := LogSE3(ominusOrder(ComposeSE3[T], InverseSE3[T], y, x))
	return [6]T{rho[0], rho[1], rho[2], omega[0], omega[1], omega[2]}
}

// AdjointSE3 maps a tangent vector at identity to the tangent vector at
// X: for (rho, omega), Ad_X = [[R, skew(t)*R], [0, R]].
func AdjointSE3[T numeric.Number[T]](x SE3[T], rho, omega [3]T) ([3]T, [3]T) {
	R := RotationMatrixSO3(x.R)
	rOmega := Mat3MulVec(R, omega)
	rRho := Mat3MulVec(R, rho)
	skewTR := Mat3MulVec(Skew(x.T), rOmega)
	return vec3Add(rRho, skewTR), rOmega
}
