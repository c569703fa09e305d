package lie

import "fgopt/numeric"

// SE2 is a rigid motion in the plane: a rotation paired with a
// translation. Tangent dimension is 3: (rho[2], omega).
type SE2[T numeric.Number[T]] struct {
	R SO2[T]
	T [2]T
}

func IdentitySE2[T numeric.Number[T]]() SE2[T] {
	z := numeric.Zero[T]()
	return SE2[T]{R: IdentitySO2[T](), T: [2]T{z, z}}
}

func rotate2[T numeric.Number[T]](r SO2[T], v [2]T) [2]T {
	return [2]T{
		r.C.Mul(v[0]).Sub(r.S.Mul(v[1])),
		r.S.Mul(v[0]).Add(r.C.Mul(v[1])),
	}
}

func ComposeSE2[T numeric.Number[T]](a, b SE2[T]) SE2[T] {
	r := ComposeSO2(a.R, b.R)
	rb := rotate2(a.R, b.T)
	return SE2[T]{R: r, T: [2]T{a.T[0].Add(rb[0]), a.T[1].Add(rb[1])}}
}

func InverseSE2[T numeric.Number[T]](a SE2[T]) SE2[T] {
	rinv := InverseSO2(a.R)
	t := rotate2(rinv, a.T)
	return SE2[T]{R: rinv, T: [2]T{t[0].Neg(), t[1].Neg()}}
}

func OPlusSE2[T numeric.Number[T]](x SE2[T], delta [3]T) SE2[T] {
	rho := [2]T{delta[0], delta[1]}
	return oplusOrder(ComposeSE2[T], x, ExpSE2[T](rho, delta[2]))
}

func OMinusSE2[T numeric.Number[T]](y, x SE2[T]) [3]T {
	rho, theta := LogSE2(ominusOrder(ComposeSE2[T], InverseSE2[T], y, x))
	return [3]T{rho[0], rho[1], theta}
}
