package lie

import "fgopt/numeric"

// VecN is the Euclidean group R^n: oplus is addition, tangent dimension
// equals representation dimension.
type VecN[T numeric.Number[T]] struct {
	V []T
}

func IdentityVecN[T numeric.Number[T]](n int) VecN[T] {
	z := numeric.Zero[T]()
	v := make([]T, n)
	for i := range v {
		v[i] = z
	}
	return VecN[T]{V: v}
}

func ComposeVecN[T numeric.Number[T]](a, b VecN[T]) VecN[T] {
	out := make([]T, len(a.V))
	for i := range out {
		out[i] = a.V[i].Add(b.V[i])
	}
	return VecN[T]{V: out}
}

func InverseVecN[T numeric.Number[T]](a VecN[T]) VecN[T] {
	out := make([]T, len(a.V))
	for i := range out {
		out[i] = a.V[i].Neg()
	}
	return VecN[T]{V: out}
}

func ExpVecN[T numeric.Number[T]](delta []T) VecN[T] {
	out := make([]T, len(delta))
	copy(out, delta)
	return VecN[T]{V: out}
}

func LogVecN[T numeric.Number[T]](a VecN[T]) []T {
	out := make([]T, len(a.V))
	copy(out, a.V)
	return out
}

func OPlusVecN[T numeric.Number[T]](x VecN[T], delta []T) VecN[T] {
	return oplusOrder(ComposeVecN[T], x, ExpVecN[T](delta))
}

func OMinusVecN[T numeric.Number[T]](y, x VecN[T]) []T {
	return LogVecN(ominusOrder(ComposeVecN[T], InverseVecN[T], y, x))
}
