package lie

import "fgopt/numeric"

// SO2 is a unit complex number (cos, sin) representing a 2-D rotation.
// Tangent dimension is 1 (the rotation angle).
type SO2[T numeric.Number[T]] struct {
	C, S T // cos(theta), sin(theta)
}

func IdentitySO2[T numeric.Number[T]]() SO2[T] {
	return SO2[T]{C: numeric.One[T](), S: numeric.Zero[T]()}
}

func ComposeSO2[T numeric.Number[T]](a, b SO2[T]) SO2[T] {
	return SO2[T]{
		C: a.C.Mul(b.C).Sub(a.S.Mul(b.S)),
		S: a.S.Mul(b.C).Add(a.C.Mul(b.S)),
	}
}

func InverseSO2[T numeric.Number[T]](a SO2[T]) SO2[T] {
	return SO2[T]{C: a.C, S: a.S.Neg()}
}

// ExpSO2(theta) = (cos theta, sin theta).
func ExpSO2[T numeric.Number[T]](theta T) SO2[T] {
	return SO2[T]{C: theta.Cos(), S: theta.Sin()}
}

// LogSO2 returns atan2(sin, cos).
func LogSO2[T numeric.Number[T]](a SO2[T]) T {
	return a.S.Atan2(a.C)
}

func OPlusSO2[T numeric.Number[T]](x SO2[T], delta T) SO2[T] {
	return oplusOrder(ComposeSO2[T], x, ExpSO2[T](delta))
}

func OMinusSO2[T numeric.Number[T]](y, x SO2[T]) T {
	return LogSO2(ominusOrder(ComposeSO2[T], InverseSO2[T], y, x))
}
