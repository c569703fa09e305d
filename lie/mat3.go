package lie

import "fgopt/numeric"

// Mat3MulVec computes m*v for a 3x3 matrix and a 3-vector, generic over
// the active scalar/dual type.
func Mat3MulVec[T numeric.Number[T]](m [3][3]T, v [3]T) [3]T {
	var out [3]T
	for i := 0; i < 3; i++ {
		out[i] = m[i][0].Mul(v[0]).Add(m[i][1].Mul(v[1])).Add(m[i][2].Mul(v[2]))
	}
	return out
}

// Mat3Mul computes a*b for two 3x3 matrices.
func Mat3Mul[T numeric.Number[T]](a, b [3][3]T) [3][3]T {
	var out [3][3]T
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s := a[i][0].Mul(b[0][j])
			s = s.Add(a[i][1].Mul(b[1][j]))
			s = s.Add(a[i][2].Mul(b[2][j]))
			out[i][j] = s
		}
	}
	return out
}

// Mat3Add computes a+b.
func Mat3Add[T numeric.Number[T]](a, b [3][3]T) [3][3]T {
	var out [3][3]T
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = a[i][j].Add(b[i][j])
		}
	}
	return out
}

// Mat3Scale computes s*a.
func Mat3Scale[T numeric.Number[T]](a [3][3]T, s T) [3][3]T {
	var out [3][3]T
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = a[i][j].Mul(s)
		}
	}
	return out
}

// Identity3 returns the 3x3 identity matrix.
func Identity3[T numeric.Number[T]]() [3][3]T {
	one, zero := numeric.One[T](), numeric.Zero[T]()
	return [3][3]T{
		{one, zero, zero},
		{zero, one, zero},
		{zero, zero, one},
	}
}

// Skew returns the skew-symmetric cross-product matrix of w, such that
// Skew(w)*v == cross(w, v).
func Skew[T numeric.Number[T]](w [3]T) [3][3]T {
	zero := numeric.Zero[T]()
	return [3][3]T{
		{zero, w[2].Neg(), w[1]},
		{w[2], zero, w[0].Neg()},
		{w[1].Neg(), w[0], zero},
	}
}
