package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"fgopt/numeric"
)

// central difference reference for d f(x)/dx at x, used to check the dual
// gradient the same way a hand-derived Jacobian would be checked.
func centralDiff(f func(float64) float64, x float64) float64 {
	const h = 1e-6
	return (f(x+h) - f(x-h)) / (2 * h)
}

func TestDualUnaryGradients(t *testing.T) {
	cases := []struct {
		name string
		x    float64
		fD   func(numeric.Dual) numeric.Dual
		fR   func(float64) float64
	}{
		{"sin", 0.7, func(d numeric.Dual) numeric.Dual { return d.Sin() }, math.Sin},
		{"cos", 0.7, func(d numeric.Dual) numeric.Dual { return d.Cos() }, math.Cos},
		{"sqrt", 2.3, func(d numeric.Dual) numeric.Dual { return d.Sqrt() }, math.Sqrt},
		{"asin", 0.3, func(d numeric.Dual) numeric.Dual { return d.Asin() }, math.Asin},
		{"neg", 1.5, func(d numeric.Dual) numeric.Dual { return d.Neg() }, func(x float64) float64 { return -x }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x := numeric.Dual{}.Seed(c.x, 0, 1)
			out := c.fD(x)
			require.InDelta(t, c.fR(c.x), out.Value(), 1e-12)
			require.InDelta(t, centralDiff(c.fR, c.x), out.Grad(0), 1e-6)
		})
	}
}

func TestDualBinaryGradients(t *testing.T) {
	a := numeric.Dual{}.Seed(1.3, 0, 2)
	b := numeric.Dual{}.Seed(-0.4, 1, 2)

	mul := a.Mul(b)
	require.InDelta(t, 1.3*-0.4, mul.Value(), 1e-12)
	require.InDelta(t, -0.4, mul.Grad(0), 1e-9) // d(ab)/da = b
	require.InDelta(t, 1.3, mul.Grad(1), 1e-9)   // d(ab)/db = a

	div := a.Div(b)
	require.InDelta(t, 1.3/-0.4, div.Value(), 1e-12)
	require.InDelta(t, 1/-0.4, div.Grad(0), 1e-9)
	require.InDelta(t, -1.3/(-0.4*-0.4), div.Grad(1), 1e-9)

	at := a.Atan2(b)
	require.InDelta(t, math.Atan2(1.3, -0.4), at.Value(), 1e-12)
}

func TestDualConstHasNoGradient(t *testing.T) {
	c := numeric.Dual{}.Const(5)
	require.Equal(t, 0, c.Width())
	require.Equal(t, 5.0, c.Value())
	require.Equal(t, 0.0, c.Grad(0))
}

func TestDualOverflowWidth(t *testing.T) {
	w := numeric.MaxStaticWidth + 5
	x := numeric.Dual{}.Seed(2.0, w-1, w)
	y := x.Mul(x)
	require.InDelta(t, 4.0, y.Value(), 1e-12)
	require.InDelta(t, 4.0, y.Grad(w-1), 1e-9) // d(x^2)/dx = 2x = 4
	require.Equal(t, 0.0, y.Grad(0))
}
