package manifold_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fgopt/manifold"
)

func TestOPlusZeroIsIdentity(t *testing.T) {
	cases := []struct {
		name string
		v    manifold.Variable
	}{
		{"vector", manifold.NewVector([]float64{1, 2, 3})},
		{"so2", manifold.NewSO2(0.7)},
		{"so3", manifold.NewSO3FromAxisAngle([3]float64{0.1, -0.2, 0.3})},
		{"se2", manifold.NewSE2(1, 2, 0.3)},
		{"se3", manifold.NewSE3([4]float64{0, 0, 0, 1}, [3]float64{1, 2, 3})},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			zero := make([]float64, c.v.Dim())
			y := c.v.OPlusReal(zero)
			d, err := y.OMinusReal(c.v)
			require.NoError(t, err)
			for _, x := range d {
				require.InDelta(t, 0.0, x, 1e-9)
			}
		})
	}
}

func TestOMinusOPlusRoundTrip(t *testing.T) {
	x := manifold.NewSE3([4]float64{0.1, 0.2, 0.3, 0.9}, [3]float64{1, 2, 3})
	delta := []float64{0.01, -0.02, 0.03, 0.001, -0.002, 0.0005}
	y := x.OPlusReal(delta)
	back, err := y.OMinusReal(x)
	require.NoError(t, err)
	for i := range delta {
		require.InDelta(t, delta[i], back[i], 1e-6)
	}
}

func TestKindMismatch(t *testing.T) {
	x := manifold.NewSO2(0.1)
	y := manifold.NewVector([]float64{1})
	_, err := x.OMinusReal(y)
	require.ErrorIs(t, err, manifold.ErrKindMismatch)
}
