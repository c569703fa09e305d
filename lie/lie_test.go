package lie_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"fgopt/lie"
	"fgopt/numeric"
)

type R = numeric.Real

func TestSO2RoundTrip(t *testing.T) {
	theta := R(0.8)
	q := lie.ExpSO2[R](theta)
	require.InDelta(t, float64(theta), float64(lie.LogSO2(q)), 1e-9)

	x := lie.ExpSO2[R](R(0.3))
	xi := R(0.05)
	y := lie.OPlusSO2(x, xi)
	require.InDelta(t, float64(xi), float64(lie.OMinusSO2(y, x)), 1e-9)

	id := lie.IdentitySO2[R]()
	require.InDelta(t, float64(x.C), float64(lie.ComposeSO2(x, id).C), 1e-12)
	inv := lie.InverseSO2(x)
	comp := lie.ComposeSO2(x, inv)
	require.InDelta(t, 1.0, float64(comp.C), 1e-12)
	require.InDelta(t, 0.0, float64(comp.S), 1e-12)
}

func TestSO3RoundTrip(t *testing.T) {
	omega := [3]R{0.1, -0.2, 0.3}
	q := lie.ExpSO3[R](omega)
	back := lie.LogSO3(q)
	for i := range omega {
		require.InDelta(t, float64(omega[i]), float64(back[i]), 1e-8)
	}

	id := lie.IdentitySO3[R]()
	comp := lie.ComposeSO3(q, lie.InverseSO3(q))
	require.InDelta(t, 1.0, float64(comp.W), 1e-9)
	require.InDelta(t, 0.0, float64(comp.X), 1e-9)
	require.InDelta(t, float64(id.W), 1.0, 1e-12)
}

func TestSO3SmallAngle(t *testing.T) {
	omega := [3]R{1e-10, 2e-10, -1e-10}
	q := lie.ExpSO3[R](omega)
	back := lie.LogSO3(q)
	for i := range omega {
		require.InDelta(t, float64(omega[i]), float64(back[i]), 1e-9)
	}
}

func TestSE3RoundTrip(t *testing.T) {
	rho := [3]R{1.0, 0.5, -0.3}
	omega := [3]R{0.2, -0.1, 0.05}
	x := lie.ExpSE3[R](rho, omega)
	rho2, omega2 := lie.LogSE3(x)
	for i := 0; i < 3; i++ {
		require.InDelta(t, float64(rho[i]), float64(rho2[i]), 1e-7)
		require.InDelta(t, float64(omega[i]), float64(omega2[i]), 1e-7)
	}

	inv := lie.InverseSE3(x)
	comp := lie.ComposeSE3(x, inv)
	id := lie.IdentitySE3[R]()
	require.InDelta(t, float64(id.R.W), float64(comp.R.W), 1e-9)
	for i := 0; i < 3; i++ {
		require.InDelta(t, 0.0, float64(comp.T[i]), 1e-9)
	}
}

func TestSE3OPlusOMinus(t *testing.T) {
	x := lie.ExpSE3[R]([3]R{0.1, 0.2, 0.3}, [3]R{0.05, -0.02, 0.01})
	delta := [6]R{0.01, -0.02, 0.03, 0.001, 0.002, -0.001}
	y := lie.OPlusSE3(x, delta)
	back := lie.OMinusSE3(y, x)
	for i := 0; i < 6; i++ {
		require.InDelta(t, float64(delta[i]), float64(back[i]), 1e-6)
	}
}

func TestSE2RoundTrip(t *testing.T) {
	rho := [2]R{1.0, -0.5}
	theta := R(0.4)
	x := lie.ExpSE2[R](rho, theta)
	rho2, theta2 := lie.LogSE2(x)
	require.InDelta(t, float64(rho[0]), float64(rho2[0]), 1e-8)
	require.InDelta(t, float64(rho[1]), float64(rho2[1]), 1e-8)
	require.InDelta(t, float64(theta), float64(theta2), 1e-8)
}

func TestVecNOPlus(t *testing.T) {
	x := lie.VecN[R]{V: []R{1, 2, 3}}
	delta := []R{0.5, -0.5, 1.0}
	y := lie.OPlusVecN(x, delta)
	require.Equal(t, []R{1.5, 1.5, 4.0}, y.V)
	back := lie.OMinusVecN(y, x)
	for i := range delta {
		require.InDelta(t, float64(delta[i]), float64(back[i]), 1e-12)
	}
}

func TestRotateSO3MatchesAxisAngle(t *testing.T) {
	// rotating (1,0,0) by pi/2 about z should give (0,1,0)
	q := lie.ExpSO3[R]([3]R{0, 0, math.Pi / 2})
	v := lie.RotateSO3(q, [3]R{1, 0, 0})
	require.InDelta(t, 0.0, float64(v[0]), 1e-9)
	require.InDelta(t, 1.0, float64(v[1]), 1e-9)
	require.InDelta(t, 0.0, float64(v[2]), 1e-9)
}

func TestAdjointSO3MatchesRotation(t *testing.T) {
	// Ad_q applied to a tangent vector must agree with rotating that
	// same vector directly by q, since SO(3)'s adjoint is its own
	// rotation matrix.
	q := lie.ExpSO3[R]([3]R{0.1, -0.2, 0.3})
	w := [3]R{0.4, 0.5, -0.6}
	adj := lie.AdjointSO3(q)
	viaAdjoint := lie.Mat3MulVec(adj, w)
	viaRotate := lie.RotateSO3(q, w)
	for i := 0; i < 3; i++ {
		require.InDelta(t, float64(viaRotate[i]), float64(viaAdjoint[i]), 1e-12)
	}
}

func TestAdjointSE3AtIdentityIsIdentity(t *testing.T) {
	x := lie.IdentitySE3[R]()
	rho, omega := [3]R{1, 2, 3}, [3]R{4, 5, 6}
	outRho, outOmega := lie.AdjointSE3(x, rho, omega)
	require.Equal(t, rho, outRho)
	require.Equal(t, omega, outOmega)
}

func TestAdjointSE3MatchesDefinition(t *testing.T) {
	// x rotates 90 degrees about z ((x,y,z) -> (-y,x,z)) with
	// translation (1,0,0). Expected values below are computed by hand
	// from Ad_x(rho,omega) = (R*rho + t x (R*omega), R*omega).
	x := lie.SE3[R]{
		R: lie.ExpSO3[R]([3]R{0, 0, math.Pi / 2}),
		T: [3]R{1, 0, 0},
	}
	rho, omega := [3]R{0, 1, 0}, [3]R{0, 0, 1}
	outRho, outOmega := lie.AdjointSE3(x, rho, omega)

	require.InDelta(t, -1.0, float64(outRho[0]), 1e-9)
	require.InDelta(t, -1.0, float64(outRho[1]), 1e-9)
	require.InDelta(t, 0.0, float64(outRho[2]), 1e-9)

	require.InDelta(t, 0.0, float64(outOmega[0]), 1e-9)
	require.InDelta(t, 0.0, float64(outOmega[1]), 1e-9)
	require.InDelta(t, 1.0, float64(outOmega[2]), 1e-9)
}
