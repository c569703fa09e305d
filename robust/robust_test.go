package robust_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fgopt/robust"
)

func TestL2IsIdentityWeight(t *testing.T) {
	require.InDelta(t, 1.0, robust.Weight(robust.L2{}, 4.0), 1e-12)
	require.InDelta(t, 4.0, robust.L2{}.Rho(4.0), 1e-12)
}

func TestHuberMatchesQuadraticBelowThreshold(t *testing.T) {
	h := robust.Huber{Delta: 1.5}
	require.InDelta(t, 1.0, h.Rho(1.0), 1e-12)
	require.InDelta(t, 1.0, h.RhoPrime(1.0), 1e-12)
}

func TestHuberIsSublinearPastThreshold(t *testing.T) {
	h := robust.Huber{Delta: 1.0}
	s := 100.0
	require.Less(t, h.Rho(s), s)
	require.Less(t, h.RhoPrime(s), 1.0)
}

func TestKernelsAreDownweightingFarFromOrigin(t *testing.T) {
	kernels := []robust.Kernel{
		robust.Huber{Delta: 1.0},
		robust.Cauchy{C: 1.0},
		robust.GemanMcClure{C: 1.0},
		robust.Welsch{C: 1.0},
		robust.Tukey{C: 1.0},
	}
	for _, k := range kernels {
		wNear := robust.Weight(k, 0.01)
		wFar := robust.Weight(k, 100.0)
		require.Greaterf(t, wNear, wFar, "%T should downweight large residuals", k)
	}
}

func TestTukeyRejectsBeyondThreshold(t *testing.T) {
	k := robust.Tukey{C: 2.0}
	require.InDelta(t, 0, k.RhoPrime(5.0), 1e-12)
	require.InDelta(t, 0, robust.Weight(k, 100.0), 1e-12)
}

func TestApplyScalesResidualAndJacobianUniformly(t *testing.T) {
	k := robust.Huber{Delta: 1.0}
	r := []float64{3, 4} // norm^2 = 25
	j := [][]float64{{1, 0}, {0, 1}}

	rHat, jHat := robust.Apply(k, r, j)
	w := robust.Weight(k, 25.0)

	require.InDelta(t, w*3, rHat[0], 1e-12)
	require.InDelta(t, w*4, rHat[1], 1e-12)
	require.InDelta(t, w, jHat[0][0], 1e-12)
	require.InDelta(t, w, jHat[1][1], 1e-12)
	require.True(t, w < 1 && w > 0)
}

func TestRhoPrimeNeverNegativeWeight(t *testing.T) {
	k := robust.GemanMcClure{C: 0.5}
	for _, s := range []float64{0, 0.1, 1, 10, 1000} {
		require.GreaterOrEqual(t, robust.Weight(k, s), 0.0)
	}
}

func TestRhoPrimeIsOneAtOriginExceptL2(t *testing.T) {
	// Every robust kernel here must agree with L2 to first order at
	// s=0, so an inlier (a residual at the linearization point) is
	// never down-weighted.
	kernels := []robust.Kernel{
		robust.Huber{Delta: 1.345},
		robust.Cauchy{C: 1.0},
		robust.GemanMcClure{C: 1.0},
		robust.Welsch{C: 1.0},
		robust.Tukey{C: 4.685},
	}
	for _, k := range kernels {
		require.InDeltaf(t, 1.0, k.RhoPrime(0), 1e-12, "%T", k)
	}
}
