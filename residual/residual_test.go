package residual_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fgopt/manifold"
	"fgopt/residual"
)

func TestPriorVectorZeroAtMeasurement(t *testing.T) {
	p := residual.NewPriorVector([]float64{1, 2, 3})
	x := manifold.NewVector([]float64{1, 2, 3})

	r, j, err := p.Evaluate([]manifold.Variable{x})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 0, 0}, r, 1e-12)
	require.Len(t, j, 3)
	require.Len(t, j[0], 3)
}

func TestPriorVectorArityError(t *testing.T) {
	p := residual.NewPriorVector([]float64{1})
	_, _, err := p.Evaluate([]manifold.Variable{})
	require.ErrorIs(t, err, residual.ErrArity)
}

func TestPriorVectorKindError(t *testing.T) {
	p := residual.NewPriorVector([]float64{1})
	_, _, err := p.Evaluate([]manifold.Variable{manifold.NewSO2(0)})
	require.ErrorIs(t, err, residual.ErrKind)
}

func TestPriorSO2NonzeroResidualAndJacobian(t *testing.T) {
	p := residual.NewPriorSO2(0.3)
	x := manifold.NewSO2(0.1)

	r, j, err := p.Evaluate([]manifold.Variable{x})
	require.NoError(t, err)
	require.InDelta(t, 0.2, r[0], 1e-9)
	require.InDelta(t, -1.0, j[0][0], 1e-6)
}

func TestBetweenVectorZeroWhenDifferenceMatches(t *testing.T) {
	b := residual.NewBetweenVector([]float64{1, 1})
	a := manifold.NewVector([]float64{0, 0})
	x := manifold.NewVector([]float64{1, 1})

	r, j, err := b.Evaluate([]manifold.Variable{a, x})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 0}, r, 1e-12)
	require.Len(t, j[0], 4)
}

func TestBetweenSE3IdentityRoundTrip(t *testing.T) {
	a := manifold.IdentitySE3()
	x := manifold.NewSE3([4]float64{0, 0, 0, 1}, [3]float64{1, 0, 0})
	b := residual.NewBetweenSE3(manifold.NewSE3([4]float64{0, 0, 0, 1}, [3]float64{1, 0, 0}))

	r, j, err := b.Evaluate([]manifold.Variable{a, x})
	require.NoError(t, err)
	require.InDeltaSlice(t, make([]float64, 6), r, 1e-9)
	require.Len(t, j, 6)
	require.Len(t, j[0], 12)
}

func TestIMUPreintegrationZeroAtConsistentState(t *testing.T) {
	poseI := manifold.IdentitySE3()
	poseJ := manifold.NewSE3([4]float64{0, 0, 0, 1}, [3]float64{2, 0, 0})
	velI := manifold.NewVector([]float64{1, 0, 0})
	velJ := manifold.NewVector([]float64{1, 0, 0})

	f := residual.NewIMUPreintegration(
		manifold.IdentitySO3(),
		[3]float64{0, 0, 0},
		[3]float64{1, 0, 0},
		1.0,
		[3]float64{0, 0, 0},
	)

	r, j, err := f.Evaluate([]manifold.Variable{poseI, velI, poseJ, velJ})
	require.NoError(t, err)
	require.InDeltaSlice(t, make([]float64, 9), r, 1e-9)
	require.Len(t, j, 9)
	require.Len(t, j[0], 18)
}
