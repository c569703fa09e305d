package residual_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fgopt/manifold"
	"fgopt/residual"
)

func TestProjectionResidualZeroAtConsistentObservation(t *testing.T) {
	cam := manifold.NewSE3([4]float64{0, 0, 0, 1}, [3]float64{0, 0, 0})
	pt := manifold.NewVector([]float64{1, 0, -5})

	// d = pt - cam = (1,0,-5); predicted = -F*r/q = -1*1/-5 = 0.2.
	p := residual.NewProjectionResidual(0.2, 0, 1.0)
	r, j, err := p.Evaluate([]manifold.Variable{cam, pt})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 0}, r, 1e-9)
	require.Len(t, j, 2)
	require.Len(t, j[0], 9)
}

func TestProjectionResidualNonzeroAwayFromObservation(t *testing.T) {
	cam := manifold.NewSE3([4]float64{0, 0, 0, 1}, [3]float64{0, 0, 0})
	pt := manifold.NewVector([]float64{1, 0, -5})

	p := residual.NewProjectionResidual(0, 0, 1.0)
	r, _, err := p.Evaluate([]manifold.Variable{cam, pt})
	require.NoError(t, err)
	require.InDelta(t, -0.2, r[0], 1e-9)
}

func TestProjectionResidualArityError(t *testing.T) {
	p := residual.NewProjectionResidual(0, 0, 1.0)
	cam := manifold.NewSE3([4]float64{0, 0, 0, 1}, [3]float64{0, 0, 0})
	_, _, err := p.Evaluate([]manifold.Variable{cam})
	require.ErrorIs(t, err, residual.ErrArity)
}

func TestProjectionResidualKindError(t *testing.T) {
	p := residual.NewProjectionResidual(0, 0, 1.0)
	_, _, err := p.Evaluate([]manifold.Variable{manifold.NewVector([]float64{0, 0, 0}), manifold.NewVector([]float64{1, 2, 3})})
	require.ErrorIs(t, err, residual.ErrKind)
}
