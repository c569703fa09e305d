package residual

import (
	"fmt"

	"fgopt/lie"
	"fgopt/manifold"
	"fgopt/numeric"
)

// ProjectionResidual is a pinhole collinearity-equation reprojection
// residual: given a camera pose (world-to-camera rotation plus camera
// center, an SE3 variable) and a 3-D landmark (a Vector of dim 3), it
// predicts the landmark's image coordinates and compares them to an
// observed pixel measurement.
//
// Grounded on the collinearity equations in the teacher's
// bba/bba_engine/solver.go:CalcPartials — the same r,s,q = M*(point -
// center) and predicted = -F*r/q, -F*s/q the teacher hand-derives
// Ac/Ap partials for — generalized here to numeric.Dual automatic
// differentiation so the same formula serves any camera/point pair
// instead of one fixed 6x6/3x3 block layout.
//
// Keys, in order: camera pose (SE3), landmark (Vector, dim 3).
type ProjectionResidual struct {
	ObservedX, ObservedY float64
	FocalLength          float64
}

func NewProjectionResidual(observedX, observedY, focalLength float64) *ProjectionResidual {
	return &ProjectionResidual{ObservedX: observedX, ObservedY: observedY, FocalLength: focalLength}
}

func (p *ProjectionResidual) Dim() int   { return 2 }
func (p *ProjectionResidual) Arity() int { return 2 }

func (p *ProjectionResidual) Evaluate(vars []manifold.Variable) ([]float64, [][]float64, error) {
	if err := checkArity(vars, 2); err != nil {
		return nil, nil, err
	}
	cam, ok := vars[0].(*manifold.SE3Var)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want SE3 at index 0, got %s", ErrKind, vars[0].Kind())
	}
	pt, ok := vars[1].(*manifold.Vector)
	if !ok || pt.Dim() != 3 {
		return nil, nil, fmt.Errorf("%w: want Vector(3) at index 1", ErrKind)
	}

	const width = 6 + 3
	camD := liftSE3(cam, 0, width)
	ptD := liftVector(pt, 6, width)

	d := [3]numeric.Dual{ptD[0].Sub(camD.T[0]), ptD[1].Sub(camD.T[1]), ptD[2].Sub(camD.T[2])}
	rsq := lie.RotateSO3(camD.R, d)

	f := constF(p.FocalLength)
	predX := f.Neg().Mul(rsq[0]).Div(rsq[2])
	predY := f.Neg().Mul(rsq[1]).Div(rsq[2])

	rd := []numeric.Dual{constF(p.ObservedX).Sub(predX), constF(p.ObservedY).Sub(predY)}
	r, j := extract(rd, width)
	return r, j, nil
}
