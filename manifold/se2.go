package manifold

import (
	"fgopt/lie"
	"fgopt/numeric"
)

// SE2Var is a planar rigid-motion variable (tangent dimension 3).
type SE2Var struct {
	G lie.SE2[numeric.Real]
}

func NewSE2(x, y, theta float64) *SE2Var {
	return &SE2Var{G: lie.SE2[numeric.Real]{
		R: lie.ExpSO2[numeric.Real](numeric.Real(theta)),
		T: [2]numeric.Real{numeric.Real(x), numeric.Real(y)},
	}}
}

func IdentitySE2() *SE2Var { return &SE2Var{G: lie.IdentitySE2[numeric.Real]()} }

func (v *SE2Var) Dim() int    { return 3 }
func (v *SE2Var) Kind() string { return "SE2" }

func (v *SE2Var) XYTheta() (x, y, theta float64) {
	return v.G.T[0].Value(), v.G.T[1].Value(), lie.LogSO2(v.G.R).Value()
}

func (v *SE2Var) Clone() Variable {
	return &SE2Var{G: v.G}
}

func (v *SE2Var) OPlusReal(delta []float64) Variable {
	d := [3]numeric.Real{numeric.Real(delta[0]), numeric.Real(delta[1]), numeric.Real(delta[2])}
	return &SE2Var{G: lie.OPlusSE2(v.G, d)}
}

func (v *SE2Var) OMinusReal(x Variable) ([]float64, error) {
	other, ok := x.(*SE2Var)
	if !ok {
		return nil, ErrKindMismatch
	}
	d := lie.OMinusSE2(v.G, other.G)
	return []float64{d[0].Value(), d[1].Value(), d[2].Value()}, nil
}
