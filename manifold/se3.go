package manifold

import (
	"fgopt/lie"
	"fgopt/numeric"
)

// SE3Var is a rigid-motion variable in 3-D (tangent dimension 6):
// (rotation, translation).
type SE3Var struct {
	G lie.SE3[numeric.Real]
}

func NewSE3(quat [4]float64, t [3]float64) *SE3Var {
	q := lie.SO3[numeric.Real]{
		X: numeric.Real(quat[0]), Y: numeric.Real(quat[1]),
		Z: numeric.Real(quat[2]), W: numeric.Real(quat[3]),
	}
	return &SE3Var{G: lie.SE3[numeric.Real]{
		R: lie.NormalizeSO3(q),
		T: [3]numeric.Real{numeric.Real(t[0]), numeric.Real(t[1]), numeric.Real(t[2])},
	}}
}

func IdentitySE3() *SE3Var { return &SE3Var{G: lie.IdentitySE3[numeric.Real]()} }

func (v *SE3Var) Dim() int    { return 6 }
func (v *SE3Var) Kind() string { return "SE3" }

func (v *SE3Var) Quaternion() (x, y, z, w float64) {
	return v.G.R.X.Value(), v.G.R.Y.Value(), v.G.R.Z.Value(), v.G.R.W.Value()
}

func (v *SE3Var) Translation() (x, y, z float64) {
	return v.G.T[0].Value(), v.G.T[1].Value(), v.G.T[2].Value()
}

func (v *SE3Var) Clone() Variable {
	return &SE3Var{G: v.G}
}

func (v *SE3Var) OPlusReal(delta []float64) Variable {
	var d [6]numeric.Real
	for i := 0; i < 6; i++ {
		d[i] = numeric.Real(delta[i])
	}
	return &SE3Var{G: lie.OPlusSE3(v.G, d)}
}

func (v *SE3Var) OMinusReal(x Variable) ([]float64, error) {
	other, ok := x.(*SE3Var)
	if !ok {
		return nil, ErrKindMismatch
	}
	d := lie.OMinusSE3(v.G, other.G)
	out := make([]float64, 6)
	for i := 0; i < 6; i++ {
		out[i] = d[i].Value()
	}
	return out, nil
}
