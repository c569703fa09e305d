package manifold

import (
	"fgopt/lie"
	"fgopt/numeric"
)

// SO3Var is a 3-D rotation variable (tangent dimension 3), stored as a
// unit quaternion in scalar-last form.
type SO3Var struct {
	G lie.SO3[numeric.Real]
}

// NewSO3FromQuaternion builds a variable from an (x, y, z, w) quaternion,
// renormalizing it to unit length.
func NewSO3FromQuaternion(x, y, z, w float64) *SO3Var {
	q := lie.SO3[numeric.Real]{X: numeric.Real(x), Y: numeric.Real(y), Z: numeric.Real(z), W: numeric.Real(w)}
	return &SO3Var{G: lie.NormalizeSO3(q)}
}

func NewSO3FromAxisAngle(omega [3]float64) *SO3Var {
	w := [3]numeric.Real{numeric.Real(omega[0]), numeric.Real(omega[1]), numeric.Real(omega[2])}
	return &SO3Var{G: lie.ExpSO3[numeric.Real](w)}
}

func IdentitySO3() *SO3Var { return &SO3Var{G: lie.IdentitySO3[numeric.Real]()} }

func (v *SO3Var) Dim() int    { return 3 }
func (v *SO3Var) Kind() string { return "SO3" }

func (v *SO3Var) Quaternion() (x, y, z, w float64) {
	return v.G.X.Value(), v.G.Y.Value(), v.G.Z.Value(), v.G.W.Value()
}

func (v *SO3Var) Clone() Variable {
	return &SO3Var{G: v.G}
}

func (v *SO3Var) OPlusReal(delta []float64) Variable {
	d := [3]numeric.Real{numeric.Real(delta[0]), numeric.Real(delta[1]), numeric.Real(delta[2])}
	return &SO3Var{G: lie.OPlusSO3(v.G, d)}
}

func (v *SO3Var) OMinusReal(x Variable) ([]float64, error) {
	other, ok := x.(*SO3Var)
	if !ok {
		return nil, ErrKindMismatch
	}
	d := lie.OMinusSO3(v.G, other.G)
	return []float64{d[0].Value(), d[1].Value(), d[2].Value()}, nil
}
