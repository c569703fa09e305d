package manifold

import (
	"fgopt/lie"
	"fgopt/numeric"
)

// SO2Var is a 2-D rotation variable (tangent dimension 1).
type SO2Var struct {
	G lie.SO2[numeric.Real]
}

func NewSO2(theta float64) *SO2Var {
	return &SO2Var{G: lie.ExpSO2[numeric.Real](numeric.Real(theta))}
}

func IdentitySO2() *SO2Var { return &SO2Var{G: lie.IdentitySO2[numeric.Real]()} }

func (v *SO2Var) Dim() int    { return 1 }
func (v *SO2Var) Kind() string { return "SO2" }
func (v *SO2Var) Angle() float64 { return lie.LogSO2(v.G).Value() }

func (v *SO2Var) Clone() Variable {
	return &SO2Var{G: v.G}
}

func (v *SO2Var) OPlusReal(delta []float64) Variable {
	return &SO2Var{G: lie.OPlusSO2(v.G, numeric.Real(delta[0]))}
}

func (v *SO2Var) OMinusReal(x Variable) ([]float64, error) {
	other, ok := x.(*SO2Var)
	if !ok {
		return nil, ErrKindMismatch
	}
	return []float64{lie.OMinusSO2(v.G, other.G).Value()}, nil
}
