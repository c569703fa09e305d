package manifold

import (
	"fgopt/lie"
	"fgopt/numeric"
)

// Vector is a Euclidean variable of fixed dimension N; oplus is plain
// addition and tangent equals representation.
type Vector struct {
	G lie.VecN[numeric.Real]
}

func NewVector(v []float64) *Vector {
	rv := make([]numeric.Real, len(v))
	for i, x := range v {
		rv[i] = numeric.Real(x)
	}
	return &Vector{G: lie.VecN[numeric.Real]{V: rv}}
}

func (v *Vector) Dim() int    { return len(v.G.V) }
func (v *Vector) Kind() string { return "Vector" }

func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.G.V))
	for i, x := range v.G.V {
		out[i] = x.Value()
	}
	return out
}

func (v *Vector) Clone() Variable {
	return NewVector(v.Values())
}

func (v *Vector) OPlusReal(delta []float64) Variable {
	rd := make([]numeric.Real, len(delta))
	for i, x := range delta {
		rd[i] = numeric.Real(x)
	}
	return &Vector{G: lie.OPlusVecN(v.G, rd)}
}

func (v *Vector) OMinusReal(x Variable) ([]float64, error) {
	other, ok := x.(*Vector)
	if !ok {
		return nil, ErrKindMismatch
	}
	d := lie.OMinusVecN(v.G, other.G)
	out := make([]float64, len(d))
	for i, r := range d {
		out[i] = r.Value()
	}
	return out, nil
}
