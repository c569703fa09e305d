package residual

import (
	"fgopt/lie"
	"fgopt/manifold"
	"fgopt/numeric"
)

// seededDelta builds a width-wide zero perturbation with unit gradient
// in slots [offset, offset+n), the tangent-space seed for the variable
// occupying that column range of this factor's local Jacobian.
func seededDelta(offset, n, width int) []numeric.Dual {
	out := make([]numeric.Dual, n)
	var zero numeric.Dual
	for i := range out {
		out[i] = zero.Seed(0, offset+i, width)
	}
	return out
}

func constF(v float64) numeric.Dual {
	var zero numeric.Dual
	return zero.Const(v)
}

func constVector(v *manifold.Vector) []numeric.Dual {
	vals := v.Values()
	out := make([]numeric.Dual, len(vals))
	for i, x := range vals {
		out[i] = constF(x)
	}
	return out
}

func constSO2(v *manifold.SO2Var) lie.SO2[numeric.Dual] {
	return lie.SO2[numeric.Dual]{C: constF(v.G.C.Value()), S: constF(v.G.S.Value())}
}

func constSO3(v *manifold.SO3Var) lie.SO3[numeric.Dual] {
	return lie.SO3[numeric.Dual]{
		X: constF(v.G.X.Value()), Y: constF(v.G.Y.Value()),
		Z: constF(v.G.Z.Value()), W: constF(v.G.W.Value()),
	}
}

func constSE2(v *manifold.SE2Var) lie.SE2[numeric.Dual] {
	return lie.SE2[numeric.Dual]{
		R: constSO2FromGroup(v.G.R),
		T: [2]numeric.Dual{constF(v.G.T[0].Value()), constF(v.G.T[1].Value())},
	}
}

func constSO2FromGroup(g lie.SO2[numeric.Real]) lie.SO2[numeric.Dual] {
	return lie.SO2[numeric.Dual]{C: constF(g.C.Value()), S: constF(g.S.Value())}
}

func constSO3FromGroup(g lie.SO3[numeric.Real]) lie.SO3[numeric.Dual] {
	return lie.SO3[numeric.Dual]{X: constF(g.X.Value()), Y: constF(g.Y.Value()), Z: constF(g.Z.Value()), W: constF(g.W.Value())}
}

func constSE3(v *manifold.SE3Var) lie.SE3[numeric.Dual] {
	return lie.SE3[numeric.Dual]{
		R: constSO3FromGroup(v.G.R),
		T: [3]numeric.Dual{constF(v.G.T[0].Value()), constF(v.G.T[1].Value()), constF(v.G.T[2].Value())},
	}
}

// liftVector seeds v's tangent perturbation at columns [offset, offset+dim)
// of a width-wide Jacobian and returns the resulting Dual-valued group.
func liftVector(v *manifold.Vector, offset, width int) []numeric.Dual {
	base := lie.VecN[numeric.Dual]{V: constVector(v)}
	delta := seededDelta(offset, v.Dim(), width)
	return lie.OPlusVecN(base, delta).V
}

func liftSO2(v *manifold.SO2Var, offset, width int) lie.SO2[numeric.Dual] {
	delta := seededDelta(offset, 1, width)
	return lie.OPlusSO2(constSO2(v), delta[0])
}

func liftSO3(v *manifold.SO3Var, offset, width int) lie.SO3[numeric.Dual] {
	d := seededDelta(offset, 3, width)
	return lie.OPlusSO3(constSO3(v), [3]numeric.Dual{d[0], d[1], d[2]})
}

func liftSE2(v *manifold.SE2Var, offset, width int) lie.SE2[numeric.Dual] {
	d := seededDelta(offset, 3, width)
	return lie.OPlusSE2(constSE2(v), [3]numeric.Dual{d[0], d[1], d[2]})
}

func liftSE3(v *manifold.SE3Var, offset, width int) lie.SE3[numeric.Dual] {
	d := seededDelta(offset, 6, width)
	var delta6 [6]numeric.Dual
	copy(delta6[:], d)
	return lie.OPlusSE3(constSE3(v), delta6)
}

// extract splits a Dual-valued residual vector back into its value and
// its dense Jacobian with respect to the width active gradient slots.
func extract(rd []numeric.Dual, width int) ([]float64, [][]float64) {
	r := make([]float64, len(rd))
	j := make([][]float64, len(rd))
	for i, d := range rd {
		r[i] = d.Value()
		row := make([]float64, width)
		for k := 0; k < width; k++ {
			row[k] = d.Grad(k)
		}
		j[i] = row
	}
	return r, j
}
