package residual

import (
	"fmt"

	"fgopt/lie"
	"fgopt/manifold"
	"fgopt/numeric"
)

// BetweenVector constrains the difference b - a to a fixed measurement.
type BetweenVector struct{ Measurement []float64 }

func NewBetweenVector(measurement []float64) *BetweenVector {
	return &BetweenVector{Measurement: append([]float64(nil), measurement...)}
}

func (b *BetweenVector) Dim() int   { return len(b.Measurement) }
func (b *BetweenVector) Arity() int { return 2 }

func (b *BetweenVector) Evaluate(vars []manifold.Variable) ([]float64, [][]float64, error) {
	if err := checkArity(vars, 2); err != nil {
		return nil, nil, err
	}
	va, ok := vars[0].(*manifold.Vector)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want Vector, got %s", ErrKind, vars[0].Kind())
	}
	vb, ok := vars[1].(*manifold.Vector)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want Vector, got %s", ErrKind, vars[1].Kind())
	}
	width := va.Dim() + vb.Dim()
	measured := make([]numeric.Dual, len(b.Measurement))
	for i, v := range b.Measurement {
		measured[i] = constF(v)
	}
	ad := liftVector(va, 0, width)
	bd := liftVector(vb, va.Dim(), width)
	predicted := lie.ComposeVecN(lie.InverseVecN(lie.VecN[numeric.Dual]{V: ad}), lie.VecN[numeric.Dual]{V: bd})
	rd := lie.OMinusVecN(lie.VecN[numeric.Dual]{V: measured}, predicted)
	r, j := extract(rd, width)
	return r, j, nil
}

// BetweenSO2 constrains the relative rotation between two SO2
// variables to a fixed measurement.
type BetweenSO2 struct{ Measurement float64 }

func NewBetweenSO2(theta float64) *BetweenSO2 { return &BetweenSO2{Measurement: theta} }

func (b *BetweenSO2) Dim() int   { return 1 }
func (b *BetweenSO2) Arity() int { return 2 }

func (b *BetweenSO2) Evaluate(vars []manifold.Variable) ([]float64, [][]float64, error) {
	if err := checkArity(vars, 2); err != nil {
		return nil, nil, err
	}
	a, ok := vars[0].(*manifold.SO2Var)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want SO2, got %s", ErrKind, vars[0].Kind())
	}
	x, ok := vars[1].(*manifold.SO2Var)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want SO2, got %s", ErrKind, vars[1].Kind())
	}
	width := 2
	measured := lie.ExpSO2[numeric.Dual](constF(b.Measurement))
	ad := liftSO2(a, 0, width)
	xd := liftSO2(x, 1, width)
	predicted := lie.ComposeSO2(lie.InverseSO2(ad), xd)
	r := lie.OMinusSO2(measured, predicted)
	vals, j := extract([]numeric.Dual{r}, width)
	return vals, j, nil
}

// BetweenSO3 constrains the relative rotation between two SO3
// variables to a fixed measurement.
type BetweenSO3 struct{ Measurement *manifold.SO3Var }

func NewBetweenSO3(measurement *manifold.SO3Var) *BetweenSO3 { return &BetweenSO3{Measurement: measurement} }

func (b *BetweenSO3) Dim() int   { return 3 }
func (b *BetweenSO3) Arity() int { return 2 }

func (b *BetweenSO3) Evaluate(vars []manifold.Variable) ([]float64, [][]float64, error) {
	if err := checkArity(vars, 2); err != nil {
		return nil, nil, err
	}
	a, ok := vars[0].(*manifold.SO3Var)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want SO3, got %s", ErrKind, vars[0].Kind())
	}
	x, ok := vars[1].(*manifold.SO3Var)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want SO3, got %s", ErrKind, vars[1].Kind())
	}
	width := 6
	measured := constSO3(b.Measurement)
	ad := liftSO3(a, 0, width)
	xd := liftSO3(x, 3, width)
	predicted := lie.ComposeSO3(lie.InverseSO3(ad), xd)
	rd := lie.OMinusSO3(measured, predicted)
	r, j := extract(rd[:], width)
	return r, j, nil
}

// BetweenSE2 constrains the relative pose between two SE2 variables to
// a fixed measurement.
type BetweenSE2 struct{ Measurement *manifold.SE2Var }

func NewBetweenSE2(measurement *manifold.SE2Var) *BetweenSE2 { return &BetweenSE2{Measurement: measurement} }

func (b *BetweenSE2) Dim() int   { return 3 }
func (b *BetweenSE2) Arity() int { return 2 }

func (b *BetweenSE2) Evaluate(vars []manifold.Variable) ([]float64, [][]float64, error) {
	if err := checkArity(vars, 2); err != nil {
		return nil, nil, err
	}
	a, ok := vars[0].(*manifold.SE2Var)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want SE2, got %s", ErrKind, vars[0].Kind())
	}
	x, ok := vars[1].(*manifold.SE2Var)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want SE2, got %s", ErrKind, vars[1].Kind())
	}
	width := 6
	measured := constSE2(b.Measurement)
	ad := liftSE2(a, 0, width)
	xd := liftSE2(x, 3, width)
	predicted := lie.ComposeSE2(lie.InverseSE2(ad), xd)
	rd := lie.OMinusSE2(measured, predicted)
	r, j := extract(rd[:], width)
	return r, j, nil
}

// BetweenSE3 constrains the relative pose between two SE3 variables to
// a fixed measurement — the pose-graph edge factor.
type BetweenSE3 struct{ Measurement *manifold.SE3Var }

func NewBetweenSE3(measurement *manifold.SE3Var) *BetweenSE3 { return &BetweenSE3{Measurement: measurement} }

func (b *BetweenSE3) Dim() int   { return 6 }
func (b *BetweenSE3) Arity() int { return 2 }

func (b *BetweenSE3) Evaluate(vars []manifold.Variable) ([]float64, [][]float64, error) {
	if err := checkArity(vars, 2); err != nil {
		return nil, nil, err
	}
	a, ok := vars[0].(*manifold.SE3Var)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want SE3, got %s", ErrKind, vars[0].Kind())
	}
	x, ok := vars[1].(*manifold.SE3Var)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want SE3, got %s", ErrKind, vars[1].Kind())
	}
	width := 12
	measured := constSE3(b.Measurement)
	ad := liftSE3(a, 0, width)
	xd := liftSE3(x, 6, width)
	predicted := lie.ComposeSE3(lie.InverseSE3(ad), xd)
	rd := lie.OMinusSE3(measured, predicted)
	r, j := extract(rd[:], width)
	return r, j, nil
}
