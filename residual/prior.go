package residual

import (
	"fmt"

	"fgopt/lie"
	"fgopt/manifold"
	"fgopt/numeric"
)

// PriorVector anchors a Vector variable to a fixed measured value.
type PriorVector struct{ Measurement []float64 }

func NewPriorVector(measurement []float64) *PriorVector {
	return &PriorVector{Measurement: append([]float64(nil), measurement...)}
}

func (p *PriorVector) Dim() int   { return len(p.Measurement) }
func (p *PriorVector) Arity() int { return 1 }

func (p *PriorVector) Evaluate(vars []manifold.Variable) ([]float64, [][]float64, error) {
	if err := checkArity(vars, 1); err != nil {
		return nil, nil, err
	}
	x, ok := vars[0].(*manifold.Vector)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want Vector, got %s", ErrKind, vars[0].Kind())
	}
	width := x.Dim()
	measured := make([]numeric.Dual, len(p.Measurement))
	for i, v := range p.Measurement {
		measured[i] = constF(v)
	}
	xd := liftVector(x, 0, width)
	rd := lie.OMinusVecN(lie.VecN[numeric.Dual]{V: measured}, lie.VecN[numeric.Dual]{V: xd})
	r, j := extract(rd, width)
	return r, j, nil
}

// PriorSO2 anchors an SO2 variable to a fixed measured rotation.
type PriorSO2 struct{ Measurement float64 }

func NewPriorSO2(theta float64) *PriorSO2 { return &PriorSO2{Measurement: theta} }

func (p *PriorSO2) Dim() int   { return 1 }
func (p *PriorSO2) Arity() int { return 1 }

func (p *PriorSO2) Evaluate(vars []manifold.Variable) ([]float64, [][]float64, error) {
	if err := checkArity(vars, 1); err != nil {
		return nil, nil, err
	}
	x, ok := vars[0].(*manifold.SO2Var)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want SO2, got %s", ErrKind, vars[0].Kind())
	}
	width := 1
	measured := lie.ExpSO2[numeric.Dual](constF(p.Measurement))
	xd := liftSO2(x, 0, width)
	r := lie.OMinusSO2(measured, xd)
	vals, j := extract([]numeric.Dual{r}, width)
	return vals, j, nil
}

// PriorSO3 anchors an SO3 variable to a fixed measured rotation.
type PriorSO3 struct{ Measurement *manifold.SO3Var }

func NewPriorSO3(measurement *manifold.SO3Var) *PriorSO3 { return &PriorSO3{Measurement: measurement} }

func (p *PriorSO3) Dim() int   { return 3 }
func (p *PriorSO3) Arity() int { return 1 }

func (p *PriorSO3) Evaluate(vars []manifold.Variable) ([]float64, [][]float64, error) {
	if err := checkArity(vars, 1); err != nil {
		return nil, nil, err
	}
	x, ok := vars[0].(*manifold.SO3Var)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want SO3, got %s", ErrKind, vars[0].Kind())
	}
	width := 3
	measured := constSO3(p.Measurement)
	xd := liftSO3(x, 0, width)
	rd := lie.OMinusSO3(measured, xd)
	r, j := extract(rd[:], width)
	return r, j, nil
}

// PriorSE2 anchors an SE2 variable to a fixed measured pose.
type PriorSE2 struct{ Measurement *manifold.SE2Var }

func NewPriorSE2(measurement *manifold.SE2Var) *PriorSE2 { return &PriorSE2{Measurement: measurement} }

func (p *PriorSE2) Dim() int   { return 3 }
func (p *PriorSE2) Arity() int { return 1 }

func (p *PriorSE2) Evaluate(vars []manifold.Variable) ([]float64, [][]float64, error) {
	if err := checkArity(vars, 1); err != nil {
		return nil, nil, err
	}
	x, ok := vars[0].(*manifold.SE2Var)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want SE2, got %s", ErrKind, vars[0].Kind())
	}
	width := 3
	measured := constSE2(p.Measurement)
	xd := liftSE2(x, 0, width)
	rd := lie.OMinusSE2(measured, xd)
	r, j := extract(rd[:], width)
	return r, j, nil
}

// PriorSE3 anchors an SE3 variable to a fixed measured pose.
type PriorSE3 struct{ Measurement *manifold.SE3Var }

func NewPriorSE3(measurement *manifold.SE3Var) *PriorSE3 { return &PriorSE3{Measurement: measurement} }

func (p *PriorSE3) Dim() int   { return 6 }
func (p *PriorSE3) Arity() int { return 1 }

func (p *PriorSE3) Evaluate(vars []manifold.Variable) ([]float64, [][]float64, error) {
	if err := checkArity(vars, 1); err != nil {
		return nil, nil, err
	}
	x, ok := vars[0].(*manifold.SE3Var)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want SE3, got %s", ErrKind, vars[0].Kind())
	}
	width := 6
	measured := constSE3(p.Measurement)
	xd := liftSE3(x, 0, width)
	rd := lie.OMinusSE3(measured, xd)
	r, j := extract(rd[:], width)
	return r, j, nil
}
