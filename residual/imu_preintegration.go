package residual

import (
	"fmt"

	"fgopt/lie"
	"fgopt/manifold"
	"fgopt/numeric"
)

// IMUPreintegration is a simplified preintegrated-IMU factor in the
// style of Forster et al., "On-Manifold Preintegration for
// Real-Time Visual-Inertial Odometry": it ties together two poses and
// their world-frame velocities using a single preintegrated rotation,
// velocity and position increment computed once between keyframes,
// rather than re-integrating every raw IMU sample at optimization
// time. Bias estimation and its first-order preintegration correction
// are not modeled; the increment is treated as fixed, matching a
// short-baseline, low-bias-drift regime.
//
// Keys, in order: pose_i (SE3), vel_i (Vector, dim 3), pose_j (SE3),
// vel_j (Vector, dim 3).
type IMUPreintegration struct {
	DeltaR  *manifold.SO3Var
	DeltaV  [3]float64
	DeltaP  [3]float64
	DT      float64
	Gravity [3]float64
}

func NewIMUPreintegration(deltaR *manifold.SO3Var, deltaV, deltaP [3]float64, dt float64, gravity [3]float64) *IMUPreintegration {
	return &IMUPreintegration{DeltaR: deltaR, DeltaV: deltaV, DeltaP: deltaP, DT: dt, Gravity: gravity}
}

func (f *IMUPreintegration) Dim() int   { return 9 }
func (f *IMUPreintegration) Arity() int { return 4 }

func (f *IMUPreintegration) Evaluate(vars []manifold.Variable) ([]float64, [][]float64, error) {
	if err := checkArity(vars, 4); err != nil {
		return nil, nil, err
	}
	poseI, ok := vars[0].(*manifold.SE3Var)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want SE3 at index 0, got %s", ErrKind, vars[0].Kind())
	}
	velI, ok := vars[1].(*manifold.Vector)
	if !ok || velI.Dim() != 3 {
		return nil, nil, fmt.Errorf("%w: want Vector(3) at index 1", ErrKind)
	}
	poseJ, ok := vars[2].(*manifold.SE3Var)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want SE3 at index 2, got %s", ErrKind, vars[2].Kind())
	}
	velJ, ok := vars[3].(*manifold.Vector)
	if !ok || velJ.Dim() != 3 {
		return nil, nil, fmt.Errorf("%w: want Vector(3) at index 3", ErrKind)
	}

	const width = 6 + 3 + 6 + 3
	poseIOff, velIOff, poseJOff, velJOff := 0, 6, 9, 15

	pi := liftSE3(poseI, poseIOff, width)
	vi := liftVector(velI, velIOff, width)
	pj := liftSE3(poseJ, poseJOff, width)
	vj := liftVector(velJ, velJOff, width)

	dt := constF(f.DT)
	half := constF(0.5)
	g := [3]numeric.Dual{constF(f.Gravity[0]), constF(f.Gravity[1]), constF(f.Gravity[2])}

	riInv := lie.InverseSO3(pi.R)

	dv := [3]numeric.Dual{
		vj[0].Sub(vi[0]).Sub(g[0].Mul(dt)),
		vj[1].Sub(vi[1]).Sub(g[1].Mul(dt)),
		vj[2].Sub(vi[2]).Sub(g[2].Mul(dt)),
	}
	predictedDV := lie.RotateSO3(riInv, dv)

	dp := [3]numeric.Dual{
		pj.T[0].Sub(pi.T[0]).Sub(vi[0].Mul(dt)).Sub(half.Mul(g[0]).Mul(dt).Mul(dt)),
		pj.T[1].Sub(pi.T[1]).Sub(vi[1].Mul(dt)).Sub(half.Mul(g[1]).Mul(dt).Mul(dt)),
		pj.T[2].Sub(pi.T[2]).Sub(vi[2].Mul(dt)).Sub(half.Mul(g[2]).Mul(dt).Mul(dt)),
	}
	predictedDP := lie.RotateSO3(riInv, dp)

	predictedDR := lie.ComposeSO3(riInv, pj.R)
	measuredDR := constSO3(f.DeltaR)
	rR := lie.OMinusSO3(measuredDR, predictedDR)

	rd := make([]numeric.Dual, 0, 9)
	rd = append(rd, rR[0], rR[1], rR[2])
	for i := 0; i < 3; i++ {
		rd = append(rd, predictedDV[i].Sub(constF(f.DeltaV[i])))
	}
	for i := 0; i < 3; i++ {
		rd = append(rd, predictedDP[i].Sub(constF(f.DeltaP[i])))
	}

	r, j := extract(rd, width)
	return r, j, nil
}
