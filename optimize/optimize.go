// Package optimize implements the Gauss-Newton and
// Levenberg-Marquardt iteration loops over a factor.Graph and an
// initial values.Values estimate. Grounded on the teacher's own
// iterate-linearize-solve-retract loop
// (bba/bba_engine/solver.go:RunBundleAdjustment), generalized from a
// fixed Schur-complement bundle-adjustment update to the spec's
// dense-normal-equations Gauss-Newton/Levenberg-Marquardt contract,
// and with the teacher's stdout diagnostics replaced by a
// caller-provided Callback sink.
package optimize

import "fgopt/values"

// Status is the termination condition an optimizer run ends with.
type Status int

const (
	Converged Status = iota
	MaxIterations
	Diverged
	SolverFailure
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "Converged"
	case MaxIterations:
		return "MaxIterations"
	case Diverged:
		return "Diverged"
	case SolverFailure:
		return "SolverFailure"
	default:
		return "Unknown"
	}
}

// IterationInfo is the per-iteration diagnostic snapshot handed to a
// Callback.
type IterationInfo struct {
	Iteration int
	Error     float64
	StepNorm  float64
	Lambda    float64 // always 0 for Gauss-Newton
}

// Callback is the caller-supplied diagnostics sink invoked once per
// iteration; the optimizer core never writes to stdout itself.
// Returning true requests the optimizer stop before the next
// linearization.
type Callback func(IterationInfo) (stop bool)

// Result is returned by every optimizer on termination.
type Result struct {
	Values     *values.Values
	Error      float64
	Iterations int
	Status     Status
}

// GaussNewtonConfig holds Gauss-Newton's stopping tolerances.
type GaussNewtonConfig struct {
	MaxIterations int
	EpsAbs        float64
	EpsRel        float64
	EpsStep       float64
	Callback      Callback
}

// NewGaussNewtonConfig returns the spec's documented defaults:
// max_iter=100, eps_abs=eps_rel=eps_step=1e-6.
func NewGaussNewtonConfig() GaussNewtonConfig {
	return GaussNewtonConfig{MaxIterations: 100, EpsAbs: 1e-6, EpsRel: 1e-6, EpsStep: 1e-6}
}

// LevenbergMarquardtConfig holds LM's stopping tolerances and damping
// schedule parameters.
type LevenbergMarquardtConfig struct {
	MaxIterations          int
	EpsAbs                 float64
	EpsRel                 float64
	EpsStep                float64
	LambdaInit             float64
	LambdaMax              float64
	NuInit                 float64
	MaxConsecutiveFailures int
	Callback               Callback
}

// NewLevenbergMarquardtConfig returns the spec's documented defaults:
// lambda_init=1e-4, lambda_max=1e16, nu_init=2.0, max_fail=10, plus
// the shared max_iter/eps_* defaults.
func NewLevenbergMarquardtConfig() LevenbergMarquardtConfig {
	return LevenbergMarquardtConfig{
		MaxIterations:          100,
		EpsAbs:                 1e-6,
		EpsRel:                 1e-6,
		EpsStep:                1e-6,
		LambdaInit:             1e-4,
		LambdaMax:              1e16,
		NuInit:                 2.0,
		MaxConsecutiveFailures: 10,
	}
}
