package optimize

import (
	"math"

	"fgopt/factor"
	"fgopt/internal/linalg"
	"fgopt/linear"
	"fgopt/values"
)

// GaussNewton repeats linearize -> solve (undamped) -> retract -> test
// convergence, the undamped special case of the same normal-equation
// iteration Levenberg-Marquardt uses with lambda held at zero.
type GaussNewton struct {
	Graph  *factor.Graph
	Config GaussNewtonConfig
}

func NewGaussNewton(g *factor.Graph, cfg GaussNewtonConfig) *GaussNewton {
	return &GaussNewton{Graph: g, Config: cfg}
}

// Optimize runs Gauss-Newton from initial (not mutated) and returns
// the terminal Result.
func (o *GaussNewton) Optimize(initial *values.Values) Result {
	vals := initial.Clone()
	prevCost := 0.0
	haveCost := false

	for iter := 1; iter <= o.Config.MaxIterations; iter++ {
		ord := vals.BuildOrdering()
		sys, err := linearize(o.Graph, vals, ord)
		if err != nil {
			return Result{Values: vals, Error: prevCost, Iterations: iter - 1, Status: SolverFailure}
		}

		delta, err := linear.Solve(sys, 0)
		if err != nil {
			return Result{Values: vals, Error: sys.Cost, Iterations: iter - 1, Status: SolverFailure}
		}
		step := linalg.VecNormInf(delta)

		if o.Config.Callback != nil {
			if o.Config.Callback(IterationInfo{Iteration: iter, Error: sys.Cost, StepNorm: step}) {
				return Result{Values: vals, Error: sys.Cost, Iterations: iter, Status: Converged}
			}
		}

		if step < o.Config.EpsStep {
			return Result{Values: vals, Error: sys.Cost, Iterations: iter, Status: Converged}
		}
		if sys.Cost < o.Config.EpsAbs {
			return Result{Values: vals, Error: sys.Cost, Iterations: iter, Status: Converged}
		}
		if haveCost {
			rel := math.Abs(prevCost-sys.Cost) / math.Max(prevCost, 1e-300)
			if rel < o.Config.EpsRel {
				return Result{Values: vals, Error: sys.Cost, Iterations: iter, Status: Converged}
			}
		}

		if err := vals.RetractInPlace(delta, ord); err != nil {
			return Result{Values: vals, Error: sys.Cost, Iterations: iter, Status: SolverFailure}
		}
		prevCost = sys.Cost
		haveCost = true
	}

	return Result{Values: vals, Error: prevCost, Iterations: o.Config.MaxIterations, Status: MaxIterations}
}
