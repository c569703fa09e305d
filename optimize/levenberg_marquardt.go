package optimize

import (
	"math"

	"fgopt/factor"
	"fgopt/internal/linalg"
	"fgopt/linear"
	"fgopt/values"
)

// LevenbergMarquardt damps the Gauss-Newton normal equations and
// accepts or rejects each trial step by its gain ratio, adapting the
// teacher's linearize-solve-retract loop with an explicit damping
// parameter and trial-step rollback the teacher's fixed
// bundle-adjustment solver never needed.
type LevenbergMarquardt struct {
	Graph  *factor.Graph
	Config LevenbergMarquardtConfig
}

func NewLevenbergMarquardt(g *factor.Graph, cfg LevenbergMarquardtConfig) *LevenbergMarquardt {
	return &LevenbergMarquardt{Graph: g, Config: cfg}
}

// Optimize runs Levenberg-Marquardt from initial (not mutated) and
// returns the terminal Result.
func (o *LevenbergMarquardt) Optimize(initial *values.Values) Result {
	vals := initial.Clone()
	lambda := o.Config.LambdaInit
	nu := o.Config.NuInit
	fails := 0

	ord := vals.BuildOrdering()
	sys, err := linearize(o.Graph, vals, ord)
	if err != nil {
		return Result{Values: vals, Iterations: 0, Status: SolverFailure}
	}
	currentCost := sys.Cost

	for iter := 1; iter <= o.Config.MaxIterations; iter++ {
		delta, err := linear.Solve(sys, lambda)
		if err != nil {
			if stop, res := o.reject(vals, currentCost, iter, &lambda, &nu, &fails); stop {
				return res
			}
			continue
		}

		trial := vals.Clone()
		if err := trial.RetractInPlace(delta, ord); err != nil {
			return Result{Values: vals, Error: currentCost, Iterations: iter, Status: SolverFailure}
		}
		trialOrd := trial.BuildOrdering()
		trialSys, err := linearize(o.Graph, trial, trialOrd)
		if err != nil {
			return Result{Values: vals, Error: currentCost, Iterations: iter, Status: SolverFailure}
		}

		decrease := modelGain(sys, delta, lambda)
		gamma := 0.0
		if decrease > 0 {
			gamma = (currentCost - trialSys.Cost) / decrease
		}
		step := linalg.VecNormInf(delta)

		if o.Config.Callback != nil {
			if o.Config.Callback(IterationInfo{Iteration: iter, Error: currentCost, StepNorm: step, Lambda: lambda}) {
				return Result{Values: vals, Error: currentCost, Iterations: iter, Status: Converged}
			}
		}

		if gamma <= 0 {
			if stop, res := o.reject(vals, currentCost, iter, &lambda, &nu, &fails); stop {
				return res
			}
			continue
		}

		prevCost := currentCost
		vals, ord, sys, currentCost = trial, trialOrd, trialSys, trialSys.Cost
		lambda *= math.Max(1.0/3.0, 1-math.Pow(2*gamma-1, 3))
		nu = o.Config.NuInit
		fails = 0

		if step < o.Config.EpsStep ||
			currentCost < o.Config.EpsAbs ||
			math.Abs(prevCost-currentCost)/math.Max(prevCost, 1e-300) < o.Config.EpsRel {
			return Result{Values: vals, Error: currentCost, Iterations: iter, Status: Converged}
		}
	}

	return Result{Values: vals, Error: currentCost, Iterations: o.Config.MaxIterations, Status: MaxIterations}
}

// reject applies the rejected-step damping update (lambda *= nu, nu *=
// 2) and reports whether the caller should stop with Diverged.
func (o *LevenbergMarquardt) reject(vals *values.Values, cost float64, iter int, lambda, nu *float64, fails *int) (bool, Result) {
	*fails++
	*lambda *= *nu
	*nu *= 2
	if *lambda > o.Config.LambdaMax || *fails > o.Config.MaxConsecutiveFailures {
		return true, Result{Values: vals, Error: cost, Iterations: iter, Status: Diverged}
	}
	return false, Result{}
}

// modelGain is the linear model's predicted cost decrease for step
// delta under damping lambda: 0.5 * delta^T (lambda*delta - gradient),
// derived from (H + lambda*I) delta = -gradient.
func modelGain(sys *linear.System, delta []float64, lambda float64) float64 {
	s := 0.0
	for i, d := range delta {
		s += d * (lambda*d - sys.Gradient[i])
	}
	return 0.5 * s
}
