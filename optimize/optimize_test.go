package optimize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fgopt/factor"
	"fgopt/manifold"
	"fgopt/noise"
	"fgopt/optimize"
	"fgopt/residual"
	"fgopt/symbol"
	"fgopt/values"
)

func TestGaussNewtonSinglePriorConvergesInTwoIterations(t *testing.T) {
	v := values.New()
	x0 := symbol.New('x', 0)
	require.NoError(t, v.Insert(x0, manifold.NewSO2(0)))

	n, err := noise.NewIsotropic(1, 1.0)
	require.NoError(t, err)
	res := residual.NewPriorSO2(1.0)
	f, err := factor.New(res, n, nil, x0)
	require.NoError(t, err)

	g := factor.NewGraph()
	g.Add(f)

	opt := optimize.NewGaussNewton(g, optimize.NewGaussNewtonConfig())
	result := opt.Optimize(v)

	require.Equal(t, optimize.Converged, result.Status)
	require.LessOrEqual(t, result.Iterations, 2)

	x, err := values.GetTyped[*manifold.SO2Var](result.Values, x0)
	require.NoError(t, err)
	require.InDelta(t, 1.0, x.Angle(), 1e-9)
}

func TestGaussNewtonPriorAndBetweenChain(t *testing.T) {
	v := values.New()
	x0 := symbol.New('x', 0)
	x1 := symbol.New('x', 1)
	require.NoError(t, v.Insert(x0, manifold.NewSO2(0)))
	require.NoError(t, v.Insert(x1, manifold.NewSO2(0)))

	priorNoise, err := noise.NewIsotropic(1, 1e-3)
	require.NoError(t, err)
	betweenNoise, err := noise.NewIsotropic(1, 0.1)
	require.NoError(t, err)

	fp, err := factor.New(residual.NewPriorSO2(1.0), priorNoise, nil, x0)
	require.NoError(t, err)
	fb, err := factor.New(residual.NewBetweenSO2(1.0), betweenNoise, nil, x0, x1)
	require.NoError(t, err)

	g := factor.NewGraph()
	g.Add(fp)
	g.Add(fb)

	opt := optimize.NewGaussNewton(g, optimize.NewGaussNewtonConfig())
	result := opt.Optimize(v)

	require.Equal(t, optimize.Converged, result.Status)

	xr0, err := values.GetTyped[*manifold.SO2Var](result.Values, x0)
	require.NoError(t, err)
	xr1, err := values.GetTyped[*manifold.SO2Var](result.Values, x1)
	require.NoError(t, err)
	require.InDelta(t, 1.0, xr0.Angle(), 1e-3)
	require.InDelta(t, 2.0, xr1.Angle(), 1e-3)
}

func TestLevenbergMarquardtConvergesOnSameProblem(t *testing.T) {
	v := values.New()
	x0 := symbol.New('x', 0)
	require.NoError(t, v.Insert(x0, manifold.NewVector([]float64{5})))

	n, err := noise.NewIsotropic(1, 1.0)
	require.NoError(t, err)
	f, err := factor.New(residual.NewPriorVector([]float64{0}), n, nil, x0)
	require.NoError(t, err)

	g := factor.NewGraph()
	g.Add(f)

	var iterations []optimize.IterationInfo
	cfg := optimize.NewLevenbergMarquardtConfig()
	cfg.Callback = func(info optimize.IterationInfo) bool {
		iterations = append(iterations, info)
		return false
	}

	opt := optimize.NewLevenbergMarquardt(g, cfg)
	result := opt.Optimize(v)

	require.Equal(t, optimize.Converged, result.Status)
	require.NotEmpty(t, iterations)

	x, err := values.GetTyped[*manifold.Vector](result.Values, x0)
	require.NoError(t, err)
	require.InDelta(t, 0.0, x.Values()[0], 1e-6)
}

func TestOptimalStartTerminatesImmediately(t *testing.T) {
	v := values.New()
	x0 := symbol.New('x', 0)
	require.NoError(t, v.Insert(x0, manifold.NewVector([]float64{3})))

	n, err := noise.NewIsotropic(1, 1.0)
	require.NoError(t, err)
	f, err := factor.New(residual.NewPriorVector([]float64{3}), n, nil, x0)
	require.NoError(t, err)

	g := factor.NewGraph()
	g.Add(f)

	opt := optimize.NewGaussNewton(g, optimize.NewGaussNewtonConfig())
	result := opt.Optimize(v)

	require.Equal(t, optimize.Converged, result.Status)
	require.LessOrEqual(t, result.Iterations, 1)
}

func TestRankDeficientGraphReportsSingularSystem(t *testing.T) {
	v := values.New()
	x0 := symbol.New('x', 0)
	require.NoError(t, v.Insert(x0, manifold.NewVector([]float64{0, 0})))

	n, err := noise.NewIsotropic(1, 1.0)
	require.NoError(t, err)
	// Residual only constrains the first component: the second column
	// of J^T J is identically zero, an unconstrained (rank-deficient)
	// variable dimension.
	f, err := factor.New(&firstComponentOnly{}, n, nil, x0)
	require.NoError(t, err)

	g := factor.NewGraph()
	g.Add(f)

	opt := optimize.NewGaussNewton(g, optimize.NewGaussNewtonConfig())
	result := opt.Optimize(v)
	require.Equal(t, optimize.SolverFailure, result.Status)
}

type firstComponentOnly struct{}

func (firstComponentOnly) Dim() int   { return 1 }
func (firstComponentOnly) Arity() int { return 1 }
func (firstComponentOnly) Evaluate(vars []manifold.Variable) ([]float64, [][]float64, error) {
	x := vars[0].(*manifold.Vector)
	vals := x.Values()
	return []float64{vals[0] - 1}, [][]float64{{1, 0}}, nil
}
