//go:build parallel

package optimize

import (
	"sync"

	"fgopt/factor"
	"fgopt/internal/linalg"
	"fgopt/linear"
	"fgopt/values"
)

// numLinearizeWorkers bounds how many goroutines share the factor
// list during parallel linearization.
const numLinearizeWorkers = 4

// linearize splits the factor list into pre-assigned, non-overlapping
// chunks and assembles each chunk's partial normal equations on its
// own goroutine, joining on a sync.WaitGroup before reducing them —
// the goroutine-per-unit-of-work + WaitGroup pattern the concurrent
// test suite in the pack's graph-algorithms repo uses, applied here to
// per-factor linearization instead of per-edge traversal.
func linearize(g *factor.Graph, vals *values.Values, ord *values.Ordering) (*linear.System, error) {
	factors := g.Factors()
	n := ord.Total()
	if len(factors) == 0 {
		return &linear.System{Hessian: linalg.NewDense(n, n), Gradient: make([]float64, n)}, nil
	}

	workers := numLinearizeWorkers
	if workers > len(factors) {
		workers = len(factors)
	}
	chunk := (len(factors) + workers - 1) / workers

	partials := make([]*linear.System, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > len(factors) {
			end = len(factors)
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(idx, start, end int) {
			defer wg.Done()
			sub := factor.NewGraph()
			for _, f := range factors[start:end] {
				sub.Add(f)
			}
			sys, err := linear.Assemble(sub, vals, ord)
			if err != nil {
				errs[idx] = err
				return
			}
			partials[idx] = sys
		}(w, start, end)
	}
	wg.Wait()

	out := &linear.System{Hessian: linalg.NewDense(n, n), Gradient: make([]float64, n)}
	for i, sys := range partials {
		if errs[i] != nil {
			return nil, errs[i]
		}
		if sys == nil {
			continue
		}
		linalg.AddInPlace(out.Hessian, sys.Hessian)
		for k := range out.Gradient {
			out.Gradient[k] += sys.Gradient[k]
		}
		out.Cost += sys.Cost
	}
	return out, nil
}
