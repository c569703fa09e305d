//go:build !parallel

package optimize

import (
	"fgopt/factor"
	"fgopt/linear"
	"fgopt/values"
)

// linearize assembles the normal equations single-threaded, in graph
// order. Build with -tags parallel for the concurrent variant.
func linearize(g *factor.Graph, vals *values.Values, ord *values.Ordering) (*linear.System, error) {
	return linear.Assemble(g, vals, ord)
}
