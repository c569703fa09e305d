// Package factor ties a residual function to the symbols it reads, a
// noise model and an optional robust kernel, and groups factors into a
// Graph. Grounded on the teacher's bundle-adjustment observation list
// (bba/bba_engine/solver.go), generalized from a fixed camera/point
// pair to an arbitrary residual.Residual and key list, with
// construction-time validation the teacher's fixed-shape struct never
// needed.
package factor

import (
	"errors"
	"fmt"

	"fgopt/manifold"
	"fgopt/noise"
	"fgopt/residual"
	"fgopt/robust"
	"fgopt/symbol"
	"fgopt/values"
)

// ErrConstruction is wrapped by every error NewFactor returns, so
// callers can distinguish a malformed factor from a runtime
// evaluation failure.
var ErrConstruction = errors.New("factor: invalid construction")

// Factor binds a residual to the symbols supplying its variables, a
// noise model matching its dimension, and a robust kernel (L2 if the
// cost should be an ordinary sum of squares).
type Factor struct {
	Keys   []symbol.Symbol
	Res    residual.Residual
	Noise  noise.Model
	Kernel robust.Kernel
}

// New validates arity and noise dimension against the residual and
// returns a Factor, or a wrapped ErrConstruction.
func New(res residual.Residual, noiseModel noise.Model, kernel robust.Kernel, keys ...symbol.Symbol) (*Factor, error) {
	if len(keys) != res.Arity() {
		return nil, fmt.Errorf("%w: residual arity %d but %d keys given", ErrConstruction, res.Arity(), len(keys))
	}
	if noiseModel.Dim() != res.Dim() {
		return nil, fmt.Errorf("%w: residual dim %d but noise model dim %d", ErrConstruction, res.Dim(), noiseModel.Dim())
	}
	if kernel == nil {
		kernel = robust.L2{}
	}
	return &Factor{Keys: append([]symbol.Symbol(nil), keys...), Res: res, Noise: noiseModel, Kernel: kernel}, nil
}

func (f *Factor) Dim() int { return f.Res.Dim() }

// Block is one variable's column range within a factor's local
// Jacobian, keyed by its Ordering-assigned global offset.
type Block struct {
	Key       symbol.Symbol
	GlobalOff int
	Dim       int
	J         [][]float64 // Dim(factor) rows, Dim columns
}

// Linearize evaluates the residual at the current Values, whitens it
// by the noise model, reweights it by the robust kernel's Triggs
// factor, and slices the resulting Jacobian into per-key blocks
// positioned by ord.
func (f *Factor) Linearize(vals *values.Values, ord *values.Ordering) (r []float64, blocks []Block, err error) {
	varList := make([]manifold.Variable, len(f.Keys))
	for i, k := range f.Keys {
		v, err := vals.Get(k)
		if err != nil {
			return nil, nil, err
		}
		varList[i] = v
	}

	rawR, rawJ, err := f.Res.Evaluate(varList)
	if err != nil {
		return nil, nil, err
	}

	whitR := f.Noise.Whiten(rawR)
	whitJ := f.Noise.WhitenJacobian(rawJ)

	rHat, jHat := robust.Apply(f.Kernel, whitR, whitJ)

	blocks = make([]Block, 0, len(f.Keys))
	col := 0
	for _, k := range f.Keys {
		d, ok := ord.Dim(k)
		if !ok {
			return nil, nil, fmt.Errorf("values: unordered symbol %s", k)
		}
		off, _ := ord.Offset(k)
		block := make([][]float64, len(jHat))
		for i := range jHat {
			block[i] = jHat[i][col : col+d]
		}
		blocks = append(blocks, Block{Key: k, GlobalOff: off, Dim: d, J: block})
		col += d
	}
	return rHat, blocks, nil
}
