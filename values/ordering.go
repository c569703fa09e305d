package values

import (
	"fmt"

	"fgopt/symbol"
)

// Ordering assigns each variable a contiguous column range in the stacked
// tangent-space delta, in Values iteration order. Linearization uses it to
// place each factor's Jacobian blocks; RetractInPlace uses it to read back the
// slice of delta belonging to each variable.
type Ordering struct {
	offset map[symbol.Symbol]int
	dim    map[symbol.Symbol]int
	order  []symbol.Symbol
	total  int
}

// BuildOrdering walks Values in insertion order and assigns column
// offsets by cumulative tangent dimension.
func (v *Values) BuildOrdering() *Ordering {
	o := &Ordering{
		offset: make(map[symbol.Symbol]int, len(v.order)),
		dim:    make(map[symbol.Symbol]int, len(v.order)),
		order:  append([]symbol.Symbol(nil), v.order...),
	}
	col := 0
	for _, s := range v.order {
		d := v.vars[s].Dim()
		o.offset[s] = col
		o.dim[s] = d
		col += d
	}
	o.total = col
	return o
}

func (o *Ordering) Offset(s symbol.Symbol) (int, bool) { off, ok := o.offset[s]; return off, ok }
func (o *Ordering) Dim(s symbol.Symbol) (int, bool)    { d, ok := o.dim[s]; return d, ok }
func (o *Ordering) Total() int                         { return o.total }
func (o *Ordering) Symbols() []symbol.Symbol            { return append([]symbol.Symbol(nil), o.order...) }

// RetractInPlace applies a stacked tangent-space delta (laid out per
// Ordering) back onto every variable via its manifold oplus.
func (v *Values) RetractInPlace(delta []float64, ord *Ordering) error {
	for _, s := range ord.order {
		off := ord.offset[s]
		d := ord.dim[s]
		cur, ok := v.vars[s]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownSymbol, s)
		}
		next := cur.OPlusReal(delta[off : off+d])
		v.vars[s] = next
	}
	return nil
}
