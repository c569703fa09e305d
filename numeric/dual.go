package numeric

import "math"

// MaxStaticWidth is the largest dual-number gradient width stored inline,
// with no heap allocation. A handful of SE3 variables per factor (6 each)
// comfortably fits; wider factors fall back to a heap-backed slice (see
// overflow below), matching the "templated or chosen from a small set of
// supported sizes with a slow-path fallback" guidance for dual-number
// width.
const MaxStaticWidth = 24

// Dual is a forward-mode dual number: a value paired with its gradient
// with respect to a fixed-width tangent perturbation. Arithmetic on Dual
// propagates the gradient via the chain rule, so evaluating a residual
// once on Duals seeded at the current linearization point yields both the
// residual value and its Jacobian row, with no separate finite-difference
// pass.
type Dual struct {
	val      float64
	width    int // number of gradient slots in use
	grad     [MaxStaticWidth]float64
	overflow []float64 // non-nil once width exceeds MaxStaticWidth
}

func (d *Dual) setRaw(i int, v float64) {
	if d.overflow != nil {
		d.overflow[i] = v
		return
	}
	d.grad[i] = v
}

func (d Dual) gradAt(i int) float64 {
	if d.overflow != nil {
		if i < len(d.overflow) {
			return d.overflow[i]
		}
		return 0
	}
	if i >= 0 && i < MaxStaticWidth {
		return d.grad[i]
	}
	return 0
}

// Width reports the gradient width this Dual was constructed with (0 for
// a plain constant produced by Const).
func (d Dual) Width() int { return d.width }

// Grad returns the i-th gradient component, 0 if i is out of range.
func (d Dual) Grad(i int) float64 { return d.gradAt(i) }

func unionWidth(a, b Dual) int {
	w := a.width
	if b.width > w {
		w = b.width
	}
	return w
}

func newResult(val float64, w int) Dual {
	out := Dual{val: val, width: w}
	if w > MaxStaticWidth {
		out.overflow = make([]float64, w)
	}
	return out
}

// combine builds the result of a binary elementary function given the
// partial derivatives of the function with respect to each operand; the
// chain rule applies the same scalar partials to every gradient slot.
func combine(a, b Dual, val, dfda, dfdb float64) Dual {
	w := unionWidth(a, b)
	out := newResult(val, w)
	for i := 0; i < w; i++ {
		out.setRaw(i, dfda*a.gradAt(i)+dfdb*b.gradAt(i))
	}
	return out
}

func combine1(a Dual, val, dfda float64) Dual {
	w := a.width
	out := newResult(val, w)
	for i := 0; i < w; i++ {
		out.setRaw(i, dfda*a.gradAt(i))
	}
	return out
}

func (a Dual) Add(b Dual) Dual { return combine(a, b, a.val+b.val, 1, 1) }
func (a Dual) Sub(b Dual) Dual { return combine(a, b, a.val-b.val, 1, -1) }
func (a Dual) Mul(b Dual) Dual { return combine(a, b, a.val*b.val, b.val, a.val) }
func (a Dual) Div(b Dual) Dual {
	return combine(a, b, a.val/b.val, 1/b.val, -a.val/(b.val*b.val))
}
func (a Dual) Neg() Dual { return combine1(a, -a.val, -1) }

func (a Dual) Sqrt() Dual {
	r := math.Sqrt(a.val)
	return combine1(a, r, 0.5/r)
}

func (a Dual) Sin() Dual { return combine1(a, math.Sin(a.val), math.Cos(a.val)) }
func (a Dual) Cos() Dual { return combine1(a, math.Cos(a.val), -math.Sin(a.val)) }

func (a Dual) Asin() Dual {
	return combine1(a, math.Asin(a.val), 1/math.Sqrt(1-a.val*a.val))
}

func (a Dual) Atan2(b Dual) Dual {
	denom := a.val*a.val + b.val*b.val
	return combine(a, b, math.Atan2(a.val, b.val), b.val/denom, -a.val/denom)
}

func (a Dual) Abs() Dual {
	s := 1.0
	if a.val < 0 {
		s = -1.0
	}
	return combine1(a, math.Abs(a.val), s)
}

// Const builds a plain constant: a Dual with no gradient contribution in
// any slot, regardless of the ambient width.
func (Dual) Const(v float64) Dual { return Dual{val: v} }

// Seed builds variable idx of a width-w dual perturbation: value v with a
// unit gradient in slot idx (the "this variable with respect to itself"
// seed every AD engine needs at the linearization point).
func (Dual) Seed(v float64, idx, w int) Dual {
	d := newResult(v, w)
	if idx >= 0 && idx < w {
		d.setRaw(idx, 1)
	}
	return d
}

func (a Dual) Value() float64 { return a.val }
