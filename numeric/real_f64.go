//go:build !f32

package numeric

import "math"

// Real is the active scalar type for this build. Default build uses
// double precision; build with -tags f32 to switch to float32 (see
// real_f32.go).
type Real float64

func (a Real) Add(b Real) Real   { return a + b }
func (a Real) Sub(b Real) Real   { return a - b }
func (a Real) Mul(b Real) Real   { return a * b }
func (a Real) Div(b Real) Real   { return a / b }
func (a Real) Neg() Real         { return -a }
func (a Real) Sqrt() Real        { return Real(math.Sqrt(float64(a))) }
func (a Real) Sin() Real         { return Real(math.Sin(float64(a))) }
func (a Real) Cos() Real         { return Real(math.Cos(float64(a))) }
func (a Real) Asin() Real        { return Real(math.Asin(float64(a))) }
func (a Real) Atan2(b Real) Real { return Real(math.Atan2(float64(a), float64(b))) }
func (a Real) Abs() Real         { return Real(math.Abs(float64(a))) }

func (Real) Const(v float64) Real           { return Real(v) }
func (Real) Seed(v float64, _, _ int) Real  { return Real(v) }
func (a Real) Value() float64               { return float64(a) }
