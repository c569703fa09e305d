// Package robust implements M-estimator loss kernels and the
// square-root reweighting that lets a robust cost be optimized with
// the same Gauss-Newton/Levenberg-Marquardt machinery as an ordinary
// least-squares one. Grounded on the teacher's iterative reweighting
// pass in bba/bba_engine/solver.go, generalized from its single fixed
// weight function to a Kernel interface with several standard losses.
package robust

import "math"

// Kernel is an M-estimator loss rho(s), s = ||whitened residual||^2.
// Rho, RhoPrime and RhoDoublePrime give the loss and its first two
// derivatives with respect to s.
type Kernel interface {
	Rho(s float64) float64
	RhoPrime(s float64) float64
	RhoDoublePrime(s float64) float64
}

// L2 is the trivial kernel: ordinary (non-robust) least squares.
type L2 struct{}

func (L2) Rho(s float64) float64           { return s }
func (L2) RhoPrime(s float64) float64      { return 1 }
func (L2) RhoDoublePrime(s float64) float64 { return 0 }

// Huber transitions from quadratic to linear past the threshold delta.
type Huber struct{ Delta float64 }

func (h Huber) Rho(s float64) float64 {
	d2 := h.Delta * h.Delta
	if s <= d2 {
		return s
	}
	return 2*h.Delta*math.Sqrt(s) - d2
}

func (h Huber) RhoPrime(s float64) float64 {
	d2 := h.Delta * h.Delta
	if s <= d2 {
		return 1
	}
	return h.Delta / math.Sqrt(s)
}

func (h Huber) RhoDoublePrime(s float64) float64 {
	d2 := h.Delta * h.Delta
	if s <= d2 {
		return 0
	}
	return -0.5 * h.Delta * math.Pow(s, -1.5)
}

// Cauchy (Lorentzian) kernel with scale parameter C.
type Cauchy struct{ C float64 }

func (k Cauchy) Rho(s float64) float64 {
	c2 := k.C * k.C
	return c2 * math.Log1p(s/c2)
}

func (k Cauchy) RhoPrime(s float64) float64 {
	c2 := k.C * k.C
	return c2 / (c2 + s)
}

func (k Cauchy) RhoDoublePrime(s float64) float64 {
	c2 := k.C * k.C
	d := c2 + s
	return -c2 / (d * d)
}

// GemanMcClure kernel with scale parameter C.
type GemanMcClure struct{ C float64 }

func (k GemanMcClure) Rho(s float64) float64 {
	c2 := k.C * k.C
	return s / (s + c2) * c2
}

func (k GemanMcClure) RhoPrime(s float64) float64 {
	c2 := k.C * k.C
	d := s + c2
	return c2 * c2 / (d * d)
}

func (k GemanMcClure) RhoDoublePrime(s float64) float64 {
	c2 := k.C * k.C
	d := s + c2
	return -2 * c2 * c2 / (d * d * d)
}

// Welsch kernel with scale parameter C.
type Welsch struct{ C float64 }

func (k Welsch) Rho(s float64) float64 {
	c2 := k.C * k.C
	return c2 * (1 - math.Exp(-s/c2))
}

func (k Welsch) RhoPrime(s float64) float64 {
	c2 := k.C * k.C
	return math.Exp(-s / c2)
}

func (k Welsch) RhoDoublePrime(s float64) float64 {
	c2 := k.C * k.C
	return -math.Exp(-s/c2) / c2
}

// Tukey's biweight kernel with scale parameter C, flat past s=C^2.
type Tukey struct{ C float64 }

func (k Tukey) Rho(s float64) float64 {
	c2 := k.C * k.C
	if s > c2 {
		return c2 / 3
	}
	t := 1 - s/c2
	return c2 / 3 * (1 - t*t*t)
}

func (k Tukey) RhoPrime(s float64) float64 {
	c2 := k.C * k.C
	if s > c2 {
		return 0
	}
	t := 1 - s/c2
	return t * t
}

func (k Tukey) RhoDoublePrime(s float64) float64 {
	c2 := k.C * k.C
	if s > c2 {
		return 0
	}
	t := 1 - s/c2
	return -2 * t / c2
}

// Weight returns the Triggs square-root reweighting factor for a
// kernel at squared whitened-residual norm s: sqrt(rho'(s)), the
// standard approximation that ignores the rho'' term coupling residual
// direction into the Gauss-Newton Hessian. Applying this scalar to
// both the residual and its Jacobian reduces a robust cost to an
// ordinary weighted least-squares problem for one Gauss-Newton step.
func Weight(k Kernel, s float64) float64 {
	rp := k.RhoPrime(s)
	if rp < 0 {
		rp = 0
	}
	return math.Sqrt(rp)
}

// Apply reweights an already-whitened residual r and Jacobian j by the
// kernel k's Triggs weight at s = ||r||^2, returning (r_hat, j_hat)
// such that ||r_hat||^2 = rho'(s)*s, which equals rho(s) for L2.
func Apply(k Kernel, r []float64, j [][]float64) ([]float64, [][]float64) {
	s := 0.0
	for _, x := range r {
		s += x * x
	}
	w := Weight(k, s)

	rHat := make([]float64, len(r))
	for i, x := range r {
		rHat[i] = w * x
	}

	jHat := make([][]float64, len(j))
	for i, row := range j {
		out := make([]float64, len(row))
		for k, v := range row {
			out[k] = w * v
		}
		jHat[i] = out
	}
	return rHat, jHat
}
