// Package noise implements the per-factor measurement noise models: the
// residual and its Jacobian are whitened (scaled by the inverse square
// root of the measurement covariance) before they are handed to the
// robust kernel and the linear solver. Grounded on the teacher's
// math.go Dense helpers, extended with a Cholesky-based full-covariance
// model the teacher never needed.
package noise

import (
	"errors"
	"fmt"

	"fgopt/internal/linalg"
)

// ErrDimMismatch is returned by a constructor when the supplied sigma
// vector or covariance matrix does not match the requested dimension.
var ErrDimMismatch = errors.New("noise: dimension mismatch")

// Model whitens a residual and its Jacobian by the inverse square root
// of the measurement covariance.
type Model interface {
	Dim() int
	Whiten(r []float64) []float64
	WhitenJacobian(j linalg.Dense) linalg.Dense
}

// Isotropic is a scalar-sigma model: every residual component shares
// the same standard deviation.
type Isotropic struct {
	dim   int
	sigma float64
}

// NewIsotropic builds an Isotropic model with standard deviation sigma
// applied uniformly across dim components.
func NewIsotropic(dim int, sigma float64) (*Isotropic, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: dim must be positive, got %d", ErrDimMismatch, dim)
	}
	if sigma <= 0 {
		return nil, fmt.Errorf("noise: sigma must be positive, got %g", sigma)
	}
	return &Isotropic{dim: dim, sigma: sigma}, nil
}

func (m *Isotropic) Dim() int { return m.dim }

func (m *Isotropic) Whiten(r []float64) []float64 {
	out := make([]float64, len(r))
	inv := 1.0 / m.sigma
	for i, x := range r {
		out[i] = x * inv
	}
	return out
}

func (m *Isotropic) WhitenJacobian(j linalg.Dense) linalg.Dense {
	inv := 1.0 / m.sigma
	out := linalg.NewDense(j.Rows(), j.Cols())
	for i := range j {
		for k, v := range j[i] {
			out[i][k] = v * inv
		}
	}
	return out
}

// Diagonal is a per-component sigma model.
type Diagonal struct {
	sigmas []float64
}

// NewDiagonal builds a Diagonal model from a vector of per-component
// standard deviations.
func NewDiagonal(sigmas []float64) (*Diagonal, error) {
	if len(sigmas) == 0 {
		return nil, fmt.Errorf("%w: sigmas must be non-empty", ErrDimMismatch)
	}
	cp := make([]float64, len(sigmas))
	for i, s := range sigmas {
		if s <= 0 {
			return nil, fmt.Errorf("noise: sigma[%d] must be positive, got %g", i, s)
		}
		cp[i] = s
	}
	return &Diagonal{sigmas: cp}, nil
}

func (m *Diagonal) Dim() int { return len(m.sigmas) }

func (m *Diagonal) Whiten(r []float64) []float64 {
	out := make([]float64, len(r))
	for i, x := range r {
		out[i] = x / m.sigmas[i]
	}
	return out
}

func (m *Diagonal) WhitenJacobian(j linalg.Dense) linalg.Dense {
	out := linalg.NewDense(j.Rows(), j.Cols())
	for i := range j {
		inv := 1.0 / m.sigmas[i]
		for k, v := range j[i] {
			out[i][k] = v * inv
		}
	}
	return out
}

// Full is a dense-covariance model: whitening multiplies by a triangular
// W with W^T W equal to the information matrix, W = L^-1 for a
// covariance Sigma = L L^T, or W = L^T for an information matrix
// Lambda = L L^T.
type Full struct {
	dim int
	w   linalg.Dense // whitening operator, r_whitened = W * r
}

// NewFullCovariance builds a Full model from a dense covariance matrix,
// factoring it via Cholesky and inverting the triangular factor L once,
// rather than inverting the covariance explicitly.
func NewFullCovariance(cov linalg.Dense) (*Full, error) {
	n := cov.Rows()
	if n == 0 || cov.Cols() != n {
		return nil, fmt.Errorf("%w: covariance must be square", ErrDimMismatch)
	}
	l, err := linalg.Cholesky(cov)
	if err != nil {
		return nil, fmt.Errorf("noise: covariance is not positive-definite: %w", err)
	}
	return &Full{dim: n, w: invertLowerTriangular(l)}, nil
}

// NewFullInformation builds a Full model directly from an information
// (inverse-covariance) matrix: whitening multiplies by the information
// matrix's own Cholesky factor transpose.
func NewFullInformation(info linalg.Dense) (*Full, error) {
	n := info.Rows()
	if n == 0 || info.Cols() != n {
		return nil, fmt.Errorf("%w: information matrix must be square", ErrDimMismatch)
	}
	l, err := linalg.Cholesky(info)
	if err != nil {
		return nil, fmt.Errorf("noise: information matrix is not positive-definite: %w", err)
	}
	return &Full{dim: n, w: linalg.TriangularTranspose(l)}, nil
}

func (m *Full) Dim() int { return m.dim }

func (m *Full) Whiten(r []float64) []float64 {
	return linalg.MulVec(m.w, r)
}

func (m *Full) WhitenJacobian(j linalg.Dense) linalg.Dense {
	return linalg.Mul(m.w, j)
}

// invertLowerTriangular returns W = L^-1, the whitening operator for a
// covariance Sigma = L L^T: W^T W = L^-T L^-1 = Sigma^-1, so scaling a
// residual by W whitens it. Computed column by column via forward
// substitution against each standard basis vector.
func invertLowerTriangular(l linalg.Dense) linalg.Dense {
	n := l.Rows()
	inv := linalg.NewDense(n, n)
	for col := 0; col < n; col++ {
		for i := 0; i < n; i++ {
			sum := 0.0
			if i == col {
				sum = 1
			}
			for k := 0; k < i; k++ {
				sum -= l[i][k] * inv[k][col]
			}
			inv[i][col] = sum / l[i][i]
		}
	}
	return inv
}
