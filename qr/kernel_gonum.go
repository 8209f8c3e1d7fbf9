// SPDX-License-Identifier: MIT

package qr

import (
	"github.com/katalvlaran/qrupdate/matrix"
	"gonum.org/v1/gonum/lapack/gonum"
)

// GonumKernel delegates the real factorization to gonum's pure-Go LAPACK
// (Dgeqrf / Dorgqr). gonum's routines are row-major, which matches Dense.
type GonumKernel struct{}

var _ Kernel[float64] = GonumKernel{}

// lapack is the stateless gonum implementation shared by the kernel methods.
var lapack gonum.Implementation

// Factor runs Dgeqrf on a in place after a workspace query.
func (GonumKernel) Factor(a *matrix.Dense[float64]) ([]float64, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, err
	}
	m, n := a.Shape()
	tau := make([]float64, min(m, n))
	if len(tau) == 0 {
		return tau, nil
	}
	data := a.RawData()
	work := make([]float64, 1)
	lapack.Dgeqrf(m, n, data, n, tau, work, -1)
	work = make([]float64, max(n, int(work[0])))
	lapack.Dgeqrf(m, n, data, n, tau, work, len(work))

	return tau, nil
}

// FormQ copies the reflector columns into an m×cols buffer and runs Dorgqr.
// Errors: ErrDimension when cols is outside [len(tau), m].
func (GonumKernel) FormQ(a *matrix.Dense[float64], tau []float64, cols int) (*matrix.Dense[float64], error) {
	if err := validateFormQ(a, tau, cols); err != nil {
		return nil, err
	}
	m, n := a.Shape()
	q, err := matrix.NewZeros[float64](m, cols)
	if err != nil {
		return nil, err
	}
	if cols == 0 {
		return q, nil
	}
	src, dst := a.RawData(), q.RawData()
	w := min(n, cols)
	for i := 0; i < m; i++ {
		copy(dst[i*cols:i*cols+w], src[i*n:i*n+w])
	}
	work := make([]float64, 1)
	lapack.Dorgqr(m, cols, len(tau), dst, cols, tau, work, -1)
	work = make([]float64, max(cols, int(work[0])))
	lapack.Dorgqr(m, cols, len(tau), dst, cols, tau, work, len(work))

	return q, nil
}
