// SPDX-License-Identifier: MIT

// Package qr - dense QR kernels.
//
// A Kernel computes the from-scratch factorization that the update operators
// then maintain. The contract mirrors LAPACK:
//   - Factor is xGEQRF: it overwrites a (m×n) with R on and above the
//     diagonal and the Householder vectors (unit leading entry implied)
//     below it, and returns the min(m,n) reflector scalars.
//   - FormQ is xORGQR/xUNGQR: it accumulates Q = H0·H1·…·H(t-1) and returns
//     its first cols columns, len(tau) <= cols <= m.

package qr

import (
	"fmt"

	"github.com/katalvlaran/qrupdate/matrix"
	"github.com/katalvlaran/qrupdate/orth"
)

// Kernel is the pluggable dense QR backend.
type Kernel[T matrix.Scalar] interface {
	Factor(a *matrix.Dense[T]) ([]T, error)
	FormQ(a *matrix.Dense[T], tau []T, cols int) (*matrix.Dense[T], error)
}

// HouseholderKernel is the portable kernel built on orth.Householder.
// It supports both float64 and complex128 and is the default of Factorize.
type HouseholderKernel[T matrix.Scalar] struct{}

// Compile-time interface checks.
var (
	_ Kernel[float64]    = HouseholderKernel[float64]{}
	_ Kernel[complex128] = HouseholderKernel[complex128]{}
)

// Factor triangularizes a in place column by column.
// Implementation:
//   - Stage 1: for j < min(m,n) build the reflector of a[j:, j].
//   - Stage 2: apply Hᴴ to the trailing block a[j:, j+1:].
//   - Stage 3: store beta on the diagonal and v[1:] below it.
//
// Complexity: O(m·n·min(m,n)).
func (HouseholderKernel[T]) Factor(a *matrix.Dense[T]) ([]T, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, err
	}
	m, n := a.Shape()
	t := min(m, n)
	tau := make([]T, t)
	data := a.RawData()
	col := make([]T, m)
	var i, j int
	for j = 0; j < t; j++ {
		x := col[:m-j]
		for i = j; i < m; i++ {
			x[i-j] = data[i*n+j]
		}
		h := orth.NewHouseholder(x)
		h.ApplyLeftH(a, j, j+1)
		data[j*n+j] = matrix.FromReal[T](h.Beta)
		for i = j + 1; i < m; i++ {
			data[i*n+j] = h.V[i-j]
		}
		tau[j] = h.Tau
	}

	return tau, nil
}

// FormQ accumulates the stored reflectors backwards into the first cols
// columns of the identity.
// Errors: ErrDimension when cols is outside [len(tau), m].
// Complexity: O(m·cols·len(tau)).
func (HouseholderKernel[T]) FormQ(a *matrix.Dense[T], tau []T, cols int) (*matrix.Dense[T], error) {
	if err := validateFormQ(a, tau, cols); err != nil {
		return nil, err
	}
	m, n := a.Shape()
	q, err := matrix.NewZeros[T](m, cols)
	if err != nil {
		return nil, err
	}
	qd := q.RawData()
	one := matrix.FromReal[T](1)
	for i := 0; i < cols; i++ {
		qd[i*cols+i] = one
	}
	data := a.RawData()
	v := make([]T, m)
	for j := len(tau) - 1; j >= 0; j-- {
		seg := v[:m-j]
		for i := j + 1; i < m; i++ {
			seg[i-j] = data[i*n+j]
		}
		orth.FromPacked(seg, tau[j]).ApplyLeft(q, j, j)
	}

	return q, nil
}

// validateFormQ checks the orgqr preconditions shared by every kernel.
func validateFormQ[T matrix.Scalar](a *matrix.Dense[T], tau []T, cols int) error {
	if err := matrix.ValidateNotNil(a); err != nil {
		return err
	}
	m, n := a.Shape()
	if len(tau) > min(m, n) || cols < len(tau) || cols > m {
		return fmt.Errorf("FormQ: cols %d with %d reflectors on %dx%d: %w", cols, len(tau), m, n, ErrDimension)
	}

	return nil
}
