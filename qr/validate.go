// SPDX-License-Identifier: MIT

// Package qr - invariant checks.
//
// The validator is the debug companion of the update operators: it checks
// the shape contract, the exact zero pattern of R and the orthonormality of
// Q. It never looks at the original A (which the factorization does not
// keep); callers that have A can compare it against Reconstruct.

package qr

import (
	"fmt"

	"github.com/katalvlaran/qrupdate/matrix"
)

// Validate checks the invariants of f with orthogonality tolerance tol:
//   - dim(Q) = m×k, dim(R) = k×n, k <= m;
//   - every entry of Q and R is finite;
//   - R[i,j] == 0 exactly for i > j;
//   - max|QᴴQ − I| <= tol.
//
// Errors: ErrUnsupportedMode in Raw mode, ErrInvariant otherwise.
// Complexity: O(m·k²).
func (f *Factorization[T]) Validate(tol float64) error {
	if err := f.requireUpdatable(opValidate); err != nil {
		return err
	}
	if err := checkInvariants(f.q, f.r, tol); err != nil {
		return qrErrorf(opValidate, err)
	}

	return nil
}

// checkInvariants is the shared implementation of Validate and the self-check.
func checkInvariants[T matrix.Scalar](q, r *matrix.Dense[T], tol float64) error {
	m, k := q.Shape()
	kr, n := r.Shape()
	if kr != k || k > m {
		return fmt.Errorf("Q %dx%d, R %dx%d: %w", m, k, kr, n, ErrInvariant)
	}
	if err := requireFinite("Q", q); err != nil {
		return err
	}
	if err := requireFinite("R", r); err != nil {
		return err
	}
	rd := r.RawData()
	var i, j int
	for i = 1; i < k; i++ {
		for j = 0; j < min(i, n); j++ {
			if rd[i*n+j] != 0 {
				return fmt.Errorf("R[%d,%d] = %v below the diagonal: %w", i, j, rd[i*n+j], ErrInvariant)
			}
		}
	}
	// NaN compares false both ways; only an explicit <= passes.
	if dev := orthogonalityError(q); !(dev <= tol) {
		return fmt.Errorf("max|QᴴQ-I| = %g > %g: %w", dev, tol, ErrInvariant)
	}

	return nil
}

// requireFinite reports the first NaN or Inf entry of a factor.
func requireFinite[T matrix.Scalar](name string, a *matrix.Dense[T]) error {
	c := a.Cols()
	for idx, v := range a.RawData() {
		if !matrix.IsFinite(v) {
			return fmt.Errorf("%s[%d,%d] = %v: %w", name, idx/c, idx%c, v, ErrInvariant)
		}
	}

	return nil
}

// Residual returns the relative reconstruction error ‖A − Q·R‖_F / ‖A‖_F
// against a caller-held A (the absolute error when A is zero).
// Errors: ErrUnsupportedMode (Raw), matrix.ErrNilMatrix, ErrDimension
// (A is not m×n).
// Complexity: O(m·k·n).
func (f *Factorization[T]) Residual(a *matrix.Dense[T]) (float64, error) {
	if err := f.requireUpdatable(opResidual); err != nil {
		return 0, err
	}
	if a == nil {
		return 0, qrErrorf(opResidual, matrix.ErrNilMatrix)
	}
	m, n, _ := f.Dims()
	if a.Rows() != m || a.Cols() != n {
		return 0, qrErrorf(opResidual, fmt.Errorf("A %dx%d for %dx%d: %w", a.Rows(), a.Cols(), m, n, ErrDimension))
	}
	prod, err := matrix.Mul(f.q, f.r)
	if err != nil {
		return 0, qrErrorf(opResidual, err)
	}
	diff, err := matrix.Sub(a, prod)
	if err != nil {
		return 0, qrErrorf(opResidual, err)
	}
	res := matrix.FrobeniusNorm(diff)
	if na := matrix.FrobeniusNorm(a); na > 0 {
		res /= na
	}

	return res, nil
}

// orthogonalityError returns max|QᴴQ − I| without forming Qᴴ.
func orthogonalityError[T matrix.Scalar](q *matrix.Dense[T]) float64 {
	m, k := q.Shape()
	d := q.RawData()
	var worst float64
	var s T
	var a, b, i int
	for a = 0; a < k; a++ {
		for b = a; b < k; b++ {
			s = 0
			for i = 0; i < m; i++ {
				s += matrix.Conj(d[i*k+a]) * d[i*k+b]
			}
			if a == b {
				s -= 1
			}
			worst = max(worst, matrix.Abs(s))
		}
	}

	return worst
}
