// SPDX-License-Identifier: MIT

package qr

import (
	"fmt"

	"github.com/katalvlaran/qrupdate/matrix"
)

// Solve returns the least-squares solution x minimizing ‖A·x − b‖₂ for a
// tall (m >= n) matrix of full column rank: x = R₁⁻¹·(Qᴴb)[:n], where R₁ is
// the leading n×n block of R.
//
// Errors:
//   - ErrUnsupportedMode (Raw), ErrShape (m < n or k < n),
//     ErrDimension (len(b) != m), matrix.ErrNaNInf,
//     ErrSingular (|R[i,i]| <= tol·max|R[j,j]|, or a non-finite pivot).
//
// Complexity: O(m·k + n²).
func (f *Factorization[T]) Solve(b []T) ([]T, error) {
	if err := f.requireUpdatable(opSolve); err != nil {
		return nil, err
	}
	m, n, k := f.Dims()
	if m < n || k < n {
		return nil, qrErrorf(opSolve, fmt.Errorf("m=%d n=%d k=%d, need m >= n and k >= n: %w", m, n, k, ErrShape))
	}
	if err := checkLen(opSolve, "b", b, m); err != nil {
		return nil, err
	}
	if err := checkFinite(opSolve, "b", b); err != nil {
		return nil, err
	}
	if w := diagonalWarning(opSolve, f.r, f.opts.singularTol); w != nil {
		return nil, qrErrorf(opSolve, fmt.Errorf("pivot %d (|%g| vs %g): %w", w.Index, w.Value, w.Scale, ErrSingular))
	}

	c, err := matrix.ConjMatVec(f.q, b)
	if err != nil {
		return nil, qrErrorf(opSolve, err)
	}
	rd := f.r.RawData()
	x := make([]T, n)
	var s T
	for i := n - 1; i >= 0; i-- {
		s = c[i]
		for j := i + 1; j < n; j++ {
			s -= rd[i*n+j] * x[j]
		}
		x[i] = s / rd[i*n+i]
	}

	return x, nil
}
