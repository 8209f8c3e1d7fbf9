// SPDX-License-Identifier: MIT

// Package qr - row insertion and deletion.
//
// Both operators need the full orthogonal basis (k == m): inserting or
// removing a row changes m, and an economy Q carries no information about
// the orthogonal complement that the new basis would need.

package qr

import (
	"fmt"

	"github.com/katalvlaran/qrupdate/matrix"
	"github.com/katalvlaran/qrupdate/orth"
)

// InsertRow updates the factorization for A with u inserted as row j
// (0 <= j <= m).
// Implementation:
//   - Stage 1: Q' = P·diag(1, Q) where P moves row 0 to row j; R' = [u; R].
//   - Stage 2: R' is upper Hessenberg; an ascending sweep zeroes its
//     subdiagonal while rotating the columns of Q'.
//
// Errors:
//   - ErrUnsupportedMode, ErrShape (k < m), ErrDimension (len(u) != n),
//     matrix.ErrNaNInf, ErrIndexOutOfRange.
//
// Complexity: O(m² + m·n).
func (f *Factorization[T]) InsertRow(u []T, j int) error {
	if err := f.requireSquare(opInsertRow); err != nil {
		return err
	}
	m, n, _ := f.Dims()
	if err := checkLen(opInsertRow, "u", u, n); err != nil {
		return err
	}
	if err := checkFinite(opInsertRow, "u", u); err != nil {
		return err
	}
	if j < 0 || j > m {
		return qrErrorf(opInsertRow, fmt.Errorf("row %d not in [0,%d]: %w", j, m, ErrIndexOutOfRange))
	}

	q, err := matrix.NewZeros[T](m+1, m+1)
	if err != nil {
		return qrErrorf(opInsertRow, err)
	}
	qd, od := q.RawData(), f.q.RawData()
	w := m + 1
	var i, src int
	for i = 0; i < w; i++ {
		switch {
		case i == j:
			qd[i*w] = 1
		default:
			src = i
			if i > j {
				src = i - 1
			}
			copy(qd[i*w+1:(i+1)*w], od[src*m:(src+1)*m])
		}
	}
	r, err := f.r.InsertRow(0, u)
	if err != nil {
		return qrErrorf(opInsertRow, err)
	}
	hessenbergToTriangle(q, r, 0, min(m, n))

	return f.commit(opInsertRow, q, r, nil)
}

// DeleteRow updates the factorization for A with row j removed.
// Implementation:
//   - Stage 1: rotations on adjacent columns of Q (from the last pair down)
//     reduce row j of Q to α·e₀ with |α| = 1; the same rotations applied to
//     the rows of R leave it upper Hessenberg.
//   - Stage 2: column 0 of Q is now α·e_j; dropping row j and column 0 of Q
//     and row 0 of R leaves an upper triangular R.
//
// Errors: ErrUnsupportedMode, ErrShape (k < m), ErrIndexOutOfRange.
// Complexity: O(m² + m·n).
func (f *Factorization[T]) DeleteRow(j int) error {
	if err := f.requireSquare(opDeleteRow); err != nil {
		return err
	}
	m, _, _ := f.Dims()
	if j < 0 || j >= m {
		return qrErrorf(opDeleteRow, fmt.Errorf("row %d not in [0,%d): %w", j, m, ErrIndexOutOfRange))
	}

	q, r := f.begin()
	qd := q.RawData()
	var g orth.Givens[T]
	for i := m - 1; i > 0; i-- {
		g, _ = orth.NewGivens(matrix.Conj(qd[j*m+i-1]), matrix.Conj(qd[j*m+i]))
		g.ApplyCols(q, i-1, i)
		qd[j*m+i] = 0
		g.ApplyRows(r, i-1, i, i-1)
	}

	var err error
	if q, err = q.DeleteRow(j); err != nil {
		return qrErrorf(opDeleteRow, err)
	}
	if q, err = q.DeleteCol(0); err != nil {
		return qrErrorf(opDeleteRow, err)
	}
	if r, err = r.DeleteRow(0); err != nil {
		return qrErrorf(opDeleteRow, err)
	}

	return f.commit(opDeleteRow, q, r, nil)
}

// requireSquare gates the row operators: Raw mode and k < m are rejected.
func (f *Factorization[T]) requireSquare(op string) error {
	if err := f.requireUpdatable(op); err != nil {
		return err
	}
	m, _, k := f.Dims()
	if k != m {
		return qrErrorf(op, fmt.Errorf("k = %d < m = %d; row operations require a square orthogonal basis, re-factorize in full mode first: %w", k, m, ErrShape))
	}

	return nil
}
