// SPDX-License-Identifier: MIT

package qr

import (
	"fmt"

	"github.com/katalvlaran/qrupdate/matrix"
	"github.com/katalvlaran/qrupdate/orth"
)

// ShiftCols updates the factorization for A with column i moved to position
// j; the columns in between move by one toward i's old slot.
// Implementation:
//   - i < j: the columns i..j−1 pick up one subdiagonal entry each; an
//     ascending sweep over rows i..min(j,k−1) clears them.
//   - i > j: the moved column j is full below the diagonal down to row i;
//     a bottom-up sweep over rows min(i,k−1)..j+1 clears it.
//
// Behavior highlights:
//   - i == j is a no-op (the state is left untouched and not re-committed).
//
// Errors: ErrUnsupportedMode, ErrIndexOutOfRange (either index outside [0, n−1]).
// Complexity: O(|i−j|·(m + n)).
func (f *Factorization[T]) ShiftCols(i, j int) error {
	if err := f.requireUpdatable(opShiftCols); err != nil {
		return err
	}
	_, n, k := f.Dims()
	if i < 0 || i >= n || j < 0 || j >= n {
		return qrErrorf(opShiftCols, fmt.Errorf("columns (%d,%d) not in [0,%d): %w", i, j, n, ErrIndexOutOfRange))
	}
	if i == j {
		return nil
	}

	q, r := f.begin()
	r, err := r.MoveCol(i, j)
	if err != nil {
		return qrErrorf(opShiftCols, err)
	}
	if i < j {
		hessenbergToTriangle(q, r, i, min(j, k-1))
	} else {
		clearColumnUp(q, r, j, min(i, k-1))
	}

	return f.commit(opShiftCols, q, r, nil)
}

// clearColumnUp zeroes R[p, col] for p = bottom..col+1 with rotations on
// rows (p−1, p), co-applied to the columns of Q.
func clearColumnUp[T matrix.Scalar](q, r *matrix.Dense[T], col, bottom int) {
	n := r.Cols()
	rd := r.RawData()
	var g orth.Givens[T]
	for p := bottom; p > col; p-- {
		g, rd[(p-1)*n+col] = orth.NewGivens(rd[(p-1)*n+col], rd[p*n+col])
		rd[p*n+col] = 0
		g.ApplyRows(r, p-1, p, col+1)
		g.ApplyCols(q, p-1, p)
	}
}
