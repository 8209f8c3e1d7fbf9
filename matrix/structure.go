// SPDX-License-Identifier: MIT

// Package matrix - structural edits (insert/delete/move rows and columns).
//
// Every edit returns a freshly allocated Dense; the receiver is never
// modified, so a failed edit cannot leave a torn matrix behind.

package matrix

import "fmt"

const (
	opInsertCol = "InsertCol"
	opDeleteCol = "DeleteCol"
	opInsertRow = "InsertRow"
	opDeleteRow = "DeleteRow"
	opMoveCol   = "MoveCol"
)

// InsertCol returns a copy of m with v inserted as column j (0 <= j <= Cols);
// columns at or after j shift right.
// Errors: ErrOutOfRange for j, ErrDimensionMismatch for len(v) != Rows.
// Complexity: O(r*c).
func (m *Dense[T]) InsertCol(j int, v []T) (*Dense[T], error) {
	if j < 0 || j > m.c {
		return nil, matrixErrorf(opInsertCol, fmt.Errorf("column %d not in [0,%d]: %w", j, m.c, ErrOutOfRange))
	}
	if len(v) != m.r {
		return nil, matrixErrorf(opInsertCol, fmt.Errorf("len %d, want %d: %w", len(v), m.r, ErrDimensionMismatch))
	}
	if err := m.checkFinite(v, opInsertCol); err != nil {
		return nil, err
	}
	out := newDense[T](m.r, m.c+1, m.validateNaNInf)
	var src, dst []T
	for i := 0; i < m.r; i++ {
		src = m.data[i*m.c : (i+1)*m.c]
		dst = out.data[i*out.c : (i+1)*out.c]
		copy(dst[:j], src[:j])
		dst[j] = v[i]
		copy(dst[j+1:], src[j:])
	}

	return out, nil
}

// DeleteCol returns a copy of m without column j (0 <= j < Cols).
// Errors: ErrOutOfRange.
// Complexity: O(r*c).
func (m *Dense[T]) DeleteCol(j int) (*Dense[T], error) {
	if j < 0 || j >= m.c {
		return nil, matrixErrorf(opDeleteCol, fmt.Errorf("column %d not in [0,%d): %w", j, m.c, ErrOutOfRange))
	}
	out := newDense[T](m.r, m.c-1, m.validateNaNInf)
	var src, dst []T
	for i := 0; i < m.r; i++ {
		src = m.data[i*m.c : (i+1)*m.c]
		dst = out.data[i*out.c : (i+1)*out.c]
		copy(dst[:j], src[:j])
		copy(dst[j:], src[j+1:])
	}

	return out, nil
}

// InsertRow returns a copy of m with v inserted as row i (0 <= i <= Rows).
// Errors: ErrOutOfRange for i, ErrDimensionMismatch for len(v) != Cols.
// Complexity: O(r*c).
func (m *Dense[T]) InsertRow(i int, v []T) (*Dense[T], error) {
	if i < 0 || i > m.r {
		return nil, matrixErrorf(opInsertRow, fmt.Errorf("row %d not in [0,%d]: %w", i, m.r, ErrOutOfRange))
	}
	if len(v) != m.c {
		return nil, matrixErrorf(opInsertRow, fmt.Errorf("len %d, want %d: %w", len(v), m.c, ErrDimensionMismatch))
	}
	if err := m.checkFinite(v, opInsertRow); err != nil {
		return nil, err
	}
	out := newDense[T](m.r+1, m.c, m.validateNaNInf)
	copy(out.data[:i*m.c], m.data[:i*m.c])
	copy(out.data[i*m.c:(i+1)*m.c], v)
	copy(out.data[(i+1)*m.c:], m.data[i*m.c:])

	return out, nil
}

// DeleteRow returns a copy of m without row i (0 <= i < Rows).
// Errors: ErrOutOfRange.
// Complexity: O(r*c).
func (m *Dense[T]) DeleteRow(i int) (*Dense[T], error) {
	if i < 0 || i >= m.r {
		return nil, matrixErrorf(opDeleteRow, fmt.Errorf("row %d not in [0,%d): %w", i, m.r, ErrOutOfRange))
	}
	out := newDense[T](m.r-1, m.c, m.validateNaNInf)
	copy(out.data[:i*m.c], m.data[:i*m.c])
	copy(out.data[i*m.c:], m.data[(i+1)*m.c:])

	return out, nil
}

// MoveCol returns a copy of m where column from is moved to position to and
// the columns in between shift by one toward from's old slot (a cyclic shift
// of the range [min(from,to), max(from,to)]).
// Errors: ErrOutOfRange.
// Complexity: O(r*c).
func (m *Dense[T]) MoveCol(from, to int) (*Dense[T], error) {
	if from < 0 || from >= m.c || to < 0 || to >= m.c {
		return nil, matrixErrorf(opMoveCol, fmt.Errorf("columns (%d,%d) not in [0,%d): %w", from, to, m.c, ErrOutOfRange))
	}
	out := m.Clone()
	var row []T
	var moved T
	for i := 0; i < m.r; i++ {
		row = out.data[i*m.c : (i+1)*m.c]
		moved = row[from]
		if from < to {
			copy(row[from:to], row[from+1:to+1])
		} else {
			copy(row[to+1:from+1], row[to:from])
		}
		row[to] = moved
	}

	return out, nil
}
