// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//   - Never alias: every constructor, Clone and Resize owns a fresh buffer.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Resize: O(r'*c').

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxRow    = "Row"    // method tag used in error wrappers
	ctxCol    = "Col"    // method tag used in error wrappers
	ctxSetRow = "SetRow" // method tag used in error wrappers
	ctxSetCol = "SetCol" // method tag used in error wrappers
	ctxResize = "Resize" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix over T.
//   - r,c hold dimensions (rows, cols); zero is legal only via NewZeros.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set (policy default from options.go).
type Dense[T Scalar] struct {
	r, c           int  // row and column counts (>=0)
	data           []T  // contiguous row-major storage (len == r*c)
	validateNaNInf bool // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for fmt.Stringer conformance.
var (
	_ fmt.Stringer = (*Dense[float64])(nil)
	_ fmt.Stringer = (*Dense[complex128])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//   - Stage 3: resolve numeric policy from options.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Factorization states that legitimately shrink to k=0 or n=0 use NewZeros.
func NewDense[T Scalar](rows, cols int, opts ...Option) (*Dense[T], error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDense[T](rows, cols, gatherOptions(opts...).validateNaNInf), nil
}

// NewZeros creates an r×c zero matrix and, unlike NewDense, accepts empty
// shapes (rows==0 or cols==0). Negative dimensions yield ErrInvalidDimensions.
// Complexity: O(r*c).
func NewZeros[T Scalar](rows, cols int, opts ...Option) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return newDense[T](rows, cols, gatherOptions(opts...).validateNaNInf), nil
}

// newDense is the single allocation point; shape is assumed valid.
func newDense[T Scalar](rows, cols int, validate bool) *Dense[T] {
	return &Dense[T]{
		r:              rows,
		c:              cols,
		data:           make([]T, rows*cols), // make() zero-fills deterministically
		validateNaNInf: validate,
	}
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// n == 0 yields the empty 0×0 matrix.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T Scalar](n int, opts ...Option) (*Dense[T], error) {
	I, err := NewZeros[T](n, n, opts...)
	if err != nil {
		return nil, err
	}
	one := FromReal[T](1)
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = one
	}

	return I, nil
}

// FromRows builds a Dense from a rectangular [][]T literal (copying).
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrRagged when rows differ in length.
//   - ErrNaNInf when the numeric policy rejects an element.
//
// Complexity: O(r*c).
func FromRows[T Scalar](rows [][]T, opts ...Option) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m := newDense[T](r, c, gatherOptions(opts...).validateNaNInf)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf("FromRows", fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), c, ErrRagged))
		}
		for j, v := range row {
			if m.validateNaNInf && !IsFinite(v) {
				return nil, denseErrorf(ctxSet, i, j, ErrNaNInf)
			}
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// FromColumn builds an n×1 Dense holding a copy of v.
// Errors: ErrInvalidDimensions for an empty v; ErrNaNInf under the numeric policy.
func FromColumn[T Scalar](v []T, opts ...Option) (*Dense[T], error) {
	if len(v) == 0 {
		return nil, ErrInvalidDimensions
	}
	m := newDense[T](len(v), 1, gatherOptions(opts...).validateNaNInf)
	if err := m.SetCol(0, v); err != nil {
		return nil, err
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// ValidatesNaNInf reports the numeric policy carried by m.
func (m *Dense[T]) ValidatesNaNInf() bool { return m.validateNaNInf }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns sentinel error wrapped with coordinates.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Prefer At in external code; internal hot paths index RawData directly.
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && !IsFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// RawData returns the backing row-major slice (len == Rows*Cols, stride == Cols).
// Writes through the slice bypass the numeric policy; it exists for kernels
// that own the matrix exclusively.
func (m *Dense[T]) RawData() []T { return m.data }

// Row returns a copy of row i.
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
// Errors: ErrOutOfRange.
// Complexity: O(r).
func (m *Dense[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// SetRow overwrites row i with v (len(v) must equal Cols).
// Errors: ErrOutOfRange, ErrDimensionMismatch, ErrNaNInf (policy).
func (m *Dense[T]) SetRow(i int, v []T) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if len(v) != m.c {
		return denseErrorf(ctxSetRow, i, 0, ErrDimensionMismatch)
	}
	if err := m.checkFinite(v, ctxSetRow); err != nil {
		return err
	}
	copy(m.data[i*m.c:(i+1)*m.c], v)

	return nil
}

// SetCol overwrites column j with v (len(v) must equal Rows).
// Errors: ErrOutOfRange, ErrDimensionMismatch, ErrNaNInf (policy).
func (m *Dense[T]) SetCol(j int, v []T) error {
	if j < 0 || j >= m.c {
		return denseErrorf(ctxSetCol, 0, j, ErrOutOfRange)
	}
	if len(v) != m.r {
		return denseErrorf(ctxSetCol, 0, j, ErrDimensionMismatch)
	}
	if err := m.checkFinite(v, ctxSetCol); err != nil {
		return err
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] = v[i]
	}

	return nil
}

// checkFinite applies the numeric policy to a whole vector before any write.
func (m *Dense[T]) checkFinite(v []T, method string) error {
	if !m.validateNaNInf {
		return nil
	}
	for idx, x := range v {
		if !IsFinite(x) {
			return matrixErrorf(method, fmt.Errorf("element %d: %w", idx, ErrNaNInf))
		}
	}

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// MAIN DESCRIPTION:
//   - Produce an independent Dense with identical shape/data/policy.
//
// Behavior highlights:
//   - Independence: mutations do not affect the original.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data)) // allocate same length
	copy(cp, m.data)             // deep copy

	return &Dense[T]{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// Resize reallocates m to rows×cols, preserving every element whose
// coordinates exist in both shapes; new cells are zero, cut cells are dropped.
// MAIN DESCRIPTION:
//   - Grow or shrink in place of the receiver, never aliasing the old buffer.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0.
//   - Stage 2: allocate the new buffer and copy the overlapping block row by row.
//
// Errors:
//   - ErrInvalidDimensions on negative dimensions.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func (m *Dense[T]) Resize(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return matrixErrorf(ctxResize, ErrInvalidDimensions)
	}
	buf := make([]T, rows*cols)
	rr, cc := min(rows, m.r), min(cols, m.c)
	for i := 0; i < rr; i++ {
		copy(buf[i*cols:i*cols+cc], m.data[i*m.c:i*m.c+cc])
	}
	m.r, m.c, m.data = rows, cols, buf

	return nil
}

// Equal reports exact (bitwise for finite values) equality of shape and data.
// Complexity: O(r*c).
func (m *Dense[T]) Equal(b *Dense[T]) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.r != b.r || m.c != b.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Not for hot paths; intended for logs and debugging.
// Complexity: Time O(r*c), Space O(r*c) for formatting.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
