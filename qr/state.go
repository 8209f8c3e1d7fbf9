// SPDX-License-Identifier: MIT

// Package qr - factorization state, accessors and the commit protocol.
//
// Every operator follows the same three steps:
//   - validate all arguments against the current state (no mutation),
//   - compute on private copies of Q and R,
//   - commit by swapping the copies in (optionally after a self-check).
//
// A failed operator therefore never exposes a partially updated state.

package qr

import (
	"fmt"

	"github.com/katalvlaran/qrupdate/matrix"
)

// Factorization holds A = Q·R for a dense m×n matrix A.
//   - q: m×k with orthonormal columns (nil in Raw mode).
//   - r: k×n upper trapezoidal; in Raw mode the packed m×n LAPACK array.
//   - tau: reflector scalars (Raw mode only).
//
// A Factorization is not safe for concurrent mutation; see Shared.
type Factorization[T matrix.Scalar] struct {
	q, r *matrix.Dense[T]
	tau  []T
	mode Mode
	opts Options
	warn *SingularityWarning
}

// New builds a factorization from precomputed factors (copied).
// Implementation:
//   - Stage 1: reject nil factors.
//   - Stage 2: require q.Cols == r.Rows and q.Cols <= q.Rows.
//   - Stage 3: Mode is Full when Q is square, Economy otherwise.
//
// Behavior highlights:
//   - Orthogonality and triangularity are trusted unless WithSelfCheck is set.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrShapeMismatch, ErrInvariant (self-check).
func New[T matrix.Scalar](q, r *matrix.Dense[T], opts ...Option) (*Factorization[T], error) {
	if q == nil || r == nil {
		return nil, qrErrorf(opNew, matrix.ErrNilMatrix)
	}
	m, k := q.Shape()
	if k != r.Rows() || k > m {
		return nil, qrErrorf(opNew, fmt.Errorf("Q %dx%d, R %dx%d: %w", m, k, r.Rows(), r.Cols(), ErrShapeMismatch))
	}
	mode := Economy
	if k == m {
		mode = Full
	}
	f := &Factorization[T]{q: q.Clone(), r: r.Clone(), mode: mode, opts: gatherOptions(opts...)}
	if f.opts.selfCheck {
		if err := checkInvariants(f.q, f.r, f.opts.selfCheckTol); err != nil {
			return nil, qrErrorf(opNew, err)
		}
	}
	f.logOp(opNew)

	return f, nil
}

// Dims returns the row count m, column count n and basis size k.
// In Raw mode k is min(m, n), the number of stored reflectors.
func (f *Factorization[T]) Dims() (m, n, k int) {
	if f.mode == Raw {
		return f.r.Rows(), f.r.Cols(), len(f.tau)
	}

	return f.q.Rows(), f.r.Cols(), f.q.Cols()
}

// Mode returns the construction mode.
func (f *Factorization[T]) Mode() Mode { return f.mode }

// Q returns a copy of the orthonormal factor, or nil in Raw mode.
func (f *Factorization[T]) Q() *matrix.Dense[T] {
	if f.q == nil {
		return nil
	}

	return f.q.Clone()
}

// R returns a copy of the triangular factor (the packed array in Raw mode).
func (f *Factorization[T]) R() *matrix.Dense[T] { return f.r.Clone() }

// Tau returns a copy of the reflector scalars; nil outside Raw mode.
func (f *Factorization[T]) Tau() []T {
	if f.tau == nil {
		return nil
	}
	out := make([]T, len(f.tau))
	copy(out, f.tau)

	return out
}

// LastWarning returns the warning raised by the most recent successful
// operation, if any.
func (f *Factorization[T]) LastWarning() (SingularityWarning, bool) {
	if f.warn == nil {
		return SingularityWarning{}, false
	}

	return *f.warn, true
}

// Clone returns an independent deep copy sharing only the options.
func (f *Factorization[T]) Clone() *Factorization[T] {
	cp := &Factorization[T]{r: f.r.Clone(), mode: f.mode, opts: f.opts, tau: f.Tau()}
	if f.q != nil {
		cp.q = f.q.Clone()
	}
	if f.warn != nil {
		w := *f.warn
		cp.warn = &w
	}

	return cp
}

// Reconstruct returns the dense product Q·R.
// Errors: ErrUnsupportedMode in Raw mode.
func (f *Factorization[T]) Reconstruct() (*matrix.Dense[T], error) {
	if f.mode == Raw {
		return nil, qrErrorf(opReconst, ErrUnsupportedMode)
	}
	a, err := matrix.Mul(f.q, f.r)
	if err != nil {
		return nil, qrErrorf(opReconst, err)
	}

	return a, nil
}

// begin returns private copies of Q and R for an operator to work on.
func (f *Factorization[T]) begin() (q, r *matrix.Dense[T]) {
	return f.q.Clone(), f.r.Clone()
}

// commit swaps in the new factors. With self-check enabled a broken
// invariant aborts the swap. A warning raised by the operator takes
// precedence over the diagonal scan.
func (f *Factorization[T]) commit(op string, q, r *matrix.Dense[T], warn *SingularityWarning) error {
	if f.opts.selfCheck {
		if err := checkInvariants(q, r, f.opts.selfCheckTol); err != nil {
			return qrErrorf(op, err)
		}
	}
	if warn == nil {
		warn = diagonalWarning(op, r, f.opts.singularTol)
	}
	f.q, f.r, f.warn = q, r, warn
	f.logOp(op)
	f.emit()

	return nil
}

// requireUpdatable rejects Raw mode; every update operator calls it first.
func (f *Factorization[T]) requireUpdatable(op string) error {
	if f.mode == Raw {
		return qrErrorf(op, fmt.Errorf("%s mode: %w", f.mode, ErrUnsupportedMode))
	}

	return nil
}

// diagonalWarning scans the min(k,n) leading diagonal of r and reports the
// first entry with |R[i,i]| <= tol·max|R[j,j]| (exact zero when the whole
// diagonal vanishes). A NaN pivot or scale is always flagged. It returns nil
// for empty factors.
func diagonalWarning[T matrix.Scalar](op string, r *matrix.Dense[T], tol float64) *SingularityWarning {
	k, n := r.Shape()
	d := min(k, n)
	if d == 0 {
		return nil
	}
	data := r.RawData()
	var scale float64
	for i := 0; i < d; i++ {
		scale = max(scale, matrix.Abs(data[i*n+i]))
	}
	var v float64
	for i := 0; i < d; i++ {
		v = matrix.Abs(data[i*n+i])
		if v == 0 || !(v > tol*scale) {
			return &SingularityWarning{Op: op, Index: i, Value: v, Scale: scale}
		}
	}

	return nil
}
