// SPDX-License-Identifier: MIT

// Package qr - column insertion and deletion (single and batched).

package qr

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/katalvlaran/qrupdate/matrix"
)

// InsertCol updates the factorization for A with u inserted as column j
// (0 <= j <= n); columns at or after j shift right.
// Implementation:
//   - Stage 1: w = Qᴴu; if k < m the normalized remainder of u becomes a new
//     column of Q and R gains a row (entry ρ = ‖remainder‖).
//   - Stage 2: insert [w; ρ] as column j of R.
//   - Stage 3: a bottom-up sweep over rows >= j zeroes the new column below
//     the diagonal.
//
// Behavior highlights:
//   - When u lies in span(Q) but k < m, a unit vector orthogonal to Q is
//     chosen instead of the remainder and a SingularityWarning is raised.
//
// Errors:
//   - ErrUnsupportedMode, ErrDimension (len(u) != m), matrix.ErrNaNInf,
//     ErrIndexOutOfRange.
//
// Complexity:
//   - Time O(m·k + k·n).
func (f *Factorization[T]) InsertCol(u []T, j int) error {
	if err := f.requireUpdatable(opInsertCol); err != nil {
		return err
	}
	m, n, _ := f.Dims()
	if err := checkLen(opInsertCol, "u", u, m); err != nil {
		return err
	}
	if err := checkFinite(opInsertCol, "u", u); err != nil {
		return err
	}
	if j < 0 || j > n {
		return qrErrorf(opInsertCol, fmt.Errorf("column %d not in [0,%d]: %w", j, n, ErrIndexOutOfRange))
	}
	q, r := f.begin()
	q, r, warn, err := insertCol(q, r, u, j, f.opts.eps)
	if err != nil {
		return qrErrorf(opInsertCol, err)
	}

	return f.commit(opInsertCol, q, r, warn)
}

// InsertCols inserts the columns of U at the final positions js.
// Implementation:
//   - Stage 1: duplicates → ErrDuplicateIndex.
//   - Stage 2: U must be m×len(js) → ErrDimension.
//   - Stage 3: sorted ascending, the i-th position must lie in [0, n+i]
//     → ErrIndexOutOfRange.
//   - Stage 4: insert one by one in ascending order on private factors.
//
// Behavior highlights:
//   - All-or-nothing: on any error the factorization is untouched.
//   - After the call column js[p] of A equals U[:,p].
func (f *Factorization[T]) InsertCols(U *matrix.Dense[T], js []int) error {
	if err := f.requireUpdatable(opInsertCols); err != nil {
		return err
	}
	if err := checkDuplicates(opInsertCols, js); err != nil {
		return err
	}
	if U == nil {
		return qrErrorf(opInsertCols, matrix.ErrNilMatrix)
	}
	m, n, _ := f.Dims()
	if U.Rows() != m || U.Cols() != len(js) {
		return qrErrorf(opInsertCols, fmt.Errorf("U %dx%d for %d rows and %d indices: %w",
			U.Rows(), U.Cols(), m, len(js), ErrDimension))
	}
	if err := checkFinite(opInsertCols, "U", U.RawData()); err != nil {
		return err
	}
	order := sortedOrder(js)
	for i, p := range order {
		if js[p] < 0 || js[p] > n+i {
			return qrErrorf(opInsertCols, fmt.Errorf("column %d not in [0,%d]: %w", js[p], n+i, ErrIndexOutOfRange))
		}
	}

	q, r := f.begin()
	var warn, w *SingularityWarning
	var err error
	for _, p := range order {
		u, _ := U.Col(p)
		q, r, w, err = insertCol(q, r, u, js[p], f.opts.eps)
		if err != nil {
			return qrErrorf(opInsertCols, err)
		}
		if w != nil {
			w.Op = opInsertCols
			warn = w
		}
	}

	return f.commit(opInsertCols, q, r, warn)
}

// DeleteCol updates the factorization for A with column j removed.
// Implementation:
//   - Stage 1: drop column j of R; columns after j now carry one
//     subdiagonal entry each.
//   - Stage 2: an ascending sweep over rows >= j restores the triangle.
//   - Stage 3: if k < m and k > n−1 the last row of R is zero; R loses it and
//     Q loses its last column.
//
// Errors: ErrUnsupportedMode, ErrIndexOutOfRange (j outside [0, n−1]).
// Complexity: O(m·k + k·n).
func (f *Factorization[T]) DeleteCol(j int) error {
	if err := f.requireUpdatable(opDeleteCol); err != nil {
		return err
	}
	_, n, _ := f.Dims()
	if j < 0 || j >= n {
		return qrErrorf(opDeleteCol, fmt.Errorf("column %d not in [0,%d): %w", j, n, ErrIndexOutOfRange))
	}
	q, r := f.begin()
	q, r, err := deleteCol(q, r, j)
	if err != nil {
		return qrErrorf(opDeleteCol, err)
	}

	return f.commit(opDeleteCol, q, r, nil)
}

// DeleteCols removes the columns js (indices into the current A).
// Checks: duplicates → ErrDuplicateIndex, any index outside [0, n−1] →
// ErrIndexOutOfRange. Columns are removed from the highest index down.
// All-or-nothing.
func (f *Factorization[T]) DeleteCols(js []int) error {
	if err := f.requireUpdatable(opDeleteCols); err != nil {
		return err
	}
	if err := checkDuplicates(opDeleteCols, js); err != nil {
		return err
	}
	_, n, _ := f.Dims()
	for _, j := range js {
		if j < 0 || j >= n {
			return qrErrorf(opDeleteCols, fmt.Errorf("column %d not in [0,%d): %w", j, n, ErrIndexOutOfRange))
		}
	}
	desc := slices.Clone(js)
	sort.Sort(sort.Reverse(sort.IntSlice(desc)))

	q, r := f.begin()
	var err error
	for _, j := range desc {
		if q, r, err = deleteCol(q, r, j); err != nil {
			return qrErrorf(opDeleteCols, err)
		}
	}

	return f.commit(opDeleteCols, q, r, nil)
}

// insertCol is the single-column kernel shared by InsertCol and InsertCols.
func insertCol[T matrix.Scalar](q, r *matrix.Dense[T], u []T, j int, eps float64) (*matrix.Dense[T], *matrix.Dense[T], *SingularityWarning, error) {
	m, k := q.Shape()
	n := r.Cols()
	w, err := matrix.ConjMatVec(q, u)
	if err != nil {
		return nil, nil, nil, err
	}

	var warn *SingularityWarning
	if k < m {
		res, rho := remainder(q, u, w)
		unorm := matrix.Norm2(u)
		var basis []T
		if rho > eps*unorm {
			basis = scaled(res, 1/rho)
		} else {
			basis = orthogonalUnit(q)
			warn = &SingularityWarning{Op: opInsertCol, Index: j, Value: rho, Scale: unorm}
			rho = 0
		}
		if q, err = q.InsertCol(k, basis); err != nil {
			return nil, nil, nil, err
		}
		if err = r.Resize(k+1, n); err != nil {
			return nil, nil, nil, err
		}
		w = append(w, matrix.FromReal[T](rho))
		k++
	}
	if r, err = r.InsertCol(j, w); err != nil {
		return nil, nil, nil, err
	}

	clearColumnUp(q, r, j, k-1)

	return q, r, warn, nil
}

// deleteCol is the single-column kernel shared by DeleteCol and DeleteCols.
func deleteCol[T matrix.Scalar](q, r *matrix.Dense[T], j int) (*matrix.Dense[T], *matrix.Dense[T], error) {
	m, k := q.Shape()
	r, err := r.DeleteCol(j)
	if err != nil {
		return nil, nil, err
	}
	n := r.Cols()
	hessenbergToTriangle(q, r, j, min(k-1, n))
	if k < m && k > n {
		if err = r.Resize(k-1, n); err != nil {
			return nil, nil, err
		}
		if q, err = q.DeleteCol(k - 1); err != nil {
			return nil, nil, err
		}
	}

	return q, r, nil
}

// orthogonalUnit returns a unit vector orthogonal to the columns of q
// (k < m): the canonical basis vector whose projection onto the orthogonal
// complement is largest, orthogonalized twice and normalized.
func orthogonalUnit[T matrix.Scalar](q *matrix.Dense[T]) []T {
	m, k := q.Shape()
	var best []T
	bestNorm := -1.0
	e := make([]T, m)
	for idx := 0; idx < m; idx++ {
		clear(e)
		e[idx] = 1
		c, _ := matrix.ConjMatVec(q, e)
		res, rho := remainder(q, e, c)
		if rho > bestNorm {
			best, bestNorm = res, rho
		}
		// Some canonical vector always keeps at least sqrt((m-k)/m) of its norm.
		if rho >= math.Sqrt(float64(m-k)/float64(m)) {
			break
		}
	}

	return scaled(best, 1/bestNorm)
}

// checkDuplicates reports the first repeated index.
func checkDuplicates(op string, js []int) error {
	seen := make(map[int]struct{}, len(js))
	for _, j := range js {
		if _, dup := seen[j]; dup {
			return qrErrorf(op, fmt.Errorf("index %d: %w", j, ErrDuplicateIndex))
		}
		seen[j] = struct{}{}
	}

	return nil
}

// sortedOrder returns the permutation that sorts js ascending (stable).
func sortedOrder(js []int) []int {
	order := make([]int, len(js))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return js[order[a]] < js[order[b]] })

	return order
}
