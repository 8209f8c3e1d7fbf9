// SPDX-License-Identifier: MIT

// Package qr - rank-one updates.

package qr

import (
	"fmt"

	"github.com/katalvlaran/qrupdate/matrix"
	"github.com/katalvlaran/qrupdate/orth"
)

// Update replaces the factorization of A by that of A + u·vᴴ.
// MAIN DESCRIPTION:
//   - Classic Givens-based rank-one update; never refactorizes.
//
// Implementation:
//   - Stage 1: w = Qᴴu. If k < m, the remainder u − Q·w (re-orthogonalized
//     once) temporarily extends the basis when it does not vanish.
//   - Stage 2: a descending sweep of rotations reduces w to w₀·e₀; applied
//     to R (which turns upper Hessenberg) and to the columns of Q.
//   - Stage 3: R[0,:] += w₀·vᴴ.
//   - Stage 4: an ascending sweep restores the triangle.
//   - Stage 5: an extension whose trailing R row vanished is dropped again.
//
// Behavior highlights:
//   - Economy factorizations of tall matrices keep k: the trailing row is
//     structurally zero there.
//   - A basis with k < min(m, n) may grow by one column.
//
// Errors:
//   - ErrUnsupportedMode (Raw), ErrDimension (len(u) != m or len(v) != n),
//     matrix.ErrNaNInf (non-finite entry in u or v).
//
// Complexity:
//   - Time O(m·k + k·n).
func (f *Factorization[T]) Update(u, v []T) error {
	if err := f.requireUpdatable(opUpdate); err != nil {
		return err
	}
	m, n, _ := f.Dims()
	if err := checkLen(opUpdate, "u", u, m); err != nil {
		return err
	}
	if err := checkLen(opUpdate, "v", v, n); err != nil {
		return err
	}
	if err := checkFinite(opUpdate, "u", u); err != nil {
		return err
	}
	if err := checkFinite(opUpdate, "v", v); err != nil {
		return err
	}
	q, r := f.begin()
	q, r, err := rankOne(q, r, u, v, f.opts.eps)
	if err != nil {
		return qrErrorf(opUpdate, err)
	}

	return f.commit(opUpdate, q, r, nil)
}

// UpdateBatch applies the rank-one updates A + U[:,p]·V[:,p]ᴴ for every
// column p, in order. Either all of them are applied or none.
// Errors: ErrUnsupportedMode, matrix.ErrNilMatrix, ErrDimension (U must be
// m×p and V n×p), matrix.ErrNaNInf.
func (f *Factorization[T]) UpdateBatch(U, V *matrix.Dense[T]) error {
	if err := f.requireUpdatable(opUpdateMany); err != nil {
		return err
	}
	if U == nil || V == nil {
		return qrErrorf(opUpdateMany, matrix.ErrNilMatrix)
	}
	m, n, _ := f.Dims()
	if U.Rows() != m || V.Rows() != n || U.Cols() != V.Cols() {
		return qrErrorf(opUpdateMany, fmt.Errorf("U %dx%d, V %dx%d for %dx%d: %w",
			U.Rows(), U.Cols(), V.Rows(), V.Cols(), m, n, ErrDimension))
	}
	if err := checkFinite(opUpdateMany, "U", U.RawData()); err != nil {
		return err
	}
	if err := checkFinite(opUpdateMany, "V", V.RawData()); err != nil {
		return err
	}
	q, r := f.begin()
	var err error
	for p := 0; p < U.Cols(); p++ {
		u, _ := U.Col(p)
		v, _ := V.Col(p)
		if q, r, err = rankOne(q, r, u, v, f.opts.eps); err != nil {
			return qrErrorf(opUpdateMany, err)
		}
	}

	return f.commit(opUpdateMany, q, r, nil)
}

// rankOne performs the update on private factors and returns the new ones.
func rankOne[T matrix.Scalar](q, r *matrix.Dense[T], u, v []T, eps float64) (*matrix.Dense[T], *matrix.Dense[T], error) {
	m, k := q.Shape()
	n := r.Cols()
	w, _ := matrix.ConjMatVec(q, u)

	augmented := false
	if k < m {
		res, rho := remainder(q, u, w)
		if rho > eps*matrix.Norm2(u) {
			q = appendCol(q, scaled(res, 1/rho))
			if err := r.Resize(k+1, n); err != nil {
				return nil, nil, err
			}
			w = append(w, matrix.FromReal[T](rho))
			k++
			augmented = true
		}
	}

	// Descending sweep: w -> w0·e0, R -> upper Hessenberg.
	var g orth.Givens[T]
	for i := k - 1; i > 0; i-- {
		g, w[i-1] = orth.NewGivens(w[i-1], w[i])
		w[i] = 0
		g.ApplyRows(r, i-1, i, i-1)
		g.ApplyCols(q, i-1, i)
	}

	if k > 0 {
		rd := r.RawData()
		for j := 0; j < n; j++ {
			rd[j] += w[0] * matrix.Conj(v[j])
		}
	}

	hessenbergToTriangle(q, r, 0, min(k-1, n))

	if augmented && trailingRowNegligible(r, eps) {
		if err := r.Resize(k-1, n); err != nil {
			return nil, nil, err
		}
		var err error
		if q, err = q.DeleteCol(k - 1); err != nil {
			return nil, nil, err
		}
	}

	return q, r, nil
}

// hessenbergToTriangle zeroes the subdiagonal R[i+1,i] for i in [from, to)
// with adjacent rotations, co-applied to the columns of Q.
func hessenbergToTriangle[T matrix.Scalar](q, r *matrix.Dense[T], from, to int) {
	n := r.Cols()
	rd := r.RawData()
	var g orth.Givens[T]
	for i := from; i < to; i++ {
		g, rd[i*n+i] = orth.NewGivens(rd[i*n+i], rd[(i+1)*n+i])
		rd[(i+1)*n+i] = 0
		g.ApplyRows(r, i, i+1, i+1)
		g.ApplyCols(q, i, i+1)
	}
}

// remainder returns u − Q·w and its norm, with one re-orthogonalization
// pass (w is corrected in place).
func remainder[T matrix.Scalar](q *matrix.Dense[T], u, w []T) ([]T, float64) {
	res := make([]T, len(u))
	copy(res, u)
	for pass := 0; pass < 2; pass++ {
		c := w
		if pass > 0 {
			c, _ = matrix.ConjMatVec(q, res)
			for i := range w {
				w[i] += c[i]
			}
		}
		qc, _ := matrix.MatVec(q, c)
		for i := range res {
			res[i] -= qc[i]
		}
	}

	return res, matrix.Norm2(res)
}

// trailingRowNegligible reports whether the last row of r is (near) zero
// relative to the whole factor.
func trailingRowNegligible[T matrix.Scalar](r *matrix.Dense[T], eps float64) bool {
	k, n := r.Shape()
	if k == 0 {
		return false
	}
	last := r.RawData()[(k-1)*n : k*n]

	return matrix.Norm2(last) <= eps*matrix.FrobeniusNorm(r)
}

// appendCol returns q with column c appended.
func appendCol[T matrix.Scalar](q *matrix.Dense[T], c []T) *matrix.Dense[T] {
	out, _ := q.InsertCol(q.Cols(), c)

	return out
}

// scaled returns alpha·x in a new slice.
func scaled[T matrix.Scalar](x []T, alpha float64) []T {
	a := matrix.FromReal[T](alpha)
	out := make([]T, len(x))
	for i := range x {
		out[i] = a * x[i]
	}

	return out
}

// checkFinite rejects NaN and Inf entries regardless of the Dense policy:
// a single non-finite value spreads through every rotation.
func checkFinite[T matrix.Scalar](op, name string, x []T) error {
	for i, v := range x {
		if !matrix.IsFinite(v) {
			return qrErrorf(op, fmt.Errorf("%s[%d] = %v: %w", name, i, v, matrix.ErrNaNInf))
		}
	}

	return nil
}

// checkLen validates a vector argument length.
func checkLen[T matrix.Scalar](op, name string, x []T, want int) error {
	if len(x) != want {
		return qrErrorf(op, fmt.Errorf("len(%s) = %d, want %d: %w", name, len(x), want, ErrDimension))
	}

	return nil
}
