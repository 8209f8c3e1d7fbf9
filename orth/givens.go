// SPDX-License-Identifier: MIT

// Package orth - plane (Givens) rotations.
//
// A rotation acting on coordinates (p, q) is
//
//	G = [  c        s ]
//	    [ -conj(s)  c ]
//
// with c real and c² + |s|² = 1. NewGivens picks c, s so that
// G·[a; b] = [r; 0]. For float64 the coefficients come from gonum's
// Dlartg; the complex branch follows the same scaling-free formula
// with the phase of a carried into s and r.

package orth

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qrupdate/matrix"
	"gonum.org/v1/gonum/lapack/gonum"
)

// impl is the stateless gonum LAPACK implementation.
var impl gonum.Implementation

// Givens is a 2×2 unitary rotation with real cosine C and sine S.
type Givens[T matrix.Scalar] struct {
	C float64
	S T
}

// NewGivens returns the rotation G with G·[a; b] = [r; 0] together with r.
//
// Behavior highlights:
//   - b == 0 yields the identity rotation and r == a.
//   - a == 0 yields c == 0 and |r| == |b|.
//   - For complex input r carries the phase of a.
//
// Complexity: O(1).
func NewGivens[T matrix.Scalar](a, b T) (Givens[T], T) {
	switch av := any(a).(type) {
	case float64:
		bv := any(b).(float64)
		cs, sn, r := impl.Dlartg(av, bv)

		return Givens[T]{C: cs, S: any(sn).(T)}, any(r).(T)
	case complex128:
		g, r := complexGivens(av, any(b).(complex128))

		return Givens[T]{C: g.C, S: any(g.S).(T)}, any(r).(T)
	}

	return Givens[T]{C: 1}, a
}

func complexGivens(a, b complex128) (Givens[complex128], complex128) {
	absB := cmplx.Abs(b)
	if absB == 0 {
		return Givens[complex128]{C: 1}, a
	}
	absA := cmplx.Abs(a)
	if absA == 0 {
		return Givens[complex128]{C: 0, S: cmplx.Conj(b) / complex(absB, 0)}, complex(absB, 0)
	}
	norm := math.Hypot(absA, absB)
	phase := a / complex(absA, 0)

	return Givens[complex128]{
		C: absA / norm,
		S: phase * cmplx.Conj(b) / complex(norm, 0),
	}, phase * complex(norm, 0)
}

// Apply returns G·[x; y].
func (g Givens[T]) Apply(x, y T) (T, T) {
	c := matrix.FromReal[T](g.C)

	return c*x + g.S*y, c*y - matrix.Conj(g.S)*x
}

// ApplyRows replaces rows (p, q) of m by G·[row_p; row_q], touching only
// columns from..Cols-1. Indices are trusted.
// Complexity: O(Cols - from).
func (g Givens[T]) ApplyRows(m *matrix.Dense[T], p, q, from int) {
	c := matrix.FromReal[T](g.C)
	cs := matrix.Conj(g.S)
	n := m.Cols()
	data := m.RawData()
	rp := data[p*n : (p+1)*n]
	rq := data[q*n : (q+1)*n]
	var x, y T
	for j := from; j < n; j++ {
		x, y = rp[j], rq[j]
		rp[j] = c*x + g.S*y
		rq[j] = c*y - cs*x
	}
}

// ApplyCols replaces columns (p, q) of m by the corresponding columns of
// m·Gᴴ, so that m·Gᴴ·G·R keeps the product unchanged when ApplyRows was
// applied to R with the same rotation. Indices are trusted.
// Complexity: O(Rows).
func (g Givens[T]) ApplyCols(m *matrix.Dense[T], p, q int) {
	c := matrix.FromReal[T](g.C)
	cs := matrix.Conj(g.S)
	n := m.Cols()
	data := m.RawData()
	var x, y T
	for i := 0; i < m.Rows(); i++ {
		x, y = data[i*n+p], data[i*n+q]
		data[i*n+p] = c*x + cs*y
		data[i*n+q] = c*y - g.S*x
	}
}

// ApplyVec rotates entries (p, q) of x in place.
func (g Givens[T]) ApplyVec(x []T, p, q int) {
	x[p], x[q] = g.Apply(x[p], x[q])
}
