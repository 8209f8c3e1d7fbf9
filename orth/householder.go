// SPDX-License-Identifier: MIT

// Package orth - elementary (Householder) reflectors.
//
// A reflector is H = I - tau·v·vᴴ with v[0] == 1. NewHouseholder chooses
// v, tau and a real beta such that Hᴴ·x = beta·e0, following the LAPACK
// xLARFG convention: tau is 0 when x is already a real multiple of e0,
// otherwise 1 <= Re(tau) <= 2 and |tau - 1| <= 1.
//
// Factorization kernels store v[1:] below the diagonal of the packed matrix
// and tau separately; FromPacked rebuilds the reflector from that storage.

package orth

import (
	"math"

	"github.com/katalvlaran/qrupdate/matrix"
)

// Householder is an elementary reflector H = I - Tau·V·Vᴴ (V[0] == 1).
type Householder[T matrix.Scalar] struct {
	V    []T
	Tau  T
	Beta float64
}

// NewHouseholder builds the reflector that annihilates x[1:].
//
// Implementation:
//   - Stage 1: alpha = x[0], xnorm = ‖x[1:]‖ (overflow-safe).
//   - Stage 2: if xnorm == 0 and alpha is real, H = I (tau = 0, beta = alpha).
//   - Stage 3: beta = -sign(Re alpha)·‖x‖, tau = (beta - alpha)/beta,
//     v[1:] = x[1:]/(alpha - beta).
//
// Behavior highlights:
//   - x is not modified.
//   - An empty x yields the identity reflector of size 0.
//
// Complexity: O(len(x)).
func NewHouseholder[T matrix.Scalar](x []T) Householder[T] {
	if len(x) == 0 {
		return Householder[T]{}
	}
	v := make([]T, len(x))
	v[0] = 1
	alpha := x[0]
	xnorm := matrix.Norm2(x[1:])
	alphr := matrix.Real(alpha)
	alphi := 0.0
	if c, ok := any(alpha).(complex128); ok {
		alphi = imag(c)
	}
	if xnorm == 0 && alphi == 0 {
		return Householder[T]{V: v, Beta: alphr}
	}

	beta := -math.Copysign(hypot3(alphr, alphi, xnorm), alphr)
	bt := matrix.FromReal[T](beta)
	tau := (bt - alpha) / bt
	scal := 1 / (alpha - bt)
	for i := 1; i < len(x); i++ {
		v[i] = x[i] * scal
	}

	return Householder[T]{V: v, Tau: tau, Beta: beta}
}

// FromPacked wraps a stored reflector: v[0] is forced to 1 on a copy.
func FromPacked[T matrix.Scalar](v []T, tau T) Householder[T] {
	cp := make([]T, len(v))
	copy(cp, v)
	if len(cp) > 0 {
		cp[0] = 1
	}

	return Householder[T]{V: cp, Tau: tau}
}

// ApplyLeft overwrites the block m[r0:r0+len(V), c0:] with H·block.
// Indices are trusted; a zero Tau is a no-op.
// Complexity: O(len(V)·(Cols-c0)).
func (h Householder[T]) ApplyLeft(m *matrix.Dense[T], r0, c0 int) {
	h.applyLeft(m, r0, c0, h.Tau)
}

// ApplyLeftH overwrites the block m[r0:r0+len(V), c0:] with Hᴴ·block.
func (h Householder[T]) ApplyLeftH(m *matrix.Dense[T], r0, c0 int) {
	h.applyLeft(m, r0, c0, matrix.Conj(h.Tau))
}

// applyLeft computes block -= tau·v·(vᴴ·block) column by column.
func (h Householder[T]) applyLeft(m *matrix.Dense[T], r0, c0 int, tau T) {
	if tau == 0 {
		return
	}
	n := m.Cols()
	data := m.RawData()
	var s T
	var i, j int
	for j = c0; j < n; j++ {
		s = 0
		for i = range h.V {
			s += matrix.Conj(h.V[i]) * data[(r0+i)*n+j]
		}
		if s == 0 {
			continue
		}
		s *= tau
		for i = range h.V {
			data[(r0+i)*n+j] -= h.V[i] * s
		}
	}
}

// hypot3 returns sqrt(a²+b²+c²) without intermediate overflow.
func hypot3(a, b, c float64) float64 {
	return math.Hypot(math.Hypot(a, b), c)
}
