// SPDX-License-Identifier: MIT

// Package qr - full (from scratch) factorization.

package qr

import (
	"fmt"

	"github.com/katalvlaran/qrupdate/matrix"
)

// Factorize computes A = Q·R with the portable HouseholderKernel.
// See FactorizeWith for modes and errors.
func Factorize[T matrix.Scalar](a *matrix.Dense[T], mode Mode, opts ...Option) (*Factorization[T], error) {
	return FactorizeWith[T](HouseholderKernel[T]{}, a, mode, opts...)
}

// FactorizeWith computes A = Q·R with an injected kernel.
// MAIN DESCRIPTION:
//   - Factor a private copy of A, then shape the result by mode.
//
// Implementation:
//   - Stage 1: validate A (nil, empty) and mode.
//   - Stage 2: kernel.Factor on a clone (geqrf layout).
//   - Stage 3a (Full/Economy): Q = kernel.FormQ(cols), R = upper part (cols×n).
//   - Stage 3b (Raw): keep the packed array; scale each stored reflector
//     column j below the diagonal by tau[j].
//
// Behavior highlights:
//   - Full: Q m×m, R m×n. Economy: Q m×min(m,n), R min(m,n)×n.
//   - A is never modified. A nil kernel selects HouseholderKernel.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrUnsupportedMode, ErrDimension (m == 0 or n == 0),
//     matrix.ErrNaNInf, kernel errors, ErrInvariant (self-check).
//
// Complexity:
//   - Time O(m·n·min(m,n)) plus O(m²·min(m,n)) to form a full Q.
func FactorizeWith[T matrix.Scalar](kernel Kernel[T], a *matrix.Dense[T], mode Mode, opts ...Option) (*Factorization[T], error) {
	if a == nil {
		return nil, qrErrorf(opFactorize, matrix.ErrNilMatrix)
	}
	if !mode.valid() {
		return nil, qrErrorf(opFactorize, fmt.Errorf("%s: %w", mode, ErrUnsupportedMode))
	}
	m, n := a.Shape()
	if m == 0 || n == 0 {
		return nil, qrErrorf(opFactorize, fmt.Errorf("empty %dx%d matrix: %w", m, n, ErrDimension))
	}
	if err := checkFinite(opFactorize, "A", a.RawData()); err != nil {
		return nil, err
	}
	if kernel == nil {
		kernel = HouseholderKernel[T]{}
	}
	o := gatherOptions(opts...)

	packed := a.Clone()
	tau, err := kernel.Factor(packed)
	if err != nil {
		return nil, qrErrorf(opFactorize, err)
	}
	t := min(m, n)
	data := packed.RawData()

	f := &Factorization[T]{mode: mode, opts: o}
	if mode == Raw {
		var i, j int
		for j = 0; j < t; j++ {
			for i = j + 1; i < m; i++ {
				data[i*n+j] *= tau[j]
			}
		}
		f.r, f.tau = packed, tau
		f.logOp(opFactorize)

		return f, nil
	}

	cols := t
	if mode == Full {
		cols = m
	}
	q, err := kernel.FormQ(packed, tau, cols)
	if err != nil {
		return nil, qrErrorf(opFactorize, err)
	}
	r, err := matrix.NewZeros[T](cols, n)
	if err != nil {
		return nil, qrErrorf(opFactorize, err)
	}
	rd := r.RawData()
	for i := 0; i < t; i++ {
		copy(rd[i*n+i:(i+1)*n], data[i*n+i:(i+1)*n])
	}
	if err = f.commit(opFactorize, q, r, nil); err != nil {
		return nil, err
	}

	return f, nil
}
