// SPDX-License-Identifier: MIT
// Package qr_test contains test helpers
//
// Purpose:
//   - Deterministic random fixtures for real and complex matrices.
//   - One assertion (RequireQR) for the three factorization invariants.

package qr_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qrupdate/matrix"
	"github.com/katalvlaran/qrupdate/qr"
	"github.com/stretchr/testify/require"
)

// tolQR is the relative tolerance used by reconstruction and orthogonality checks.
const tolQR = 1e-10

// RandomDense returns an r×c matrix with entries in [-1,1) (both parts for complex).
func RandomDense[T matrix.Scalar](t testing.TB, r, c int, seed int64) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewZeros[T](r, c)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	switch d := any(m.RawData()).(type) {
	case []float64:
		for i := range d {
			d[i] = 2*rng.Float64() - 1
		}
	case []complex128:
		for i := range d {
			d[i] = complex(2*rng.Float64()-1, 2*rng.Float64()-1)
		}
	}

	return m
}

// RandomVec returns a deterministic random vector of length n.
func RandomVec[T matrix.Scalar](t testing.TB, n int, seed int64) []T {
	t.Helper()
	if n == 0 {
		return []T{}
	}
	m := RandomDense[T](t, n, 1, seed)

	return m.RawData()
}

// MustFromRows builds a Dense from a literal or fails the test.
func MustFromRows[T matrix.Scalar](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustFactorize factorizes a or fails the test.
func MustFactorize[T matrix.Scalar](t testing.TB, a *matrix.Dense[T], mode qr.Mode, opts ...qr.Option) *qr.Factorization[T] {
	t.Helper()
	f, err := qr.Factorize(a, mode, opts...)
	require.NoError(t, err)

	return f
}

// RequireClose asserts equal shapes and max|want-got| <= tol·max(1, max|want|).
func RequireClose[T matrix.Scalar](t testing.TB, want, got *matrix.Dense[T], tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	diff, err := matrix.Sub(want, got)
	require.NoError(t, err)
	scale := max(1, matrix.MaxAbs(want))
	require.LessOrEqualf(t, matrix.MaxAbs(diff), tol*scale, "want\n%v\ngot\n%v", want, got)
}

// RequireQR asserts Q·R ≈ a, QᴴQ ≈ I and exact zeros below the diagonal of R.
func RequireQR[T matrix.Scalar](t testing.TB, f *qr.Factorization[T], a *matrix.Dense[T]) {
	t.Helper()
	require.NoError(t, f.Validate(tolQR))
	res, err := f.Residual(a)
	require.NoError(t, err)
	require.LessOrEqual(t, res, tolQR, "relative residual")
	got, err := f.Reconstruct()
	require.NoError(t, err)
	RequireClose(t, a, got, tolQR)
}

// RequireSameState asserts bit-identical factors.
func RequireSameState[T matrix.Scalar](t testing.TB, want, got *qr.Factorization[T]) {
	t.Helper()
	require.True(t, want.Q().Equal(got.Q()), "Q changed")
	require.True(t, want.R().Equal(got.R()), "R changed")
}

// column returns a copy of column j of a.
func column[T matrix.Scalar](t testing.TB, a *matrix.Dense[T], j int) []T {
	t.Helper()
	c, err := a.Col(j)
	require.NoError(t, err)

	return c
}
