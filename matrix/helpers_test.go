// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for Dense kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qrupdate/matrix"
	"github.com/stretchr/testify/require"
)

// tolAlg is the absolute tolerance used by the algebra checks.
const tolAlg = 1e-12

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense[T matrix.Scalar](t testing.TB, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(t, err)

	return m
}

// MustFromRows builds a Dense from a literal or fails the test.
func MustFromRows[T matrix.Scalar](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T matrix.Scalar](t testing.TB, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandomFill writes deterministic pseudo-random values in [-1,1) into m.
// Complex matrices get independent real and imaginary parts.
func RandomFill[T matrix.Scalar](t testing.TB, m *matrix.Dense[T], seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := m.RawData()
	switch v := any(data).(type) {
	case []float64:
		for i := range v {
			v[i] = 2*rng.Float64() - 1
		}
	case []complex128:
		for i := range v {
			v[i] = complex(2*rng.Float64()-1, 2*rng.Float64()-1)
		}
	}
}

// RequireClose asserts shape equality and max|a-b| <= tol.
func RequireClose[T matrix.Scalar](t testing.TB, want, got *matrix.Dense[T], tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	diff, err := matrix.Sub(want, got)
	require.NoError(t, err)
	require.LessOrEqualf(t, matrix.MaxAbs(diff), tol, "want\n%v\ngot\n%v", want, got)
}
