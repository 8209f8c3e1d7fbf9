// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/qrupdate/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDense[float64](0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense[complex128](5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewZeros[float64](-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewZerosEmpty verifies that empty shapes are legal through NewZeros.
func TestNewZerosEmpty(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewZeros[float64](4, 0)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 4, r)
	require.Equal(t, 0, c)
	require.Empty(t, m.RawData())
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	t.Parallel()

	m := MustDense[float64](t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrIndexOutOfBounds) // alias
}

// TestSetNaNPolicy checks that the finite-only policy is on by default and can be disabled.
func TestSetNaNPolicy(t *testing.T) {
	t.Parallel()

	strict := MustDense[complex128](t, 1, 1)
	require.ErrorIs(t, strict.Set(0, 0, cmplx.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.SetRow(0, []complex128{cmplx.Inf()}), matrix.ErrNaNInf)

	loose, err := matrix.NewDense[float64](1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.False(t, loose.ValidatesNaNInf())
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))
	require.False(t, loose.Clone().ValidatesNaNInf(), "Clone preserves policy")
}

// TestFromRows covers the literal constructor and its failure modes.
func TestFromRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    [][]float64
		wantErr error
	}{
		{"ok", [][]float64{{1, 2}, {3, 4}}, nil},
		{"empty", nil, matrix.ErrInvalidDimensions},
		{"ragged", [][]float64{{1, 2}, {3}}, matrix.ErrRagged},
		{"nan", [][]float64{{1, math.NaN()}}, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matrix.FromRows(tc.rows)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, 4.0, MustAt(t, m, 1, 1))
		})
	}
}

// TestRowColAccessors validates the copying row/column accessors.
func TestRowColAccessors(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)
	row[0] = 99
	require.Equal(t, 4.0, MustAt(t, m, 1, 0), "Row must return a copy")

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)

	require.NoError(t, m.SetCol(0, []float64{7, 8}))
	require.Equal(t, 8.0, MustAt(t, m, 1, 0))
	require.ErrorIs(t, m.SetRow(0, []float64{1}), matrix.ErrDimensionMismatch)
	_, err = m.Col(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]complex128{{1 + 1i, 2}, {3, 4 - 2i}})
	clone := m.Clone()
	require.True(t, m.Equal(clone))

	require.NoError(t, clone.Set(0, 0, 5))
	require.Equal(t, 1+1i, MustAt(t, m, 0, 0))
	require.False(t, m.Equal(clone))
}

// TestResizePreserves checks grow and shrink keep the overlapping block.
func TestResizePreserves(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, m.Resize(3, 3))
	RequireClose(t, MustFromRows(t, [][]float64{{1, 2, 0}, {3, 4, 0}, {0, 0, 0}}), m, 0)

	require.NoError(t, m.Resize(1, 2))
	RequireClose(t, MustFromRows(t, [][]float64{{1, 2}}), m, 0)

	require.NoError(t, m.Resize(0, 2))
	require.Equal(t, 0, m.Rows())
	require.ErrorIs(t, m.Resize(-1, 1), matrix.ErrInvalidDimensions)
}

// TestIdentity checks the diagonal pattern for both scalar kinds.
func TestIdentity(t *testing.T) {
	t.Parallel()

	I, err := matrix.NewIdentity[complex128](3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			require.Equal(t, want, MustAt(t, I, i, j))
		}
	}

	empty, err := matrix.NewIdentity[float64](0)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
}

// TestEqualNil covers nil handling in Equal.
func TestEqualNil(t *testing.T) {
	t.Parallel()

	var a, b *matrix.Dense[float64]
	require.True(t, a.Equal(b))
	require.False(t, MustDense[float64](t, 1, 1).Equal(nil))
	require.False(t, MustDense[float64](t, 1, 2).Equal(MustDense[float64](t, 2, 1)))
}

// TestString produces one bracketed line per row.
func TestString(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
