package matrix_test

import (
	"testing"

	"github.com/katalvlaran/qrupdate/matrix"
	"github.com/stretchr/testify/require"
)

func TestInsertDeleteCol(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	for j := 0; j <= m.Cols(); j++ {
		ins, err := m.InsertCol(j, []float64{9, 8})
		require.NoError(t, err)
		require.Equal(t, 3, ins.Cols())
		col, err := ins.Col(j)
		require.NoError(t, err)
		require.Equal(t, []float64{9, 8}, col)

		back, err := ins.DeleteCol(j)
		require.NoError(t, err)
		require.True(t, m.Equal(back), "delete undoes insert at %d", j)
	}

	_, err := m.InsertCol(3, []float64{1, 1})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.InsertCol(0, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = m.DeleteCol(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestInsertDeleteRow(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]complex128{{1, 2i}, {3, 4}})
	ins, err := m.InsertRow(1, []complex128{5, 6})
	require.NoError(t, err)
	RequireClose(t, MustFromRows(t, [][]complex128{{1, 2i}, {5, 6}, {3, 4}}), ins, 0)

	back, err := ins.DeleteRow(1)
	require.NoError(t, err)
	require.True(t, m.Equal(back))

	last, err := m.DeleteRow(1)
	require.NoError(t, err)
	RequireClose(t, MustFromRows(t, [][]complex128{{1, 2i}}), last, 0)

	_, err = m.InsertRow(-1, []complex128{0, 0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.DeleteRow(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestMoveCol(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{0, 1, 2, 3}})
	tests := []struct {
		name     string
		from, to int
		want     []float64
	}{
		{"left to right", 0, 2, []float64{1, 2, 0, 3}},
		{"right to left", 3, 1, []float64{0, 3, 1, 2}},
		{"noop", 2, 2, []float64{0, 1, 2, 3}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := m.MoveCol(tc.from, tc.to)
			require.NoError(t, err)
			row, err := got.Row(0)
			require.NoError(t, err)
			require.Equal(t, tc.want, row)
		})
	}

	_, err := m.MoveCol(0, 4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
