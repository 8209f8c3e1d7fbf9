package qr_test

import (
	"context"
	"sync"
	"testing"

	"github.com/katalvlaran/qrupdate/matrix"
	"github.com/katalvlaran/qrupdate/qr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestShared_ConcurrentUpdates runs writers and readers together; readers
// must always observe a valid committed state.
func TestShared_ConcurrentUpdates(t *testing.T) {
	t.Parallel()

	const writers, perWriter = 4, 10
	a := RandomDense[float64](t, 8, 4, 1)
	s := qr.NewShared(MustFactorize(t, a, qr.Economy))

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				u := RandomVec[float64](t, 8, int64(w*100+i))
				v := RandomVec[float64](t, 4, int64(w*100+i+50))
				assert.NoError(t, s.Update(u, v))
			}
		}(w)
	}
	for r := 0; r < 2; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				snap := s.Snapshot()
				assert.NoError(t, snap.Validate(1e-9))
				_, err := s.Solve(make([]float64, 8))
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	m, n, k := s.Dims()
	require.Equal(t, []int{8, 4, 4}, []int{m, n, k})
}

func TestShared_StructuralOps(t *testing.T) {
	t.Parallel()

	a := RandomDense[float64](t, 4, 3, 9)
	s := qr.NewShared(MustFactorize(t, a, qr.Full))
	require.NoError(t, s.InsertCol([]float64{1, 2, 3, 4}, 1))
	require.NoError(t, s.ShiftCols(0, 3))
	require.NoError(t, s.DeleteCol(3))
	require.NoError(t, s.InsertRow([]float64{1, 1, 1}, 0))
	require.NoError(t, s.DeleteRow(0))
	require.NoError(t, s.Do(func(f *qr.Factorization[float64]) error {
		return f.Validate(1e-10)
	}))

	want, err := a.InsertCol(1, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	want, err = want.MoveCol(0, 3)
	require.NoError(t, err)
	want, err = want.DeleteCol(3)
	require.NoError(t, err)
	RequireQR(t, s.Snapshot(), want)
}

func TestFactorizeAll(t *testing.T) {
	t.Parallel()

	as := make([]*matrix.Dense[complex128], 6)
	for i := range as {
		as[i] = RandomDense[complex128](t, 5+i, 3, int64(i))
	}
	fs, err := qr.FactorizeAll(context.Background(), as, qr.Economy)
	require.NoError(t, err)
	require.Len(t, fs, len(as))
	for i, f := range fs {
		m, _, _ := f.Dims()
		require.Equal(t, 5+i, m, "order preserved")
		RequireQR(t, f, as[i])
	}
}

func TestFactorizeAll_Errors(t *testing.T) {
	t.Parallel()

	as := []*matrix.Dense[float64]{RandomDense[float64](t, 3, 3, 1), nil}
	_, err := qr.FactorizeAll(context.Background(), as, qr.Full)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.Contains(t, err.Error(), "matrix 1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = qr.FactorizeAll(ctx, as[:1], qr.Full)
	require.ErrorIs(t, err, context.Canceled)
}
