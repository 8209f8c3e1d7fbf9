package qr_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/qrupdate/matrix"
	"github.com/katalvlaran/qrupdate/qr"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var shapes = []struct{ m, n int }{
	{1, 1}, {3, 3}, {6, 4}, {4, 6}, {7, 1}, {1, 5},
}

func TestFactorize_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, mode := range []qr.Mode{qr.Full, qr.Economy} {
		for idx, s := range shapes {
			mode, s, seed := mode, s, int64(idx+1)
			t.Run(fmt.Sprintf("%s/%dx%d", mode, s.m, s.n), func(t *testing.T) {
				t.Parallel()

				a := RandomDense[float64](t, s.m, s.n, seed)
				f := MustFactorize(t, a, mode)
				RequireQR(t, f, a)
				m, n, k := f.Dims()
				require.Equal(t, s.m, m)
				require.Equal(t, s.n, n)
				if mode == qr.Full {
					require.Equal(t, s.m, k)
				} else {
					require.Equal(t, min(s.m, s.n), k)
				}

				ac := RandomDense[complex128](t, s.m, s.n, seed)
				RequireQR(t, MustFactorize(t, ac, mode), ac)

				fg, err := qr.FactorizeWith[float64](qr.GonumKernel{}, a, mode)
				require.NoError(t, err)
				RequireQR(t, fg, a)
			})
		}
	}
}

// TestFactorize_KernelsAgree compares |diag R| of both kernels and gonum's mat.QR.
func TestFactorize_KernelsAgree(t *testing.T) {
	t.Parallel()

	a := RandomDense[float64](t, 6, 4, 42)
	f := MustFactorize(t, a, qr.Economy)
	fg, err := qr.FactorizeWith[float64](qr.GonumKernel{}, a, qr.Economy)
	require.NoError(t, err)

	var ref mat.QR
	ref.Factorize(mat.NewDense(6, 4, append([]float64(nil), a.RawData()...)))
	var rr mat.Dense
	ref.RTo(&rr)

	r1, r2 := f.R(), fg.R()
	for i := 0; i < 4; i++ {
		d1, _ := r1.At(i, i)
		d2, _ := r2.At(i, i)
		require.InDelta(t, math.Abs(rr.At(i, i)), math.Abs(d1), 1e-12)
		require.InDelta(t, math.Abs(d1), math.Abs(d2), 1e-12)
	}
}

func TestFactorize_Raw(t *testing.T) {
	t.Parallel()

	for _, s := range []struct{ m, n int }{{5, 3}, {3, 5}, {4, 4}} {
		s := s
		t.Run(fmt.Sprintf("%dx%d", s.m, s.n), func(t *testing.T) {
			t.Parallel()
			a := RandomDense[complex128](t, s.m, s.n, 9)
			raw := MustFactorize(t, a, qr.Raw)
			full := MustFactorize(t, a, qr.Full)

			m, n, k := raw.Dims()
			require.Equal(t, []int{s.m, s.n, min(s.m, s.n)}, []int{m, n, k})
			require.Nil(t, raw.Q())
			tau := raw.Tau()
			require.Len(t, tau, k)
			require.Nil(t, full.Tau())

			packed, r := raw.R(), full.R()
			for i := 0; i < s.m; i++ {
				for j := 0; j < s.n; j++ {
					pv, _ := packed.At(i, j)
					if i <= j {
						rv, _ := r.At(i, j)
						require.Equal(t, rv, pv, "upper part is R")
					}
				}
			}

			// Unscale the stored vectors and rebuild Q with the kernel.
			for j := 0; j < k; j++ {
				for i := j + 1; i < s.m; i++ {
					pv, _ := packed.At(i, j)
					if tau[j] != 0 {
						require.NoError(t, packed.Set(i, j, pv/tau[j]))
					}
				}
			}
			q, err := qr.HouseholderKernel[complex128]{}.FormQ(packed, tau, s.m)
			require.NoError(t, err)
			RequireClose(t, full.Q(), q, 1e-12)

			_, err = raw.Reconstruct()
			require.ErrorIs(t, err, qr.ErrUnsupportedMode)
		})
	}
}

func TestFactorize_Errors(t *testing.T) {
	t.Parallel()

	_, err := qr.Factorize[float64](nil, qr.Full)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	empty, err := matrix.NewZeros[float64](3, 0)
	require.NoError(t, err)
	_, err = qr.Factorize(empty, qr.Economy)
	require.ErrorIs(t, err, qr.ErrDimension)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	a := RandomDense[float64](t, 2, 2, 1)
	_, err = qr.Factorize(a, qr.Mode(7))
	require.ErrorIs(t, err, qr.ErrUnsupportedMode)
	require.Equal(t, "Mode(7)", qr.Mode(7).String())

	_, err = qr.HouseholderKernel[float64]{}.FormQ(a, []float64{0, 0}, 3)
	require.ErrorIs(t, err, qr.ErrDimension)
}

func TestNew(t *testing.T) {
	t.Parallel()

	a := RandomDense[float64](t, 5, 3, 3)
	src := MustFactorize(t, a, qr.Economy)

	f, err := qr.New(src.Q(), src.R())
	require.NoError(t, err)
	require.Equal(t, qr.Economy, f.Mode())
	RequireQR(t, f, a)

	full := MustFactorize(t, a, qr.Full)
	f, err = qr.New(full.Q(), full.R(), qr.WithSelfCheck(1e-10))
	require.NoError(t, err)
	require.Equal(t, qr.Full, f.Mode())

	_, err = qr.New(src.Q(), full.R())
	require.ErrorIs(t, err, qr.ErrShapeMismatch)
	_, err = qr.New(nil, src.R())
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	wide, err := matrix.NewZeros[float64](2, 3) // k > m
	require.NoError(t, err)
	r3, err := matrix.NewZeros[float64](3, 3)
	require.NoError(t, err)
	_, err = qr.New(wide, r3)
	require.ErrorIs(t, err, qr.ErrShapeMismatch)

	// Inputs are copied.
	q := src.Q()
	f, err = qr.New(q, src.R())
	require.NoError(t, err)
	require.NoError(t, q.Set(0, 0, 100))
	RequireQR(t, f, a)
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()

	a := RandomDense[float64](t, 4, 3, 5)
	f := MustFactorize(t, a, qr.Economy)
	cp := f.Clone()
	require.NoError(t, cp.DeleteCol(0))
	RequireQR(t, f, a)
	_, n, _ := cp.Dims()
	require.Equal(t, 2, n)
}
