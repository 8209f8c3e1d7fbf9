// SPDX-License-Identifier: MIT

package qr

import (
	"context"
	"fmt"
	"runtime"

	"github.com/katalvlaran/qrupdate/matrix"
	"golang.org/x/sync/errgroup"
)

// FactorizeAll factorizes independent matrices in parallel.
// Behavior highlights:
//   - Results keep the order of as.
//   - Cancellation is checked before each factorization starts; a running
//     factorization is never interrupted.
//   - The first error wins and is returned wrapped with the matrix index;
//     no partial result is returned.
//   - Concurrency is bounded by GOMAXPROCS.
func FactorizeAll[T matrix.Scalar](ctx context.Context, as []*matrix.Dense[T], mode Mode, opts ...Option) ([]*Factorization[T], error) {
	out := make([]*Factorization[T], len(as))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, a := range as {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f, err := Factorize(a, mode, opts...)
			if err != nil {
				return fmt.Errorf("matrix %d: %w", i, err)
			}
			out[i] = f

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
