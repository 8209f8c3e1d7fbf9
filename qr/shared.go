// SPDX-License-Identifier: MIT

// Package qr - concurrent access wrapper.
//
// One sync.RWMutex: writers take the exclusive lock, readers the shared
// lock. Readers only ever observe committed states.

package qr

import (
	"sync"

	"github.com/katalvlaran/qrupdate/matrix"
)

// Shared guards a Factorization for use from several goroutines.
type Shared[T matrix.Scalar] struct {
	mu sync.RWMutex
	f  *Factorization[T]
}

// NewShared takes ownership of f; the caller must not use f afterwards.
func NewShared[T matrix.Scalar](f *Factorization[T]) *Shared[T] {
	return &Shared[T]{f: f}
}

// Do runs fn under the exclusive lock. fn must not retain f.
func (s *Shared[T]) Do(fn func(f *Factorization[T]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.f)
}

// Snapshot returns a deep copy of the current committed state.
func (s *Shared[T]) Snapshot() *Factorization[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.f.Clone()
}

// Dims returns the current dimensions.
func (s *Shared[T]) Dims() (m, n, k int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.f.Dims()
}

// Solve runs a least-squares solve under the shared lock.
func (s *Shared[T]) Solve(b []T) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.f.Solve(b)
}

// Update applies a rank-one update under the exclusive lock.
func (s *Shared[T]) Update(u, v []T) error {
	return s.Do(func(f *Factorization[T]) error { return f.Update(u, v) })
}

// InsertCol inserts a column under the exclusive lock.
func (s *Shared[T]) InsertCol(u []T, j int) error {
	return s.Do(func(f *Factorization[T]) error { return f.InsertCol(u, j) })
}

// DeleteCol deletes a column under the exclusive lock.
func (s *Shared[T]) DeleteCol(j int) error {
	return s.Do(func(f *Factorization[T]) error { return f.DeleteCol(j) })
}

// InsertRow inserts a row under the exclusive lock.
func (s *Shared[T]) InsertRow(u []T, j int) error {
	return s.Do(func(f *Factorization[T]) error { return f.InsertRow(u, j) })
}

// DeleteRow deletes a row under the exclusive lock.
func (s *Shared[T]) DeleteRow(j int) error {
	return s.Do(func(f *Factorization[T]) error { return f.DeleteRow(j) })
}

// ShiftCols shifts columns under the exclusive lock.
func (s *Shared[T]) ShiftCols(i, j int) error {
	return s.Do(func(f *Factorization[T]) error { return f.ShiftCols(i, j) })
}
