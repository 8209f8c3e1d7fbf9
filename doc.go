// Package qrupdate keeps a dense QR factorization A = Q·R in step with
// edits to A, without refactorizing from scratch.
//
// What is in the box?
//
//	A small, generic (float64 | complex128) toolkit organized in three packages:
//		• matrix: row-major Dense[T], structural edits, products and norms
//		• orth:   Givens rotations and Householder reflectors
//		• qr:     factorization, update operators, validator, solver
//
// Supported edits:
//
//   - rank-one update            A + u·vᴴ                (Update, UpdateBatch)
//   - column insertion/deletion  one or many columns     (InsertCol(s), DeleteCol(s))
//   - row insertion/deletion     full-mode bases only    (InsertRow, DeleteRow)
//   - cyclic column shift        move column i to j      (ShiftCols)
//
// Every operator either commits a consistent new state or returns a typed
// error and leaves the previous state untouched. Numerically singular
// results are reported as a SingularityWarning, not as an error.
//
// Quick start:
//
//	a, _ := matrix.FromRows([][]float64{{1, 0}, {0, 1}, {1, 1}})
//	f, _ := qr.Factorize(a, qr.Economy)
//	_ = f.DeleteCol(0)      // Q: 3×1, R: 1×1
//	_ = f.InsertCol(u, 0)   // back to 3×2
//
// Runnable programs live under examples/ (drift plotting, sliding-window
// least squares).
package qrupdate
