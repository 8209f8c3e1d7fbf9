// Package qr maintains a dense QR factorization A = Q·R under structural
// edits of A without refactorizing from scratch.
//
// A factorization is created by Factorize (portable Householder kernel),
// FactorizeWith (injected Kernel, e.g. GonumKernel backed by gonum's LAPACK)
// or New (precomputed factors). It can then be driven by:
//
//   - Update / UpdateBatch: rank-one updates A + u·vᴴ;
//   - InsertCol / InsertCols, DeleteCol / DeleteCols: column edits;
//   - InsertRow / DeleteRow: row edits (square Q only);
//   - ShiftCols: cyclic move of one column.
//
// Each operator validates its arguments first, computes on private copies of
// Q and R and commits by swapping them in, so an error always leaves the
// previous state intact. Numerically singular results are reported through
// SingularityWarning (LastWarning, the logger and an optional handler) and
// never abort the operation.
//
// Solve returns least-squares solutions from the maintained factors.
// Shared and FactorizeAll cover concurrent use.
//
// Elements are float64 or complex128 (matrix.Scalar).
package qr
