// Package matrix offers the dense numeric containers used by the QR engine.
//
// The matrix package provides:
//
//   - Dense[T], a row-major matrix over float64 or complex128 with
//     bounds-checked accessors, a NaN/Inf numeric policy, resize-with-preserve
//     and copy-based structural edits (insert/delete rows and columns, column
//     moves).
//   - Kernels over Dense: Mul, ConjTranspose, Add/Sub, Scale, MatVec,
//     ConjMatVec, AddOuter and overflow-safe norms.
//   - Scalar helpers (Conj, Abs, FromReal, Dot, Norm2) so that every
//     algorithm is written once for real and complex data.
//
// Distinct Dense values never share storage: Clone, Resize and every
// structural edit allocate.
package matrix
