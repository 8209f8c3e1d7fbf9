// Package orth provides the unitary building blocks of the QR engine:
// Givens plane rotations and Householder reflectors over float64 and
// complex128 Dense matrices.
//
// Both types operate in place on matrix.Dense storage and trust their
// indices; callers validate once at the public boundary. The float64
// rotation coefficients come from gonum's LAPACK Dlartg.
package orth
