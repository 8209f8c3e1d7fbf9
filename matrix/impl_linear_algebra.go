// SPDX-License-Identifier: MIT
// Package matrix provides dense kernels over Dense[T]: products, conjugate
// transpose, differences, matrix-vector products and norms. All functions
// perform strict fail-fast validation and return fresh results; inputs are
// never mutated.
//
// Notes:
//   - Kernels operate on the flat row-major buffers directly.
//   - All kernels use the central validators and wrap via matrixErrorf.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opConjTranspose = "ConjTranspose"
	opScale         = "Scale"
	opMatVec        = "MatVec"
	opConjMatVec    = "ConjMatVec"
	opAddOuter      = "AddOuter"
)

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (via ValidateSameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[T Scalar](a, b *Dense[T], sign T, opTag string) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := newDense[T](a.r, a.c, a.validateNaNInf)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// Complexity: O(r*c).
func Add[T Scalar](a, b *Dense[T]) (*Dense[T], error) {
	return addSub(a, b, FromReal[T](1), opAdd)
}

// Sub computes the element-wise difference C = A − B.
// Complexity: O(r*c).
func Sub[T Scalar](a, b *Dense[T]) (*Dense[T], error) {
	return addSub(a, b, FromReal[T](-1), opSub)
}

// Mul computes the matrix product C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate r×c result.
//   - Stage 2: i→k→j loop order so the inner loop streams rows of B and C.
//
// Behavior highlights:
//   - Empty inner dimension (a.Cols == 0) yields the zero matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Scalar](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	r, n, c := a.r, a.c, b.c
	res := newDense[T](r, c, a.validateNaNInf)
	var i, k, j int
	var aik T
	var rowC, rowB []T
	for i = 0; i < r; i++ {
		rowC = res.data[i*c : (i+1)*c]
		for k = 0; k < n; k++ {
			aik = a.data[i*n+k]
			if aik == 0 {
				continue
			}
			rowB = b.data[k*c : (k+1)*c]
			for j = 0; j < c; j++ {
				rowC[j] += aik * rowB[j]
			}
		}
	}

	return res, nil
}

// ConjTranspose returns Aᴴ (plain transpose for float64).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func ConjTranspose[T Scalar](a *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opConjTranspose, err)
	}
	res := newDense[T](a.c, a.r, a.validateNaNInf)
	var i, j int
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			res.data[j*a.r+i] = Conj(a.data[i*a.c+j])
		}
	}

	return res, nil
}

// Scale returns alpha*A.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Scale[T Scalar](a *Dense[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newDense[T](a.r, a.c, a.validateNaNInf)
	for idx, v := range a.data {
		res.data[idx] = alpha * v
	}

	return res, nil
}

// MatVec computes y = A·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols).
// Complexity: O(r*c).
func MatVec[T Scalar](a *Dense[T], x []T) ([]T, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, a.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]T, a.r)
	var i, j int
	var s T
	var row []T
	for i = 0; i < a.r; i++ {
		row = a.data[i*a.c : (i+1)*a.c]
		s = 0
		for j = 0; j < a.c; j++ {
			s += row[j] * x[j]
		}
		y[i] = s
	}

	return y, nil
}

// ConjMatVec computes y = Aᴴ·x without materializing Aᴴ.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Rows).
// Complexity: O(r*c).
func ConjMatVec[T Scalar](a *Dense[T], x []T) ([]T, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opConjMatVec, err)
	}
	if err := ValidateVecLen(x, a.r); err != nil {
		return nil, matrixErrorf(opConjMatVec, err)
	}
	y := make([]T, a.c)
	var i, j int
	var row []T
	for i = 0; i < a.r; i++ {
		row = a.data[i*a.c : (i+1)*a.c]
		for j = 0; j < a.c; j++ {
			y[j] += Conj(row[j]) * x[i]
		}
	}

	return y, nil
}

// AddOuter returns A + u·vᴴ.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(u) != Rows or len(v) != Cols).
// Complexity: O(r*c).
func AddOuter[T Scalar](a *Dense[T], u, v []T) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAddOuter, err)
	}
	if err := ValidateVecLen(u, a.r); err != nil {
		return nil, matrixErrorf(opAddOuter, err)
	}
	if err := ValidateVecLen(v, a.c); err != nil {
		return nil, matrixErrorf(opAddOuter, err)
	}
	res := a.Clone()
	var i, j int
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			res.data[i*a.c+j] += u[i] * Conj(v[j])
		}
	}

	return res, nil
}

// FrobeniusNorm returns ‖A‖_F with overflow-safe accumulation.
// A nil or empty matrix has norm 0.
// Complexity: O(r*c).
func FrobeniusNorm[T Scalar](a *Dense[T]) float64 {
	if a == nil {
		return 0
	}

	return Norm2(a.data)
}

// MaxAbs returns max |A[i,j]| (0 for nil or empty).
// Complexity: O(r*c).
func MaxAbs[T Scalar](a *Dense[T]) float64 {
	if a == nil {
		return 0
	}
	var m float64
	for _, v := range a.data {
		m = math.Max(m, Abs(v))
	}

	return m
}
