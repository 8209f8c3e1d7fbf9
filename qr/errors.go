// SPDX-License-Identifier: MIT
// Package qr: sentinel error set.
// Every operator returns one of these sentinels wrapped with an operation tag
// ("qr.InsertCol: ...: %w"); callers match with errors.Is. Structural
// failures are detected before any mutation, so an error always leaves the
// factorization exactly as it was.

package qr

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qrupdate/matrix"
)

// ERROR PRIORITY (documented, enforced in tests):
// mode -> duplicates -> shape -> dimensions -> finiteness -> indices.

var (
	// ErrDimension indicates a vector or matrix argument whose length or
	// shape does not match the factorization. It wraps
	// matrix.ErrDimensionMismatch.
	ErrDimension = fmt.Errorf("qr: dimension mismatch: %w", matrix.ErrDimensionMismatch)

	// ErrIndexOutOfRange indicates a row or column index outside its valid
	// range. It wraps matrix.ErrOutOfRange.
	ErrIndexOutOfRange = fmt.Errorf("qr: index out of range: %w", matrix.ErrOutOfRange)

	// ErrDuplicateIndex indicates a repeated index in a batch operation.
	ErrDuplicateIndex = errors.New("qr: duplicate index")

	// ErrShape indicates an operation that is not defined for the current
	// factor shapes, e.g. row edits on an economy factorization.
	ErrShape = errors.New("qr: operation not defined for the current shape")

	// ErrShapeMismatch indicates inconsistent Q and R passed to New.
	ErrShapeMismatch = errors.New("qr: Q and R shapes are inconsistent")

	// ErrUnsupportedMode indicates an unknown Mode or an operation that the
	// factorization's mode does not support.
	ErrUnsupportedMode = errors.New("qr: unsupported mode")

	// ErrInvariant indicates that the self-check found a broken invariant.
	ErrInvariant = errors.New("qr: factorization invariant violated")

	// ErrSingular indicates a zero (or negligible) pivot in a triangular solve.
	ErrSingular = errors.New("qr: R is singular")
)

// Operation name constants for unified error wrapping and log fields.
const (
	opFactorize  = "Factorize"
	opNew        = "New"
	opUpdate     = "Update"
	opUpdateMany = "UpdateBatch"
	opInsertCol  = "InsertCol"
	opInsertCols = "InsertCols"
	opDeleteCol  = "DeleteCol"
	opDeleteCols = "DeleteCols"
	opInsertRow  = "InsertRow"
	opDeleteRow  = "DeleteRow"
	opShiftCols  = "ShiftCols"
	opSolve      = "Solve"
	opValidate   = "Validate"
	opReconst    = "Reconstruct"
	opResidual   = "Residual"
)

// qrErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func qrErrorf(tag string, err error) error {
	return fmt.Errorf("qr.%s: %w", tag, err)
}
