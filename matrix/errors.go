// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(op, err) at the
// detection site; callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape (mismatch / non-square) -> numeric (singular).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes: Add/Sub with
	// different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: only square matrices can be inverted")

	// ErrSingular is returned when a zero pivot is encountered during inversion.
	// Inverse does not reorder rows, so a zero on the diagonal at any stage
	// of the elimination is reported here even if the matrix is invertible.
	ErrSingular = errors.New("matrix: matrix is singular, no inverse exists")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf tolerance where a finite value is required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// Human-readable reasons attached to shape mismatches.
const (
	reasonAddSub = "dimensions do not match for addition/subtraction"
	reasonMul    = "left operand column count must equal right operand row count"
)
