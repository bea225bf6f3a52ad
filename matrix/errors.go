// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions; panics are reserved for invalid Option values.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with an operation tag via matrixErrorf at the
// detection site; callers match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> closed -> shape/index/NaN -> dimension mismatch -> aliasing -> allocation.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Multiply where a.Cols != b.Rows or the output has the wrong shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNilSource indicates that Fill was called without a random source.
	ErrNilSource = errors.New("matrix: nil random source")

	// ErrClosed is returned by any access to a Dense after Close released its storage.
	ErrClosed = errors.New("matrix: use of closed matrix")

	// ErrAliasedOutput signals that the output of a product shares storage with an operand.
	ErrAliasedOutput = errors.New("matrix: output aliases an operand")

	// ErrOutOfMemory is returned when a buffer cannot be sized or obtained:
	// element count overflow, a configured byte limit, or a failed mapping.
	ErrOutOfMemory = errors.New("matrix: out of memory")

	// ErrUnknownKernel rejects a Kernel value or name outside the supported set.
	ErrUnknownKernel = errors.New("matrix: unknown kernel")

	// ErrUnknownStorage rejects a Storage value or name outside the supported set.
	ErrUnknownStorage = errors.New("matrix: unknown storage")

	// ErrVerifyFailed reports that a product disagrees with the reference result.
	ErrVerifyFailed = errors.New("matrix: verification failed")
)
