// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/closed/shape/alias checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Open → Shape → Alias).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed nil *Dense.
//
// Returns ErrNilMatrix if m == nil.
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateOpen ensures a *Dense has not been closed; other implementations pass.
// Assumes m is non-nil.
func ValidateOpen(m Matrix) error {
	if d, ok := m.(*Dense); ok && d.closed {
		return validatorErrorf("ValidateOpen", ErrClosed)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateProduct checks every precondition of C = A × B written into c.
//
// Implementation:
//   - Stage 1: all three operands non-nil.
//   - Stage 2: all three operands open.
//   - Stage 3: a.Cols == b.Rows and c is a.Rows × b.Cols.
//   - Stage 4: c shares no storage with a or b (the product reads operands while writing c).
//
// Errors:
//   - ErrNilMatrix, ErrClosed, ErrDimensionMismatch, ErrAliasedOutput (in that priority).
//
// Complexity:
//   - Time O(1), Space O(1).
func ValidateProduct(a, b, c Matrix) error {
	const tag = "ValidateProduct"
	for _, m := range []Matrix{a, b, c} {
		if err := ValidateNotNil(m); err != nil {
			return validatorErrorf(tag, err)
		}
	}
	for _, m := range []Matrix{a, b, c} {
		if err := ValidateOpen(m); err != nil {
			return validatorErrorf(tag, err)
		}
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return validatorErrorf(tag, err)
	}
	if c.Rows() != a.Rows() || c.Cols() != b.Cols() {
		return validatorErrorf(tag, ErrDimensionMismatch)
	}
	if dc, ok := c.(*Dense); ok {
		if da, okA := a.(*Dense); okA && dc.sharesStorage(da) {
			return validatorErrorf(tag, ErrAliasedOutput)
		}
		if db, okB := b.(*Dense); okB && dc.sharesStorage(db) {
			return validatorErrorf(tag, ErrAliasedOutput)
		}
	}

	return nil
}
