// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/closed/shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their own operation tag.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Open → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports whether m is a nil interface or a typed nil *Dense.
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return true
	}

	return false
}

// isClosed reports whether m is a *Dense released by Close.
func isClosed(m Matrix) bool {
	d, ok := m.(*Dense)

	return ok && d.closed.Load()
}

// ValidateNotNil ensures the matrix reference is non-nil (typed nil *Dense included).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateOpen ensures m is non-nil and, for *Dense, not closed.
// Complexity: O(1).
func ValidateOpen(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateOpen", ErrNilMatrix)
	}
	if isClosed(m) {
		return validatorErrorf("ValidateOpen", ErrClosed)
	}

	return nil
}

// ValidateShape ensures rows >= 1 and cols >= 1.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("ValidateShape(%d,%d): %w", rows, cols, ErrInvalidShape)
	}

	return nil
}

// validateOperand checks that m is open and reports a valid shape. Matrices
// that are not *Dense cannot be probed for Close, so a wrapper around a closed
// *Dense surfaces here as a 0x0 shape.
func validateOperand(m Matrix) error {
	if err := ValidateOpen(m); err != nil {
		return err
	}

	return ValidateShape(m.Rows(), m.Cols())
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return fmt.Errorf("ValidateSameShape(%s vs %s): %w", ShapeOf(a), ShapeOf(b), ErrShapeMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: Open+Shape(a) → Open+Shape(b) → SameShape.
// Errors: ErrNilMatrix, ErrClosed, ErrInvalidShape, ErrShapeMismatch.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := validateOperand(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := validateOperand(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs open with valid shapes.
// Errors: ErrNilMatrix, ErrClosed, ErrInvalidShape, ErrShapeMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := validateOperand(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := validateOperand(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return fmt.Errorf("ValidateMulCompatible(%s × %s): %w", ShapeOf(a), ShapeOf(b), ErrShapeMismatch)
	}

	return nil
}
