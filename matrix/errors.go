// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Kernels return these
// sentinels wrapped with an operation tag and tests check them via errors.Is.
// No exported function panics on user-triggered error conditions; panics are
// reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Wrap with
// fmt.Errorf("ctx: %w", ErrX) at the detection site; callers use errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> closed -> shape/index -> operand compatibility.

var (
	// ErrInvalidShape is returned when a requested shape is not positive
	// (rows<=0 or cols<=0) or when row data is ragged.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid bounds.
	// At/Set MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrShapeMismatch indicates incompatible operand shapes, e.g. Add/Sub with
	// different shapes, or Mul where a.Cols != b.Rows.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrClosed indicates use of a matrix after Close released its buffer.
	ErrClosed = errors.New("matrix: matrix is closed")

	// ErrNoOperands is returned by folding facades (SumAll, ProductAll) called
	// without any operand.
	ErrNoOperands = errors.New("matrix: no operands")
)
