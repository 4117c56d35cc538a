// SPDX-License-Identifier: MIT

// Package matrix provides a small dense matrix value type over int64 elements.
//
// The matrix package provides:
//
//   - Dense: a row-major matrix that exclusively owns its flat buffer
//     (element (i, j) lives at offset i*cols + j).
//   - Constructors for the default 3×3 shape, square shapes, filled
//     rectangular shapes, identity matrices and deep copies.
//   - Bounds-checked At/Set that return ErrIndexOutOfBounds instead of
//     panicking or returning sentinel values.
//   - Add, Sub and Mul returning fresh results or ErrShapeMismatch.
//   - Equal (shape + elements) and the size ordering Less/Greater/CompareSize.
//   - Registry: an atomic live-instance counter. Every successful
//     construction increments it; every Close decrements it exactly once.
//
// Lifetime:
//
//	m, err := matrix.NewSquare(4)
//	if err != nil {
//		return err
//	}
//	defer m.Close()
//
// A closed matrix rejects every operation with ErrClosed. Close is idempotent.
//
// Errors are plain sentinels wrapped with an operation tag; match them with
// errors.Is.
package matrix
