// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels on any Matrix implementation:
// element-wise addition and subtraction, and matrix multiplication.
// All kernels perform fail-fast validation and return wrapped sentinels on
// nil/closed operands and shape mismatches.
//
// Notes:
//   - Every successful kernel constructs exactly one result, counted by the
//     left operand's registry. A failed kernel constructs nothing.
//   - Operands are never mutated.
//   - Integer arithmetic wraps on overflow (plain Go int64 semantics).

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opSumAll     = "SumAll"
	opProductAll = "ProductAll"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At with fixed i→j order into a local buffer.
//   - Stage 3: register the result only after every element is computed.
//
// Errors:
//   - ErrNilMatrix, ErrClosed, ErrInvalidShape, ErrShapeMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign int64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	buf := make([]int64, rows*cols)

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range buf {
				buf[idx] = da.data[idx] + sign*db.data[idx]
			}

			return adopt(rows, cols, buf, registryOf(a)), nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var (
		i, j   int
		av, bv int64
		err    error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			buf[i*cols+j] = av + sign*bv
		}
	}

	return adopt(rows, cols, buf, registryOf(a)), nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrClosed (closed input), ErrInvalidShape (empty
//     operand), ErrShapeMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrClosed (closed input), ErrInvalidShape (empty
//     operand), ErrShapeMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: Validate A,B (open, non-empty) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides over a
//     zero-initialised result and skip zero A[i,k]; otherwise use i→j→k
//     with a zero-initialised accumulator per cell.
//
// Returns:
//   - *Dense with shape (A.Rows × B.Cols).
//
// Errors:
//   - ErrNilMatrix, ErrClosed, ErrInvalidShape, ErrShapeMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	buf := make([]int64, aRows*bCols)

	var (
		i, j, k int
		av, bv  int64
		acc     int64
		err     error
	)
	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						buf[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return adopt(aRows, bCols, buf, registryOf(a)), nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = 0
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				acc += av * bv
			}
			buf[i*bCols+j] = acc
		}
	}

	return adopt(aRows, bCols, buf, registryOf(a)), nil
}
