// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Each facade delegates to the canonical implementation.
//
// Lifetime policy:
//   - Folding facades (SumAll, ProductAll) close every intermediate they build,
//     so exactly one result stays live on success and none on failure.

package matrix

import "fmt"

// ---------- Constructors ----------

// NewFilled returns a rows×cols matrix with every element set to fill.
// Thin alias of NewDense(rows, cols, WithFill(fill)).
func NewFilled(rows, cols int, fill int64, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, withOption(opts, WithFill(fill))...)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	I, err := NewSquare(n, withOption(opts, WithFill(0))...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateOpen(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newDense(m.Rows(), m.Cols(), gatherOptions(registryOf(m), withOption(opts, WithFill(0))...))
}

// withOption returns opts followed by extra without writing into the
// caller's backing array.
func withOption(opts []Option, extra Option) []Option {
	return append(opts[:len(opts):len(opts)], extra)
}

// ---------- Arithmetic aliases ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// SumAll folds Add left-to-right over ms. A single operand is copied.
//
// Errors:
//   - ErrNoOperands for an empty list; otherwise the first kernel failure,
//     wrapped with the operand index.
func SumAll(ms ...Matrix) (*Dense, error) { return fold(opSumAll, Add, ms) }

// ProductAll folds Mul left-to-right over ms. A single operand is copied.
//
// Errors:
//   - ErrNoOperands for an empty list; otherwise the first kernel failure,
//     wrapped with the operand index.
func ProductAll(ms ...Matrix) (*Dense, error) { return fold(opProductAll, Mul, ms) }

// fold applies kernel over ms, closing every intermediate result.
func fold(tag string, kernel func(a, b Matrix) (*Dense, error), ms []Matrix) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(tag, ErrNoOperands)
	}
	if len(ms) == 1 {
		out, err := Copy(ms[0])
		if err != nil {
			return nil, matrixErrorf(tag, err)
		}

		return out, nil
	}

	acc, err := kernel(ms[0], ms[1])
	if err != nil {
		return nil, matrixErrorf(tag, fmt.Errorf("operands 0,1: %w", err))
	}
	for idx := 2; idx < len(ms); idx++ {
		next, err := kernel(acc, ms[idx])
		_ = acc.Close()
		if err != nil {
			return nil, matrixErrorf(tag, fmt.Errorf("operand %d: %w", idx, err))
		}
		acc = next
	}

	return acc, nil
}
