// SPDX-License-Identifier: MIT

// Package matrix - comparisons.
//
// Equal is structural equality (shape + every element). Less, Greater and
// CompareSize order matrices by element count (Rows*Cols) only: two
// different shapes with the same count are neither less nor greater.
// None of these functions return errors; a shape mismatch is simply "not equal".

package matrix

// Equal reports whether a and b have identical shape and elements.
// Two nil matrices are equal; nil vs non-nil is not. A closed matrix is
// equal to nothing (not even itself), and neither is a matrix reporting an
// empty shape.
//
// Complexity: O(r*c) worst case, O(1) on shape mismatch.
func Equal(a, b Matrix) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if validateOperand(a) != nil || validateOperand(b) != nil {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	// Fast path: compare the flat buffers directly.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if da.data[idx] != db.data[idx] {
					return false
				}
			}

			return true
		}
	}

	rows, cols := a.Rows(), a.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, errA := a.At(i, j)
			bv, errB := b.At(i, j)
			if errA != nil || errB != nil || av != bv {
				return false
			}
		}
	}

	return true
}

// CompareSize returns -1, 0 or +1 as a has fewer, as many, or more elements
// than b. A nil or closed matrix has size 0.
func CompareSize(a, b Matrix) int {
	sa, sb := ShapeOf(a).Size(), ShapeOf(b).Size()
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	default:
		return 0
	}
}

// Less reports whether a has fewer elements than b.
func Less(a, b Matrix) bool { return CompareSize(a, b) < 0 }

// Greater reports whether a has more elements than b.
func Greater(a, b Matrix) bool { return CompareSize(a, b) > 0 }

// Equal reports whether m and other are equal; see the package-level Equal.
func (m *Dense) Equal(other Matrix) bool { return Equal(m, other) }
