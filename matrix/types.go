// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense and the kernels.
// This file contains ONLY domain-facing types (the Matrix interface and Shape).
package matrix

import "strconv"

// Matrix is the read/write surface the kernels operate on.
// *Dense is the only implementation shipped by this package; the interface
// lets kernels accept wrappers and exercise a generic At/Set path.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (int64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndexOutOfBounds if indices are invalid.
	Set(i, j int, v int64) error
}

// Shape is the (rows, cols) pair describing a matrix's dimensions.
type Shape struct {
	Rows int // number of rows
	Cols int // number of columns
}

// Size returns the total element count Rows*Cols.
func (s Shape) Size() int { return s.Rows * s.Cols }

// String renders the shape as "RxC".
func (s Shape) String() string {
	return strconv.Itoa(s.Rows) + "x" + strconv.Itoa(s.Cols)
}

// ShapeOf reads the shape of any Matrix. A nil matrix has the zero Shape.
func ShapeOf(m Matrix) Shape {
	if isNil(m) {
		return Shape{}
	}

	return Shape{Rows: m.Rows(), Cols: m.Cols()}
}
