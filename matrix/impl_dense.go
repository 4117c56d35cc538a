// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Own the buffer exclusively: every copy path (Copy, Clone, Assign) goes
//     through one deep-copy routine (snapshot), so no two instances share storage.
//   - Tie the live-instance counter to construction and Close only.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) fill; At/Set: O(1); Clone/Copy/Assign: O(r*c); Close: O(1).

package matrix

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync/atomic"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxReset  = "Reset"  // method tag used in error wrappers
	ctxClone  = "Clone"  // method tag used in error wrappers
	ctxAssign = "Assign" // method tag used in error wrappers
	ctxCopy   = "Copy"   // ctor tag for Copy
	ctxRows   = "NewFromRows"
)

// ---------- Formatting literals ----------
const (
	_fmtSep     = " "
	_fmtRowDone = "\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/...)
//   - row, col: coordinates
//   - err: sentinel (e.g., ErrIndexOutOfBounds, ErrClosed)
//
// Returns:
//   - error formatted as "Dense.<method>(row,col): <sentinel>"; errors.Is still matches.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of int64 values.
//   - r,c hold dimensions (rows, cols), both >= 1 while the matrix is open.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - reg is the registry that counted this instance.
//   - closed is set exactly once by Close.
//
// A Dense must not be copied by value; use Clone, Copy or Assign.
type Dense struct {
	r, c   int         // row and column counts
	data   []int64     // contiguous row-major storage (len == r*c)
	reg    *Registry   // live-instance accounting
	closed atomic.Bool // set once by Close
}

// Compile-time assertions for interface conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
	_ io.WriterTo  = (*Dense)(nil)
	_ io.Closer    = (*Dense)(nil)
)

// newDense allocates a validated rows×cols matrix filled with o.fill and
// registers it with o.registry.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidShape (nothing counted).
//   - Stage 2: allocate the buffer; fill only when the fill value is non-zero.
//   - Stage 3: acquire a slot in the registry.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func newDense(rows, cols int, o Options) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}
	buf := make([]int64, rows*cols) // make() zero-fills
	if o.fill != 0 {
		for i := range buf {
			buf[i] = o.fill
		}
	}

	return adopt(rows, cols, buf, o.registry), nil
}

// adopt wraps an already-owned buffer into a registered Dense.
// The caller guarantees len(buf) == rows*cols and that nobody else holds buf.
func adopt(rows, cols int, buf []int64, reg *Registry) *Dense {
	m := &Dense{r: rows, c: cols, data: buf, reg: reg}
	reg.acquire()

	return m
}

// NewDefault creates the default 3×3 zero matrix.
// WithFill and WithRegistry are honoured.
// Complexity: O(1).
func NewDefault(opts ...Option) *Dense {
	m, _ := newDense(DefaultRows, DefaultCols, gatherOptions(nil, opts...)) // shape is constant and valid

	return m
}

// NewSquare creates an n×n zero matrix (or filled, with WithFill).
//
// Errors:
//   - ErrInvalidShape when n <= 0.
//
// Complexity: O(n²).
func NewSquare(n int, opts ...Option) (*Dense, error) {
	return newDense(n, n, gatherOptions(nil, opts...))
}

// NewDense creates an r×c matrix with every element set to the fill value
// (WithFill, default 0).
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Forbids empty dimensions: every live matrix has rows>=1 and cols>=1.
//   - A successful call increments the registry by exactly one.
//
// Errors:
//   - ErrInvalidShape (rows<=0 or cols<=0).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	return newDense(rows, cols, gatherOptions(nil, opts...))
}

// NewFromRows builds a matrix from row data. Every row must have the same,
// non-zero length. The input slices are copied; WithFill is ignored.
//
// Errors:
//   - ErrInvalidShape for no rows, empty rows or ragged rows.
func NewFromRows(rows [][]int64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxRows, ErrInvalidShape)
	}
	r, c := len(rows), len(rows[0])
	buf := make([]int64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w", ctxRows, i, len(row), c, ErrInvalidShape)
		}
		buf = append(buf, row...)
	}
	o := gatherOptions(nil, opts...)

	return adopt(r, c, buf, o.registry), nil
}

// Copy returns an independent deep copy of src.
// The copy is counted by src's registry (DefaultRegistry for non-Dense
// sources) unless WithRegistry overrides it. WithFill is ignored.
//
// Errors:
//   - ErrNilMatrix, ErrClosed, or an At failure of a foreign implementation.
//
// Complexity: O(r*c).
func Copy(src Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateOpen(src); err != nil {
		return nil, matrixErrorf(ctxCopy, err)
	}
	rows, cols, buf, err := snapshot(src)
	if err != nil {
		return nil, matrixErrorf(ctxCopy, err)
	}
	o := gatherOptions(registryOf(src), opts...)

	return adopt(rows, cols, buf, o.registry), nil
}

// snapshot is the single deep-copy routine behind Copy, Clone and Assign.
// It returns the shape of src and a freshly allocated buffer holding its
// elements in row-major order.
//
// Implementation:
//   - Stage 1: validate the source shape.
//   - Stage 2: fast-path for *Dense (one copy); otherwise fixed i→j At loop.
//
// Complexity: O(r*c).
func snapshot(src Matrix) (int, int, []int64, error) {
	rows, cols := src.Rows(), src.Cols()
	if err := ValidateShape(rows, cols); err != nil {
		return 0, 0, nil, err
	}
	buf := make([]int64, rows*cols)

	if d, ok := src.(*Dense); ok {
		copy(buf, d.data)

		return rows, cols, buf, nil
	}

	var (
		i, j int
		v    int64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = src.At(i, j); err != nil {
				return 0, 0, nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			buf[i*cols+j] = v
		}
	}

	return rows, cols, buf, nil
}

// Rows returns the row count (0 once closed).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count (0 once closed).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single value.
func (m *Dense) Shape() Shape { return Shape{Rows: m.r, Cols: m.c} }

// Closed reports whether Close has released the matrix.
func (m *Dense) Closed() bool { return m.closed.Load() }

// indexOf computes the row-major offset or returns ErrIndexOutOfBounds.
// Returns a bare sentinel; public methods wrap it with coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if m.closed.Load() {
		return 0, ErrClosed
	}
	if row < 0 || row >= m.r {
		return 0, ErrIndexOutOfBounds
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col).
//
// Behavior highlights:
//   - Never panics on out-of-range; a negative stored value is plain data.
//
// Returns:
//   - (value, nil) on success; (0, ErrIndexOutOfBounds) on invalid indices;
//     (0, ErrClosed) after Close.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (int64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// On failure nothing is written and the rest of the buffer is untouched.
//
// Errors:
//   - ErrIndexOutOfBounds for invalid indices; ErrClosed after Close.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v int64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Reset stores zero at (row, col). Same errors as Set.
func (m *Dense) Reset(row, col int) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxReset, row, col, err)
	}
	m.data[off] = 0

	return nil
}

// Clone returns a deep copy counted by the same registry.
// Independence: mutations of either matrix never affect the other.
//
// Errors:
//   - ErrClosed when m was closed.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Clone() (*Dense, error) {
	if m.closed.Load() {
		return nil, matrixErrorf("Dense."+ctxClone, ErrClosed)
	}
	cp := make([]int64, len(m.data))
	copy(cp, m.data)

	return adopt(m.r, m.c, cp, m.reg), nil
}

// Assign replaces m's shape and elements with a deep copy of src.
//
// Implementation:
//   - Stage 1: reject nil/closed operands; return early when src is m itself.
//   - Stage 2: snapshot src into a fresh buffer.
//   - Stage 3: drop the old buffer, then install shape and the new buffer.
//
// Behavior highlights:
//   - Self-assignment leaves the buffer untouched.
//   - The registry is not touched: assignment is neither construction nor Close.
//   - On error m is left unchanged.
//
// Errors:
//   - ErrNilMatrix, ErrClosed, or an At failure of a foreign implementation.
//
// Complexity:
//   - Time O(r*c) of src, Space O(r*c) of src.
func (m *Dense) Assign(src Matrix) error {
	if m.closed.Load() {
		return matrixErrorf("Dense."+ctxAssign, ErrClosed)
	}
	if err := ValidateOpen(src); err != nil {
		return matrixErrorf("Dense."+ctxAssign, err)
	}
	if d, ok := src.(*Dense); ok && d == m {
		return nil
	}
	rows, cols, buf, err := snapshot(src)
	if err != nil {
		return matrixErrorf("Dense."+ctxAssign, err)
	}

	m.data = nil // release the previous buffer before taking the new one
	m.r, m.c = rows, cols
	m.data = buf

	return nil
}

// Close releases the buffer and decrements the registry.
// Only the first call has an effect; later calls return nil. Safe to call
// concurrently with other Close calls on the same matrix.
func (m *Dense) Close() error {
	if m == nil || !m.closed.CompareAndSwap(false, true) {
		return nil
	}
	m.data = nil
	m.r, m.c = 0, 0
	if m.reg != nil {
		m.reg.release()
	}

	return nil
}

// String renders the matrix one row per line, elements separated by a single
// space. A closed matrix renders as the empty string.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	m.writeText(&b)

	return b.String()
}

// WriteTo implements io.WriterTo with the String layout.
func (m *Dense) WriteTo(w io.Writer) (int64, error) {
	if m.closed.Load() {
		return 0, matrixErrorf("Dense.WriteTo", ErrClosed)
	}
	var b strings.Builder
	m.writeText(&b)
	n, err := io.WriteString(w, b.String())

	return int64(n), err
}

func (m *Dense) writeText(b *strings.Builder) {
	var (
		i, j, base int
		scratch    [20]byte
	)
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.Write(strconv.AppendInt(scratch[:0], m.data[base+j], 10))
		}
		b.WriteString(_fmtRowDone)
	}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Does nothing on a closed matrix.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v int64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// ToRows returns a copy of the elements as a slice of rows.
// Returns nil for a closed matrix.
func (m *Dense) ToRows() [][]int64 {
	if m.closed.Load() {
		return nil
	}
	out := make([][]int64, m.r)
	for i := range out {
		row := make([]int64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}
