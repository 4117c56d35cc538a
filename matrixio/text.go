// SPDX-License-Identifier: MIT

package matrixio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/intmatrix/matrix"
)

// WriteText writes m one row per line, elements separated by a single space.
// *matrix.Dense is written through its io.WriterTo; other implementations
// are read with At.
func WriteText(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateOpen(m); err != nil {
		return fmt.Errorf("matrixio: %w", err)
	}
	if wt, ok := m.(io.WriterTo); ok {
		_, err := wt.WriteTo(w)
		return err
	}

	var b strings.Builder
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return fmt.Errorf("matrixio: %w", err)
			}
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatInt(v, 10))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())

	return err
}
