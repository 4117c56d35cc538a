// SPDX-License-Identifier: MIT

package matrixio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/intmatrix/matrix"
)

// yamlIndent is the indentation used by Encode.
const yamlIndent = 2

// ErrEmptyDocument is returned when the input holds no YAML document.
var ErrEmptyDocument = errors.New("matrixio: empty document")

// Row is one matrix row. It encodes as a YAML flow sequence ("[1, 2, 3]").
type Row []int64

// MarshalYAML implements yaml.Marshaler.
func (r Row) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{
		Kind:    yaml.SequenceNode,
		Style:   yaml.FlowStyle,
		Content: make([]*yaml.Node, len(r)),
	}
	for i, v := range r {
		node.Content[i] = &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: strconv.FormatInt(v, 10),
		}
	}

	return node, nil
}

// Document is the YAML shape of a matrix.
type Document struct {
	Rows int   `yaml:"rows,omitempty"`
	Cols int   `yaml:"cols,omitempty"`
	Fill int64 `yaml:"fill,omitempty"`
	Data []Row `yaml:"data,omitempty"`
}

// FromDocument builds a matrix from doc.
//
// Errors:
//   - matrix.ErrInvalidShape for missing/non-positive dimensions or ragged data.
//   - matrix.ErrShapeMismatch when data disagrees with explicit rows/cols.
func FromDocument(doc Document, opts ...matrix.Option) (*matrix.Dense, error) {
	if len(doc.Data) == 0 {
		m, err := matrix.NewFilled(doc.Rows, doc.Cols, doc.Fill, opts...)
		if err != nil {
			return nil, fmt.Errorf("matrixio: rows/cols without data: %w", err)
		}

		return m, nil
	}

	rows := make([][]int64, len(doc.Data))
	for i, r := range doc.Data {
		rows[i] = r
	}
	if doc.Rows != 0 && doc.Rows != len(rows) {
		return nil, fmt.Errorf("matrixio: rows=%d but data has %d rows: %w", doc.Rows, len(rows), matrix.ErrShapeMismatch)
	}
	if doc.Cols != 0 && doc.Cols != len(rows[0]) {
		return nil, fmt.Errorf("matrixio: cols=%d but data has %d columns: %w", doc.Cols, len(rows[0]), matrix.ErrShapeMismatch)
	}
	m, err := matrix.NewFromRows(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("matrixio: %w", err)
	}

	return m, nil
}

// ToDocument converts m into its Document form (rows, cols and data set).
func ToDocument(m matrix.Matrix) (Document, error) {
	if err := matrix.ValidateOpen(m); err != nil {
		return Document{}, fmt.Errorf("matrixio: %w", err)
	}
	doc := Document{Rows: m.Rows(), Cols: m.Cols(), Data: make([]Row, m.Rows())}
	for i := range doc.Data {
		row := make(Row, m.Cols())
		for j := range row {
			v, err := m.At(i, j)
			if err != nil {
				return Document{}, fmt.Errorf("matrixio: %w", err)
			}
			row[j] = v
		}
		doc.Data[i] = row
	}

	return doc, nil
}

// Decode reads one YAML document from r. Unknown fields are rejected.
func Decode(r io.Reader, opts ...matrix.Option) (*matrix.Dense, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("matrixio: decode: %w", err)
	}

	return FromDocument(doc, opts...)
}

// Unmarshal decodes a YAML document held in memory.
func Unmarshal(data []byte, opts ...matrix.Option) (*matrix.Dense, error) {
	return Decode(bytes.NewReader(data), opts...)
}

// Encode writes m to w as a YAML document.
func Encode(w io.Writer, m matrix.Matrix) error {
	doc, err := ToDocument(m)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)
	if err = enc.Encode(doc); err != nil {
		return fmt.Errorf("matrixio: encode: %w", err)
	}

	return enc.Close()
}

// Marshal returns the YAML document for m.
func Marshal(m matrix.Matrix) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
