// SPDX-License-Identifier: MIT

// Package matrixio reads and writes matrix documents.
//
// Two formats are supported:
//
//   - YAML documents (gopkg.in/yaml.v3):
//
//     rows: 2
//     cols: 3
//     data:
//     - [1, 2, 3]
//     - [4, 5, 6]
//
//     rows/cols are optional when data is present. Without data, rows and
//     cols are required and every element equals fill (default 0).
//
//   - Plain text: one row per line, elements separated by a single space
//     (the layout of (*matrix.Dense).String).
//
// Decoded matrices are counted by the registry chosen through the usual
// matrix options; callers own them and must Close them.
package matrixio
