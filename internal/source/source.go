// SPDX-License-Identifier: MIT

// Package source resolves command-line matrix arguments into files and loads
// them. Arguments containing glob metacharacters are expanded with doublestar
// ("data/**/*.yaml"); everything else is taken as a literal path.
package source

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/katalvlaran/intmatrix/matrix"
	"github.com/katalvlaran/intmatrix/matrixio"
)

// globMeta lists the characters that turn an argument into a pattern.
const globMeta = "*?[{"

// ErrNoMatch is returned when a pattern matches no file.
var ErrNoMatch = errors.New("source: pattern matched no files")

// Resolve expands args into file paths. Literal paths are kept in order;
// each pattern contributes its matches sorted lexically.
func Resolve(args ...string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, globMeta) {
			out = append(out, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("source: glob %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoMatch, arg)
		}
		sort.Strings(matches)
		out = append(out, matches...)
	}

	return out, nil
}

// Load decodes the YAML matrix document at path.
func Load(path string, opts ...matrix.Option) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	defer f.Close()

	m, err := matrixio.Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("source: %s: %w", path, err)
	}

	return m, nil
}

// LoadAll loads every path in order. On failure the matrices loaded so far
// are closed and nothing is returned.
func LoadAll(paths []string, opts ...matrix.Option) ([]*matrix.Dense, error) {
	out := make([]*matrix.Dense, 0, len(paths))
	for _, p := range paths {
		m, err := Load(p, opts...)
		if err != nil {
			CloseAll(out)
			return nil, err
		}
		out = append(out, m)
	}

	return out, nil
}

// CloseAll closes every matrix in ms.
func CloseAll(ms []*matrix.Dense) {
	for _, m := range ms {
		_ = m.Close()
	}
}

// AsMatrices converts loaded matrices for the variadic kernels.
func AsMatrices(ms []*matrix.Dense) []matrix.Matrix {
	out := make([]matrix.Matrix, len(ms))
	for i, m := range ms {
		out[i] = m
	}

	return out
}
