// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for constructors and kernels.
//   - Give every test its own Registry so live-count deltas are exact.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/intmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto the generic At/Set path.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c zero matrix counted by reg or fails the test.
func mustDense(tb testing.TB, reg *matrix.Registry, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c, matrix.WithRegistry(reg))
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// mustRows builds a matrix from literal rows or fails the test.
func mustRows(tb testing.TB, reg *matrix.Registry, rows ...[]int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromRows(rows, matrix.WithRegistry(reg))
	if err != nil {
		tb.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// fillRand fills m with deterministic values in [-50, 50].
func fillRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, rng.Int63n(101)-50); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// requireElements asserts that m holds exactly want in row-major order.
func requireElements(t *testing.T, want [][]int64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i, row := range want {
		require.Equal(t, len(row), m.Cols(), "cols")
		for j, w := range row {
			got, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, w, got, "element (%d,%d)", i, j)
		}
	}
}

// closeAll closes every matrix at test end.
func closeAll(t *testing.T, ms ...*matrix.Dense) {
	t.Helper()
	t.Cleanup(func() {
		for _, m := range ms {
			_ = m.Close()
		}
	})
}
