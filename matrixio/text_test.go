package matrixio_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/intmatrix/matrix"
	"github.com/katalvlaran/intmatrix/matrixio"
	"github.com/stretchr/testify/require"
)

// opaque hides *matrix.Dense so WriteText takes the At path.
type opaque struct{ matrix.Matrix }

func TestWriteText(t *testing.T) {
	m, err := matrix.NewFromRows([][]int64{{1, 2, 3}, {-4, 5, 60}}, matrix.WithRegistry(matrix.NewRegistry()))
	require.NoError(t, err)
	defer m.Close()

	const want = "1 2 3\n-4 5 60\n"

	var direct bytes.Buffer
	require.NoError(t, matrixio.WriteText(&direct, m))
	require.Equal(t, want, direct.String())

	var generic bytes.Buffer
	require.NoError(t, matrixio.WriteText(&generic, opaque{m}))
	require.Equal(t, want, generic.String())

	require.ErrorIs(t, matrixio.WriteText(&generic, nil), matrix.ErrNilMatrix)
}
