package matrix_test

import (
	"testing"

	"github.com/katalvlaran/intmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity(t *testing.T) {
	reg := matrix.NewRegistry()
	I, err := matrix.NewIdentity(3, matrix.WithRegistry(reg), matrix.WithFill(9))
	require.NoError(t, err)
	closeAll(t, I)
	requireElements(t, [][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I)

	_, err = matrix.NewIdentity(0, matrix.WithRegistry(reg))
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
	require.EqualValues(t, 1, reg.Live())
}

func TestZerosLike(t *testing.T) {
	reg := matrix.NewRegistry()
	a, err := matrix.NewFilled(2, 5, 3, matrix.WithRegistry(reg))
	require.NoError(t, err)
	z, err := matrix.ZerosLike(a)
	require.NoError(t, err)
	closeAll(t, a, z)

	require.Equal(t, a.Shape(), z.Shape())
	z.Do(func(_, _ int, v int64) bool {
		require.Zero(t, v)
		return true
	})
	require.EqualValues(t, 2, reg.Live())

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestFacadesKeepCallerOptions checks that facades appending their own
// options never overwrite spare capacity in the caller's slice.
func TestFacadesKeepCallerOptions(t *testing.T) {
	reg := matrix.NewRegistry()
	backing := []matrix.Option{matrix.WithRegistry(reg), matrix.WithFill(5)}
	opts := backing[:1]

	f, err := matrix.NewFilled(1, 1, 7, opts...)
	require.NoError(t, err)
	I, err := matrix.NewIdentity(1, opts...)
	require.NoError(t, err)
	z, err := matrix.ZerosLike(f, opts...)
	require.NoError(t, err)
	closeAll(t, f, I, z)

	// backing[1] is still WithFill(5).
	m, err := matrix.NewDense(1, 1, backing...)
	require.NoError(t, err)
	closeAll(t, m)
	requireElements(t, [][]int64{{5}}, m)
	requireElements(t, [][]int64{{7}}, f)
	require.EqualValues(t, 4, reg.Live())
}

func TestAliases(t *testing.T) {
	reg := matrix.NewRegistry()
	a := mustRows(t, reg, []int64{1, 2}, []int64{3, 4})
	closeAll(t, a)

	s, err := matrix.Sum(a, a)
	require.NoError(t, err)
	d, err := matrix.Diff(a, a)
	require.NoError(t, err)
	p, err := matrix.Product(a, a)
	require.NoError(t, err)
	closeAll(t, s, d, p)

	requireElements(t, [][]int64{{2, 4}, {6, 8}}, s)
	requireElements(t, [][]int64{{0, 0}, {0, 0}}, d)
	requireElements(t, [][]int64{{7, 10}, {15, 22}}, p)
}

func TestSumAllProductAll(t *testing.T) {
	reg := matrix.NewRegistry()
	a := mustRows(t, reg, []int64{1, 1}, []int64{0, 1})
	b := mustRows(t, reg, []int64{2, 0}, []int64{0, 2})
	closeAll(t, a, b)
	baseline := reg.Live()

	s, err := matrix.SumAll(a, b, a, b)
	require.NoError(t, err)
	requireElements(t, [][]int64{{6, 2}, {0, 6}}, s)
	require.Equal(t, baseline+1, reg.Live(), "intermediates are closed")
	require.NoError(t, s.Close())

	p, err := matrix.ProductAll(a, a, a)
	require.NoError(t, err)
	requireElements(t, [][]int64{{1, 3}, {0, 1}}, p)
	require.Equal(t, baseline+1, reg.Live())
	require.NoError(t, p.Close())

	single, err := matrix.SumAll(a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(single, a))
	require.NoError(t, single.Close())

	_, err = matrix.SumAll()
	require.ErrorIs(t, err, matrix.ErrNoOperands)

	wide := mustDense(t, reg, 1, 3)
	closeAll(t, wide)
	baseline = reg.Live()
	_, err = matrix.SumAll(a, b, wide)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.ProductAll(a, wide, a)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	require.Equal(t, baseline, reg.Live(), "failed folds leave nothing live")
}
