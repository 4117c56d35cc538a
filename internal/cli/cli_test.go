package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/intmatrix/internal/cli"
	"github.com/katalvlaran/intmatrix/matrix"
	"github.com/katalvlaran/intmatrix/matrixio"
	"github.com/stretchr/testify/require"
)

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := cli.NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func writeYAML(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func fixtures(t *testing.T) (dir, a, b, c string) {
	t.Helper()
	dir = t.TempDir()
	a = writeYAML(t, dir, "a.yaml", "data:\n  - [1, 2]\n  - [3, 4]\n")
	b = writeYAML(t, dir, "b.yaml", "data:\n  - [5, 6]\n  - [7, 8]\n")
	c = writeYAML(t, dir, "nested/c.yaml", "data:\n  - [1, 2, 3]\n")

	return dir, a, b, c
}

func TestShow(t *testing.T) {
	_, a, b, _ := fixtures(t)

	out, _, err := run(t, "show", a, b)
	require.NoError(t, err)
	require.Equal(t, "1 2\n3 4\n\n5 6\n7 8\n", out)
	require.EqualValues(t, 0, matrix.LiveInstances())
}

func TestShowYAML(t *testing.T) {
	_, a, _, _ := fixtures(t)

	out, _, err := run(t, "--format", "yaml", "show", a)
	require.NoError(t, err)

	m, err := matrixio.Unmarshal([]byte(out), matrix.WithRegistry(matrix.NewRegistry()))
	require.NoError(t, err)
	defer m.Close()
	require.Equal(t, [][]int64{{1, 2}, {3, 4}}, m.ToRows())
}

func TestArithmetic(t *testing.T) {
	_, a, b, c := fixtures(t)

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"add", []string{"add", a, b}, "6 8\n10 12\n"},
		{"add three", []string{"add", a, b, a}, "7 10\n13 16\n"},
		{"sub", []string{"sub", a, b}, "-4 -4\n-4 -4\n"},
		{"mul", []string{"mul", a, b}, "19 22\n43 50\n"},
		{"mul chain", []string{"mul", c, c, a}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, tc.args...)
			if tc.want == "" {
				require.ErrorIs(t, err, matrix.ErrShapeMismatch)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
	require.EqualValues(t, 0, matrix.LiveInstances())
}

func TestArithmeticMismatch(t *testing.T) {
	_, a, _, c := fixtures(t)

	_, _, err := run(t, "add", a, c)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	_, _, err = run(t, "sub", a)
	require.Error(t, err)
	require.EqualValues(t, 0, matrix.LiveInstances())
}

func TestSumPattern(t *testing.T) {
	dir, _, _, _ := fixtures(t)

	out, _, err := run(t, "sum", filepath.Join(dir, "*.yaml"))
	require.NoError(t, err)
	require.Equal(t, "6 8\n10 12\n", out)

	out, _, err = run(t, "sum", filepath.Join(dir, "**", "c.yaml"))
	require.NoError(t, err)
	require.Equal(t, "1 2 3\n", out)

	_, _, err = run(t, "sum", filepath.Join(dir, "*.json"))
	require.Error(t, err)
}

func TestCompare(t *testing.T) {
	_, a, b, c := fixtures(t)

	out, _, err := run(t, "eq", a, a)
	require.NoError(t, err)
	require.Equal(t, "equal\n", out)

	out, _, err = run(t, "eq", a, b)
	require.NoError(t, err)
	require.Equal(t, "not equal\n", out)

	out, _, err = run(t, "cmp", c, a)
	require.NoError(t, err)
	require.Equal(t, "less\n", out)

	out, _, err = run(t, "cmp", a, c)
	require.NoError(t, err)
	require.Equal(t, "greater\n", out)

	out, _, err = run(t, "cmp", a, b)
	require.NoError(t, err)
	require.Equal(t, "same size\n", out)
}

func TestGenerate(t *testing.T) {
	out, _, err := run(t, "identity", "3")
	require.NoError(t, err)
	require.Equal(t, "1 0 0\n0 1 0\n0 0 1\n", out)

	out, _, err = run(t, "fill", "2", "3", "--fill", "-7")
	require.NoError(t, err)
	require.Equal(t, "-7 -7 -7\n-7 -7 -7\n", out)

	_, _, err = run(t, "identity", "0")
	require.ErrorIs(t, err, matrix.ErrInvalidShape)

	_, _, err = run(t, "fill", "two", "3")
	require.Error(t, err)
	require.EqualValues(t, 0, matrix.LiveInstances())
}

func TestStats(t *testing.T) {
	_, a, b, _ := fixtures(t)

	out, _, err := run(t, "stats", a, b)
	require.NoError(t, err)

	var report struct {
		Component string `json:"component"`
		State     struct {
			Live        int64 `json:"live"`
			Constructed int64 `json:"constructed"`
		} `json:"state"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Equal(t, "matrix-registry", report.Component)
	require.EqualValues(t, 2, report.State.Live)
	require.GreaterOrEqual(t, report.State.Constructed, int64(2))
	require.EqualValues(t, 0, matrix.LiveInstances())
}

func TestFlags(t *testing.T) {
	_, a, _, _ := fixtures(t)

	_, _, err := run(t, "--format", "xml", "show", a)
	require.Error(t, err)

	_, _, err = run(t, "watch", "--op", "div", a, a)
	require.Error(t, err)

	_, stderr, err := run(t, "-v", "show", a)
	require.NoError(t, err)
	require.Contains(t, stderr, "loaded matrix")
	require.Contains(t, stderr, "live_matrices=0")
}

// syncBuffer is a bytes.Buffer safe for the watch goroutine and the test to share.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func TestWatchCommand(t *testing.T) {
	dir := t.TempDir()
	a := writeYAML(t, dir, "a.yaml", "data:\n  - [1, 2]\n")
	b := writeYAML(t, dir, "b.yaml", "data:\n  - [10, 20]\n")

	var out syncBuffer
	root := cli.NewRootCommand()
	root.SetArgs([]string{"watch", "--op", "add", a, b})
	root.SetOut(&out)
	root.SetErr(io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errc := make(chan error, 1)
	go func() { errc <- root.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		return strings.HasPrefix(out.String(), "11 22\n")
	}, 5*time.Second, 20*time.Millisecond)

	require.Eventually(t, func() bool {
		// Rewrite until the watcher is registered and recomputes.
		_ = os.WriteFile(a, []byte("data:\n  - [2, 3]\n"), 0o644)
		return strings.Contains(out.String(), "12 23\n")
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
	require.EqualValues(t, 0, matrix.LiveInstances())
}
