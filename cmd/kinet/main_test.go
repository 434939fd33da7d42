package main

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestVersion(t *testing.T) {
	code, out, _ := execute(t, "version")
	assert.Zero(t, code)
	assert.Equal(t, "kinet "+version+"\n", out)
}

func TestRunSweep(t *testing.T) {
	t.Setenv(envBackend, "")

	code, out, stderr := execute(t, "run", "--layers", "2,3,2", "--seed", "1", "--backend", "naive")
	require.Zero(t, code, stderr)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8, "4 patterns x 2 outputs")
	assert.True(t, strings.HasPrefix(lines[0], "00 -> v[0] = "))
	assert.True(t, strings.HasPrefix(lines[1], "00 -> v[1] = "))
	assert.True(t, strings.HasPrefix(lines[2], "01 -> v[0] = "))
	assert.True(t, strings.HasPrefix(lines[7], "11 -> v[1] = "))
}

func TestRunReproducible(t *testing.T) {
	args := []string{"run", "--layers", "3,4,2", "--seed", "7", "--hidden", "tanh", "--output", "softmax"}
	_, first, _ := execute(t, args...)
	_, second, _ := execute(t, args...)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestRunMeteredVerbose(t *testing.T) {
	code, _, stderr := execute(t, "run", "--layers", "1,2", "--backend", "blas", "--metered", "--verbose")
	require.Zero(t, code, stderr)
	assert.Contains(t, stderr, "network ready")
	assert.Contains(t, stderr, "driver calls")
	assert.Contains(t, stderr, "dot=4")
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "too many inputs", args: []string{"run", "--layers", "9,1"}, want: "at most 8"},
		{name: "zero neurons", args: []string{"run", "--layers", "2,0,1"}, want: "zero neurons"},
		{name: "unknown activation", args: []string{"run", "--hidden", "bogus"}, want: "unknown activation"},
		{name: "unknown backend", args: []string{"run", "--backend", "gpu"}, want: "unknown backend"},
		{name: "positional args", args: []string{"run", "extra"}, want: "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := execute(t, tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestRunBackendFromEnv(t *testing.T) {
	t.Setenv(envBackend, "bogus")

	code, _, stderr := execute(t, "run", "--layers", "1,1")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, envBackend)

	code, _, stderr = execute(t, "run", "--layers", "1,1", "--backend", "naive")
	assert.Zero(t, code, stderr)

	t.Setenv(envBackend, "blas")
	code, _, stderr = execute(t, "run", "--layers", "1,1")
	assert.Zero(t, code, stderr)
}

func TestGenStdout(t *testing.T) {
	code, out, stderr := execute(t, "gen", "4,3,2", "--seed", "1")
	require.Zero(t, code, stderr)

	f, err := parser.ParseFile(token.NewFileSet(), "gen_test.go", out, 0)
	require.NoError(t, err)
	assert.Equal(t, "nn_test", f.Name.Name)
	assert.Contains(t, out, "func TestNetwork4x3x2(t *testing.T)")
	assert.Equal(t, 2, strings.Count(out, "assert.InEpsilon("))
}

func TestGenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "network_test.go")

	code, out, stderr := execute(t, "gen", "2,2", "--seed", "3", "--package", "demo_test", "--name", "TestDemo", "-o", path)
	require.Zero(t, code, stderr)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "generated test")

	src, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package demo_test")
	assert.Contains(t, string(src), "func TestDemo(t *testing.T)")
}

func TestGenErrors(t *testing.T) {
	for _, args := range [][]string{
		{"gen"},
		{"gen", "4,0"},
		{"gen", "a,b"},
	} {
		code, _, _ := execute(t, args...)
		assert.Equal(t, 1, code, "%v", args)
	}
}

func TestBackends(t *testing.T) {
	code, out, _ := execute(t, "backends")
	require.Zero(t, code)

	assert.Contains(t, out, "auto -> ")
	assert.Contains(t, out, "naive")
	assert.Contains(t, out, "blas")
	assert.Equal(t, 1, strings.Count(out, "* "), "exactly one detected driver")
}
