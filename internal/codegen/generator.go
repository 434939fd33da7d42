package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"math"
	"strconv"
	"strings"
)

const modulePath = "github.com/born-ml/kinet"

// Relative tolerance of the generated assertions. Expected values are exact
// constant arithmetic, the network accumulates in float32.
const epsilon = 1e-4

type options struct {
	pkg      string
	testName string
}

// Option configures Generate.
type Option func(*options)

// WithPackage sets the package clause of the generated file. Defaults to
// "nn_test".
func WithPackage(name string) Option {
	return func(o *options) {
		o.pkg = name
	}
}

// WithTestName sets the generated test function name. Defaults to
// TestNetwork followed by the topology, e.g. TestNetwork4x3x2.
func WithTestName(name string) Option {
	return func(o *options) {
		o.testName = name
	}
}

// Generate writes a gofmt-formatted Go test file for c to w.
func Generate(w io.Writer, c *Case, opts ...Option) error {
	if c == nil {
		return fmt.Errorf("nil case: %w", ErrTopology)
	}
	if err := validate(c.Sizes); err != nil {
		return err
	}
	o := options{pkg: "nn_test", testName: defaultTestName(c.Sizes)}
	for _, opt := range opts {
		opt(&o)
	}

	expected := c.Expected()
	for n, v := range expected[len(expected)-1] {
		if v > math.MaxFloat32 {
			return fmt.Errorf("output neuron %d overflows float32: %w", n, ErrTopology)
		}
	}

	g := &generator{c: c, opts: o}
	g.emit()

	src, err := format.Source(g.buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated code: %w", err)
	}
	_, err = w.Write(src)
	return err
}

type generator struct {
	buf  bytes.Buffer
	c    *Case
	opts options
}

func (g *generator) writef(format string, args ...any) {
	fmt.Fprintf(&g.buf, format, args...)
}

func (g *generator) emit() {
	g.emitHeader()
	g.emitSummary()

	sizes := g.c.Sizes
	last := len(sizes) - 1

	g.writef("func %s(t *testing.T) {\n", g.opts.testName)
	g.writef("m, err := backend.NewMath(backend.Naive)\n")
	g.writef("require.NoError(t, err)\n\n")

	g.writef("var layers [%d]nn.Layer\n", len(sizes))
	for l, n := range sizes {
		parent := "nil"
		if l > 0 {
			parent = fmt.Sprintf("&layers[%d]", l-1)
		}
		g.writef("require.NoError(t, layers[%d].Init(%d, activation.Identity{}, m, %s))\n", l, n, parent)
	}

	g.writef("\n// Network input.\n")
	g.writef("const (\n")
	for i, v := range g.c.Inputs {
		g.writef("%s = %s\n", inputLabel(i), lit(v))
	}
	g.writef(")\n")
	labels := make([]string, len(g.c.Inputs))
	for i := range labels {
		labels[i] = inputLabel(i)
	}
	g.writef("copy(layers[0].Output().Data(), []float32{%s})\n", strings.Join(labels, ", "))

	for l := 1; l < len(sizes); l++ {
		g.emitLayerValues(l)
	}

	if last > 0 {
		g.writef("\n// Expected dot products, evaluated by the compiler.\n")
		g.writef("const (\n")
		for l := 1; l < len(sizes); l++ {
			for n := 0; n < sizes[l]; n++ {
				g.writef("%s = %s\n", dotLabel(l, n), g.dotTerm(l, n))
			}
		}
		g.writef(")\n")
	}
	g.writef("\n")

	g.writef("result := layers[%d].ForwardPropagation(true)\n", last)
	g.writef("require.NotNil(t, result)\n")
	for n := 0; n < sizes[last]; n++ {
		label := inputLabel(n)
		if last > 0 {
			label = dotLabel(last, n)
		}
		g.writef("assert.InEpsilon(t, %s, float64(result.At(%d)), %g)\n", label, n, epsilon)
	}
	g.writef("}\n")
}

func (g *generator) emitHeader() {
	g.writef("// Code generated by kinet gen. DO NOT EDIT.\n\n")
	g.writef("package %s\n\n", g.opts.pkg)
	g.writef("import (\n")
	g.writef("%q\n\n", "testing")
	g.writef("%q\n", "github.com/stretchr/testify/assert")
	g.writef("%q\n\n", "github.com/stretchr/testify/require")
	g.writef("%q\n", modulePath+"/activation")
	g.writef("%q\n", modulePath+"/backend")
	g.writef("%q\n", modulePath+"/nn")
	g.writef(")\n\n")
}

func (g *generator) emitSummary() {
	sizes := g.c.Sizes
	neurons, weights := g.c.Stats()

	g.writef("// %s checks a network of %d layers:\n", g.opts.testName, len(sizes))
	g.writef("//   - input layer with %d neurons\n", sizes[0])
	for l := 1; l < len(sizes)-1; l++ {
		g.writef("//   - hidden layer %d with %d neurons\n", l, sizes[l])
	}
	if len(sizes) > 1 {
		g.writef("//   - output layer with %d neurons\n", sizes[len(sizes)-1])
	}
	g.writef("//\n")
	g.writef("// Neurons: %d, weights: %d, biases: %d.\n", neurons, weights, neurons)
}

func (g *generator) emitLayerValues(l int) {
	weights := g.c.Weights[l]
	g.writef("\n// Layer %d: %d neurons x %d weights.\n", l, len(weights), g.c.Sizes[l-1])
	g.writef("weightsL%d := [][]float32{\n", l)
	for _, row := range weights {
		g.writef("{%s},\n", joinLits(row))
	}
	g.writef("}\n")
	g.writef("biasesL%d := []float32{%s}\n", l, joinLits(g.c.Biases[l]))
	g.writef("for n, weights := range weightsL%d {\n", l)
	g.writef("for k, w := range weights {\n")
	g.writef("require.True(t, layers[%d].SetWeight(n, k, w))\n", l)
	g.writef("}\n")
	g.writef("require.True(t, layers[%d].SetBias(n, biasesL%d[n]))\n", l, l)
	g.writef("}\n")
}

// dotTerm renders w0*x0 + w1*x1 + ... + bias for neuron n of layer l, where
// x are the parent layer's labels.
func (g *generator) dotTerm(l, n int) string {
	var sb strings.Builder
	for k, w := range g.c.Weights[l][n] {
		parent := dotLabel(l-1, k)
		if l == 1 {
			parent = inputLabel(k)
		}
		fmt.Fprintf(&sb, "%s*%s + ", lit(w), parent)
	}
	sb.WriteString(lit(g.c.Biases[l][n]))
	return sb.String()
}

func defaultTestName(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, n := range sizes {
		parts[i] = strconv.Itoa(n)
	}
	return "TestNetwork" + strings.Join(parts, "x")
}

func inputLabel(i int) string {
	return "inputN" + strconv.Itoa(i)
}

func dotLabel(l, n int) string {
	return fmt.Sprintf("dotProdL%dN%d", l, n)
}

func lit(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func joinLits(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = lit(v)
	}
	return strings.Join(parts, ", ")
}
