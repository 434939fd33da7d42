// Package codegen emits self-checking Go tests for a network topology.
//
// A Case holds literal inputs, weights and biases for every layer. The
// generated test builds the network with identity activations, loads the
// literals, runs a forward pass and compares every output neuron against its
// dot product written out as a constant expression, so the expected values are
// computed by the Go compiler rather than by the code under test.
package codegen

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/born-ml/kinet/internal/activation"
	"github.com/born-ml/kinet/internal/compute"
	"github.com/born-ml/kinet/internal/nn"
)

// ErrTopology is returned for an empty topology or a layer without neurons.
var ErrTopology = errors.New("invalid topology")

// Case is one generated test case. Layer 0 has no weights or biases.
type Case struct {
	Sizes   []int
	Inputs  []float64
	Weights [][][]float64 // [layer][neuron][parent neuron]
	Biases  [][]float64   // [layer][neuron]
}

// NewCase draws literal values for sizes. Values are one-decimal numbers in
// [0.1, 99.9]; a zero seed picks a random one.
func NewCase(sizes []int, seed uint64) (*Case, error) {
	if err := validate(sizes); err != nil {
		return nil, err
	}
	rng := newRand(seed)

	c := &Case{
		Sizes:   append([]int(nil), sizes...),
		Inputs:  make([]float64, sizes[0]),
		Weights: make([][][]float64, len(sizes)),
		Biases:  make([][]float64, len(sizes)),
	}
	for i := range c.Inputs {
		c.Inputs[i] = literal(rng)
	}
	for l := 1; l < len(sizes); l++ {
		c.Weights[l] = make([][]float64, sizes[l])
		c.Biases[l] = make([]float64, sizes[l])
		for n := 0; n < sizes[l]; n++ {
			w := make([]float64, sizes[l-1])
			for k := range w {
				w[k] = literal(rng)
			}
			c.Weights[l][n] = w
			c.Biases[l][n] = literal(rng)
		}
	}
	return c, nil
}

// Expected returns the output of every layer computed in float64 with
// identity activations. Layer 0 holds the inputs.
func (c *Case) Expected() [][]float64 {
	out := make([][]float64, len(c.Sizes))
	out[0] = append([]float64(nil), c.Inputs...)
	for l := 1; l < len(c.Sizes); l++ {
		out[l] = make([]float64, c.Sizes[l])
		for n, weights := range c.Weights[l] {
			sum := c.Biases[l][n]
			for k, w := range weights {
				sum += w * out[l-1][k]
			}
			out[l][n] = sum
		}
	}
	return out
}

// Network builds an identity-activated network loaded with the case's
// literals, inputs included.
func (c *Case) Network(m *compute.Math) (*nn.Network, error) {
	net := &nn.Network{}
	if err := net.Init(c.Sizes, activation.Identity{}, activation.Identity{}, m); err != nil {
		return nil, err
	}
	for l := 1; l < len(c.Sizes); l++ {
		for n, weights := range c.Weights[l] {
			for k, w := range weights {
				net.SetWeight(l, n, k, float32(w))
			}
			net.SetBias(l, n, float32(c.Biases[l][n]))
		}
	}
	inputs := make([]float32, len(c.Inputs))
	for i, v := range c.Inputs {
		inputs[i] = float32(v)
	}
	if err := net.SetInputs(inputs...); err != nil {
		net.Release()
		return nil, err
	}
	return net, nil
}

// Stats returns the number of non-input neurons and of weights. Every
// non-input neuron carries one bias.
func (c *Case) Stats() (neurons, weights int) {
	for l := 1; l < len(c.Sizes); l++ {
		neurons += c.Sizes[l]
		weights += c.Sizes[l] * c.Sizes[l-1]
	}
	return neurons, weights
}

// ParseTopology parses a comma separated list of layer sizes such as "4,3,2".
func ParseTopology(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty layer list: %w", ErrTopology)
	}
	fields := strings.Split(s, ",")
	sizes := make([]int, 0, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("layer %d: %q is not a number: %w", i, f, ErrTopology)
		}
		sizes = append(sizes, n)
	}
	if err := validate(sizes); err != nil {
		return nil, err
	}
	return sizes, nil
}

func validate(sizes []int) error {
	if len(sizes) == 0 {
		return fmt.Errorf("no layers: %w", ErrTopology)
	}
	for i, n := range sizes {
		if n <= 0 {
			return fmt.Errorf("layer %d has %d neurons: %w", i, n, ErrTopology)
		}
	}
	return nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	//nolint:gosec // Test data, not security-critical.
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

func literal(rng *rand.Rand) float64 {
	v := 0.1 * float64(1+rng.IntN(999))
	return math.Round(v*10) / 10
}
