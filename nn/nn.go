// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/born-ml/kinet/internal/nn"
)

// Layer is one stage of a feedforward network.
type Layer = nn.Layer

// Network is an ordered chain of layers.
type Network = nn.Network

// Option configures Layer.Init and Network.Init.
type Option = nn.Option

// Initializer draws one initial weight.
type Initializer = nn.Initializer

// Errors returned by Init, SetInputs and Predict.
var (
	ErrTooFewLayers         = nn.ErrTooFewLayers
	ErrZeroNeuronsInLayer   = nn.ErrZeroNeuronsInLayer
	ErrOutOfMemory          = nn.ErrOutOfMemory
	ErrZeroNeurons          = nn.ErrZeroNeurons
	ErrNilMath              = nn.ErrNilMath
	ErrParentNotInitialized = nn.ErrParentNotInitialized
	ErrParentCycle          = nn.ErrParentCycle
	ErrNotInitialized       = nn.ErrNotInitialized
	ErrInputSize            = nn.ErrInputSize
)

// WithSeed makes weight initialization reproducible.
func WithSeed(seed uint64) Option {
	return nn.WithSeed(seed)
}

// WithSource draws initial weights from rng.
func WithSource(rng *rand.Rand) Option {
	return nn.WithSource(rng)
}

// WithInitializer replaces the default U(0, 1) weight initializer.
//
// Example:
//
//	err := net.Init(sizes, activation.Tanh{}, activation.Sigmoid{}, m, nn.WithInitializer(nn.Xavier))
func WithInitializer(init Initializer) Option {
	return nn.WithInitializer(init)
}

// WithRate sets the rate passed to activations (LeakyReLU's negative slope).
func WithRate(rate float32) Option {
	return nn.WithRate(rate)
}

// WithMaxParameters caps the weights and biases Network.Init may allocate.
func WithMaxParameters(n int) Option {
	return nn.WithMaxParameters(n)
}

// Initializers.
var (
	Uniform Initializer = nn.Uniform
	Xavier  Initializer = nn.Xavier
)

// Constant returns an Initializer that always yields value.
func Constant(value float32) Initializer {
	return nn.Constant(value)
}

// ParameterCount returns the number of weights plus biases of a network with
// the given layer sizes.
func ParameterCount(sizes []int) int {
	return nn.ParameterCount(sizes)
}
