// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package activation provides the neuron activation functions.
//
// Every function receives (rate, integral, x). Most ignore rate and integral;
// LeakyReLU uses rate as its negative slope and SoftmaxNormalize divides by
// integral, the sum of the layer's pre-activation outputs. Layers only compute
// the integral for functions whose NeedsIntegral reports true.
//
//	f, err := activation.Parse("relu")
//	y := f.Activate(0, 1, -2) // 0
package activation

import "github.com/born-ml/kinet/internal/activation"

// Function is a stateless activation function.
type Function = activation.Function

// Activation variants.
type (
	Identity         = activation.Identity
	ReLU             = activation.ReLU
	LeakyReLU        = activation.LeakyReLU
	Sigmoid          = activation.Sigmoid
	Tanh             = activation.Tanh
	SoftmaxNormalize = activation.SoftmaxNormalize
)

// ErrUnknown is returned by Parse for unrecognized names.
var ErrUnknown = activation.ErrUnknown

// Parse looks up an activation by name, case-insensitively.
func Parse(name string) (Function, error) {
	return activation.Parse(name)
}

// Names returns the registered names in sorted order.
func Names() []string {
	return activation.Names()
}
