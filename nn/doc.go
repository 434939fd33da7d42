// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the layers and networks of a feedforward neural net.
//
// # Overview
//
// This package contains:
//   - Layer: neuron outputs plus one weight vector per neuron, bias last
//   - Network: an ordered chain of layers, input first, output last
//   - Initializers: Uniform (default), Xavier, Constant
//   - Options: WithSeed, WithSource, WithInitializer, WithRate, WithMaxParameters
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/kinet/activation"
//	    "github.com/born-ml/kinet/backend"
//	    "github.com/born-ml/kinet/nn"
//	)
//
//	func main() {
//	    m, err := backend.NewMath(backend.Auto)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    var net nn.Network
//	    err = net.Init([]int{3, 10, 16, 8}, activation.ReLU{}, activation.Sigmoid{}, m, nn.WithSeed(1))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out, err := net.Predict(1, 0, 1)
//	}
//
// # Forward Propagation
//
// Every non-input neuron computes the dot product of its weights with the
// parent layer's outputs. Output vectors carry one extra slot fixed at 1, so
// the bias stored last in each weight vector takes part in the same dot
// product. The activation is applied afterwards:
//
//	out[n] = f(Σ_k w[n][k] * in[k] + bias[n])
//
// Network.ForwardPropagation visits the output neurons; Network.Outputs is
// the iterator form:
//
//	for i, v := range net.Outputs() {
//	    fmt.Printf("v[%d] = %.2f\n", i, v)
//	}
//
// # Thread Safety
//
// Layers and networks are not safe for concurrent use. Activations and
// drivers are stateless and may be shared.
package nn
