// Package activation implements the per-neuron activation functions applied
// at the end of a layer's forward pass.
package activation

import (
	"github.com/chewxy/math32"
)

// Function is a stateless activation shared by reference between layers.
//
// Activate receives the rate (the negative slope of LeakyReLU), the
// layer-wide integral (only meaningful when NeedsIntegral reports true) and
// the neuron's raw value.
type Function interface {
	// Activate maps a neuron's pre-activation value to its output.
	Activate(rate, integral, x float32) float32

	// NeedsIntegral reports whether the layer must precompute the sum of its
	// pre-activation outputs before calling Activate.
	NeedsIntegral() bool

	// Name returns the registry name of the function.
	Name() string
}

// Compile-time checks.
var (
	_ Function = Identity{}
	_ Function = ReLU{}
	_ Function = LeakyReLU{}
	_ Function = Sigmoid{}
	_ Function = Tanh{}
	_ Function = SoftmaxNormalize{}
)

// Identity forwards its input unchanged: f(x) = x.
//
// Input layers always use Identity.
type Identity struct{}

// Activate returns x.
func (Identity) Activate(_, _, x float32) float32 { return x }

// NeedsIntegral returns false.
func (Identity) NeedsIntegral() bool { return false }

// Name returns "identity".
func (Identity) Name() string { return "identity" }

// ReLU is the rectified linear unit: f(x) = max(0, x).
type ReLU struct{}

// Activate applies max(0, x).
func (ReLU) Activate(_, _, x float32) float32 {
	return math32.Max(0, x)
}

// NeedsIntegral returns false.
func (ReLU) NeedsIntegral() bool { return false }

// Name returns "relu".
func (ReLU) Name() string { return "relu" }

// LeakyReLU passes non-negative values and scales negative ones by the rate:
//
//	f(x) = x       if x >= 0
//	f(x) = x*rate  otherwise
type LeakyReLU struct{}

// Activate applies the leaky rectifier with slope rate for x < 0.
func (LeakyReLU) Activate(rate, _, x float32) float32 {
	if x >= 0 {
		return x
	}
	return x * rate
}

// NeedsIntegral returns false.
func (LeakyReLU) NeedsIntegral() bool { return false }

// Name returns "leaky-relu".
func (LeakyReLU) Name() string { return "leaky-relu" }

// Sigmoid is the standard logistic function: σ(x) = 1 / (1 + exp(-x)).
type Sigmoid struct{}

// Activate applies σ(x).
func (Sigmoid) Activate(_, _, x float32) float32 {
	return logistic(x)
}

// NeedsIntegral returns false.
func (Sigmoid) NeedsIntegral() bool { return false }

// Name returns "sigmoid".
func (Sigmoid) Name() string { return "sigmoid" }

// Tanh is the hyperbolic tangent expressed through the logistic function:
// tanh(x) = 2σ(2x) - 1.
type Tanh struct{}

// Activate applies 2σ(2x) - 1.
func (Tanh) Activate(_, _, x float32) float32 {
	return 2*logistic(2*x) - 1
}

// NeedsIntegral returns false.
func (Tanh) NeedsIntegral() bool { return false }

// Name returns "tanh".
func (Tanh) Name() string { return "tanh" }

// SoftmaxNormalize divides every neuron by the layer-wide sum of raw outputs.
// A zero sum yields 0 for every neuron.
//
// Unlike a classic softmax no exponentiation takes place; the layer's values
// are normalized as they are.
type SoftmaxNormalize struct{}

// Activate returns x / integral, or 0 when integral is 0.
func (SoftmaxNormalize) Activate(_, integral, x float32) float32 {
	if integral != 0 {
		return x / integral
	}
	return 0
}

// NeedsIntegral returns true.
func (SoftmaxNormalize) NeedsIntegral() bool { return true }

// Name returns "softmax".
func (SoftmaxNormalize) Name() string { return "softmax" }

func logistic(x float32) float32 {
	return 1 / (1 + math32.Exp(-x))
}
