package nn

import (
	"fmt"

	"github.com/born-ml/kinet/internal/activation"
	"github.com/born-ml/kinet/internal/compute"
	"github.com/born-ml/kinet/internal/vector"
)

// Layer is one stage of a feedforward network.
//
// A layer owns its output vector and, unless it is the input layer, one weight
// vector per neuron. The output vector has one extra trailing slot that always
// holds 1; it multiplies the bias stored as the last element of every weight
// vector, so each neuron is a single dot product:
//
//	out[n] = Σ_k weights[n][k] * parent.out[k]   (k = 0..parent.N, bias included)
//
// The parent, activation and math facade are referenced, not owned.
//
// The zero value is an uninitialized layer; call Init before use.
type Layer struct {
	neurons    int
	output     *vector.Vector[float32]   // [neurons+1], last slot = 1
	weights    []*vector.Vector[float32] // [neurons][parent.neurons+1], last = bias
	parent     *Layer
	activation activation.Function
	math       *compute.Math
	rate       float32
}

// Init allocates the layer's storage, releasing anything held before.
//
// With a parent, every neuron gets parent.NeuronCount()+1 weights drawn from
// the configured initializer (U(0, 1) by default) with the bias set to 0. A nil
// activation skips the activation step.
//
// Returns ErrZeroNeurons for neurons <= 0, ErrNilMath for a nil facade, and
// ErrParentNotInitialized / ErrParentCycle for an unusable parent. On error the
// layer keeps its previous state.
func (l *Layer) Init(neurons int, act activation.Function, m *compute.Math, parent *Layer, opts ...Option) error {
	if neurons <= 0 {
		return fmt.Errorf("init layer with %d neurons: %w", neurons, ErrZeroNeurons)
	}
	if m == nil {
		return ErrNilMath
	}
	for p := parent; p != nil; p = p.parent {
		if p == l {
			return ErrParentCycle
		}
	}
	if parent != nil && !parent.IsInitialized() {
		return ErrParentNotInitialized
	}

	l.Release()
	cfg := newConfig(opts)

	output := vector.New[float32](neurons + 1)
	output.Set(neurons, 1)

	var weights []*vector.Vector[float32]
	if parent != nil {
		fanIn := parent.NeuronCount()
		weights = make([]*vector.Vector[float32], neurons)
		for n := range weights {
			w := vector.New[float32](fanIn + 1)
			w.Apply(func(int, float32) float32 {
				return cfg.initializer(cfg.source, fanIn, neurons)
			})
			w.Set(fanIn, 0)
			weights[n] = w
		}
	}

	l.neurons = neurons
	l.output = output
	l.weights = weights
	l.parent = parent
	l.activation = act
	l.math = m
	l.rate = cfg.rate
	return nil
}

// Release drops all storage. The layer becomes uninitialized.
func (l *Layer) Release() {
	l.neurons = 0
	l.output = nil
	l.weights = nil
	l.parent = nil
	l.activation = nil
	l.math = nil
	l.rate = 0
}

// ForwardPropagation recomputes the layer's output and returns it.
//
// With recalcParents, every ancestor is recomputed first, front to back. The
// chain is walked iteratively, so depth is bounded only by memory.
//
// Returns nil if the layer, or any layer it reads from, is uninitialized.
func (l *Layer) ForwardPropagation(recalcParents bool) *vector.Vector[float32] {
	if !l.IsInitialized() {
		return nil
	}
	if recalcParents {
		chain := l.ancestors()
		for i := len(chain) - 1; i >= 0; i-- {
			if !chain[i].propagate() {
				return nil
			}
		}
	}
	if !l.propagate() {
		return nil
	}
	return l.output
}

// ancestors returns the parent chain, nearest parent first.
func (l *Layer) ancestors() []*Layer {
	var chain []*Layer
	for p := l.parent; p != nil; p = p.parent {
		chain = append(chain, p)
	}
	return chain
}

// propagate computes this layer from its parent's current output.
func (l *Layer) propagate() bool {
	if !l.IsInitialized() {
		return false
	}
	out := l.output.Data()

	if l.parent != nil {
		in := l.parent.output
		if l.weights[0].Len() != in.Len() {
			// Parent was released or re-initialized with a different size.
			return false
		}
		for n, w := range l.weights {
			out[n] = l.math.Dot(w, in, 0)
		}
	}

	if l.activation != nil {
		integral := float32(1)
		if l.activation.NeedsIntegral() {
			integral = l.math.SumRange(l.output, 0, l.neurons)
		}
		for n := 0; n < l.neurons; n++ {
			out[n] = l.activation.Activate(l.rate, integral, out[n])
		}
	}
	return true
}

// NeuronCount returns the number of neurons (0 when uninitialized).
func (l *Layer) NeuronCount() int {
	return l.neurons
}

// IsInputLayer reports whether the layer has no parent.
func (l *Layer) IsInputLayer() bool {
	return l.parent == nil
}

// IsInitialized reports whether output storage and a math facade are set.
func (l *Layer) IsInitialized() bool {
	return l.output != nil && l.math != nil
}

// Parent returns the parent layer, or nil for the input layer.
func (l *Layer) Parent() *Layer {
	return l.parent
}

// Activation returns the attached activation function (may be nil).
func (l *Layer) Activation() activation.Function {
	return l.activation
}

// Output returns the output vector including the trailing neutral slot, or nil
// when uninitialized. Writing to the input layer's output sets the network
// input; the neutral slot must stay 1.
func (l *Layer) Output() *vector.Vector[float32] {
	return l.output
}

// WeightCount returns the number of non-bias weights per neuron, which equals
// the parent's neuron count (0 for the input layer).
func (l *Layer) WeightCount() int {
	if l.parent == nil {
		return 0
	}
	return l.parent.NeuronCount()
}

// WeightVector returns the weights of neuron n, bias last. Returns nil for the
// input layer, an uninitialized layer or n out of range.
func (l *Layer) WeightVector(n int) *vector.Vector[float32] {
	if !l.IsInitialized() || l.parent == nil || n < 0 || n >= len(l.weights) {
		return nil
	}
	return l.weights[n]
}

// Weight returns weight w of neuron n. w ranges over the non-bias weights only.
func (l *Layer) Weight(n, w int) (float32, bool) {
	wv := l.WeightVector(n)
	if wv == nil || w < 0 || w >= wv.Len()-1 {
		return 0, false
	}
	return wv.At(w), true
}

// SetWeight stores weight w of neuron n. Returns false when out of range.
func (l *Layer) SetWeight(n, w int, value float32) bool {
	wv := l.WeightVector(n)
	if wv == nil || w < 0 || w >= wv.Len()-1 {
		return false
	}
	wv.Set(w, value)
	return true
}

// Bias returns the bias of neuron n.
func (l *Layer) Bias(n int) (float32, bool) {
	wv := l.WeightVector(n)
	if wv == nil || wv.Len() == 0 {
		return 0, false
	}
	return wv.At(wv.Len() - 1), true
}

// SetBias stores the bias of neuron n. Returns false when out of range.
func (l *Layer) SetBias(n int, value float32) bool {
	wv := l.WeightVector(n)
	if wv == nil || wv.Len() == 0 {
		return false
	}
	wv.Set(wv.Len()-1, value)
	return true
}

// ParameterCount returns the number of weights plus biases owned by the layer.
func (l *Layer) ParameterCount() int {
	if len(l.weights) == 0 {
		return 0
	}
	return len(l.weights) * l.weights[0].Len()
}
