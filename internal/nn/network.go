package nn

import (
	"fmt"
	"iter"

	"github.com/born-ml/kinet/internal/activation"
	"github.com/born-ml/kinet/internal/compute"
)

// Network is an ordered chain of layers: input first, output last.
//
// The network owns its layers. Activations and the math facade are supplied
// by the caller and only referenced; they may be shared with other networks.
//
// Example:
//
//	m := compute.New(naive.New())
//	var net nn.Network
//	if err := net.Init([]int{3, 10, 16, 8}, activation.ReLU{}, activation.Sigmoid{}, m); err != nil {
//	    return err
//	}
//	out, err := net.Predict(1, 0, 1)
//
// A Network is not safe for concurrent use; forward passes mutate the layers'
// output vectors in place. Give each goroutine its own Network.
type Network struct {
	layers []*Layer
	hidden activation.Function
	output activation.Function
	math   *compute.Math
}

// Init builds one layer per entry of sizes, each wired to its predecessor.
//
// Layer 0 uses activation.Identity regardless of the arguments, the last layer
// uses output and every layer in between uses hidden.
//
// Errors (the network is left without layers in every case):
//   - ErrTooFewLayers: sizes is empty
//   - ErrZeroNeuronsInLayer: an entry is <= 0
//   - ErrOutOfMemory: the topology exceeds WithMaxParameters, or a layer could
//     not be allocated
//   - ErrNilMath: m is nil
func (nw *Network) Init(sizes []int, hidden, output activation.Function, m *compute.Math, opts ...Option) error {
	nw.Release()

	if len(sizes) == 0 {
		return ErrTooFewLayers
	}
	if m == nil {
		return ErrNilMath
	}
	for i, n := range sizes {
		if n <= 0 {
			return fmt.Errorf("layer %d has %d neurons: %w", i, n, ErrZeroNeuronsInLayer)
		}
	}

	cfg := newConfig(opts)
	if cfg.maxParameters > 0 {
		if p := ParameterCount(sizes); p > cfg.maxParameters {
			return fmt.Errorf("%d parameters exceed limit of %d: %w", p, cfg.maxParameters, ErrOutOfMemory)
		}
	}
	layerOpts := []Option{
		WithSource(cfg.source),
		WithInitializer(cfg.initializer),
		WithRate(cfg.rate),
	}

	layers := make([]*Layer, 0, len(sizes))
	var parent *Layer
	for i, n := range sizes {
		var act activation.Function
		switch i {
		case 0:
			act = activation.Identity{}
		case len(sizes) - 1:
			act = output
		default:
			act = hidden
		}

		l := &Layer{}
		if err := l.Init(n, act, m, parent, layerOpts...); err != nil {
			for _, built := range layers {
				built.Release()
			}
			return fmt.Errorf("layer %d: %w: %w", i, ErrOutOfMemory, err)
		}
		layers = append(layers, l)
		parent = l
	}

	nw.layers = layers
	nw.hidden = hidden
	nw.output = output
	nw.math = m
	return nil
}

// Release tears down every layer. The network becomes uninitialized.
func (nw *Network) Release() {
	for _, l := range nw.layers {
		l.Release()
	}
	nw.layers = nil
	nw.hidden = nil
	nw.output = nil
	nw.math = nil
}

// ForwardPropagation recomputes the whole network from the current input and
// calls visit once per output neuron in ascending index order. The neutral
// slot is not visited. Does nothing on an uninitialized network.
func (nw *Network) ForwardPropagation(visit func(index int, value float32)) {
	for i, v := range nw.Outputs() {
		visit(i, v)
	}
}

// Outputs is the iterator form of ForwardPropagation. The forward pass runs
// when iteration starts.
func (nw *Network) Outputs() iter.Seq2[int, float32] {
	return func(yield func(int, float32) bool) {
		out := nw.OutputLayer()
		if out == nil || out.NeuronCount() == 0 {
			return
		}
		res := out.ForwardPropagation(true)
		if res == nil {
			return
		}
		values := res.Data()
		for i := 0; i < out.NeuronCount(); i++ {
			if !yield(i, values[i]) {
				return
			}
		}
	}
}

// SetInputs writes values into the input layer. The number of values must
// match the input layer's neuron count.
func (nw *Network) SetInputs(values ...float32) error {
	in := nw.InputLayer()
	if in == nil {
		return ErrNotInitialized
	}
	if len(values) != in.NeuronCount() {
		return fmt.Errorf("got %d values for %d input neurons: %w", len(values), in.NeuronCount(), ErrInputSize)
	}
	copy(in.Output().Data(), values)
	return nil
}

// Predict sets the inputs, runs a forward pass and returns a copy of the
// output values.
func (nw *Network) Predict(values ...float32) ([]float32, error) {
	if err := nw.SetInputs(values...); err != nil {
		return nil, err
	}
	result := make([]float32, 0, nw.NeuronsInLayer(nw.LayerCount()-1))
	nw.ForwardPropagation(func(_ int, v float32) {
		result = append(result, v)
	})
	return result, nil
}

// VisitLayers calls visit for every layer, input first.
func (nw *Network) VisitLayers(visit func(l *Layer)) {
	for _, l := range nw.layers {
		visit(l)
	}
}

// Layers returns an iterator over (index, layer), input first.
func (nw *Network) Layers() iter.Seq2[int, *Layer] {
	return func(yield func(int, *Layer) bool) {
		for i, l := range nw.layers {
			if !yield(i, l) {
				return
			}
		}
	}
}

// Layer returns layer i, or nil if i is out of range.
func (nw *Network) Layer(i int) *Layer {
	if i < 0 || i >= len(nw.layers) {
		return nil
	}
	return nw.layers[i]
}

// InputLayer returns the first layer, or nil without layers.
func (nw *Network) InputLayer() *Layer {
	return nw.Layer(0)
}

// OutputLayer returns the last layer, or nil without layers.
func (nw *Network) OutputLayer() *Layer {
	return nw.Layer(len(nw.layers) - 1)
}

// LayerCount returns the number of layers.
func (nw *Network) LayerCount() int {
	return len(nw.layers)
}

// NeuronsInLayer returns the neuron count of layer i, or 0 if out of range.
func (nw *Network) NeuronsInLayer(i int) int {
	if l := nw.Layer(i); l != nil {
		return l.NeuronCount()
	}
	return 0
}

// Weight returns weight w of neuron n in layer l.
func (nw *Network) Weight(l, n, w int) (float32, bool) {
	if layer := nw.Layer(l); layer != nil {
		return layer.Weight(n, w)
	}
	return 0, false
}

// SetWeight stores weight w of neuron n in layer l.
func (nw *Network) SetWeight(l, n, w int, value float32) bool {
	if layer := nw.Layer(l); layer != nil {
		return layer.SetWeight(n, w, value)
	}
	return false
}

// Bias returns the bias of neuron n in layer l.
func (nw *Network) Bias(l, n int) (float32, bool) {
	if layer := nw.Layer(l); layer != nil {
		return layer.Bias(n)
	}
	return 0, false
}

// SetBias stores the bias of neuron n in layer l.
func (nw *Network) SetBias(l, n int, value float32) bool {
	if layer := nw.Layer(l); layer != nil {
		return layer.SetBias(n, value)
	}
	return false
}

// HiddenActivation returns the activation used by hidden layers.
func (nw *Network) HiddenActivation() activation.Function {
	return nw.hidden
}

// OutputActivation returns the activation used by the output layer.
func (nw *Network) OutputActivation() activation.Function {
	return nw.output
}

// Math returns the facade shared by all layers.
func (nw *Network) Math() *compute.Math {
	return nw.math
}

// ParameterCount returns the number of weights plus biases in the network.
func (nw *Network) ParameterCount() int {
	total := 0
	for _, l := range nw.layers {
		total += l.ParameterCount()
	}
	return total
}

// ParameterCount returns the number of weights plus biases a network with the
// given layer sizes holds.
func ParameterCount(sizes []int) int {
	total := 0
	for i := 1; i < len(sizes); i++ {
		total += sizes[i] * (sizes[i-1] + 1)
	}
	return total
}
