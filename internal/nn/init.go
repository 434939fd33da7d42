package nn

import (
	"math"
	"math/rand/v2"
)

// Initializer draws one initial weight for a neuron with fanIn incoming and
// fanOut outgoing connections. Biases are always initialized to zero.
type Initializer func(rng *rand.Rand, fanIn, fanOut int) float32

// Uniform draws weights from U(0, 1). This is the default.
func Uniform(rng *rand.Rand, _, _ int) float32 {
	return rng.Float32()
}

// Xavier (Glorot) initialization for weights.
//
// Draws from U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))), which
// keeps activation variance roughly constant across sigmoid/tanh layers.
func Xavier(rng *rand.Rand, fanIn, fanOut int) float32 {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return float32((rng.Float64()*2.0 - 1.0) * bound)
}

// Constant returns an Initializer that always yields value.
func Constant(value float32) Initializer {
	return func(*rand.Rand, int, int) float32 { return value }
}

// newSource returns a PCG-backed generator. A zero seed picks a random one.
func newSource(seed uint64) *rand.Rand {
	if seed == 0 {
		//nolint:gosec // Weight initialization is not security-critical.
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
