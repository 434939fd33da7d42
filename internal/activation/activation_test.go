package activation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	for _, x := range []float32{-1e6, -2, 0, 0.5, 3, 1e6} {
		assert.Equal(t, x, Identity{}.Activate(0.7, 13, x))
	}
}

func TestReLU(t *testing.T) {
	relu := ReLU{}
	assert.Equal(t, float32(0), relu.Activate(0, 0, -2))
	assert.Equal(t, float32(3), relu.Activate(0, 0, 3))
	assert.Equal(t, float32(0), relu.Activate(0, 0, 0))
}

func TestLeakyReLU(t *testing.T) {
	leaky := LeakyReLU{}
	assert.InDelta(t, -0.2, float64(leaky.Activate(0.1, 0, -2)), 1e-6)
	assert.Equal(t, float32(2), leaky.Activate(0.1, 0, 2))
	assert.Equal(t, float32(0), leaky.Activate(0.1, 0, 0))
}

func TestSigmoid(t *testing.T) {
	tests := []struct {
		x    float32
		want float64
	}{
		{0, 0.5},
		{2, 0.8807971},
		{-2, 0.1192029},
		{20, 1},
	}
	for _, tt := range tests {
		got := Sigmoid{}.Activate(0, 0, tt.x)
		assert.InDelta(t, tt.want, float64(got), 1e-6, "sigmoid(%v)", tt.x)
	}
}

func TestTanhMatchesMath(t *testing.T) {
	for _, x := range []float32{-3, -1, -0.25, 0, 0.25, 1, 3} {
		got := Tanh{}.Activate(0, 0, x)
		assert.InDelta(t, math.Tanh(float64(x)), float64(got), 1e-5, "tanh(%v)", x)
	}
}

func TestSoftmaxNormalize(t *testing.T) {
	sm := SoftmaxNormalize{}
	assert.Equal(t, float32(0.25), sm.Activate(0, 4, 1))
	assert.Equal(t, float32(0), sm.Activate(0, 0, 1), "zero integral must yield 0")
}

func TestNeedsIntegral(t *testing.T) {
	for _, fn := range []Function{Identity{}, ReLU{}, LeakyReLU{}, Sigmoid{}, Tanh{}} {
		assert.False(t, fn.NeedsIntegral(), fn.Name())
	}
	assert.True(t, SoftmaxNormalize{}.NeedsIntegral())
}

func TestParse(t *testing.T) {
	for _, name := range Names() {
		fn, err := Parse(name)
		require.NoError(t, err)
		assert.Equal(t, name, fn.Name())
	}

	fn, err := Parse(" ReLU ")
	require.NoError(t, err)
	assert.Equal(t, ReLU{}, fn)

	fn, err = Parse("null")
	require.NoError(t, err)
	assert.Equal(t, Identity{}, fn)

	_, err = Parse("swish")
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestNamesSorted(t *testing.T) {
	assert.Equal(t, []string{"identity", "leaky-relu", "relu", "sigmoid", "softmax", "tanh"}, Names())
}
