package naive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/kinet/internal/vector"
)

func TestDot(t *testing.T) {
	d := New()
	a := vector.FromSlice([]float32{1, 2, 3})
	b := vector.FromSlice([]float32{4, 5, 6})

	assert.Equal(t, float32(32), d.Dot(a, b, 0))
	assert.Equal(t, float32(33.5), d.Dot(a, b, 1.5))
	assert.Equal(t, float32(2), d.Dot(vector.New[float32](0), vector.New[float32](0), 2))
}

func TestDotLengthMismatchPanics(t *testing.T) {
	d := New()
	assert.Panics(t, func() {
		d.Dot(vector.New[float32](3), vector.New[float32](2), 0)
	})
}

func TestSum(t *testing.T) {
	d := New()
	v := vector.FromSlice([]float32{1, 2, 3, 4, 5})

	assert.Equal(t, float32(15), d.Sum(v))
	assert.Equal(t, float32(0), d.Sum(vector.New[float32](0)))
}

func TestSumRange(t *testing.T) {
	d := New()
	v := vector.FromSlice([]float32{1, 2, 3, 4, 5})

	tests := []struct {
		name         string
		start, count int
		want         float32
	}{
		{"whole", 0, 5, 15},
		{"prefix", 0, 4, 10},
		{"middle", 1, 3, 9},
		{"clamped", 3, 100, 9},
		{"past end", 5, 1, 0},
		{"empty count", 2, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.SumRange(v, tt.start, tt.count))
		})
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "naive", New().Name())
}

func BenchmarkDot(b *testing.B) {
	d := New()
	x := vector.New[float32](257)
	y := vector.New[float32](257)
	x.SetAll(0.5)
	y.SetAll(2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.Dot(x, y, 0)
	}
}
