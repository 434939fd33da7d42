package compute

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/kinet/internal/vector"
)

// recordingDriver remembers the arguments it was called with.
type recordingDriver struct {
	offset       float32
	start, count int
}

func (d *recordingDriver) Dot(_, _ *vector.Vector[float32], offset float32) float32 {
	d.offset = offset
	return 7
}

func (d *recordingDriver) Sum(*vector.Vector[float32]) float32 { return 8 }

func (d *recordingDriver) SumRange(_ *vector.Vector[float32], start, count int) float32 {
	d.start, d.count = start, count
	return 9
}

func (d *recordingDriver) Name() string { return "recording" }

func TestMathForwardsUnmodified(t *testing.T) {
	d := &recordingDriver{}
	m := New(d)
	v := vector.New[float32](3)

	assert.Equal(t, float32(7), m.Dot(v, v, 1.5))
	assert.Equal(t, float32(1.5), d.offset)
	assert.Equal(t, float32(8), m.Sum(v))
	assert.Equal(t, float32(9), m.SumRange(v, 1, 2))
	assert.Equal(t, 1, d.start)
	assert.Equal(t, 2, d.count)
	assert.Equal(t, "recording", m.Name())
	assert.Same(t, d, m.Driver())
}

func TestNewNilPanics(t *testing.T) {
	assert.Panics(t, func() { New(nil) })
}

func TestClampRange(t *testing.T) {
	tests := []struct {
		name         string
		n, start, c  int
		wantLo, want int
	}{
		{"full", 5, 0, 5, 0, 5},
		{"inner", 5, 1, 2, 1, 3},
		{"overflow", 5, 3, 10, 3, 5},
		{"start past end", 5, 7, 2, 5, 5},
		{"zero count", 5, 2, 0, 2, 2},
		{"huge count", 5, 1, int(^uint(0) >> 1), 1, 5},
		{"negative start", 5, -2, 3, 0, 1},
		{"empty", 0, 0, 3, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := ClampRange(tt.n, tt.start, tt.c)
			assert.Equal(t, tt.wantLo, lo)
			assert.Equal(t, tt.want, hi)
		})
	}
}
