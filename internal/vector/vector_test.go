package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLength(t *testing.T) {
	for _, n := range []int{0, 1, 3, 17, 1024} {
		v := New[float32](n)
		assert.Equal(t, n, v.Len())
		for _, value := range v.Data() {
			assert.Zero(t, value)
		}
	}
}

func TestNewNegativePanics(t *testing.T) {
	assert.Panics(t, func() { New[float32](-1) })
}

func TestCloneIsIndependent(t *testing.T) {
	src := FromSlice([]float32{1, 2, 3})
	dup := src.Clone()

	require.True(t, dup.Equal(src))
	dup.Set(0, 42)

	assert.Equal(t, float32(1), src.At(0), "source must not see writes to the clone")
	assert.Equal(t, float32(42), dup.At(0))
	assert.Equal(t, 3, src.Len())
}

func TestMoveEmptiesSource(t *testing.T) {
	src := FromSlice([]float64{4, 5, 6})
	moved := src.Move()

	assert.Equal(t, 0, src.Len())
	assert.Equal(t, []float64{4, 5, 6}, moved.Data())
}

func TestIndexOutOfRangePanics(t *testing.T) {
	v := New[float32](2)
	assert.Panics(t, func() { v.At(2) })
	assert.Panics(t, func() { v.At(-1) })
	assert.Panics(t, func() { v.Set(5, 1) })
}

func TestForEachOrder(t *testing.T) {
	v := FromSlice([]float32{10, 20, 30})

	var indices []int
	var values []float32
	v.ForEach(func(i int, value float32) {
		indices = append(indices, i)
		values = append(values, value)
	})

	assert.Equal(t, []int{0, 1, 2}, indices)
	assert.Equal(t, []float32{10, 20, 30}, values)
}

func TestApplyAndSetAll(t *testing.T) {
	v := New[float32](4)
	v.SetAll(2)
	v.Apply(func(i int, value float32) float32 { return value * float32(i) })

	assert.Equal(t, []float32{0, 2, 4, 6}, v.Data())
}

func TestAllStopsEarly(t *testing.T) {
	v := FromSlice([]float32{1, 2, 3, 4})

	var seen []float32
	for i, value := range v.All() {
		if i == 2 {
			break
		}
		seen = append(seen, value)
	}
	assert.Equal(t, []float32{1, 2}, seen)
}

func TestReductions(t *testing.T) {
	v := FromSlice([]float32{3, -4, 1, 0})

	assert.Equal(t, float32(-4), v.Min())
	assert.Equal(t, float32(3), v.Max())
	assert.Equal(t, float32(0), v.Average())
	assert.Equal(t, float32(26), v.LengthSquared())
	assert.InDelta(t, 5.0990195, float64(v.Length()), 1e-6)

	w := FromSlice([]float64{3, 4})
	assert.Equal(t, 5.0, w.Length())
}

func TestReductionsOnEmptyPanic(t *testing.T) {
	v := New[float32](0)
	assert.Panics(t, func() { v.Min() })
	assert.Panics(t, func() { v.Max() })
	assert.Panics(t, func() { v.Average() })
	assert.Panics(t, func() { v.Length() })
}

func TestAddAssignAndScale(t *testing.T) {
	v := FromSlice([]float32{1, 2, 3})
	v.AddAssign(FromSlice([]float32{1, 1, 1})).ScaleAssign(2)

	assert.Equal(t, []float32{4, 6, 8}, v.Data())
	assert.Panics(t, func() { v.AddAssign(New[float32](2)) })
}

func TestAddSub(t *testing.T) {
	a := FromSlice([]float32{5, 7, 9})
	b := FromSlice([]float32{1, 2, 3})

	sum, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float32{6, 9, 12}, sum.Data())

	diff, err := Sub(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float32{4, 5, 6}, diff.Data())

	// Operands are untouched.
	assert.Equal(t, []float32{5, 7, 9}, a.Data())
	assert.Equal(t, []float32{1, 2, 3}, b.Data())
}

func TestAddSubLengthMismatch(t *testing.T) {
	a := New[float32](3)
	b := New[float32](2)

	_, err := Add(a, b)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = Sub(a, b)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestDType(t *testing.T) {
	type weight float32

	assert.Equal(t, Float32, New[float32](1).DType())
	assert.Equal(t, Float64, New[float64](1).DType())
	assert.Equal(t, Float32, New[weight](1).DType())
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, "float64", Float64.String())
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1 2.5]", FromSlice([]float32{1, 2.5}).String())
	assert.Equal(t, "[]", New[float32](0).String())
}
