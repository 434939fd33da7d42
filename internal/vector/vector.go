package vector

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/chewxy/math32"
)

// ErrLengthMismatch is returned by the free arithmetic functions when the
// operands have different lengths.
var ErrLengthMismatch = errors.New("vector length mismatch")

// Vector is a fixed-length buffer of T owned by exactly one holder.
//
// The length is decided at construction and never changes, except that Move
// leaves the source empty. Index access outside [0, Len()) is a programming
// error and panics.
//
// Example:
//
//	v := vector.New[float32](4)
//	v.SetAll(1)
//	v.ScaleAssign(0.5)
//	fmt.Println(v.Average()) // 0.5
type Vector[T Float] struct {
	data []T
}

// New creates a zero-filled vector of length n.
func New[T Float](n int) *Vector[T] {
	if n < 0 {
		panic(fmt.Sprintf("vector.New: negative length %d", n))
	}
	return &Vector[T]{data: make([]T, n)}
}

// FromSlice creates a vector holding a copy of values.
func FromSlice[T Float](values []T) *Vector[T] {
	v := New[T](len(values))
	copy(v.data, values)
	return v
}

// Clone returns an independent copy. The receiver is left untouched.
func (v *Vector[T]) Clone() *Vector[T] {
	return FromSlice(v.data)
}

// Move transfers the buffer into a new vector and empties the receiver.
func (v *Vector[T]) Move() *Vector[T] {
	moved := &Vector[T]{data: v.data}
	v.data = nil
	return moved
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return len(v.data)
}

// DType returns the runtime element type.
func (v *Vector[T]) DType() DataType {
	return inferDataType[T]()
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) T {
	v.checkIndex("At", i)
	return v.data[i]
}

// Set stores value at index i.
func (v *Vector[T]) Set(i int, value T) {
	v.checkIndex("Set", i)
	v.data[i] = value
}

// Data returns the backing slice. Writes through it modify the vector.
func (v *Vector[T]) Data() []T {
	return v.data
}

func (v *Vector[T]) checkIndex(op string, i int) {
	if i < 0 || i >= len(v.data) {
		panic(fmt.Sprintf("vector.%s: index %d out of range [0, %d)", op, i, len(v.data)))
	}
}

// ForEach calls visit for every element in index order.
func (v *Vector[T]) ForEach(visit func(i int, value T)) {
	for i, value := range v.data {
		visit(i, value)
	}
}

// Apply replaces every element with the result of fn, in index order.
func (v *Vector[T]) Apply(fn func(i int, value T) T) {
	for i, value := range v.data {
		v.data[i] = fn(i, value)
	}
}

// All returns an iterator over (index, value) pairs in index order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, value := range v.data {
			if !yield(i, value) {
				return
			}
		}
	}
}

// SetAll assigns value to every element.
func (v *Vector[T]) SetAll(value T) {
	for i := range v.data {
		v.data[i] = value
	}
}

// Min returns the smallest element. Panics on an empty vector.
func (v *Vector[T]) Min() T {
	v.checkNotEmpty("Min")
	m := v.data[0]
	for _, value := range v.data[1:] {
		if value < m {
			m = value
		}
	}
	return m
}

// Max returns the largest element. Panics on an empty vector.
func (v *Vector[T]) Max() T {
	v.checkNotEmpty("Max")
	m := v.data[0]
	for _, value := range v.data[1:] {
		if value > m {
			m = value
		}
	}
	return m
}

// Average returns the arithmetic mean. Panics on an empty vector.
func (v *Vector[T]) Average() T {
	v.checkNotEmpty("Average")
	var sum T
	for _, value := range v.data {
		sum += value
	}
	return sum / T(len(v.data))
}

// LengthSquared returns the squared Euclidean norm. Panics on an empty vector.
func (v *Vector[T]) LengthSquared() T {
	v.checkNotEmpty("LengthSquared")
	var sum T
	for _, value := range v.data {
		sum += value * value
	}
	return sum
}

// Length returns the Euclidean norm. Panics on an empty vector.
func (v *Vector[T]) Length() T {
	sq := v.LengthSquared()
	if v.DType() == Float32 {
		return T(math32.Sqrt(float32(sq)))
	}
	return T(math.Sqrt(float64(sq)))
}

func (v *Vector[T]) checkNotEmpty(op string) {
	if len(v.data) == 0 {
		panic(fmt.Sprintf("vector.%s: empty vector", op))
	}
}

// AddAssign adds other element-wise into v. Lengths must match.
func (v *Vector[T]) AddAssign(other *Vector[T]) *Vector[T] {
	if other.Len() != v.Len() {
		panic(fmt.Sprintf("vector.AddAssign: length mismatch %d != %d", v.Len(), other.Len()))
	}
	for i, value := range other.data {
		v.data[i] += value
	}
	return v
}

// ScaleAssign multiplies every element by scale.
func (v *Vector[T]) ScaleAssign(scale T) *Vector[T] {
	for i := range v.data {
		v.data[i] *= scale
	}
	return v
}

// Equal reports whether both vectors have the same length and elements.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if v.Len() != other.Len() {
		return false
	}
	for i, value := range v.data {
		if other.data[i] != value {
			return false
		}
	}
	return true
}

// String formats the vector as [a b c].
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, value := range v.data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%g", value)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Add returns a+b as a new vector. Neither operand is modified.
func Add[T Float](a, b *Vector[T]) (*Vector[T], error) {
	if a.Len() != b.Len() {
		return nil, fmt.Errorf("add %d and %d elements: %w", a.Len(), b.Len(), ErrLengthMismatch)
	}
	return a.Clone().AddAssign(b), nil
}

// Sub returns a-b as a new vector. Neither operand is modified.
func Sub[T Float](a, b *Vector[T]) (*Vector[T], error) {
	if a.Len() != b.Len() {
		return nil, fmt.Errorf("subtract %d and %d elements: %w", a.Len(), b.Len(), ErrLengthMismatch)
	}
	result := New[T](a.Len())
	for i := range result.data {
		result.data[i] = a.data[i] - b.data[i]
	}
	return result, nil
}
