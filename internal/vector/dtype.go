// Package vector provides the fixed-length numeric vector used for neuron
// outputs and weight storage.
package vector

// Float is a constraint for supported element types.
type Float interface {
	~float32 | ~float64
}

// DataType represents runtime type information for vectors.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T Float]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	}
	// Named types built on float32/float64 fall through the type switch.
	if T(1)/T(3) == T(float32(1)/float32(3)) {
		return Float32
	}
	return Float64
}
