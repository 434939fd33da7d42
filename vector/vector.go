// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vector provides the fixed-length numeric vector used for neuron
// outputs and weights.
//
// # Basic Usage
//
//	import "github.com/born-ml/kinet/vector"
//
//	func main() {
//	    a := vector.FromSlice([]float32{1, 2, 3})
//	    b := vector.FromSlice([]float32{4, 5, 6})
//
//	    sum, err := vector.Add(a, b) // a and b are not modified
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(sum, sum.Length())
//	}
//
// # Ownership
//
// A Vector owns its buffer. Clone makes an independent copy, Move hands the
// buffer to a new Vector and leaves the source empty. Data exposes the
// backing slice for in-place writes.
package vector

import "github.com/born-ml/kinet/internal/vector"

// Float is the element constraint: float32 or float64 and named types thereof.
type Float = vector.Float

// Vector is a fixed-length sequence of T.
type Vector[T Float] = vector.Vector[T]

// DataType identifies the element type at runtime.
type DataType = vector.DataType

// Element types.
const (
	Float32 = vector.Float32
	Float64 = vector.Float64
)

// ErrLengthMismatch is returned by Add and Sub for operands of unequal length.
var ErrLengthMismatch = vector.ErrLengthMismatch

// New returns a zeroed vector of length n.
func New[T Float](n int) *Vector[T] {
	return vector.New[T](n)
}

// FromSlice returns a vector holding a copy of values.
func FromSlice[T Float](values []T) *Vector[T] {
	return vector.FromSlice(values)
}

// Add returns a + b as a new vector.
func Add[T Float](a, b *Vector[T]) (*Vector[T], error) {
	return vector.Add(a, b)
}

// Sub returns a - b as a new vector.
func Sub[T Float](a, b *Vector[T]) (*Vector[T], error) {
	return vector.Sub(a, b)
}
