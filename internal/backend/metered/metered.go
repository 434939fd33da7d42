// Package metered provides a decorator driver that counts primitive calls.
//
// It wraps any compute.Driver and forwards every call unchanged, which makes
// it useful for verifying how often a layer touches the backend.
package metered

import (
	"sync/atomic"

	"github.com/born-ml/kinet/internal/compute"
	"github.com/born-ml/kinet/internal/vector"
)

// Counts is a snapshot of the number of calls per primitive.
type Counts struct {
	Dot      uint64
	Sum      uint64
	SumRange uint64
}

// Total returns the number of calls across all primitives.
func (c Counts) Total() uint64 {
	return c.Dot + c.Sum + c.SumRange
}

// Driver counts calls and delegates them to an inner driver.
type Driver struct {
	inner compute.Driver

	dot      atomic.Uint64
	sum      atomic.Uint64
	sumRange atomic.Uint64
}

// Compile-time check that Driver implements compute.Driver.
var _ compute.Driver = (*Driver)(nil)

// New wraps inner.
func New(inner compute.Driver) *Driver {
	if inner == nil {
		panic("metered.New: nil inner driver")
	}
	return &Driver{inner: inner}
}

// Name returns the inner driver's name with a "metered/" prefix.
func (d *Driver) Name() string {
	return "metered/" + d.inner.Name()
}

// Inner returns the wrapped driver.
func (d *Driver) Inner() compute.Driver {
	return d.inner
}

// Dot counts and forwards.
func (d *Driver) Dot(a, b *vector.Vector[float32], offset float32) float32 {
	d.dot.Add(1)
	return d.inner.Dot(a, b, offset)
}

// Sum counts and forwards.
func (d *Driver) Sum(v *vector.Vector[float32]) float32 {
	d.sum.Add(1)
	return d.inner.Sum(v)
}

// SumRange counts and forwards.
func (d *Driver) SumRange(v *vector.Vector[float32], start, count int) float32 {
	d.sumRange.Add(1)
	return d.inner.SumRange(v, start, count)
}

// Counts returns the current counters.
func (d *Driver) Counts() Counts {
	return Counts{
		Dot:      d.dot.Load(),
		Sum:      d.sum.Load(),
		SumRange: d.sumRange.Load(),
	}
}

// Reset zeroes all counters.
func (d *Driver) Reset() {
	d.dot.Store(0)
	d.sum.Store(0)
	d.sumRange.Store(0)
}
