// Package compute defines the numeric driver contract and the Math facade
// injected into every layer.
package compute

import (
	"github.com/born-ml/kinet/internal/vector"
)

// Driver defines the numeric primitives every backend must implement.
//
// Implementations:
//   - backend/naive: scalar Go loops
//   - backend/blas: gonum BLAS level-1 routines
//
// Decorator drivers for additional functionality:
//   - backend/metered: counts primitive calls (wraps any driver)
//
// Drivers hold no per-computation state and may be shared by any number of
// layers and networks.
type Driver interface {
	// Dot returns Σ a[i]*b[i] + offset. Lengths must match; a mismatch is a
	// programming error and panics.
	Dot(a, b *vector.Vector[float32], offset float32) float32

	// Sum returns Σ v[i] over the whole vector.
	Sum(v *vector.Vector[float32]) float32

	// SumRange returns Σ v[i] for i in [start, min(start+count, v.Len())).
	// Indexes past the end are clamped, never read.
	SumRange(v *vector.Vector[float32], start, count int) float32

	// Name returns the driver name (e.g. "naive", "blas").
	Name() string
}

// Math forwards numeric primitives to one Driver for its whole lifetime.
type Math struct {
	driver Driver
}

// New creates a facade over driver.
func New(driver Driver) *Math {
	if driver == nil {
		panic("compute.New: nil driver")
	}
	return &Math{driver: driver}
}

// Dot forwards to Driver.Dot.
func (m *Math) Dot(a, b *vector.Vector[float32], offset float32) float32 {
	return m.driver.Dot(a, b, offset)
}

// Sum forwards to Driver.Sum.
func (m *Math) Sum(v *vector.Vector[float32]) float32 {
	return m.driver.Sum(v)
}

// SumRange forwards to Driver.SumRange.
func (m *Math) SumRange(v *vector.Vector[float32], start, count int) float32 {
	return m.driver.SumRange(v, start, count)
}

// Driver returns the wrapped driver.
func (m *Math) Driver() Driver {
	return m.driver
}

// Name returns the wrapped driver's name.
func (m *Math) Name() string {
	return m.driver.Name()
}

// ClampRange converts (start, count) into a half-open [lo, hi) range valid for
// a vector of length n. Drivers use it to implement SumRange.
func ClampRange(n, start, count int) (lo, hi int) {
	if count < 0 {
		count = 0
	}
	if start >= n {
		return n, n
	}
	lo, hi = start, n
	if count < n-start {
		hi = start + count
	}
	if lo < 0 {
		lo = 0
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
