// Package naive implements the scalar reference driver.
package naive

import (
	"fmt"

	"github.com/born-ml/kinet/internal/compute"
	"github.com/born-ml/kinet/internal/vector"
)

// Driver computes every primitive with plain Go loops and float32
// accumulation.
type Driver struct{}

// Compile-time check that Driver implements compute.Driver.
var _ compute.Driver = (*Driver)(nil)

// New creates a new naive driver.
func New() *Driver {
	return &Driver{}
}

// Name returns the driver name.
func (d *Driver) Name() string {
	return "naive"
}

// Dot returns Σ a[i]*b[i] + offset.
func (d *Driver) Dot(a, b *vector.Vector[float32], offset float32) float32 {
	if a.Len() != b.Len() {
		panic(fmt.Sprintf("naive.Dot: length mismatch %d != %d", a.Len(), b.Len()))
	}
	x, y := a.Data(), b.Data()
	y = y[:len(x)]

	sum := offset
	for i := range x {
		sum += x[i] * y[i]
	}
	return sum
}

// Sum returns Σ v[i].
func (d *Driver) Sum(v *vector.Vector[float32]) float32 {
	return sumSlice(v.Data())
}

// SumRange returns Σ v[i] for i in [start, min(start+count, len)).
func (d *Driver) SumRange(v *vector.Vector[float32], start, count int) float32 {
	lo, hi := compute.ClampRange(v.Len(), start, count)
	return sumSlice(v.Data()[lo:hi])
}

func sumSlice(data []float32) float32 {
	var sum float32
	for _, value := range data {
		sum += value
	}
	return sum
}
