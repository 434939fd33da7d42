// Package blas implements a driver on top of gonum's BLAS level-1 routines.
//
// Dot products use Sdsdot, which accumulates in float64 and adds a float32
// offset, so results can differ from the naive driver in the last bits.
package blas

import (
	"fmt"
	"sync/atomic"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"

	"github.com/born-ml/kinet/internal/compute"
	"github.com/born-ml/kinet/internal/vector"
)

// minOnes is the initial size of the shared ones buffer.
const minOnes = 64

// Driver forwards primitives to a blas.Float32 implementation.
type Driver struct {
	impl blas.Float32

	// ones backs the summations (Σ v[i] = v · 1). It only ever grows and a
	// published slice is never written again.
	ones atomic.Pointer[[]float32]
}

// Compile-time check that Driver implements compute.Driver.
var _ compute.Driver = (*Driver)(nil)

// New creates a driver using gonum's registered float32 BLAS implementation.
func New() *Driver {
	return NewWithImplementation(blas32.Implementation())
}

// NewWithImplementation creates a driver over a specific BLAS implementation.
func NewWithImplementation(impl blas.Float32) *Driver {
	if impl == nil {
		panic("blas.NewWithImplementation: nil implementation")
	}
	return &Driver{impl: impl}
}

// Name returns the driver name.
func (d *Driver) Name() string {
	return "blas"
}

// Dot returns Σ a[i]*b[i] + offset via Sdsdot.
func (d *Driver) Dot(a, b *vector.Vector[float32], offset float32) float32 {
	n := a.Len()
	if n != b.Len() {
		panic(fmt.Sprintf("blas.Dot: length mismatch %d != %d", n, b.Len()))
	}
	if n == 0 {
		return offset
	}
	return d.impl.Sdsdot(n, offset, a.Data(), 1, b.Data(), 1)
}

// Sum returns Σ v[i].
func (d *Driver) Sum(v *vector.Vector[float32]) float32 {
	return d.sum(v.Data())
}

// SumRange returns Σ v[i] for i in [start, min(start+count, len)).
func (d *Driver) SumRange(v *vector.Vector[float32], start, count int) float32 {
	lo, hi := compute.ClampRange(v.Len(), start, count)
	return d.sum(v.Data()[lo:hi])
}

func (d *Driver) sum(data []float32) float32 {
	n := len(data)
	if n == 0 {
		return 0
	}
	return float32(d.impl.Dsdot(n, data, 1, d.onesFor(n), 1))
}

// onesFor returns a slice of at least n ones.
func (d *Driver) onesFor(n int) []float32 {
	for {
		cur := d.ones.Load()
		if cur != nil && len(*cur) >= n {
			return (*cur)[:n]
		}

		size := max(minOnes, n)
		if cur != nil {
			size = max(size, 2*len(*cur))
		}
		grown := make([]float32, size)
		for i := range grown {
			grown[i] = 1
		}
		if d.ones.CompareAndSwap(cur, &grown) {
			return grown[:n]
		}
	}
}
