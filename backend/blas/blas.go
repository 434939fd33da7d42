// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package blas provides a driver backed by gonum's BLAS level 1 routines.
//
// Dot products accumulate in float64 (sdsdot), so results can differ from the
// naive driver in the last bits of the float32 mantissa.
package blas

import (
	"gonum.org/v1/gonum/blas"

	"github.com/born-ml/kinet/compute"
	internalblas "github.com/born-ml/kinet/internal/backend/blas"
)

// Driver forwards to a blas.Float32 implementation.
type Driver = internalblas.Driver

// Compile-time check that Driver implements compute.Driver.
var _ compute.Driver = (*Driver)(nil)

// New creates a driver on the implementation registered with gonum's blas32
// package (pure Go unless one was installed with blas32.Use).
func New() *Driver {
	return internalblas.New()
}

// NewWithImplementation creates a driver on impl.
func NewWithImplementation(impl blas.Float32) *Driver {
	return internalblas.NewWithImplementation(impl)
}
