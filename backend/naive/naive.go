// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package naive provides the scalar Go driver.
package naive

import (
	"github.com/born-ml/kinet/compute"
	internalnaive "github.com/born-ml/kinet/internal/backend/naive"
)

// Driver computes dot products and sums with plain float32 loops.
type Driver = internalnaive.Driver

// Compile-time check that Driver implements compute.Driver.
var _ compute.Driver = (*Driver)(nil)

// New creates a naive driver.
//
// Example:
//
//	m := compute.New(naive.New())
func New() *Driver {
	return internalnaive.New()
}
