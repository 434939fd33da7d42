// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package compute provides the numeric driver abstraction used by layers.
//
// A Driver implements the dot product and the sums forward propagation needs.
// Math wraps one driver and is shared by every layer of a network, so a
// network runs unchanged on any driver:
//
//	m := compute.New(naive.New())
//	v := m.Dot(weights, inputs, 0)
package compute

import "github.com/born-ml/kinet/internal/compute"

// Driver is a pluggable numeric implementation.
type Driver = compute.Driver

// Math forwards every operation to a single driver.
type Math = compute.Math

// New wraps driver. It panics if driver is nil.
func New(driver Driver) *Math {
	return compute.New(driver)
}

// ClampRange returns the half-open index range [lo, hi) that SumRange covers
// for a vector of length n.
func ClampRange(n, start, count int) (lo, hi int) {
	return compute.ClampRange(n, start, count)
}
