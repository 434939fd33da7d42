// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package metered provides a driver decorator that counts operations.
//
//	d := metered.New(naive.New())
//	m := compute.New(d)
//	// ... forward passes ...
//	fmt.Println(d.Counts().Dot)
//
// Counters are atomic; a metered driver may be shared between goroutines.
package metered

import (
	"github.com/born-ml/kinet/compute"
	internalmetered "github.com/born-ml/kinet/internal/backend/metered"
)

// Driver counts calls and forwards them to an inner driver.
type Driver = internalmetered.Driver

// Counts is a snapshot of the call counters.
type Counts = internalmetered.Counts

// New wraps inner. It panics if inner is nil.
func New(inner compute.Driver) *Driver {
	return internalmetered.New(inner)
}
