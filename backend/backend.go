// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package backend selects a numeric driver by kind.
//
// # Overview
//
// Two drivers are available:
//   - naive: scalar Go loops (backend/naive)
//   - blas: gonum BLAS level 1 routines (backend/blas)
//
// Auto picks blas on CPUs with AVX2 and FMA (amd64) or ASIMD (arm64) and
// naive everywhere else.
//
// # Basic Usage
//
//	kind, err := backend.ParseKind(os.Getenv("KINET_BACKEND"))
//	if err != nil {
//	    return err
//	}
//	m, err := backend.NewMath(kind)
//	if err != nil {
//	    return err
//	}
//	var net nn.Network
//	err = net.Init([]int{3, 10, 8}, activation.ReLU{}, activation.Sigmoid{}, m)
package backend

import (
	"github.com/born-ml/kinet/compute"
	"github.com/born-ml/kinet/internal/backend"
)

// Kind identifies a driver implementation.
type Kind = backend.Kind

// Driver kinds.
const (
	Auto  = backend.Auto
	Naive = backend.Naive
	BLAS  = backend.BLAS
)

// ErrUnknownKind is returned by ParseKind for unrecognized names.
var ErrUnknownKind = backend.ErrUnknownKind

// Kinds lists all selectable kinds, Auto first.
func Kinds() []Kind {
	return backend.Kinds()
}

// ParseKind parses a driver name such as "auto", "naive" or "blas".
func ParseKind(name string) (Kind, error) {
	return backend.ParseKind(name)
}

// New returns a driver of the given kind. Auto is resolved with Detect.
func New(kind Kind) (compute.Driver, error) {
	return backend.New(kind)
}

// NewMath returns a Math facade over a driver of the given kind.
func NewMath(kind Kind) (*compute.Math, error) {
	return backend.NewMath(kind)
}

// Detect returns the kind Auto resolves to on this machine.
func Detect() Kind {
	return backend.Detect()
}

// Describe reports the CPU and the detected kind in one line.
func Describe() string {
	return backend.Describe()
}
