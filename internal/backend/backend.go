// Package backend selects and constructs numeric drivers.
package backend

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"

	"github.com/born-ml/kinet/internal/backend/blas"
	"github.com/born-ml/kinet/internal/backend/naive"
	"github.com/born-ml/kinet/internal/compute"
)

// ErrUnknownKind is returned by ParseKind for unrecognized driver names.
var ErrUnknownKind = errors.New("unknown backend")

// Kind identifies a driver implementation.
type Kind int

// Supported driver kinds.
const (
	Auto Kind = iota
	Naive
	BLAS
)

// String returns the flag spelling of the kind.
func (k Kind) String() string {
	switch k {
	case Auto:
		return "auto"
	case Naive:
		return "naive"
	case BLAS:
		return "blas"
	default:
		return "unknown"
	}
}

// Kinds lists all selectable kinds.
func Kinds() []Kind {
	return []Kind{Auto, Naive, BLAS}
}

// ParseKind parses a kind name (case-insensitive). "classic" and "scalar" are
// accepted for Naive, "accelerated" for BLAS.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Auto, nil
	case "naive", "classic", "scalar":
		return Naive, nil
	case "blas", "accelerated":
		return BLAS, nil
	default:
		return Auto, fmt.Errorf("%w %q", ErrUnknownKind, name)
	}
}

// New constructs the driver for kind. Auto resolves through Detect.
func New(kind Kind) (compute.Driver, error) {
	if kind == Auto {
		kind = Detect()
	}
	switch kind {
	case Naive:
		return naive.New(), nil
	case BLAS:
		return blas.New(), nil
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrUnknownKind, int(kind))
	}
}

// NewMath is New wrapped in a compute.Math facade.
func NewMath(kind Kind) (*compute.Math, error) {
	d, err := New(kind)
	if err != nil {
		return nil, err
	}
	return compute.New(d), nil
}

// Detect picks BLAS when the CPU offers wide fused multiply-add vectors
// (AVX2+FMA3 on amd64, ASIMD on arm64) and Naive otherwise.
func Detect() Kind {
	return detect(runtime.GOARCH, cpuid.CPU.Supports)
}

func detect(arch string, supports func(ids ...cpuid.FeatureID) bool) Kind {
	switch arch {
	case "amd64":
		if supports(cpuid.AVX2, cpuid.FMA3) {
			return BLAS
		}
	case "arm64":
		if supports(cpuid.ASIMD) {
			return BLAS
		}
	}
	return Naive
}

// Describe returns a one-line summary of the host CPU and the detected kind.
func Describe() string {
	brand := cpuid.CPU.BrandName
	if brand == "" {
		brand = cpuid.CPU.VendorString
	}
	if brand == "" {
		brand = "unknown CPU"
	}
	return fmt.Sprintf("%s (%s, %d cores): auto -> %s", brand, runtime.GOARCH, cpuid.CPU.PhysicalCores, Detect())
}
