package nn

import "errors"

// Construction and lookup errors.
var (
	ErrTooFewLayers         = errors.New("network needs at least one layer")
	ErrZeroNeuronsInLayer   = errors.New("layer has zero neurons")
	ErrOutOfMemory          = errors.New("out of memory")
	ErrZeroNeurons          = errors.New("neuron count must be positive")
	ErrNilMath              = errors.New("nil math facade")
	ErrParentNotInitialized = errors.New("parent layer is not initialized")
	ErrParentCycle          = errors.New("parent chain contains the layer itself")
	ErrNotInitialized       = errors.New("network is not initialized")
	ErrInputSize            = errors.New("input size mismatch")
)
