package activation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknown is returned by Parse for names without a registered function.
var ErrUnknown = errors.New("unknown activation")

var registry = map[string]Function{
	Identity{}.Name():         Identity{},
	ReLU{}.Name():             ReLU{},
	LeakyReLU{}.Name():        LeakyReLU{},
	Sigmoid{}.Name():          Sigmoid{},
	Tanh{}.Name():             Tanh{},
	SoftmaxNormalize{}.Name(): SoftmaxNormalize{},
}

// aliases accepted by Parse in addition to the canonical names.
var aliases = map[string]string{
	"null":      "identity",
	"none":      "identity",
	"linear":    "identity",
	"leakyrelu": "leaky-relu",
	"leaky":     "leaky-relu",
	"logistic":  "sigmoid",
	"normalize": "softmax",
}

// Parse returns the activation registered under name (case-insensitive).
func Parse(name string) (Function, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	fn, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w %q (valid: %s)", ErrUnknown, name, strings.Join(Names(), ", "))
	}
	return fn, nil
}

// Names returns the canonical names of all registered activations, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
