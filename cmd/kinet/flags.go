package main

import (
	"os"

	"github.com/spf13/pflag"

	"github.com/born-ml/kinet/activation"
	"github.com/born-ml/kinet/backend"
)

// envBackend names the environment variable that sets the default --backend.
const envBackend = "KINET_BACKEND"

// kindValue adapts backend.Kind to pflag.
type kindValue struct {
	kind *backend.Kind
}

var _ pflag.Value = kindValue{}

func (v kindValue) String() string {
	if v.kind == nil {
		return backend.Auto.String()
	}
	return v.kind.String()
}

func (v kindValue) Set(s string) error {
	k, err := backend.ParseKind(s)
	if err != nil {
		return err
	}
	*v.kind = k
	return nil
}

func (v kindValue) Type() string {
	return "backend"
}

// kindFromEnv seeds kind from KINET_BACKEND. The error is reported only when
// the flag is not given explicitly.
func kindFromEnv(kind *backend.Kind) error {
	env, ok := os.LookupEnv(envBackend)
	if !ok {
		return nil
	}
	return kindValue{kind}.Set(env)
}

// activationValue adapts activation.Function to pflag.
type activationValue struct {
	fn *activation.Function
}

var _ pflag.Value = activationValue{}

func (v activationValue) String() string {
	if v.fn == nil || *v.fn == nil {
		return ""
	}
	return (*v.fn).Name()
}

func (v activationValue) Set(s string) error {
	f, err := activation.Parse(s)
	if err != nil {
		return err
	}
	*v.fn = f
	return nil
}

func (v activationValue) Type() string {
	return "activation"
}
