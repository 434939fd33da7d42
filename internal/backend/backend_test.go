package backend

import (
	"testing"

	"github.com/klauspost/cpuid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"", Auto},
		{"auto", Auto},
		{"Naive", Naive},
		{"classic", Naive},
		{"BLAS", BLAS},
		{" accelerated ", BLAS},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseKind("cuda")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKindStringRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestNew(t *testing.T) {
	d, err := New(Naive)
	require.NoError(t, err)
	assert.Equal(t, "naive", d.Name())

	d, err = New(BLAS)
	require.NoError(t, err)
	assert.Equal(t, "blas", d.Name())

	d, err = New(Auto)
	require.NoError(t, err)
	assert.Equal(t, Detect().String(), d.Name())

	_, err = New(Kind(42))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestNewMath(t *testing.T) {
	m, err := NewMath(Naive)
	require.NoError(t, err)
	assert.Equal(t, "naive", m.Name())
}

func TestDetect(t *testing.T) {
	all := func(...cpuid.FeatureID) bool { return true }
	none := func(...cpuid.FeatureID) bool { return false }

	assert.Equal(t, BLAS, detect("amd64", all))
	assert.Equal(t, Naive, detect("amd64", none))
	assert.Equal(t, BLAS, detect("arm64", all))
	assert.Equal(t, Naive, detect("riscv64", all))
}

func TestDescribe(t *testing.T) {
	assert.Contains(t, Describe(), "auto -> ")
}
