// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vector_test

import (
	"errors"
	"testing"

	"github.com/born-ml/kinet/vector"
)

// TestVectorAPI verifies the aliases expose the vector operations.
func TestVectorAPI(t *testing.T) {
	a := vector.FromSlice([]float32{1, 2, 3})
	b := vector.FromSlice([]float32{4, 5, 6})

	sum, err := vector.Add(a, b)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if got := sum.String(); got != "[5 7 9]" {
		t.Errorf("Add = %s, want [5 7 9]", got)
	}
	if a.At(0) != 1 || b.At(0) != 4 {
		t.Error("Add modified its operands")
	}

	diff, err := vector.Sub(b, a)
	if err != nil {
		t.Fatalf("Sub failed: %v", err)
	}
	if got := diff.Length(); got*got < 26.99 || got*got > 27.01 {
		t.Errorf("Length() = %v, want sqrt(27)", got)
	}

	if _, err := vector.Sub(a, vector.New[float32](2)); !errors.Is(err, vector.ErrLengthMismatch) {
		t.Errorf("Sub with mismatched lengths = %v, want ErrLengthMismatch", err)
	}

	if dt := vector.New[float64](1).DType(); dt != vector.Float64 {
		t.Errorf("DType() = %v, want Float64", dt)
	}
}
