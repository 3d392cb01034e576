package fftadapt

import (
	"errors"
	"testing"
)

func TestNewArrayZeroed(t *testing.T) {
	t.Parallel()

	a := NewArray(Complex128, 3, 4)

	if a.Len() != 12 || a.Rank() != 2 {
		t.Fatalf("Len/Rank = %d/%d, want 12/2", a.Len(), a.Rank())
	}

	for i, v := range a.Complex128s() {
		if v != 0 {
			t.Fatalf("element %d = %v, want 0", i, v)
		}
	}
}

func TestFromSliceLengthMismatch(t *testing.T) {
	t.Parallel()

	if _, err := FromFloat64([]float64{1, 2, 3}, 2, 2); !errors.Is(err, ErrShape) {
		t.Errorf("err = %v, want ErrShape", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	a := mustComplexArray(t, complexRamp(4), 4)
	b := a.Clone()

	b.Complex128s()[0] = 99

	if a.Complex128s()[0] == 99 {
		t.Error("Clone shares storage with the original")
	}

	if !b.shp.Equal(a.shp) || b.dt != a.dt {
		t.Error("Clone changed shape or element type")
	}
}

func TestZeroClearsElements(t *testing.T) {
	t.Parallel()

	a := mustComplexArray(t, complexRamp(4), 4)
	a.Zero()

	for i, v := range a.Complex128s() {
		if v != 0 {
			t.Fatalf("element %d = %v after Zero", i, v)
		}
	}
}

func TestConvertToKeepsRealPart(t *testing.T) {
	t.Parallel()

	a := mustComplexArray(t, []complex128{1 + 2i, -3 + 4i}, 2)
	b := a.convertTo(Float64)

	want := []float64{1, -3}
	for i, v := range b.Float64s() {
		if v != want[i] {
			t.Fatalf("element %d = %v, want %v", i, v, want[i])
		}
	}
}

func TestConvertToSameTypeReturnsReceiver(t *testing.T) {
	t.Parallel()

	a := NewArray(Float32, 4)
	if a.convertTo(Float32) != a {
		t.Error("convertTo with identical type should not copy")
	}
}

func TestShapeAccessorReturnsCopy(t *testing.T) {
	t.Parallel()

	a := NewArray(Float64, 2, 3)
	s := a.Shape()
	s[0] = 17

	if a.Shape()[0] != 2 {
		t.Error("Shape() exposed internal state")
	}
}

func TestTypedViewPanicsOnWrongType(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("Float64s() on a complex array did not panic")
		}
	}()

	NewArray(Complex128, 2).Float64s()
}
