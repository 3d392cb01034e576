package mem

import "testing"

func TestAllocAlignment(t *testing.T) {
	t.Parallel()

	for _, align := range []int{16, 32, 64} {
		data, backing := Alloc(1000, align)

		if len(data) != 1000 {
			t.Fatalf("Alloc size = %d, want 1000", len(data))
		}

		if backing == nil {
			t.Fatal("Alloc returned nil backing")
		}

		if !Aligned(data, align) {
			t.Errorf("buffer not aligned to %d bytes", align)
		}
	}
}

func TestAllocZeroed(t *testing.T) {
	t.Parallel()

	data, _ := Alloc(256, 64)
	for i, b := range data {
		if b != 0 {
			t.Fatalf("data[%d] = %d, want 0", i, b)
		}
	}
}

func TestAllocZeroSize(t *testing.T) {
	t.Parallel()

	data, _ := Alloc(0, 16)
	if len(data) != 0 {
		t.Fatalf("Alloc(0) size = %d, want 0", len(data))
	}
}

func TestDefaultAlignment(t *testing.T) {
	t.Parallel()

	align := DefaultAlignment()
	if align < 16 || align&(align-1) != 0 {
		t.Fatalf("DefaultAlignment() = %d, want a power of two >= 16", align)
	}
}
