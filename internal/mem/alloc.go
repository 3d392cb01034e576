// Package mem provides alignment-aware buffer allocation for transform
// engines with vectorized code paths.
package mem

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// DefaultAlignment returns the byte alignment the widest available SIMD
// extension of the current CPU benefits from: 64 for AVX-512, 32 for
// AVX2/NEON, 16 otherwise.
func DefaultAlignment() int {
	switch {
	case cpu.X86.HasAVX512:
		return 64
	case cpu.X86.HasAVX2:
		return 32
	case runtime.GOARCH == "arm64" && cpu.ARM64.HasASIMD:
		return 32
	default:
		return 16
	}
}

// Alloc returns a zeroed byte buffer of the given size whose base address is
// divisible by align, together with the backing slice that keeps it alive.
// align must be a power of two.
func Alloc(size, align int) (data, backing []byte) {
	if align < 1 {
		align = 1
	}

	backing = make([]byte, size+align)
	offset := align - int(uintptr(unsafe.Pointer(&backing[0]))&uintptr(align-1))
	if offset == align {
		offset = 0
	}

	return backing[offset : offset+size : offset+size], backing
}

// Aligned reports whether the base address of data satisfies align.
func Aligned(data []byte, align int) bool {
	if len(data) == 0 || align < 2 {
		return true
	}

	return uintptr(unsafe.Pointer(&data[0]))&uintptr(align-1) == 0
}
