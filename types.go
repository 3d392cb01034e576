package fftadapt

import "github.com/cwbudde/fftadapt/internal/dtype"

// DType identifies the element type of an Array.
// The canonical definition is in internal/dtype.
type DType = dtype.DType

// Element types supported by Array buffers. Float16 is storage-only and is
// promoted to the float32 tier during input coercion.
const (
	Float16    = dtype.Float16
	Float32    = dtype.Float32
	Float64    = dtype.Float64
	Complex64  = dtype.Complex64
	Complex128 = dtype.Complex128
)

// Direction selects between the forward and inverse transform.
type Direction uint8

const (
	// Forward transforms from the original domain into the frequency domain.
	Forward Direction = iota

	// Inverse transforms from the frequency domain back.
	Inverse
)

// String returns the conventional name of the direction.
func (d Direction) String() string {
	if d == Inverse {
		return "inverse"
	}

	return "forward"
}

// Kind selects the transform family.
type Kind uint8

const (
	// KindComplex is the complex-to-complex transform.
	KindComplex Kind = iota

	// KindRealToComplex consumes real data and produces the non-redundant
	// half spectrum.
	KindRealToComplex

	// KindComplexToReal consumes a half spectrum and produces real data.
	KindComplexToReal
)

// String returns the conventional name of the transform kind.
func (k Kind) String() string {
	switch k {
	case KindRealToComplex:
		return "r2c"
	case KindComplexToReal:
		return "c2r"
	default:
		return "c2c"
	}
}
