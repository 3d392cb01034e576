package fftadapt

import (
	"fmt"
	"unsafe"

	"github.com/x448/float16"

	"github.com/cwbudde/fftadapt/internal/dtype"
	"github.com/cwbudde/fftadapt/internal/mem"
	"github.com/cwbudde/fftadapt/internal/shape"
)

// Array is a dense row-major N-dimensional array over an alignment-correct
// byte buffer. The zero value is not usable; construct arrays with NewArray
// or one of the From* helpers.
type Array struct {
	dt      DType
	shp     shape.Shape
	data    []byte
	backing []byte
}

// NewArray allocates a zeroed array of the given element type and dimensions.
// The buffer base address is aligned for the widest SIMD extension of the
// current CPU.
func NewArray(dt DType, dims ...int) *Array {
	return newAligned(dt, shape.Shape(dims).Clone(), mem.DefaultAlignment())
}

func newAligned(dt DType, shp shape.Shape, align int) *Array {
	data, backing := mem.Alloc(shp.NumElements()*dt.Size(), align)

	return &Array{dt: dt, shp: shp, data: data, backing: backing}
}

// FromFloat64 copies values into a new float64 array of the given dimensions.
func FromFloat64(values []float64, dims ...int) (*Array, error) {
	a := NewArray(Float64, dims...)
	if len(values) != a.Len() {
		return nil, fmt.Errorf("%w: %d values for shape %v", ErrShape, len(values), dims)
	}

	copy(a.Float64s(), values)

	return a, nil
}

// FromFloat32 copies values into a new float32 array of the given dimensions.
func FromFloat32(values []float32, dims ...int) (*Array, error) {
	a := NewArray(Float32, dims...)
	if len(values) != a.Len() {
		return nil, fmt.Errorf("%w: %d values for shape %v", ErrShape, len(values), dims)
	}

	copy(a.Float32s(), values)

	return a, nil
}

// FromComplex128 copies values into a new complex128 array of the given
// dimensions.
func FromComplex128(values []complex128, dims ...int) (*Array, error) {
	a := NewArray(Complex128, dims...)
	if len(values) != a.Len() {
		return nil, fmt.Errorf("%w: %d values for shape %v", ErrShape, len(values), dims)
	}

	copy(a.Complex128s(), values)

	return a, nil
}

// FromComplex64 copies values into a new complex64 array of the given
// dimensions.
func FromComplex64(values []complex64, dims ...int) (*Array, error) {
	a := NewArray(Complex64, dims...)
	if len(values) != a.Len() {
		return nil, fmt.Errorf("%w: %d values for shape %v", ErrShape, len(values), dims)
	}

	copy(a.Complex64s(), values)

	return a, nil
}

// FromFloat16 copies half-precision values into a new float16 array of the
// given dimensions.
func FromFloat16(values []float16.Float16, dims ...int) (*Array, error) {
	a := NewArray(Float16, dims...)
	if len(values) != a.Len() {
		return nil, fmt.Errorf("%w: %d values for shape %v", ErrShape, len(values), dims)
	}

	copy(a.Float16s(), values)

	return a, nil
}

// DType returns the element type.
func (a *Array) DType() DType {
	return a.dt
}

// Shape returns a copy of the array dimensions.
func (a *Array) Shape() []int {
	return a.shp.Clone()
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int {
	return a.shp.Rank()
}

// Len returns the total element count.
func (a *Array) Len() int {
	return a.shp.NumElements()
}

// Strides returns row-major element strides.
func (a *Array) Strides() []int {
	return a.shp.Strides()
}

// Bytes returns the raw element storage.
func (a *Array) Bytes() []byte {
	return a.data
}

// Float32s returns the elements as a float32 slice.
// Panics if the element type differs.
func (a *Array) Float32s() []float32 {
	a.require(Float32)
	return viewAs[float32](a)
}

// Float64s returns the elements as a float64 slice.
// Panics if the element type differs.
func (a *Array) Float64s() []float64 {
	a.require(Float64)
	return viewAs[float64](a)
}

// Complex64s returns the elements as a complex64 slice.
// Panics if the element type differs.
func (a *Array) Complex64s() []complex64 {
	a.require(Complex64)
	return viewAs[complex64](a)
}

// Complex128s returns the elements as a complex128 slice.
// Panics if the element type differs.
func (a *Array) Complex128s() []complex128 {
	a.require(Complex128)
	return viewAs[complex128](a)
}

// Float16s returns the elements as a half-precision slice.
// Panics if the element type differs.
func (a *Array) Float16s() []float16.Float16 {
	a.require(Float16)
	return viewAs[float16.Float16](a)
}

func (a *Array) require(dt DType) {
	if a.dt != dt {
		panic(fmt.Sprintf("fftadapt: %s view of a %s array", dt, a.dt))
	}
}

func viewAs[T any](a *Array) []T {
	if a.Len() == 0 {
		return nil
	}

	return unsafe.Slice((*T)(unsafe.Pointer(&a.data[0])), a.Len())
}

// Zero clears every element.
func (a *Array) Zero() {
	clear(a.data)
}

// Clone returns a deep copy sharing nothing with the receiver.
func (a *Array) Clone() *Array {
	out := newAligned(a.dt, a.shp.Clone(), mem.DefaultAlignment())
	copy(out.data, a.data)

	return out
}

// aligned reports whether the buffer base address satisfies align.
func (a *Array) aligned(align int) bool {
	return mem.Aligned(a.data, align)
}

// convertTo returns the array itself when it already has the target element
// type, and an element-wise converted copy otherwise. Conversion from a
// complex to a real type keeps the real part.
func (a *Array) convertTo(dt DType) *Array {
	if a.dt == dt {
		return a
	}

	out := newAligned(dt, a.shp.Clone(), mem.DefaultAlignment())

	for i := 0; i < a.Len(); i++ {
		setElem(out, i, elem(a, i))
	}

	return out
}

func elem(a *Array, i int) complex128 {
	switch a.dt {
	case Float16:
		return complex(float64(viewAs[float16.Float16](a)[i].Float32()), 0)
	case Float32:
		return complex(float64(viewAs[float32](a)[i]), 0)
	case Float64:
		return complex(viewAs[float64](a)[i], 0)
	case Complex64:
		return complex128(viewAs[complex64](a)[i])
	case Complex128:
		return viewAs[complex128](a)[i]
	default:
		panic("fftadapt: invalid element type")
	}
}

func setElem(a *Array, i int, v complex128) {
	switch a.dt {
	case Float16:
		viewAs[float16.Float16](a)[i] = float16.Fromfloat32(float32(real(v)))
	case Float32:
		viewAs[float32](a)[i] = float32(real(v))
	case Float64:
		viewAs[float64](a)[i] = real(v)
	case Complex64:
		viewAs[complex64](a)[i] = complex64(v)
	case Complex128:
		viewAs[complex128](a)[i] = v
	default:
		panic("fftadapt: invalid element type")
	}
}

// supportedDType reports whether dt can participate in a transform, either
// directly or through coercion.
func supportedDType(dt DType) bool {
	if _, ok := dtype.Complement(dt); ok {
		return true
	}

	return dt == Float16
}
