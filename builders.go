package fftadapt

import (
	"fmt"

	"github.com/cwbudde/fftadapt/internal/shape"
)

// The builder functions below all return an Adapter whose buffers and plan
// are negotiated from the array shape and the requested transform lengths.
// A transform length larger than the array axis zero-pads, a smaller one
// truncates; both may be mixed across axes of the same call.

// FFT builds a one-dimensional complex forward transform along axis.
// n is the transform length; n <= 0 takes the length from the array.
func FFT(a *Array, n, axis int, opts Options) (*Adapter, error) {
	sizes, axes, err := precook1D(a, n, axis)
	if err != nil {
		return nil, err
	}

	return buildTransform(a, sizes, axes, opts, false, false)
}

// IFFT builds a one-dimensional complex inverse transform along axis.
func IFFT(a *Array, n, axis int, opts Options) (*Adapter, error) {
	sizes, axes, err := precook1D(a, n, axis)
	if err != nil {
		return nil, err
	}

	return buildTransform(a, sizes, axes, opts, true, false)
}

// RFFT builds a one-dimensional real-to-complex forward transform along
// axis. n is the length in the real domain.
func RFFT(a *Array, n, axis int, opts Options) (*Adapter, error) {
	sizes, axes, err := precook1D(a, n, axis)
	if err != nil {
		return nil, err
	}

	return buildTransform(a, sizes, axes, opts, false, true)
}

// IRFFT builds a one-dimensional complex-to-real inverse transform along
// axis. n is the length in the real domain; n <= 0 infers (dim-1)*2 from the
// half spectrum.
func IRFFT(a *Array, n, axis int, opts Options) (*Adapter, error) {
	sizes, axes, err := precook1D(a, n, axis)
	if err != nil {
		return nil, err
	}

	return buildTransform(a, sizes, axes, opts, true, true)
}

// FFT2 builds a two-dimensional complex forward transform. Nil axes default
// to the last two.
func FFT2(a *Array, sizes, axes []int, opts Options) (*Adapter, error) {
	return buildTransform(a, sizes, axes2D(axes), opts, false, false)
}

// IFFT2 builds a two-dimensional complex inverse transform.
func IFFT2(a *Array, sizes, axes []int, opts Options) (*Adapter, error) {
	return buildTransform(a, sizes, axes2D(axes), opts, true, false)
}

// RFFT2 builds a two-dimensional real-to-complex forward transform.
func RFFT2(a *Array, sizes, axes []int, opts Options) (*Adapter, error) {
	return buildTransform(a, sizes, axes2D(axes), opts, false, true)
}

// IRFFT2 builds a two-dimensional complex-to-real inverse transform.
func IRFFT2(a *Array, sizes, axes []int, opts Options) (*Adapter, error) {
	return buildTransform(a, sizes, axes2D(axes), opts, true, true)
}

// FFTN builds an N-dimensional complex forward transform. Nil sizes take the
// transform lengths from the array; nil axes default to the last len(sizes)
// axes, or every axis when sizes are nil too.
func FFTN(a *Array, sizes, axes []int, opts Options) (*Adapter, error) {
	return buildTransform(a, sizes, axes, opts, false, false)
}

// IFFTN builds an N-dimensional complex inverse transform.
func IFFTN(a *Array, sizes, axes []int, opts Options) (*Adapter, error) {
	return buildTransform(a, sizes, axes, opts, true, false)
}

// RFFTN builds an N-dimensional real-to-complex forward transform. The half
// spectrum is stored along the last listed axis.
func RFFTN(a *Array, sizes, axes []int, opts Options) (*Adapter, error) {
	return buildTransform(a, sizes, axes, opts, false, true)
}

// IRFFTN builds an N-dimensional complex-to-real inverse transform.
func IRFFTN(a *Array, sizes, axes []int, opts Options) (*Adapter, error) {
	return buildTransform(a, sizes, axes, opts, true, true)
}

// precook1D turns the 1-D (n, axis) convention into (sizes, axes), forcing
// an axis error up front the way indexing the shape would.
func precook1D(a *Array, n, axis int) ([]int, []int, error) {
	if a == nil {
		return nil, nil, ErrNilArray
	}

	if _, err := shape.ResolveAxis(a.Rank(), axis); err != nil {
		return nil, nil, fmt.Errorf("%w: axis %d with rank %d", ErrAxis, axis, a.Rank())
	}

	var sizes []int
	if n > 0 {
		sizes = []int{n}
	}

	return sizes, []int{axis}, nil
}

func axes2D(axes []int) []int {
	if axes == nil {
		return []int{-2, -1}
	}

	return axes
}
