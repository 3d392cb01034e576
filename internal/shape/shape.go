// Package shape implements the shape arithmetic behind transform planning:
// normalizing partially specified (sizes, axes) requests, deriving the input
// and output shapes a transform engine requires, and building the per-axis
// slicers that adapt a user array to a differently sized internal buffer.
package shape

import "errors"

// Sentinel errors for shape and axis validation.
var (
	// ErrShape is returned when sizes and axes have different lengths, or
	// when their length exceeds the dimensionality of the array.
	ErrShape = errors.New("shape: sizes and axes are inconsistent with the array rank")

	// ErrAxis is returned when an axis index cannot be resolved against the
	// array rank.
	ErrAxis = errors.New("shape: axis out of range")
)

// Shape describes the extent of an N-dimensional row-major array.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total element count. A rank-0 shape has one element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}

	return n
}

// Equal reports whether two shapes have identical rank and extents.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}

	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)

	return out
}

// Strides returns row-major element strides: Strides()[i] is the distance in
// elements between consecutive indices along axis i.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}

	return strides
}

// ResolveAxis maps a possibly negative axis index onto [0, rank).
// Returns ErrAxis if the index falls outside the array.
func ResolveAxis(rank, axis int) (int, error) {
	idx := axis
	if idx < 0 {
		idx += rank
	}

	if idx < 0 || idx >= rank {
		return 0, ErrAxis
	}

	return idx, nil
}
