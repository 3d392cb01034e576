package fftadapt

import (
	"fmt"

	"github.com/cwbudde/fftadapt/internal/shape"
)

// Adapter is a transform bound to internally owned, alignment-correct
// buffers, plus the copy machinery that bridges a user array of a different
// shape onto them. Build once per (array shape, transform parameters)
// combination and invoke repeatedly.
//
// An Adapter is not safe for concurrent use: callers must serialize
// invocations or build one Adapter per goroutine.
type Adapter struct {
	plan     Plan
	in, out  *Array
	srcSpans []shape.Span // nil on the matched-shape path
	dstSpans []shape.Span
	owns     bool
	axes     []int
}

// Execute runs the transform.
//
// A non-nil newInput is slice-copied into the bound input buffer first; its
// sliced region must match the shape negotiated at construction, otherwise
// ErrInputShape is returned. The engine always reads the bound buffer, never
// newInput itself.
//
// A non-nil newOutput receives the result of this call instead of the
// adapter's own output buffer; it must match the negotiated output shape and
// element type exactly.
//
// normalizeInverse is passed through to the engine plan: an inverse
// transform result is scaled by the reciprocal of the logical transform
// size when set.
func (ad *Adapter) Execute(newInput, newOutput *Array, normalizeInverse bool) (*Array, error) {
	if newInput != nil {
		if err := ad.updateInput(newInput); err != nil {
			return nil, err
		}
	}

	if newOutput != nil {
		if !newOutput.shp.Equal(ad.out.shp) || newOutput.dt != ad.out.dt {
			return nil, fmt.Errorf("%w: got %s%v, want %s%v",
				ErrOutputShape, newOutput.dt, newOutput.shp, ad.out.dt, ad.out.shp)
		}
	}

	if err := ad.plan.Execute(newOutput, normalizeInverse); err != nil {
		return nil, err
	}

	if newOutput != nil {
		return newOutput, nil
	}

	return ad.out, nil
}

// Call is Execute with no replacement buffers and inverse normalization on.
func (ad *Adapter) Call() (*Array, error) {
	return ad.Execute(nil, nil, true)
}

func (ad *Adapter) updateInput(newInput *Array) error {
	if newInput.Rank() != ad.in.Rank() {
		return fmt.Errorf("%w: rank %d vs %d", ErrInputShape, newInput.Rank(), ad.in.Rank())
	}

	src := newInput.convertTo(ad.in.dt)

	if !ad.owns {
		if !src.shp.Equal(ad.in.shp) {
			return fmt.Errorf("%w: got %v, want %v", ErrInputShape, src.shp, ad.in.shp)
		}

		copy(ad.in.data, src.data)

		return nil
	}

	srcExtents := shape.SpanExtents(ad.srcSpans, src.shp)
	dstExtents := shape.SpanExtents(ad.dstSpans, ad.in.shp)

	if !shape.ExtentsEqual(srcExtents, dstExtents) {
		return fmt.Errorf("%w: sliced region %v, want %v", ErrInputShape, srcExtents, dstExtents)
	}

	shape.CopyRegion(ad.in.data, src.data, ad.in.shp, src.shp, ad.dstSpans, ad.srcSpans, ad.in.dt.Size())

	return nil
}

// Input returns the bound input buffer. On the matched-shape path this is
// the (possibly re-aligned, possibly dtype-coerced) user array; otherwise it
// is the adapter's own internal buffer.
func (ad *Adapter) Input() *Array {
	return ad.in
}

// Output returns the bound output buffer.
func (ad *Adapter) Output() *Array {
	return ad.out
}

// InputShape returns the negotiated input shape.
func (ad *Adapter) InputShape() []int {
	return ad.in.Shape()
}

// OutputShape returns the negotiated output shape.
func (ad *Adapter) OutputShape() []int {
	return ad.out.Shape()
}

// Axes returns the resolved transform axes in listed order.
func (ad *Adapter) Axes() []int {
	return append([]int(nil), ad.axes...)
}

// OwnsInput reports whether the adapter copies through a dedicated internal
// input buffer (the mismatched-shape path).
func (ad *Adapter) OwnsInput() bool {
	return ad.owns
}
