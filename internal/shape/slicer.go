package shape

// Span is a half-open [Start, Stop) bound along one axis.
type Span struct {
	Start int
	Stop  int
}

// Len returns the extent of the span.
func (sp Span) Len() int {
	return sp.Stop - sp.Start
}

// ClipLen returns the extent of the span after clipping Stop to dim.
// A span entirely past the end of the axis has extent zero.
func (sp Span) ClipLen(dim int) int {
	stop := sp.Stop
	if stop > dim {
		stop = dim
	}

	if stop < sp.Start {
		return 0
	}

	return stop - sp.Start
}

// BuildSlicers returns the per-axis bounds for copying a user array into an
// internal buffer of a possibly different shape:
//
//	internal[dst] = user[src]
//
// Per axis, independently: a larger user axis is truncated on the source
// side, a smaller one restricts both sides to the available user extent, and
// equal axes are covered in full. The extents of src and dst are equal on
// every axis, so the copy is always shape-compatible.
//
// Both shapes must have the same rank; axis roles are irrelevant here, the
// shapes already encode which axes the resolver changed.
func BuildSlicers(userShape, inputShape Shape) (src, dst []Span) {
	src = make([]Span, userShape.Rank())
	dst = make([]Span, userShape.Rank())

	for axis := range userShape {
		switch {
		case userShape[axis] > inputShape[axis]:
			src[axis] = Span{0, inputShape[axis]}
			dst[axis] = Span{0, inputShape[axis]}
		case userShape[axis] < inputShape[axis]:
			src[axis] = Span{0, userShape[axis]}
			dst[axis] = Span{0, userShape[axis]}
		default:
			src[axis] = Span{0, userShape[axis]}
			dst[axis] = Span{0, userShape[axis]}
		}
	}

	return src, dst
}

// FullSpans returns spans covering every axis of the shape in full.
func FullSpans(s Shape) []Span {
	spans := make([]Span, s.Rank())
	for axis, dim := range s {
		spans[axis] = Span{0, dim}
	}

	return spans
}

// SpanExtents returns the per-axis extents of spans clipped against the
// shape they index into.
func SpanExtents(spans []Span, s Shape) []int {
	extents := make([]int, len(spans))
	for axis, sp := range spans {
		extents[axis] = sp.ClipLen(s[axis])
	}

	return extents
}

// ExtentsEqual reports whether two extent lists agree exactly.
func ExtentsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
