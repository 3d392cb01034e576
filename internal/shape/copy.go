package shape

// CopyRegion copies the src spans of a row-major source buffer into the dst
// spans of a row-major destination buffer. Extents are clipped against the
// actual shapes, so a span reaching past the end of an axis copies only what
// exists.
//
// Caller guarantees: equal rank everywhere, and equal clipped extents per
// axis (BuildSlicers and the call-time shape check establish this).
func CopyRegion(dst, src []byte, dstShape, srcShape Shape, dstSpans, srcSpans []Span, elemSize int) {
	if dstShape.Rank() == 0 {
		copy(dst[:elemSize], src[:elemSize])
		return
	}

	dstStrides := dstShape.Strides()
	srcStrides := srcShape.Strides()
	extents := SpanExtents(srcSpans, srcShape)

	copyRegion(dst, src, dstStrides, srcStrides, dstSpans, srcSpans, extents, elemSize, 0, 0, 0)
}

func copyRegion(dst, src []byte, dstStrides, srcStrides []int, dstSpans, srcSpans []Span, extents []int, elemSize, axis, dstOff, srcOff int) {
	n := extents[axis]
	if n <= 0 {
		return
	}

	dstBase := dstOff + dstSpans[axis].Start*dstStrides[axis]
	srcBase := srcOff + srcSpans[axis].Start*srcStrides[axis]

	if axis == len(extents)-1 {
		// Innermost axis is contiguous in a row-major layout.
		db := dstBase * elemSize
		sb := srcBase * elemSize
		copy(dst[db:db+n*elemSize], src[sb:sb+n*elemSize])

		return
	}

	for i := 0; i < n; i++ {
		copyRegion(dst, src, dstStrides, srcStrides, dstSpans, srcSpans, extents,
			elemSize, axis+1, dstBase+i*dstStrides[axis], srcBase+i*srcStrides[axis])
	}
}
