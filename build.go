package fftadapt

import (
	"fmt"

	"github.com/cwbudde/fftadapt/internal/dtype"
	"github.com/cwbudde/fftadapt/internal/shape"
)

// buildTransform is the single construction path behind every public
// builder. The order of operations matters: effort validation happens before
// any shape work, all shape and axis validation happens before any buffer is
// allocated, and data is copied back into the bound input only after the
// plan exists, because planning at Measure effort or higher clobbers it.
func buildTransform(a *Array, sizes, axes []int, opts Options, inverse, real bool) (*Adapter, error) {
	if a == nil {
		return nil, ErrNilArray
	}

	opts = opts.normalized()
	if !opts.Effort.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidEffort, opts.Effort)
	}

	if !supportedDType(a.dt) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDType, a.dt)
	}

	eng := CurrentEngine()
	if eng == nil {
		return nil, ErrNoEngine
	}

	cookedSizes, cookedAxes, err := shape.Cook(a.shp, sizes, axes, inverse && real)
	if err != nil {
		return nil, err
	}

	inShape, outShape, err := shape.Resolve(a.shp, cookedSizes, cookedAxes, inverse, real)
	if err != nil {
		return nil, err
	}

	resolvedAxes := make([]int, len(cookedAxes))
	for i, axis := range cookedAxes {
		resolvedAxes[i], _ = shape.ResolveAxis(a.Rank(), axis)
	}

	inDT := dtype.CoerceInput(a.dt, real, inverse)
	outDT := dtype.OutputFor(inDT, real)
	coerced := a.convertTo(inDT)

	var snapshot *Array
	if !opts.AvoidCopy {
		snapshot = coerced.Clone()
	}

	align := eng.PreferredAlignment()
	output := newAligned(outDT, outShape, align)

	cfg := PlanConfig{
		Direction: directionOf(inverse),
		Kind:      kindOf(real, inverse),
		Effort:    opts.Effort,
		Threads:   opts.Threads,
		Unaligned: opts.Unaligned,
	}

	var (
		input    *Array
		srcSpans []shape.Span
		dstSpans []shape.Span
	)

	owns := !coerced.shp.Equal(inShape)

	if owns {
		input = newAligned(inDT, inShape, align)
		srcSpans, dstSpans = shape.BuildSlicers(coerced.shp, inShape)
	} else {
		input = coerced
		if !opts.Unaligned && !input.aligned(align) {
			input = newAligned(inDT, inShape, align)
			copy(input.data, coerced.data)
		}
	}

	plan, err := eng.NewPlan(input, output, resolvedAxes, cfg)
	if err != nil {
		return nil, err
	}

	if !opts.AvoidCopy {
		if owns {
			// The complement of the copied region is zeroed exactly once,
			// here; no later code path writes outside the dest spans.
			input.Zero()
			shape.CopyRegion(input.data, snapshot.data, input.shp, snapshot.shp,
				dstSpans, srcSpans, inDT.Size())
		} else {
			copy(input.data, snapshot.data)
		}
	}

	return &Adapter{
		plan:     plan,
		in:       input,
		out:      output,
		srcSpans: srcSpans,
		dstSpans: dstSpans,
		owns:     owns,
		axes:     resolvedAxes,
	}, nil
}

func directionOf(inverse bool) Direction {
	if inverse {
		return Inverse
	}

	return Forward
}

func kindOf(real, inverse bool) Kind {
	switch {
	case real && inverse:
		return KindComplexToReal
	case real:
		return KindRealToComplex
	default:
		return KindComplex
	}
}
