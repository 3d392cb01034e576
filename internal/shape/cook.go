package shape

import "fmt"

// Cook turns a partially specified (sizes, axes) request into a fully
// specified pair, following the defaulting convention of numpy's fftn family.
//
// A nil axes defaults to the last k axes, expressed as negative indices,
// where k is len(sizes) when sizes are given and the array rank otherwise.
// Nil sizes are read from the array shape along the resolved axes; when
// invReal is set, the size of the last resolved axis is overridden to
// (dim-1)*2, inverting the half-spectrum storage rule of a real transform.
//
// Cook is pure. Returned axes keep the caller's (possibly negative)
// convention; Resolve validates them again at use.
func Cook(arrayShape Shape, sizes, axes []int, invReal bool) ([]int, []int, error) {
	rank := arrayShape.Rank()

	if axes == nil {
		k := rank
		if sizes != nil {
			k = len(sizes)
		}

		axes = make([]int, k)
		for i := range axes {
			axes[i] = i - k
		}
	} else {
		axes = append([]int(nil), axes...)
	}

	if sizes == nil {
		sizes = make([]int, len(axes))
		for i, axis := range axes {
			idx, err := ResolveAxis(rank, axis)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: axis %d with rank %d", ErrAxis, axis, rank)
			}

			sizes[i] = arrayShape[idx]
		}

		if invReal && len(sizes) > 0 {
			last, err := ResolveAxis(rank, axes[len(axes)-1])
			if err != nil {
				return nil, nil, fmt.Errorf("%w: axis %d with rank %d", ErrAxis, axes[len(axes)-1], rank)
			}

			sizes[len(sizes)-1] = (arrayShape[last] - 1) * 2
		}
	} else {
		sizes = append([]int(nil), sizes...)
	}

	if len(sizes) != len(axes) {
		return nil, nil, fmt.Errorf("%w: %d sizes vs %d axes", ErrShape, len(sizes), len(axes))
	}

	for _, n := range sizes {
		if n < 1 {
			return nil, nil, fmt.Errorf("%w: transform length %d", ErrShape, n)
		}
	}

	if len(sizes) > rank {
		return nil, nil, fmt.Errorf("%w: %d transform lengths for a rank-%d array", ErrShape, len(sizes), rank)
	}

	return sizes, axes, nil
}
