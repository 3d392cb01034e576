package shape

import "fmt"

// Resolve computes the input and output shapes a transform engine requires.
//
// Both returned shapes start as copies of arrayShape with sizes written at
// the listed axes. For a real transform the transform-domain copy stores only
// the non-redundant half spectrum along the last listed axis: n/2+1 bins.
// In the forward direction the input lives in the original domain and the
// output in the transform domain; for an inverse transform the roles swap.
//
// Sizes and axes must already be cooked to equal length. An axis that does
// not resolve against the array rank returns ErrAxis.
func Resolve(arrayShape Shape, sizes, axes []int, inverse, real bool) (Shape, Shape, error) {
	origDomain := arrayShape.Clone()
	fftDomain := arrayShape.Clone()

	for i, axis := range axes {
		idx, err := ResolveAxis(arrayShape.Rank(), axis)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: axis %d with rank %d", ErrAxis, axis, arrayShape.Rank())
		}

		origDomain[idx] = sizes[i]
		fftDomain[idx] = sizes[i]
	}

	if real && len(axes) > 0 {
		idx, err := ResolveAxis(arrayShape.Rank(), axes[len(axes)-1])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: axis %d with rank %d", ErrAxis, axes[len(axes)-1], arrayShape.Rank())
		}

		fftDomain[idx] = sizes[len(sizes)-1]/2 + 1
	}

	if inverse {
		return fftDomain, origDomain, nil
	}

	return origDomain, fftDomain, nil
}
