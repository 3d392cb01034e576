package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveComplexForward(t *testing.T) {
	t.Parallel()

	in, out, err := Resolve(Shape{8}, []int{4}, []int{0}, false, false)
	require.NoError(t, err)

	assert.Equal(t, Shape{4}, in)
	assert.Equal(t, Shape{4}, out)
}

func TestResolvePreservesRankAndBatchAxes(t *testing.T) {
	t.Parallel()

	in, out, err := Resolve(Shape{3, 8, 5}, []int{16}, []int{1}, false, false)
	require.NoError(t, err)

	assert.Equal(t, Shape{3, 16, 5}, in)
	assert.Equal(t, Shape{3, 16, 5}, out)
}

func TestResolveRealForwardHalvesLastListedAxis(t *testing.T) {
	t.Parallel()

	in, out, err := Resolve(Shape{10}, []int{10}, []int{-1}, false, true)
	require.NoError(t, err)

	assert.Equal(t, Shape{10}, in)
	assert.Equal(t, Shape{6}, out)
}

func TestResolveRealForwardHalvesListedAxisNotArrayLast(t *testing.T) {
	t.Parallel()

	// Axes listed as (1, 0): the half spectrum lives along axis 0.
	in, out, err := Resolve(Shape{8, 6}, []int{6, 8}, []int{1, 0}, false, true)
	require.NoError(t, err)

	assert.Equal(t, Shape{8, 6}, in)
	assert.Equal(t, Shape{5, 6}, out)
}

func TestResolveRealInverseSwapsRoles(t *testing.T) {
	t.Parallel()

	in, out, err := Resolve(Shape{6}, []int{10}, []int{-1}, true, true)
	require.NoError(t, err)

	assert.Equal(t, Shape{6}, in)
	assert.Equal(t, Shape{10}, out)
}

func TestResolveComplexInverseSwapIsSymmetric(t *testing.T) {
	t.Parallel()

	fwdIn, fwdOut, err := Resolve(Shape{4, 4}, []int{8, 8}, []int{0, 1}, false, false)
	require.NoError(t, err)

	invIn, invOut, err := Resolve(Shape{4, 4}, []int{8, 8}, []int{0, 1}, true, false)
	require.NoError(t, err)

	assert.Equal(t, fwdIn, invOut)
	assert.Equal(t, fwdOut, invIn)
}

func TestResolveRealRoundTrip(t *testing.T) {
	t.Parallel()

	// Forward r2c then inverse c2r with the same sizes recovers the full
	// lengths as the inverse output shape.
	sizes := []int{12, 10}
	axes := []int{0, 1}

	_, fwdOut, err := Resolve(Shape{12, 10}, sizes, axes, false, true)
	require.NoError(t, err)
	assert.Equal(t, Shape{12, 6}, fwdOut)

	invIn, invOut, err := Resolve(Shape(fwdOut), sizes, axes, true, true)
	require.NoError(t, err)

	assert.Equal(t, fwdOut, invIn)
	assert.Equal(t, Shape{12, 10}, invOut)
}

func TestResolveAxisOutOfRange(t *testing.T) {
	t.Parallel()

	_, _, err := Resolve(Shape{4}, []int{4}, []int{1}, false, false)
	assert.ErrorIs(t, err, ErrAxis)

	_, _, err = Resolve(Shape{4}, []int{4}, []int{-2}, false, false)
	assert.ErrorIs(t, err, ErrAxis)
}

func TestResolveNegativeAxis(t *testing.T) {
	t.Parallel()

	in, out, err := Resolve(Shape{3, 8}, []int{4}, []int{-1}, false, false)
	require.NoError(t, err)

	assert.Equal(t, Shape{3, 4}, in)
	assert.Equal(t, Shape{3, 4}, out)
}

func TestResolveOddRealLength(t *testing.T) {
	t.Parallel()

	_, out, err := Resolve(Shape{9}, []int{9}, []int{0}, false, true)
	require.NoError(t, err)

	assert.Equal(t, Shape{5}, out)
}
