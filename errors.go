package fftadapt

import (
	"errors"

	"github.com/cwbudde/fftadapt/internal/shape"
)

// Sentinel errors returned by builder and adapter operations.
var (
	// ErrInvalidEffort is returned when the planner effort is not one of the
	// enumerated levels. It is rejected before any shape work begins.
	ErrInvalidEffort = errors.New("fftadapt: invalid planner effort")

	// ErrShape is returned when sizes and axes have different lengths, or
	// when more transform lengths are requested than the array has
	// dimensions. Canonically defined in internal/shape.
	ErrShape = shape.ErrShape

	// ErrAxis is returned when an axis index cannot be resolved against the
	// array rank. Canonically defined in internal/shape.
	ErrAxis = shape.ErrAxis

	// ErrInputShape is returned by Execute when the sliced region of a new
	// input array disagrees with the shape negotiated at construction.
	ErrInputShape = errors.New("fftadapt: new input does not match the negotiated input shape")

	// ErrOutputShape is returned by Execute when a caller-supplied output
	// array does not match the negotiated output shape and element type.
	ErrOutputShape = errors.New("fftadapt: new output does not match the negotiated output shape")

	// ErrUnsupportedDType is returned when an array's element type cannot be
	// coerced for the requested transform.
	ErrUnsupportedDType = errors.New("fftadapt: unsupported element type")

	// ErrNilArray is returned when a nil array is passed where data is
	// required.
	ErrNilArray = errors.New("fftadapt: nil array")

	// ErrNoEngine is returned when no transform engine is registered.
	ErrNoEngine = errors.New("fftadapt: no engine registered")
)
