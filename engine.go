package fftadapt

import "sync"

// PlanConfig carries everything an engine needs to bind a plan to a pair of
// buffers. Axes are resolved, non-negative indices into the buffer shapes.
type PlanConfig struct {
	Direction Direction
	Kind      Kind
	Effort    Effort
	Threads   int
	Unaligned bool
}

// Plan is a transform bound to a fixed input and output buffer at
// construction time. Execution always reads the bound input; a non-nil out
// redirects the result of that single call away from the bound output.
type Plan interface {
	// Execute runs the transform. When normalizeInverse is set and the plan
	// is an inverse transform, the result is scaled by the reciprocal of the
	// logical transform size.
	Execute(out *Array, normalizeInverse bool) error

	// Destructive reports whether planning or execution may clobber the
	// bound input buffer.
	Destructive() bool
}

// Engine plans transforms. Implementations may parallelize execution
// internally; plan construction at Measure effort or higher may use the
// bound buffers as scratch.
type Engine interface {
	Name() string
	NewPlan(in, out *Array, axes []int, cfg PlanConfig) (Plan, error)

	// PreferredAlignment returns the buffer alignment the engine's fastest
	// code paths require, in bytes.
	PreferredAlignment() int
}

var (
	engineMu sync.RWMutex
	engine   Engine = newNativeEngine()
)

// RegisterEngine installs a transform engine for subsequent builds. Passing
// nil clears the engine; the built-in engine is registered by default.
func RegisterEngine(e Engine) {
	engineMu.Lock()
	engine = e
	engineMu.Unlock()
}

// CurrentEngine returns the engine used by subsequent builds, or nil when
// the engine has been cleared.
func CurrentEngine() Engine {
	engineMu.RLock()
	e := engine
	engineMu.RUnlock()

	return e
}
