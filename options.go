package fftadapt

// Effort is the planner cost tier: how much time the engine may spend
// searching for a fast execution strategy before the first transform runs.
type Effort uint8

const (
	// Estimate picks a strategy from heuristics without running trials.
	Estimate Effort = iota

	// Measure runs a small number of timed trial executions.
	Measure

	// Patient runs a broader trial search.
	Patient

	// Exhaustive tries every applicable strategy.
	Exhaustive

	effortCount
)

// String returns the conventional name of the effort level.
func (e Effort) String() string {
	switch e {
	case Estimate:
		return "estimate"
	case Measure:
		return "measure"
	case Patient:
		return "patient"
	case Exhaustive:
		return "exhaustive"
	default:
		return "invalid"
	}
}

func (e Effort) valid() bool {
	return e < effortCount
}

// Options configures adapter construction. The zero value is a valid
// configuration: Estimate effort, single-threaded, aligned input, with the
// planning-protection snapshot enabled.
type Options struct {
	// Effort selects the planner cost tier.
	Effort Effort

	// Threads is the worker count the engine may parallelize one transform
	// across. Values below 1 are treated as 1.
	Threads int

	// Unaligned skips re-aligning a user buffer on the matched-shape path.
	// The engine then cannot use its vectorized paths on that buffer.
	Unaligned bool

	// AvoidCopy skips the input snapshot taken around planning and
	// the initial copy into a dedicated internal buffer. Planning at Measure
	// or higher effort clobbers the input buffer, so with AvoidCopy set the
	// caller must load input data after construction, not before.
	AvoidCopy bool
}

func (o Options) normalized() Options {
	if o.Threads < 1 {
		o.Threads = 1
	}

	return o
}
