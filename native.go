package fftadapt

import (
	"fmt"
	"sync"

	"github.com/cwbudde/fftadapt/internal/fftcore"
	"github.com/cwbudde/fftadapt/internal/mem"
	"github.com/cwbudde/fftadapt/internal/shape"
)

// nativeEngine is the built-in pure-Go transform engine. It computes in
// complex128 precision regardless of the buffer element type and supports
// arbitrary transform lengths.
type nativeEngine struct{}

func newNativeEngine() *nativeEngine {
	return &nativeEngine{}
}

func (e *nativeEngine) Name() string {
	return "native"
}

func (e *nativeEngine) PreferredAlignment() int {
	return mem.DefaultAlignment()
}

func (e *nativeEngine) NewPlan(in, out *Array, axes []int, cfg PlanConfig) (Plan, error) {
	if in == nil || out == nil {
		return nil, ErrNilArray
	}

	p := &nativePlan{
		in:       in,
		out:      out,
		axes:     append([]int(nil), axes...),
		cfg:      cfg,
		halfAxis: -1,
	}

	switch cfg.Kind {
	case KindComplex:
		if !in.shp.Equal(out.shp) {
			return nil, fmt.Errorf("%w: %v vs %v", ErrOutputShape, in.shp, out.shp)
		}

		p.full = in.shp.Clone()
	case KindRealToComplex:
		if cfg.Direction != Forward {
			return nil, fmt.Errorf("%w: r2c plans are forward-only", ErrShape)
		}

		p.full = in.shp.Clone()
	case KindComplexToReal:
		if cfg.Direction != Inverse {
			return nil, fmt.Errorf("%w: c2r plans are inverse-only", ErrShape)
		}

		p.full = out.shp.Clone()
	}

	if cfg.Kind != KindComplex && len(axes) > 0 {
		p.halfAxis = axes[len(axes)-1]
	}

	p.logicalN = 1
	p.lengths = map[int]*fftcore.Transformer{}

	for _, axis := range p.axes {
		n := p.full[axis]
		p.logicalN *= n

		if _, ok := p.lengths[n]; !ok {
			p.lengths[n] = fftcore.New(n)
		}
	}

	p.scratch = make([]complex128, p.full.NumElements())

	// Measure and higher run timed trials against the bound buffers, which
	// clobbers any data already loaded into them.
	for t, n := 0, planTrials(cfg.Effort); t < n; t++ {
		p.trialRun()
	}

	return p, nil
}

func planTrials(effort Effort) int {
	switch effort {
	case Measure:
		return 1
	case Patient:
		return 3
	case Exhaustive:
		return 8
	default:
		return 0
	}
}

// nativePlan executes one transform shape. It is bound to its buffers for
// its whole lifetime and is not safe for concurrent use.
type nativePlan struct {
	in, out  *Array
	axes     []int
	cfg      PlanConfig
	full     shape.Shape // original-domain shape
	halfAxis int         // half-spectrum axis for real kinds, -1 otherwise
	logicalN int
	lengths  map[int]*fftcore.Transformer
	scratch  []complex128
}

func (p *nativePlan) Destructive() bool {
	return p.cfg.Effort != Estimate
}

func (p *nativePlan) Execute(out *Array, normalizeInverse bool) error {
	target := p.out
	if out != nil {
		if !p.out.shp.Equal(out.shp) || p.out.dt != out.dt {
			return fmt.Errorf("%w: got %s%v, plan is bound to %s%v",
				ErrOutputShape, out.dt, out.shp, p.out.dt, p.out.shp)
		}

		target = out
	}

	switch p.cfg.Kind {
	case KindRealToComplex:
		p.loadFull(p.in)
		p.transformAll(false)
		p.storeHalf(target)
	case KindComplexToReal:
		p.loadHalf(p.in)
		p.mirrorSpectrum()
		p.transformAll(true)

		if normalizeInverse {
			p.normalize()
		}

		p.storeFull(target)
	default:
		p.loadFull(p.in)
		inverse := p.cfg.Direction == Inverse
		p.transformAll(inverse)

		if inverse && normalizeInverse {
			p.normalize()
		}

		p.storeFull(target)
	}

	return nil
}

func (p *nativePlan) trialRun() {
	for i := 0; i < p.in.Len(); i++ {
		setElem(p.in, i, complex(float64(i%7)-3, 0))
	}

	_ = p.Execute(nil, false)
}

func (p *nativePlan) transformAll(inverse bool) {
	for _, axis := range p.axes {
		p.transformAxis(axis, inverse)
	}
}

func (p *nativePlan) transformAxis(axis int, inverse bool) {
	dims := p.full
	strides := dims.Strides()
	n := dims[axis]
	tr := p.lengths[n]

	bases := lineBases(dims, strides, axis)

	workers := p.cfg.Threads
	if workers > len(bases) {
		workers = len(bases)
	}

	if workers <= 1 {
		worker := newLineWorker(tr)
		for _, base := range bases {
			worker.run(p.scratch, base, strides[axis], inverse)
		}

		return
	}

	var wg sync.WaitGroup

	chunk := (len(bases) + workers - 1) / workers
	for start := 0; start < len(bases); start += chunk {
		end := min(start+chunk, len(bases))

		wg.Add(1)

		go func(part []int) {
			defer wg.Done()

			worker := newLineWorker(tr)
			for _, base := range part {
				worker.run(p.scratch, base, strides[axis], inverse)
			}
		}(bases[start:end])
	}

	wg.Wait()
}

// lineWorker owns the per-goroutine line and transform scratch.
type lineWorker struct {
	tr      *fftcore.Transformer
	line    []complex128
	scratch []complex128
}

func newLineWorker(tr *fftcore.Transformer) *lineWorker {
	return &lineWorker{
		tr:      tr,
		line:    make([]complex128, tr.Len()),
		scratch: make([]complex128, tr.ScratchLen()),
	}
}

func (w *lineWorker) run(data []complex128, base, stride int, inverse bool) {
	if stride == 1 {
		w.transform(data[base:base+w.tr.Len()], inverse)
		return
	}

	for i := range w.line {
		w.line[i] = data[base+i*stride]
	}

	w.transform(w.line, inverse)

	for i := range w.line {
		data[base+i*stride] = w.line[i]
	}
}

func (w *lineWorker) transform(data []complex128, inverse bool) {
	if inverse {
		w.tr.Inverse(data, w.scratch)
		return
	}

	w.tr.Forward(data, w.scratch)
}

// lineBases returns the scratch offsets of every line along axis.
func lineBases(dims shape.Shape, strides []int, axis int) []int {
	count := dims.NumElements() / dims[axis]
	bases := make([]int, 0, count)

	var walk func(ax, off int)
	walk = func(ax, off int) {
		if ax == len(dims) {
			bases = append(bases, off)
			return
		}

		if ax == axis {
			walk(ax+1, off)
			return
		}

		for i := 0; i < dims[ax]; i++ {
			walk(ax+1, off+i*strides[ax])
		}
	}

	walk(0, 0)

	return bases
}

func (p *nativePlan) normalize() {
	scale := complex(1/float64(p.logicalN), 0)
	for i := range p.scratch {
		p.scratch[i] *= scale
	}
}

// loadFull fills scratch from a full-shape array.
func (p *nativePlan) loadFull(a *Array) {
	for i := range p.scratch {
		p.scratch[i] = elem(a, i)
	}
}

// storeFull writes scratch back into a full-shape array.
func (p *nativePlan) storeFull(a *Array) {
	for i := range p.scratch {
		setElem(a, i, p.scratch[i])
	}
}

// loadHalf zeroes scratch and fills the stored half spectrum region from a
// half-shape array.
func (p *nativePlan) loadHalf(a *Array) {
	clear(p.scratch)

	fullStrides := p.full.Strides()
	halfStrides := a.shp.Strides()

	forEachIndex(a.shp, func(idx []int) {
		src := offsetOf(idx, halfStrides)
		dst := offsetOf(idx, fullStrides)
		p.scratch[dst] = elem(a, src)
	})
}

// storeHalf writes the non-redundant half spectrum region of scratch into a
// half-shape array.
func (p *nativePlan) storeHalf(a *Array) {
	fullStrides := p.full.Strides()
	halfStrides := a.shp.Strides()

	forEachIndex(a.shp, func(idx []int) {
		src := offsetOf(idx, fullStrides)
		dst := offsetOf(idx, halfStrides)
		setElem(a, dst, p.scratch[src])
	})
}

// mirrorSpectrum reconstructs the redundant half of a hermitian spectrum:
// X[n-k mod n, taken over every transformed axis] = conj(X[k]). Every mirror
// source lands in the stored half, which loadHalf has already filled.
func (p *nativePlan) mirrorSpectrum() {
	if p.halfAxis < 0 {
		return
	}

	n := p.full[p.halfAxis]
	h := n/2 + 1
	strides := p.full.Strides()

	transformed := make([]bool, p.full.Rank())
	for _, axis := range p.axes {
		transformed[axis] = true
	}

	mirror := make([]int, p.full.Rank())

	forEachIndex(p.full, func(idx []int) {
		if idx[p.halfAxis] < h {
			return
		}

		for ax := range idx {
			if transformed[ax] && idx[ax] > 0 {
				mirror[ax] = p.full[ax] - idx[ax]
			} else {
				mirror[ax] = idx[ax]
			}
		}

		src := offsetOf(mirror, strides)
		dst := offsetOf(idx, strides)
		v := p.scratch[src]
		p.scratch[dst] = complex(real(v), -imag(v))
	})
}

func forEachIndex(dims shape.Shape, fn func(idx []int)) {
	if dims.NumElements() == 0 {
		return
	}

	idx := make([]int, dims.Rank())

	for {
		fn(idx)

		ax := dims.Rank() - 1
		for ax >= 0 {
			idx[ax]++
			if idx[ax] < dims[ax] {
				break
			}

			idx[ax] = 0
			ax--
		}

		if ax < 0 {
			return
		}
	}
}

func offsetOf(idx, strides []int) int {
	off := 0
	for i, v := range idx {
		off += v * strides[i]
	}

	return off
}
