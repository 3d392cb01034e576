// Package fftcore implements one-dimensional complex transforms of arbitrary
// length: an iterative radix-2 path for powers of two and a Bluestein
// chirp-z path for everything else, built on the radix-2 core.
package fftcore

import "math"

// Transformer computes forward and inverse DFTs of a fixed length. All
// tables are precomputed at construction; the methods themselves allocate
// nothing and are safe for concurrent use as long as each goroutine brings
// its own scratch.
type Transformer struct {
	n       int
	twiddle []complex128 // W_n^k = exp(-2πik/n), k < n/2
	bitrev  []int

	// Bluestein state, nil for power-of-two lengths.
	m         int
	chirp     []complex128
	kernelFFT []complex128
	sub       *Transformer
}

// New creates a transformer for length n. n must be positive.
func New(n int) *Transformer {
	t := &Transformer{n: n}

	if isPowerOf2(n) {
		t.twiddle = computeTwiddles(n)
		t.bitrev = computeBitrev(n)

		return t
	}

	// Bluestein: embed the length-n DFT into a cyclic convolution of a
	// power-of-two length m >= 2n-1.
	m := 1
	for m < 2*n-1 {
		m <<= 1
	}

	t.m = m
	t.sub = New(m)

	t.chirp = make([]complex128, n)
	for k := 0; k < n; k++ {
		// k^2 mod 2n keeps the angle argument small for large lengths.
		angle := -math.Pi * float64((k*k)%(2*n)) / float64(n)
		t.chirp[k] = complex(math.Cos(angle), math.Sin(angle))
	}

	kernel := make([]complex128, m)
	kernel[0] = conj(t.chirp[0])
	for k := 1; k < n; k++ {
		c := conj(t.chirp[k])
		kernel[k] = c
		kernel[m-k] = c
	}

	t.sub.transformPow2(kernel, false)
	t.kernelFFT = kernel

	return t
}

// Len returns the transform length.
func (t *Transformer) Len() int {
	return t.n
}

// ScratchLen returns the scratch size (in elements) Forward and Inverse
// require. Zero for power-of-two lengths.
func (t *Transformer) ScratchLen() int {
	return t.m
}

// Forward computes the unscaled forward DFT of data in place.
// Caller guarantees: len(data) == Len(), len(scratch) >= ScratchLen().
func (t *Transformer) Forward(data, scratch []complex128) {
	if t.sub == nil {
		t.transformPow2(data, false)
		return
	}

	t.bluestein(data, scratch)
}

// Inverse computes the unscaled inverse DFT of data in place. Scaling by 1/n
// is the caller's concern.
// Caller guarantees: len(data) == Len(), len(scratch) >= ScratchLen().
func (t *Transformer) Inverse(data, scratch []complex128) {
	if t.sub == nil {
		t.transformPow2(data, true)
		return
	}

	// Unscaled inverse DFT via conjugation of the forward transform.
	for i := range data {
		data[i] = conj(data[i])
	}

	t.bluestein(data, scratch)

	for i := range data {
		data[i] = conj(data[i])
	}
}

func (t *Transformer) transformPow2(data []complex128, inverse bool) {
	n := t.n

	for i, j := range t.bitrev {
		if j > i {
			data[i], data[j] = data[j], data[i]
		}
	}

	for length := 2; length <= n; length <<= 1 {
		half := length >> 1
		step := n / length

		for start := 0; start < n; start += length {
			for k := 0; k < half; k++ {
				w := t.twiddle[k*step]
				if inverse {
					w = conj(w)
				}

				a := data[start+k]
				b := data[start+k+half] * w
				data[start+k] = a + b
				data[start+k+half] = a - b
			}
		}
	}
}

func (t *Transformer) bluestein(data, scratch []complex128) {
	n, m := t.n, t.m
	work := scratch[:m]

	for k := 0; k < n; k++ {
		work[k] = data[k] * t.chirp[k]
	}

	for k := n; k < m; k++ {
		work[k] = 0
	}

	t.sub.transformPow2(work, false)

	for k := 0; k < m; k++ {
		work[k] *= t.kernelFFT[k]
	}

	t.sub.transformPow2(work, true)

	scale := complex(1/float64(m), 0)
	for k := 0; k < n; k++ {
		data[k] = work[k] * t.chirp[k] * scale
	}
}

func computeTwiddles(n int) []complex128 {
	twiddle := make([]complex128, n/2)
	for k := range twiddle {
		angle := -2 * math.Pi * float64(k) / float64(n)
		twiddle[k] = complex(math.Cos(angle), math.Sin(angle))
	}

	return twiddle
}

func computeBitrev(n int) []int {
	bitrev := make([]int, n)
	bits := 0

	for v := n; v > 1; v >>= 1 {
		bits++
	}

	for i := range bitrev {
		r := 0
		x := i

		for b := 0; b < bits; b++ {
			r = (r << 1) | (x & 1)
			x >>= 1
		}

		bitrev[i] = r
	}

	return bitrev
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func conj(v complex128) complex128 {
	return complex(real(v), -imag(v))
}
