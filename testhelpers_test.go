package fftadapt

import (
	"math"
	"math/cmplx"
	"testing"
)

// Shared test helper functions used across multiple test files

func assertApproxComplex128Tolf(t *testing.T, got, want complex128, tol float64, format string, args ...any) {
	t.Helper()

	if cmplx.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, cmplx.Abs(got-want))...)
	}
}

func assertApproxFloat64Tolf(t *testing.T, got, want, tol float64, format string, args ...any) {
	t.Helper()

	if math.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v", append(args, got, want)...)
	}
}

// refDFT is the O(n^2) reference for one-dimensional checks.
func refDFT(src []complex128) []complex128 {
	n := len(src)
	dst := make([]complex128, n)

	for k := 0; k < n; k++ {
		var sum complex128
		for j := 0; j < n; j++ {
			angle := -2 * math.Pi * float64(k) * float64(j) / float64(n)
			sum += src[j] * cmplx.Exp(complex(0, angle))
		}

		dst[k] = sum
	}

	return dst
}

func complexRamp(n int) []complex128 {
	data := make([]complex128, n)
	for i := range data {
		data[i] = complex(float64(i+1), float64(n-i))
	}

	return data
}

func mustComplexArray(t *testing.T, values []complex128, dims ...int) *Array {
	t.Helper()

	a, err := FromComplex128(values, dims...)
	if err != nil {
		t.Fatalf("FromComplex128 failed: %v", err)
	}

	return a
}

func mustFloatArray(t *testing.T, values []float64, dims ...int) *Array {
	t.Helper()

	a, err := FromFloat64(values, dims...)
	if err != nil {
		t.Fatalf("FromFloat64 failed: %v", err)
	}

	return a
}
