package fftadapt

import (
	"errors"
	"testing"
)

func TestEngineRegistry(t *testing.T) {
	// Mutates the global registry; not parallel.
	saved := CurrentEngine()
	defer RegisterEngine(saved)

	RegisterEngine(nil)

	if CurrentEngine() != nil {
		t.Fatal("CurrentEngine() != nil after clearing")
	}

	a := NewArray(Complex128, 4)
	if _, err := FFT(a, 0, -1, Options{}); !errors.Is(err, ErrNoEngine) {
		t.Errorf("build without engine: err = %v, want ErrNoEngine", err)
	}

	RegisterEngine(saved)

	if _, err := FFT(a, 0, -1, Options{}); err != nil {
		t.Errorf("build after restore failed: %v", err)
	}
}

func TestNativeEngineName(t *testing.T) {
	t.Parallel()

	eng := CurrentEngine()
	if eng.Name() != "native" {
		t.Errorf("Name() = %q, want %q", eng.Name(), "native")
	}

	if align := eng.PreferredAlignment(); align < 16 {
		t.Errorf("PreferredAlignment() = %d, want >= 16", align)
	}
}

func TestNativePlanDestructive(t *testing.T) {
	t.Parallel()

	eng := CurrentEngine()

	in := NewArray(Complex128, 8)
	out := NewArray(Complex128, 8)

	plan, err := eng.NewPlan(in, out, []int{0}, PlanConfig{Kind: KindComplex, Threads: 1})
	if err != nil {
		t.Fatalf("NewPlan failed: %v", err)
	}

	if plan.Destructive() {
		t.Error("Estimate plan reports Destructive = true")
	}

	plan, err = eng.NewPlan(in, out, []int{0}, PlanConfig{Kind: KindComplex, Effort: Measure, Threads: 1})
	if err != nil {
		t.Fatalf("NewPlan failed: %v", err)
	}

	if !plan.Destructive() {
		t.Error("Measure plan reports Destructive = false")
	}
}

func TestNativePlanRejectsWrongOutput(t *testing.T) {
	t.Parallel()

	eng := CurrentEngine()

	in := NewArray(Complex128, 8)
	out := NewArray(Complex128, 8)

	plan, err := eng.NewPlan(in, out, []int{0}, PlanConfig{Kind: KindComplex, Threads: 1})
	if err != nil {
		t.Fatalf("NewPlan failed: %v", err)
	}

	bad := NewArray(Complex128, 9)
	if err := plan.Execute(bad, false); !errors.Is(err, ErrOutputShape) {
		t.Errorf("Execute into wrong-shape output: err = %v, want ErrOutputShape", err)
	}
}

func TestNativeImpulse2D(t *testing.T) {
	t.Parallel()

	a := NewArray(Complex128, 4, 8)
	a.Complex128s()[0] = 1

	adapter, err := FFTN(a, nil, nil, Options{})
	if err != nil {
		t.Fatalf("FFTN failed: %v", err)
	}

	out, err := adapter.Call()
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}

	for i, v := range out.Complex128s() {
		assertApproxComplex128Tolf(t, v, 1, 1e-12, "bin %d", i)
	}
}

func TestNative2DRoundTrip(t *testing.T) {
	t.Parallel()

	data := complexRamp(24)
	a := mustComplexArray(t, data, 4, 6)

	fwd, err := FFTN(a, nil, nil, Options{})
	if err != nil {
		t.Fatalf("FFTN failed: %v", err)
	}

	spectrum, err := fwd.Call()
	if err != nil {
		t.Fatalf("forward Call failed: %v", err)
	}

	inv, err := IFFTN(spectrum, nil, nil, Options{})
	if err != nil {
		t.Fatalf("IFFTN failed: %v", err)
	}

	back, err := inv.Call()
	if err != nil {
		t.Fatalf("inverse Call failed: %v", err)
	}

	for i, v := range back.Complex128s() {
		assertApproxComplex128Tolf(t, v, data[i], 1e-9, "elem %d", i)
	}
}

func TestNativeRFFTN2D(t *testing.T) {
	t.Parallel()

	values := make([]float64, 6*10)
	for i := range values {
		values[i] = float64(i%7) - 3
	}

	a := mustFloatArray(t, values, 6, 10)

	fwd, err := RFFTN(a, nil, nil, Options{})
	if err != nil {
		t.Fatalf("RFFTN failed: %v", err)
	}

	wantOut := []int{6, 6}
	for i, dim := range fwd.OutputShape() {
		if dim != wantOut[i] {
			t.Fatalf("OutputShape = %v, want %v", fwd.OutputShape(), wantOut)
		}
	}

	spectrum, err := fwd.Call()
	if err != nil {
		t.Fatalf("forward Call failed: %v", err)
	}

	inv, err := IRFFTN(spectrum, nil, nil, Options{})
	if err != nil {
		t.Fatalf("IRFFTN failed: %v", err)
	}

	back, err := inv.Call()
	if err != nil {
		t.Fatalf("inverse Call failed: %v", err)
	}

	for i, v := range back.Float64s() {
		assertApproxFloat64Tolf(t, v, values[i], 1e-9, "sample %d", i)
	}
}

func TestNativeThreadedMatchesSingle(t *testing.T) {
	t.Parallel()

	data := complexRamp(16 * 12)

	single := mustComplexArray(t, data, 16, 12)
	threaded := mustComplexArray(t, data, 16, 12)

	one, err := FFTN(single, nil, nil, Options{Threads: 1})
	if err != nil {
		t.Fatalf("FFTN failed: %v", err)
	}

	four, err := FFTN(threaded, nil, nil, Options{Threads: 4})
	if err != nil {
		t.Fatalf("FFTN failed: %v", err)
	}

	a, err := one.Call()
	if err != nil {
		t.Fatalf("single-thread Call failed: %v", err)
	}

	b, err := four.Call()
	if err != nil {
		t.Fatalf("threaded Call failed: %v", err)
	}

	av := a.Complex128s()
	for i, v := range b.Complex128s() {
		assertApproxComplex128Tolf(t, v, av[i], 1e-12, "bin %d", i)
	}
}

func TestNativeBatchAxisUntouched(t *testing.T) {
	t.Parallel()

	// Transform only axis 1; axis 0 is a batch dimension, so each row is an
	// independent DFT.
	data := complexRamp(3 * 8)
	a := mustComplexArray(t, data, 3, 8)

	adapter, err := FFTN(a, nil, []int{1}, Options{})
	if err != nil {
		t.Fatalf("FFTN failed: %v", err)
	}

	out, err := adapter.Call()
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}

	got := out.Complex128s()
	for row := 0; row < 3; row++ {
		want := refDFT(data[row*8 : (row+1)*8])
		for i, v := range want {
			assertApproxComplex128Tolf(t, got[row*8+i], v, 1e-9, "row %d bin %d", row, i)
		}
	}
}
