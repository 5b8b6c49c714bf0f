package fftnd

import (
	"errors"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-nd/internal/testutil"
)

func split(data []complex128) (re, im []float64) {
	re = make([]float64, len(data))
	im = make([]float64, len(data))
	for i, c := range data {
		re[i], im[i] = real(c), imag(c)
	}
	return re, im
}

func noise(n int) []complex128 {
	re := testutil.DeterministicNoise(7, 1, n)
	im := testutil.DeterministicNoise(8, 1, n)
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(re[i], im[i])
	}
	return out
}

func TestTransformShapeMismatch(t *testing.T) {
	err := Transform(Forward, make([]complex128, 3), []int{2, 2})
	if !errors.Is(err, ErrShape) {
		t.Fatalf("err = %v, want ErrShape", err)
	}
}

func TestTransformImpulseIsFlat(t *testing.T) {
	data := make([]complex128, 32)
	data[0] = 1
	if err := Transform(Forward, data, []int{4, 8}); err != nil {
		t.Fatalf("Transform: %v", err)
	}
	re, im := split(data)
	testutil.RequireSliceNearlyEqual(t, re, testutil.Ones(32), 1e-12)
	testutil.RequireSliceNearlyEqual(t, im, make([]float64, 32), 1e-12)
}

func TestTransformDCBin(t *testing.T) {
	data := make([]complex128, 8)
	for i, v := range testutil.Ramp(8) {
		data[i] = complex(v, 0)
	}
	if err := Transform(Forward, data, []int{2, 4}); err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if cmplx.Abs(data[0]-28) > 1e-12 {
		t.Fatalf("data[0] = %v, want 28", data[0])
	}
}

func TestTransformRoundTrip(t *testing.T) {
	for _, shape := range [][]int{{4, 2, 8}, {6, 5}, {3, 1, 7}} {
		n := 1
		for _, d := range shape {
			n *= d
		}
		data := noise(n)
		wantRe, wantIm := split(data)

		if err := Transform(Forward, data, shape); err != nil {
			t.Fatalf("Forward %v: %v", shape, err)
		}
		if err := Transform(Inverse, data, shape); err != nil {
			t.Fatalf("Inverse %v: %v", shape, err)
		}
		re, im := split(data)
		testutil.RequireSliceNearlyEqual(t, re, wantRe, 1e-12)
		testutil.RequireSliceNearlyEqual(t, im, wantIm, 1e-12)
	}
}

func TestTransformSkipsUnitAxes(t *testing.T) {
	data := []complex128{3}
	if err := Transform(Forward, data, []int{1, 1}); err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if data[0] != 3 {
		t.Fatalf("data[0] = %v, want 3", data[0])
	}
}

func BenchmarkTransform64x64(b *testing.B) {
	data := noise(64 * 64)
	for b.Loop() {
		if err := Transform(Forward, data, []int{64, 64}); err != nil {
			b.Fatal(err)
		}
	}
}
