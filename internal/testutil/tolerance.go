package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-vecmath"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair differs by more than eps.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > eps || math.IsNaN(diff) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t listing every NaN or Inf element of data.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	var bad []int
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			bad = append(bad, i)
		}
	}
	if len(bad) > 0 {
		t.Fatalf("%d of %d values are not finite, first at index %d (%v)", len(bad), len(data), bad[0], data[bad[0]])
	}
}

// MaxAbsDiff returns the largest absolute element difference between two
// same-length grids.
func MaxAbsDiff(got, want []float64) (float64, error) {
	if len(got) != len(want) {
		return 0, fmt.Errorf("testutil: length mismatch: %d vs %d", len(got), len(want))
	}
	diff := make([]float64, len(got))
	for i := range got {
		diff[i] = got[i] - want[i]
	}
	return vecmath.MaxAbs(diff), nil
}
