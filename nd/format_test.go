package nd

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		a    *NdArray
		want string
	}{
		{"vector", Arange(3), "array([0, 1, 2], dtype=float64)"},
		{"matrix", arange(t, 6, 2, 3), "array([[0, 1, 2],\n       [3, 4, 5]], dtype=float64)"},
		{"padded", mustArray(t, []float64{-1.5, 2}, Float64), "array([-1.5,    2], dtype=float64)"},
		{"generic", mustArray(t, []int{1, 2}, Generic), "array([1, 2])"},
		{"uint8", Ones([]int{2}, Uint8), "array([1, 1], dtype=uint8)"},
		{"precision", mustArray(t, []float64{0.1234567}, Float64), "array([0.12346], dtype=float64)"},
		{"non-finite", mustArray(t, []float64{math.NaN(), math.Inf(1)}, Float64), "array([ NaN, +Inf], dtype=float64)"},
		{"summarized", Arange(10), "array([0, 1, 2, ..., 7, 8, 9], dtype=float64)"},
		{
			"cube", arange(t, 8, 2, 2, 2),
			"array([[[0, 1],\n        [2, 3]],\n" +
				"       [[4, 5],\n        [6, 7]]], dtype=float64)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.String())
		})
	}
}

func TestStringFollowsConfig(t *testing.T) {
	restoreConfig(t)
	require.NoError(t, Configure(WithPrintThreshold(4), WithPrecision(1)))

	a := mustArray(t, []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5}, Float64)
	assert.Equal(t, "array([  0, 0.1, ..., 0.4, 0.5], dtype=float64)", a.String())
}

func TestStringView(t *testing.T) {
	a := arange(t, 6, 2, 3).T().Step(-1)
	assert.Equal(t, "array([[2, 5],\n       [1, 4],\n       [0, 3]], dtype=float64)", a.String())
}

func TestLogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("conv", "target", arange(t, 6, 2, 3))
	assert.Contains(t, buf.String(), "target.dtype=float64")
	assert.Contains(t, buf.String(), "target.shape=\"[2 3]\"")
}

func mustArray(t *testing.T, x any, dtype DType) *NdArray {
	t.Helper()
	a, err := NewArray(x, dtype)
	require.NoError(t, err)
	return a
}
