package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-nd/nd"
)

func grid(t *testing.T, h, w int) *nd.NdArray {
	t.Helper()
	a, err := nd.Arange(h*w).Reshape(h, w)
	require.NoError(t, err)
	return a
}

func TestSAT(t *testing.T) {
	sat, err := SAT(grid(t, 3, 3))
	require.NoError(t, err)
	assert.Equal(t, nd.Uint32, sat.DType())
	assert.Equal(t, []float64{0, 1, 3, 3, 8, 15, 9, 21, 36}, sat.Data())
}

func TestSSAT(t *testing.T) {
	ssat, err := SSAT(grid(t, 3, 3))
	require.NoError(t, err)
	assert.Equal(t, nd.Uint32, ssat.DType())
	assert.Equal(t, []float64{0, 1, 5, 9, 26, 55, 45, 111, 204}, ssat.Data())
}

func TestSATOfRGB(t *testing.T) {
	img := nd.Ones([]int{2, 3, 3}, nd.Uint8).MultiplyScalar(10)
	sat, err := SAT(img)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30, 20, 40, 60}, sat.Data())
}

func TestAreaValue(t *testing.T) {
	img := grid(t, 4, 4)
	sat, err := SAT(img)
	require.NoError(t, err)
	ssat, err := SSAT(img)
	require.NoError(t, err)

	tests := []struct {
		h0, w0, h, w int
		table        *nd.NdArray
		want         float64
	}{
		{0, 0, 2, 3, sat, 3},
		{0, 0, 3, 2, sat, 4.5},
		{1, 1, 2, 2, sat, 7.5},
		{0, 0, 1, 4, sat, 1.5},
		{0, 0, 1, 4, ssat, 3.5},
		{3, 0, 1, 4, sat, 13.5},
		{0, 3, 4, 1, sat, 9},
	}
	for _, tt := range tests {
		got := AreaValue(tt.h0, tt.w0, tt.h, tt.w, tt.table)
		assert.InDelta(t, tt.want, got, 1e-12, "window (%d,%d) %dx%d", tt.h0, tt.w0, tt.h, tt.w)
	}
	assert.Equal(t, 120.0, AreaSum(0, 0, 4, 4, sat))
}

func TestSATRejectsBadRank(t *testing.T) {
	_, err := SAT(nd.Arange(4))
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func BenchmarkSAT(b *testing.B) {
	img := nd.Random(nil, 256, 256).MultiplyScalar(255)
	for b.Loop() {
		_, _ = SAT(img)
	}
}
