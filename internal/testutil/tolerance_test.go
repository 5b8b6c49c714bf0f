package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 2})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, 1e-15)

	d, err = MaxAbsDiff(Ramp(5), Ramp(5))
	require.NoError(t, err)
	assert.Zero(t, d)

	_, err = MaxAbsDiff([]float64{1}, []float64{1, 2})
	assert.Error(t, err)
}

func TestRequireSliceNearlyEqual(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1 + 1e-10, 2}, 1e-9)
	RequireFinite(t, Ramp(3))
}
