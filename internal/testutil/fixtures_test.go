package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 2, 64)
	b := DeterministicNoise(42, 2, 64)
	require.Len(t, a, 64)
	assert.Equal(t, a, b)
	for i, v := range a {
		assert.True(t, v >= -2 && v < 2, "sample %d = %v", i, v)
	}
	assert.NotEqual(t, a, DeterministicNoise(43, 2, 64))
}

func TestRamp(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 2, 3}, Ramp(4))
	assert.Empty(t, Ramp(0))
}

func TestImpulse(t *testing.T) {
	got := Impulse(4, 3, 3)
	require.Len(t, got, 9)
	for i, v := range got {
		if i == 4 {
			assert.Equal(t, 1.0, v)
			continue
		}
		assert.Zero(t, v, "index %d", i)
	}
	assert.Equal(t, Constant(0, 4), Impulse(10, 2, 2))
}

func TestConstant(t *testing.T) {
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, Constant(0.5, 3))
	assert.Equal(t, []float64{1, 1}, Ones(2))
}
