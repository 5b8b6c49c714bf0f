package nd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumMeanMinMax(t *testing.T) {
	a := arange(t, 12, 3, 4)
	views := map[string]*NdArray{
		"contiguous": a,
		"transposed": a.T(),
		"int16":      a.AsType(Int16),
	}
	for name, v := range views {
		assert.Equal(t, 66.0, v.Sum(), name)
		assert.Equal(t, 5.5, v.Mean(), name)
		assert.Equal(t, 0.0, v.Min(), name)
		assert.Equal(t, 11.0, v.Max(), name)
	}

	w := a.Lo(1, 1).Hi(2, 2)
	assert.Equal(t, 5.0+6+9+10, w.Sum())
	assert.Equal(t, 5.0, w.Min())
	assert.Equal(t, 10.0, w.Max())
}

func TestReductionsOnEmpty(t *testing.T) {
	e := Zeros([]int{0}, Float64)
	assert.Equal(t, 0.0, e.Sum())
	assert.True(t, math.IsNaN(e.Mean()))
	assert.True(t, math.IsNaN(e.Min()))
	assert.True(t, math.IsNaN(e.Max()))
	assert.True(t, math.IsNaN(e.Std()))
	assert.True(t, math.IsNaN(e.StdDdof(-1)))
	assert.True(t, math.IsNaN(Arange(6).Lo(6).StdDdof(-2)))
}

func TestStd(t *testing.T) {
	pair, err := NewArray([]float64{-1, 1}, Float64)
	require.NoError(t, err)
	assert.Equal(t, 1.0, pair.Std())
	assert.Equal(t, 2.0, Arange(7).Std())
	assert.Equal(t, 0.0, Zeros([]int{10}, Float64).Std())
	assert.Equal(t, 0.0, Ones([]int{10}, Float64).MultiplyScalar(0.1).Std())

	assert.InDelta(t, math.Sqrt(2), pair.StdDdof(1), 1e-12)
	assert.True(t, math.IsNaN(pair.StdDdof(2)))
}

func TestMeanAxis(t *testing.T) {
	x, err := NewArray([][]float64{{1, 2}, {3, 4}}, Generic)
	require.NoError(t, err)

	m0, err := x.MeanAxis(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, m0.ToList())

	m1, err := x.MeanAxis(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 3.5}, m1.ToList())

	y, err := NewArray([]float64{1, 2, 3}, Generic)
	require.NoError(t, err)
	my, err := y.MeanAxis(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, my.ToList())

	cube := arange(t, 24, 2, 3, 4)
	mc, err := cube.MeanAxis(-1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, mc.Shape())
	assert.Equal(t, 1.5, mc.Get(0, 0))
	assert.Equal(t, 21.5, mc.Get(1, 2))

	_, err = x.MeanAxis(2)
	assert.ErrorIs(t, err, ErrValue)
}
