package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-nd/nd"
)

func TestRGB2Gray(t *testing.T) {
	img, err := nd.NewArray([][][]int{
		{{255, 255, 255}, {255, 0, 0}},
		{{0, 255, 0}, {0, 0, 255}},
	}, nd.Uint8)
	require.NoError(t, err)

	gray, err := RGB2Gray(img)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, gray.Shape())
	assert.Equal(t, nd.Uint8, gray.DType())
	assert.Equal(t, []float64{255, 76, 150, 29}, gray.Data())
}

func TestRGB2GrayAlphaIgnored(t *testing.T) {
	img, err := nd.NewArray([][][]int{{{10, 20, 30, 0}, {10, 20, 30, 255}}}, nd.Uint8)
	require.NoError(t, err)
	gray, err := RGB2Gray(img)
	require.NoError(t, err)
	assert.Equal(t, gray.Get(0, 0), gray.Get(0, 1))
}

func TestRGB2GrayPassThrough(t *testing.T) {
	img := grid(t, 2, 3)
	gray, err := RGB2Gray(img)
	require.NoError(t, err)
	assert.Same(t, img, gray)

	single, err := img.Reshape(2, 3, 1)
	require.NoError(t, err)
	gray, err = RGB2Gray(single)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, gray.Shape())
	assert.Same(t, img.Buffer(), gray.Buffer())
}

func TestRGB2GrayErrors(t *testing.T) {
	_, err := RGB2Gray(nd.Zeros([]int{2, 2, 2}, nd.Uint8))
	assert.ErrorIs(t, err, ErrInvalidImage)
	_, err = RGB2Gray(nd.Zeros([]int{2, 2, 2, 2}, nd.Uint8))
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestIsGrayscale(t *testing.T) {
	gray := nd.Ones([]int{2, 2, 3}, nd.Uint8)
	color := gray.Clone()
	color.Set(9, 1, 1, 2)

	assert.True(t, IsGrayscale(grid(t, 2, 2)))
	assert.True(t, IsGrayscale(nd.Zeros([]int{2, 2, 1}, nd.Uint8)))
	assert.True(t, IsGrayscale(gray))
	assert.False(t, IsGrayscale(color))
	assert.False(t, IsGrayscale(nd.Zeros([]int{2, 2, 2}, nd.Uint8)))
	assert.False(t, IsGrayscale(nd.Arange(3)))
}

func TestFlip(t *testing.T) {
	img := grid(t, 2, 3)
	flipped := Flip(img)
	assert.Equal(t, []float64{2, 1, 0, 5, 4, 3}, flipped.Data())

	flipped.Set(42, 0, 0)
	assert.Equal(t, 42.0, img.Get(0, 2))
}
