package images

import (
	"math"

	"github.com/cwbudde/algo-nd/nd"
)

// gradient weights: corner and edge coefficients of a 3×3 derivative kernel.
type gradient struct {
	corner, edge float64
	norm         float64
}

var (
	sobelKernel  = gradient{corner: 1, edge: 2, norm: 4 * math.Sqrt2}
	scharrKernel = gradient{corner: 3, edge: 10, norm: 16 * math.Sqrt2}
)

// Sobel returns the Float32 edge magnitude of the gray version of img.
// Border pixels are zero.
func Sobel(img *nd.NdArray) (*nd.NdArray, error) {
	return edgeMagnitude(img, sobelKernel)
}

// Scharr is Sobel with the more rotation invariant Scharr weights.
func Scharr(img *nd.NdArray) (*nd.NdArray, error) {
	return edgeMagnitude(img, scharrKernel)
}

func edgeMagnitude(img *nd.NdArray, k gradient) (*nd.NdArray, error) {
	gray, err := RGB2Gray(img)
	if err != nil {
		return nil, err
	}
	shape := gray.Shape()
	h, w := shape[0], shape[1]
	out := nd.Zeros(shape, nd.Float32)

	offsets := [][]int{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	taps := make([]nd.Neighbor, len(offsets))
	for i, o := range offsets {
		taps[i] = nd.Neighbor{Array: gray, Offset: o}
	}
	c, e := k.corner, k.edge
	err = nd.ApplyNeighbors(out, taps, func(_ []int, v []float64) float64 {
		a, b, cc, d, f, g, hh, i := v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7]
		sv := c*a + e*b + c*cc - c*g - e*hh - c*i
		sh := c*a - c*cc + e*d - e*f + c*g - c*i
		return math.Sqrt(sh*sh + sv*sv)
	})
	if err != nil {
		return nil, err
	}

	for _, idx := range [][]int{{0}, {nd.All, 0}, {h - 1}, {nd.All, w - 1}} {
		border, err := out.Pick(idx...)
		if err != nil {
			return nil, err
		}
		border.Fill(0)
	}
	return out.DivideScalarInPlace(k.norm), nil
}
