package images

import "github.com/cwbudde/algo-nd/nd"

// SAT computes the Uint32 sum area table (integral image) of the gray
// version of img: out[y, x] is the sum of all pixels in [0..y]×[0..x].
func SAT(img *nd.NdArray) (*nd.NdArray, error) {
	return integrate(img, func(v float64) float64 { return v })
}

// SSAT computes the sum area table of the squared gray pixels.
func SSAT(img *nd.NdArray) (*nd.NdArray, error) {
	return integrate(img, func(v float64) float64 { return v * v })
}

func integrate(img *nd.NdArray, fn func(float64) float64) (*nd.NdArray, error) {
	gray, err := RGB2Gray(img)
	if err != nil {
		return nil, err
	}
	out := nd.Zeros(gray.Shape(), nd.Uint32)
	taps := []nd.Neighbor{
		{Array: gray, Offset: []int{0, 0}},
		{Array: out, Offset: []int{-1, -1}},
		{Array: out, Offset: []int{-1, 0}},
		{Array: out, Offset: []int{0, -1}},
	}
	err = nd.ApplyNeighbors(out, taps, func(_ []int, v []float64) float64 {
		return fn(v[0]) + v[2] + v[3] - v[1]
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AreaSum returns the sum of the H×W window whose top-left pixel is
// (h0, w0), looked up in the sum area table sat.
func AreaSum(h0, w0, h, w int, sat *nd.NdArray) float64 {
	at := func(y, x int) float64 {
		if y < 0 || x < 0 {
			return 0
		}
		return sat.Get(y, x)
	}
	y0, y1 := h0-1, h0+h-1
	x0, x1 := w0-1, w0+w-1
	return at(y1, x1) - at(y0, x1) - at(y1, x0) + at(y0, x0)
}

// AreaValue returns the mean of the H×W window at (h0, w0).
func AreaValue(h0, w0, h, w int, sat *nd.NdArray) float64 {
	return AreaSum(h0, w0, h, w, sat) / float64(h*w)
}
