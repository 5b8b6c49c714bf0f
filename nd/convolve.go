package nd

import (
	"fmt"
	"log/slog"
)

// Convolve computes the "valid" N-dimensional convolution of target with
// filter. The output shape is target.shape - filter.shape + 1 per axis.
//
// 3×3 and 5×5 filters over 2-D targets (or 3-D targets with a single
// trailing channel) run as direct stencils; every other combination goes
// through FFTConvolve. Both paths agree to floating-point rounding.
func Convolve(target, filter *NdArray) (*NdArray, error) {
	outShape, err := convolveShape(target, filter)
	if err != nil {
		return nil, err
	}
	if r, ok := stencilRadius(target, filter); ok {
		slog.Debug("nd: convolve", "path", "direct", "target", target, "filter", filter)
		return convolveDirect(target, filter, r)
	}
	slog.Debug("nd: convolve", "path", "fft", "target", target, "filter", filter)
	return fftConvolve(target, filter, outShape)
}

// convolveShape validates the operands and returns the valid output shape.
func convolveShape(target, filter *NdArray) ([]int, error) {
	if len(target.shape) != len(filter.shape) {
		return nil, fmt.Errorf("%w: cannot convolve arrays of different dimensions (%d and %d)",
			ErrValue, len(target.shape), len(filter.shape))
	}
	out := make([]int, len(target.shape))
	for axis, n := range target.shape {
		f := filter.shape[axis]
		if f > n {
			return nil, fmt.Errorf("%w: filter %v larger than target %v on axis %d",
				ErrValue, filter.shape, target.shape, axis)
		}
		out[axis] = n - f + 1
	}
	return out, nil
}

// stencilRadius reports whether the direct path applies and its half width.
func stencilRadius(target, filter *NdArray) (int, bool) {
	fs := filter.shape
	switch len(fs) {
	case 2:
	case 3:
		if fs[2] != 1 || target.shape[2] != 1 {
			return 0, false
		}
	default:
		return 0, false
	}
	if fs[0] != fs[1] || (fs[0] != 3 && fs[0] != 5) {
		return 0, false
	}
	return fs[0] / 2, true
}

// convolveDtype is the element kind of a convolution result.
func convolveDtype(target *NdArray) DType {
	if target.DType().IsFloat() {
		return target.DType()
	}
	return Float64
}

// convolveDirect evaluates a (2r+1)² stencil over a full target-sized
// output and crops r elements from every border.
func convolveDirect(target, filter *NdArray, r int) (*NdArray, error) {
	d := len(target.shape)
	width := 2*r + 1
	taps := make([]Neighbor, 0, width*width)
	weights := make([]float64, 0, width*width)
	for di := -r; di <= r; di++ {
		for dj := -r; dj <= r; dj++ {
			offset := make([]int, d)
			offset[0], offset[1] = di, dj
			taps = append(taps, Neighbor{Array: target, Offset: offset})
			fidx := make([]int, d)
			fidx[0], fidx[1] = r-di, r-dj
			weights = append(weights, filter.Get(fidx...))
		}
	}

	out := newContiguous(convolveDtype(target), target.shape)
	err := ApplyNeighbors(out, taps, func(_ []int, vals []float64) float64 {
		s := 0.0
		for t, v := range vals {
			s += v * weights[t]
		}
		return s
	})
	if err != nil {
		return nil, err
	}

	lo := make([]int, d)
	hi := make([]int, d)
	for axis := range d {
		lo[axis], hi[axis] = All, All
	}
	lo[0], lo[1] = r, r
	hi[0], hi[1] = target.shape[0]-2*r, target.shape[1]-2*r
	return out.Lo(lo...).Hi(hi...), nil
}
