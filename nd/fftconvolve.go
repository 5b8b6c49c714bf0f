package nd

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-nd/internal/fftnd"
	"github.com/cwbudde/algo-nd/internal/scratch"
)

var scratchPool = scratch.NewPool()

// FFTConvolve computes the "valid" convolution of target with filter in
// the frequency domain. It accepts any rank and filter size.
func FFTConvolve(target, filter *NdArray) (*NdArray, error) {
	outShape, err := convolveShape(target, filter)
	if err != nil {
		return nil, err
	}
	slog.Debug("nd: fftconvolve", "target", target, "filter", filter)
	return fftConvolve(target, filter, outShape)
}

// fftConvolve multiplies the spectra of target and filter over the
// target's own shape. The circular wrap only reaches the first
// filter-1 entries of each axis, which the crop discards.
func fftConvolve(target, filter *NdArray, outShape []int) (*NdArray, error) {
	shape := target.shape
	size := shapeSize(shape)
	bufs := scratchPool.GetN(2, size)
	defer scratchPool.Put(bufs...)
	x, u := bufs[0].Data(), bufs[1].Data()

	strides := rowMajorStrides(shape)
	packReal(x, strides, target)
	packReal(u, strides, filter)

	if err := fftnd.Transform(fftnd.Forward, x, shape); err != nil {
		return nil, fmt.Errorf("nd: fftconvolve: %w", err)
	}
	if err := fftnd.Transform(fftnd.Forward, u, shape); err != nil {
		return nil, fmt.Errorf("nd: fftconvolve: %w", err)
	}

	for i := range size {
		a, b := real(x[i]), imag(x[i])
		c, e := real(u[i]), imag(u[i])
		k1 := c * (a + b)
		x[i] = complex(k1-b*(c+e), k1+a*(e-c))
	}

	if err := fftnd.Transform(fftnd.Inverse, x, shape); err != nil {
		return nil, fmt.Errorf("nd: fftconvolve: %w", err)
	}

	start := 0
	for axis, f := range filter.shape {
		start += (f - 1) * strides[axis]
	}
	out := newContiguous(convolveDtype(target), outShape)
	walk(outShape, []int{out.offset, start}, [][]int{out.stride, strides}, false, func(p, _ []int) {
		out.buf.SetAt(p[0], real(x[p[1]]))
	})
	return out, nil
}

// packReal writes src into the leading window of a row-major complex
// grid with the given strides, imaginary parts zero.
func packReal(dst []complex128, strides []int, src *NdArray) {
	walk(src.shape, []int{0, src.offset}, [][]int{strides, src.stride}, false, func(p, _ []int) {
		dst[p[0]] = complex(src.buf.At(p[1]), 0)
	})
}

// FFT returns the discrete Fourier transform of x, whose last axis holds
// (real, imaginary) pairs. The transform runs jointly over all other axes.
func FFT(x *NdArray) (*NdArray, error) {
	return transform(fftnd.Forward, x)
}

// IFFT returns the inverse of FFT, normalized so IFFT(FFT(x)) == x.
func IFFT(x *NdArray) (*NdArray, error) {
	return transform(fftnd.Inverse, x)
}

func transform(dir fftnd.Direction, x *NdArray) (*NdArray, error) {
	d := len(x.shape)
	if x.shape[d-1] != 2 {
		return nil, fmt.Errorf("%w: last axis must have length 2 (real, imaginary), got shape %v", ErrValue, x.shape)
	}
	shape := x.shape[:d-1]
	if len(shape) == 0 {
		shape = []int{1}
	}
	size := shapeSize(shape)
	buf := scratchPool.Get(size)
	defer scratchPool.Put(buf)
	data := buf.Data()

	// The (re, im) axis is innermost, so pair k sits at row-major index k.
	lanes := x.stride[d-1]
	k := 0
	walk(x.shape[:d-1], []int{x.offset}, [][]int{x.stride[:d-1]}, false, func(p, _ []int) {
		data[k] = complex(x.buf.At(p[0]), x.buf.At(p[0]+lanes))
		k++
	})

	if err := fftnd.Transform(dir, data, shape); err != nil {
		return nil, fmt.Errorf("%w: fft over shape %v: %w", ErrNotImplemented, shape, err)
	}

	out := newContiguous(convolveDtype(x), x.shape)
	for i, c := range data {
		out.buf.SetAt(2*i, real(c))
		out.buf.SetAt(2*i+1, imag(c))
	}
	return out, nil
}
