package nd

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Sum returns the sum of all elements.
func (a *NdArray) Sum() float64 {
	if run, ok := a.float64Run(); ok {
		return vecmath.Sum(run)
	}
	s := 0.0
	a.each(func(p int) {
		s += a.buf.At(p)
	})
	return s
}

// Mean returns the arithmetic mean, or NaN for an empty array.
func (a *NdArray) Mean() float64 {
	n := a.Size()
	if n == 0 {
		return math.NaN()
	}
	return a.Sum() / float64(n)
}

// Min returns the smallest element, or NaN for an empty array.
func (a *NdArray) Min() float64 {
	if a.Size() == 0 {
		return math.NaN()
	}
	m := math.Inf(1)
	a.each(func(p int) {
		m = math.Min(m, a.buf.At(p))
	})
	return m
}

// Max returns the largest element, or NaN for an empty array.
func (a *NdArray) Max() float64 {
	if a.Size() == 0 {
		return math.NaN()
	}
	m := math.Inf(-1)
	a.each(func(p int) {
		m = math.Max(m, a.buf.At(p))
	})
	return m
}

// Std returns the population standard deviation.
func (a *NdArray) Std() float64 { return a.StdDdof(0) }

// StdDdof returns the standard deviation with n-ddof degrees of freedom.
// Constant data yields exactly 0; an empty array or n <= ddof yields NaN.
func (a *NdArray) StdDdof(ddof int) float64 {
	n := a.Size()
	if n == 0 || n <= ddof {
		return math.NaN()
	}
	var sum, sq float64
	first := a.buf.At(a.offset)
	constant := true
	a.each(func(p int) {
		v := a.buf.At(p)
		if v != first {
			constant = false
		}
		sum += v
		sq += v * v
	})
	if constant {
		return 0
	}
	mean := sum / float64(n)
	variance := math.Abs(sq/float64(n) - mean*mean)
	return math.Sqrt(variance * float64(n) / float64(n-ddof))
}

// MeanAxis averages over axis and returns an array with that axis removed.
// Reducing a 1-D array yields shape [1].
func (a *NdArray) MeanAxis(axis int) (*NdArray, error) {
	axis, err := a.normalizeAxis(axis)
	if err != nil {
		return nil, err
	}
	shape := make([]int, 0, len(a.shape))
	for i, n := range a.shape {
		if i != axis {
			shape = append(shape, n)
		}
	}
	if len(shape) == 0 {
		shape = []int{1}
	}
	out := newContiguous(Float64, shape)
	n := a.shape[axis]
	if n == 0 {
		return out.Fill(math.NaN()), nil
	}
	idx := make([]int, axis+1)
	for i := range idx {
		idx[i] = All
	}
	for i := range n {
		idx[axis] = i
		sub, err := a.Pick(idx...)
		if err != nil {
			return nil, err
		}
		if _, err := out.AddInPlace(sub); err != nil {
			return nil, err
		}
	}
	return out.DivideScalarInPlace(float64(n)), nil
}
