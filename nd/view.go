package nd

import "fmt"

// Pick fixes the leading axes to the given coordinates and drops them from
// the result. All (or a missing trailing argument) keeps an axis. Picking
// every axis yields a shape [1] view of that element.
func (a *NdArray) Pick(idx ...int) (*NdArray, error) {
	if len(idx) > len(a.shape) {
		return nil, fmt.Errorf("%w: too many indices (%d) for %d-dimensional array", ErrIndex, len(idx), len(a.shape))
	}
	shape := make([]int, 0, len(a.shape))
	stride := make([]int, 0, len(a.shape))
	offset := a.offset
	for axis, n := range a.shape {
		if axis < len(idx) && idx[axis] != All {
			k := idx[axis]
			if k < 0 || k >= n {
				return nil, fmt.Errorf("%w: index %d out of range for axis %d with size %d", ErrIndex, k, axis, n)
			}
			offset += k * a.stride[axis]
			continue
		}
		shape = append(shape, n)
		stride = append(stride, a.stride[axis])
	}
	if len(shape) == 0 {
		shape, stride = []int{1}, []int{1}
	}
	return a.derive(shape, stride, offset), nil
}

// Lo moves the lower bound of each axis inward by n, dropping the first n
// elements. Values are clamped to the axis size; All or negative values
// leave the axis alone.
func (a *NdArray) Lo(n ...int) *NdArray {
	shape, stride := cloneInts(a.shape), cloneInts(a.stride)
	offset := a.offset
	for axis := 0; axis < len(n) && axis < len(shape); axis++ {
		k := n[axis]
		if k <= 0 {
			continue
		}
		k = min(k, shape[axis])
		offset += k * stride[axis]
		shape[axis] -= k
	}
	return a.derive(shape, stride, offset)
}

// Hi truncates each axis to n elements. Values are clamped to the axis
// size; All or negative values leave the axis alone.
func (a *NdArray) Hi(n ...int) *NdArray {
	shape, stride := cloneInts(a.shape), cloneInts(a.stride)
	for axis := 0; axis < len(n) && axis < len(shape); axis++ {
		if k := n[axis]; k >= 0 {
			shape[axis] = min(k, shape[axis])
		}
	}
	return a.derive(shape, stride, a.offset)
}

// Step multiplies each axis stride by n, keeping every n-th element. A
// negative n walks the axis backwards starting from its last element.
// Zero or All leaves the axis alone.
func (a *NdArray) Step(n ...int) *NdArray {
	shape, stride := cloneInts(a.shape), cloneInts(a.stride)
	offset := a.offset
	for axis := 0; axis < len(n) && axis < len(shape); axis++ {
		k := n[axis]
		if k == 0 || k == All {
			continue
		}
		if k < 0 {
			if shape[axis] > 0 {
				offset += stride[axis] * (shape[axis] - 1)
			}
			shape[axis] = (shape[axis] - k - 1) / -k
		} else {
			shape[axis] = (shape[axis] + k - 1) / k
		}
		stride[axis] *= k
	}
	return a.derive(shape, stride, offset)
}

// SliceSpec selects start:stop:step along one axis. All leaves Start or
// Stop open; a zero Step means 1.
type SliceSpec struct {
	Start, Stop, Step int
}

// Full selects a whole axis.
var Full = SliceSpec{Start: All, Stop: All, Step: 1}

// From selects [start:].
func From(start int) SliceSpec { return SliceSpec{Start: start, Stop: All, Step: 1} }

// To selects [:stop].
func To(stop int) SliceSpec { return SliceSpec{Start: All, Stop: stop, Step: 1} }

// Range selects [start:stop].
func Range(start, stop int) SliceSpec { return SliceSpec{Start: start, Stop: stop, Step: 1} }

// RangeStep selects [start:stop:step].
func RangeStep(start, stop, step int) SliceSpec {
	return SliceSpec{Start: start, Stop: stop, Step: step}
}

// Every selects [::step].
func Every(step int) SliceSpec { return SliceSpec{Start: All, Stop: All, Step: step} }

// Slice applies one SliceSpec per leading axis. Negative bounds count from
// the end of the axis. The window [start, stop) is cut first and the step
// applied to it, so a negative step reverses the window.
func (a *NdArray) Slice(specs ...SliceSpec) *NdArray {
	d := len(a.shape)
	lo := make([]int, d)
	hi := make([]int, d)
	step := make([]int, d)
	for axis := range d {
		lo[axis], hi[axis], step[axis] = All, All, All
		if axis >= len(specs) {
			continue
		}
		s, n := specs[axis], a.shape[axis]
		start := resolveBound(s.Start, 0, n)
		stop := resolveBound(s.Stop, n, n)
		stop = max(stop, start)
		lo[axis] = start
		hi[axis] = stop - start
		step[axis] = s.Step
	}
	return a.Lo(lo...).Hi(hi...).Step(step...)
}

func resolveBound(v, open, n int) int {
	if v == All {
		return open
	}
	if v < 0 {
		v += n
	}
	return min(max(v, 0), n)
}

// Transpose permutes the axes. Without arguments the axis order is reversed.
func (a *NdArray) Transpose(axes ...int) (*NdArray, error) {
	d := len(a.shape)
	if len(axes) == 0 {
		axes = make([]int, d)
		for i := range axes {
			axes[i] = d - 1 - i
		}
	}
	if len(axes) != d {
		return nil, fmt.Errorf("%w: axes don't match array: got %d axes for %d dimensions", ErrValue, len(axes), d)
	}
	seen := make([]bool, d)
	shape := make([]int, d)
	stride := make([]int, d)
	for i, ax := range axes {
		if ax < 0 || ax >= d || seen[ax] {
			return nil, fmt.Errorf("%w: axes %v are not a permutation of %d dimensions", ErrValue, axes, d)
		}
		seen[ax] = true
		shape[i] = a.shape[ax]
		stride[i] = a.stride[ax]
	}
	return a.derive(shape, stride, a.offset), nil
}

// Reshape gives the array a new shape with the same number of elements.
// One dimension may be -1 and is inferred. The result shares the buffer
// whenever the new shape is expressible by strides; otherwise the data is
// flattened into a fresh buffer first.
func (a *NdArray) Reshape(shape ...int) (*NdArray, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("%w: reshape takes at least one dimension", ErrValue)
	}
	shape, err := inferShape(a.Size(), shape)
	if err != nil {
		return nil, err
	}

	if sameShape(a.shape, shape) {
		return a.derive(shape, cloneInts(a.stride), a.offset), nil
	}

	if len(a.shape) == 1 {
		stride := rowMajorStrides(shape)
		for i := range stride {
			stride[i] *= a.stride[0]
		}
		return a.derive(shape, stride, a.offset), nil
	}

	compatible := true
	for i := range min(len(a.shape), len(shape)) {
		if a.shape[i] != shape[i] {
			compatible = false
			break
		}
	}
	if compatible {
		stride := make([]int, len(shape))
		for i := range stride {
			stride[i] = 1
			if i < len(a.stride) && a.stride[i] != 0 {
				stride[i] = a.stride[i]
			}
		}
		return a.derive(shape, stride, a.offset), nil
	}

	return a.Flatten().Reshape(shape...)
}

// inferShape resolves a single -1 entry and validates the element count.
func inferShape(size int, shape []int) ([]int, error) {
	out := cloneInts(shape)
	infer := -1
	known := 1
	for axis, n := range out {
		switch {
		case n == -1:
			if infer >= 0 {
				return nil, fmt.Errorf("%w: can only specify one unknown dimension", ErrValue)
			}
			infer = axis
		case n < 0:
			return nil, fmt.Errorf("%w: negative dimension %d", ErrValue, n)
		default:
			known *= n
		}
	}
	if infer >= 0 {
		if known == 0 || size%known != 0 {
			return nil, fmt.Errorf("%w: cannot reshape array of size %d into shape %v", ErrValue, size, shape)
		}
		out[infer] = size / known
		known = size
	}
	if known != size {
		return nil, fmt.Errorf("%w: total size of new array must be unchanged (%d != %d)", ErrValue, known, size)
	}
	return out, nil
}

// Flatten returns the elements as a 1-D array in row-major order. A 1-D
// array is returned as a view of itself; anything else is copied.
func (a *NdArray) Flatten() *NdArray {
	if len(a.shape) == 1 {
		return a.derive(cloneInts(a.shape), cloneInts(a.stride), a.offset)
	}
	out := newContiguous(a.DType(), []int{a.Size()})
	p := 0
	a.each(func(q int) {
		out.buf.SetAt(p, a.buf.At(q))
		p++
	})
	return out
}

// Clone returns a deep, contiguous copy with its own buffer.
func (a *NdArray) Clone() *NdArray {
	out := newContiguous(a.DType(), a.shape)
	if src, ok := a.float64Run(); ok {
		copy(out.buf.Float64s(), src)
		return out
	}
	copyInto(out, a)
	return out
}

// Flip reverses the order of elements along axis. Negative axes count from
// the end.
func (a *NdArray) Flip(axis int) (*NdArray, error) {
	axis, err := a.normalizeAxis(axis)
	if err != nil {
		return nil, err
	}
	step := make([]int, axis+1)
	for i := range step {
		step[i] = All
	}
	step[axis] = -1
	return a.Step(step...), nil
}

func (a *NdArray) normalizeAxis(axis int) (int, error) {
	d := len(a.shape)
	if axis < 0 {
		axis += d
	}
	if axis < 0 || axis >= d {
		return 0, fmt.Errorf("%w: axis %d out of range for %d dimensions", ErrValue, axis, d)
	}
	return axis, nil
}

// IterAxis calls fn with a copy of each sub-array along axis, in order.
// Axis -1 selects the last axis.
func (a *NdArray) IterAxis(axis int, fn func(sub *NdArray, i int)) error {
	axis, err := a.normalizeAxis(axis)
	if err != nil {
		return err
	}
	idx := make([]int, axis+1)
	for i := range idx {
		idx[i] = All
	}
	for i := 0; i < a.shape[axis]; i++ {
		idx[axis] = i
		sub, err := a.Pick(idx...)
		if err != nil {
			return err
		}
		fn(sub.Clone(), i)
	}
	return nil
}
