package nd

import (
	"fmt"
	"math"
)

// All keeps an axis untouched when passed to Pick, Lo, Hi or Step, and
// leaves a slice bound open in a SliceSpec.
const All = math.MinInt

// NdArray is a view descriptor: shape, stride and offset over a Buffer.
//
// For every coordinate (i0..in-1) with 0 <= ik < shape[k] the element lives
// at buffer index offset + Σ ik*stride[k]. Views are immutable values; view
// operations return new descriptors over the same Buffer whenever the
// result can be expressed by strides, and copy otherwise.
type NdArray struct {
	buf    *Buffer
	shape  []int
	stride []int
	offset int
}

// NewView returns a view over buf with explicit layout. It fails with
// ErrValue when a reachable coordinate falls outside the buffer.
func NewView(buf *Buffer, shape, stride []int, offset int) (*NdArray, error) {
	if buf == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrValue)
	}
	if len(shape) != len(stride) {
		return nil, fmt.Errorf("%w: shape has %d axes, stride has %d", ErrValue, len(shape), len(stride))
	}
	if len(shape) == 0 {
		return nil, fmt.Errorf("%w: rank-0 views are not supported, use shape [1]", ErrValue)
	}
	for axis, n := range shape {
		if n < 0 {
			return nil, fmt.Errorf("%w: negative size %d on axis %d", ErrValue, n, axis)
		}
	}
	a := &NdArray{buf: buf, shape: cloneInts(shape), stride: cloneInts(stride), offset: offset}
	if a.Size() == 0 {
		return a, nil
	}
	lo, hi := offset, offset
	for axis, n := range shape {
		span := (n - 1) * stride[axis]
		if span < 0 {
			lo += span
		} else {
			hi += span
		}
	}
	if lo < 0 || hi >= buf.Len() {
		return nil, fmt.Errorf("%w: view spans [%d, %d] outside buffer of length %d", ErrValue, lo, hi, buf.Len())
	}
	return a, nil
}

// newContiguous allocates a zero-filled row-major array.
func newContiguous(dtype DType, shape []int) *NdArray {
	return &NdArray{
		buf:    NewBuffer(dtype, shapeSize(shape)),
		shape:  cloneInts(shape),
		stride: rowMajorStrides(shape),
	}
}

// derive returns a view over the same buffer. The slices are owned by the result.
func (a *NdArray) derive(shape, stride []int, offset int) *NdArray {
	return &NdArray{buf: a.buf, shape: shape, stride: stride, offset: offset}
}

// Shape returns a copy of the dimension sizes.
func (a *NdArray) Shape() []int { return cloneInts(a.shape) }

// Strides returns a copy of the per-axis element steps.
func (a *NdArray) Strides() []int { return cloneInts(a.stride) }

// Offset returns the buffer index of the logical origin.
func (a *NdArray) Offset() int { return a.offset }

// NDim returns the number of axes.
func (a *NdArray) NDim() int { return len(a.shape) }

// Size returns the number of addressable elements.
func (a *NdArray) Size() int { return shapeSize(a.shape) }

// DType returns the element kind of the underlying buffer.
func (a *NdArray) DType() DType { return a.buf.dtype }

// Buffer returns the shared backing storage.
func (a *NdArray) Buffer() *Buffer { return a.buf }

// T is shorthand for Transpose with reversed axes.
func (a *NdArray) T() *NdArray {
	t, _ := a.Transpose()
	return t
}

// IsContiguous reports whether the view walks its buffer in row-major order
// without gaps.
func (a *NdArray) IsContiguous() bool {
	want := 1
	for axis := len(a.shape) - 1; axis >= 0; axis-- {
		if a.shape[axis] != 1 && a.stride[axis] != want {
			return false
		}
		want *= a.shape[axis]
	}
	return true
}

// float64Run returns the view's elements as one slice when it is a
// contiguous view over float64 storage.
func (a *NdArray) float64Run() ([]float64, bool) {
	data := a.buf.Float64s()
	if data == nil || !a.IsContiguous() {
		return nil, false
	}
	n := a.Size()
	if n == 0 {
		return nil, true
	}
	return data[a.offset : a.offset+n], true
}

// index converts a coordinate tuple to a buffer index, panicking like slice
// indexing when the tuple does not address an element.
func (a *NdArray) index(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("nd: got %d indices for %d-dimensional array", len(idx), len(a.shape)))
	}
	p := a.offset
	for axis, i := range idx {
		if i < 0 || i >= a.shape[axis] {
			panic(fmt.Sprintf("nd: index %d out of range for axis %d with size %d", i, axis, a.shape[axis]))
		}
		p += i * a.stride[axis]
	}
	return p
}

// Get returns the element at idx.
func (a *NdArray) Get(idx ...int) float64 {
	return a.buf.At(a.index(idx))
}

// Set stores v at idx. The write is visible through every aliasing view.
func (a *NdArray) Set(v float64, idx ...int) {
	a.buf.SetAt(a.index(idx), v)
}

// Data returns the elements in row-major order as a fresh slice.
func (a *NdArray) Data() []float64 {
	out := make([]float64, 0, a.Size())
	a.each(func(p int) {
		out = append(out, a.buf.At(p))
	})
	return out
}

// ToList unpacks the array into nested []any slices whose innermost level
// is []float64.
func (a *NdArray) ToList() any {
	root := nativeArray(a.shape, 0)
	last := len(a.shape) - 1
	walk(a.shape, []int{a.offset}, [][]int{a.stride}, true, func(ptrs, coord []int) {
		node := root
		for axis := 0; axis < last; axis++ {
			node = node.([]any)[coord[axis]]
		}
		node.([]float64)[coord[last]] = a.buf.At(ptrs[0])
	})
	return root
}

func nativeArray(shape []int, axis int) any {
	n := shape[axis]
	if axis == len(shape)-1 {
		return make([]float64, n)
	}
	out := make([]any, n)
	for i := range out {
		out[i] = nativeArray(shape, axis+1)
	}
	return out
}

// Equal reports whether other has the same shape and elements.
func (a *NdArray) Equal(other *NdArray) bool {
	if other == nil || !sameShape(a.shape, other.shape) {
		return false
	}
	equal := true
	walk(a.shape, []int{a.offset, other.offset}, [][]int{a.stride, other.stride}, false, func(ptrs, _ []int) {
		if a.buf.At(ptrs[0]) != other.buf.At(ptrs[1]) {
			equal = false
		}
	})
	return equal
}

// AsType copies the array into a contiguous buffer of another dtype.
func (a *NdArray) AsType(dtype DType) *NdArray {
	out := newContiguous(dtype, a.shape)
	copyInto(out, a)
	return out
}

// copyInto writes src into dst element by element. Shapes must match.
func copyInto(dst, src *NdArray) {
	walk(dst.shape, []int{dst.offset, src.offset}, [][]int{dst.stride, src.stride}, false, func(ptrs, _ []int) {
		dst.buf.SetAt(ptrs[0], src.buf.At(ptrs[1]))
	})
}

func shapeSize(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

func rowMajorStrides(shape []int) []int {
	stride := make([]int, len(shape))
	sz := 1
	for axis := len(shape) - 1; axis >= 0; axis-- {
		stride[axis] = sz
		sz *= shape[axis]
	}
	return stride
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}
