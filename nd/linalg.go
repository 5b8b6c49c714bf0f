package nd

import (
	"fmt"

	"github.com/cwbudde/algo-nd/internal/gemm"
)

// Dot computes the matrix product of a and b.
//
// Supported operands are matrix·matrix, vector·matrix, matrix·vector and
// vector·vector, with results of shape [m n], [n], [m] and [1]. The result
// takes the dtype of a.
func Dot(a, b *NdArray) (*NdArray, error) {
	as, bs := a.shape, b.shape
	switch {
	case len(as) == 2 && len(bs) == 2 && as[1] == bs[0]:
		return matmul(a, b)
	case len(as) == 1 && len(bs) == 2 && as[0] == bs[0]:
		c, err := matmul(mustReshape(a, 1, as[0]), b)
		if err != nil {
			return nil, err
		}
		return c.Reshape(bs[1])
	case len(as) == 2 && len(bs) == 1 && as[1] == bs[0]:
		c, err := matmul(a, mustReshape(b, bs[0], 1))
		if err != nil {
			return nil, err
		}
		return c.Reshape(as[0])
	case len(as) == 1 && len(bs) == 1 && as[0] == bs[0]:
		c, err := matmul(mustReshape(a, 1, as[0]), mustReshape(b, bs[0], 1))
		if err != nil {
			return nil, err
		}
		return c.Reshape(1)
	default:
		return nil, fmt.Errorf("%w: cannot compute the matrix product of shapes %v and %v", ErrValue, as, bs)
	}
}

// mustReshape reshapes a rank-1 array whose size is known to match.
func mustReshape(a *NdArray, shape ...int) *NdArray {
	r, err := a.Reshape(shape...)
	if err != nil {
		panic(err)
	}
	return r
}

func matmul(a, b *NdArray) (*NdArray, error) {
	m, k, n := a.shape[0], a.shape[1], b.shape[1]
	out := newContiguous(Float64, []int{m, n})
	if err := gemm.Mul(out.buf.Float64s(), a.Data(), b.Data(), m, k, n); err != nil {
		return nil, err
	}
	if a.DType() == Float64 {
		return out, nil
	}
	return out.AsType(a.DType()), nil
}

// Diag extracts the diagonal of a 2-D array, or builds a square matrix
// with a 1-D array on its diagonal. Both results are copies.
func (a *NdArray) Diag() (*NdArray, error) {
	switch len(a.shape) {
	case 1:
		n := a.shape[0]
		out := newContiguous(a.DType(), []int{n, n})
		for i := range n {
			out.Set(a.Get(i), i, i)
		}
		return out, nil
	case 2:
		n := min(a.shape[0], a.shape[1])
		d := a.derive([]int{n}, []int{a.stride[0] + a.stride[1]}, a.offset)
		return d.Clone(), nil
	default:
		return nil, fmt.Errorf("%w: diag requires a 1-D or 2-D array, got %d dimensions", ErrValue, len(a.shape))
	}
}

// Concatenate joins arrays along their last axis. All arrays must have the
// same rank and agree on every other axis. The result takes the dtype of
// the first array.
func Concatenate(arrays ...*NdArray) (*NdArray, error) {
	if len(arrays) == 0 {
		return nil, fmt.Errorf("%w: need at least one array to concatenate", ErrValue)
	}
	first := arrays[0]
	d := len(first.shape)
	last := d - 1
	shape := first.Shape()
	for _, x := range arrays[1:] {
		if len(x.shape) != d {
			return nil, fmt.Errorf("%w: all the input arrays must have same number of dimensions", ErrValue)
		}
		for axis := range last {
			if x.shape[axis] != first.shape[axis] {
				return nil, fmt.Errorf("%w: cannot concatenate %v with %v", ErrValue, first.shape, x.shape)
			}
		}
		shape[last] += x.shape[last]
	}

	out := newContiguous(first.DType(), shape)
	lo := make([]int, d)
	hi := make([]int, d)
	for axis := range d {
		lo[axis], hi[axis] = All, All
	}
	at := 0
	for _, x := range arrays {
		lo[last], hi[last] = at, x.shape[last]
		copyInto(out.Lo(lo...).Hi(hi...), x)
		at += x.shape[last]
	}
	return out, nil
}

// Stack joins same-shape arrays along a new axis. Negative axes count from
// the end of the result, so -1 appends a trailing axis.
func Stack(arrays []*NdArray, axis int) (*NdArray, error) {
	if len(arrays) == 0 {
		return nil, fmt.Errorf("%w: need at least one array to stack", ErrValue)
	}
	first := arrays[0]
	for _, x := range arrays[1:] {
		if !sameShape(x.shape, first.shape) {
			return nil, fmt.Errorf("%w: all input arrays must have the same shape", ErrValue)
		}
	}
	d := len(first.shape) + 1
	if axis < 0 {
		axis += d
	}
	if axis < 0 || axis >= d {
		return nil, fmt.Errorf("%w: axis %d out of range for %d dimensions", ErrValue, axis, d)
	}

	shape := make([]int, 0, d)
	shape = append(shape, first.shape[:axis]...)
	shape = append(shape, len(arrays))
	shape = append(shape, first.shape[axis:]...)
	out := newContiguous(first.DType(), shape)

	idx := make([]int, axis+1)
	for i := range idx {
		idx[i] = All
	}
	for i, x := range arrays {
		idx[axis] = i
		dst, err := out.Pick(idx...)
		if err != nil {
			return nil, err
		}
		if _, err := dst.Assign(x); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Rot90 rotates the array by 90 degrees k times in the plane given by
// axes, from the first axis towards the second. Without axes the plane is
// (0, 1). The result is a view.
func (a *NdArray) Rot90(k int, axes ...int) (*NdArray, error) {
	if len(axes) == 0 {
		axes = []int{0, 1}
	}
	if len(axes) != 2 {
		return nil, fmt.Errorf("%w: len(axes) must be 2", ErrValue)
	}
	a0, err := a.normalizeAxis(axes[0])
	if err != nil {
		return nil, err
	}
	a1, err := a.normalizeAxis(axes[1])
	if err != nil {
		return nil, err
	}
	if a0 == a1 {
		return nil, fmt.Errorf("%w: axes must be different", ErrValue)
	}

	perm := make([]int, len(a.shape))
	for i := range perm {
		perm[i] = i
	}
	perm[a0], perm[a1] = a1, a0

	switch ((k % 4) + 4) % 4 {
	case 1:
		f, err := a.Flip(a1)
		if err != nil {
			return nil, err
		}
		return f.Transpose(perm...)
	case 2:
		f, err := a.Flip(a0)
		if err != nil {
			return nil, err
		}
		return f.Flip(a1)
	case 3:
		t, err := a.Transpose(perm...)
		if err != nil {
			return nil, err
		}
		return t.Flip(a1)
	default:
		return a.derive(a.Shape(), a.Strides(), a.offset), nil
	}
}
