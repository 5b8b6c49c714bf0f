package nd

import "fmt"

// walk visits every coordinate of shape exactly once in row-major order.
// Operand v starts at buffer index starts[v] and advances by strides[v].
// fn receives the current buffer index of every operand and, when
// withCoord is set, the coordinate tuple. Both slices are reused between
// calls and must not be retained.
func walk(shape, starts []int, strides [][]int, withCoord bool, fn func(ptrs, coord []int)) {
	d := len(shape)
	if shapeSize(shape) == 0 {
		return
	}
	ptrs := cloneInts(starts)
	if d == 0 {
		fn(ptrs, nil)
		return
	}
	var coord []int
	if withCoord {
		coord = make([]int, d)
	}
	counter := make([]int, d)
	last := d - 1
	inner := shape[last]
	for {
		for k := 0; k < inner; k++ {
			if withCoord {
				coord[last] = k
			}
			fn(ptrs, coord)
			for v := range ptrs {
				ptrs[v] += strides[v][last]
			}
		}
		for v := range ptrs {
			ptrs[v] -= inner * strides[v][last]
		}

		axis := last - 1
		for ; axis >= 0; axis-- {
			counter[axis]++
			for v := range ptrs {
				ptrs[v] += strides[v][axis]
			}
			if counter[axis] < shape[axis] {
				break
			}
			for v := range ptrs {
				ptrs[v] -= shape[axis] * strides[v][axis]
			}
			counter[axis] = 0
		}
		if axis < 0 {
			return
		}
		if withCoord {
			copy(coord, counter)
		}
	}
}

// each visits the buffer index of every element of a in row-major order.
func (a *NdArray) each(fn func(p int)) {
	walk(a.shape, []int{a.offset}, [][]int{a.stride}, false, func(ptrs, _ []int) {
		fn(ptrs[0])
	})
}

func checkSameShape(op string, arrays ...*NdArray) error {
	for _, x := range arrays[1:] {
		if !sameShape(arrays[0].shape, x.shape) {
			return fmt.Errorf("%w: %s: operands could not be used together with shapes %v %v",
				ErrValue, op, arrays[0].shape, x.shape)
		}
	}
	return nil
}

// Apply replaces every element of a with fn(element), in place.
func Apply(a *NdArray, fn func(v float64) float64) {
	a.each(func(p int) {
		a.buf.SetAt(p, fn(a.buf.At(p)))
	})
}

// Apply2 sets dst = fn(dst, x) elementwise. Shapes must match.
func Apply2(dst, x *NdArray, fn func(d, x float64) float64) error {
	if err := checkSameShape("apply", dst, x); err != nil {
		return err
	}
	walk(dst.shape, []int{dst.offset, x.offset}, [][]int{dst.stride, x.stride}, false, func(p, _ []int) {
		dst.buf.SetAt(p[0], fn(dst.buf.At(p[0]), x.buf.At(p[1])))
	})
	return nil
}

// Apply3 sets dst = fn(dst, x, y) elementwise. Shapes must match.
func Apply3(dst, x, y *NdArray, fn func(d, x, y float64) float64) error {
	if err := checkSameShape("apply", dst, x, y); err != nil {
		return err
	}
	walk(dst.shape, []int{dst.offset, x.offset, y.offset}, [][]int{dst.stride, x.stride, y.stride}, false,
		func(p, _ []int) {
			dst.buf.SetAt(p[0], fn(dst.buf.At(p[0]), x.buf.At(p[1]), y.buf.At(p[2])))
		})
	return nil
}

// Apply4 sets dst = fn(dst, x, y, z) elementwise. Shapes must match.
func Apply4(dst, x, y, z *NdArray, fn func(d, x, y, z float64) float64) error {
	if err := checkSameShape("apply", dst, x, y, z); err != nil {
		return err
	}
	walk(dst.shape,
		[]int{dst.offset, x.offset, y.offset, z.offset},
		[][]int{dst.stride, x.stride, y.stride, z.stride}, false,
		func(p, _ []int) {
			dst.buf.SetAt(p[0], fn(dst.buf.At(p[0]), x.buf.At(p[1]), y.buf.At(p[2]), z.buf.At(p[3])))
		})
	return nil
}

// ApplyIndexed sets every element of dst to fn(coord, element).
func ApplyIndexed(dst *NdArray, fn func(coord []int, v float64) float64) {
	walk(dst.shape, []int{dst.offset}, [][]int{dst.stride}, true, func(p, coord []int) {
		dst.buf.SetAt(p[0], fn(coord, dst.buf.At(p[0])))
	})
}

// Neighbor is one stencil tap: the element of Array at the current
// coordinate shifted by Offset.
type Neighbor struct {
	Array  *NdArray
	Offset []int
}

// ApplyNeighbors sets every element of dst to fn(coord, vals), where
// vals[t] is the value of tap t. Taps falling outside their array read 0.
// Coordinates are visited in row-major order, so taps over dst itself see
// values already written during this call.
func ApplyNeighbors(dst *NdArray, taps []Neighbor, fn func(coord []int, vals []float64) float64) error {
	d := len(dst.shape)
	starts := make([]int, 1, len(taps)+1)
	strides := make([][]int, 1, len(taps)+1)
	starts[0], strides[0] = dst.offset, dst.stride
	delta := make([]int, len(taps))
	for t, tap := range taps {
		if !sameShape(tap.Array.shape, dst.shape) {
			return fmt.Errorf("%w: tap %d has shape %v, want %v", ErrValue, t, tap.Array.shape, dst.shape)
		}
		if len(tap.Offset) != d {
			return fmt.Errorf("%w: tap %d offset has %d axes, want %d", ErrValue, t, len(tap.Offset), d)
		}
		for axis, o := range tap.Offset {
			delta[t] += o * tap.Array.stride[axis]
		}
		starts = append(starts, tap.Array.offset)
		strides = append(strides, tap.Array.stride)
	}

	vals := make([]float64, len(taps))
	walk(dst.shape, starts, strides, true, func(p, coord []int) {
		for t, tap := range taps {
			vals[t] = 0
			inside := true
			for axis, o := range tap.Offset {
				c := coord[axis] + o
				if c < 0 || c >= dst.shape[axis] {
					inside = false
					break
				}
			}
			if inside {
				vals[t] = tap.Array.buf.At(p[t+1] + delta[t])
			}
		}
		dst.buf.SetAt(p[0], fn(coord, vals))
	})
	return nil
}
