package nd

import (
	"fmt"
	"math"
	"math/rand/v2"
	"reflect"
)

// NewArray converts x into an array of the given dtype. x may be a number,
// a bool, a slice or array of numbers, or nested slices of any depth
// (including []any). Nested input must be rectangular. An *NdArray is
// returned unchanged.
func NewArray(x any, dtype DType) (*NdArray, error) {
	if a, ok := x.(*NdArray); ok {
		if a == nil {
			return nil, fmt.Errorf("%w: nil array", ErrValue)
		}
		return a, nil
	}
	v := reflect.ValueOf(x)
	shape, err := nestedShape(v)
	if err != nil {
		return nil, err
	}
	if len(shape) == 0 {
		shape = []int{1}
	}
	out := newContiguous(dtype, shape)
	pos := 0
	if err := fillNested(out.buf, v, out.shape, 0, &pos); err != nil {
		return nil, err
	}
	return out, nil
}

func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// nestedShape follows the first element of each level down to a scalar.
func nestedShape(v reflect.Value) ([]int, error) {
	var shape []int
	for {
		v = unwrap(v)
		if !v.IsValid() {
			return nil, fmt.Errorf("%w: cannot convert nil to an array", ErrValue)
		}
		switch v.Kind() {
		case reflect.Slice, reflect.Array:
			shape = append(shape, v.Len())
			if v.Len() == 0 {
				return shape, nil
			}
			v = v.Index(0)
		default:
			if _, ok := scalarOf(v); !ok {
				return nil, fmt.Errorf("%w: unsupported element type %s", ErrValue, v.Type())
			}
			return shape, nil
		}
	}
}

func fillNested(buf *Buffer, v reflect.Value, shape []int, depth int, pos *int) error {
	v = unwrap(v)
	if depth == len(shape) {
		if !v.IsValid() {
			return fmt.Errorf("%w: nil element", ErrValue)
		}
		f, ok := scalarOf(v)
		if !ok {
			return fmt.Errorf("%w: setting an array element with a sequence", ErrValue)
		}
		buf.SetAt(*pos, f)
		*pos++
		return nil
	}
	if !v.IsValid() || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) || v.Len() != shape[depth] {
		return fmt.Errorf("%w: nested sequence is ragged at depth %d, want length %d", ErrValue, depth, shape[depth])
	}
	for i := range v.Len() {
		if err := fillNested(buf, v.Index(i), shape, depth+1, pos); err != nil {
			return err
		}
	}
	return nil
}

func scalarOf(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.Bool:
		if v.Bool() {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// FromSlice lays data out with the given shape without copying. Without a
// shape the result is 1-D. The product of shape must equal len(data).
func FromSlice[T Number](data []T, shape ...int) (*NdArray, error) {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}
	shape, err := inferShape(len(data), shape)
	if err != nil {
		return nil, err
	}
	return &NdArray{buf: Wrap(data), shape: shape, stride: rowMajorStrides(shape)}, nil
}

// Zeros returns a zero-filled array. It panics on a negative dimension,
// like make.
func Zeros(shape []int, dtype DType) *NdArray {
	for axis, n := range shape {
		if n < 0 {
			panic(fmt.Sprintf("nd: negative dimension %d on axis %d", n, axis))
		}
	}
	if len(shape) == 0 {
		shape = []int{1}
	}
	return newContiguous(dtype, shape)
}

// Ones returns an array filled with 1.
func Ones(shape []int, dtype DType) *NdArray {
	return Zeros(shape, dtype).Fill(1)
}

// Empty returns an array whose contents the caller is expected to
// overwrite. Buffers are always zeroed, so it equals Zeros.
func Empty(shape []int, dtype DType) *NdArray {
	return Zeros(shape, dtype)
}

// Arange returns the Float64 values 0, 1, ..., n-1.
func Arange(n int) *NdArray {
	n = max(n, 0)
	out := newContiguous(Float64, []int{n})
	data := out.buf.Float64s()
	for i := range data {
		data[i] = float64(i)
	}
	return out
}

// ArangeStep returns start, start+step, ... up to but excluding stop.
func ArangeStep(start, stop, step float64) (*NdArray, error) {
	if step == 0 || math.IsNaN(step) {
		return nil, fmt.Errorf("%w: arange step must be non-zero: %v", ErrValue, step)
	}
	n := int(math.Max(0, math.Ceil((stop-start)/step)))
	out := newContiguous(Float64, []int{n})
	data := out.buf.Float64s()
	for i := range data {
		data[i] = start + float64(i)*step
	}
	return out, nil
}

// Random returns a Float64 array of samples drawn uniformly from [0, 1).
// A nil rng uses the package-level generator.
func Random(rng *rand.Rand, shape ...int) *NdArray {
	out := Zeros(shape, Float64)
	next := rand.Float64
	if rng != nil {
		next = rng.Float64
	}
	data := out.buf.Float64s()
	for i := range data {
		data[i] = next()
	}
	return out
}

// Identity returns the n×n identity matrix.
func Identity(n int, dtype DType) *NdArray {
	out := Zeros([]int{n, n}, dtype)
	for i := range n {
		out.Set(1, i, i)
	}
	return out
}
