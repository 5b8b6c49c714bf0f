package nd

import "math"

// Number is the set of Go element types a Buffer can wrap.
type Number interface {
	int8 | int16 | int32 | uint8 | uint16 | uint32 | float32 | float64
}

// storage is the dtype-specific backing of a Buffer.
type storage interface {
	len() int
	at(i int) float64
	set(i int, v float64)
	clone() storage
}

type typedStorage[T Number] struct {
	data []T
	conv func(float64) T
}

func (s *typedStorage[T]) len() int             { return len(s.data) }
func (s *typedStorage[T]) at(i int) float64     { return float64(s.data[i]) }
func (s *typedStorage[T]) set(i int, v float64) { s.data[i] = s.conv(v) }

func (s *typedStorage[T]) clone() storage {
	data := make([]T, len(s.data))
	copy(data, s.data)
	return &typedStorage[T]{data: data, conv: s.conv}
}

// Buffer is an owned, contiguous block of homogeneously typed elements.
// Any number of views may share one Buffer; writes through one view are
// visible through all others.
type Buffer struct {
	dtype DType
	store storage
}

// NewBuffer returns a zero-filled Buffer of n elements.
func NewBuffer(dtype DType, n int) *Buffer {
	if n < 0 {
		n = 0
	}
	var s storage
	switch dtype {
	case Int8:
		s = &typedStorage[int8]{data: make([]int8, n), conv: toInt[int8]}
	case Int16:
		s = &typedStorage[int16]{data: make([]int16, n), conv: toInt[int16]}
	case Int32:
		s = &typedStorage[int32]{data: make([]int32, n), conv: toInt[int32]}
	case Uint8:
		s = &typedStorage[uint8]{data: make([]uint8, n), conv: toInt[uint8]}
	case Uint16:
		s = &typedStorage[uint16]{data: make([]uint16, n), conv: toInt[uint16]}
	case Uint32:
		s = &typedStorage[uint32]{data: make([]uint32, n), conv: toInt[uint32]}
	case Float32:
		s = &typedStorage[float32]{data: make([]float32, n), conv: toFloat32}
	case Float64:
		s = &typedStorage[float64]{data: make([]float64, n), conv: identity}
	default:
		dtype = Generic
		s = &typedStorage[float64]{data: make([]float64, n), conv: identity}
	}
	return &Buffer{dtype: dtype, store: s}
}

// Wrap returns a Buffer backed by data without copying. The dtype follows
// the element type; float64 data becomes Float64.
func Wrap[T Number](data []T) *Buffer {
	var zero T
	switch any(zero).(type) {
	case int8:
		return &Buffer{dtype: Int8, store: &typedStorage[T]{data: data, conv: toInt[T]}}
	case int16:
		return &Buffer{dtype: Int16, store: &typedStorage[T]{data: data, conv: toInt[T]}}
	case int32:
		return &Buffer{dtype: Int32, store: &typedStorage[T]{data: data, conv: toInt[T]}}
	case uint8:
		return &Buffer{dtype: Uint8, store: &typedStorage[T]{data: data, conv: toInt[T]}}
	case uint16:
		return &Buffer{dtype: Uint16, store: &typedStorage[T]{data: data, conv: toInt[T]}}
	case uint32:
		return &Buffer{dtype: Uint32, store: &typedStorage[T]{data: data, conv: toInt[T]}}
	case float32:
		return &Buffer{dtype: Float32, store: &typedStorage[T]{data: data, conv: func(v float64) T { return T(v) }}}
	default:
		return &Buffer{dtype: Float64, store: &typedStorage[T]{data: data, conv: func(v float64) T { return T(v) }}}
	}
}

// DType returns the element kind.
func (b *Buffer) DType() DType { return b.dtype }

// Len returns the number of elements.
func (b *Buffer) Len() int { return b.store.len() }

// At returns element i as float64.
func (b *Buffer) At(i int) float64 { return b.store.at(i) }

// SetAt stores v at element i, converting to the buffer's dtype.
func (b *Buffer) SetAt(i int, v float64) { b.store.set(i, v) }

// Float64s returns the backing slice of Float64 and Generic buffers, or nil.
func (b *Buffer) Float64s() []float64 {
	if s, ok := b.store.(*typedStorage[float64]); ok {
		return s.data
	}
	return nil
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{dtype: b.dtype, store: b.store.clone()}
}

// toInt converts like a typed-array store: non-finite values become 0,
// everything else truncates toward zero and wraps modulo 2^bits.
func toInt[T Number](v float64) T {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return T(int64(math.Mod(math.Trunc(v), 1<<32)))
}

func toFloat32(v float64) float32 { return float32(v) }

func identity(v float64) float64 { return v }
