// Package scratch provides reusable complex work buffers for frequency
// domain transforms.
package scratch

// Buffer is a fixed-length complex128 work area.
type Buffer struct {
	data []complex128
}

// Data returns the underlying slice.
func (b *Buffer) Data() []complex128 {
	return b.data
}

// Len returns the number of elements.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Zero sets all elements to 0.
func (b *Buffer) Zero() {
	clear(b.data)
}
