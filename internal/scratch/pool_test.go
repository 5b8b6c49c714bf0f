package scratch

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolGetIsZeroed(t *testing.T) {
	p := NewPool()
	b := p.Get(8)
	require.Equal(t, 8, b.Len())
	for i := range b.Data() {
		b.Data()[i] = complex(float64(i+1), 1)
	}
	p.Put(b)

	b = p.Get(8)
	for i, v := range b.Data() {
		if v != 0 {
			t.Fatalf("Data()[%d] = %v, want 0", i, v)
		}
	}
	p.Put(b)
}

func TestPoolKeepsLengths(t *testing.T) {
	p := NewPool()
	p.Put(p.Get(16))
	assert.Equal(t, 4, p.Get(4).Len())
	assert.Equal(t, 16, p.Get(16).Len())
	assert.Equal(t, 0, p.Get(-3).Len())
}

func TestPoolGetN(t *testing.T) {
	p := NewPool()
	bufs := p.GetN(2, 6)
	require.Len(t, bufs, 2)
	bufs[0].Data()[0] = 1
	assert.Zero(t, bufs[1].Data()[0])
	p.Put(bufs...)
}

func TestPoolPutNil(t *testing.T) {
	p := NewPool()
	p.Put(nil)
	require.Equal(t, 5, p.Get(5).Len())
}

func TestPoolConcurrentBuffersAreDistinct(t *testing.T) {
	p := NewPool()
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func(v complex128) {
			defer wg.Done()
			b := p.Get(64)
			defer p.Put(b)
			for i := range b.Data() {
				b.Data()[i] = v
			}
			for i, got := range b.Data() {
				if got != v {
					t.Errorf("Data()[%d] = %v, want %v", i, got, v)
					return
				}
			}
		}(complex(float64(g), 0))
	}
	wg.Wait()
}

func BenchmarkPoolGetPut(b *testing.B) {
	p := NewPool()
	for b.Loop() {
		buf := p.Get(4096)
		p.Put(buf)
	}
}
