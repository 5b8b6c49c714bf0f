package scratch

import "sync"

// Pool hands out zeroed Buffers, keeping one sync.Pool per length so a
// buffer is never resized. Concurrent callers always receive distinct
// buffers.
type Pool struct {
	sizes sync.Map // int -> *sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{}
}

func (p *Pool) bucket(n int) *sync.Pool {
	if sp, ok := p.sizes.Load(n); ok {
		return sp.(*sync.Pool)
	}
	sp, _ := p.sizes.LoadOrStore(n, &sync.Pool{
		New: func() any {
			return &Buffer{data: make([]complex128, n)}
		},
	})
	return sp.(*sync.Pool)
}

// Get returns a zeroed Buffer of length n. Negative n is treated as 0.
// Callers must return it via Put when done.
func (p *Pool) Get(n int) *Buffer {
	n = max(n, 0)
	b := p.bucket(n).Get().(*Buffer)
	b.Zero()
	return b
}

// GetN returns count zeroed Buffers of length n.
func (p *Pool) GetN(count, n int) []*Buffer {
	out := make([]*Buffer, count)
	for i := range out {
		out[i] = p.Get(n)
	}
	return out
}

// Put returns buffers to the pool. Nil entries are ignored. The caller
// must not use them afterwards.
func (p *Pool) Put(bufs ...*Buffer) {
	for _, b := range bufs {
		if b == nil {
			continue
		}
		p.bucket(b.Len()).Put(b)
	}
}
