// Package pool provides reusable scratch buffers for the hot paths of the
// verifier: every domain-separated hash derivation builds a small
// concatenation buffer, and the contour fold calls them once per internal
// node. Pooling those buffers keeps Check's steady-state allocation count
// flat once the input has been read.
package pool

import "sync"

// ByteSlicePool hands out []byte scratch buffers with at least a requested
// capacity and takes them back for reuse. Unlike a fixed-size pool, the
// capacity served may exceed what was asked for (and the buffer's length
// is always reset to zero).
type ByteSlicePool struct {
	pool sync.Pool
}

// NewByteSlicePool creates a new ByteSlicePool with a given default
// capacity for freshly allocated buffers.
func NewByteSlicePool(defaultCap int) *ByteSlicePool {
	return &ByteSlicePool{
		pool: sync.Pool{
			New: func() interface{} {
				b := make([]byte, 0, defaultCap)
				return &b
			},
		},
	}
}

// Get returns a buffer with length 0 and capacity at least n, reused from
// the pool when possible.
func (p *ByteSlicePool) Get(n int) []byte {
	b := *p.pool.Get().(*[]byte)
	if cap(b) < n {
		b = make([]byte, 0, n)
	}
	return b[:0]
}

// Put returns b to the pool for reuse. Callers must not retain b after
// calling Put.
func (p *ByteSlicePool) Put(b []byte) {
	p.pool.Put(&b)
}

// HashScratchPool is sized for the largest fixed-size buffer a
// domain-separated derivation builds: a branch hash's
// prefix + 2 digests + 2 compressed paths, at HashWidth = 32. A leaf-value
// hash of a longer value asks for more, and Get allocates to fit.
var HashScratchPool = NewByteSlicePool(1 + 32 + 32 + 33 + 33)
