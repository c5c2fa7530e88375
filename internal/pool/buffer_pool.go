package pool

import (
	"sync"
)

// BufferPool implements a pool of byte slices for efficient memory reuse
type BufferPool struct {
	pool sync.Pool
	size int
}

// NewBufferPool creates a new buffer pool with buffers of the specified size
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]byte, 0, size)
				return &buffer
			},
		},
		size: size,
	}
}

// Get retrieves a buffer from the pool or creates a new one if none are available
func (bp *BufferPool) Get() *[]byte {
	return bp.pool.Get().(*[]byte)
}

// Put returns a buffer to the pool for reuse
func (bp *BufferPool) Put(buffer *[]byte) {
	// Reset buffer length but keep capacity
	*buffer = (*buffer)[:0]
	bp.pool.Put(buffer)
}

// RuneBufferPool implements a pool of rune slices. Buffers grown beyond
// maxCap are dropped on Put instead of being kept alive by the pool.
type RuneBufferPool struct {
	pool   sync.Pool
	maxCap int
}

// NewRuneBufferPool creates a pool of rune slices with the given initial
// capacity. A maxCap of 0 keeps every buffer.
func NewRuneBufferPool(size, maxCap int) *RuneBufferPool {
	return &RuneBufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]rune, 0, size)
				return &buffer
			},
		},
		maxCap: maxCap,
	}
}

// Get retrieves an empty rune buffer from the pool
func (rbp *RuneBufferPool) Get() *[]rune {
	return rbp.pool.Get().(*[]rune)
}

// Put returns a rune buffer to the pool
func (rbp *RuneBufferPool) Put(buffer *[]rune) {
	if rbp.maxCap > 0 && cap(*buffer) > rbp.maxCap {
		return
	}
	*buffer = (*buffer)[:0]
	rbp.pool.Put(buffer)
}

// IntRowPool hands out zeroed int slices used as dynamic programming rows.
// Rows longer than maxCap are not returned to the pool.
type IntRowPool struct {
	pool   sync.Pool
	maxCap int
}

// NewIntRowPool creates a new pool of int rows. A maxCap of 0 keeps every row.
func NewIntRowPool(maxCap int) *IntRowPool {
	return &IntRowPool{
		pool: sync.Pool{
			New: func() interface{} {
				row := make([]int, 0, 1024)
				return &row
			},
		},
		maxCap: maxCap,
	}
}

// Get returns a row of exactly n zeroed cells.
func (p *IntRowPool) Get(n int) *[]int {
	row := p.pool.Get().(*[]int)
	if cap(*row) < n {
		*row = make([]int, n)
		return row
	}
	*row = (*row)[:n]
	clear(*row)
	return row
}

// Put returns a row to the pool.
func (p *IntRowPool) Put(row *[]int) {
	if p.maxCap > 0 && cap(*row) > p.maxCap {
		return
	}
	*row = (*row)[:0]
	p.pool.Put(row)
}
