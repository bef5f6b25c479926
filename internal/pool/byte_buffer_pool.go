// Package pool provides sync.Pool-backed reusable buffers for the hot
// encode/decode path: one intermediate varint buffer per encode, one chunk
// buffer per parallel worker.
package pool

import "sync"

const (
	// ByteBufferDefaultSize is the default capacity of a ByteBuffer drawn from
	// the pool.
	ByteBufferDefaultSize = 1024 * 16 // 16KiB

	// ByteBufferMaxThreshold is the largest buffer capacity the pool will
	// retain; larger buffers are discarded on Put to avoid memory bloat from
	// one oversized chunk poisoning the pool for everyone else.
	ByteBufferMaxThreshold = 1024 * 128 // 128KiB
)

// ByteBuffer is a growable byte slice wrapper sized for repeated reuse.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating.
//
// Growth strategy:
//   - Small buffers (<=4x default size): grow by ByteBufferDefaultSize
//   - Larger buffers: grow by 25% of current capacity
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := ByteBufferDefaultSize
	if cap(bb.B) > 4*ByteBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ExtendOrGrow extends the buffer's length by n bytes, growing the backing
// array first if necessary. The new bytes are left as whatever the backing
// array already held (usually zero).
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		bb.B = bb.B[:len(bb.B)+n]
		return
	}

	start := len(bb.B)
	bb.Grow(n)
	bb.B = bb.B[:start+n]
}

// Write appends data to the buffer, growing it as needed. It always returns
// len(data), nil, satisfying io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// byteBufferPool is a sync.Pool of ByteBuffers with an upper bound on the
// capacity it will retain.
type byteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

func newByteBufferPool(defaultSize, maxThreshold int) *byteBufferPool {
	return &byteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

func (p *byteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

func (p *byteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var defaultBufferPool = newByteBufferPool(ByteBufferDefaultSize, ByteBufferMaxThreshold)

// GetBuffer retrieves a ByteBuffer from the shared pool.
func GetBuffer() *ByteBuffer {
	return defaultBufferPool.Get()
}

// PutBuffer returns a ByteBuffer to the shared pool for reuse.
func PutBuffer(bb *ByteBuffer) {
	defaultBufferPool.Put(bb)
}
