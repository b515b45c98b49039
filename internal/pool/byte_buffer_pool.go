package pool

import "sync"

// Default sizing for pooled buffers. Model blobs are small (a few KiB for
// typical p and k), so a 4KiB default avoids growth in the common case while
// the threshold keeps oversized buffers out of the pool.
const (
	ModelBufferDefaultSize  = 1024 * 4
	ModelBufferMaxThreshold = 1024 * 256
)

// ByteBuffer is a reusable byte slice wrapper handed out by the pool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Reset empties the buffer but keeps the allocated memory for reuse.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

var modelBufferPool = sync.Pool{
	New: func() any { return NewByteBuffer(ModelBufferDefaultSize) },
}

// GetModelBuffer retrieves a reset ByteBuffer from the pool.
func GetModelBuffer() *ByteBuffer {
	bb, _ := modelBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutModelBuffer returns a ByteBuffer to the pool. Buffers that grew past the
// threshold are dropped so the pool does not pin large allocations.
func PutModelBuffer(bb *ByteBuffer) {
	if cap(bb.B) > ModelBufferMaxThreshold {
		return
	}
	modelBufferPool.Put(bb)
}
