package pool

import (
	"sync"

	"github.com/snonux/ecat/internal/constants"
)

// CopyBufferPool provides reusable buffers for the binary passthrough
// path. Files copied one after another reuse the same buffer instead of
// allocating a fresh one each.
var CopyBufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, constants.CopyBufferSize)
		return &buf
	},
}

// GetCopyBuffer gets a copy buffer from the pool.
func GetCopyBuffer() *[]byte {
	return CopyBufferPool.Get().(*[]byte)
}

// PutCopyBuffer returns a copy buffer to the pool.
func PutCopyBuffer(buf *[]byte) {
	CopyBufferPool.Put(buf)
}
