package pool

import (
	"bytes"
	"sync"

	"github.com/snonux/ecat/internal/constants"
)

// BytesBuffer is there to optimize memory allocations. ECat otherwise
// allocates a fresh buffer for every diagnostic line it assembles.
var BytesBuffer = sync.Pool{
	New: func() interface{} {
		b := bytes.Buffer{}
		// Most assembled messages fit well within the initial capacity
		b.Grow(constants.LineBufferInitialCapacity)
		return &b
	},
}

// RecycleBytesBuffer recycles the buffer again.
func RecycleBytesBuffer(b *bytes.Buffer) {
	b.Reset()
	BytesBuffer.Put(b)
}
