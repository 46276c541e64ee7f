package constants

// Buffer size constants in bytes
const (
	// ReadBufferSize is the size of read buffers (8KB)
	ReadBufferSize = 8192

	// MaxLineLength is the longest chunk emitted as one line (8KB).
	// Longer lines are split into chunks of this size.
	MaxLineLength = 8192

	// OutputBufferSize is the size of the buffered stdout writer (8KB)
	OutputBufferSize = 8192

	// CopyBufferSize is the chunk size for passthrough copies (32KB)
	CopyBufferSize = 32 * 1024

	// LineBufferInitialCapacity is the initial capacity for reused line
	// and log message buffers (4KB)
	LineBufferInitialCapacity = 4096
)
