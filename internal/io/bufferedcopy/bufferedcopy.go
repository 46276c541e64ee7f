// Package bufferedcopy copies byte streams in fixed size chunks while
// honoring context cancellation. It backs the binary passthrough path,
// where file bytes reach standard output without line splitting.
package bufferedcopy

import (
	"context"
	"io"

	"github.com/snonux/ecat/internal/io/pool"
)

// Copy streams src to dst until EOF or cancellation and returns the number
// of bytes written. Cancellation is checked between chunks, a blocking
// Read is not interrupted mid-call.
func Copy(ctx context.Context, dst io.Writer, src io.Reader) (int64, error) {
	bufPtr := pool.GetCopyBuffer()
	defer pool.PutCopyBuffer(bufPtr)
	buf := *bufPtr
	var total int64

	for {
		select {
		case <-ctx.Done():
			return total, ctx.Err()
		default:
		}

		nr, readErr := src.Read(buf)
		if nr > 0 {
			nw, writeErr := dst.Write(buf[:nr])
			total += int64(nw)
			if writeErr != nil {
				return total, writeErr
			}
			if nw != nr {
				return total, io.ErrShortWrite
			}
		}

		if readErr != nil {
			if readErr == io.EOF {
				return total, nil
			}
			return total, readErr
		}
	}
}
