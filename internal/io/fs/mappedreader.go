package fs

import (
	"bytes"
	"context"
	"io"

	"github.com/snonux/ecat/internal/constants"
)

// mappedView is a read only view of an entire file's bytes, produced by
// the platform specific backends in this package. Bytes stays valid until
// Close.
type mappedView interface {
	Bytes() []byte
	Close() error
}

// MappedReader processes a file through a mapped view of its whole
// content, avoiding a copying read call. Line chunks are sliced out of
// the view in place.
type MappedReader struct {
	baseReader
}

// Start maps the file and processes it. Empty files produce no output and
// no error. The view is released when processing ends, error paths
// included.
func (m *MappedReader) Start(ctx context.Context, out io.Writer) error {
	view, err := openMappedView(m.filePath)
	if err != nil {
		return err
	}
	defer view.Close()

	data := view.Bytes()
	if len(data) == 0 {
		return nil
	}
	if !m.opts.TextProcessing() {
		n, err := out.Write(data)
		m.stats.updateBytesCopied(int64(n))
		return err
	}
	return m.scanLines(ctx, data, out)
}

// scanLines splits the view into newline terminated chunks. Chunks are
// capped at MaxLineLength so over-long lines split exactly like they do
// in the stream reader.
func (m *MappedReader) scanLines(ctx context.Context, data []byte, out io.Writer) error {
	pipeline := m.makePipeline(out)

	for start := 0; start < len(data); {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		window := data[start:]
		if len(window) > constants.MaxLineLength {
			window = window[:constants.MaxLineLength]
		}
		end := start + len(window)
		if idx := bytes.IndexByte(window, '\n'); idx >= 0 {
			end = start + idx + 1
		}
		if err := pipeline.writeLine(data[start:end]); err != nil {
			return err
		}
		start = end
	}
	return nil
}
