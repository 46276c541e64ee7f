package fs

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/snonux/ecat/internal/constants"
	"github.com/snonux/ecat/internal/io/bufferedcopy"
)

// StreamReader reads a file or standard input sequentially through a
// fixed size buffer. It is the fallback strategy and the only one that
// handles standard input and compressed files.
type StreamReader struct {
	baseReader
}

// Start processes the whole input. In text mode chunks are bounded by the
// read buffer, lines longer than that are split and each piece runs
// through the pipeline on its own. Without text processing the bytes are
// copied through unmodified.
func (s *StreamReader) Start(ctx context.Context, out io.Writer) error {
	in, err := s.open()
	if err != nil {
		return err
	}
	defer in.Close()

	if !s.opts.TextProcessing() {
		n, err := bufferedcopy.Copy(ctx, out, in)
		s.stats.updateBytesCopied(n)
		if err != nil {
			return fmt.Errorf("unable to copy %s: %w", s.filePath, err)
		}
		return nil
	}
	return s.readLines(ctx, in, out)
}

func (s *StreamReader) open() (io.ReadCloser, error) {
	if s.filePath == StdinPath {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", s.filePath, err)
	}
	return maybeDecompress(f, s.filePath)
}

func (s *StreamReader) readLines(ctx context.Context, in io.Reader, out io.Writer) error {
	pipeline := s.makePipeline(out)
	reader := bufio.NewReaderSize(in, constants.ReadBufferSize)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		chunk, err := reader.ReadSlice('\n')
		if len(chunk) > 0 {
			if werr := pipeline.writeLine(chunk); werr != nil {
				return werr
			}
		}
		switch err {
		case nil, bufio.ErrBufferFull:
		case io.EOF:
			return nil
		default:
			return fmt.Errorf("unable to read %s: %w", s.filePath, err)
		}
	}
}
