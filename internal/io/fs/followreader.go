package fs

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/snonux/ecat/internal/constants"
	"github.com/snonux/ecat/internal/io/dlog"
)

// flusher lets the follow reader push drained lines out promptly when the
// destination buffers, as the stdout writer does.
type flusher interface {
	Flush() error
}

// FollowReader emits data appended to a named file, polling for growth
// until the context is cancelled. It never terminates on its own for a
// healthy, still existing file.
type FollowReader struct {
	baseReader
	file     *os.File
	reader   *bufio.Reader
	position int64
}

// Start seeks to the current end of the file and enters the poll loop.
// Data appended afterwards runs through the same pipeline as the other
// strategies. Stat failures are transient: logged, then retried after the
// poll interval. Truncation or rotation reopens the file from the start.
func (f *FollowReader) Start(ctx context.Context, out io.Writer) error {
	if err := f.openAtEnd(); err != nil {
		return err
	}
	defer func() { f.file.Close() }()

	f.reader = bufio.NewReaderSize(f.file, constants.ReadBufferSize)
	pipeline := f.makePipeline(out)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		info, err := os.Stat(f.filePath)
		if err != nil {
			dlog.Common.Warn("Unable to stat followed file, retrying", f.filePath, err)
		} else if f.rotated(info) {
			if err := f.reopen(); err != nil {
				return err
			}
			continue
		} else if info.Size() > f.position {
			if err := f.drain(ctx, pipeline, out); err != nil {
				return err
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(f.opts.PollInterval):
		}
	}
}

func (f *FollowReader) openAtEnd() error {
	file, err := os.Open(f.filePath)
	if err != nil {
		return fmt.Errorf("unable to open %s: %w", f.filePath, err)
	}
	position, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		file.Close()
		return fmt.Errorf("unable to seek to end of %s: %w", f.filePath, err)
	}
	f.file = file
	f.position = position
	return nil
}

// rotated reports whether the file shrank below the cursor or the path no
// longer names the open file. Either way the data at the cursor is gone
// and reading continues from the start of whatever the path names now.
func (f *FollowReader) rotated(pathInfo os.FileInfo) bool {
	if pathInfo.Size() < f.position {
		return true
	}
	currentInfo, err := f.file.Stat()
	if err != nil {
		return false
	}
	return !os.SameFile(currentInfo, pathInfo)
}

func (f *FollowReader) reopen() error {
	dlog.Common.Info("Followed file truncated or rotated, reopening", f.filePath)
	f.file.Close()
	file, err := os.Open(f.filePath)
	if err != nil {
		return fmt.Errorf("unable to reopen %s: %w", f.filePath, err)
	}
	f.file = file
	f.position = 0
	return nil
}

// drain reads from the cursor to the current end of file. Partial trailing
// lines are emitted right away and the cursor advances past them, later
// continuation bytes form a chunk of their own.
func (f *FollowReader) drain(ctx context.Context, pipeline *linePipeline, out io.Writer) error {
	if _, err := f.file.Seek(f.position, io.SeekStart); err != nil {
		return fmt.Errorf("unable to seek in %s: %w", f.filePath, err)
	}
	f.reader.Reset(f.file)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		chunk, err := f.reader.ReadSlice('\n')
		if len(chunk) > 0 {
			f.position += int64(len(chunk))
			if werr := pipeline.writeLine(chunk); werr != nil {
				return werr
			}
		}
		switch err {
		case nil, bufio.ErrBufferFull:
		case io.EOF:
			return f.flush(out)
		default:
			return fmt.Errorf("unable to read %s: %w", f.filePath, err)
		}
	}
}

// flush pushes buffered output after a drain so followers see new lines
// without waiting for the buffer to fill.
func (f *FollowReader) flush(out io.Writer) error {
	fl, ok := out.(flusher)
	if !ok {
		return nil
	}
	if err := fl.Flush(); err != nil {
		return fmt.Errorf("unable to flush output: %w", err)
	}
	return nil
}
