package fs

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/DataDog/zstd"
	"github.com/klauspost/compress/gzip"
)

// isCompressed reports whether the path names a compressed file. Detection
// is by suffix, matching how log archives are named in practice.
func isCompressed(path string) bool {
	return strings.HasSuffix(path, ".zst") || strings.HasSuffix(path, ".gz")
}

// maybeDecompress wraps f in the matching decompression reader. For plain
// files f is returned as is. The returned closer owns the decompressor
// and the underlying file.
func maybeDecompress(f *os.File, path string) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(path, ".zst"):
		return &decompressingCloser{Reader: zstd.NewReader(f), file: f}, nil
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("unable to open gzip file %s: %w", path, err)
		}
		return &decompressingCloser{Reader: gz, file: f}, nil
	default:
		return f, nil
	}
}

type decompressingCloser struct {
	io.Reader
	file *os.File
}

func (d *decompressingCloser) Close() error {
	if closer, ok := d.Reader.(io.Closer); ok {
		closer.Close()
	}
	return d.file.Close()
}
