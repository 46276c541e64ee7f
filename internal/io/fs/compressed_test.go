package fs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DataDog/zstd"
	"github.com/klauspost/compress/gzip"

	"github.com/snonux/ecat/internal/io/line"
	"github.com/snonux/ecat/internal/testutil"
)

func writeGzipFile(t *testing.T, path, content string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	w := gzip.NewWriter(f)
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write gzip data: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close gzip writer: %v", err)
	}
}

func writeZstdFile(t *testing.T, path, content string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	w := zstd.NewWriterLevel(f, zstd.DefaultCompression)
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write zstd data: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close zstd writer: %v", err)
	}
}

func TestIsCompressed(t *testing.T) {
	testutil.AssertEqual(t, true, isCompressed("app.log.gz"))
	testutil.AssertEqual(t, true, isCompressed("app.log.zst"))
	testutil.AssertEqual(t, false, isCompressed("app.log"))
	testutil.AssertEqual(t, false, isCompressed("app.gz.log"))
	testutil.AssertEqual(t, false, isCompressed("-"))
}

func TestStreamReaderGzip(t *testing.T) {
	content := "first\nsecond\n\nthird\n"
	path := filepath.Join(testutil.TempDir(t), "data.log.gz")
	writeGzipFile(t, path, content)

	t.Run("identity", func(t *testing.T) {
		output := streamOutput(t, path, testOptions())
		testutil.AssertEqual(t, content, output)
	})

	t.Run("numbered", func(t *testing.T) {
		opts := testOptions()
		opts.NumberAll = true
		output := streamOutput(t, path, opts)
		testutil.AssertEqual(t, "     1\tfirst\n     2\tsecond\n     3\t\n     4\tthird\n", output)
	})
}

func TestStreamReaderZstd(t *testing.T) {
	content := testutil.GenerateTestData(1000, 50)
	path := filepath.Join(testutil.TempDir(t), "data.log.zst")
	writeZstdFile(t, path, content)

	output := streamOutput(t, path, testOptions())
	testutil.AssertEqual(t, content, output)
}

func TestNewFileReaderReadsCompressed(t *testing.T) {
	// End to end: the selector must route compressed files to the
	// stream strategy no matter how large they are uncompressed
	content := testutil.GenerateTestData(5000, 80)
	path := filepath.Join(testutil.TempDir(t), "big.log.zst")
	writeZstdFile(t, path, content)

	opts := testOptions()
	opts.MmapThreshold = 1

	var buf bytes.Buffer
	var stats Stats
	var counter line.Counter
	reader, err := NewFileReader(path, opts, line.NewTransformer(opts, &counter), &stats)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, reader.Start(context.Background(), &buf))
	testutil.AssertEqual(t, content, buf.String())
}

func TestStreamReaderCorruptGzip(t *testing.T) {
	path := filepath.Join(testutil.TempDir(t), "broken.gz")
	testutil.AssertNoError(t, os.WriteFile(path, []byte("this is not gzip"), 0644))

	var buf bytes.Buffer
	var stats Stats
	var counter line.Counter
	opts := testOptions()
	reader := &StreamReader{baseReader{
		filePath:    path,
		opts:        opts,
		transformer: line.NewTransformer(opts, &counter),
		stats:       &stats,
	}}

	err := reader.Start(context.Background(), &buf)
	testutil.AssertError(t, err, "unable to open gzip file")
}
