package fs

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/snonux/ecat/internal/io/line"
	"github.com/snonux/ecat/internal/testutil"
)

func TestMappedReaderEmptyFile(t *testing.T) {
	path := testutil.TempFile(t, "")

	var buf bytes.Buffer
	var stats Stats
	var counter line.Counter
	opts := testOptions()
	reader := &MappedReader{baseReader{
		filePath:    path,
		opts:        opts,
		transformer: line.NewTransformer(opts, &counter),
		stats:       &stats,
	}}

	testutil.AssertNoError(t, reader.Start(context.Background(), &buf))
	testutil.AssertEqual(t, "", buf.String())
}

func TestMappedReaderPassthrough(t *testing.T) {
	content := "mapped\x00\x02bytes\nno trailing newline"
	path := testutil.TempFile(t, content)

	var buf bytes.Buffer
	var stats Stats
	var counter line.Counter
	opts := testOptions()
	reader := &MappedReader{baseReader{
		filePath:    path,
		opts:        opts,
		transformer: line.NewTransformer(opts, &counter),
		stats:       &stats,
	}}

	testutil.AssertNoError(t, reader.Start(context.Background(), &buf))
	testutil.AssertEqual(t, content, buf.String())
	testutil.AssertEqual(t, uint64(len(content)), stats.bytesCopied)
}

func TestMappedReaderText(t *testing.T) {
	path := testutil.TempFile(t, "foo\nbar\n\nbaz\n")

	t.Run("numbering", func(t *testing.T) {
		opts := testOptions()
		opts.NumberAll = true
		output := mappedOutput(t, path, opts)
		testutil.AssertEqual(t, "     1\tfoo\n     2\tbar\n     3\t\n     4\tbaz\n", output)
	})

	t.Run("squeeze and ends", func(t *testing.T) {
		squeezed := testutil.TempFile(t, "a\n\n\n\nb\n")
		opts := testOptions()
		opts.SqueezeBlank = true
		opts.ShowEnds = true
		output := mappedOutput(t, squeezed, opts)
		testutil.AssertEqual(t, "a$\n$\n$\nb$\n", output)
	})
}

func TestMappedReaderLongLines(t *testing.T) {
	// Chunking must match the stream reader exactly
	longLine := strings.Repeat("x", 20000) + "\n"
	path := testutil.TempFile(t, longLine)

	opts := testOptions()
	opts.NumberAll = true

	expected := "     1\t" + strings.Repeat("x", 8192) +
		"     2\t" + strings.Repeat("x", 8192) +
		"     3\t" + strings.Repeat("x", 3616) + "\n"
	output := mappedOutput(t, path, opts)
	testutil.AssertEqual(t, expected, output)
}

func TestMappedReaderMissingFile(t *testing.T) {
	var buf bytes.Buffer
	var stats Stats
	var counter line.Counter
	opts := testOptions()
	reader := &MappedReader{baseReader{
		filePath:    "/nonexistent/ecat-input",
		opts:        opts,
		transformer: line.NewTransformer(opts, &counter),
		stats:       &stats,
	}}

	err := reader.Start(context.Background(), &buf)
	testutil.AssertError(t, err, "unable to")
}
