// Package fs implements the three file reading strategies and the
// selection between them. Every input path is dispatched to exactly one
// reader: sequential streaming, a memory mapped view, or a poll driven
// follow loop. All three feed the same line pipeline so that the choice
// of strategy is never observable in the output.
package fs

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/snonux/ecat/internal/config"
	"github.com/snonux/ecat/internal/io/line"
)

// StdinPath is the sentinel path naming standard input.
const StdinPath = "-"

// FileReader reads one input and writes its processed content to out.
// Start blocks until the input is exhausted, a non-transient error occurs
// or the context is cancelled.
type FileReader interface {
	Start(ctx context.Context, out io.Writer) error
	FilePath() string
}

// NewFileReader picks the reading strategy for path:
//
//  1. Follow mode on a named file uses the follow reader. Standard input
//     cannot be followed and compressed files are refused, offsets into
//     the compressed stream are meaningless.
//  2. Named, uncompressed files at or above the mmap threshold use the
//     mapped reader, unless mapping is disabled.
//  3. Everything else, including standard input and compressed files,
//     streams.
func NewFileReader(path string, opts *config.Options, transformer *line.Transformer,
	stats *Stats) (FileReader, error) {

	base := baseReader{filePath: path, opts: opts, transformer: transformer, stats: stats}

	if opts.Follow && path != StdinPath {
		if isCompressed(path) {
			return nil, fmt.Errorf("unable to follow compressed file %s", path)
		}
		return &FollowReader{baseReader: base}, nil
	}
	if path == StdinPath || isCompressed(path) || opts.NoMmap {
		return &StreamReader{baseReader: base}, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("unable to stat %s: %w", path, err)
	}
	if info.Size() >= opts.MmapThreshold {
		return &MappedReader{baseReader: base}, nil
	}
	return &StreamReader{baseReader: base}, nil
}

// baseReader carries what every strategy needs. The transformer is shared
// across files, the squeeze state is created fresh per file.
type baseReader struct {
	filePath    string
	opts        *config.Options
	transformer *line.Transformer
	stats       *Stats
}

// FilePath returns the input path this reader processes.
func (b *baseReader) FilePath() string {
	return b.filePath
}

func (b *baseReader) makePipeline(out io.Writer) *linePipeline {
	return &linePipeline{
		transformer: b.transformer,
		squeezer:    line.NewSqueezer(b.opts.SqueezeLimit),
		squeeze:     b.opts.SqueezeBlank,
		stats:       b.stats,
		out:         out,
	}
}

// linePipeline runs chunks through squeeze filtering and the transformer.
// It is the one code path shared by all reading strategies.
type linePipeline struct {
	transformer *line.Transformer
	squeezer    *line.Squeezer
	squeeze     bool
	stats       *Stats
	out         io.Writer
}

// writeLine processes a single chunk. Squeezed blanks are dropped before
// the transformer runs, so they are neither numbered nor written.
func (p *linePipeline) writeLine(chunk []byte) error {
	p.stats.updateLineRead()
	if p.squeeze && p.squeezer.Drop(chunk) {
		p.stats.updateLineSqueezed()
		return nil
	}
	if err := p.transformer.TransformLine(chunk, p.out); err != nil {
		return err
	}
	p.stats.updateLineEmitted()
	return nil
}
