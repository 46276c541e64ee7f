// Package line implements the per-line transformation pipeline: line
// numbering, blank line squeezing, end-of-line markers and control
// character visualization.
package line

import (
	"io"
	"strconv"

	"github.com/snonux/ecat/internal/config"
	"github.com/snonux/ecat/internal/constants"
)

// IsBlank reports whether b is a blank line: exactly one newline byte and
// nothing else. A line holding only other whitespace is not blank.
func IsBlank(b []byte) bool {
	return len(b) == 1 && b[0] == '\n'
}

// Transformer rewrites lines according to the configured display options.
// One Transformer serves all files of a run so that numbering continues
// across file boundaries. It writes either the untouched line (fast path)
// or a per-byte rewritten copy (slow path) to the destination writer. The
// line buffer is borrowed from the caller and never retained.
type Transformer struct {
	counter         *Counter
	numberAll       bool
	numberNonblank  bool
	showEnds        bool
	showTabs        bool
	showNonprinting bool
	endMarker       []byte
	tabReplacement  []byte
	scan            bool
	scratch         []byte
	numScratch      []byte
}

// NewTransformer returns a Transformer for the given options, drawing line
// numbers from counter.
func NewTransformer(opts *config.Options, counter *Counter) *Transformer {
	return &Transformer{
		counter:         counter,
		numberAll:       opts.NumberAll,
		numberNonblank:  opts.NumberNonblank,
		showEnds:        opts.ShowEnds,
		showTabs:        opts.ShowTabs,
		showNonprinting: opts.ShowNonprinting,
		endMarker:       []byte(opts.EndMarker),
		tabReplacement:  []byte(opts.TabReplacement),
		scan:            opts.ShowEnds || opts.ShowTabs || opts.ShowNonprinting,
		scratch:         make([]byte, 0, constants.LineBufferInitialCapacity),
		numScratch:      make([]byte, 0, constants.LineNumberWidth+21),
	}
}

// TransformLine writes one line through the configured transformations.
func (t *Transformer) TransformLine(line []byte, out io.Writer) error {
	if t.numberAll || (t.numberNonblank && !IsBlank(line)) {
		if err := t.writeNumber(out); err != nil {
			return err
		}
	}

	// Fast path, nothing rewrites the line content itself
	if !t.scan {
		_, err := out.Write(line)
		return err
	}

	buf := t.scratch[:0]
	for _, b := range line {
		switch {
		case b == '\t' && t.showTabs:
			buf = append(buf, t.tabReplacement...)
		case b == '\n':
			if t.showEnds {
				buf = append(buf, t.endMarker...)
			}
			buf = append(buf, '\n')
		case t.showNonprinting && (b < 32 || b == 127):
			if b == 127 {
				buf = append(buf, '^', '?')
			} else {
				buf = append(buf, '^', b+64)
			}
		default:
			buf = append(buf, b)
		}
	}
	_, err := out.Write(buf)
	t.scratch = buf[:0]
	return err
}

// writeNumber emits the next line number, right-justified and followed by
// a tab. Numbers wider than the column widen it naturally.
func (t *Transformer) writeNumber(out io.Writer) error {
	var digits [20]byte
	number := strconv.AppendInt(digits[:0], t.counter.Next(), 10)

	buf := t.numScratch[:0]
	for pad := constants.LineNumberWidth - len(number); pad > 0; pad-- {
		buf = append(buf, ' ')
	}
	buf = append(buf, number...)
	buf = append(buf, '\t')

	_, err := out.Write(buf)
	t.numScratch = buf[:0]
	return err
}
