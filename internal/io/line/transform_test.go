package line

import (
	"bytes"
	"testing"

	"github.com/snonux/ecat/internal/config"
	"github.com/snonux/ecat/internal/testutil"
)

func newTestOptions() *config.Options {
	return &config.Options{
		SqueezeLimit:   1,
		EndMarker:      "$",
		TabReplacement: "^I",
	}
}

func transformAll(t *testing.T, opts *config.Options, counter *Counter, lines ...string) string {
	t.Helper()

	var buf bytes.Buffer
	transformer := NewTransformer(opts, counter)
	for _, input := range lines {
		testutil.AssertNoError(t, transformer.TransformLine([]byte(input), &buf))
	}
	return buf.String()
}

func TestTransformIdentity(t *testing.T) {
	opts := newTestOptions()
	output := transformAll(t, opts, &Counter{}, "hello world\n", "\ttabs stay\n", "\n")
	testutil.AssertEqual(t, "hello world\n\ttabs stay\n\n", output)
}

func TestTransformNumberAll(t *testing.T) {
	opts := newTestOptions()
	opts.NumberAll = true

	output := transformAll(t, opts, &Counter{}, "foo\n", "bar\n", "\n")
	testutil.AssertEqual(t, "     1\tfoo\n     2\tbar\n     3\t\n", output)
}

func TestTransformNumberNonblank(t *testing.T) {
	opts := newTestOptions()
	opts.NumberNonblank = true

	counter := &Counter{}
	output := transformAll(t, opts, counter, "a\n", "\n", "b\n")
	testutil.AssertEqual(t, "     1\ta\n\n     2\tb\n", output)
	// The blank line must not advance the counter either
	testutil.AssertEqual(t, int64(2), counter.Current())
}

func TestTransformNumberWide(t *testing.T) {
	opts := newTestOptions()
	opts.NumberAll = true

	// Numbers wider than the column widen it instead of truncating
	counter := &Counter{n: 999999}
	output := transformAll(t, opts, counter, "x\n")
	testutil.AssertEqual(t, "1000000\tx\n", output)
}

func TestTransformShowEnds(t *testing.T) {
	t.Run("default marker", func(t *testing.T) {
		opts := newTestOptions()
		opts.ShowEnds = true

		output := transformAll(t, opts, &Counter{}, "ab\n", "\n")
		testutil.AssertEqual(t, "ab$\n$\n", output)
	})

	t.Run("custom marker", func(t *testing.T) {
		opts := newTestOptions()
		opts.ShowEnds = true
		opts.EndMarker = "<EOL>"

		output := transformAll(t, opts, &Counter{}, "ab\n")
		testutil.AssertEqual(t, "ab<EOL>\n", output)
	})

	t.Run("line without trailing newline", func(t *testing.T) {
		opts := newTestOptions()
		opts.ShowEnds = true

		// No newline, no marker
		output := transformAll(t, opts, &Counter{}, "partial")
		testutil.AssertEqual(t, "partial", output)
	})
}

func TestTransformShowTabs(t *testing.T) {
	t.Run("default replacement", func(t *testing.T) {
		opts := newTestOptions()
		opts.ShowTabs = true

		output := transformAll(t, opts, &Counter{}, "a\tb\tc\n")
		testutil.AssertEqual(t, "a^Ib^Ic\n", output)
	})

	t.Run("custom replacement", func(t *testing.T) {
		opts := newTestOptions()
		opts.ShowTabs = true
		opts.TabReplacement = "    "

		output := transformAll(t, opts, &Counter{}, "a\tb\n")
		testutil.AssertEqual(t, "a    b\n", output)
	})
}

func TestTransformShowNonprinting(t *testing.T) {
	opts := newTestOptions()
	opts.ShowNonprinting = true

	t.Run("control characters", func(t *testing.T) {
		output := transformAll(t, opts, &Counter{}, "\x01a\x1fb\n")
		testutil.AssertEqual(t, "^Aa^_b\n", output)
	})

	t.Run("delete byte", func(t *testing.T) {
		output := transformAll(t, opts, &Counter{}, "a\x7fb\n")
		testutil.AssertEqual(t, "a^?b\n", output)
	})

	t.Run("tab is a control character too", func(t *testing.T) {
		// Without the tab flag the tab byte falls through to caret
		// notation, 0x09 renders as ^I either way
		output := transformAll(t, opts, &Counter{}, "a\tb\n")
		testutil.AssertEqual(t, "a^Ib\n", output)
	})

	t.Run("newline stays untouched", func(t *testing.T) {
		output := transformAll(t, opts, &Counter{}, "ab\n")
		testutil.AssertEqual(t, "ab\n", output)
	})

	t.Run("printable bytes pass through", func(t *testing.T) {
		output := transformAll(t, opts, &Counter{}, " !~0aZ\n")
		testutil.AssertEqual(t, " !~0aZ\n", output)
	})
}

func TestTransformShowAll(t *testing.T) {
	// The -A combination: tabs, end markers and caret notation together
	opts := newTestOptions()
	opts.ShowEnds = true
	opts.ShowTabs = true
	opts.ShowNonprinting = true

	output := transformAll(t, opts, &Counter{}, "a\tb\x01\n")
	testutil.AssertEqual(t, "a^Ib^A$\n", output)
}

func TestTransformCounterContinuesAcrossFiles(t *testing.T) {
	opts := newTestOptions()
	opts.NumberAll = true
	counter := &Counter{}

	var buf bytes.Buffer
	// One transformer per run, reused for every file
	transformer := NewTransformer(opts, counter)
	for _, input := range []string{"one\n", "two\n"} {
		testutil.AssertNoError(t, transformer.TransformLine([]byte(input), &buf))
	}
	for _, input := range []string{"three\n", "four\n"} {
		testutil.AssertNoError(t, transformer.TransformLine([]byte(input), &buf))
	}

	testutil.AssertEqual(t, "     1\tone\n     2\ttwo\n     3\tthree\n     4\tfour\n", buf.String())
	testutil.AssertEqual(t, int64(4), counter.Current())
}

func TestCounter(t *testing.T) {
	counter := &Counter{}
	testutil.AssertEqual(t, int64(0), counter.Current())
	testutil.AssertEqual(t, int64(1), counter.Next())
	testutil.AssertEqual(t, int64(2), counter.Next())
	testutil.AssertEqual(t, int64(2), counter.Current())
}

func TestIsBlank(t *testing.T) {
	testutil.AssertEqual(t, true, IsBlank([]byte("\n")))
	testutil.AssertEqual(t, false, IsBlank([]byte("")))
	testutil.AssertEqual(t, false, IsBlank([]byte("a\n")))
	testutil.AssertEqual(t, false, IsBlank([]byte(" \n")))
	testutil.AssertEqual(t, false, IsBlank([]byte("\t\n")))
	testutil.AssertEqual(t, false, IsBlank([]byte("\n\n")))
}
