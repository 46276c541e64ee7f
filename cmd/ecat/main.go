// Package main provides the ECat command-line tool.
// ECat is an enhanced version of the Unix cat command: it concatenates
// files (or standard input) to standard output, optionally applying line
// numbering, blank-line squeezing, end-of-line markers and
// control-character visualization, and can follow a growing file the way
// a live-tail utility does.
//
// Key features:
// - Three I/O strategies: buffered streaming, memory mapping and poll-based follow
// - Identical output regardless of the chosen I/O strategy
// - Transparent reading of zstd and gzip compressed files
// - Layered configuration: flags, ECAT_ environment variables, optional JSON config file
// - CPU and memory profiling support
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/snonux/ecat/internal/config"
	"github.com/snonux/ecat/internal/constants"
	"github.com/snonux/ecat/internal/io/dlog"
	"github.com/snonux/ecat/internal/io/fs"
	"github.com/snonux/ecat/internal/io/line"
	"github.com/snonux/ecat/internal/io/signal"
	"github.com/snonux/ecat/internal/profiling"
	"github.com/snonux/ecat/internal/version"
)

// main parses the command line, assembles the layered configuration and
// processes all file arguments in order. It handles graceful shutdown on
// interrupt and optional profiling of the run.
func main() {
	args, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if args.ShowHelp {
		usage()
		os.Exit(0)
	}
	if args.ShowVersion {
		version.PrintAndExit()
	}

	opts, err := config.Setup(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	dlog.Start(opts.LogLevel)

	paths := args.Paths
	if len(paths) == 0 {
		// Don't block reading from an interactive terminal when no
		// file arguments were given.
		if term.IsTerminal(int(os.Stdin.Fd())) {
			usage()
			os.Exit(0)
		}
		paths = []string{fs.StdinPath}
	}

	ctx, cancel := context.WithCancel(context.Background())
	signal.InterruptWithCancel(ctx, cancel)

	profiler := profiling.NewProfiler(profiling.FromEnv("ecat"))

	status := run(ctx, opts, paths)
	cancel()
	profiler.Stop()
	os.Exit(status)
}

// run processes all paths in argument order, writing the transformed
// output to stdout. Failing files are logged and skipped, the remaining
// files are still processed and the overall run reports success.
func run(ctx context.Context, opts *config.Options, paths []string) int {
	var stats fs.Stats
	var counter line.Counter
	transformer := line.NewTransformer(opts, &counter)

	out := bufio.NewWriterSize(os.Stdout, constants.OutputBufferSize)
	defer func() {
		if err := out.Flush(); err != nil {
			dlog.Common.Error("Unable to flush output", err)
		}
	}()

	for _, path := range paths {
		if ctx.Err() != nil {
			break
		}
		reader, err := fs.NewFileReader(path, opts, transformer, &stats)
		if err != nil {
			dlog.Common.Error("Unable to process file", path, err)
			stats.UpdateFileError()
			continue
		}
		if err := reader.Start(ctx, out); err != nil && !errors.Is(err, context.Canceled) {
			dlog.Common.Error("Unable to process file", path, err)
			stats.UpdateFileError()
			continue
		}
		stats.UpdateFileProcessed()
	}

	dlog.Common.Info("Run completed", stats.Summary())
	return 0
}

// usage prints the command-line usage information to stderr.
func usage() {
	fmt.Fprint(os.Stderr,
		"Usage: ecat [OPTION]... [FILE]...\n"+
			"Concatenate FILE(s) to standard output with enhanced formatting and follow mode.\n\n"+
			"Options:\n"+
			"  -n       number all output lines\n"+
			"  -b       number nonblank lines\n"+
			"  -s       suppress repeated blank lines\n"+
			"  -e       display end-of-line marker (default \"$\")\n"+
			"  -T       display TAB as \"^I\"\n"+
			"  -v       display nonprinting characters (except newline)\n"+
			"  -A       equivalent to -v -T -e\n"+
			"  -f       follow file (continuously output appended data)\n"+
			"  -h       display this help and exit\n"+
			"  -V       output version information and exit\n\n"+
			"With no FILE, or when FILE is \"-\", standard input is read.\n")
}
