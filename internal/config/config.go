// Package config assembles the run configuration for ecat.
// It handles hierarchical configuration from multiple sources with proper
// precedence.
//
// Configuration precedence (highest to lowest):
// 1. Command-line arguments
// 2. Environment variables with ECAT_ prefix
// 3. JSON configuration file named by ECAT_CONFIG
// 4. Default values
//
// Unlike a process wide config singleton, Setup returns an immutable
// Options value that is passed by pointer through the call chain.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/snonux/ecat/internal/constants"
	"github.com/snonux/ecat/internal/io/dlog"
)

// Options is the configuration snapshot for one run. It is constructed
// once by Setup and read-only afterwards, shared across all readers and
// the transformer.
type Options struct {
	// NumberAll numbers every emitted line (-n).
	NumberAll bool
	// NumberNonblank numbers nonblank emitted lines (-b).
	NumberNonblank bool
	// SqueezeBlank drops excess consecutive blank lines (-s).
	SqueezeBlank bool
	// SqueezeLimit is the run of blank lines beyond which further blanks
	// are dropped. Must be at least 1.
	SqueezeLimit int
	// ShowEnds appends EndMarker before each newline (-e).
	ShowEnds bool
	// EndMarker is the end-of-line marker string.
	EndMarker string
	// ShowTabs replaces tab bytes with TabReplacement (-T).
	ShowTabs bool
	// TabReplacement is the string standing in for tab bytes.
	TabReplacement string
	// ShowNonprinting renders control bytes in caret notation (-v).
	ShowNonprinting bool
	// Follow keeps reading appended data from named files (-f).
	Follow bool
	// PollInterval is the wait between follow mode stat checks.
	PollInterval time.Duration
	// MmapThreshold is the smallest file size read via a mapped view.
	MmapThreshold int64
	// NoMmap forces the stream strategy for all files.
	NoMmap bool
	// LogLevel is the verbosity of the diagnostic logger.
	LogLevel dlog.Level
}

// TextProcessing reports whether any option requires line oriented
// handling. Without it, file bytes are passed through untouched.
func (o *Options) TextProcessing() bool {
	return o.NumberAll || o.NumberNonblank || o.SqueezeBlank ||
		o.ShowEnds || o.ShowTabs || o.ShowNonprinting
}

// Setup builds the run Options from all configuration sources.
func Setup(args *Args) (*Options, error) {
	opts := defaultOptions()

	if path := os.Getenv("ECAT_CONFIG"); path != "" {
		if err := opts.applyFile(path); err != nil {
			return nil, err
		}
	}
	if err := opts.applyEnv(); err != nil {
		return nil, err
	}
	opts.applyArgs(args)

	if err := opts.validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func defaultOptions() *Options {
	return &Options{
		SqueezeLimit:   constants.DefaultSqueezeLimit,
		EndMarker:      "$",
		TabReplacement: "^I",
		PollInterval:   constants.DefaultFollowPollInterval,
		MmapThreshold:  constants.DefaultMmapThreshold,
		LogLevel:       dlog.LevelWarn,
	}
}

func (o *Options) applyEnv() error {
	if name := os.Getenv("ECAT_LOG_LEVEL"); name != "" {
		level, err := dlog.ParseLevel(name)
		if err != nil {
			return fmt.Errorf("invalid ECAT_LOG_LEVEL: %w", err)
		}
		o.LogLevel = level
	}
	if Env("ECAT_NO_MMAP") {
		o.NoMmap = true
	}
	return nil
}

func (o *Options) applyArgs(args *Args) {
	if args.NumberAll {
		o.NumberAll = true
	}
	if args.NumberNonblank {
		o.NumberNonblank = true
	}
	if args.SqueezeBlank {
		o.SqueezeBlank = true
	}
	if args.ShowEnds {
		o.ShowEnds = true
	}
	if args.ShowTabs {
		o.ShowTabs = true
	}
	if args.ShowNonprinting {
		o.ShowNonprinting = true
	}
	if args.Follow {
		o.Follow = true
	}
}

func (o *Options) validate() error {
	if o.SqueezeLimit < 1 {
		return fmt.Errorf("squeeze limit must be at least 1, got %d", o.SqueezeLimit)
	}
	if o.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %v", o.PollInterval)
	}
	if o.MmapThreshold < 0 {
		return fmt.Errorf("mmap threshold must not be negative, got %d", o.MmapThreshold)
	}
	return nil
}
