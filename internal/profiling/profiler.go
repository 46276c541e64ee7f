// Package profiling writes CPU and memory profiles for a run when enabled
// through ECAT_ environment variables. Profiling failures never abort the
// run, they are logged and profiling is skipped.
package profiling

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/snonux/ecat/internal/io/dlog"
)

// Profiler manages CPU and memory profiling for one ecat run
type Profiler struct {
	cpuProfile  *os.File
	memProfile  string
	profileDir  string
	commandName string
	enabled     bool
}

// Config holds profiling configuration
type Config struct {
	// Enable CPU profiling
	CPUProfile bool
	// Enable memory profiling
	MemProfile bool
	// Directory to store profiles
	ProfileDir string
	// Command name for profile naming
	CommandName string
}

// Enabled returns true if any profiling is switched on
func (c Config) Enabled() bool {
	return c.CPUProfile || c.MemProfile
}

// NewProfiler creates a new profiler instance
func NewProfiler(cfg Config) *Profiler {
	if !cfg.Enabled() {
		return &Profiler{enabled: false}
	}

	p := &Profiler{
		profileDir:  cfg.ProfileDir,
		commandName: cfg.CommandName,
		enabled:     true,
	}

	if p.profileDir == "" {
		p.profileDir = "profiles"
	}
	if err := os.MkdirAll(p.profileDir, 0755); err != nil {
		dlog.Common.Warn("Unable to create profile directory", p.profileDir, err)
		p.enabled = false
		return p
	}

	if cfg.CPUProfile {
		p.startCPUProfile()
	}
	if cfg.MemProfile {
		timestamp := time.Now().Format("20060102_150405")
		p.memProfile = filepath.Join(p.profileDir,
			fmt.Sprintf("%s_mem_%s.prof", p.commandName, timestamp))
	}

	return p
}

// startCPUProfile starts CPU profiling
func (p *Profiler) startCPUProfile() {
	timestamp := time.Now().Format("20060102_150405")
	cpuProfilePath := filepath.Join(p.profileDir,
		fmt.Sprintf("%s_cpu_%s.prof", p.commandName, timestamp))

	f, err := os.Create(cpuProfilePath)
	if err != nil {
		dlog.Common.Warn("Unable to create CPU profile file", cpuProfilePath, err)
		return
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		dlog.Common.Warn("Unable to start CPU profile", err)
		f.Close()
		return
	}

	p.cpuProfile = f
	dlog.Common.Info("Started CPU profiling", cpuProfilePath)
}

// Stop stops all profiling and writes profiles to disk
func (p *Profiler) Stop() {
	if !p.enabled {
		return
	}

	if p.cpuProfile != nil {
		pprof.StopCPUProfile()
		p.cpuProfile.Close()
		dlog.Common.Info("Stopped CPU profiling")
	}
	if p.memProfile != "" {
		p.writeMemProfile()
	}
}

// writeMemProfile writes the heap profile to disk
func (p *Profiler) writeMemProfile() {
	f, err := os.Create(p.memProfile)
	if err != nil {
		dlog.Common.Warn("Unable to create memory profile file", p.memProfile, err)
		return
	}
	defer f.Close()

	// Force GC before capturing for more accurate results
	runtime.GC()

	if err := pprof.WriteHeapProfile(f); err != nil {
		dlog.Common.Warn("Unable to write memory profile", err)
		return
	}
	dlog.Common.Info("Wrote memory profile", p.memProfile)
}
