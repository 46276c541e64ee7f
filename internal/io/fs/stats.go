package fs

import (
	"fmt"

	"github.com/snonux/ecat/internal/constants"
)

// Stats tracks processing counters for one run. Single owner, no locks:
// files are processed one at a time.
type Stats struct {
	linesRead      uint64
	linesEmitted   uint64
	linesSqueezed  uint64
	bytesCopied    uint64
	filesProcessed int
	fileErrors     int
}

func (s *Stats) updateLineRead() {
	s.linesRead++
}

func (s *Stats) updateLineEmitted() {
	s.linesEmitted++
}

func (s *Stats) updateLineSqueezed() {
	s.linesSqueezed++
}

func (s *Stats) updateBytesCopied(n int64) {
	s.bytesCopied += uint64(n)
}

// UpdateFileProcessed records a file that ran to completion.
func (s *Stats) UpdateFileProcessed() {
	s.filesProcessed++
}

// UpdateFileError records a file abandoned due to an error.
func (s *Stats) UpdateFileError() {
	s.fileErrors++
}

// EmittedPerc returns the percentage of read lines that were emitted.
// With nothing read yet it reports 100.
func (s *Stats) EmittedPerc() int {
	if s.linesRead == 0 {
		return constants.PercentageMultiplier
	}
	return int(s.linesEmitted * constants.PercentageMultiplier / s.linesRead)
}

// Summary returns a one line digest for end of run logging.
func (s *Stats) Summary() string {
	return fmt.Sprintf("files=%d errors=%d lines=%d emitted=%d squeezed=%d bytes=%d emittedPerc=%d",
		s.filesProcessed, s.fileErrors, s.linesRead, s.linesEmitted,
		s.linesSqueezed, s.bytesCopied, s.EmittedPerc())
}
