package line

// Squeezer drops excess blank lines. It tracks the run of consecutive blank
// lines within one file, a new Squeezer is created per file.
type Squeezer struct {
	limit int
	run   int
}

// NewSqueezer returns a Squeezer letting at most limit+1 consecutive blank
// lines through.
func NewSqueezer(limit int) *Squeezer {
	return &Squeezer{limit: limit}
}

// Drop reports whether the line is a blank line past the permitted run and
// must be discarded. Any nonblank line resets the run.
func (s *Squeezer) Drop(line []byte) bool {
	if !IsBlank(line) {
		s.run = 0
		return false
	}
	drop := s.run > s.limit
	s.run++
	return drop
}
