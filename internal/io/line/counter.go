package line

// Counter numbers emitted lines. A single Counter is shared across every
// file of a run, numbering never restarts at a file boundary.
type Counter struct {
	n int64
}

// Next advances the counter and returns the new line number.
func (c *Counter) Next() int64 {
	c.n++
	return c.n
}

// Current returns the number most recently handed out, zero if none.
func (c *Counter) Current() int64 {
	return c.n
}
