package state

import "sync/atomic"

// FrameClock counts completed frames.
type FrameClock struct {
	n uint64
}

// Tick advances the clock and returns the new frame number.
func (c *FrameClock) Tick() uint64 {
	return atomic.AddUint64(&c.n, 1)
}

func (c *FrameClock) Now() uint64 {
	return atomic.LoadUint64(&c.n)
}
