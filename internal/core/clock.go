package core

// Clock is the monotonic time source the simulation reads timers from, in seconds.
// The owner of the simulation loop advances it once per step.
type Clock interface {
	Now() float64
	Tick()
}

var _ Clock = (*TickClock)(nil)

// TickClock advances by a fixed step each simulation tick, so a session
// replays identically for the same seed and input sequence.
type TickClock struct {
	now  float64
	step float64
}

// NewTickClock creates a clock that advances 1/tickRate seconds per Tick.
func NewTickClock(tickRate int) *TickClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &TickClock{step: 1.0 / float64(tickRate)}
}

// Tick advances the clock by one step.
func (c *TickClock) Tick() {
	c.now += c.step
}

// Now returns the simulated time in seconds.
func (c *TickClock) Now() float64 {
	return c.now
}
