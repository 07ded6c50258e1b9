package term

import "time"

// Clock samples a wall clock once per frame
type Clock struct {
	source func() time.Time
	start  time.Time
	last   time.Time
	now    time.Duration
	delta  time.Duration
}

func NewClock(source func() time.Time) *Clock {
	t := source()
	return &Clock{
		source: source,
		start:  t,
		last:   t,
	}
}

// Tick samples the source; Now and Delta are stable until the next Tick
func (c *Clock) Tick() {
	t := c.source()
	c.delta = t.Sub(c.last)
	if c.delta < 0 {
		c.delta = 0
	}
	c.last = t
	c.now = t.Sub(c.start)
}

func (c *Clock) Now() time.Duration {
	return c.now
}

func (c *Clock) Delta() time.Duration {
	return c.delta
}
