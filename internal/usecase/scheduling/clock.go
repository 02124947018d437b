package scheduling

import "time"

// clock is embedded by the use cases that read the current time.
type clock struct {
	now func() time.Time
}

func newClock() clock {
	return clock{now: time.Now}
}

// SetClock replaces the time source; tests pin it.
func (c *clock) SetClock(now func() time.Time) {
	c.now = now
}
