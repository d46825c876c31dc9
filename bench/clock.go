package bench

import "time"

type (
	// Clock abstracts the time source so calibration can be tested without
	// sleeping. Production code uses RealClock.
	Clock interface {
		// Now returns the current time.
		Now() time.Time

		// Since returns the time elapsed since t.
		Since(t time.Time) time.Duration
	}

	// RealClock reads the monotonic system clock.
	RealClock struct{}

	// FakeClock is a manually advanced Clock. Time moves only when Advance
	// is called, typically from inside the measured function. It is not
	// safe for concurrent use; neither is anything else in this package.
	FakeClock struct {
		current time.Time
		reads   int
	}
)

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t.
func (RealClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// NewFakeClock creates a FakeClock starting at a fixed reference time.
func NewFakeClock() *FakeClock {
	return &FakeClock{current: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.reads++
	return c.current
}

// Since returns the fake time elapsed since t.
func (c *FakeClock) Since(t time.Time) time.Duration {
	c.reads++
	return c.current.Sub(t)
}

// Advance moves the fake time forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

// Reads reports how many times Now or Since has been called.
func (c *FakeClock) Reads() int {
	return c.reads
}
