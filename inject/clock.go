package inject

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Clock is an injected clock. The stepper driver only reads Now and Sleep;
// anything else falls through to the embedded clock.
type Clock struct {
	clock.Clock
	NowFunc   func() time.Time
	SleepFunc func(d time.Duration)
}

// Now calls the injected Now or the real version.
func (c *Clock) Now() time.Time {
	if c.NowFunc == nil {
		return c.Clock.Now()
	}
	return c.NowFunc()
}

// Sleep calls the injected Sleep or the real version.
func (c *Clock) Sleep(d time.Duration) {
	if c.SleepFunc == nil {
		c.Clock.Sleep(d)
		return
	}
	c.SleepFunc(d)
}
