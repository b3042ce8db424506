package game

import (
	"fmt"
	"time"
)

const countdownDoneText = "The day is finally here!"

// countdown renders the time left until a fixed target as whole days and
// hours, floor semantics, no minutes or seconds.
type countdown struct {
	target     time.Time
	lastSecond int64
	rendered   string
}

func newCountdown(target time.Time) *countdown {
	return &countdown{target: target, lastSecond: -1 << 62}
}

// render recomputes at most once per wall-clock second; at or past the
// target it settles on the fixed completion string forever.
func (c *countdown) render(now time.Time) string {
	sec := now.Unix()
	if sec == c.lastSecond {
		return c.rendered
	}
	c.lastSecond = sec

	remaining := c.target.Sub(now)
	if remaining <= 0 {
		c.rendered = countdownDoneText
		return c.rendered
	}
	days := int(remaining / (24 * time.Hour))
	hours := int((remaining % (24 * time.Hour)) / time.Hour)
	c.rendered = fmt.Sprintf("%d days, %d hours to go", days, hours)
	return c.rendered
}
