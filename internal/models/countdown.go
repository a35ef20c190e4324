package models

import (
	"time"
)

// ReversalSpan is the span the time-left hands count back from while in
// overtime, so they keep moving forward past the target.
const ReversalSpan = 1000 * 24 * time.Hour

// Countdown is a snapshot of the countdown at one instant.
type Countdown struct {
	Target   time.Time
	Now      time.Time
	Overtime bool // count up past the target instead of stopping at zero
}

// RealTimeLeft is the raw distance to the target, negative once it has passed.
func (c Countdown) RealTimeLeft() time.Duration {
	return c.Target.Sub(c.Now)
}

// IsOvertime reports whether the target has passed and overtime counting is on.
func (c Countdown) IsOvertime() bool {
	return c.Overtime && c.Now.After(c.Target)
}

// TimeLeft is the remaining time. It is clamped to zero past the target, or
// becomes the time elapsed since the target while in overtime.
func (c Countdown) TimeLeft() time.Duration {
	d := c.RealTimeLeft()
	if d >= 0 {
		return d
	}
	if c.Overtime {
		return -d
	}
	return 0
}

// HandTimeLeft is the span the time-left hands and fill effects are driven by.
func (c Countdown) HandTimeLeft() time.Duration {
	if c.IsOvertime() {
		return ReversalSpan - c.TimeLeft()
	}
	return c.TimeLeft()
}

// Reached reports whether the target instant has been reached.
func (c Countdown) Reached() bool {
	return !c.Now.Before(c.Target)
}

// At returns a copy of the snapshot taken at now.
func (c Countdown) At(now time.Time) Countdown {
	c.Now = now
	return c
}
