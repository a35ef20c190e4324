package models

import (
	"testing"
	"time"
)

func TestCountdownTimeLeft(t *testing.T) {
	target := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		now      time.Time
		overtime bool
		left     time.Duration
		real     time.Duration
		isOver   bool
	}{
		{"before target", target.Add(-90 * time.Minute), false, 90 * time.Minute, 90 * time.Minute, false},
		{"past target clamps", target.Add(time.Minute), false, 0, -time.Minute, false},
		{"past target counts up", target.Add(time.Minute), true, time.Minute, -time.Minute, true},
		{"overtime before target", target.Add(-time.Minute), true, time.Minute, time.Minute, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Countdown{Target: target, Now: tt.now, Overtime: tt.overtime}
			if got := c.TimeLeft(); got != tt.left {
				t.Errorf("TimeLeft() = %v, want %v", got, tt.left)
			}
			if got := c.RealTimeLeft(); got != tt.real {
				t.Errorf("RealTimeLeft() = %v, want %v", got, tt.real)
			}
			if got := c.IsOvertime(); got != tt.isOver {
				t.Errorf("IsOvertime() = %v, want %v", got, tt.isOver)
			}
		})
	}
}

func TestCountdownHandTimeLeft(t *testing.T) {
	target := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	c := Countdown{Target: target, Now: target.Add(-time.Hour), Overtime: true}
	if got := c.HandTimeLeft(); got != time.Hour {
		t.Errorf("before target HandTimeLeft() = %v, want 1h", got)
	}

	c = c.At(target.Add(2 * time.Hour))
	if got, want := c.HandTimeLeft(), ReversalSpan-2*time.Hour; got != want {
		t.Errorf("overtime HandTimeLeft() = %v, want %v", got, want)
	}
}

func TestCountdownReached(t *testing.T) {
	target := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	c := Countdown{Target: target}
	if c.At(target.Add(-time.Nanosecond)).Reached() {
		t.Error("Reached() before the target")
	}
	if !c.At(target).Reached() {
		t.Error("not Reached() at the target")
	}
}
