package clockface

import (
	"testing"
	"time"
)

func TestFaderMinutes(t *testing.T) {
	f := DefaultFader()
	tests := []struct {
		left time.Duration
		want uint8
	}{
		{0, 0},
		{time.Minute, 0},
		{3*time.Minute + 30*time.Second, 128},
		{6 * time.Minute, 255},
		{2 * time.Hour, 255},
	}
	for _, tt := range tests {
		if got := f.Minutes(tt.left); got != tt.want {
			t.Errorf("Minutes(%v) = %d, want %d", tt.left, got, tt.want)
		}
	}
}

func TestFaderMinutesMonotonic(t *testing.T) {
	f := DefaultFader()
	prev := f.Minutes(time.Minute)
	for left := time.Minute; left <= 10*time.Minute; left += 5 * time.Second {
		got := f.Minutes(left)
		if got < prev {
			t.Fatalf("Minutes(%v) = %d, dropped below %d", left, got, prev)
		}
		prev = got
	}
	if prev != 255 {
		t.Errorf("Minutes(10m) = %d, want 255", prev)
	}
}

func TestFaderHours(t *testing.T) {
	f := DefaultFader()
	tests := []struct {
		left time.Duration
		want uint8
	}{
		{30 * time.Minute, 0},
		{time.Hour, 0},
		{time.Hour + 2*time.Minute, 51},
		{time.Hour + 10*time.Minute, 255},
		{5 * time.Hour, 255},
	}
	for _, tt := range tests {
		if got := f.Hours(tt.left); got != tt.want {
			t.Errorf("Hours(%v) = %d, want %d", tt.left, got, tt.want)
		}
	}
}

func TestFaderSeconds(t *testing.T) {
	f := DefaultFader()
	tests := []struct {
		left time.Duration
		want uint8
	}{
		{10 * time.Second, 0},
		{10*time.Second + 500*time.Millisecond, 128},
		{10*time.Second + 999*time.Millisecond, 255},
		{-(2*time.Second + 500*time.Millisecond), 128},
	}
	for _, tt := range tests {
		if got := f.Seconds(tt.left); got != tt.want {
			t.Errorf("Seconds(%v) = %d, want %d", tt.left, got, tt.want)
		}
	}
}

func TestFaderZeroWindow(t *testing.T) {
	f := Fader{MinuteFloor: 2}
	if got := f.Minutes(time.Minute); got != 0 {
		t.Errorf("below floor = %d, want 0", got)
	}
	if got := f.Minutes(3 * time.Minute); got != 255 {
		t.Errorf("above floor = %d, want 255", got)
	}
}
