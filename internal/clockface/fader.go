package clockface

import (
	"math"
	"time"
)

// Fader computes the opacity of the numerals next to the time-left hands.
// A numeral is transparent at its Floor and fully opaque Window units above it.
// The constants are tuned by eye.
type Fader struct {
	HourFloor    float64 // hours
	HourWindow   float64 // hours
	MinuteFloor  float64 // minutes
	MinuteWindow float64 // minutes
}

func DefaultFader() Fader {
	return Fader{
		HourFloor:    1,
		HourWindow:   1.0 / 6,
		MinuteFloor:  1,
		MinuteWindow: 5,
	}
}

// Hours returns the alpha of the hours numeral.
func (f Fader) Hours(left time.Duration) uint8 {
	return ramp(left.Hours(), f.HourFloor, f.HourWindow)
}

// Minutes returns the alpha of the minutes numeral.
func (f Fader) Minutes(left time.Duration) uint8 {
	return ramp(left.Minutes(), f.MinuteFloor, f.MinuteWindow)
}

// Seconds pulses once per second: opaque as a second starts, transparent as
// it runs out.
func (f Fader) Seconds(left time.Duration) uint8 {
	if left < 0 {
		left = -left
	}
	ms := float64((left % time.Second).Milliseconds())
	return toAlpha(ms / 1000)
}

func ramp(value, floor, window float64) uint8 {
	if window <= 0 || !finite(window) {
		if value > floor {
			return 255
		}
		return 0
	}
	return toAlpha((value - floor) / window)
}

func toAlpha(frac float64) uint8 {
	if math.IsNaN(frac) {
		return 0
	}
	frac = math.Max(0, math.Min(1, frac))
	return uint8(math.Round(frac * 255))
}
