package clockface

import (
	"math"
	"time"

	"github.com/Kryxzael/AnalogTimer/internal/models"
)

// DiscConfig controls the nested hour wedges.
type DiscConfig struct {
	Scale     float64 // size of the outermost wedge relative to the face
	Increment float64 // each nested wedge is Scale / (1 + i*Increment)
	// MinScale drops full-hour wedges smaller than this. The draining wedge
	// is always kept. Zero keeps everything.
	MinScale float64
}

// DefaultDisc returns the disc sizing the face ships with.
func DefaultDisc() DiscConfig {
	return DiscConfig{
		Scale:     1 - FrameScale,
		Increment: 0.2,
	}
}

// Wedge is one pie slice of the remaining-time disc.
type Wedge struct {
	ColorIndex int     // palette index, already wrapped to the palette length
	StartAngle float64 // degrees, clockwise from 3 o'clock
	Sweep      float64 // degrees, in [0, 360]
	Scale      float64 // relative to the face bounds
	Backdrop   bool    // the sub-minute wedge, drawn in the palette backdrop tint
}

// Full reports whether the wedge covers the whole circle.
func (w Wedge) Full() bool {
	return w.Sweep >= 360
}

// Partition splits the countdown's remaining time into wedges, one per
// started hour, outermost first. The wedge of the hour currently draining
// starts at the wall-clock minute and sweeps the minutes left in that hour;
// every later hour is a full circle. Inside the last minute, outside of
// overtime, a backdrop wedge sweeping the remaining seconds comes first.
// Full-hour wedges below cfg.MinScale are left out.
func Partition(state models.Countdown, paletteLen int, cfg DiscConfig) []Wedge {
	left := state.TimeLeft()
	hours := left.Hours()
	whole := int(math.Ceil(hours))
	current := int(math.Floor(hours))
	now := state.Now

	limit := whole
	if cfg.MinScale > 0 && cfg.Increment > 0 {
		// Wedges past index n are smaller than MinScale.
		if n := (cfg.Scale/cfg.MinScale - 1) / cfg.Increment; n < float64(limit) {
			limit = max(int(math.Floor(n))+1, 0)
		}
	}

	wedges := make([]Wedge, 0, limit+2)

	if left > 0 && left < time.Minute && !state.IsOvertime() {
		wedges = append(wedges, Wedge{
			StartAngle: Angle(float64(now.Second())+float64(now.Nanosecond())/1e9, 60),
			Sweep:      clampSweep(left.Seconds() / 60 * 360),
			Scale:      cfg.Scale,
			Backdrop:   true,
		})
	}

	hour := func(i int) Wedge {
		w := Wedge{
			ColorIndex: wrapIndex(i, paletteLen),
			Scale:      cfg.Scale / (1 + float64(i)*cfg.Increment),
			StartAngle: -90,
			Sweep:      360,
		}
		if i == current {
			w.StartAngle = Angle(float64(now.Minute())+float64(now.Second())/60, 60)
			w.Sweep = clampSweep(math.Mod(left.Minutes(), 60) / 60 * 360)
		}
		return w
	}
	for i := 0; i < limit; i++ {
		wedges = append(wedges, hour(i))
	}
	if current >= limit && current < whole {
		wedges = append(wedges, hour(current))
	}
	return wedges
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return i % n
}

func clampSweep(deg float64) float64 {
	switch {
	case !finite(deg) || deg < 0:
		return 0
	case deg > 360:
		return 360
	}
	return deg
}
