// Package readout builds the digital countdown display.
package readout

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Kryxzael/AnalogTimer/internal/models"
)

// Field is one number on the digital display.
type Field struct {
	Text string
	// LeadingZeros is set when the leading zeros of Text are significant and
	// should be drawn like the other digits instead of grayed out.
	LeadingZeros bool
	// Progress in [0, 1] drives the field's highlight fill.
	Progress float64
}

// Split separates the insignificant leading zeros of the field from the rest.
// The last digit is never split off.
func (f Field) Split() (zeros, rest string) {
	if f.LeadingZeros {
		return "", f.Text
	}
	n := 0
	for n < len(f.Text)-1 && f.Text[n] == '0' {
		n++
	}
	return f.Text[:n], f.Text[n:]
}

// Readout is the full digital display for one tick.
type Readout struct {
	Hours   Field
	Minutes Field
	Seconds Field

	TotalHours   Field
	FracHours    Field
	TotalMinutes Field
	FracMinutes  Field
	TotalSeconds Field
}

// New builds the display for span, the time shown on the countdown. While
// overtime the fill effects run off the reversed span so they keep moving.
func New(span time.Duration, overtime bool) Readout {
	if span < 0 {
		span = -span
	}
	fill := span
	if overtime {
		fill = models.ReversalSpan - span
	}

	var r Readout

	r.Hours = Field{
		Text:         fmt.Sprintf("%02d", int(span.Hours())%24),
		LeadingZeros: span >= 24*time.Hour,
		Progress:     float64(int(fill.Hours())%24) / 24,
	}
	r.Minutes = Field{
		Text:         fmt.Sprintf("%02d", int(span.Minutes())%60),
		LeadingZeros: span >= time.Hour,
		Progress:     float64(int(fill.Minutes())%60) / 60,
	}
	r.Seconds = Field{
		Text:         fmt.Sprintf("%02d", int(span.Seconds())%60),
		LeadingZeros: span >= time.Minute,
		Progress:     float64(int(fill.Seconds())%60) / 60,
	}

	r.TotalHours = Field{
		Text:     capped(math.Floor(span.Hours()), 100, 2),
		Progress: r.Hours.Progress,
	}
	r.FracHours = Field{
		Text:         fmt.Sprintf("%03d", Decimals(span.Hours(), 3)),
		LeadingZeros: span >= time.Hour,
		Progress:     float64(Decimals(fill.Hours(), 3)) / 1000,
	}

	r.TotalMinutes = Field{
		Text:     capped(math.Floor(span.Minutes()), 1000, 3),
		Progress: r.Minutes.Progress,
	}
	r.FracMinutes = Field{
		Text:         fmt.Sprintf("%02d", Decimals(span.Minutes(), 2)),
		LeadingZeros: span >= time.Minute,
		Progress:     float64(Decimals(fill.Minutes(), 3)) / 1000,
	}

	r.TotalSeconds = Field{
		Text:     fmt.Sprintf("%07d", int64(span.Seconds())),
		Progress: r.Seconds.Progress,
	}
	return r
}

// Decimals returns the first n decimal digits of value as an integer, so
// Decimals(2.7182, 3) == 718.
func Decimals(value float64, n int) int {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	_, frac := math.Modf(math.Abs(value))
	return int(math.Floor(frac * math.Pow10(n)))
}

// Clock formats span as HH:MM:SS, with a leading day count past 24 hours.
func Clock(span time.Duration) string {
	if span < 0 {
		span = -span
	}
	var b strings.Builder
	if days := int(span.Hours()) / 24; days > 0 {
		fmt.Fprintf(&b, "%dd ", days)
	}
	fmt.Fprintf(&b, "%02d:%02d:%02d", int(span.Hours())%24, int(span.Minutes())%60, int(span.Seconds())%60)
	return b.String()
}

func capped(v, limit float64, width int) string {
	if v >= limit {
		return "BIG"
	}
	return fmt.Sprintf("%0*d", width, int64(v))
}
