package render

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/Kryxzael/AnalogTimer/internal/clockface"
	"github.com/Kryxzael/AnalogTimer/internal/models"
)

// Square returns the largest square centered in a w×h area.
func Square(w, h int) clockface.Rect {
	side := float64(min(w, h))
	return clockface.Rect{
		X: (float64(w) - side) / 2,
		Y: (float64(h) - side) / 2,
		W: side,
		H: side,
	}
}

// Frame paints one frame of face into a new w×h context cleared to bg.
func Frame(face *clockface.Face, source *text.FontSource, state models.Countdown, w, h int, bg color.Color) *gg.Context {
	dc := gg.NewContext(max(w, 1), max(h, 1))
	if bg != nil {
		dc.ClearWithColor(gg.FromColor(bg))
	}
	face.Render(NewSurface(dc, source), Square(w, h), state)
	return dc
}
