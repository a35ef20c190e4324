package ui

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/gogpu/gg/text"

	"github.com/Kryxzael/AnalogTimer/internal/clockface"
	"github.com/Kryxzael/AnalogTimer/internal/models"
	"github.com/Kryxzael/AnalogTimer/internal/render"
)

// ClockWidget shows the analog clock face. Tapping it draws a new palette.
type ClockWidget struct {
	widget.BaseWidget

	mu     sync.Mutex
	face   *clockface.Face
	font   *text.FontSource
	state  models.Countdown
	raster *canvas.Raster
}

var _ fyne.Tappable = (*ClockWidget)(nil)

func NewClockWidget(face *clockface.Face, font *text.FontSource) *ClockWidget {
	c := &ClockWidget{
		face: face,
		font: font,
	}
	c.raster = canvas.NewRaster(c.draw)
	c.ExtendBaseWidget(c)
	return c
}

func (c *ClockWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.raster)
}

func (c *ClockWidget) MinSize() fyne.Size {
	return fyne.NewSize(240, 240)
}

// SetState stores the snapshot to paint and schedules a repaint.
func (c *ClockWidget) SetState(state models.Countdown) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
	c.raster.Refresh()
}

func (c *ClockWidget) Tapped(*fyne.PointEvent) {
	c.mu.Lock()
	c.face.Regenerate()
	c.mu.Unlock()
	c.raster.Refresh()
}

func (c *ClockWidget) draw(w, h int) image.Image {
	c.mu.Lock()
	defer c.mu.Unlock()
	return render.Frame(c.face, c.font, c.state, w, h, nil).Image()
}
