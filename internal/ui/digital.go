package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/Kryxzael/AnalogTimer/internal/countdown"
	"github.com/Kryxzael/AnalogTimer/internal/readout"
)

// Highlight fills behind the hour, minute and second fields.
var (
	hourColor   = color.NRGBA{R: 0xff, G: 0x88, B: 0x88, A: 0x60}
	minuteColor = color.NRGBA{R: 0x88, G: 0xcc, B: 0xff, A: 0x60}
	secondColor = color.NRGBA{R: 0xff, G: 0xdd, B: 0x88, A: 0x60}
)

// fieldView draws one readout.Field: grayed insignificant zeros, the digits,
// and a fill bar behind them.
type fieldView struct {
	bar      *canvas.Rectangle
	zeros    *canvas.Text
	digits   *canvas.Text
	progress float64

	container *fyne.Container
}

func newFieldView(fill, fg, grayed color.Color, size float32) *fieldView {
	f := &fieldView{
		bar:    canvas.NewRectangle(fill),
		zeros:  canvas.NewText("", grayed),
		digits: canvas.NewText("", fg),
	}
	for _, t := range []*canvas.Text{f.zeros, f.digits} {
		t.TextSize = size
		t.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
	}
	text := container.New(&tightRow{}, f.zeros, f.digits)
	f.container = container.New(&fillLayout{field: f}, f.bar, text)
	return f
}

func (f *fieldView) set(field readout.Field) {
	zeros, rest := field.Split()
	f.zeros.Text = zeros
	f.digits.Text = rest
	f.progress = field.Progress
	f.container.Refresh()
}

// fillLayout stretches the text over the whole cell and the bar over the
// progress fraction of it.
type fillLayout struct {
	field *fieldView
}

func (l *fillLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	p := float32(min(max(l.field.progress, 0), 1))
	objects[0].Move(fyne.NewPos(0, 0))
	objects[0].Resize(fyne.NewSize(size.Width*p, size.Height))
	objects[1].Move(fyne.NewPos(0, 0))
	objects[1].Resize(size)
}

func (l *fillLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return objects[1].MinSize()
}

// tightRow lays texts side by side without padding.
type tightRow struct{}

func (tightRow) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	var x float32
	for _, o := range objects {
		w := o.MinSize().Width
		o.Move(fyne.NewPos(x, 0))
		o.Resize(fyne.NewSize(w, size.Height))
		x += w
	}
}

func (tightRow) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var s fyne.Size
	for _, o := range objects {
		m := o.MinSize()
		s.Width += m.Width
		s.Height = max(s.Height, m.Height)
	}
	return s
}

// DigitalView is the full digital readout.
type DigitalView struct {
	container *fyne.Container

	hours, minutes, seconds   *fieldView
	totalHours, fracHours     *fieldView
	totalMinutes, fracMinutes *fieldView
	totalSeconds              *fieldView
	status                    *canvas.Text
}

func NewDigitalView(fg, grayed color.Color, size float32) *DigitalView {
	field := func(fill color.Color, scale float32) *fieldView {
		return newFieldView(fill, fg, grayed, size*scale)
	}
	d := &DigitalView{
		hours:        field(hourColor, 1),
		minutes:      field(minuteColor, 1),
		seconds:      field(secondColor, 1),
		totalHours:   field(hourColor, 0.6),
		fracHours:    field(hourColor, 0.4),
		totalMinutes: field(minuteColor, 0.6),
		fracMinutes:  field(minuteColor, 0.4),
		totalSeconds: field(secondColor, 0.6),
		status:       canvas.NewText("", grayed),
	}
	d.status.Alignment = fyne.TextAlignCenter

	sep := func(s string, scale float32) *canvas.Text {
		t := canvas.NewText(s, grayed)
		t.TextSize = size * scale
		t.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
		return t
	}

	main := container.NewHBox(
		d.hours.container, sep(":", 1),
		d.minutes.container, sep(":", 1),
		d.seconds.container,
	)
	totals := container.New(layout.NewFormLayout(),
		widget.NewLabel("Hours"), container.NewHBox(d.totalHours.container, sep(".", 0.6), d.fracHours.container),
		widget.NewLabel("Minutes"), container.NewHBox(d.totalMinutes.container, sep(".", 0.6), d.fracMinutes.container),
		widget.NewLabel("Seconds"), container.NewHBox(d.totalSeconds.container),
	)

	d.container = container.NewVBox(
		container.NewCenter(main),
		container.NewCenter(totals),
		d.status,
	)
	return d
}

// Update redraws the readout for tick.
func (d *DigitalView) Update(tick countdown.Tick) {
	r := readout.New(tick.Span, tick.Overtime)
	d.hours.set(r.Hours)
	d.minutes.set(r.Minutes)
	d.seconds.set(r.Seconds)
	d.totalHours.set(r.TotalHours)
	d.fracHours.set(r.FracHours)
	d.totalMinutes.set(r.TotalMinutes)
	d.fracMinutes.set(r.FracMinutes)
	d.totalSeconds.set(r.TotalSeconds)

	status := "until " + tick.State.Target.Format("Mon 2 Jan 15:04:05")
	if tick.Overtime {
		status = "past " + tick.State.Target.Format("Mon 2 Jan 15:04:05")
	}
	if status != d.status.Text {
		d.status.Text = status
		d.status.Refresh()
	}
}
