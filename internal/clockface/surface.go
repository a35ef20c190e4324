package clockface

import (
	"image/color"
)

// Point is a position on the drawing surface, in pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle on the drawing surface.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Radius returns half of the rectangle's width.
func (r Rect) Radius() float64 {
	return r.W / 2
}

// Scaled returns a rectangle sharing r's center with both sides multiplied by
// scale. Negative scales collapse to an empty rectangle at the center.
func (r Rect) Scaled(scale float64) Rect {
	if scale < 0 || scale != scale {
		scale = 0
	}
	w, h := r.W*scale, r.H*scale
	return Rect{
		X: r.X + (r.W-w)/2,
		Y: r.Y + (r.H-h)/2,
		W: w,
		H: h,
	}
}

// LineCap is the shape of a stroke's end points.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// Align is the horizontal anchor used when drawing text.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// DrawStyle describes how a line is stroked. Dash lengths are given in
// multiples of Width; a nil Dash draws a solid line.
type DrawStyle struct {
	Width float64
	Color color.NRGBA
	Dash  []float64
	Cap   LineCap
}

// Surface is the set of drawing primitives the clock face is painted with.
// Angles are in degrees, clockwise from 3 o'clock.
type Surface interface {
	DrawLine(from, to Point, style DrawStyle)
	FillEllipse(r Rect, c color.Color)
	FillPie(r Rect, c color.Color, startDeg, sweepDeg float64)
	DrawText(s string, at Point, align Align, c color.Color, size float64)
}
