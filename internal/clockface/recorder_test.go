package clockface

import (
	"image/color"
	"math"
)

type op struct {
	kind     string
	from, to Point
	rect     Rect
	style    DrawStyle
	color    color.Color
	start    float64
	sweep    float64
	text     string
	align    Align
	size     float64
}

// recorder is a Surface that keeps every call.
type recorder struct {
	ops []op
}

func (r *recorder) DrawLine(from, to Point, style DrawStyle) {
	r.ops = append(r.ops, op{kind: "line", from: from, to: to, style: style})
}

func (r *recorder) FillEllipse(rect Rect, c color.Color) {
	r.ops = append(r.ops, op{kind: "ellipse", rect: rect, color: c})
}

func (r *recorder) FillPie(rect Rect, c color.Color, start, sweep float64) {
	r.ops = append(r.ops, op{kind: "pie", rect: rect, color: c, start: start, sweep: sweep})
}

func (r *recorder) DrawText(s string, at Point, align Align, c color.Color, size float64) {
	r.ops = append(r.ops, op{kind: "text", text: s, to: at, align: align, color: c, size: size})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) filter(keep func(op) bool) []op {
	var out []op
	for _, o := range r.ops {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
