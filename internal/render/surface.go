// Package render paints clock faces with the gg software rasterizer.
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Kryxzael/AnalogTimer/internal/clockface"
)

// DefaultFont returns the font numerals are drawn with when none is configured.
func DefaultFont() (*text.FontSource, error) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load default font: %w", err)
	}
	return source, nil
}

// LoadFont loads a TrueType/OpenType font from path, or the default font
// when path is empty.
func LoadFont(path string) (*text.FontSource, error) {
	if path == "" {
		return DefaultFont()
	}
	source, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", path, err)
	}
	return source, nil
}

// Surface implements clockface.Surface on a gg.Context.
type Surface struct {
	dc     *gg.Context
	source *text.FontSource
	faces  map[float64]text.Face
}

var _ clockface.Surface = (*Surface)(nil)

// NewSurface wraps dc. source may be nil, in which case text is not drawn.
func NewSurface(dc *gg.Context, source *text.FontSource) *Surface {
	return &Surface{
		dc:     dc,
		source: source,
		faces:  make(map[float64]text.Face),
	}
}

func (s *Surface) DrawLine(from, to clockface.Point, style clockface.DrawStyle) {
	if style.Width <= 0 {
		return
	}
	stroke := gg.DefaultStroke().
		WithWidth(style.Width).
		WithCap(lineCap(style.Cap)).
		WithJoin(gg.LineJoinRound)
	if len(style.Dash) > 0 {
		lengths := make([]float64, len(style.Dash))
		for i, l := range style.Dash {
			lengths[i] = l * style.Width
		}
		stroke = stroke.WithDash(gg.NewDash(lengths...))
	}

	s.dc.SetStroke(stroke)
	s.dc.SetColor(style.Color)
	s.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	s.stroke()
}

func (s *Surface) FillEllipse(r clockface.Rect, c color.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	center := r.Center()
	s.dc.SetColor(c)
	s.dc.DrawEllipse(center.X, center.Y, r.W/2, r.H/2)
	s.fill()
}

// FillPie fills the sector of the circle inscribed in r. Sweeps of 360
// degrees or more fill the whole circle.
func (s *Surface) FillPie(r clockface.Rect, c color.Color, startDeg, sweepDeg float64) {
	if r.W <= 0 || sweepDeg <= 0 || math.IsNaN(startDeg) {
		return
	}
	if sweepDeg >= 360 {
		s.FillEllipse(r, c)
		return
	}

	center := r.Center()
	radius := r.W / 2
	start := startDeg * math.Pi / 180
	end := (startDeg + sweepDeg) * math.Pi / 180

	s.dc.SetColor(c)
	s.dc.MoveTo(center.X, center.Y)
	s.dc.LineTo(center.X+radius*math.Cos(start), center.Y+radius*math.Sin(start))
	s.dc.DrawArc(center.X, center.Y, radius, start, end)
	s.dc.ClosePath()
	s.fill()
}

func (s *Surface) DrawText(str string, at clockface.Point, align clockface.Align, c color.Color, size float64) {
	if s.source == nil || str == "" || size <= 0 {
		return
	}
	face, ok := s.faces[size]
	if !ok {
		face = s.source.Face(size)
		s.faces[size] = face
	}
	s.dc.SetFont(face)
	s.dc.SetColor(c)

	var ax float64
	switch align {
	case clockface.AlignCenter:
		ax = 0.5
	case clockface.AlignRight:
		ax = 1
	}
	s.dc.DrawStringAnchored(str, at.X, at.Y, ax, 0.5)
}

func (s *Surface) fill() {
	if err := s.dc.Fill(); err != nil {
		log.Warn().Err(err).Msg("fill failed")
	}
}

func (s *Surface) stroke() {
	if err := s.dc.Stroke(); err != nil {
		log.Warn().Err(err).Msg("stroke failed")
	}
}

func lineCap(c clockface.LineCap) gg.LineCap {
	switch c {
	case clockface.CapRound:
		return gg.LineCapRound
	case clockface.CapSquare:
		return gg.LineCapSquare
	}
	return gg.LineCapButt
}
