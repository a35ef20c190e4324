package clockface

import (
	"fmt"
	"image/color"
	"math/rand"
	"strings"

	"github.com/gogpu/gg"
)

// Scheme produces random palette colors from a shared random source.
type Scheme interface {
	Generate(r *rand.Rand) color.NRGBA
}

// HueScheme picks a random hue at fixed saturation and lightness.
type HueScheme struct {
	Saturation float64
	Lightness  float64
}

func (s HueScheme) Generate(r *rand.Rand) color.NRGBA {
	return nrgba(gg.HSL(r.Float64()*360, s.Saturation, s.Lightness))
}

// GrayScheme picks a random lightness between Min and Max.
type GrayScheme struct {
	Min, Max float64
}

func (s GrayScheme) Generate(r *rand.Rand) color.NRGBA {
	l := s.Min + r.Float64()*(s.Max-s.Min)
	return nrgba(gg.HSL(0, 0, l))
}

var schemes = map[string]Scheme{
	"vivid":  HueScheme{Saturation: 0.65, Lightness: 0.45},
	"pastel": HueScheme{Saturation: 0.45, Lightness: 0.70},
	"gray":   GrayScheme{Min: 0.25, Max: 0.60},
}

// ParseScheme looks up a built-in scheme by name.
func ParseScheme(name string) (Scheme, error) {
	s, ok := schemes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown color scheme %q", name)
	}
	return s, nil
}

// GenerateMany draws n colors from s.
func GenerateMany(s Scheme, n int, r *rand.Rand) []color.NRGBA {
	if n <= 0 {
		return nil
	}
	out := make([]color.NRGBA, n)
	for i := range out {
		out[i] = s.Generate(r)
	}
	return out
}

func nrgba(c gg.RGBA) color.NRGBA {
	return color.NRGBAModel.Convert(c.Color()).(color.NRGBA)
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
