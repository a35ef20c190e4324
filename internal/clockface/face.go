package clockface

import (
	"image/color"
	"math"
	"math/rand"
	"strconv"

	"github.com/Kryxzael/AnalogTimer/internal/models"
)

// Sizes relative to the face.
const (
	FrameScale      = 0.1
	HourHandScale   = 0.5
	MinuteHandScale = 1 - FrameScale
	SecondHandScale = MinuteHandScale

	// numerals sit this far past the tip of their hand
	numeralReach = 0.06
)

// Dash pattern of the time-left hands, in stroke widths.
var dotted = []float64{1, 1}

// Theme holds the fixed colors of the face.
type Theme struct {
	Frame      color.NRGBA
	Mark       color.NRGBA
	Background color.NRGBA
	TargetDay  color.NRGBA // background on the day of the target
	Hand       color.NRGBA
	HandWeak   color.NRGBA
	HandBorder color.NRGBA
	Numeral    color.NRGBA
}

func DefaultTheme() Theme {
	return Theme{
		Frame:      color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
		Mark:       color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff},
		Background: color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff},
		TargetDay:  color.NRGBA{R: 0x2a, G: 0x22, B: 0x33, A: 0xff},
		Hand:       color.NRGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff},
		HandWeak:   color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff},
		HandBorder: color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff},
		Numeral:    color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
	}
}

// Options configures a Face.
type Options struct {
	Theme            Theme
	Disc             DiscConfig
	Fader            Fader
	PaletteSize      int // colors generated when the face is created
	ClickPaletteSize int // colors generated on Regenerate
	NumeralSize      float64
}

func DefaultOptions() Options {
	return Options{
		Theme:            DefaultTheme(),
		Disc:             DefaultDisc(),
		Fader:            DefaultFader(),
		PaletteSize:      24,
		ClickPaletteSize: 12,
		NumeralSize:      14,
	}
}

// Face paints the analog clock. It keeps the wedge palette and whether the
// dotted hour hand has been shown; everything else is recomputed from the
// countdown snapshot on each Render.
//
// A Face is not safe for concurrent use.
type Face struct {
	opts    Options
	scheme  Scheme
	rnd     *rand.Rand
	palette []color.NRGBA

	showDottedHourHand bool
}

// NewFace creates a face with a fresh palette drawn from rnd.
func NewFace(opts Options, scheme Scheme, rnd *rand.Rand) *Face {
	f := &Face{
		opts:   opts,
		scheme: scheme,
		rnd:    rnd,
	}
	f.palette = GenerateMany(scheme, opts.PaletteSize, rnd)
	return f
}

// Regenerate replaces the palette. The host calls it when the face is clicked.
func (f *Face) Regenerate() {
	f.palette = GenerateMany(f.scheme, f.opts.ClickPaletteSize, f.rnd)
}

// Palette returns a copy of the current palette.
func (f *Face) Palette() []color.NRGBA {
	return append([]color.NRGBA(nil), f.palette...)
}

// Render paints the whole face for state into bounds.
func (f *Face) Render(s Surface, bounds Rect, state models.Countdown) {
	if bounds.W <= 0 || bounds.H <= 0 {
		return
	}
	f.drawBackground(s, bounds, state)
	f.drawDisc(s, bounds, state)
	f.drawNumerals(s, bounds, state)

	f.drawClockHands(s, bounds, state)
	f.drawTimeLeftHands(s, bounds, state)
}

func (f *Face) drawBackground(s Surface, bounds Rect, state models.Countdown) {
	t := f.opts.Theme
	s.FillEllipse(bounds, t.Frame)

	center := bounds.Center()
	radius := bounds.Radius()
	thin := DrawStyle{Width: 3, Color: t.Mark, Cap: CapRound}
	thick := DrawStyle{Width: 6, Color: t.Mark, Cap: CapRound}
	for i := 0; i < 12; i++ {
		style := thin
		if i%3 == 0 {
			style = thick
		}
		s.DrawLine(center, PointAtAngle(center, radius, Angle(float64(i), 12)), style)
	}

	bg := t.Background
	if sameDay(state) && !state.IsOvertime() {
		bg = t.TargetDay
	}
	s.FillEllipse(bounds.Scaled(1-FrameScale), bg)
}

func (f *Face) drawDisc(s Surface, bounds Rect, state models.Countdown) {
	if len(f.palette) == 0 {
		return
	}
	// Full wedges narrower than a pixel are not drawn.
	cfg := f.opts.Disc
	cfg.MinScale = max(cfg.MinScale, 1/bounds.W)
	for _, w := range Partition(state, len(f.palette), cfg) {
		if w.Sweep <= 0 {
			continue
		}
		c := f.palette[w.ColorIndex]
		if w.Backdrop {
			c = withAlpha(c, 0x60)
		}
		s.FillPie(bounds.Scaled(w.Scale), c, w.StartAngle, w.Sweep)
	}
}

func (f *Face) drawNumerals(s Surface, bounds Rect, state models.Countdown) {
	left := state.TimeLeft()
	hand := state.HandTimeLeft()
	center := bounds.Center()
	radius := bounds.Radius()
	fader := f.opts.Fader
	size := f.opts.NumeralSize

	label := func(text string, scale, angle float64, alpha uint8) {
		if alpha == 0 {
			return
		}
		at := PointAtAngle(center, (scale+numeralReach)*radius, angle)
		s.DrawText(text, at, AlignCenter, withAlpha(f.opts.Theme.Numeral, alpha), size)
	}

	label(strconv.Itoa(int(left.Hours())), HourHandScale,
		Angle(math.Mod(hand.Hours(), 12), 12), fader.Hours(left))
	label(strconv.Itoa(int(left.Minutes())%60), MinuteHandScale-numeralReach*2,
		Angle(hand.Minutes(), 60), fader.Minutes(left))
	if state.Target.Second() != 0 {
		label(strconv.Itoa(int(left.Seconds())%60), SecondHandScale-numeralReach*2,
			Angle(hand.Seconds(), 60), fader.Seconds(left))
	}
}

func (f *Face) drawClockHands(s Surface, bounds Rect, state models.Countdown) {
	t := f.opts.Theme
	normal := DrawStyle{Width: 5, Color: t.Hand, Cap: CapRound}
	normalBorder := DrawStyle{Width: 7, Color: t.HandBorder, Cap: CapRound}
	thin := DrawStyle{Width: 2, Color: t.Hand, Cap: CapRound}
	thinBorder := DrawStyle{Width: 4, Color: t.HandBorder, Cap: CapRound}

	now := state.Now
	hour := float64(now.Hour()%12) + float64(now.Minute())/60
	minute := float64(now.Minute()) + float64(now.Second())/60
	second := float64(now.Second()) + float64(now.Nanosecond()/1e6)/1000

	center := bounds.Center()
	radius := bounds.Radius()
	DrawHand(s, center, SecondHandScale*radius, Angle(second, 60), thin, &thinBorder)
	DrawHand(s, center, MinuteHandScale*radius, Angle(minute, 60), normal, &normalBorder)
	DrawHand(s, center, HourHandScale*radius, Angle(hour, 12), normal, &normalBorder)
}

func (f *Face) drawTimeLeftHands(s Surface, bounds Rect, state models.Countdown) {
	weak := f.opts.Theme.HandWeak
	dots := DrawStyle{Width: 4, Color: weak, Dash: dotted, Cap: CapRound}
	dotsThin := DrawStyle{Width: 2, Color: weak, Dash: dotted, Cap: CapRound}

	left := state.HandTimeLeft()
	center := bounds.Center()
	radius := bounds.Radius()

	if state.Target.Second() != 0 {
		DrawHand(s, center, SecondHandScale*radius, Angle(left.Seconds(), 60), dotsThin, nil)
	}
	DrawHand(s, center, MinuteHandScale*radius, Angle(left.Minutes(), 60), dots, nil)

	// Once shown, the hour hand stays even after less than an hour is left.
	if !f.showDottedHourHand {
		if left.Hours() < 1 {
			return
		}
		f.showDottedHourHand = true
	}
	DrawHand(s, center, HourHandScale*radius, Angle(math.Mod(left.Hours(), 12), 12), dots, nil)
}

func sameDay(state models.Countdown) bool {
	ty, tm, td := state.Target.Date()
	ny, nm, nd := state.Now.In(state.Target.Location()).Date()
	return ty == ny && tm == nm && td == nd
}
