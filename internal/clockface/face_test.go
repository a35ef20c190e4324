package clockface

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/Kryxzael/AnalogTimer/internal/models"
)

var bounds = Rect{W: 400, H: 400}

func newTestFace() *Face {
	return NewFace(DefaultOptions(), HueScheme{Saturation: 0.5, Lightness: 0.5}, rand.New(rand.NewSource(7)))
}

func isDotted(width float64) func(op) bool {
	return func(o op) bool {
		return o.kind == "line" && o.style.Dash != nil && o.style.Width == width
	}
}

func TestFaceRenderDeterministic(t *testing.T) {
	f := newTestFace()
	state := countdown(3*time.Hour + 12*time.Minute + 7*time.Second)

	var a, b recorder
	f.Render(&a, bounds, state)
	f.Render(&b, bounds, state)

	if !reflect.DeepEqual(a.ops, b.ops) {
		t.Fatal("rendering the same snapshot twice produced different output")
	}
}

func TestFaceRenderWedges(t *testing.T) {
	f := newTestFace()
	var r recorder
	f.Render(&r, bounds, countdown(3*time.Hour+30*time.Minute))

	pies := r.filter(func(o op) bool { return o.kind == "pie" })
	if len(pies) != 4 {
		t.Fatalf("got %d pies, want 4", len(pies))
	}
	palette := f.Palette()
	for i, p := range pies {
		if p.color != palette[i] {
			t.Errorf("pie %d color = %v, want %v", i, p.color, palette[i])
		}
	}
	if !approx(pies[3].sweep, 180) {
		t.Errorf("draining pie sweep = %v, want 180", pies[3].sweep)
	}
	if pies[3].rect.W >= pies[0].rect.W {
		t.Errorf("inner pie %v is not smaller than outer pie %v", pies[3].rect.W, pies[0].rect.W)
	}
}

func TestFaceRenderHugeTimeLeft(t *testing.T) {
	f := newTestFace()
	var r recorder
	f.Render(&r, bounds, countdown(2000000*time.Hour+30*time.Minute))

	pies := r.filter(func(o op) bool { return o.kind == "pie" })
	if len(pies) == 0 || len(pies) > 2000 {
		t.Fatalf("got %d pies, want a pixel-bounded number", len(pies))
	}
	for i, p := range pies[:len(pies)-1] {
		if p.rect.W < 1-1e-6 {
			t.Fatalf("full pie %d is %v px wide", i, p.rect.W)
		}
	}
	if last := pies[len(pies)-1]; !approx(last.sweep, 180) {
		t.Errorf("draining pie sweep = %v, want 180", last.sweep)
	}
}

func TestFaceRegenerate(t *testing.T) {
	f := newTestFace()
	before := f.Palette()
	if len(before) != 24 {
		t.Fatalf("initial palette has %d colors, want 24", len(before))
	}

	state := countdown(2*time.Hour + 10*time.Minute)
	var r1 recorder
	f.Render(&r1, bounds, state)

	f.Regenerate()
	after := f.Palette()
	if len(after) != 12 {
		t.Fatalf("regenerated palette has %d colors, want 12", len(after))
	}
	if reflect.DeepEqual(before[:12], after) {
		t.Error("regenerated palette repeats the old colors")
	}

	var r2 recorder
	f.Render(&r2, bounds, state)
	if r1.count("pie") != r2.count("pie") {
		t.Errorf("wedge count changed with the palette: %d != %d", r1.count("pie"), r2.count("pie"))
	}
}

func TestFaceDottedHourHandSticks(t *testing.T) {
	f := newTestFace()

	var r recorder
	f.Render(&r, bounds, countdown(30*time.Minute))
	if n := len(r.filter(isDotted(4))); n != 1 {
		t.Fatalf("under an hour: %d dotted hands, want minutes only", n)
	}

	r = recorder{}
	f.Render(&r, bounds, countdown(2*time.Hour))
	if n := len(r.filter(isDotted(4))); n != 2 {
		t.Fatalf("two hours: %d dotted hands, want minutes and hours", n)
	}

	r = recorder{}
	f.Render(&r, bounds, countdown(30*time.Minute))
	if n := len(r.filter(isDotted(4))); n != 2 {
		t.Errorf("after showing the hour hand: %d dotted hands, want 2", n)
	}
}

func TestFaceSecondsHandNeedsSeconds(t *testing.T) {
	f := newTestFace()

	var r recorder
	f.Render(&r, bounds, countdown(10*time.Minute))
	if n := len(r.filter(isDotted(2))); n != 0 {
		t.Errorf("target on a whole minute: %d dotted second hands, want 0", n)
	}

	r = recorder{}
	f.Render(&r, bounds, countdown(10*time.Minute+15*time.Second))
	if n := len(r.filter(isDotted(2))); n != 1 {
		t.Errorf("target with seconds: %d dotted second hands, want 1", n)
	}
}

func TestFaceBackgroundOnTargetDay(t *testing.T) {
	f := newTestFace()
	theme := DefaultTheme()

	background := func(state models.Countdown) any {
		var r recorder
		f.Render(&r, bounds, state)
		ellipses := r.filter(func(o op) bool { return o.kind == "ellipse" })
		return ellipses[1].color
	}

	if got := background(countdown(time.Hour)); got != theme.TargetDay {
		t.Errorf("same day background = %v, want %v", got, theme.TargetDay)
	}
	if got := background(countdown(48 * time.Hour)); got != theme.Background {
		t.Errorf("other day background = %v, want %v", got, theme.Background)
	}
}

func TestFaceOvertime(t *testing.T) {
	f := newTestFace()
	state := models.Countdown{
		Target:   epoch.Add(-10 * time.Minute),
		Now:      epoch,
		Overtime: true,
	}

	var r recorder
	f.Render(&r, bounds, state)

	ellipses := r.filter(func(o op) bool { return o.kind == "ellipse" })
	if got, want := ellipses[1].color, DefaultTheme().Background; got != want {
		t.Errorf("overtime background = %v, want %v", got, want)
	}

	// The hands run backwards from 1000 days: ten minutes past the target
	// puts the minute hand at 50.
	dotted := r.filter(isDotted(4))
	if len(dotted) != 2 {
		t.Fatalf("got %d dotted hands, want minutes and hours", len(dotted))
	}
	center := bounds.Center()
	want := PointAtAngle(center, MinuteHandScale*bounds.Radius(), Angle(50, 60))
	if got := dotted[0].to; math.Abs(got.X-want.X) > 1e-6 || math.Abs(got.Y-want.Y) > 1e-6 {
		t.Errorf("minute hand tip = %+v, want %+v", got, want)
	}
	if dotted[0].to.X >= center.X {
		t.Errorf("minute hand tip %+v points at the first half hour", dotted[0].to)
	}
}

func TestFaceNumeralsFade(t *testing.T) {
	f := newTestFace()

	var r recorder
	f.Render(&r, bounds, countdown(30*time.Second+500*time.Millisecond))
	texts := r.filter(func(o op) bool { return o.kind == "text" })
	if len(texts) != 1 || texts[0].text != "30" {
		t.Errorf("numerals under a minute = %+v, want seconds 30 only", texts)
	}

	r = recorder{}
	f.Render(&r, bounds, countdown(2*time.Hour+20*time.Minute))
	texts = r.filter(func(o op) bool { return o.kind == "text" })
	if len(texts) != 2 || texts[0].text != "2" || texts[1].text != "20" {
		t.Errorf("numerals = %+v, want hours 2 and minutes 20", texts)
	}
}

func TestFaceEmptyBounds(t *testing.T) {
	var r recorder
	newTestFace().Render(&r, Rect{}, countdown(time.Hour))
	if len(r.ops) != 0 {
		t.Errorf("got %d ops for empty bounds, want 0", len(r.ops))
	}
}
