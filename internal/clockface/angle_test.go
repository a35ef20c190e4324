package clockface

import (
	"math"
	"testing"
)

func TestAngle(t *testing.T) {
	tests := []struct {
		name       string
		value, max float64
		want       float64
	}{
		{"zero is 12 o'clock", 0, 60, -90},
		{"quarter is 3 o'clock", 15, 60, 0},
		{"half is 6 o'clock", 6, 12, 90},
		{"full turn", 60, 60, 270},
		{"not wrapped", 90, 60, 450},
		{"fractional hour", 1.5, 12, -45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Angle(tt.value, tt.max); !approx(got, tt.want) {
				t.Errorf("Angle(%v, %v) = %v, want %v", tt.value, tt.max, got, tt.want)
			}
		})
	}
}

func TestAngleZeroIsTop(t *testing.T) {
	for _, max := range []float64{1, 12, 60, 1000} {
		if got := Angle(0, max); got != -90 {
			t.Errorf("Angle(0, %v) = %v, want -90", max, got)
		}
	}
}

func TestAnglePeriodic(t *testing.T) {
	for _, max := range []float64{12, 60} {
		for v := 0.0; v < max; v += 0.75 {
			a, b := Angle(v+max, max), Angle(v, max)+360
			if math.Abs(a-b) > 1e-9 {
				t.Errorf("Angle(%v+%v) = %v, want %v", v, max, a, b)
			}
		}
	}
}

func TestPointAtAngle(t *testing.T) {
	origin := Point{X: 50, Y: 50}

	p := PointAtAngle(origin, 10, 0)
	if !approx(p.X, 60) || !approx(p.Y, 50) {
		t.Errorf("PointAtAngle(0) = %+v, want (60, 50)", p)
	}

	p = PointAtAngle(origin, 10, Angle(0, 60))
	if !approx(p.X, 50) || !approx(p.Y, 40) {
		t.Errorf("PointAtAngle(12 o'clock) = %+v, want (50, 40)", p)
	}

	p = PointAtAngle(origin, 10, Angle(30, 60))
	if !approx(p.X, 50) || !approx(p.Y, 60) {
		t.Errorf("PointAtAngle(6 o'clock) = %+v, want (50, 60)", p)
	}
}
