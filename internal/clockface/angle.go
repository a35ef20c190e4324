package clockface

import "math"

// Angle converts value, one of max units around the dial, into a drawing angle
// in degrees with zero at 12 o'clock. value is not wrapped, so
// Angle(v+max, max) == Angle(v, max)+360.
func Angle(value, max float64) float64 {
	return value/max*360 - 90
}

// PointAtAngle returns the point length pixels away from origin along angle.
func PointAtAngle(origin Point, length, angle float64) Point {
	rad := radians(angle)
	return Point{
		X: origin.X + math.Cos(rad)*length,
		Y: origin.Y + math.Sin(rad)*length,
	}
}

func radians(deg float64) float64 {
	return math.Pi / 180 * deg
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
