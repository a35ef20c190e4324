package clockface

// DrawHand draws a hand from center out to length pixels along angle. When
// border is non-nil it is drawn first, underneath fill.
//
// Non-finite input draws nothing and a negative length is treated as zero.
func DrawHand(s Surface, center Point, length, angle float64, fill DrawStyle, border *DrawStyle) {
	if !finite(length) || !finite(angle) || !finite(center.X) || !finite(center.Y) {
		return
	}
	if length < 0 {
		length = 0
	}

	tip := PointAtAngle(center, length, angle)
	if border != nil {
		s.DrawLine(center, tip, *border)
	}
	s.DrawLine(center, tip, fill)
}
