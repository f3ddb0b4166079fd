package spline

// CubicBez is a cubic Bézier curve. Every [Segment] has an exact
// representation as a CubicBez, which is what [Path] emits.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// bezierControls returns the Bézier control values of one coordinate whose
// polynomial is p. It inverts
//
//	A = x0
//	B = 3x1 − 3x0
//	C = 3x2 − 6x1 + 3x0
//	D = x3 − 3x2 + 3x1 − x0
func bezierControls(p Poly) (x0, x1, x2, x3 float64) {
	x0 = p.A
	x1 = p.A + p.B/3.0
	x2 = p.A + (2.0*p.B+p.C)/3.0
	x3 = p.A + p.B + p.C + p.D
	return x0, x1, x2, x3
}
