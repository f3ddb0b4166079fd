package spline

import "fmt"

// Segment is the part of a 2D spline between two consecutive control points,
// with one polynomial per axis.
type Segment struct {
	X Poly
	Y Poly
}

// Pair combines the per-axis solutions of a spline into segments. It panics
// if xs and ys differ in length.
func Pair(xs, ys []Poly) []Segment {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf("spline: pairing %d X polynomials with %d Y polynomials", len(xs), len(ys)))
	}
	if len(xs) == 0 {
		return nil
	}
	segs := make([]Segment, len(xs))
	for i := range segs {
		segs[i] = Segment{X: xs[i], Y: ys[i]}
	}
	return segs
}

// Interpolate computes the spline through pts by solving for the X and Y
// coordinates independently. It returns len(pts)-1 segments, in order. Fewer
// than two points produce no segments.
func Interpolate(pts []Point) []Segment {
	if len(pts) < 2 {
		return nil
	}
	xs, ys := Coords(pts)
	return Pair(Solve(xs), Solve(ys))
}

// Eval evaluates the segment at t. It panics if t is not in [0, 1].
func (s Segment) Eval(t float64) Point {
	return Point{
		X: s.X.Eval(t),
		Y: s.Y.Eval(t),
	}
}

func (s Segment) Start() Point { return s.Eval(0) }
func (s Segment) End() Point   { return s.Eval(1) }

// CubicBez returns the Bézier curve that traces the same path as s for the
// same parameter values.
func (s Segment) CubicBez() CubicBez {
	x0, x1, x2, x3 := bezierControls(s.X)
	y0, y1, y2, y3 := bezierControls(s.Y)
	return CubicBez{
		P0: Pt(x0, y0),
		P1: Pt(x1, y1),
		P2: Pt(x2, y2),
		P3: Pt(x3, y3),
	}
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the
// segment.
func (s Segment) BoundingBox() Rect {
	bbox := NewRectFromPoints(s.Start(), s.End())
	ex, n := s.X.extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(s.Eval(t))
	}
	ex, n = s.Y.extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(s.Eval(t))
	}
	return bbox
}
