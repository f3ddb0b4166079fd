package spline

import "iter"

// Line is a straight piece of a sampled polyline.
type Line struct {
	P0 Point
	P1 Point
}

// Polyline returns the lines connecting consecutive points. Fewer than two
// points yield no lines.
func Polyline(pts []Point) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(pts); i++ {
			if !yield(Line{pts[i-1], pts[i]}) {
				return
			}
		}
	}
}
