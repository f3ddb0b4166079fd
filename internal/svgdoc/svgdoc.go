// Package svgdoc renders a spline and its control points as a standalone SVG
// document, and parses control points given on the command line.
package svgdoc

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/splinepad/spline"
)

// MarkerSize is the edge length of the square drawn at every control point.
const MarkerSize = 4

var (
	errMalformedPoint = errors.New("point must have the form x,y")
	errNonFinite      = errors.New("point must have finite coordinates")
)

// ParsePoints parses whitespace separated "x,y" pairs.
func ParsePoints(s string) ([]spline.Point, error) {
	var pts []spline.Point
	for i, field := range strings.Fields(s) {
		xs, ys, ok := strings.Cut(field, ",")
		if !ok {
			return nil, fmt.Errorf("point %d (%q): %w", i, field, errMalformedPoint)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("point %d (%q): %w", i, field, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("point %d (%q): %w", i, field, err)
		}
		pt := spline.Pt(x, y)
		if pt.IsNaN() || pt.IsInf() {
			return nil, fmt.Errorf("point %d (%q): %w", i, field, errNonFinite)
		}
		pts = append(pts, pt)
	}
	return pts, nil
}

// Bounds returns the area covered by a width×height canvas, the spline
// segments segs and the markers at pts.
func Bounds(width, height int, pts []spline.Point, segs []spline.Segment) spline.Rect {
	r := spline.Rect{X1: float64(width), Y1: float64(height)}
	for _, seg := range segs {
		r = r.Union(seg.BoundingBox())
	}
	for _, pt := range pts {
		r = r.Union(spline.Marker(pt, MarkerSize))
	}
	return r
}

// Write writes a width×height SVG document showing the spline through pts as
// a white curve on a dark background, with a red marker at every point. The
// view box grows beyond the canvas where the curve or a marker would
// otherwise be cut off.
func Write(w io.Writer, width, height int, pts []spline.Point) error {
	var err error
	printf := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}
	num := func(f float64) string {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	segs := spline.Interpolate(pts)
	view := Bounds(width, height, pts, segs)
	printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="%s %s %s %s">`+"\n",
		width, height, num(view.X0), num(view.Y0), num(view.Width()), num(view.Height()))
	printf(`<rect x="%s" y="%s" width="%s" height="%s" fill="rgb(10,10,10)" />`+"\n",
		num(view.X0), num(view.Y0), num(view.Width()), num(view.Height()))

	opts := spline.SVGOptions{MaxPrecision: 3}
	if len(segs) > 0 {
		printf(`<path d="%s" fill="none" stroke="white" />`+"\n", spline.SVG(spline.Path(segs), opts))
	}
	for _, pt := range pts {
		marker := spline.Marker(pt, MarkerSize)
		printf(`<path d="%s" fill="none" stroke="red" />`+"\n", spline.SVG(marker.PathElements(), opts))
	}
	printf("</svg>\n")
	return err
}
