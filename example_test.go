package spline_test

import (
	"fmt"

	"github.com/splinepad/spline"
)

func ExampleSolve() {
	// Zero slopes at both ends turn a single segment into 3t² − 2t³.
	p := spline.Solve([]float64{0, 1})[0]
	fmt.Printf("%.3f %.3f %.3f\n", p.Eval(0.25), p.Eval(0.5), p.Eval(0.75))
	// Output:
	// 0.156 0.500 0.844
}

func ExampleInterpolate() {
	pts := []spline.Point{
		spline.Pt(100, 100),
		spline.Pt(300, 80),
		spline.Pt(420, 260),
	}
	segs := spline.Interpolate(pts)

	// samples is reused across frames; each call replaces its contents.
	var samples []spline.Point
	samples = spline.Sample(samples, segs)
	fmt.Println(len(segs), "segments,", len(samples), "samples")
	first, last := samples[0].Round(), samples[len(samples)-1].Round()
	fmt.Println(first, last)
	// Output:
	// 2 segments, 200 samples
	// (100, 100) (420, 260)
}

func ExampleSVG() {
	segs := []spline.Segment{{
		X: spline.Poly{A: 0, B: 0, C: 30, D: -20},
		Y: spline.Poly{A: 5, B: 0, C: 0, D: 0},
	}}
	fmt.Println(spline.SVG(spline.Path(segs), spline.SVGOptions{MaxPrecision: 3}))
	// Output:
	// M0,5 C0,5 10,5 10,5
}
