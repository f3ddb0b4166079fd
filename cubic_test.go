package spline

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSegmentCubicBezControls(t *testing.T) {
	// y = x² traced by x = t, y = t²
	seg := Segment{X: Poly{0, 1, 0, 0}, Y: Poly{0, 0, 1, 0}}
	want := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}
	diff(t, want, seg.CubicBez(), cmpopts.EquateApprox(0, 1e-12))

	const n = 10
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		diff(t, seg.Eval(ts), bernstein(want, ts), cmpopts.EquateApprox(0, 1e-12))
	}
}
