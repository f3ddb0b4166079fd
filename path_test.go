package spline

import (
	"slices"
	"testing"
)

func TestPath(t *testing.T) {
	segs := []Segment{
		{X: Poly{0, 0, 3, -2}, Y: Poly{0, 0, 0, 0}},
		{X: Poly{1, 0, -3, 2}, Y: Poly{0, 0, 3, -2}},
	}
	want := []PathElement{
		MoveTo(Pt(0, 0)),
		CubicTo(Pt(0, 0), Pt(1, 0), Pt(1, 0)),
		CubicTo(Pt(1, 0), Pt(0, 1), Pt(0, 1)),
	}
	diff(t, want, slices.Collect(Path(segs)))

	if n := len(slices.Collect(Path(nil))); n != 0 {
		t.Errorf("got %d elements for an empty spline, want 0", n)
	}
}

func TestPathInterpolated(t *testing.T) {
	segs := Interpolate(testPoints)
	els := slices.Collect(Path(segs))
	if len(els) != len(segs)+1 {
		t.Fatalf("got %d elements, want %d", len(els), len(segs)+1)
	}
	if els[0].Kind != MoveToKind {
		t.Errorf("path starts with %v", els[0])
	}
	for _, el := range els[1:] {
		if el.Kind != CubicToKind {
			t.Errorf("got %v, want CubicTo", el)
		}
	}
}

func TestSVG(t *testing.T) {
	tests := []struct {
		els  []PathElement
		opts SVGOptions
		want string
	}{
		{nil, SVGOptions{}, ""},
		{
			slices.Collect(Marker(Pt(1, 1), 2).PathElements()),
			SVGOptions{},
			"M0,0 L2,0 L2,2 L0,2 Z",
		},
		{
			[]PathElement{MoveTo(Pt(0.5, -1)), CubicTo(Pt(1, 2), Pt(3.25, 4), Pt(5, 6))},
			SVGOptions{},
			"M0.5,-1 C1,2 3.25,4 5,6",
		},
		{
			[]PathElement{MoveTo(Pt(1.0/3, 2)), LineTo(Pt(10, 0.126))},
			SVGOptions{MaxPrecision: 2},
			"M0.33,2 L10,0.13",
		},
	}
	for _, tt := range tests {
		if got := SVG(slices.Values(tt.els), tt.opts); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestPathElementString(t *testing.T) {
	if got, want := MoveTo(Pt(1, 2)).String(), "MoveTo((1, 2), (0, 0), (0, 0))"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := (PathElement{}).String(), "InvalidPathElement((0, 0), (0, 0), (0, 0))"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
