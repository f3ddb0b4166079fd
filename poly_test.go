package spline

import (
	"math"
	"testing"
)

func TestPolyEval(t *testing.T) {
	// 1 + 2t + 3t² + 4t³
	p := Poly{1, 2, 3, 4}
	tests := []struct {
		t        float64
		v, d, d2 float64
	}{
		{0, 1, 2, 6},
		{1, 10, 20, 30},
		{0.5, 3.25, 8, 18},
	}
	for _, tt := range tests {
		if got := p.Eval(tt.t); got != tt.v {
			t.Errorf("Eval(%g) = %g, want %g", tt.t, got, tt.v)
		}
		if got := p.Deriv(tt.t); got != tt.d {
			t.Errorf("Deriv(%g) = %g, want %g", tt.t, got, tt.d)
		}
		if got := p.Deriv2(tt.t); got != tt.d2 {
			t.Errorf("Deriv2(%g) = %g, want %g", tt.t, got, tt.d2)
		}
	}
	if got := p.Deriv3(); got != 24 {
		t.Errorf("Deriv3() = %g, want 24", got)
	}
}

func TestPolyOutOfRange(t *testing.T) {
	p := Poly{1, 2, 3, 4}
	for _, x := range []float64{-1e-12, 1 + 1e-12, -1, 2, math.NaN(), math.Inf(1)} {
		mustPanic(t, "Eval", func() { p.Eval(x) })
		mustPanic(t, "Deriv", func() { p.Deriv(x) })
		mustPanic(t, "Deriv2", func() { p.Deriv2(x) })
	}
}

func TestPolyCoeffs(t *testing.T) {
	diff(t, [4]float64{1, 2, 3, 4}, Poly{1, 2, 3, 4}.Coeffs())
}

func TestPolyExtrema(t *testing.T) {
	// 3t² − 2t³ is monotonic on (0, 1).
	if _, n := (Poly{0, 0, 3, -2}).extrema(); n != 0 {
		t.Errorf("got %d extrema, want 0", n)
	}
	// (t − ½)² has its minimum at ½.
	ex, n := Poly{0.25, -1, 1, 0}.extrema()
	if n != 1 || !near(ex[0], 0.5, 1) {
		t.Errorf("got extrema %v, want [0.5]", ex[:n])
	}
	// constant
	if _, n := (Poly{5, 0, 0, 0}).extrema(); n != 0 {
		t.Errorf("got %d extrema of a constant, want 0", n)
	}
}
