package spline

import "fmt"

// Poly is the cubic polynomial A + B·t + C·t² + D·t³, defined for t in [0, 1].
type Poly struct {
	A float64
	B float64
	C float64
	D float64
}

func (p Poly) String() string {
	return fmt.Sprintf("%g + %g·t + %g·t² + %g·t³", p.A, p.B, p.C, p.D)
}

// Coeffs returns the coefficients in the order A, B, C, D.
func (p Poly) Coeffs() [4]float64 {
	return [4]float64{p.A, p.B, p.C, p.D}
}

// Eval evaluates the polynomial at t. It panics if t is not in [0, 1].
func (p Poly) Eval(t float64) float64 {
	checkParam(t)
	return p.A + t*(p.B+t*(p.C+t*p.D))
}

// Deriv evaluates the first derivative at t. It panics if t is not in [0, 1].
func (p Poly) Deriv(t float64) float64 {
	checkParam(t)
	return p.B + t*(2*p.C+t*3*p.D)
}

// Deriv2 evaluates the second derivative at t. It panics if t is not in [0, 1].
func (p Poly) Deriv2(t float64) float64 {
	checkParam(t)
	return 2*p.C + 6*p.D*t
}

// Deriv3 returns the third derivative, which is constant.
func (p Poly) Deriv3() float64 {
	return 6 * p.D
}

func checkParam(t float64) {
	// Written so that NaN fails the check, too.
	if !(t >= 0 && t <= 1) {
		panic(fmt.Sprintf("spline: parameter %g out of range [0, 1]", t))
	}
}
