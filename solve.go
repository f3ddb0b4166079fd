package spline

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Coefficient slots of a segment's unknowns, in the order of [Poly]'s fields.
const (
	slotA = iota
	slotB
	slotC
	slotD

	numSlots
)

// term is weight times coefficient slot of segment seg.
type term struct {
	weight float64
	seg    int
	slot   int
}

// equation is the linear constraint sum(terms) = rhs.
type equation struct {
	terms []term
	rhs   float64
}

// Solve computes the clamped cubic spline through values.
//
// It returns len(values)-1 polynomials, the i-th of which goes from values[i]
// at t=0 to values[i+1] at t=1. First and second derivatives are continuous
// across joints and the first derivative is zero at both ends. Fewer than two
// values produce no polynomials.
//
// Solve allocates a fresh linear system on every call and is safe for
// concurrent use.
func Solve(values []float64) []Poly {
	if len(values) < 2 {
		return nil
	}
	segs := len(values) - 1
	unknowns := numSlots * segs

	x := solveSystem(constraints(values), unknowns)
	Logger().Debug("solved spline system", "segments", segs, "unknowns", unknowns)

	out := make([]Poly, segs)
	for i := range out {
		j := i * numSlots
		out[i] = Poly{
			A: x.AtVec(j + slotA),
			B: x.AtVec(j + slotB),
			C: x.AtVec(j + slotC),
			D: x.AtVec(j + slotD),
		}
	}
	return out
}

// constraints returns the equations of the spline through values, in a fixed
// order: start values, end values, first derivative continuity, second
// derivative continuity, start slope, end slope.
func constraints(values []float64) []equation {
	segs := len(values) - 1
	eqs := make([]equation, 0, numSlots*segs)

	// C[i](0) = P[i]
	for i := range segs {
		eqs = append(eqs, equation{
			terms: []term{{1, i, slotA}},
			rhs:   values[i],
		})
	}
	// C[i](1) = P[i+1]
	for i := range segs {
		eqs = append(eqs, equation{
			terms: []term{{1, i, slotA}, {1, i, slotB}, {1, i, slotC}, {1, i, slotD}},
			rhs:   values[i+1],
		})
	}
	// C[i]'(1) = C[i+1]'(0)
	for i := range segs - 1 {
		eqs = append(eqs, equation{
			terms: []term{{1, i, slotB}, {2, i, slotC}, {3, i, slotD}, {-1, i + 1, slotB}},
		})
	}
	// C[i]''(1) = C[i+1]''(0)
	for i := range segs - 1 {
		eqs = append(eqs, equation{
			terms: []term{{2, i, slotC}, {6, i, slotD}, {-2, i + 1, slotC}},
		})
	}

	// C[0]'(0) = 0
	eqs = append(eqs, equation{
		terms: []term{{1, 0, slotB}},
	})
	// C[n]'(1) = 0
	last := segs - 1
	eqs = append(eqs, equation{
		terms: []term{{1, last, slotB}, {2, last, slotC}, {3, last, slotD}},
	})
	return eqs
}

// solveSystem solves eqs for n unknowns. It panics unless there are exactly
// n equations with a unique solution.
func solveSystem(eqs []equation, n int) *mat.VecDense {
	if len(eqs) != n {
		panic(fmt.Sprintf("spline: built %d equations for %d unknowns", len(eqs), n))
	}
	a, b := assemble(eqs, n)
	var lu mat.LU
	lu.Factorize(a)
	x := mat.NewVecDense(n, nil)
	if err := lu.SolveVecTo(x, false, b); err != nil {
		panic(fmt.Sprintf("spline: solving %dx%d system: %v", n, n, err))
	}
	return x
}

// assemble scatters eqs into a dense n×n coefficient matrix and right-hand
// side. Unknown slot s of segment i is column i*4+s.
func assemble(eqs []equation, n int) (*mat.Dense, *mat.VecDense) {
	a := mat.NewDense(n, n, nil)
	b := mat.NewVecDense(n, nil)
	for row, eq := range eqs {
		b.SetVec(row, eq.rhs)
		for _, tm := range eq.terms {
			a.Set(row, tm.seg*numSlots+tm.slot, tm.weight)
		}
	}
	return a, b
}
