// Package spline interpolates an ordered sequence of 2D control points with a
// piecewise cubic curve and samples that curve into a dense polyline for
// display.
//
// # Interpolation
//
// Each coordinate axis is interpolated independently. [Solve] takes the N
// values of one axis and returns N−1 cubic polynomials ([Poly]), one per
// segment between consecutive values. Every polynomial is parametrized over
// t ∈ [0, 1], starts at its segment's first value and ends at its second.
//
// The polynomials are chosen so that the curve is C²: at every interior
// joint, the first and second derivatives of adjacent segments agree. The two
// remaining degrees of freedom are fixed by a clamped end condition, setting
// the first derivative at both open ends of the curve to zero.
//
// [Interpolate] runs [Solve] on the X and the Y coordinates of a slice of
// points and pairs the results into [Segment] values.
//
// The solver builds one linear equation per constraint and solves the
// resulting dense square system with an LU factorization. The system depends
// only on the number of points, not on their coordinates, and is nonsingular
// for any count of at least two. Solving is a pure function of its input and
// holds no state between calls.
//
// # Sampling
//
// A [Sampler] evaluates every segment at a fixed number of evenly spaced
// parameter values and concatenates the results. The destination slice is
// reused and overwritten on every call, which suits redraw loops that resample
// the whole curve each frame.
//
// # Geometry
//
// The package contains a small set of 2D primitives ([Point], [Rect], [Line],
// [CubicBez]) for consumers of the curve. Segments can be converted
// exactly to cubic Béziers, and [Path] together with [SVG] turns a spline into
// SVG path data.
//
// # Errors
//
// Fewer than two points are not an error; they produce zero segments. Misuse
// that indicates a programming error, such as evaluating a polynomial outside
// of [0, 1], panics. So does a failed linear solve, which cannot happen for
// well-formed input.
package spline
