package spline

import "fmt"

// SampleCount is the number of points per segment produced by [Sample].
const SampleCount = 100

// Sampler evaluates splines at a fixed number of evenly spaced parameter
// values per segment.
type Sampler struct {
	// N is the number of points per segment. It must be at least 2; the first
	// point of each segment is at t=0 and the last at t=1.
	N int
}

// Sample evaluates segs using [SampleCount] points per segment.
// See [Sampler.Sample].
func Sample(dst []Point, segs []Segment) []Point {
	return Sampler{N: SampleCount}.Sample(dst, segs)
}

// Sample evaluates every segment at t = i/(N-1) for i in [0, N) and returns
// the points in segment order. The result has length N·len(segs).
//
// The result reuses dst's storage and replaces its contents; it is never
// appended to. Empty segs produce an empty result.
func (s Sampler) Sample(dst []Point, segs []Segment) []Point {
	if s.N < 2 {
		panic(fmt.Sprintf("spline: sampler needs at least 2 points per segment, got %d", s.N))
	}
	dst = dst[:0]
	if len(segs) == 0 {
		return dst
	}
	if n := s.N * len(segs); cap(dst) < n {
		dst = make([]Point, 0, n)
	}
	last := float64(s.N - 1)
	for _, seg := range segs {
		for i := range s.N {
			dst = append(dst, seg.Eval(float64(i)/last))
		}
	}
	return dst
}
