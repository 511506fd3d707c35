// Package spline provides the scalar interpolation kernels used to
// reconstruct reflectance values on angle grids.
//
// All kernels are pure functions: they allocate nothing, are
// deterministic, and reproduce the endpoint values exactly at the
// interval boundaries.
package spline

import "math"

// Lerp returns the linear interpolation between v0 and v1 at t.
// Values of t outside [0, 1] extrapolate.
func Lerp(v0, v1, t float64) float64 {
	return v0 + (v1-v0)*t
}

// Smoothstep maps x into [0, 1] with cubic Hermite easing between
// edge0 and edge1. Inputs outside the edges clamp to 0 or 1.
func Smoothstep(edge0, edge1, x float64) float64 {
	t := clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// Smootherstep maps x into [0, 1] with 5th-order Hermite easing between
// edge0 and edge1. Inputs outside the edges clamp to 0 or 1.
func Smootherstep(edge0, edge1, x float64) float64 {
	t := clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * t * (t*(t*6-15) + 10)
}

// Hermite3 interpolates between v0 and v1 with cubic Hermite easing of
// the fraction t.
func Hermite3(v0, v1, t float64) float64 {
	return Lerp(v0, v1, Smoothstep(0, 1, t))
}

// Hermite5 interpolates between v0 and v1 with 5th-order Hermite easing
// of the fraction t.
func Hermite5(v0, v1, t float64) float64 {
	return Lerp(v0, v1, Smootherstep(0, 1, t))
}

// CatmullRom evaluates the uniform Catmull-Rom spline segment between
// v1 and v2 at fraction t in [0, 1], with v0 and v3 as the outer
// control values.
func CatmullRom(v0, v1, v2, v3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return ((2 * v1) +
		(-v0+v2)*t +
		(2*v0-5*v1+4*v2-v3)*t2 +
		(-v0+3*v1-3*v2+v3)*t3) * 0.5
}

// CentripetalCatmullRom is a Catmull-Rom spline through four
// (position, value) control points with centripetal (alpha = 0.5)
// chord-length parametrization. The parametrization avoids the cusps
// and overshoot the uniform variant exhibits on unevenly spaced
// control points, which makes it the required kernel for non-uniform
// angle grids. The curve segment of interest runs between the two
// inner control points.
type CentripetalCatmullRom struct {
	px, py [4]float64
	knot   [4]float64
}

// NewCentripetalCatmullRom builds a spline through the four control
// points (pos0, val0) .. (pos3, val3). Positions must be strictly
// increasing.
func NewCentripetalCatmullRom(pos0, pos1, pos2, pos3, val0, val1, val2, val3 float64) CentripetalCatmullRom {
	s := CentripetalCatmullRom{
		px: [4]float64{pos0, pos1, pos2, pos3},
		py: [4]float64{val0, val1, val2, val3},
	}
	for i := 1; i < 4; i++ {
		dx := s.px[i] - s.px[i-1]
		dy := s.py[i] - s.py[i-1]
		s.knot[i] = s.knot[i-1] + math.Sqrt(math.Hypot(dx, dy))
	}
	return s
}

// Evaluate returns the curve point at parameter u in
// [knot1, knot2] using the Barry-Goldman pyramid.
func (s CentripetalCatmullRom) Evaluate(u float64) (pos, val float64) {
	a1x, a1y := weigh(s.knot[0], s.knot[1], s.px[0], s.px[1], s.py[0], s.py[1], u)
	a2x, a2y := weigh(s.knot[1], s.knot[2], s.px[1], s.px[2], s.py[1], s.py[2], u)
	a3x, a3y := weigh(s.knot[2], s.knot[3], s.px[2], s.px[3], s.py[2], s.py[3], u)

	b1x, b1y := weigh(s.knot[0], s.knot[2], a1x, a2x, a1y, a2y, u)
	b2x, b2y := weigh(s.knot[1], s.knot[3], a2x, a3x, a2y, a3y, u)

	return weigh(s.knot[1], s.knot[2], b1x, b2x, b1y, b2y, u)
}

// InterpolateY returns the value of the curve at the given position.
// The position must lie within [pos1, pos2]; the segment endpoints are
// reproduced exactly. Positions at or beyond the inner control points
// clamp to the inner control values.
func (s CentripetalCatmullRom) InterpolateY(pos float64) float64 {
	if pos <= s.px[1] {
		return s.py[1]
	}
	if pos >= s.px[2] {
		return s.py[2]
	}

	// The position component of the curve increases monotonically
	// between the inner control points, so the parameter can be found
	// by bisection.
	lo, hi := s.knot[1], s.knot[2]
	for i := 0; i < 52; i++ {
		mid := (lo + hi) * 0.5
		if x, _ := s.Evaluate(mid); x < pos {
			lo = mid
		} else {
			hi = mid
		}
	}
	_, y := s.Evaluate((lo + hi) * 0.5)
	return y
}

func weigh(k0, k1, x0, x1, y0, y1, u float64) (x, y float64) {
	w0 := (k1 - u) / (k1 - k0)
	w1 := (u - k0) / (k1 - k0)
	return w0*x0 + w1*x1, w0*y0 + w1*y1
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
