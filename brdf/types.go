// Package brdf models measured surface-reflectance data (BRDF-like
// functions) over a directional domain.
//
// Reflectance samples live on a possibly non-uniform multi-angle grid
// (SampleSet, SampleSet2D), angle tuples map to and from 3D direction
// pairs through a family of coordinate systems, and a Sampler
// reconstructs a continuous spectrum or scalar value for arbitrary
// direction pairs by bracket search and interpolation across up to four
// angle dimensions plus a wavelength axis.
//
// All directions are unit 3-vectors in a local surface frame whose Z
// axis is the surface normal. The package never normalizes inputs;
// callers guarantee unit length.
package brdf

import "math"

// Vec3 is a 3D direction or point in the local surface frame.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + u.
func (v Vec3) Add(u Vec3) Vec3 { return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z} }

// Sub returns v - u.
func (v Vec3) Sub(u Vec3) Vec3 { return Vec3{v.X - u.X, v.Y - u.Y, v.Z - u.Z} }

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and u.
func (v Vec3) Dot(u Vec3) float64 { return v.X*u.X + v.Y*u.Y + v.Z*u.Z }

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length. The zero vector is
// returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Reflect returns the mirror direction of dir about the given unit
// normal.
func Reflect(dir, normal Vec3) Vec3 {
	return normal.Scale(2 * normal.Dot(dir)).Sub(dir)
}

// downwardTol absorbs rounding on the hemisphere boundary when testing
// whether a direction points below the surface.
const downwardTol = 1e-5

// IsDownward reports whether dir faces the back of the surface.
func IsDownward(dir Vec3) bool {
	return dir.Z < -downwardTol
}

// FixDownward projects a direction with a negative Z component back
// onto the horizon. Directions with a non-negative Z component are
// returned unchanged.
func FixDownward(dir Vec3) Vec3 {
	if dir.Z >= 0 {
		return dir
	}
	dir.Z = 0
	if dir.X == 0 && dir.Y == 0 {
		dir.X = 1
		return dir
	}
	return dir.Normalize()
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 { return degrees / 180 * math.Pi }

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 { return radians / math.Pi * 180 }

// NearEqual reports whether a and b are equal within the tolerance
//
//	eps * max(|a|, |b|, 1) * 2
//
// where eps is the float64 machine epsilon. The relative term keeps the
// comparison meaningful for large magnitudes and the constant 1 floor
// keeps it meaningful near zero.
func NearEqual(a, b float64) bool {
	const eps = 2.220446049250313e-16
	tol := eps * math.Max(math.Max(math.Abs(a), math.Abs(b)), 1) * 2
	return math.Abs(a-b) <= tol
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
