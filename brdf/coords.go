package brdf

import "math"

// Angle range maximums shared by the coordinate systems.
const (
	// MaxPolarAngle bounds polar angles measured from the surface
	// normal on the upper hemisphere.
	MaxPolarAngle = math.Pi / 2

	// MaxAzimuthAngle bounds azimuthal angles.
	MaxAzimuthAngle = 2 * math.Pi

	// MaxSpecularPolarAngle bounds the polar angle measured from the
	// mirror direction, which may reach below the horizon.
	MaxSpecularPolarAngle = math.Pi
)

// CoordinateSystem maps bijectively (up to measure-zero singularities)
// between a pair of unit directions and a 4-angle tuple in a named
// parameterization.
//
// The incoming direction contract is inDir.Z >= 0; directions with a
// negative Z component on the outgoing side follow each system's own
// sign convention and are never silently corrected here. Degenerate
// configurations (grazing angles, undefined azimuth at a pole) resolve
// to deterministic fallbacks, never NaN.
type CoordinateSystem interface {
	// Name returns the parameterization name.
	Name() string

	// MaxAngles returns the inclusive upper bound of each angle
	// dimension; every lower bound is 0.
	MaxAngles() [4]float64

	// ToXYZ converts an angle tuple to an incoming/outgoing direction
	// pair.
	ToXYZ(a0, a1, a2, a3 float64) (inDir, outDir Vec3)

	// FromXYZ converts a direction pair to an angle tuple.
	FromXYZ(inDir, outDir Vec3) (a0, a1, a2, a3 float64)

	// FromXYZIsotropic converts a direction pair to the reduced tuple
	// that omits the relative-azimuth angle (a1), used when the sample
	// set declares isotropy.
	FromXYZIsotropic(inDir, outDir Vec3) (a0, a2, a3 float64)
}

// SphericalCoordinateSystem parameterizes a direction pair by the polar
// and azimuthal angles of each direction:
//
//	a0 = inTheta  in [0, pi/2]
//	a1 = inPhi    in [0, 2*pi]
//	a2 = outTheta in [0, pi/2]
//	a3 = outPhi   in [0, 2*pi]
//
// The isotropic form expresses outPhi relative to the incoming azimuth.
type SphericalCoordinateSystem struct{}

func (SphericalCoordinateSystem) Name() string { return "spherical" }

func (SphericalCoordinateSystem) MaxAngles() [4]float64 {
	return [4]float64{MaxPolarAngle, MaxAzimuthAngle, MaxPolarAngle, MaxAzimuthAngle}
}

func (SphericalCoordinateSystem) ToXYZ(a0, a1, a2, a3 float64) (inDir, outDir Vec3) {
	return sphericalDir(a0, a1), sphericalDir(a2, a3)
}

func (SphericalCoordinateSystem) FromXYZ(inDir, outDir Vec3) (a0, a1, a2, a3 float64) {
	a0, a1 = sphericalAngles(inDir)
	a2, a3 = sphericalAngles(outDir)
	return a0, a1, a2, a3
}

func (SphericalCoordinateSystem) FromXYZIsotropic(inDir, outDir Vec3) (a0, a2, a3 float64) {
	a0, inPhi := sphericalAngles(inDir)
	a2, a3 = sphericalAngles(rotateZ(outDir, -inPhi))
	return a0, a2, a3
}

// SpecularCoordinateSystem parameterizes the outgoing direction in the
// frame of the mirror (specular) direction of the incoming one:
//
//	a0 = inTheta   in [0, pi/2]
//	a1 = inPhi     in [0, 2*pi]
//	a2 = specTheta in [0, pi]   (angle from the mirror direction)
//	a3 = specPhi   in [0, 2*pi] (azimuth about the mirror direction)
//
// A specTheta of 0 is the mirror direction itself; values beyond pi/2
// reach below the horizon.
type SpecularCoordinateSystem struct{}

func (SpecularCoordinateSystem) Name() string { return "specular" }

func (SpecularCoordinateSystem) MaxAngles() [4]float64 {
	return [4]float64{MaxPolarAngle, MaxAzimuthAngle, MaxSpecularPolarAngle, MaxAzimuthAngle}
}

func (SpecularCoordinateSystem) ToXYZ(a0, a1, a2, a3 float64) (inDir, outDir Vec3) {
	inDir = sphericalDir(a0, a1)
	outDir = rotateZ(rotateY(sphericalDir(a2, a3), -a0), a1)
	return inDir, outDir
}

func (SpecularCoordinateSystem) FromXYZ(inDir, outDir Vec3) (a0, a1, a2, a3 float64) {
	a0, a1 = sphericalAngles(inDir)
	a2, a3 = sphericalAngles(rotateY(rotateZ(outDir, -a1), a0))
	return a0, a1, a2, a3
}

func (SpecularCoordinateSystem) FromXYZIsotropic(inDir, outDir Vec3) (a0, a2, a3 float64) {
	a0, inPhi := sphericalAngles(inDir)
	a2, a3 = sphericalAngles(rotateY(rotateZ(outDir, -inPhi), a0))
	return a0, a2, a3
}

// HalfDifferenceCoordinateSystem is the Rusinkiewicz parameterization:
// the half vector h = normalize(in + out) in spherical angles, plus the
// incoming direction expressed in the half-vector frame:
//
//	a0 = halfTheta in [0, pi/2]
//	a1 = halfPhi   in [0, 2*pi]
//	a2 = diffTheta in [0, pi/2]
//	a3 = diffPhi   in [0, 2*pi]
//
// The degenerate half vector at in + out ~= 0 falls back to the surface
// normal.
type HalfDifferenceCoordinateSystem struct{}

func (HalfDifferenceCoordinateSystem) Name() string { return "half-difference" }

func (HalfDifferenceCoordinateSystem) MaxAngles() [4]float64 {
	return [4]float64{MaxPolarAngle, MaxAzimuthAngle, MaxPolarAngle, MaxAzimuthAngle}
}

func (HalfDifferenceCoordinateSystem) ToXYZ(a0, a1, a2, a3 float64) (inDir, outDir Vec3) {
	h := sphericalDir(a0, a1)
	inDir = rotateZ(rotateY(sphericalDir(a2, a3), a0), a1)
	outDir = Reflect(inDir, h)
	return inDir, outDir
}

func (HalfDifferenceCoordinateSystem) FromXYZ(inDir, outDir Vec3) (a0, a1, a2, a3 float64) {
	a0, a1 = sphericalAngles(halfVector(inDir, outDir))
	a2, a3 = sphericalAngles(rotateY(rotateZ(inDir, -a1), -a0))
	return a0, a1, a2, a3
}

func (HalfDifferenceCoordinateSystem) FromXYZIsotropic(inDir, outDir Vec3) (a0, a2, a3 float64) {
	a0, halfPhi := sphericalAngles(halfVector(inDir, outDir))
	a2, a3 = sphericalAngles(rotateY(rotateZ(inDir, -halfPhi), -a0))
	return a0, a2, a3
}

// ConvertCoordinateSystem converts an angle tuple from one
// parameterization to another by composing the direction transforms.
func ConvertCoordinateSystem(src, dst CoordinateSystem, a0, a1, a2, a3 float64) (b0, b1, b2, b3 float64) {
	inDir, outDir := src.ToXYZ(a0, a1, a2, a3)
	return dst.FromXYZ(inDir, outDir)
}

// sphericalDir returns the unit direction at the given polar and
// azimuthal angles.
func sphericalDir(theta, phi float64) Vec3 {
	sinTheta := math.Sin(theta)
	return Vec3{
		X: sinTheta * math.Cos(phi),
		Y: sinTheta * math.Sin(phi),
		Z: math.Cos(theta),
	}
}

// sphericalAngles returns the polar and azimuthal angles of a unit
// direction, with phi in [0, 2*pi). The azimuth of a pole direction
// defaults to 0.
func sphericalAngles(dir Vec3) (theta, phi float64) {
	theta = math.Acos(clamp(dir.Z, -1, 1))
	if dir.X == 0 && dir.Y == 0 {
		return theta, 0
	}
	phi = math.Atan2(dir.Y, dir.X)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	return theta, phi
}

// halfVector returns the normalized half vector of two directions,
// falling back to the surface normal when they cancel.
func halfVector(inDir, outDir Vec3) Vec3 {
	sum := inDir.Add(outDir)
	if sum.Length() < 1e-12 {
		return Vec3{Z: 1}
	}
	return sum.Normalize()
}

func rotateZ(v Vec3, a float64) Vec3 {
	sin, cos := math.Sincos(a)
	return Vec3{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

func rotateY(v Vec3, a float64) Vec3 {
	sin, cos := math.Sincos(a)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}
