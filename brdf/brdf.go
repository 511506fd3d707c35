package brdf

// Brdf binds a sample set to the coordinate system its angles are
// expressed in. It owns the sample set exclusively and carries no
// interpolation logic; the Sampler reconstructs values through it.
type Brdf struct {
	samples *SampleSet
	coords  CoordinateSystem
}

// NewBrdf creates a BRDF over a fresh sample set with the given angle
// counts, bound to the given coordinate system.
func NewBrdf(coords CoordinateSystem, numAngles0, numAngles1, numAngles2, numAngles3 int, colorModel ColorModel, numWavelengths int) (*Brdf, error) {
	ss, err := NewSampleSet(numAngles0, numAngles1, numAngles2, numAngles3, colorModel, numWavelengths)
	if err != nil {
		return nil, err
	}
	return &Brdf{samples: ss, coords: coords}, nil
}

// NewSphericalBrdf creates a BRDF in the spherical parameterization.
func NewSphericalBrdf(numInTheta, numInPhi, numOutTheta, numOutPhi int, colorModel ColorModel, numWavelengths int) (*Brdf, error) {
	return NewBrdf(SphericalCoordinateSystem{}, numInTheta, numInPhi, numOutTheta, numOutPhi, colorModel, numWavelengths)
}

// NewSpecularBrdf creates a BRDF in the specular-offset
// parameterization.
func NewSpecularBrdf(numInTheta, numInPhi, numSpecTheta, numSpecPhi int, colorModel ColorModel, numWavelengths int) (*Brdf, error) {
	return NewBrdf(SpecularCoordinateSystem{}, numInTheta, numInPhi, numSpecTheta, numSpecPhi, colorModel, numWavelengths)
}

// NewHalfDifferenceBrdf creates a BRDF in the half-vector/difference
// parameterization.
func NewHalfDifferenceBrdf(numHalfTheta, numHalfPhi, numDiffTheta, numDiffPhi int, colorModel ColorModel, numWavelengths int) (*Brdf, error) {
	return NewBrdf(HalfDifferenceCoordinateSystem{}, numHalfTheta, numHalfPhi, numDiffTheta, numDiffPhi, colorModel, numWavelengths)
}

// WrapSampleSet binds an existing sample set to a coordinate system.
// The BRDF takes ownership of the set.
func WrapSampleSet(coords CoordinateSystem, samples *SampleSet) *Brdf {
	return &Brdf{samples: samples, coords: coords}
}

// SampleSet returns the owned sample set.
func (b *Brdf) SampleSet() *SampleSet { return b.samples }

// CoordinateSystem returns the bound coordinate system.
func (b *Brdf) CoordinateSystem() CoordinateSystem { return b.coords }

// FromXYZ converts a direction pair to this BRDF's angle tuple.
func (b *Brdf) FromXYZ(inDir, outDir Vec3) (a0, a1, a2, a3 float64) {
	return b.coords.FromXYZ(inDir, outDir)
}

// FromXYZIsotropic converts a direction pair to the reduced angle tuple
// without the relative-azimuth angle.
func (b *Brdf) FromXYZIsotropic(inDir, outDir Vec3) (a0, a2, a3 float64) {
	return b.coords.FromXYZIsotropic(inDir, outDir)
}

// ToXYZ converts an angle tuple to a direction pair.
func (b *Brdf) ToXYZ(a0, a1, a2, a3 float64) (inDir, outDir Vec3) {
	return b.coords.ToXYZ(a0, a1, a2, a3)
}

// ClampAngles clamps the sample set's angles into the coordinate
// system's ranges.
func (b *Brdf) ClampAngles() {
	b.samples.ClampAngles(b.coords.MaxAngles())
}
