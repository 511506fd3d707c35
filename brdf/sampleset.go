package brdf

import "fmt"

// SampleSet holds reflectance sampled over four angle dimensions. Each
// dimension carries an ordered, strictly increasing angle slice; every
// grid cell holds one spectrum aligned with a shared wavelength axis.
// The spectra tensor is flat and row-major, angle0 outermost through
// angle3 innermost.
//
// The set exclusively owns its angle slices and spectra. Queries are
// read-only and safe to run concurrently; mutations (resize, angle
// edits, clamping) require exclusive access, which the caller
// serializes.
type SampleSet struct {
	angles        [4][]float64
	equalInterval [4]bool
	spectra       []Spectrum
	wavelengths   []float64
	colorModel    ColorModel
}

// NewSampleSet creates a sample set with the given per-dimension angle
// counts. Every count must be at least 1. The wavelength count is
// forced to 1 for Monochromatic and 3 for RGB; passing 0 accepts the
// forced length. Angles, wavelengths, and spectra start zero-filled.
func NewSampleSet(numAngles0, numAngles1, numAngles2, numAngles3 int, colorModel ColorModel, numWavelengths int) (*SampleSet, error) {
	counts := [4]int{numAngles0, numAngles1, numAngles2, numAngles3}
	for dim, n := range counts {
		if n < 1 {
			return nil, fmt.Errorf("%w: angle%d count %d", ErrInvalidSize, dim, n)
		}
	}
	numWl, err := wavelengthsFor(colorModel, numWavelengths)
	if err != nil {
		return nil, err
	}

	ss := &SampleSet{
		colorModel:  colorModel,
		wavelengths: make([]float64, numWl),
	}
	for dim, n := range counts {
		ss.angles[dim] = make([]float64, n)
	}
	ss.spectra = make([]Spectrum, counts[0]*counts[1]*counts[2]*counts[3])
	for i := range ss.spectra {
		ss.spectra[i] = make(Spectrum, numWl)
	}
	return ss, nil
}

// NumAngles returns the length of an angle dimension.
func (ss *SampleSet) NumAngles(dim int) int { return len(ss.angles[dim]) }

// Angle returns the i-th angle of a dimension.
func (ss *SampleSet) Angle(dim, i int) float64 { return ss.angles[dim][i] }

// SetAngle sets the i-th angle of a dimension. The equal-interval
// attribute is not recomputed; call UpdateAngleAttributes after a batch
// of angle edits.
func (ss *SampleSet) SetAngle(dim, i int, angle float64) { ss.angles[dim][i] = angle }

// Angles returns a copy of a dimension's angle slice.
func (ss *SampleSet) Angles(dim int) []float64 {
	return append([]float64(nil), ss.angles[dim]...)
}

// EqualIntervalAngles reports whether a dimension's angles were found
// uniformly spaced by the last UpdateAngleAttributes call.
func (ss *SampleSet) EqualIntervalAngles(dim int) bool { return ss.equalInterval[dim] }

// IsIsotropic reports whether the relative-azimuth dimension (angle1)
// is collapsed to a single entry.
func (ss *SampleSet) IsIsotropic() bool { return len(ss.angles[1]) == 1 }

// ColorModel returns the color model tag.
func (ss *SampleSet) ColorModel() ColorModel { return ss.colorModel }

// NumWavelengths returns the length of the wavelength axis.
func (ss *SampleSet) NumWavelengths() int { return len(ss.wavelengths) }

// Wavelength returns the i-th wavelength.
func (ss *SampleSet) Wavelength(i int) float64 { return ss.wavelengths[i] }

// SetWavelength sets the i-th wavelength.
func (ss *SampleSet) SetWavelength(i int, wl float64) { ss.wavelengths[i] = wl }

// Spectrum returns the stored spectrum at a grid cell. The returned
// slice aliases the set's storage.
func (ss *SampleSet) Spectrum(i0, i1, i2, i3 int) Spectrum {
	return ss.spectra[ss.index(i0, i1, i2, i3)]
}

// SetSpectrum stores a spectrum at a grid cell. The spectrum length
// must match the wavelength axis.
func (ss *SampleSet) SetSpectrum(i0, i1, i2, i3 int, sp Spectrum) error {
	if len(sp) != len(ss.wavelengths) {
		return &DimensionMismatchError{Axis: "wavelengths", Want: len(ss.wavelengths), Got: len(sp)}
	}
	copy(ss.spectra[ss.index(i0, i1, i2, i3)], sp)
	return nil
}

func (ss *SampleSet) index(i0, i1, i2, i3 int) int {
	n1 := len(ss.angles[1])
	n2 := len(ss.angles[2])
	n3 := len(ss.angles[3])
	return ((i0*n1+i1)*n2+i2)*n3 + i3
}

// UpdateAngleAttributes recomputes the cached equal-interval flag of
// every angle dimension. Call it whenever angles have been mutated.
func (ss *SampleSet) UpdateAngleAttributes() {
	for dim := range ss.angles {
		ss.equalInterval[dim] = isEqualInterval(ss.angles[dim])
	}
	trace("sampleset.update_angle_attributes",
		"equal_interval0", ss.equalInterval[0],
		"equal_interval1", ss.equalInterval[1],
		"equal_interval2", ss.equalInterval[2],
		"equal_interval3", ss.equalInterval[3])
}

// ResizeAngles destructively resizes the angle grid. All angles reset
// to zero and every spectrum is discarded and replaced with a
// zero-filled one; the equal-interval attributes reset until the next
// UpdateAngleAttributes.
func (ss *SampleSet) ResizeAngles(numAngles0, numAngles1, numAngles2, numAngles3 int) error {
	counts := [4]int{numAngles0, numAngles1, numAngles2, numAngles3}
	for dim, n := range counts {
		if n < 1 {
			return fmt.Errorf("%w: angle%d count %d", ErrInvalidSize, dim, n)
		}
	}
	for dim, n := range counts {
		ss.angles[dim] = make([]float64, n)
		ss.equalInterval[dim] = false
	}
	numWl := len(ss.wavelengths)
	ss.spectra = make([]Spectrum, counts[0]*counts[1]*counts[2]*counts[3])
	for i := range ss.spectra {
		ss.spectra[i] = make(Spectrum, numWl)
	}
	trace("sampleset.resize_angles", "counts", counts)
	return nil
}

// ResizeWavelengths destructively resizes the wavelength axis. Every
// stored spectrum is discarded and replaced with a zero-filled spectrum
// of the new length; wavelengths reset to zero. The count must agree
// with the color model.
func (ss *SampleSet) ResizeWavelengths(numWavelengths int) error {
	numWl, err := wavelengthsFor(ss.colorModel, numWavelengths)
	if err != nil {
		return err
	}
	ss.wavelengths = make([]float64, numWl)
	for i := range ss.spectra {
		ss.spectra[i] = make(Spectrum, numWl)
	}
	trace("sampleset.resize_wavelengths", "count", numWl)
	return nil
}

// ClampAngles clamps every angle into [0, max[dim]] and recomputes the
// angle attributes. Brdf.ClampAngles supplies the bound coordinate
// system's maximums.
func (ss *SampleSet) ClampAngles(max [4]float64) {
	for dim := range ss.angles {
		for i, a := range ss.angles[dim] {
			ss.angles[dim][i] = clamp(a, 0, max[dim])
		}
	}
	trace("sampleset.clamp_angles", "max", max)
	ss.UpdateAngleAttributes()
}

// Validate checks the structural invariants: strictly increasing angles
// per dimension, tensor size matching the product of the dimension
// lengths, and spectrum lengths matching the wavelength axis. A tensor
// size mismatch indicates an internal-consistency fault that must not
// be reachable through this package's mutation operations.
func (ss *SampleSet) Validate() error {
	for dim := range ss.angles {
		if err := checkIncreasing(fmt.Sprintf("angle%d", dim), ss.angles[dim]); err != nil {
			return err
		}
	}
	want := len(ss.angles[0]) * len(ss.angles[1]) * len(ss.angles[2]) * len(ss.angles[3])
	if len(ss.spectra) != want {
		return &DimensionMismatchError{Axis: "spectra", Want: want, Got: len(ss.spectra)}
	}
	if _, err := wavelengthsFor(ss.colorModel, len(ss.wavelengths)); err != nil {
		return err
	}
	for _, sp := range ss.spectra {
		if len(sp) != len(ss.wavelengths) {
			return &DimensionMismatchError{Axis: "wavelengths", Want: len(ss.wavelengths), Got: len(sp)}
		}
	}
	return nil
}

// isEqualInterval reports whether the angles are uniformly spaced
// within floating-point tolerance. Slices shorter than 3 entries are
// trivially uniform.
func isEqualInterval(angles []float64) bool {
	if len(angles) < 3 {
		return true
	}
	interval := (angles[len(angles)-1] - angles[0]) / float64(len(angles)-1)
	for i := 1; i < len(angles); i++ {
		// Compare cumulative offsets rather than adjacent differences:
		// the tolerance then scales with the axis span, which keeps
		// uniformly subdivided axes recognized despite rounding.
		if !NearEqual(angles[i]-angles[0], interval*float64(i)) {
			return false
		}
	}
	return true
}

func checkIncreasing(axis string, angles []float64) error {
	for i := 1; i < len(angles); i++ {
		if angles[i] <= angles[i-1] {
			return fmt.Errorf("%w: %s[%d]=%g after %g", ErrAngleOrder, axis, i, angles[i], angles[i-1])
		}
	}
	return nil
}

// linSpaced fills a slice with n values uniformly covering [0, max].
func linSpaced(n int, max float64) []float64 {
	out := make([]float64, n)
	if n == 1 {
		return out
	}
	for i := range out {
		out[i] = max * float64(i) / float64(n-1)
	}
	return out
}
