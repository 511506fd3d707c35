package brdf

import "fmt"

// SampleSet2D holds reflectance or emission sampled over a single
// direction, parameterized by spherical theta in [0, pi/2] and phi in
// [0, 2*pi]. It is the two-dimensional analog of SampleSet: the spectra
// tensor is flat and row-major, theta outermost.
type SampleSet2D struct {
	thetaAngles        []float64
	phiAngles          []float64
	equalIntervalTheta bool
	equalIntervalPhi   bool
	spectra            []Spectrum
	wavelengths        []float64
	colorModel         ColorModel
}

// NewSampleSet2D creates a 2D sample set. Both counts must be at least
// 1; the wavelength count follows the same color-model rules as
// NewSampleSet. When equalIntervalAngles is set the angle axes are
// filled by uniform subdivision of their full ranges and the attributes
// updated; otherwise the angles start at zero for the caller to fill.
func NewSampleSet2D(numTheta, numPhi int, colorModel ColorModel, numWavelengths int, equalIntervalAngles bool) (*SampleSet2D, error) {
	if numTheta < 1 || numPhi < 1 {
		return nil, fmt.Errorf("%w: %dx%d angles", ErrInvalidSize, numTheta, numPhi)
	}
	numWl, err := wavelengthsFor(colorModel, numWavelengths)
	if err != nil {
		return nil, err
	}

	ss := &SampleSet2D{
		colorModel:  colorModel,
		wavelengths: make([]float64, numWl),
	}
	if equalIntervalAngles {
		ss.thetaAngles = linSpaced(numTheta, MaxPolarAngle)
		ss.phiAngles = linSpaced(numPhi, MaxAzimuthAngle)
	} else {
		ss.thetaAngles = make([]float64, numTheta)
		ss.phiAngles = make([]float64, numPhi)
	}
	ss.spectra = make([]Spectrum, numTheta*numPhi)
	for i := range ss.spectra {
		ss.spectra[i] = make(Spectrum, numWl)
	}
	if equalIntervalAngles {
		ss.UpdateAngleAttributes()
	}
	return ss, nil
}

// NumTheta returns the length of the theta axis.
func (ss *SampleSet2D) NumTheta() int { return len(ss.thetaAngles) }

// NumPhi returns the length of the phi axis.
func (ss *SampleSet2D) NumPhi() int { return len(ss.phiAngles) }

// Theta returns the i-th theta angle.
func (ss *SampleSet2D) Theta(i int) float64 { return ss.thetaAngles[i] }

// Phi returns the i-th phi angle.
func (ss *SampleSet2D) Phi(i int) float64 { return ss.phiAngles[i] }

// SetTheta sets the i-th theta angle. Call UpdateAngleAttributes after
// a batch of angle edits.
func (ss *SampleSet2D) SetTheta(i int, angle float64) { ss.thetaAngles[i] = angle }

// SetPhi sets the i-th phi angle. Call UpdateAngleAttributes after a
// batch of angle edits.
func (ss *SampleSet2D) SetPhi(i int, angle float64) { ss.phiAngles[i] = angle }

// EqualIntervalTheta reports whether the theta axis was found uniformly
// spaced by the last UpdateAngleAttributes call.
func (ss *SampleSet2D) EqualIntervalTheta() bool { return ss.equalIntervalTheta }

// EqualIntervalPhi reports whether the phi axis was found uniformly
// spaced by the last UpdateAngleAttributes call.
func (ss *SampleSet2D) EqualIntervalPhi() bool { return ss.equalIntervalPhi }

// IsIsotropic reports whether the phi axis is collapsed to a single
// entry.
func (ss *SampleSet2D) IsIsotropic() bool { return len(ss.phiAngles) == 1 }

// ColorModel returns the color model tag.
func (ss *SampleSet2D) ColorModel() ColorModel { return ss.colorModel }

// NumWavelengths returns the length of the wavelength axis.
func (ss *SampleSet2D) NumWavelengths() int { return len(ss.wavelengths) }

// Wavelength returns the i-th wavelength.
func (ss *SampleSet2D) Wavelength(i int) float64 { return ss.wavelengths[i] }

// SetWavelength sets the i-th wavelength.
func (ss *SampleSet2D) SetWavelength(i int, wl float64) { ss.wavelengths[i] = wl }

// Spectrum returns the stored spectrum at a grid cell. The returned
// slice aliases the set's storage.
func (ss *SampleSet2D) Spectrum(thetaIndex, phiIndex int) Spectrum {
	return ss.spectra[thetaIndex*len(ss.phiAngles)+phiIndex]
}

// SetSpectrum stores a spectrum at a grid cell. The spectrum length
// must match the wavelength axis.
func (ss *SampleSet2D) SetSpectrum(thetaIndex, phiIndex int, sp Spectrum) error {
	if len(sp) != len(ss.wavelengths) {
		return &DimensionMismatchError{Axis: "wavelengths", Want: len(ss.wavelengths), Got: len(sp)}
	}
	copy(ss.spectra[thetaIndex*len(ss.phiAngles)+phiIndex], sp)
	return nil
}

// SpectrumAt reconstructs the spectrum for a direction with linear
// interpolation.
func (ss *SampleSet2D) SpectrumAt(dir Vec3) (Spectrum, error) {
	return Sampler{}.Spectrum2D(ss, dir)
}

// UpdateAngleAttributes recomputes the cached equal-interval flags.
// Call it whenever angles have been mutated.
func (ss *SampleSet2D) UpdateAngleAttributes() {
	ss.equalIntervalTheta = isEqualInterval(ss.thetaAngles)
	ss.equalIntervalPhi = isEqualInterval(ss.phiAngles)
	trace("sampleset2d.update_angle_attributes",
		"equal_interval_theta", ss.equalIntervalTheta,
		"equal_interval_phi", ss.equalIntervalPhi)
}

// ResizeAngles destructively resizes the angle grid, discarding all
// angles and spectra.
func (ss *SampleSet2D) ResizeAngles(numTheta, numPhi int) error {
	if numTheta < 1 || numPhi < 1 {
		return fmt.Errorf("%w: %dx%d angles", ErrInvalidSize, numTheta, numPhi)
	}
	ss.thetaAngles = make([]float64, numTheta)
	ss.phiAngles = make([]float64, numPhi)
	ss.equalIntervalTheta = false
	ss.equalIntervalPhi = false
	numWl := len(ss.wavelengths)
	ss.spectra = make([]Spectrum, numTheta*numPhi)
	for i := range ss.spectra {
		ss.spectra[i] = make(Spectrum, numWl)
	}
	trace("sampleset2d.resize_angles", "theta", numTheta, "phi", numPhi)
	return nil
}

// ResizeWavelengths destructively resizes the wavelength axis: all
// spectra are replaced with zero-filled spectra of the new length.
func (ss *SampleSet2D) ResizeWavelengths(numWavelengths int) error {
	numWl, err := wavelengthsFor(ss.colorModel, numWavelengths)
	if err != nil {
		return err
	}
	ss.wavelengths = make([]float64, numWl)
	for i := range ss.spectra {
		ss.spectra[i] = make(Spectrum, numWl)
	}
	trace("sampleset2d.resize_wavelengths", "count", numWl)
	return nil
}

// ClampAngles clamps theta into [0, pi/2] and phi into [0, 2*pi] and
// recomputes the angle attributes.
func (ss *SampleSet2D) ClampAngles() {
	for i, a := range ss.thetaAngles {
		ss.thetaAngles[i] = clamp(a, 0, MaxPolarAngle)
	}
	for i, a := range ss.phiAngles {
		ss.phiAngles[i] = clamp(a, 0, MaxAzimuthAngle)
	}
	trace("sampleset2d.clamp_angles")
	ss.UpdateAngleAttributes()
}

// Validate checks the structural invariants, mirroring
// SampleSet.Validate.
func (ss *SampleSet2D) Validate() error {
	if err := checkIncreasing("theta", ss.thetaAngles); err != nil {
		return err
	}
	if err := checkIncreasing("phi", ss.phiAngles); err != nil {
		return err
	}
	want := len(ss.thetaAngles) * len(ss.phiAngles)
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
