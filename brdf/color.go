package brdf

import "fmt"

// ColorModel identifies how the slots of a Spectrum map to color.
type ColorModel int

const (
	// Monochromatic stores a single intensity per sample.
	Monochromatic ColorModel = iota

	// RGB stores three tri-stimulus values per sample. The wavelength
	// axis has length 3 but its values are typically unused numerically.
	RGB

	// Spectral stores an arbitrary number of intensities per sample,
	// each paired with an explicit wavelength.
	Spectral
)

// String returns the color model name.
func (m ColorModel) String() string {
	switch m {
	case Monochromatic:
		return "monochromatic"
	case RGB:
		return "rgb"
	case Spectral:
		return "spectral"
	default:
		return "unknown"
	}
}

// NumComponents returns the fixed wavelength-axis length imposed by the
// model, or 0 for Spectral, which allows any positive length.
func (m ColorModel) NumComponents() int {
	switch m {
	case Monochromatic:
		return 1
	case RGB:
		return 3
	default:
		return 0
	}
}

// Spectrum is an ordered sequence of intensity values aligned with a
// sample set's wavelength axis.
type Spectrum []float64

// Clone returns an independent copy of the spectrum.
func (s Spectrum) Clone() Spectrum {
	return append(Spectrum(nil), s...)
}

// Fill sets every slot to v.
func (s Spectrum) Fill(v float64) {
	for i := range s {
		s[i] = v
	}
}

// ColorSet is the color-model surface shared by SampleSet and
// SampleSet2D.
type ColorSet interface {
	ColorModel() ColorModel
	NumWavelengths() int
	Wavelength(i int) float64
}

// HasSameColor reports whether two sample sets share a color model and
// an identical wavelength axis. Spectral wavelengths compare with
// floating-point tolerance; the relation is symmetric.
func HasSameColor(a, b ColorSet) bool {
	return CheckSameColor(a, b) == nil
}

// CheckSameColor returns a ColorModelMismatchError if the two sample
// sets differ in color model or wavelength axis, and nil otherwise.
func CheckSameColor(a, b ColorSet) error {
	mismatch := &ColorModelMismatchError{A: a.ColorModel(), B: b.ColorModel()}
	if a.ColorModel() != b.ColorModel() {
		return mismatch
	}
	if a.NumWavelengths() != b.NumWavelengths() {
		return mismatch
	}
	for i := 0; i < a.NumWavelengths(); i++ {
		if !NearEqual(a.Wavelength(i), b.Wavelength(i)) {
			return mismatch
		}
	}
	return nil
}

// wavelengthsFor resolves the effective wavelength count for a color
// model, rejecting counts that conflict with the model's fixed length.
func wavelengthsFor(m ColorModel, numWavelengths int) (int, error) {
	if fixed := m.NumComponents(); fixed != 0 {
		if numWavelengths != 0 && numWavelengths != fixed {
			return 0, &DimensionMismatchError{Axis: "wavelengths", Want: fixed, Got: numWavelengths}
		}
		return fixed, nil
	}
	if numWavelengths < 1 {
		return 0, fmt.Errorf("%w: %d wavelengths", ErrInvalidSize, numWavelengths)
	}
	return numWavelengths, nil
}
