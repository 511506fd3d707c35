package brdf

import (
	"errors"
	"math"
	"testing"
)

func TestNewSampleSetInvalidCounts(t *testing.T) {
	tests := []struct {
		name           string
		n0, n1, n2, n3 int
	}{
		{"zero angle0", 0, 1, 1, 1},
		{"zero angle3", 2, 2, 2, 0},
		{"negative", 2, -1, 2, 2},
	}
	for _, tt := range tests {
		_, err := NewSampleSet(tt.n0, tt.n1, tt.n2, tt.n3, Monochromatic, 0)
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("%s: err = %v, want ErrInvalidSize", tt.name, err)
		}
	}
}

func TestNewSampleSetWavelengthCounts(t *testing.T) {
	mono, err := NewSampleSet(2, 1, 2, 2, Monochromatic, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := mono.NumWavelengths(); got != 1 {
		t.Errorf("monochromatic NumWavelengths = %d, want 1", got)
	}

	rgb, err := NewSampleSet(2, 1, 2, 2, RGB, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := rgb.NumWavelengths(); got != 3 {
		t.Errorf("rgb NumWavelengths = %d, want 3", got)
	}

	if _, err := NewSampleSet(2, 1, 2, 2, Monochromatic, 5); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("conflicting wavelength count err = %v, want ErrDimensionMismatch", err)
	}
	if _, err := NewSampleSet(2, 1, 2, 2, Spectral, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("spectral without count err = %v, want ErrInvalidSize", err)
	}
}

func TestSampleSetStorage(t *testing.T) {
	ss, err := NewSampleSet(2, 3, 2, 2, Spectral, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := ss.NumAngles(1); got != 3 {
		t.Errorf("NumAngles(1) = %d, want 3", got)
	}

	// Distinct cells hold distinct spectra.
	if err := ss.SetSpectrum(0, 1, 0, 1, Spectrum{1, 2}); err != nil {
		t.Fatal(err)
	}
	if err := ss.SetSpectrum(1, 2, 1, 0, Spectrum{3, 4}); err != nil {
		t.Fatal(err)
	}
	if got := ss.Spectrum(0, 1, 0, 1); got[0] != 1 || got[1] != 2 {
		t.Errorf("Spectrum(0,1,0,1) = %v", got)
	}
	if got := ss.Spectrum(1, 2, 1, 0); got[0] != 3 || got[1] != 4 {
		t.Errorf("Spectrum(1,2,1,0) = %v", got)
	}
	if got := ss.Spectrum(0, 0, 0, 0); got[0] != 0 || got[1] != 0 {
		t.Errorf("untouched cell = %v, want zeros", got)
	}

	// SetSpectrum copies; mutating the source must not leak in.
	src := Spectrum{7, 8}
	ss.SetSpectrum(0, 0, 0, 0, src)
	src[0] = 99
	if got := ss.Spectrum(0, 0, 0, 0); got[0] != 7 {
		t.Errorf("SetSpectrum aliased its argument: %v", got)
	}

	// Length mismatches are rejected.
	err = ss.SetSpectrum(0, 0, 0, 0, Spectrum{1})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("short spectrum err = %v, want ErrDimensionMismatch", err)
	}
}

func TestSampleSetIsIsotropic(t *testing.T) {
	iso, _ := NewSampleSet(3, 1, 3, 3, Monochromatic, 0)
	if !iso.IsIsotropic() {
		t.Error("single-entry angle1 should be isotropic")
	}
	aniso, _ := NewSampleSet(3, 2, 3, 3, Monochromatic, 0)
	if aniso.IsIsotropic() {
		t.Error("multi-entry angle1 should not be isotropic")
	}
}

func TestUpdateAngleAttributes(t *testing.T) {
	ss, _ := NewSampleSet(3, 1, 3, 1, Monochromatic, 0)
	for i, a := range []float64{0, math.Pi / 4, math.Pi / 2} {
		ss.SetAngle(0, i, a)
	}
	for i, a := range []float64{0, 0.1, math.Pi / 2} {
		ss.SetAngle(2, i, a)
	}
	ss.UpdateAngleAttributes()
	if !ss.EqualIntervalAngles(0) {
		t.Error("uniform angle0 axis not flagged equal-interval")
	}
	if ss.EqualIntervalAngles(2) {
		t.Error("non-uniform angle2 axis flagged equal-interval")
	}
	// Short axes are trivially uniform.
	if !ss.EqualIntervalAngles(1) {
		t.Error("single-entry axis not flagged equal-interval")
	}
}

func TestSampleSetAnglesCopy(t *testing.T) {
	ss, _ := NewSampleSet(2, 1, 1, 1, Monochromatic, 0)
	ss.SetAngle(0, 1, 0.5)
	angles := ss.Angles(0)
	angles[1] = 99
	if ss.Angle(0, 1) != 0.5 {
		t.Error("Angles returned aliasing storage")
	}
}

func TestResizeAngles(t *testing.T) {
	ss, _ := NewSampleSet(2, 1, 2, 2, Monochromatic, 0)
	ss.SetAngle(0, 1, 1.0)
	ss.UpdateAngleAttributes()
	ss.Spectrum(1, 0, 1, 1)[0] = 5

	if err := ss.ResizeAngles(3, 1, 2, 2); err != nil {
		t.Fatal(err)
	}
	if got := ss.NumAngles(0); got != 3 {
		t.Errorf("NumAngles(0) = %d, want 3", got)
	}
	// Resizing is destructive: angles and spectra reset to zero.
	for i := 0; i < 3; i++ {
		if ss.Angle(0, i) != 0 {
			t.Errorf("angle0[%d] = %v, want 0", i, ss.Angle(0, i))
		}
	}
	if got := ss.Spectrum(1, 0, 1, 1)[0]; got != 0 {
		t.Errorf("spectrum after resize = %v, want 0", got)
	}
	if ss.EqualIntervalAngles(0) {
		t.Error("equal-interval flag survived a resize")
	}

	if err := ss.ResizeAngles(0, 1, 1, 1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero count err = %v, want ErrInvalidSize", err)
	}
}

func TestResizeWavelengths(t *testing.T) {
	ss, err := NewSampleSet(2, 1, 1, 1, Spectral, 4)
	if err != nil {
		t.Fatal(err)
	}
	ss.SetWavelength(0, 400)
	ss.Spectrum(0, 0, 0, 0).Fill(2)

	if err := ss.ResizeWavelengths(8); err != nil {
		t.Fatal(err)
	}
	if got := ss.NumWavelengths(); got != 8 {
		t.Fatalf("NumWavelengths = %d, want 8", got)
	}
	// Destructive: spectra and wavelengths come back zero-filled.
	for i := 0; i < 8; i++ {
		if ss.Wavelength(i) != 0 {
			t.Errorf("wavelength %d = %v, want 0", i, ss.Wavelength(i))
		}
	}
	sp := ss.Spectrum(0, 0, 0, 0)
	if len(sp) != 8 {
		t.Fatalf("spectrum length = %d, want 8", len(sp))
	}
	for i, v := range sp {
		if v != 0 {
			t.Errorf("spectrum slot %d = %v, want 0", i, v)
		}
	}

	mono, _ := NewSampleSet(1, 1, 1, 1, Monochromatic, 0)
	if err := mono.ResizeWavelengths(4); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("monochromatic resize to 4 err = %v, want ErrDimensionMismatch", err)
	}
}

func TestClampAngles(t *testing.T) {
	ss, _ := NewSampleSet(2, 1, 2, 1, Monochromatic, 0)
	ss.SetAngle(0, 0, Radians(-5))
	ss.SetAngle(0, 1, Radians(100))
	ss.SetAngle(2, 0, 0.2)
	ss.SetAngle(2, 1, 0.4)

	ss.ClampAngles([4]float64{MaxPolarAngle, MaxAzimuthAngle, MaxPolarAngle, MaxAzimuthAngle})

	if got := ss.Angle(0, 0); got != 0 {
		t.Errorf("clamped low angle = %v, want 0", got)
	}
	if got := ss.Angle(0, 1); got != MaxPolarAngle {
		t.Errorf("clamped high angle = %v, want %v", got, MaxPolarAngle)
	}
	// In-range angles pass through unchanged.
	if got := ss.Angle(2, 0); got != 0.2 {
		t.Errorf("in-range angle = %v, want 0.2", got)
	}
}

func TestBrdfClampAngles(t *testing.T) {
	b, err := NewSpecularBrdf(2, 1, 2, 1, Monochromatic, 0)
	if err != nil {
		t.Fatal(err)
	}
	ss := b.SampleSet()
	ss.SetAngle(0, 1, Radians(100)) // beyond pi/2
	ss.SetAngle(2, 1, Radians(170)) // within the specular pi range
	b.ClampAngles()
	if got := ss.Angle(0, 1); got != MaxPolarAngle {
		t.Errorf("angle0 clamped to %v, want %v", got, MaxPolarAngle)
	}
	if got := ss.Angle(2, 1); got != Radians(170) {
		t.Errorf("specular angle2 = %v, want unchanged %v", got, Radians(170))
	}
}

func TestSampleSetValidate(t *testing.T) {
	ss, _ := NewSampleSet(2, 1, 2, 1, Monochromatic, 0)
	ss.SetAngle(0, 1, 0.5)
	ss.SetAngle(2, 1, 0.5)
	ss.UpdateAngleAttributes()
	if err := ss.Validate(); err != nil {
		t.Fatalf("Validate = %v, want nil", err)
	}

	// Duplicate angles violate strict ordering.
	ss.SetAngle(0, 1, 0)
	if err := ss.Validate(); !errors.Is(err, ErrAngleOrder) {
		t.Errorf("Validate with duplicate angle = %v, want ErrAngleOrder", err)
	}
	ss.SetAngle(0, 1, 0.5)

	// Decreasing angles as well.
	ss.SetAngle(2, 1, -0.2)
	if err := ss.Validate(); !errors.Is(err, ErrAngleOrder) {
		t.Errorf("Validate with decreasing angle = %v, want ErrAngleOrder", err)
	}
}

func TestIsEqualInterval(t *testing.T) {
	tests := []struct {
		name   string
		angles []float64
		want   bool
	}{
		{"empty", nil, true},
		{"single", []float64{0.3}, true},
		{"pair", []float64{0, 5}, true},
		{"uniform", []float64{0, 0.5, 1.0, 1.5}, true},
		{"uniform with rounding", linSpaced(7, math.Pi / 2), true},
		{"uniform azimuth", linSpaced(7, MaxAzimuthAngle), true},
		{"non-uniform", []float64{0, 0.1, 1.0}, false},
	}
	for _, tt := range tests {
		if got := isEqualInterval(tt.angles); got != tt.want {
			t.Errorf("%s: isEqualInterval = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLinSpaced(t *testing.T) {
	got := linSpaced(5, 2)
	want := []float64{0, 0.5, 1, 1.5, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("linSpaced(5, 2) = %v, want %v", got, want)
		}
	}
	if got := linSpaced(1, 2); len(got) != 1 || got[0] != 0 {
		t.Errorf("linSpaced(1, 2) = %v, want [0]", got)
	}
}
