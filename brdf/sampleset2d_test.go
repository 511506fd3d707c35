package brdf

import (
	"errors"
	"math"
	"testing"
)

func TestNewSampleSet2DEqualInterval(t *testing.T) {
	ss, err := NewSampleSet2D(5, 7, Monochromatic, 0, true)
	if err != nil {
		t.Fatal(err)
	}
	if got := ss.Theta(0); got != 0 {
		t.Errorf("Theta(0) = %v, want 0", got)
	}
	if got := ss.Theta(4); got != MaxPolarAngle {
		t.Errorf("Theta(4) = %v, want %v", got, MaxPolarAngle)
	}
	if got := ss.Phi(6); got != MaxAzimuthAngle {
		t.Errorf("Phi(6) = %v, want %v", got, MaxAzimuthAngle)
	}
	if !ss.EqualIntervalTheta() || !ss.EqualIntervalPhi() {
		t.Error("uniformly filled axes not flagged equal-interval")
	}
	if err := ss.Validate(); err != nil {
		t.Errorf("Validate = %v, want nil", err)
	}
}

func TestNewSampleSet2DZeroAngles(t *testing.T) {
	ss, err := NewSampleSet2D(3, 2, Monochromatic, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if ss.Theta(i) != 0 {
			t.Errorf("Theta(%d) = %v, want 0", i, ss.Theta(i))
		}
	}
	if ss.EqualIntervalTheta() {
		t.Error("unfilled axis flagged equal-interval")
	}

	if _, err := NewSampleSet2D(0, 1, Monochromatic, 0, false); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero theta count err = %v, want ErrInvalidSize", err)
	}
}

func TestSampleSet2DIsIsotropic(t *testing.T) {
	iso, _ := NewSampleSet2D(4, 1, Monochromatic, 0, true)
	if !iso.IsIsotropic() {
		t.Error("single-entry phi axis should be isotropic")
	}
	aniso, _ := NewSampleSet2D(4, 3, Monochromatic, 0, true)
	if aniso.IsIsotropic() {
		t.Error("multi-entry phi axis should not be isotropic")
	}
}

func TestSampleSet2DStorage(t *testing.T) {
	ss, _ := NewSampleSet2D(2, 3, RGB, 0, true)
	if err := ss.SetSpectrum(1, 2, Spectrum{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	got := ss.Spectrum(1, 2)
	if got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("Spectrum(1,2) = %v", got)
	}
	if got := ss.Spectrum(0, 0); got[0] != 0 {
		t.Errorf("untouched cell = %v, want zeros", got)
	}
	if err := ss.SetSpectrum(0, 0, Spectrum{1}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("short spectrum err = %v, want ErrDimensionMismatch", err)
	}
}

func TestSampleSet2DResizeWavelengths(t *testing.T) {
	ss, err := NewSampleSet2D(2, 2, Spectral, 4, true)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		ss.SetWavelength(i, 400+float64(i)*100)
	}
	ss.Spectrum(1, 1).Fill(3)

	if err := ss.ResizeWavelengths(8); err != nil {
		t.Fatal(err)
	}
	if got := ss.NumWavelengths(); got != 8 {
		t.Fatalf("NumWavelengths = %d, want 8", got)
	}
	for i := 0; i < ss.NumTheta(); i++ {
		for j := 0; j < ss.NumPhi(); j++ {
			sp := ss.Spectrum(i, j)
			if len(sp) != 8 {
				t.Fatalf("spectrum (%d,%d) length = %d, want 8", i, j, len(sp))
			}
			for k, v := range sp {
				if v != 0 {
					t.Errorf("spectrum (%d,%d) slot %d = %v, want 0", i, j, k, v)
				}
			}
		}
	}
	for i := 0; i < 8; i++ {
		if ss.Wavelength(i) != 0 {
			t.Errorf("wavelength %d = %v, want 0", i, ss.Wavelength(i))
		}
	}
	// The angle grid is untouched.
	if got := ss.Theta(1); got != MaxPolarAngle {
		t.Errorf("Theta(1) = %v, want %v", got, MaxPolarAngle)
	}
}

func TestSampleSet2DResizeAngles(t *testing.T) {
	ss, _ := NewSampleSet2D(2, 2, Monochromatic, 0, true)
	ss.Spectrum(1, 1)[0] = 7
	if err := ss.ResizeAngles(3, 4); err != nil {
		t.Fatal(err)
	}
	if ss.NumTheta() != 3 || ss.NumPhi() != 4 {
		t.Fatalf("dims = %dx%d, want 3x4", ss.NumTheta(), ss.NumPhi())
	}
	if got := ss.Spectrum(1, 1)[0]; got != 0 {
		t.Errorf("spectrum after resize = %v, want 0", got)
	}
	if err := ss.ResizeAngles(1, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero phi count err = %v, want ErrInvalidSize", err)
	}
}

func TestSampleSet2DClampAngles(t *testing.T) {
	ss, _ := NewSampleSet2D(2, 2, Monochromatic, 0, false)
	ss.SetTheta(0, Radians(-5))
	ss.SetTheta(1, Radians(100))
	ss.SetPhi(0, -1)
	ss.SetPhi(1, 7)
	ss.ClampAngles()

	if got := ss.Theta(0); got != 0 {
		t.Errorf("clamped theta low = %v, want 0", got)
	}
	if got := ss.Theta(1); got != MaxPolarAngle {
		t.Errorf("clamped theta high = %v, want %v", got, MaxPolarAngle)
	}
	if got := ss.Phi(0); got != 0 {
		t.Errorf("clamped phi low = %v, want 0", got)
	}
	if got := ss.Phi(1); got != MaxAzimuthAngle {
		t.Errorf("clamped phi high = %v, want %v", got, MaxAzimuthAngle)
	}
}

func TestSampleSet2DValidate(t *testing.T) {
	ss, _ := NewSampleSet2D(3, 1, Monochromatic, 0, true)
	if err := ss.Validate(); err != nil {
		t.Fatalf("Validate = %v, want nil", err)
	}
	ss.SetTheta(2, ss.Theta(1))
	if err := ss.Validate(); !errors.Is(err, ErrAngleOrder) {
		t.Errorf("Validate with duplicate theta = %v, want ErrAngleOrder", err)
	}
}

func TestSpectrumAt(t *testing.T) {
	// A single-cell set reproduces its value for every direction.
	ss, _ := NewSampleSet2D(1, 1, Monochromatic, 0, false)
	ss.Spectrum(0, 0)[0] = 5

	for _, dir := range []Vec3{{Z: 1}, sphericalDir(0.7, 1.3), sphericalDir(math.Pi/2, 4)} {
		sp, err := ss.SpectrumAt(dir)
		if err != nil {
			t.Fatal(err)
		}
		if sp[0] != 5 {
			t.Errorf("SpectrumAt(%v) = %v, want 5", dir, sp[0])
		}
	}

	if _, err := ss.SpectrumAt(Vec3{Z: -1}); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("downward direction err = %v, want ErrInvalidDirection", err)
	}
}
