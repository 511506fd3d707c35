package brdfutil

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/mrjoshuak/go-brdf/brdf"
	"github.com/mrjoshuak/go-brdf/reflectance"
)

func TestFillEqualIntervalAngles(t *testing.T) {
	b, err := brdf.NewSphericalBrdf(3, 1, 5, 4, brdf.Monochromatic, 0)
	if err != nil {
		t.Fatal(err)
	}
	FillEqualIntervalAngles(b)
	ss := b.SampleSet()

	if got := ss.Angle(0, 0); got != 0 {
		t.Errorf("angle0[0] = %v, want 0", got)
	}
	if got := ss.Angle(0, 2); got != brdf.MaxPolarAngle {
		t.Errorf("angle0[2] = %v, want %v", got, brdf.MaxPolarAngle)
	}
	if got := ss.Angle(3, 3); got != brdf.MaxAzimuthAngle {
		t.Errorf("angle3[3] = %v, want %v", got, brdf.MaxAzimuthAngle)
	}
	for dim := 0; dim < 4; dim++ {
		if !ss.EqualIntervalAngles(dim) {
			t.Errorf("dimension %d not flagged equal-interval", dim)
		}
	}
	// Single-entry axes stay at zero.
	if got := ss.Angle(1, 0); got != 0 {
		t.Errorf("angle1[0] = %v, want 0", got)
	}
	if err := ss.Validate(); err != nil {
		t.Errorf("Validate = %v", err)
	}
}

func TestGenerateLambert(t *testing.T) {
	b, err := brdf.NewSphericalBrdf(4, 1, 4, 5, brdf.Monochromatic, 0)
	if err != nil {
		t.Fatal(err)
	}
	FillEqualIntervalAngles(b)

	m := reflectance.Lambert{Albedo: 1}
	if err := Generate(b, m); err != nil {
		t.Fatal(err)
	}

	// Every reconstructed value equals the constant model value. Cells
	// on the horizon are projected back before evaluation, so they carry
	// the constant too.
	want := 1 / math.Pi
	s := brdf.Sampler{Policy: brdf.Spline}
	for _, pair := range []brdf.DirectionPair{
		{In: brdf.Vec3{Z: 1}, Out: brdf.Vec3{Z: 1}},
		{In: dirAt(0.3, 1.0), Out: dirAt(0.9, 4.2)},
		{In: dirAt(1.2, 5.5), Out: dirAt(0.1, 0.4)},
	} {
		v, err := s.Value(b, pair.In, pair.Out, 0)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(v-want) > 1e-12 {
			t.Errorf("Value(%v, %v) = %v, want %v", pair.In, pair.Out, v, want)
		}
	}
}

func TestGenerateNodeValues(t *testing.T) {
	b, err := brdf.NewHalfDifferenceBrdf(4, 1, 4, 4, brdf.Monochromatic, 0)
	if err != nil {
		t.Fatal(err)
	}
	FillEqualIntervalAngles(b)

	m := reflectance.WardAnisotropic{RoughnessX: 0.3, RoughnessY: 0.3}
	if err := Generate(b, m); err != nil {
		t.Fatal(err)
	}

	// Each stored cell holds the model value at the cell's direction
	// pair.
	ss := b.SampleSet()
	for i0 := 0; i0 < ss.NumAngles(0); i0++ {
		for i2 := 0; i2 < ss.NumAngles(2); i2++ {
			for i3 := 0; i3 < ss.NumAngles(3); i3++ {
				inDir, outDir := b.ToXYZ(ss.Angle(0, i0), 0, ss.Angle(2, i2), ss.Angle(3, i3))
				want := m.Value(brdf.FixDownward(inDir), brdf.FixDownward(outDir))
				got := ss.Spectrum(i0, 0, i2, i3)[0]
				if got != want {
					t.Fatalf("cell (%d,0,%d,%d) = %v, want %v", i0, i2, i3, got, want)
				}
			}
		}
	}
}

func TestResample(t *testing.T) {
	src, err := brdf.NewSphericalBrdf(6, 1, 6, 7, brdf.Monochromatic, 0)
	if err != nil {
		t.Fatal(err)
	}
	FillEqualIntervalAngles(src)
	if err := Generate(src, reflectance.Lambert{Albedo: 0.5}); err != nil {
		t.Fatal(err)
	}

	// Resampling a constant function into another parameterization
	// preserves the constant in every cell.
	dst, err := brdf.NewSpecularBrdf(4, 1, 5, 4, brdf.Monochromatic, 0)
	if err != nil {
		t.Fatal(err)
	}
	FillEqualIntervalAngles(dst)
	if err := Resample(dst, src, brdf.Sampler{}); err != nil {
		t.Fatal(err)
	}

	want := 0.5 / math.Pi
	ss := dst.SampleSet()
	for i0 := 0; i0 < ss.NumAngles(0); i0++ {
		for i2 := 0; i2 < ss.NumAngles(2); i2++ {
			for i3 := 0; i3 < ss.NumAngles(3); i3++ {
				got := ss.Spectrum(i0, 0, i2, i3)[0]
				if math.Abs(got-want) > 1e-12 {
					t.Fatalf("cell (%d,0,%d,%d) = %v, want %v", i0, i2, i3, got, want)
				}
			}
		}
	}
}

func TestResampleColorMismatch(t *testing.T) {
	src, _ := brdf.NewSphericalBrdf(2, 1, 2, 2, brdf.Monochromatic, 0)
	dst, _ := brdf.NewSphericalBrdf(2, 1, 2, 2, brdf.RGB, 0)
	err := Resample(dst, src, brdf.Sampler{})
	if !errors.Is(err, brdf.ErrColorModelMismatch) {
		t.Errorf("err = %v, want ErrColorModelMismatch", err)
	}
}

func TestSummarize(t *testing.T) {
	b, err := brdf.NewSphericalBrdf(3, 1, 4, 5, brdf.Monochromatic, 0)
	if err != nil {
		t.Fatal(err)
	}
	FillEqualIntervalAngles(b)

	info := Summarize(b)
	if info.CoordinateSystem != "spherical" {
		t.Errorf("CoordinateSystem = %q", info.CoordinateSystem)
	}
	if info.ColorModel != "monochromatic" {
		t.Errorf("ColorModel = %q", info.ColorModel)
	}
	if info.Dims != [4]int{3, 1, 4, 5} {
		t.Errorf("Dims = %v", info.Dims)
	}
	if info.NumSamples != 60 {
		t.Errorf("NumSamples = %d, want 60", info.NumSamples)
	}
	if !info.Isotropic {
		t.Error("single-entry angle1 not reported isotropic")
	}

	s := info.String()
	for _, frag := range []string{"spherical", "monochromatic", "3x1x4x5", "samples=60", "isotropic"} {
		if !strings.Contains(s, frag) {
			t.Errorf("String() = %q, missing %q", s, frag)
		}
	}
}

func dirAt(theta, phi float64) brdf.Vec3 {
	sin, cos := math.Sincos(theta)
	return brdf.Vec3{X: sin * math.Cos(phi), Y: sin * math.Sin(phi), Z: cos}
}
