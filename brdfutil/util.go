// Package brdfutil provides higher-level operations over sampled
// reflectance data: generating sample sets from analytic models,
// resampling between coordinate systems, and summarizing sample-set
// structure.
package brdfutil

import (
	"fmt"
	"strings"

	"github.com/mrjoshuak/go-brdf/brdf"
	"github.com/mrjoshuak/go-brdf/reflectance"
)

// FillEqualIntervalAngles fills every angle dimension of the BRDF's
// sample set by uniform subdivision of the coordinate system's full
// ranges, then updates the angle attributes.
func FillEqualIntervalAngles(b *brdf.Brdf) {
	ss := b.SampleSet()
	max := b.CoordinateSystem().MaxAngles()
	for dim := 0; dim < 4; dim++ {
		n := ss.NumAngles(dim)
		if n == 1 {
			continue
		}
		for i := 0; i < n; i++ {
			ss.SetAngle(dim, i, max[dim]*float64(i)/float64(n-1))
		}
	}
	ss.UpdateAngleAttributes()
}

// Generate fills every grid cell of a BRDF by evaluating an analytic
// model at the cell's direction pair. Every wavelength slot of a cell
// receives the same scalar value; directions that land below the
// horizon are projected back onto it before evaluation.
func Generate(b *brdf.Brdf, m reflectance.Model) error {
	ss := b.SampleSet()
	sp := make(brdf.Spectrum, ss.NumWavelengths())
	for i0 := 0; i0 < ss.NumAngles(0); i0++ {
		for i1 := 0; i1 < ss.NumAngles(1); i1++ {
			for i2 := 0; i2 < ss.NumAngles(2); i2++ {
				for i3 := 0; i3 < ss.NumAngles(3); i3++ {
					inDir, outDir := b.ToXYZ(ss.Angle(0, i0), ss.Angle(1, i1), ss.Angle(2, i2), ss.Angle(3, i3))
					v := m.Value(brdf.FixDownward(inDir), brdf.FixDownward(outDir))
					sp.Fill(v)
					if err := ss.SetSpectrum(i0, i1, i2, i3, sp); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// Resample fills every grid cell of dst by sampling src at the cell's
// direction pair, converting between the two coordinate systems through
// direction space. The two sample sets must be color-compatible.
func Resample(dst, src *brdf.Brdf, s brdf.Sampler) error {
	if err := brdf.CheckSameColor(dst.SampleSet(), src.SampleSet()); err != nil {
		return err
	}
	ss := dst.SampleSet()
	for i0 := 0; i0 < ss.NumAngles(0); i0++ {
		for i1 := 0; i1 < ss.NumAngles(1); i1++ {
			for i2 := 0; i2 < ss.NumAngles(2); i2++ {
				for i3 := 0; i3 < ss.NumAngles(3); i3++ {
					inDir, outDir := dst.ToXYZ(ss.Angle(0, i0), ss.Angle(1, i1), ss.Angle(2, i2), ss.Angle(3, i3))
					sp, err := s.Spectrum(src, brdf.FixDownward(inDir), brdf.FixDownward(outDir))
					if err != nil {
						return err
					}
					if err := ss.SetSpectrum(i0, i1, i2, i3, sp); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// Info summarizes the structure of a sample set.
type Info struct {
	CoordinateSystem string
	ColorModel       string
	NumWavelengths   int
	Dims             [4]int
	EqualInterval    [4]bool
	Isotropic        bool
	NumSamples       int
}

// Summarize returns structural information about a BRDF's sample set.
func Summarize(b *brdf.Brdf) Info {
	ss := b.SampleSet()
	info := Info{
		CoordinateSystem: b.CoordinateSystem().Name(),
		ColorModel:       ss.ColorModel().String(),
		NumWavelengths:   ss.NumWavelengths(),
		Isotropic:        ss.IsIsotropic(),
		NumSamples:       1,
	}
	for dim := 0; dim < 4; dim++ {
		info.Dims[dim] = ss.NumAngles(dim)
		info.EqualInterval[dim] = ss.EqualIntervalAngles(dim)
		info.NumSamples *= ss.NumAngles(dim)
	}
	return info
}

// String formats the summary on one line.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", i.CoordinateSystem, i.ColorModel)
	fmt.Fprintf(&sb, " %dx%dx%dx%d", i.Dims[0], i.Dims[1], i.Dims[2], i.Dims[3])
	fmt.Fprintf(&sb, " wavelengths=%d samples=%d", i.NumWavelengths, i.NumSamples)
	if i.Isotropic {
		sb.WriteString(" isotropic")
	}
	return sb.String()
}
