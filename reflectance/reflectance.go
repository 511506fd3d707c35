// Package reflectance provides analytic reflectance models evaluated on
// direction pairs in the local surface frame. The sampled-data core
// consumes models only through the narrow Model contract when a sample
// set is generated by evaluating a model on a grid; it never calls into
// a model during interpolation.
package reflectance

import (
	"math"

	"github.com/mrjoshuak/go-brdf/brdf"
)

// Model is an analytic reflectance function.
type Model interface {
	// Value returns the reflectance for an incoming and outgoing unit
	// direction. Degenerate geometry (grazing or below-surface
	// directions) returns 0, never NaN or Inf.
	Value(inDir, outDir brdf.Vec3) float64

	// Isotropic reports whether the model is invariant under rotation
	// about the surface normal.
	Isotropic() bool

	// Name returns the model name.
	Name() string
}

// Lambert is a perfectly diffuse model.
type Lambert struct {
	// Albedo is the fraction of light reflected, in [0, 1].
	Albedo float64
}

func (l Lambert) Value(inDir, outDir brdf.Vec3) float64 {
	if inDir.Z <= 0 || outDir.Z <= 0 {
		return 0
	}
	return l.Albedo / math.Pi
}

func (Lambert) Isotropic() bool { return true }

func (Lambert) Name() string { return "Lambertian" }

// WardAnisotropic is the Ward anisotropic gloss model with independent
// roughness along the tangent and binormal.
type WardAnisotropic struct {
	RoughnessX float64
	RoughnessY float64
}

func (w WardAnisotropic) Value(inDir, outDir brdf.Vec3) float64 {
	// A non-positive roughness has no gloss lobe to evaluate; treat it
	// like degenerate geometry rather than dividing by zero.
	if w.RoughnessX <= 0 || w.RoughnessY <= 0 {
		return 0
	}
	normal := brdf.Vec3{Z: 1}
	tangent := brdf.Vec3{X: 1}
	binormal := brdf.Vec3{Y: -1}

	dotLN := inDir.Dot(normal)
	dotVN := outDir.Dot(normal)
	if dotLN <= 0 || dotVN <= 0 {
		return 0
	}

	h := inDir.Add(outDir).Normalize()
	dotHN := h.Dot(normal)
	dotHT := h.Dot(tangent) / w.RoughnessX
	dotHB := h.Dot(binormal) / w.RoughnessY

	return 1 / math.Sqrt(dotLN*dotVN) *
		math.Exp(-2*(dotHT*dotHT+dotHB*dotHB)/(1+dotHN)) /
		(4 * math.Pi * w.RoughnessX * w.RoughnessY)
}

func (WardAnisotropic) Isotropic() bool { return false }

func (WardAnisotropic) Name() string { return "Ward anisotropic" }
