package brdf_test

import (
	"fmt"
	"math"

	"github.com/mrjoshuak/go-brdf/brdf"
)

// Example_sampling demonstrates building an isotropic BRDF over a
// spherical angle grid and reconstructing values at arbitrary
// directions.
func Example_sampling() {
	// Two incoming polar angles, isotropic, one outgoing direction.
	b, err := brdf.NewSphericalBrdf(2, 1, 1, 1, brdf.Monochromatic, 0)
	if err != nil {
		fmt.Println("Error creating BRDF:", err)
		return
	}

	// Reflectance 0 at normal incidence, 1 at grazing.
	ss := b.SampleSet()
	ss.SetAngle(0, 1, math.Pi/2)
	ss.UpdateAngleAttributes()
	ss.Spectrum(1, 0, 0, 0)[0] = 1

	// Query halfway between the two grid nodes.
	in := brdf.Vec3{X: math.Sin(math.Pi / 4), Z: math.Cos(math.Pi / 4)}
	out := brdf.Vec3{Z: 1}
	v, err := brdf.Sampler{}.Value(b, in, out, 0)
	if err != nil {
		fmt.Println("Error sampling:", err)
		return
	}
	fmt.Printf("value at 45 degrees: %.2f\n", v)

	// Output:
	// value at 45 degrees: 0.50
}

// ExampleSampler_SpectrumBatch evaluates many direction pairs in
// parallel.
func ExampleSampler_SpectrumBatch() {
	b, err := brdf.NewSphericalBrdf(1, 1, 1, 1, brdf.Monochromatic, 0)
	if err != nil {
		fmt.Println("Error creating BRDF:", err)
		return
	}
	b.SampleSet().Spectrum(0, 0, 0, 0)[0] = 0.75

	pairs := []brdf.DirectionPair{
		{In: brdf.Vec3{Z: 1}, Out: brdf.Vec3{Z: 1}},
		{In: brdf.Vec3{X: 0.6, Z: 0.8}, Out: brdf.Vec3{Y: -0.6, Z: 0.8}},
	}
	spectra, err := brdf.Sampler{}.SpectrumBatch(b, pairs)
	if err != nil {
		fmt.Println("Error sampling:", err)
		return
	}
	for i, sp := range spectra {
		fmt.Printf("pair %d: %.2f\n", i, sp[0])
	}

	// Output:
	// pair 0: 0.75
	// pair 1: 0.75
}
