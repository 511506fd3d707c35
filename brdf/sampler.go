package brdf

import (
	"fmt"
	"math"
	"sort"

	"github.com/mrjoshuak/go-brdf/spline"
)

// InterpolationPolicy selects the reconstruction kernel family of a
// Sampler.
type InterpolationPolicy int

const (
	// Linear reconstructs with piecewise-linear interpolation on every
	// axis.
	Linear InterpolationPolicy = iota

	// Spline reconstructs with Catmull-Rom splines: centripetal on
	// non-uniform axes and uniform on cached equal-interval axes. Axes
	// with fewer than four samples, and out-of-range queries, fall back
	// to linear.
	Spline
)

// Sampler reconstructs spectra and scalar values from sampled
// reflectance data. It is stateless per call: a query converts the
// directions to the set's native angle tuple, locates the bracketing
// grid interval on each axis, and folds the interpolation kernels
// across the axes innermost-dimension-first, allocating a fresh result.
// Independent queries may run concurrently as long as the sample set is
// not mutated. The zero value is a linear sampler.
//
// Results carry no implicit normalization; callers interpret units.
type Sampler struct {
	Policy InterpolationPolicy
}

// DirectionPair is one incoming/outgoing query pair for batch
// evaluation.
type DirectionPair struct {
	In, Out Vec3
}

// Spectrum reconstructs the spectrum of a BRDF at an incoming and
// outgoing direction. Incoming directions below the surface return
// ErrInvalidDirection.
func (s Sampler) Spectrum(b *Brdf, inDir, outDir Vec3) (Spectrum, error) {
	return s.SampleSetSpectrum(b.samples, b.coords, inDir, outDir)
}

// Value reconstructs a single wavelength slot of a BRDF at an incoming
// and outgoing direction.
func (s Sampler) Value(b *Brdf, inDir, outDir Vec3, wavelengthIndex int) (float64, error) {
	return s.SampleSetValue(b.samples, b.coords, inDir, outDir, wavelengthIndex)
}

// SampleSetSpectrum reconstructs the spectrum of a sample set whose
// angles are expressed in the given coordinate system.
func (s Sampler) SampleSetSpectrum(ss *SampleSet, coords CoordinateSystem, inDir, outDir Vec3) (Spectrum, error) {
	angles, err := queryAngles(ss, coords, inDir, outDir)
	if err != nil {
		return nil, err
	}
	return s.eval(ss.grid(), angles), nil
}

// SampleSetValue reconstructs a single wavelength slot of a sample set
// whose angles are expressed in the given coordinate system.
func (s Sampler) SampleSetValue(ss *SampleSet, coords CoordinateSystem, inDir, outDir Vec3, wavelengthIndex int) (float64, error) {
	if wavelengthIndex < 0 || wavelengthIndex >= ss.NumWavelengths() {
		return 0, fmt.Errorf("%w: wavelength index %d outside [0, %d)", ErrInvalidSize, wavelengthIndex, ss.NumWavelengths())
	}
	sp, err := s.SampleSetSpectrum(ss, coords, inDir, outDir)
	if err != nil {
		return 0, err
	}
	return sp[wavelengthIndex], nil
}

// Spectrum2D reconstructs the spectrum of a 2D sample set at a single
// direction. Isotropic sets interpolate over theta only.
func (s Sampler) Spectrum2D(ss *SampleSet2D, dir Vec3) (Spectrum, error) {
	if IsDownward(dir) {
		return nil, fmt.Errorf("%w: direction below surface (z=%g)", ErrInvalidDirection, dir.Z)
	}
	var angles []float64
	if ss.IsIsotropic() {
		angles = []float64{math.Acos(clamp(dir.Z, -1, 1)), 0}
	} else {
		theta, phi := sphericalAngles(dir)
		angles = []float64{theta, phi}
	}
	return s.eval(ss.grid(), angles), nil
}

// Value2D reconstructs a single wavelength slot of a 2D sample set at a
// single direction.
func (s Sampler) Value2D(ss *SampleSet2D, dir Vec3, wavelengthIndex int) (float64, error) {
	if wavelengthIndex < 0 || wavelengthIndex >= ss.NumWavelengths() {
		return 0, fmt.Errorf("%w: wavelength index %d outside [0, %d)", ErrInvalidSize, wavelengthIndex, ss.NumWavelengths())
	}
	sp, err := s.Spectrum2D(ss, dir)
	if err != nil {
		return 0, err
	}
	return sp[wavelengthIndex], nil
}

// SpectrumBatch evaluates many direction pairs in parallel over a
// shared sample set. The sample set must not be mutated for the
// duration of the call.
func (s Sampler) SpectrumBatch(b *Brdf, pairs []DirectionPair) ([]Spectrum, error) {
	out := make([]Spectrum, len(pairs))
	err := ParallelForWithError(len(pairs), func(i int) error {
		sp, err := s.Spectrum(b, pairs[i].In, pairs[i].Out)
		if err != nil {
			return err
		}
		out[i] = sp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// queryAngles converts a direction pair to the sample set's native
// angle tuple, using the reduced isotropic form when the set drops the
// relative-azimuth dimension.
func queryAngles(ss *SampleSet, coords CoordinateSystem, inDir, outDir Vec3) ([]float64, error) {
	if IsDownward(inDir) {
		return nil, fmt.Errorf("%w: incoming direction below surface (z=%g)", ErrInvalidDirection, inDir.Z)
	}
	if ss.IsIsotropic() {
		a0, a2, a3 := coords.FromXYZIsotropic(inDir, outDir)
		return []float64{a0, 0, a2, a3}, nil
	}
	a0, a1, a2, a3 := coords.FromXYZ(inDir, outDir)
	return []float64{a0, a1, a2, a3}, nil
}

// gridAxis is one angle dimension of a grid view.
type gridAxis struct {
	angles []float64
	equal  bool
}

// gridView exposes a sample tensor to the fold independent of its
// dimensionality. cell returns the stored (aliasing) spectrum at a full
// index tuple.
type gridView struct {
	axes []gridAxis
	cell func(idx []int) Spectrum
}

func (ss *SampleSet) grid() gridView {
	return gridView{
		axes: []gridAxis{
			{ss.angles[0], ss.equalInterval[0]},
			{ss.angles[1], ss.equalInterval[1]},
			{ss.angles[2], ss.equalInterval[2]},
			{ss.angles[3], ss.equalInterval[3]},
		},
		cell: func(idx []int) Spectrum {
			return ss.spectra[ss.index(idx[0], idx[1], idx[2], idx[3])]
		},
	}
}

func (ss *SampleSet2D) grid() gridView {
	return gridView{
		axes: []gridAxis{
			{ss.thetaAngles, ss.equalIntervalTheta},
			{ss.phiAngles, ss.equalIntervalPhi},
		},
		cell: func(idx []int) Spectrum {
			return ss.spectra[idx[0]*len(ss.phiAngles)+idx[1]]
		},
	}
}

// bracket is a located grid interval on one angle axis.
type bracket struct {
	lo, hi int
	t      float64 // fractional position within [lo, hi]; outside [0, 1] extrapolates
	angle  float64
}

// findBracket returns the bracketing index pair for a query over a
// strictly increasing angle slice. In-range queries satisfy
// angles[lo] <= angle <= angles[hi]; out-of-range queries clamp to the
// nearest interior pair and extrapolate through t.
func findBracket(angles []float64, angle float64) bracket {
	n := len(angles)
	if n == 1 {
		return bracket{angle: angle}
	}
	lo := sort.SearchFloat64s(angles, angle) - 1
	if lo < 0 {
		lo = 0
	} else if lo > n-2 {
		lo = n - 2
	}
	hi := lo + 1
	t := (angle - angles[lo]) / (angles[hi] - angles[lo])
	return bracket{lo: lo, hi: hi, t: t, angle: angle}
}

func (s Sampler) eval(g gridView, angles []float64) Spectrum {
	brs := make([]bracket, len(g.axes))
	for dim, ax := range g.axes {
		brs[dim] = findBracket(ax.angles, angles[dim])
	}
	idx := make([]int, len(g.axes))
	return s.fold(g, brs, 0, idx)
}

// fold combines the per-axis brackets by repeated 1-D interpolation,
// recursing so the innermost dimension is interpolated first and the
// results folded outward.
func (s Sampler) fold(g gridView, brs []bracket, dim int, idx []int) Spectrum {
	if dim == len(g.axes) {
		return g.cell(idx).Clone()
	}
	ax := g.axes[dim]
	br := brs[dim]
	n := len(ax.angles)

	// A single-sample axis skips interpolation; a query exactly on a
	// grid node returns the stored sample exactly.
	switch {
	case n == 1 || br.t == 0:
		idx[dim] = br.lo
		return s.fold(g, brs, dim+1, idx)
	case br.t == 1:
		idx[dim] = br.hi
		return s.fold(g, brs, dim+1, idx)
	}

	if s.Policy == Spline && n >= 4 && br.t > 0 && br.t < 1 {
		return s.foldSpline(g, brs, dim, idx)
	}

	idx[dim] = br.lo
	v0 := s.fold(g, brs, dim+1, idx)
	idx[dim] = br.hi
	v1 := s.fold(g, brs, dim+1, idx)
	for i := range v0 {
		v0[i] = spline.Lerp(v0[i], v1[i], br.t)
	}
	return v0
}

// foldSpline interpolates one axis with a Catmull-Rom spline over the
// bracket's four surrounding control points. Edge brackets mirror a
// virtual control point across the boundary sample, which preserves the
// spacing and keeps the centripetal chord lengths positive.
func (s Sampler) foldSpline(g gridView, brs []bracket, dim int, idx []int) Spectrum {
	ax := g.axes[dim]
	br := brs[dim]
	n := len(ax.angles)

	sub := func(i int) Spectrum {
		idx[dim] = i
		return s.fold(g, brs, dim+1, idx)
	}

	var pos [4]float64
	var sp [4]Spectrum
	for k, j := range [4]int{br.lo - 1, br.lo, br.hi, br.hi + 1} {
		switch {
		case j < 0:
			pos[k] = 2*ax.angles[0] - ax.angles[1]
			sp[k] = mirrorSpectrum(sub(0), sub(1))
		case j > n-1:
			pos[k] = 2*ax.angles[n-1] - ax.angles[n-2]
			sp[k] = mirrorSpectrum(sub(n-1), sub(n-2))
		default:
			pos[k] = ax.angles[j]
			sp[k] = sub(j)
		}
	}

	out := make(Spectrum, len(sp[1]))
	if ax.equal {
		for i := range out {
			out[i] = spline.CatmullRom(sp[0][i], sp[1][i], sp[2][i], sp[3][i], br.t)
		}
	} else {
		for i := range out {
			cr := spline.NewCentripetalCatmullRom(
				pos[0], pos[1], pos[2], pos[3],
				sp[0][i], sp[1][i], sp[2][i], sp[3][i])
			out[i] = cr.InterpolateY(br.angle)
		}
	}
	return out
}

// mirrorSpectrum reflects b across a slot-wise: 2*a - b. The result
// reuses a's storage, which fold allocates fresh.
func mirrorSpectrum(a, b Spectrum) Spectrum {
	for i := range a {
		a[i] = 2*a[i] - b[i]
	}
	return a
}
