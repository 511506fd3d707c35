// Package snapshot reads and writes the BSNP container, a compact
// binary serialization of sampled reflectance data. The header (angle
// grids, wavelengths, tags) is stored raw; the spectra block is
// zlib-compressed, falling back to raw storage when compression does
// not pay off.
package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/klauspost/compress/zlib"

	"github.com/mrjoshuak/go-brdf/brdf"
	"github.com/mrjoshuak/go-brdf/internal/xdr"
)

// Snapshot format errors.
var (
	ErrBadMagic           = errors.New("snapshot: bad magic")
	ErrUnsupportedVersion = errors.New("snapshot: unsupported version")
	ErrCorrupted          = errors.New("snapshot: corrupted data")
	ErrUnknownKind        = errors.New("snapshot: unknown payload kind")
	ErrUnknownCoordSys    = errors.New("snapshot: unknown coordinate system")
	ErrUnknownColorModel  = errors.New("snapshot: unknown color model")
)

var magic = [4]byte{'B', 'S', 'N', 'P'}

const version = 1

// Kind identifies the payload of a snapshot.
type Kind uint8

const (
	// KindBrdf is a 4-dimensional sample set bound to a coordinate
	// system.
	KindBrdf Kind = 1

	// KindSampleSet2D is a 2-dimensional sample set over a single
	// direction.
	KindSampleSet2D Kind = 2
)

// Spectra block encodings.
const (
	methodRaw  = 0
	methodZlib = 1
)

// Snapshot is a decoded BSNP container. Exactly one of Brdf and
// SampleSet2D is non-nil, matching Kind.
type Snapshot struct {
	Kind        Kind
	Brdf        *brdf.Brdf
	SampleSet2D *brdf.SampleSet2D
}

// Coordinate system tags.
const (
	coordSpherical      = 1
	coordSpecular       = 2
	coordHalfDifference = 3
)

func coordTag(cs brdf.CoordinateSystem) (uint8, error) {
	switch cs.(type) {
	case brdf.SphericalCoordinateSystem:
		return coordSpherical, nil
	case brdf.SpecularCoordinateSystem:
		return coordSpecular, nil
	case brdf.HalfDifferenceCoordinateSystem:
		return coordHalfDifference, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownCoordSys, cs.Name())
	}
}

func tagCoord(tag uint8) (brdf.CoordinateSystem, error) {
	switch tag {
	case coordSpherical:
		return brdf.SphericalCoordinateSystem{}, nil
	case coordSpecular:
		return brdf.SpecularCoordinateSystem{}, nil
	case coordHalfDifference:
		return brdf.HalfDifferenceCoordinateSystem{}, nil
	default:
		return nil, fmt.Errorf("%w: tag %d", ErrUnknownCoordSys, tag)
	}
}

// WriteBrdf serializes a BRDF and its sample set.
func WriteBrdf(w io.Writer, b *brdf.Brdf) error {
	tag, err := coordTag(b.CoordinateSystem())
	if err != nil {
		return err
	}
	ss := b.SampleSet()

	enc := xdr.NewWriter(256)
	writeHeader(enc, KindBrdf, tag, ss.ColorModel(), wavelengths(ss))
	for dim := 0; dim < 4; dim++ {
		enc.WriteUint32(uint32(ss.NumAngles(dim)))
	}
	for dim := 0; dim < 4; dim++ {
		enc.WriteFloat64Slice(ss.Angles(dim))
	}

	flat := xdr.NewWriter(8 * ss.NumWavelengths())
	for i0 := 0; i0 < ss.NumAngles(0); i0++ {
		for i1 := 0; i1 < ss.NumAngles(1); i1++ {
			for i2 := 0; i2 < ss.NumAngles(2); i2++ {
				for i3 := 0; i3 < ss.NumAngles(3); i3++ {
					flat.WriteFloat64Slice(ss.Spectrum(i0, i1, i2, i3))
				}
			}
		}
	}
	writeSpectraBlock(enc, flat.Bytes())

	_, err = w.Write(enc.Bytes())
	return err
}

// WriteSampleSet2D serializes a 2D sample set.
func WriteSampleSet2D(w io.Writer, ss *brdf.SampleSet2D) error {
	enc := xdr.NewWriter(256)
	writeHeader(enc, KindSampleSet2D, 0, ss.ColorModel(), wavelengths2D(ss))
	enc.WriteUint32(uint32(ss.NumTheta()))
	enc.WriteUint32(uint32(ss.NumPhi()))
	for i := 0; i < ss.NumTheta(); i++ {
		enc.WriteFloat64(ss.Theta(i))
	}
	for i := 0; i < ss.NumPhi(); i++ {
		enc.WriteFloat64(ss.Phi(i))
	}

	flat := xdr.NewWriter(8 * ss.NumWavelengths())
	for ti := 0; ti < ss.NumTheta(); ti++ {
		for pi := 0; pi < ss.NumPhi(); pi++ {
			flat.WriteFloat64Slice(ss.Spectrum(ti, pi))
		}
	}
	writeSpectraBlock(enc, flat.Bytes())

	_, err := w.Write(enc.Bytes())
	return err
}

// Read decodes a BSNP container and validates the resulting sample set.
func Read(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	dec := xdr.NewReader(data)

	head, err := dec.ReadBytes(4)
	if err != nil || !bytes.Equal(head, magic[:]) {
		return nil, ErrBadMagic
	}
	ver, err := dec.ReadUint8()
	if err != nil {
		return nil, ErrCorrupted
	}
	if ver != version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, ver)
	}
	kind, err := dec.ReadUint8()
	if err != nil {
		return nil, ErrCorrupted
	}
	coordByte, err := dec.ReadUint8()
	if err != nil {
		return nil, ErrCorrupted
	}
	colorByte, err := dec.ReadUint8()
	if err != nil {
		return nil, ErrCorrupted
	}
	cm := brdf.ColorModel(colorByte)
	if cm != brdf.Monochromatic && cm != brdf.RGB && cm != brdf.Spectral {
		return nil, fmt.Errorf("%w: tag %d", ErrUnknownColorModel, colorByte)
	}
	numWl, err := dec.ReadUint32()
	if err != nil {
		return nil, ErrCorrupted
	}
	wls, err := dec.ReadFloat64Slice(int(numWl))
	if err != nil {
		return nil, ErrCorrupted
	}

	switch Kind(kind) {
	case KindBrdf:
		return readBrdf(dec, coordByte, cm, wls)
	case KindSampleSet2D:
		return readSampleSet2D(dec, cm, wls)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
}

// ReadFile decodes a BSNP file.
func ReadFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

func readBrdf(dec *xdr.Reader, coordByte uint8, cm brdf.ColorModel, wls []float64) (*Snapshot, error) {
	coords, err := tagCoord(coordByte)
	if err != nil {
		return nil, err
	}

	var dims [4]int
	for dim := range dims {
		n, err := dec.ReadUint32()
		if err != nil {
			return nil, ErrCorrupted
		}
		// Each axis still owes n*8 bytes of angle data, so a count the
		// remaining input cannot hold is corruption, not a reason to
		// allocate.
		if n == 0 || int64(n)*8 > int64(dec.Len()) {
			return nil, ErrCorrupted
		}
		dims[dim] = int(n)
	}
	want, ok := spectraBytes(dims[:], len(wls))
	if !ok {
		return nil, ErrCorrupted
	}

	var angles [4][]float64
	for dim := range dims {
		angles[dim], err = dec.ReadFloat64Slice(dims[dim])
		if err != nil {
			return nil, ErrCorrupted
		}
	}
	flat, err := readSpectraBlock(dec, want)
	if err != nil {
		return nil, err
	}

	b, err := brdf.NewBrdf(coords, dims[0], dims[1], dims[2], dims[3], cm, len(wls))
	if err != nil {
		return nil, err
	}
	ss := b.SampleSet()
	for i, wl := range wls {
		ss.SetWavelength(i, wl)
	}
	for dim := range dims {
		for i, a := range angles[dim] {
			ss.SetAngle(dim, i, a)
		}
	}
	vals := xdr.NewReader(flat)
	for i0 := 0; i0 < dims[0]; i0++ {
		for i1 := 0; i1 < dims[1]; i1++ {
			for i2 := 0; i2 < dims[2]; i2++ {
				for i3 := 0; i3 < dims[3]; i3++ {
					sp, err := vals.ReadFloat64Slice(len(wls))
					if err != nil {
						return nil, ErrCorrupted
					}
					if err := ss.SetSpectrum(i0, i1, i2, i3, sp); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	ss.UpdateAngleAttributes()
	if err := ss.Validate(); err != nil {
		return nil, err
	}
	return &Snapshot{Kind: KindBrdf, Brdf: b}, nil
}

func readSampleSet2D(dec *xdr.Reader, cm brdf.ColorModel, wls []float64) (*Snapshot, error) {
	numTheta, err := dec.ReadUint32()
	if err != nil {
		return nil, ErrCorrupted
	}
	numPhi, err := dec.ReadUint32()
	if err != nil {
		return nil, ErrCorrupted
	}
	if numTheta == 0 || int64(numTheta)*8 > int64(dec.Len()) ||
		numPhi == 0 || int64(numPhi)*8 > int64(dec.Len()) {
		return nil, ErrCorrupted
	}
	want, ok := spectraBytes([]int{int(numTheta), int(numPhi)}, len(wls))
	if !ok {
		return nil, ErrCorrupted
	}

	thetas, err := dec.ReadFloat64Slice(int(numTheta))
	if err != nil {
		return nil, ErrCorrupted
	}
	phis, err := dec.ReadFloat64Slice(int(numPhi))
	if err != nil {
		return nil, ErrCorrupted
	}
	flat, err := readSpectraBlock(dec, want)
	if err != nil {
		return nil, err
	}

	ss, err := brdf.NewSampleSet2D(int(numTheta), int(numPhi), cm, len(wls), false)
	if err != nil {
		return nil, err
	}
	for i, wl := range wls {
		ss.SetWavelength(i, wl)
	}
	for i, a := range thetas {
		ss.SetTheta(i, a)
	}
	for i, a := range phis {
		ss.SetPhi(i, a)
	}
	vals := xdr.NewReader(flat)
	for ti := 0; ti < int(numTheta); ti++ {
		for pi := 0; pi < int(numPhi); pi++ {
			sp, err := vals.ReadFloat64Slice(len(wls))
			if err != nil {
				return nil, ErrCorrupted
			}
			if err := ss.SetSpectrum(ti, pi, sp); err != nil {
				return nil, err
			}
		}
	}

	ss.UpdateAngleAttributes()
	if err := ss.Validate(); err != nil {
		return nil, err
	}
	return &Snapshot{Kind: KindSampleSet2D, SampleSet2D: ss}, nil
}

func writeHeader(enc *xdr.Writer, kind Kind, coordByte uint8, cm brdf.ColorModel, wls []float64) {
	enc.WriteBytes(magic[:])
	enc.WriteUint8(version)
	enc.WriteUint8(uint8(kind))
	enc.WriteUint8(coordByte)
	enc.WriteUint8(uint8(cm))
	enc.WriteUint32(uint32(len(wls)))
	enc.WriteFloat64Slice(wls)
}

// writeSpectraBlock appends the spectra payload, zlib-compressed when
// that is smaller than the raw encoding.
func writeSpectraBlock(enc *xdr.Writer, raw []byte) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, _ = zw.Write(raw)
	_ = zw.Close()

	if buf.Len() < len(raw) {
		enc.WriteUint8(methodZlib)
		enc.WriteUint32(uint32(len(raw)))
		enc.WriteUint32(uint32(buf.Len()))
		enc.WriteBytes(buf.Bytes())
		return
	}
	enc.WriteUint8(methodRaw)
	enc.WriteUint32(uint32(len(raw)))
	enc.WriteUint32(uint32(len(raw)))
	enc.WriteBytes(raw)
}

// spectraBytes returns the byte size of the spectra payload implied by
// the angle counts, or false when the product does not fit the uint32
// raw-size field.
func spectraBytes(counts []int, numWl int) (int, bool) {
	want := uint64(numWl) * 8
	for _, n := range counts {
		if want > 0 && uint64(n) > math.MaxUint32/want {
			return 0, false
		}
		want *= uint64(n)
	}
	return int(want), true
}

// Deflate cannot expand its input by more than about 1032x, so a raw
// size beyond that bound cannot decode from the stored bytes.
const maxZlibExpansion = 1032

func readSpectraBlock(dec *xdr.Reader, want int) ([]byte, error) {
	method, err := dec.ReadUint8()
	if err != nil {
		return nil, ErrCorrupted
	}
	rawSize, err := dec.ReadUint32()
	if err != nil {
		return nil, ErrCorrupted
	}
	storedSize, err := dec.ReadUint32()
	if err != nil {
		return nil, ErrCorrupted
	}
	if int64(rawSize) != int64(want) {
		return nil, ErrCorrupted
	}
	stored, err := dec.ReadBytes(int(storedSize))
	if err != nil {
		return nil, ErrCorrupted
	}

	switch method {
	case methodRaw:
		if len(stored) != want {
			return nil, ErrCorrupted
		}
		return stored, nil
	case methodZlib:
		if int64(want) > int64(len(stored))*maxZlibExpansion {
			return nil, ErrCorrupted
		}
		zr, err := zlib.NewReader(bytes.NewReader(stored))
		if err != nil {
			return nil, ErrCorrupted
		}
		defer zr.Close()
		out := make([]byte, want)
		if _, err := io.ReadFull(zr, out); err != nil {
			return nil, ErrCorrupted
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: spectra encoding %d", ErrCorrupted, method)
	}
}

func wavelengths(ss *brdf.SampleSet) []float64 {
	out := make([]float64, ss.NumWavelengths())
	for i := range out {
		out[i] = ss.Wavelength(i)
	}
	return out
}

func wavelengths2D(ss *brdf.SampleSet2D) []float64 {
	out := make([]float64, ss.NumWavelengths())
	for i := range out {
		out[i] = ss.Wavelength(i)
	}
	return out
}
