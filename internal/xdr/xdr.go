// Package xdr provides little-endian binary encoding and decoding
// utilities for the snapshot container format. All readers are
// bounds-checked; the writer grows its buffer as needed.
package xdr

import (
	"encoding/binary"
	"errors"
	"math"
)

var (
	// ErrShortBuffer is returned when a read cannot complete because
	// the buffer ends early.
	ErrShortBuffer = errors.New("xdr: buffer too short")

	// ErrNegativeSize is returned when a size parameter is negative.
	ErrNegativeSize = errors.New("xdr: negative size")
)

// ByteOrder is the byte order of the snapshot format.
var ByteOrder = binary.LittleEndian

// Reader provides bounds-checked little-endian reading from a byte
// slice.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader over a byte slice.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	if r.pos >= len(r.data) {
		return 0
	}
	return len(r.data) - r.pos
}

// ReadUint8 reads one byte.
func (r *Reader) ReadUint8() (uint8, error) {
	if r.pos+1 > len(r.data) {
		return 0, ErrShortBuffer
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

// ReadUint32 reads a little-endian uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	if r.pos+4 > len(r.data) {
		return 0, ErrShortBuffer
	}
	v := ByteOrder.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadFloat64 reads a little-endian float64.
func (r *Reader) ReadFloat64() (float64, error) {
	if r.pos+8 > len(r.data) {
		return 0, ErrShortBuffer
	}
	v := math.Float64frombits(ByteOrder.Uint64(r.data[r.pos:]))
	r.pos += 8
	return v, nil
}

// ReadFloat64Slice reads n little-endian float64 values.
func (r *Reader) ReadFloat64Slice(n int) ([]float64, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	if r.pos+8*n > len(r.data) {
		return nil, ErrShortBuffer
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Float64frombits(ByteOrder.Uint64(r.data[r.pos:]))
		r.pos += 8
	}
	return out, nil
}

// ReadBytes reads n raw bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	if r.pos+n > len(r.data) {
		return nil, ErrShortBuffer
	}
	out := r.data[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

// Writer accumulates little-endian binary data in a growable buffer.
type Writer struct {
	buf []byte
}

// NewWriter creates a Writer with the given initial capacity.
func NewWriter(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity)}
}

// Bytes returns the written data.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of written bytes.
func (w *Writer) Len() int { return len(w.buf) }

// WriteUint8 writes one byte.
func (w *Writer) WriteUint8(v uint8) {
	w.buf = append(w.buf, v)
}

// WriteUint32 writes a little-endian uint32.
func (w *Writer) WriteUint32(v uint32) {
	w.buf = ByteOrder.AppendUint32(w.buf, v)
}

// WriteFloat64 writes a little-endian float64.
func (w *Writer) WriteFloat64(v float64) {
	w.buf = ByteOrder.AppendUint64(w.buf, math.Float64bits(v))
}

// WriteFloat64Slice writes each value as a little-endian float64.
func (w *Writer) WriteFloat64Slice(vs []float64) {
	for _, v := range vs {
		w.WriteFloat64(v)
	}
}

// WriteBytes writes raw bytes.
func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}
