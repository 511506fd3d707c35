package brdf

import (
	"errors"
	"fmt"
)

// Core errors. Structured error types below wrap these sentinels so
// callers can match with errors.Is.
var (
	// ErrInvalidDirection is returned when a query direction violates a
	// precondition, such as an incoming direction below the surface.
	ErrInvalidDirection = errors.New("brdf: invalid direction")

	// ErrInvalidSize is returned when a dimension or wavelength count is
	// not a positive integer, or conflicts with the color model.
	ErrInvalidSize = errors.New("brdf: invalid size")

	// ErrDimensionMismatch is returned when an angle grid, spectrum, or
	// wavelength axis does not match the stored tensor shape.
	ErrDimensionMismatch = errors.New("brdf: dimension mismatch")

	// ErrColorModelMismatch is returned when two sample sets with
	// different color models or wavelength axes are combined.
	ErrColorModelMismatch = errors.New("brdf: color model mismatch")

	// ErrAngleOrder is returned by Validate when an angle axis is not
	// strictly increasing.
	ErrAngleOrder = errors.New("brdf: angles not strictly increasing")
)

// DimensionMismatchError reports a shape that does not match the stored
// sample tensor. Axis names the offending axis ("angle0".."angle3",
// "theta", "phi", "spectra", or "wavelengths").
type DimensionMismatchError struct {
	Axis string
	Want int
	Got  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("brdf: %s dimension mismatch: want %d, got %d", e.Axis, e.Want, e.Got)
}

func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }

// ColorModelMismatchError reports two sample sets whose color models or
// wavelength axes differ.
type ColorModelMismatchError struct {
	A, B ColorModel
}

func (e *ColorModelMismatchError) Error() string {
	return fmt.Sprintf("brdf: color model mismatch: %s vs %s", e.A, e.B)
}

func (e *ColorModelMismatchError) Unwrap() error { return ErrColorModelMismatch }
