/*
Package pixel implements the in-memory raster model shared by every stage of
the asset pipeline.

A Buffer is a rectangular grid of straight (non-premultiplied) RGBA samples,
each channel a float64 normally in the range [0, 1]. Samples are stored row
major with the origin at the top-left corner and y increasing downwards.
*/
package pixel

import "errors"

var (
	// ErrInvalidRegion is returned when a crop rectangle cannot be clamped
	// to a non-empty area.
	ErrInvalidRegion = errors.New("pixel: invalid region")
	// ErrInvalidTargetSize is returned when a requested output dimension is
	// less than one pixel.
	ErrInvalidTargetSize = errors.New("pixel: invalid target size")
	// ErrInvalidCanvasSize is returned for a canvas with a non-positive
	// dimension. It matches ErrInvalidTargetSize with errors.Is.
	ErrInvalidCanvasSize error = &sizeError{"pixel: invalid canvas size"}
	// ErrEmptyGradient is returned when a gradient has no stops.
	ErrEmptyGradient = errors.New("pixel: empty gradient")
	// ErrDimensionMismatch is returned when a sample slice does not hold
	// exactly width*height samples.
	ErrDimensionMismatch = errors.New("pixel: dimension mismatch")
	// ErrInvalidSampleCount is returned when fewer than one palette sample
	// is requested.
	ErrInvalidSampleCount = errors.New("pixel: invalid sample count")
	// ErrInvalidTolerance is returned for a negative or NaN keying
	// tolerance.
	ErrInvalidTolerance = errors.New("pixel: invalid tolerance")
)

type sizeError struct {
	msg string
}

func (e *sizeError) Error() string {
	return e.msg
}

func (e *sizeError) Is(target error) bool {
	return target == ErrInvalidTargetSize
}
