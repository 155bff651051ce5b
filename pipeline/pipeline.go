/*
Package pipeline chains the buffer transforms into a single pass that turns
a decoded source image into a finished asset of a given class.

The stages always run in the same order:

	crop → pixelate | quantize → key → resize to canvas

Cropping, the style stage and keying are optional; resizing onto the class
canvas always happens last. Run keeps no state between calls.
*/
package pipeline

import (
	"errors"
	"math"

	"github.com/bodgit/assetforge/pixel"
	"github.com/bodgit/assetforge/transform"
)

var (
	// ErrUnknownClass is returned for an unrecognised asset class.
	ErrUnknownClass = errors.New("pipeline: unknown asset class")
	// ErrConflictingStyles is returned when both pixelation and
	// quantization are requested.
	ErrConflictingStyles = errors.New("pipeline: pixelate and quantize are mutually exclusive")
)

// PixelateOptions selects the pixel art style.
type PixelateOptions struct {
	TargetWidth int
}

// Config describes one pipeline run.
type Config struct {
	Class Class
	// Crop, in top-left origin source pixels, is applied first when set.
	Crop *pixel.Rect
	// At most one of Pixelate and Quantize may be set.
	Pixelate *PixelateOptions
	Quantize *transform.QuantizeOptions
	// Key seeds are in the coordinates of the buffer reaching the key
	// stage, after any crop and pixelation.
	Key *transform.KeyOptions
	// Canvas overrides the preset size for Class.
	Canvas     *Canvas
	Background pixel.RGBA
}

// DefaultBackground is used by NewConfig.
var DefaultBackground = pixel.White

// NewConfig returns a configuration for class with the default background
// and no optional stages.
func NewConfig(class Class) *Config {
	return &Config{
		Class:      class,
		Background: DefaultBackground,
	}
}

// CanvasSize returns the size of the final canvas for c. The class must be
// known even when Canvas overrides its preset.
func (c *Config) CanvasSize() (Canvas, error) {
	canvas, err := c.Class.Canvas()
	if err != nil {
		return Canvas{}, err
	}
	if c.Canvas != nil {
		canvas = *c.Canvas
	}
	return canvas, nil
}

// Validate checks every option in c without touching any pixels, returning
// the same error the failing stage would.
func (c *Config) Validate() error {
	if c.Pixelate != nil && c.Quantize != nil {
		return ErrConflictingStyles
	}
	canvas, err := c.CanvasSize()
	if err != nil {
		return err
	}
	if canvas.Width < 1 || canvas.Height < 1 {
		return pixel.ErrInvalidCanvasSize
	}
	if c.Pixelate != nil && c.Pixelate.TargetWidth < 1 {
		return pixel.ErrInvalidTargetSize
	}
	if c.Quantize != nil {
		if _, err := c.Quantize.Gradient.Samples(c.Quantize.SampleCount); err != nil {
			return err
		}
	}
	if c.Key != nil && (c.Key.Tolerance < 0 || math.IsNaN(c.Key.Tolerance)) {
		return pixel.ErrInvalidTolerance
	}
	return nil
}

// Run applies every configured stage to src and returns the finished asset.
// The first stage error is returned as is.
func Run(src *pixel.Buffer, c *Config) (*pixel.Buffer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	canvas, err := c.CanvasSize()
	if err != nil {
		return nil, err
	}

	b := src

	if c.Crop != nil {
		if b, err = transform.Crop(b, *c.Crop); err != nil {
			return nil, err
		}
	}

	switch {
	case c.Pixelate != nil:
		if b, err = transform.Pixelate(b, c.Pixelate.TargetWidth); err != nil {
			return nil, err
		}
	case c.Quantize != nil:
		if b, err = transform.Quantize(b, *c.Quantize); err != nil {
			return nil, err
		}
	}

	if c.Key != nil {
		if b, err = transform.Key(b, *c.Key); err != nil {
			return nil, err
		}
	}

	return transform.ResizeToCanvas(b, canvas.Width, canvas.Height, c.Background)
}
