package pixel

import (
	"fmt"
	"image"
)

// Rect is an integer region in top-left origin pixel coordinates.
type Rect struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Clamp restricts r to a source of the given dimensions, guaranteeing a
// region of at least one pixel that lies entirely inside the source.
func (r Rect) Clamp(width, height int) (Rect, error) {
	if width < 1 || height < 1 {
		return Rect{}, ErrInvalidRegion
	}
	r.X = clampInt(r.X, 0, width-1)
	r.Y = clampInt(r.Y, 0, height-1)
	r.Width = clampInt(r.Width, 1, width-r.X)
	r.Height = clampInt(r.Height, 1, height-r.Y)
	return r, nil
}

// FlipY converts a region given with the origin at the bottom-left corner of
// a source of the given height into top-left origin coordinates. The
// conversion is its own inverse.
func (r Rect) FlipY(height int) Rect {
	r.Y = height - r.Y - r.Height
	return r
}

// Within translates r, expressed relative to outer, into the coordinate
// space outer is expressed in.
func (r Rect) Within(outer Rect) Rect {
	r.X += outer.X
	r.Y += outer.Y
	return r
}

// Image returns r as an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

func (r Rect) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", r.X, r.Y, r.Width, r.Height)
}

// ParseRect parses a rectangle written as "x,y,width,height".
func ParseRect(s string) (Rect, error) {
	var r Rect
	if _, err := fmt.Sscanf(s, "%d,%d,%d,%d", &r.X, &r.Y, &r.Width, &r.Height); err != nil {
		return Rect{}, fmt.Errorf("pixel: bad rectangle %q: %w", s, err)
	}
	return r, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
