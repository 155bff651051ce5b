package pixel

import (
	"image/color"
	"math"
)

// RGBA is a straight alpha color sample with each channel in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors
var (
	Black       = RGBA{0, 0, 0, 1}
	White       = RGBA{1, 1, 1, 1}
	Red         = RGBA{1, 0, 0, 1}
	Green       = RGBA{0, 1, 0, 1}
	Blue        = RGBA{0, 0, 1, 1}
	Magenta     = RGBA{1, 0, 1, 1}
	Transparent = RGBA{}
)

// RGB returns an opaque color.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Lerp linearly interpolates every channel between c and other. No gamma
// conversion is applied.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Luma returns the perceptual brightness of the color, ignoring alpha, using
// the 0.299/0.587/0.114 weights.
func (c RGBA) Luma() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// DistanceRGB returns the Euclidean distance between the RGB channels of c
// and other. Alpha is not considered.
func (c RGBA) DistanceRGB(other RGBA) float64 {
	dr := c.R - other.R
	dg := c.G - other.G
	db := c.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Opaque returns c with alpha set to 1.
func (c RGBA) Opaque() RGBA {
	c.A = 1
	return c
}

// Clamp restricts every channel to [0, 1]. NaN becomes 0.
func (c RGBA) Clamp() RGBA {
	return RGBA{
		R: Clamp01(c.R),
		G: Clamp01(c.G),
		B: Clamp01(c.B),
		A: Clamp01(c.A),
	}
}

// Color converts c to a color.NRGBA, clamping each channel first.
func (c RGBA) Color() color.NRGBA {
	c = c.Clamp()
	return color.NRGBA{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: uint8(math.Round(c.A * 255)),
	}
}

// FromColor converts any color.Color to a straight alpha RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

// Clamp01 restricts x to [0, 1]. NaN becomes 0.
func Clamp01(x float64) float64 {
	switch {
	case x > 1:
		return 1
	case x >= 0:
		return x
	default:
		return 0
	}
}
