package transform

import (
	"math"

	"github.com/bodgit/assetforge/pixel"
)

// QuantizeOptions configures Quantize.
type QuantizeOptions struct {
	Gradient pixel.Gradient
	// SampleCount is the number of discrete colors taken from Gradient.
	SampleCount int
	// BrightnessOffset is added to each pixel's luma before lookup.
	BrightnessOffset float64
}

// The luma weights sum to one less a rounding error, so white lands just
// short of 1.
const topSnap = 1e-9

// SampleIndex maps a luma value plus offset to one of n palette indices.
// Brightness within topSnap of 1 is treated as 1.
func SampleIndex(luma, offset float64, n int) int {
	b := pixel.Clamp01(luma + offset)
	if b > 1-topSnap {
		b = 1
	}
	return clampInt(int(math.Floor(b*float64(n-1))), 0, n-1)
}

// Quantize posterizes src onto colors sampled from a gradient. Each pixel is
// ranked by luma alone, so colors of equal brightness always map to the same
// output regardless of hue. Source alpha is preserved.
func Quantize(src *pixel.Buffer, o QuantizeOptions) (*pixel.Buffer, error) {
	palette, err := o.Gradient.Samples(o.SampleCount)
	if err != nil {
		return nil, err
	}
	if src.Empty() {
		return nil, pixel.ErrInvalidRegion
	}

	in := src.Samples()
	out := make([]pixel.RGBA, len(in))
	for i, c := range in {
		q := palette[SampleIndex(c.Luma(), o.BrightnessOffset, len(palette))]
		q.A = c.A
		out[i] = q
	}

	return pixel.FromSamples(src.Width(), src.Height(), out)
}
