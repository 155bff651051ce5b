package codec

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/bodgit/assetforge/pixel"
	"github.com/ericpauley/go-quantize/quantize"
)

// Options are the encoding parameters.
type Options struct {
	// Colors, when non-zero, limits the output to a palette of at most
	// this many colors.
	Colors int
	// CompressionLevel is passed through to the PNG encoder.
	CompressionLevel png.CompressionLevel
}

func hasTransparency(m *image.NRGBA) bool {
	for i := 3; i < len(m.Pix); i += 4 {
		if m.Pix[i] == 0 {
			return true
		}
	}
	return false
}

func paletted(m *image.NRGBA, colors int) *image.Paletted {
	b := m.Bounds()
	q := quantize.MedianCutQuantizer{
		AddTransparent: hasTransparency(m),
	}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, colors), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)
	return pm
}

// Encode writes the buffer b to w in PNG format. A nil *Options is
// equivalent to the zero value.
func Encode(w io.Writer, b *pixel.Buffer, o *Options) error {
	if b.Empty() {
		return ErrEmptyImage
	}
	if o == nil {
		o = &Options{}
	}
	if o.Colors < 0 || o.Colors > maxColors {
		return ErrTooManyColors
	}

	var m image.Image = b.Image()
	if o.Colors > 0 {
		m = paletted(m.(*image.NRGBA), o.Colors)
	}

	e := png.Encoder{CompressionLevel: o.CompressionLevel}

	return e.Encode(w, m)
}
