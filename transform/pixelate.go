package transform

import "github.com/bodgit/assetforge/pixel"

// PixelatedHeight returns the height Pixelate produces for a source of the
// given dimensions scaled to width.
func PixelatedHeight(srcWidth, srcHeight, width int) int {
	h := round(float64(width) * float64(srcHeight) / float64(srcWidth))
	if h < 1 {
		return 1
	}
	return h
}

// Pixelate resamples src to the given width using nearest neighbour
// sampling. The height follows from the source aspect ratio. Samples are
// copied verbatim so hard pixel edges are preserved.
func Pixelate(src *pixel.Buffer, width int) (*pixel.Buffer, error) {
	if width < 1 {
		return nil, pixel.ErrInvalidTargetSize
	}
	if src.Empty() {
		return nil, pixel.ErrInvalidRegion
	}

	sw, sh := src.Width(), src.Height()
	height := PixelatedHeight(sw, sh, width)

	in := src.Samples()
	out := make([]pixel.RGBA, width*height)
	for y := 0; y < height; y++ {
		// floor(y/height * sh) computed exactly in integers
		sy := clampInt(y*sh/height, 0, sh-1)
		for x := 0; x < width; x++ {
			sx := clampInt(x*sw/width, 0, sw-1)
			out[y*width+x] = in[sy*sw+sx]
		}
	}

	return pixel.FromSamples(width, height, out)
}
