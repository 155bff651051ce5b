package transform

import (
	"math"

	"github.com/bodgit/assetforge/pixel"
)

// FitSize returns the largest size with the aspect ratio of a srcWidth by
// srcHeight image that fits within width by height. Neither dimension is
// smaller than one pixel.
func FitSize(srcWidth, srcHeight, width, height int) (int, int) {
	s := math.Min(float64(width)/float64(srcWidth), float64(height)/float64(srcHeight))
	return clampInt(round(float64(srcWidth)*s), 1, width), clampInt(round(float64(srcHeight)*s), 1, height)
}

// ResizeToCanvas scales src uniformly to fit a width by height canvas,
// centres it and fills the remaining area with background. Partially
// transparent pixels are composited over the background and every output
// pixel is fully opaque.
func ResizeToCanvas(src *pixel.Buffer, width, height int, background pixel.RGBA) (*pixel.Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, pixel.ErrInvalidCanvasSize
	}
	if src.Empty() {
		return nil, pixel.ErrInvalidRegion
	}

	sw, sh := FitSize(src.Width(), src.Height(), width, height)
	scaled := bilinear(src, sw, sh)

	bg := background.Opaque()
	out := make([]pixel.RGBA, width*height)
	for i := range out {
		out[i] = bg
	}

	ox, oy := (width-sw)/2, (height-sh)/2
	for y := 0; y < sh; y++ {
		for x := 0; x < sw; x++ {
			c := scaled[y*sw+x]
			if c.A < 1 {
				c = bg.Lerp(c, c.A)
			}
			c.A = 1
			out[(oy+y)*width+ox+x] = c
		}
	}

	return pixel.FromSamples(width, height, out)
}

// bilinear resamples src to width by height. Destination pixel centres are
// mapped onto source pixel centres and the four surrounding samples are
// blended by their fractional offsets, clamping at the edges. Channels are
// blended as stored without any gamma conversion.
func bilinear(src *pixel.Buffer, width, height int) []pixel.RGBA {
	sw, sh := src.Width(), src.Height()
	in := src.Samples()
	out := make([]pixel.RGBA, width*height)

	xScale := float64(sw) / float64(width)
	yScale := float64(sh) / float64(height)

	for y := 0; y < height; y++ {
		fy := (float64(y)+0.5)*yScale - 0.5
		y0 := math.Floor(fy)
		ty := fy - y0
		r0 := clampInt(int(y0), 0, sh-1) * sw
		r1 := clampInt(int(y0)+1, 0, sh-1) * sw

		for x := 0; x < width; x++ {
			fx := (float64(x)+0.5)*xScale - 0.5
			x0 := math.Floor(fx)
			tx := fx - x0
			c0 := clampInt(int(x0), 0, sw-1)
			c1 := clampInt(int(x0)+1, 0, sw-1)

			top := in[r0+c0].Lerp(in[r0+c1], tx)
			bottom := in[r1+c0].Lerp(in[r1+c1], tx)
			out[y*width+x] = top.Lerp(bottom, ty)
		}
	}

	return out
}
