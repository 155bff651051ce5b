package transform

import "github.com/bodgit/assetforge/pixel"

// Crop copies the region of src addressed by r. The region is clamped to
// the source first so any rectangle produces at least one pixel.
func Crop(src *pixel.Buffer, r pixel.Rect) (*pixel.Buffer, error) {
	if src.Empty() {
		return nil, pixel.ErrInvalidRegion
	}

	r, err := r.Clamp(src.Width(), src.Height())
	if err != nil {
		return nil, err
	}

	in := src.Samples()
	out := make([]pixel.RGBA, 0, r.Width*r.Height)
	for y := r.Y; y < r.Y+r.Height; y++ {
		i := y*src.Width() + r.X
		out = append(out, in[i:i+r.Width]...)
	}

	return pixel.FromSamples(r.Width, r.Height, out)
}
