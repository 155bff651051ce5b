package pixel

import "image"

// Buffer is a rectangular pixel buffer. The zero value is an empty buffer
// that every transform rejects.
type Buffer struct {
	width   int
	height  int
	samples []RGBA
}

// New returns a transparent buffer of the given dimensions.
func New(width, height int) (*Buffer, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidTargetSize
	}
	return &Buffer{
		width:   width,
		height:  height,
		samples: make([]RGBA, width*height),
	}, nil
}

// FromSamples wraps samples, which must be exactly width*height long and in
// row major order. The buffer takes ownership of the slice.
func FromSamples(width, height int, samples []RGBA) (*Buffer, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidTargetSize
	}
	if len(samples) != width*height {
		return nil, ErrDimensionMismatch
	}
	return &Buffer{
		width:   width,
		height:  height,
		samples: samples,
	}, nil
}

// Width returns the width of the buffer.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer.
func (b *Buffer) Height() int {
	return b.height
}

// Empty reports whether b is nil or has no samples.
func (b *Buffer) Empty() bool {
	return b == nil || b.width < 1 || b.height < 1 || len(b.samples) != b.width*b.height
}

// Samples returns the underlying row major samples. Callers must not modify
// them unless they own the buffer.
func (b *Buffer) Samples() []RGBA {
	return b.samples
}

// In reports whether (x, y) addresses a sample.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the sample at (x, y), or Transparent when out of range.
func (b *Buffer) At(x, y int) RGBA {
	if !b.In(x, y) {
		return Transparent
	}
	return b.samples[y*b.width+x]
}

// Set stores c at (x, y). Out of range coordinates are ignored.
func (b *Buffer) Set(x, y int, c RGBA) {
	if !b.In(x, y) {
		return
	}
	b.samples[y*b.width+x] = c
}

// Fill sets every sample to c.
func (b *Buffer) Fill(c RGBA) {
	for i := range b.samples {
		b.samples[i] = c
	}
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	samples := make([]RGBA, len(b.samples))
	copy(samples, b.samples)
	return &Buffer{
		width:   b.width,
		height:  b.height,
		samples: samples,
	}
}

// Equal reports whether b and o have the same dimensions and bitwise equal
// samples.
func (b *Buffer) Equal(o *Buffer) bool {
	if b.width != o.width || b.height != o.height || len(b.samples) != len(o.samples) {
		return false
	}
	for i := range b.samples {
		if b.samples[i] != o.samples[i] {
			return false
		}
	}
	return true
}

// Image converts b to an *image.NRGBA with every channel clamped.
func (b *Buffer) Image() *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			m.SetNRGBA(x, y, b.samples[y*b.width+x].Color())
		}
	}
	return m
}

// FromImage converts m to a buffer. The top-left corner of m's bounds
// becomes (0, 0).
func FromImage(m image.Image) (*Buffer, error) {
	r := m.Bounds()
	b, err := New(r.Dx(), r.Dy())
	if err != nil {
		return nil, err
	}

	// Fast path for the common decoder output
	if n, ok := m.(*image.NRGBA); ok {
		for y := 0; y < b.height; y++ {
			for x := 0; x < b.width; x++ {
				c := n.NRGBAAt(r.Min.X+x, r.Min.Y+y)
				b.samples[y*b.width+x] = RGBA{
					R: float64(c.R) / 0xff,
					G: float64(c.G) / 0xff,
					B: float64(c.B) / 0xff,
					A: float64(c.A) / 0xff,
				}
			}
		}
		return b, nil
	}

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.samples[y*b.width+x] = FromColor(m.At(r.Min.X+x, r.Min.Y+y))
		}
	}
	return b, nil
}
