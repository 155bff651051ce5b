package transform

import (
	"math/rand"
	"testing"

	"github.com/bodgit/assetforge/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fire = pixel.Gradient{
	pixel.Black,
	pixel.Red,
	pixel.RGB(1, 1, 0),
	pixel.White,
}

func TestQuantizeRange(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	b, err := pixel.New(16, 16)
	require.NoError(t, err)
	for i := range b.Samples() {
		b.Samples()[i] = pixel.RGBA{R: r.Float64(), G: r.Float64(), B: r.Float64(), A: r.Float64()}
	}

	for _, n := range []int{1, 2, 3, 5, 16} {
		samples, err := fire.Samples(n)
		require.NoError(t, err)

		q, err := Quantize(b, QuantizeOptions{Gradient: fire, SampleCount: n, BrightnessOffset: 0.1})
		require.NoError(t, err)
		require.Equal(t, b.Width(), q.Width())
		require.Equal(t, b.Height(), q.Height())

		for i, c := range q.Samples() {
			assert.Equal(t, b.Samples()[i].A, c.A)
			c.A = 1
			found := false
			for _, s := range samples {
				s.A = 1
				if s == c {
					found = true
					break
				}
			}
			assert.True(t, found, "%v not in palette of %d", c, n)
		}
	}
}

func TestQuantizeHueIndependent(t *testing.T) {
	// Same luma, different hue
	a := pixel.RGB(0.5, 0.5, 0.5)
	b := pixel.RGB(0.5+0.114, 0.5, 0.5-0.299)

	src := solid(t, 2, 1, a)
	src.Set(1, 0, b)
	require.InDelta(t, a.Luma(), b.Luma(), 1e-12)

	q, err := Quantize(src, QuantizeOptions{Gradient: fire, SampleCount: 8})
	require.NoError(t, err)
	assert.Equal(t, q.At(0, 0), q.At(1, 0))
}

func TestQuantizeMonotonic(t *testing.T) {
	for _, n := range []int{1, 2, 4, 9, 256} {
		for _, offset := range []float64{-0.5, 0, 0.25} {
			last := 0
			for i := 0; i <= 1000; i++ {
				idx := SampleIndex(float64(i)/1000, offset, n)
				assert.GreaterOrEqual(t, idx, last)
				assert.True(t, idx >= 0 && idx < n)
				last = idx
			}
		}
	}
}

func TestQuantizeIndex(t *testing.T) {
	tables := []struct {
		luma, offset float64
		n, index     int
	}{
		{0, 0, 4, 0},
		{1, 0, 4, 3},
		{0.5, 0, 4, 1},
		{0.5, 0.2, 4, 2},
		{0.9, 0.5, 4, 3},
		{0.1, -0.5, 4, 0},
		{0.7, 0, 1, 0},
		{pixel.White.Luma(), 0, 16, 15},
		{pixel.White.Luma(), 0, 256, 255},
	}

	for _, table := range tables {
		assert.Equal(t, table.index, SampleIndex(table.luma, table.offset, table.n))
	}
}

func TestQuantizeGreyBoundaries(t *testing.T) {
	tables := []struct {
		grey     float64
		n, index int
	}{
		{17.0 / 255, 16, 1},
		{16.0 / 255, 16, 0},
		{34.0 / 255, 16, 2},
		{254.0 / 255, 16, 14},
		{1, 16, 15},
		{0, 16, 0},
	}

	for _, table := range tables {
		c := pixel.RGB(table.grey, table.grey, table.grey)
		assert.Equal(t, 0.299*c.R+0.587*c.G+0.114*c.B, c.Luma())
		assert.Equal(t, table.index, SampleIndex(c.Luma(), 0, table.n), table.grey)
	}
}

func TestQuantizeExtremes(t *testing.T) {
	src := solid(t, 2, 1, pixel.Black)
	src.Set(1, 0, pixel.White)

	q, err := Quantize(src, QuantizeOptions{Gradient: fire, SampleCount: 4})
	require.NoError(t, err)
	assert.Equal(t, pixel.Black, q.At(0, 0))
	assert.Equal(t, pixel.White, q.At(1, 0))
}

func TestQuantizeErrors(t *testing.T) {
	src := solid(t, 2, 2, pixel.Black)

	_, err := Quantize(src, QuantizeOptions{SampleCount: 4})
	assert.Equal(t, pixel.ErrEmptyGradient, err)

	_, err = Quantize(src, QuantizeOptions{Gradient: fire})
	assert.Equal(t, pixel.ErrInvalidSampleCount, err)

	_, err = Quantize(nil, QuantizeOptions{Gradient: fire, SampleCount: 2})
	assert.Equal(t, pixel.ErrInvalidRegion, err)
}
