package transform

import (
	"math/rand"
	"testing"

	"github.com/bodgit/assetforge/pixel"
	"github.com/stretchr/testify/require"
)

func solid(t *testing.T, width, height int, c pixel.RGBA) *pixel.Buffer {
	t.Helper()
	b, err := pixel.New(width, height)
	require.NoError(t, err)
	b.Fill(c)
	return b
}

// gradientBuffer encodes each pixel's coordinates in its red and green
// channels so resampling can be traced back to the source.
func gradientBuffer(t *testing.T, width, height int) *pixel.Buffer {
	t.Helper()
	b, err := pixel.New(width, height)
	require.NoError(t, err)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			b.Set(x, y, pixel.RGBA{
				R: float64(x) / float64(width),
				G: float64(y) / float64(height),
				B: 0.5,
				A: 1,
			})
		}
	}
	return b
}

var palette = []pixel.RGBA{
	pixel.Magenta,
	pixel.Black,
	pixel.White,
	pixel.RGB(0.2, 0.6, 0.4),
	{R: 1, G: 0, B: 1, A: 0.5},
}

func randomBuffer(t *testing.T, r *rand.Rand, width, height int) *pixel.Buffer {
	t.Helper()
	b, err := pixel.New(width, height)
	require.NoError(t, err)
	for i := range b.Samples() {
		b.Samples()[i] = palette[r.Intn(len(palette))]
	}
	return b
}
