package transform

import (
	"math/rand"
	"testing"

	"github.com/bodgit/assetforge/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCropFullRegion(t *testing.T) {
	b := gradientBuffer(t, 7, 5)

	c, err := Crop(b, pixel.Rect{X: 0, Y: 0, Width: 7, Height: 5})
	require.NoError(t, err)
	assert.True(t, c.Equal(b))

	// The result must not alias the source
	c.Set(0, 0, pixel.Red)
	assert.NotEqual(t, pixel.Red, b.At(0, 0))
}

func TestCropRegion(t *testing.T) {
	b := gradientBuffer(t, 8, 6)

	c, err := Crop(b, pixel.Rect{X: 2, Y: 1, Width: 3, Height: 4})
	require.NoError(t, err)
	assert.Equal(t, 3, c.Width())
	assert.Equal(t, 4, c.Height())
	for y := 0; y < 4; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, b.At(x+2, y+1), c.At(x, y))
		}
	}
}

func TestCropClamps(t *testing.T) {
	b := gradientBuffer(t, 8, 6)

	tables := []struct {
		in            pixel.Rect
		width, height int
		origin        [2]int
	}{
		{pixel.Rect{X: -3, Y: -3, Width: 5, Height: 5}, 5, 5, [2]int{0, 0}},
		{pixel.Rect{X: 6, Y: 4, Width: 10, Height: 10}, 2, 2, [2]int{6, 4}},
		{pixel.Rect{X: 100, Y: 100, Width: 0, Height: 0}, 1, 1, [2]int{7, 5}},
	}

	for _, table := range tables {
		c, err := Crop(b, table.in)
		require.NoError(t, err)
		assert.Equal(t, table.width, c.Width())
		assert.Equal(t, table.height, c.Height())
		assert.Equal(t, b.At(table.origin[0], table.origin[1]), c.At(0, 0))
	}
}

func TestCropComposition(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	b := gradientBuffer(t, 40, 30)

	for i := 0; i < 50; i++ {
		r1 := pixel.Rect{X: r.Intn(20), Y: r.Intn(15), Width: 1 + r.Intn(20), Height: 1 + r.Intn(15)}
		r2 := pixel.Rect{X: r.Intn(r1.Width), Y: r.Intn(r1.Height)}
		r2.Width = 1 + r.Intn(r1.Width-r2.X)
		r2.Height = 1 + r.Intn(r1.Height-r2.Y)

		c1, err := Crop(b, r1)
		require.NoError(t, err)
		c2, err := Crop(c1, r2)
		require.NoError(t, err)

		direct, err := Crop(b, r2.Within(r1))
		require.NoError(t, err)
		assert.True(t, direct.Equal(c2), "%v then %v", r1, r2)
	}
}

func TestCropEmptySource(t *testing.T) {
	_, err := Crop(nil, pixel.Rect{Width: 1, Height: 1})
	assert.Equal(t, pixel.ErrInvalidRegion, err)

	_, err = Crop(new(pixel.Buffer), pixel.Rect{Width: 1, Height: 1})
	assert.Equal(t, pixel.ErrInvalidRegion, err)
}
