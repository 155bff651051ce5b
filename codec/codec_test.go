package codec

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/bodgit/assetforge/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func testBuffer(t *testing.T) *pixel.Buffer {
	t.Helper()
	b, err := pixel.New(4, 3)
	require.NoError(t, err)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			b.Set(x, y, pixel.RGBA{
				R: float64(x*60) / 255,
				G: float64(y*100) / 255,
				B: 1,
				A: float64(255-x*10) / 255,
			})
		}
	}
	return b
}

func TestEncodeDecode(t *testing.T) {
	b := testBuffer(t)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, b, nil))

	cfg, format, err := DecodeConfig(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 4, cfg.Width)
	assert.Equal(t, 3, cfg.Height)

	d, format, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	require.Equal(t, b.Width(), d.Width())
	require.Equal(t, b.Height(), d.Height())
	for i, c := range b.Samples() {
		assert.Equal(t, c.Color(), d.Samples()[i].Color())
	}
}

func TestEncodePaletted(t *testing.T) {
	b, err := pixel.New(8, 8)
	require.NoError(t, err)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x < 4 {
				b.Set(x, y, pixel.Red)
			} else {
				b.Set(x, y, pixel.Blue)
			}
		}
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, b, &Options{Colors: 4}))

	m, err := png.Decode(&buf)
	require.NoError(t, err)
	pm, ok := m.(*image.Paletted)
	require.True(t, ok)
	assert.LessOrEqual(t, len(pm.Palette), 4)

	assert.Equal(t, color.RGBAModel.Convert(color.NRGBA{0xff, 0, 0, 0xff}), color.RGBAModel.Convert(pm.At(0, 0)))
	assert.Equal(t, color.RGBAModel.Convert(color.NRGBA{0, 0, 0xff, 0xff}), color.RGBAModel.Convert(pm.At(7, 7)))
}

func TestEncodeErrors(t *testing.T) {
	var buf bytes.Buffer

	assert.Equal(t, ErrEmptyImage, Encode(&buf, nil, nil))
	assert.Equal(t, ErrTooManyColors, Encode(&buf, testBuffer(t), &Options{Colors: 257}))
	assert.Equal(t, ErrTooManyColors, Encode(&buf, testBuffer(t), &Options{Colors: -1}))
}

func TestDecodeBMP(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range m.Pix {
		m.Pix[i] = 0xff
	}
	m.SetNRGBA(0, 0, color.NRGBA{0x10, 0x20, 0x30, 0xff})

	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, m))

	b, format, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "bmp", format)
	assert.Equal(t, color.NRGBA{0x10, 0x20, 0x30, 0xff}, b.At(0, 0).Color())
	assert.Equal(t, color.NRGBA{0xff, 0xff, 0xff, 0xff}, b.At(1, 1).Color())
}

func TestDecodeGarbage(t *testing.T) {
	_, _, err := Decode(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported(".png"))
	assert.True(t, Supported(".webp"))
	assert.False(t, Supported(".PNG"))
	assert.False(t, Supported(".cue"))
}
