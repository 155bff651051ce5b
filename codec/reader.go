package codec

import (
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"

	"github.com/bodgit/assetforge/pixel"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Decode reads an image from r and returns it as a pixel buffer along with
// the name of the format that was detected.
func Decode(r io.Reader) (*pixel.Buffer, string, error) {
	m, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	if m.Bounds().Empty() {
		return nil, "", ErrEmptyImage
	}
	b, err := pixel.FromImage(m)
	if err != nil {
		return nil, "", err
	}
	return b, format, nil
}

// DecodeConfig returns the dimensions and format of an image without
// decoding the entire image.
func DecodeConfig(r io.Reader) (image.Config, string, error) {
	return image.DecodeConfig(r)
}
