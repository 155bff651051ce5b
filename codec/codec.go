/*
Package codec converts between encoded image files and pixel buffers.

Decoding accepts PNG, JPEG, GIF, BMP, TIFF and WebP input. Encoding always
produces PNG, either as full 8-bit NRGBA or, when a color budget is given,
as a paletted image whose palette is chosen by median cut.
*/
package codec

import "errors"

const maxColors = 256

var (
	// ErrEmptyImage is returned when an image has no pixels.
	ErrEmptyImage = errors.New("codec: empty image")
	// ErrTooManyColors is returned when a palette larger than a PNG can
	// hold is requested.
	ErrTooManyColors = errors.New("codec: palette must hold between 1 and 256 colors")
)

// Extensions lists the file extensions Decode understands.
var Extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// Supported reports whether ext, including the leading dot, is one of
// Extensions. The comparison is case sensitive.
func Supported(ext string) bool {
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}
