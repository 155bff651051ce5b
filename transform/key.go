package transform

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/bodgit/assetforge/pixel"
)

// KeyMode selects how matching pixels are chosen for keying.
type KeyMode int

const (
	// KeyGlobal keys every matching pixel in the buffer.
	KeyGlobal KeyMode = iota
	// KeyFloodFill keys only matching pixels 4-connected to a seed through
	// other matching pixels.
	KeyFloodFill
)

var keyModeNames = map[KeyMode]string{
	KeyGlobal:    "global",
	KeyFloodFill: "floodfill",
}

func (m KeyMode) String() string {
	if s, ok := keyModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("KeyMode(%d)", int(m))
}

// ParseKeyMode returns the mode named by s, ignoring case.
func ParseKeyMode(s string) (KeyMode, error) {
	for m, name := range keyModeNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("transform: unknown key mode %q", s)
}

// KeyOptions configures Key.
type KeyOptions struct {
	// Target is compared against each pixel's RGB channels; alpha is
	// ignored.
	Target pixel.RGBA
	// Tolerance is the largest Euclidean RGB distance still considered a
	// match.
	Tolerance float64
	Mode      KeyMode
	// Seeds start the traversal in KeyFloodFill mode. Seeds outside the
	// buffer or on a non-matching pixel do nothing.
	Seeds []image.Point
}

// CornerSeeds returns the four corners of a buffer of the given size, the
// usual seeds for removing a flat background.
func CornerSeeds(width, height int) []image.Point {
	return []image.Point{
		{0, 0},
		{width - 1, 0},
		{0, height - 1},
		{width - 1, height - 1},
	}
}

// Key returns a copy of src with the alpha of every selected pixel set to
// zero. The color channels of keyed pixels are left untouched.
func Key(src *pixel.Buffer, o KeyOptions) (*pixel.Buffer, error) {
	if o.Tolerance < 0 || math.IsNaN(o.Tolerance) {
		return nil, pixel.ErrInvalidTolerance
	}
	if src.Empty() {
		return nil, pixel.ErrInvalidRegion
	}

	dst := src.Clone()
	samples := dst.Samples()

	match := func(c pixel.RGBA) bool {
		return c.DistanceRGB(o.Target) <= o.Tolerance
	}

	switch o.Mode {
	case KeyGlobal:
		for i := range samples {
			if match(samples[i]) {
				samples[i].A = 0
			}
		}
	case KeyFloodFill:
		floodFill(dst, o.Seeds, match)
	default:
		return nil, fmt.Errorf("transform: unknown key mode %d", int(o.Mode))
	}

	return dst, nil
}

var neighbours = [4]image.Point{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}

// floodFill clears the alpha of every matching pixel reachable from a seed.
// Matching is evaluated on the original color which keying leaves intact,
// and a single visited mask is shared across seeds so each pixel is queued
// at most once.
func floodFill(b *pixel.Buffer, seeds []image.Point, match func(pixel.RGBA) bool) {
	w, h := b.Width(), b.Height()
	samples := b.Samples()
	visited := newVisitedMask(w * h)

	queue := make([]int, 0, 1024)

	for _, seed := range seeds {
		if !b.In(seed.X, seed.Y) {
			continue
		}
		idx := seed.Y*w + seed.X
		if visited.get(idx) {
			continue
		}
		visited.set(idx)
		if !match(samples[idx]) {
			continue
		}

		queue = append(queue[:0], idx)
		for len(queue) > 0 {
			curr := queue[0]
			queue = queue[1:]

			samples[curr].A = 0

			cx, cy := curr%w, curr/w
			for _, d := range neighbours {
				nx, ny := cx+d.X, cy+d.Y
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				ni := ny*w + nx
				if visited.get(ni) {
					continue
				}
				visited.set(ni)
				if match(samples[ni]) {
					queue = append(queue, ni)
				}
			}
		}
	}
}
