package assetforge

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/bodgit/assetforge/pipeline"
	"github.com/bodgit/assetforge/pixel"
	"github.com/bodgit/assetforge/transform"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Crop origins
const (
	OriginTopLeft    = "top-left"
	OriginBottomLeft = "bottom-left"
)

// QuantizeJob configures the posterize style.
type QuantizeJob struct {
	// Gradient stops as hex colors, in order.
	Gradient []string `yaml:"gradient"`
	Samples  int      `yaml:"samples"`
	Offset   float64  `yaml:"offset,omitempty"`
}

// KeyJob configures background keying.
type KeyJob struct {
	Color     string   `yaml:"color"`
	Tolerance float64  `yaml:"tolerance,omitempty"`
	Mode      string   `yaml:"mode,omitempty"`
	Seeds     [][2]int `yaml:"seeds,omitempty"`
	// Corners adds the four corners of the keyed buffer as seeds.
	Corners bool `yaml:"corners,omitempty"`
}

// Job describes how a set of source images is turned into assets. It is
// usually read from a YAML file.
type Job struct {
	Input  string      `yaml:"input,omitempty"`
	Output string      `yaml:"output,omitempty"`
	Class  string      `yaml:"class"`
	Crop   *pixel.Rect `yaml:"crop,omitempty"`
	// Origin of the crop rectangle, OriginTopLeft when empty.
	Origin     string           `yaml:"origin,omitempty"`
	Pixelate   int              `yaml:"pixelate,omitempty"`
	Quantize   *QuantizeJob     `yaml:"quantize,omitempty"`
	Key        *KeyJob          `yaml:"key,omitempty"`
	Canvas     *pipeline.Canvas `yaml:"canvas,omitempty"`
	Background string           `yaml:"background,omitempty"`
	// Colors limits the written PNG to a palette of this many colors.
	Colors  int `yaml:"colors,omitempty"`
	Workers int `yaml:"workers,omitempty"`
}

// LoadJob reads a job from a YAML file.
func LoadJob(file string) (*Job, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	j := new(Job)
	if err := yaml.Unmarshal(b, j); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	if _, err := j.Config(1, 1); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	return j, nil
}

// ParseColor parses a hex color such as "#ff00ff" or "f0f" as an opaque
// color.
func ParseColor(s string) (pixel.RGBA, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return pixel.RGBA{}, err
	}
	return pixel.RGB(c.R, c.G, c.B), nil
}

// Config builds the pipeline configuration for a source image of the given
// size. The size is needed to resolve bottom-left crop rectangles and corner
// seeds.
func (j *Job) Config(width, height int) (*pipeline.Config, error) {
	class, err := pipeline.ParseClass(j.Class)
	if err != nil {
		return nil, err
	}

	c := pipeline.NewConfig(class)
	c.Canvas = j.Canvas

	if j.Background != "" {
		if c.Background, err = ParseColor(j.Background); err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
	}

	if j.Crop != nil {
		r := *j.Crop
		switch j.Origin {
		case "", OriginTopLeft:
		case OriginBottomLeft:
			r = r.FlipY(height)
		default:
			return nil, fmt.Errorf("unknown crop origin %q", j.Origin)
		}
		c.Crop = &r

		clamped, err := r.Clamp(width, height)
		if err != nil {
			return nil, err
		}
		width, height = clamped.Width, clamped.Height
	}

	if j.Pixelate != 0 {
		c.Pixelate = &pipeline.PixelateOptions{TargetWidth: j.Pixelate}
		if j.Pixelate > 0 {
			width, height = j.Pixelate, transform.PixelatedHeight(width, height, j.Pixelate)
		}
	}

	if q := j.Quantize; q != nil {
		o := &transform.QuantizeOptions{
			SampleCount:      q.Samples,
			BrightnessOffset: q.Offset,
		}
		for _, s := range q.Gradient {
			stop, err := ParseColor(s)
			if err != nil {
				return nil, fmt.Errorf("gradient: %w", err)
			}
			o.Gradient = append(o.Gradient, stop)
		}
		c.Quantize = o
	}

	if k := j.Key; k != nil {
		o := &transform.KeyOptions{
			Tolerance: k.Tolerance,
		}
		if o.Target, err = ParseColor(k.Color); err != nil {
			return nil, fmt.Errorf("key: %w", err)
		}
		if k.Mode != "" {
			if o.Mode, err = transform.ParseKeyMode(k.Mode); err != nil {
				return nil, err
			}
		}
		for _, s := range k.Seeds {
			o.Seeds = append(o.Seeds, image.Point{X: s[0], Y: s[1]})
		}
		if k.Corners {
			o.Seeds = append(o.Seeds, transform.CornerSeeds(width, height)...)
		}
		c.Key = o
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}
