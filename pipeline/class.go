package pipeline

import (
	"fmt"
	"strings"
)

// Class identifies the kind of asset being produced, which fixes the size
// of the final canvas.
type Class int

// Asset classes
const (
	ClassPlayer Class = iota + 1
	ClassResource
	ClassStation
	ClassGoal
)

// Canvas is the size of a final asset.
type Canvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func (c Canvas) String() string {
	return fmt.Sprintf("%dx%d", c.Width, c.Height)
}

var classes = []struct {
	class  Class
	name   string
	canvas Canvas
}{
	{ClassPlayer, "Player", Canvas{512, 512}},
	{ClassResource, "Resource", Canvas{256, 256}},
	{ClassStation, "Station", Canvas{1024, 1024}},
	{ClassGoal, "Goal", Canvas{256, 256}},
}

// Classes returns every known class in a stable order.
func Classes() []Class {
	c := make([]Class, len(classes))
	for i, info := range classes {
		c[i] = info.class
	}
	return c
}

// ParseClass returns the class named by s, ignoring case.
func ParseClass(s string) (Class, error) {
	for _, info := range classes {
		if strings.EqualFold(s, info.name) {
			return info.class, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownClass, s)
}

func (c Class) String() string {
	for _, info := range classes {
		if info.class == c {
			return info.name
		}
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// Canvas returns the preset canvas for c.
func (c Class) Canvas() (Canvas, error) {
	for _, info := range classes {
		if info.class == c {
			return info.canvas, nil
		}
	}
	return Canvas{}, ErrUnknownClass
}
