package pixel

import "math"

// Gradient is a piecewise linear color ramp over t in [0, 1]. Stops are
// evenly spaced in the order given.
type Gradient []RGBA

// At evaluates the gradient at t, which is clamped to [0, 1].
func (g Gradient) At(t float64) (RGBA, error) {
	switch len(g) {
	case 0:
		return RGBA{}, ErrEmptyGradient
	case 1:
		return g[0], nil
	}

	// Equivalent to dividing by the segment length 1/(m-1) but exact at
	// the stops themselves.
	scaled := Clamp01(t) * float64(len(g)-1)
	segment := clampInt(int(math.Floor(scaled)), 0, len(g)-2)
	localT := Clamp01(scaled - float64(segment))
	if localT == 1 {
		return g[segment+1], nil
	}

	return g[segment].Lerp(g[segment+1], localT), nil
}

// Samples returns n colors taken at evenly spaced positions from 0 to 1
// inclusive. A single sample is taken at t = 0.
func (g Gradient) Samples(n int) ([]RGBA, error) {
	if len(g) == 0 {
		return nil, ErrEmptyGradient
	}
	if n < 1 {
		return nil, ErrInvalidSampleCount
	}

	samples := make([]RGBA, n)
	for i := range samples {
		var t float64
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		c, err := g.At(t)
		if err != nil {
			return nil, err
		}
		samples[i] = c
	}
	return samples, nil
}
