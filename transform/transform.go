/*
Package transform implements the pixel buffer stages of the asset pipeline.

Every function reads its source buffer and returns a newly allocated result;
sources are never modified. All stages are synchronous and bounded by the
number of pixels involved.
*/
package transform

import "math"

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round(x float64) int {
	return int(math.Round(x))
}

