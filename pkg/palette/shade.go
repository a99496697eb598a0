package palette

import (
	"github.com/visdev-lib/color/pkg/colorspace"
)

// saturationDamping is the share of saturation removed at the lightest and darkest ends.
const saturationDamping = 0.15

// ShadeFunc computes the HSL value of shade i for a palette of the given size.
type ShadeFunc func(i int, base colorspace.HSL, size int, opts Options) colorspace.HSL

// ShadeAt is the default shade algorithm.
//
// The source sits at index size/2. Lower indexes step lightness from Max toward the source,
// higher indexes step from the source toward Min; neither end reaches Min or Max exactly.
// Saturation falls off quadratically with distance from the source.
func ShadeAt(i int, base colorspace.HSL, size int, opts Options) colorspace.HSL {
	lo, hi := opts.Min, opts.Max
	source := clamp(base.L, lo, hi)
	mid := size / 2

	var lightness, dist float64
	switch {
	case i < mid:
		t := float64(i+1) / float64(mid+1)
		lightness = hi + (source-hi)*t
		dist = 1 - t
	case i > mid:
		t := float64(i-mid) / float64(size-mid)
		lightness = source + (lo-source)*t
		dist = t
	default:
		lightness = source
	}

	dist = clamp(dist, 0, 1)
	return colorspace.HSL{
		H: base.H,
		S: base.S * (1 - saturationDamping*dist*dist),
		L: clamp(lightness, lo, hi),
	}.Normalize()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
