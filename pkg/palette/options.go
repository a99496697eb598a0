package palette

import (
	"github.com/visdev-lib/color/pkg/colorspace"
	"github.com/visdev-lib/color/pkg/logger"
)

// Options tunes how shades are derived from the source color.
//
// Defaults: Type is the detected representation of the source color, Min is 0 and Max is 1.
// Min and Max bound the lightness range the shades are interpolated over.
type Options struct {
	Type   colorspace.Tag `validate:"color_tag"`
	Min    float64        `validate:"fraction"`
	Max    float64        `validate:"fraction,gtefield=Min"`
	Logger *logger.Logger `validate:"-"`

	shade ShadeFunc
}

// Option overrides a single field of Options.
type Option func(*Options)

// WithType selects the representation shades are rendered in.
func WithType(tag colorspace.Tag) Option {
	return func(o *Options) {
		o.Type = tag
	}
}

// WithMin sets the darkest lightness a shade may take.
func WithMin(min float64) Option {
	return func(o *Options) {
		o.Min = min
	}
}

// WithMax sets the lightest lightness a shade may take.
func WithMax(max float64) Option {
	return func(o *Options) {
		o.Max = max
	}
}

// WithRange sets Min and Max together.
func WithRange(min, max float64) Option {
	return func(o *Options) {
		o.Min = min
		o.Max = max
	}
}

// WithLogger attaches a logger that records construction and cache misses at debug level.
func WithLogger(l *logger.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithShadeFunc replaces the shade algorithm. fn must be pure.
func WithShadeFunc(fn ShadeFunc) Option {
	return func(o *Options) {
		o.shade = fn
	}
}

func defaultOptions(tag colorspace.Tag) Options {
	return Options{
		Type:  tag,
		Min:   0,
		Max:   1,
		shade: ShadeAt,
	}
}
