package config

import (
	"github.com/visdev-lib/color/pkg/colorspace"
	"github.com/visdev-lib/color/pkg/palette"
)

// Config holds the generator defaults the CLI starts from. Flags override individual fields.
type Config struct {
	Palette PaletteSettings `yaml:"palette"`
	Output  OutputSettings  `yaml:"output"`
	Log     LogSettings     `yaml:"log"`
}

// PaletteSettings mirrors palette.Options plus the step count.
type PaletteSettings struct {
	Size int     `yaml:"size" validate:"min=9,max=64"`
	Min  float64 `yaml:"min" validate:"fraction"`
	Max  float64 `yaml:"max" validate:"fraction,gtefield=Min"`
	Type string  `yaml:"type,omitempty" validate:"omitempty,color_tag"`
}

// OutputSettings controls how results are printed.
type OutputSettings struct {
	Format   string `yaml:"format" validate:"oneof=table json yaml"`
	Swatches bool   `yaml:"swatches"`
}

// LogSettings configures the zerolog logger.
type LogSettings struct {
	Level         string `yaml:"level" validate:"oneof=trace debug info warn error"`
	HumanReadable bool   `yaml:"human_readable"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Palette: PaletteSettings{
			Size: palette.DefaultSize,
			Min:  0,
			Max:  1,
		},
		Output: OutputSettings{
			Format:   "table",
			Swatches: true,
		},
		Log: LogSettings{
			Level:         "warn",
			HumanReadable: true,
		},
	}
}

// PaletteOptions converts the palette settings to palette options.
// An empty Type keeps the palette default of the source color's representation.
func (s PaletteSettings) PaletteOptions() []palette.Option {
	opts := []palette.Option{palette.WithRange(s.Min, s.Max)}
	if s.Type != "" {
		opts = append(opts, palette.WithType(colorspace.Tag(s.Type)))
	}
	return opts
}
