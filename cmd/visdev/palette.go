package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/visdev-lib/color/internal/config"
	"github.com/visdev-lib/color/internal/render"
	"github.com/visdev-lib/color/pkg/colorspace"
	colorerrors "github.com/visdev-lib/color/pkg/errors"
	"github.com/visdev-lib/color/pkg/palette"
)

type paletteOptions struct {
	size      int
	min       float64
	max       float64
	colorType string
	output    outputFlags
}

func newPaletteCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &paletteOptions{}

	cmd := &cobra.Command{
		Use:   "palette <color>",
		Short: "Generate a tonal palette from a source color",
		Long: `Generate a light-to-dark tonal palette around a source color.

The color may be a hex code (#3366ff), an rgb() or an hsl() string. The middle
shade is the source color itself.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalette(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.size, "size", "n", palette.DefaultSize, "Number of shades")
	cmd.Flags().Float64Var(&opts.min, "min", 0, "Lowest lightness a shade may reach (0-1)")
	cmd.Flags().Float64Var(&opts.max, "max", 1, "Highest lightness a shade may reach (0-1)")
	cmd.Flags().StringVarP(&opts.colorType, "type", "t", "", "Output representation: "+tagList())
	opts.output.register(cmd)

	return cmd
}

func runPalette(cmd *cobra.Command, rootFlags *rootFlags, opts *paletteOptions, source string) error {
	app, err := loadAppContext(cmd, rootFlags, "palette")
	if err != nil {
		return err
	}

	if err := generatePalette(cmd, app, opts, source); err != nil {
		app.Logger.Error(err, "palette command failed")
		return err
	}
	app.Logger.WithFields(map[string]any{"source": source}).Info("palette generated")
	return nil
}

func generatePalette(cmd *cobra.Command, app *AppContext, opts *paletteOptions, source string) error {
	settings := opts.apply(cmd, app.Config.Palette)
	output, err := opts.output.resolve(cmd, app.Config.Output)
	if err != nil {
		return newCommandError("palette", "resolving output", err, "Use --format table, json or yaml.")
	}

	if settings.Type != "" && !colorspace.Tag(settings.Type).Valid() {
		err := colorerrors.NewValidationError("type", fmt.Sprintf("unsupported color type %q", settings.Type), nil)
		return newCommandError("palette", "resolving color type", err, "Use --type "+tagList()+".")
	}

	paletteOpts := append(settings.PaletteOptions(), palette.WithLogger(app.Logger))

	switch tag := colorspace.Tag(settings.Type); tag {
	case colorspace.TagRGBObject:
		return buildAndWritePalette(cmd, output, objectSource[colorspace.RGB], source, tag, settings.Size, paletteOpts)
	case colorspace.TagHSLObject:
		return buildAndWritePalette(cmd, output, objectSource[colorspace.HSL], source, tag, settings.Size, paletteOpts)
	default:
		return buildAndWritePalette(cmd, output, stringSource, source, tag, settings.Size, paletteOpts)
	}
}

func tagList() string {
	tags := colorspace.Tags()
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.String())
	}
	return strings.Join(names, ", ")
}

func (o *paletteOptions) apply(cmd *cobra.Command, base config.PaletteSettings) config.PaletteSettings {
	settings := base
	if cmd.Flags().Changed("size") {
		settings.Size = o.size
	}
	if cmd.Flags().Changed("min") {
		settings.Min = o.min
	}
	if cmd.Flags().Changed("max") {
		settings.Max = o.max
	}
	if cmd.Flags().Changed("type") {
		settings.Type = o.colorType
	}
	return settings
}

func stringSource(raw string, _ colorspace.Tag) (string, error) {
	return raw, nil
}

// objectSource parses raw and re-expresses it as an object so the palette yields objects.
func objectSource[T colorspace.Any](raw string, tag colorspace.Tag) (T, error) {
	hsl, err := colorspace.ToHSL(raw)
	if err != nil {
		var zero T
		return zero, err
	}
	return colorspace.Convert[T](hsl, tag)
}

func buildAndWritePalette[T colorspace.Any](cmd *cobra.Command, output config.OutputSettings, toSource func(string, colorspace.Tag) (T, error), raw string, tag colorspace.Tag, size int, opts []palette.Option) error {
	source, err := toSource(raw, tag)
	if err != nil {
		return newCommandError("palette", fmt.Sprintf("parsing color %q", raw), err, "Pass a hex code, rgb() or hsl() color.")
	}

	p, err := palette.New(source, size, opts...)
	if err != nil {
		return newCommandError("palette", "building palette", err, fmt.Sprintf("Use at least %d shades and a lightness range inside 0-1.", palette.MinSize))
	}

	return writePalette(cmd, p, output)
}

func writePalette[T colorspace.Any](cmd *cobra.Command, p *palette.Palette[T], output config.OutputSettings) error {
	out := cmd.OutOrStdout()

	if output.Format != "table" {
		payload, err := render.NewPalettePayload(p)
		if err != nil {
			return err
		}
		return render.Encode(out, output.Format, payload)
	}

	swatches, err := render.PaletteSwatches(p)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("%v · %s · %d shades", p.Source(), p.Type(), p.Size())
	return render.Table(out, title, swatches, output.Swatches && render.IsTerminal(out))
}
