package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/visdev-lib/color/internal/render"
	"github.com/visdev-lib/color/pkg/logger"
	"github.com/visdev-lib/color/pkg/theme"
)

type themeOptions struct {
	overrides []string
	output    outputFlags
}

func newThemeCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &themeOptions{}

	cmd := &cobra.Command{
		Use:   "theme <color>",
		Short: "Derive a semantic color theme from a seed color",
		Long: `Derive primary, secondary, tertiary, error, success, warning, info and
neutral colors from a seed color.

Roles can be replaced or added with --set role=color. Every override must use
the same representation as the seed.`,
		Example: `  visdev theme '#3366ff'
  visdev theme '#3366ff' --set error='#e11d48' --set brand='#0ea5e9' -f json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringArrayVar(&opts.overrides, "set", nil, "Override or add a role as role=color (repeatable)")
	opts.output.register(cmd)

	return cmd
}

func runTheme(cmd *cobra.Command, rootFlags *rootFlags, opts *themeOptions, seed string) error {
	app, err := loadAppContext(cmd, rootFlags, "theme")
	if err != nil {
		return err
	}

	if err := generateTheme(cmd, app, opts, seed); err != nil {
		app.Logger.Error(err, "theme command failed")
		return err
	}
	app.Logger.WithFields(map[string]any{"seed": seed, "overrides": len(opts.overrides)}).Info("theme generated")
	return nil
}

func generateTheme(cmd *cobra.Command, app *AppContext, opts *themeOptions, seed string) error {
	output, err := opts.output.resolve(cmd, app.Config.Output)
	if err != nil {
		return newCommandError("theme", "resolving output", err, "Use --format table, json or yaml.")
	}

	th, err := buildTheme(seed, opts.overrides, app.Logger)
	if err != nil {
		return newCommandError("theme", "building theme", err, "Check that the seed and every --set value are valid colors in the same format.")
	}

	out := cmd.OutOrStdout()
	if output.Format != "table" {
		payload, err := render.NewThemePayload(th)
		if err != nil {
			return err
		}
		return render.Encode(out, output.Format, payload)
	}

	swatches, err := render.ThemeSwatches(th)
	if err != nil {
		return err
	}
	return render.Table(out, fmt.Sprintf("theme · %s", th.Primary()), swatches, output.Swatches && render.IsTerminal(out))
}

func buildTheme(seed string, pairs []string, log *logger.Logger) (*theme.Theme[string], error) {
	custom, err := parseOverrides(pairs)
	if err != nil {
		return nil, err
	}
	return theme.CreateTheme(seed, custom, theme.WithLogger(log))
}
