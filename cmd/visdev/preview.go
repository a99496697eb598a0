package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/visdev-lib/color/internal/render"
	"github.com/visdev-lib/color/internal/tui/preview"
)

type previewOptions struct {
	overrides []string
	size      int
}

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <color>",
		Short: "Browse the palettes of a theme interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringArrayVar(&opts.overrides, "set", nil, "Override or add a role as role=color (repeatable)")
	cmd.Flags().IntVarP(&opts.size, "size", "n", 0, "Initial number of shades (defaults to the configured size)")

	return cmd
}

func runPreview(cmd *cobra.Command, rootFlags *rootFlags, opts *previewOptions, seed string) error {
	if !render.IsTerminal(cmd.OutOrStdout()) {
		return newCommandError("preview", "starting preview", errors.New("output is not a terminal"), "Run 'visdev theme' for non-interactive output.")
	}

	app, err := loadAppContext(cmd, rootFlags, "preview")
	if err != nil {
		return err
	}

	th, err := buildTheme(seed, opts.overrides, app.Logger)
	if err != nil {
		app.Logger.Error(err, "preview command failed")
		return newCommandError("preview", "building theme", err, "Check that the seed and every --set value are valid colors in the same format.")
	}

	size := app.Config.Palette.Size
	if opts.size > 0 {
		size = opts.size
	}
	if size > preview.MaxSize {
		app.Logger.Warn(fmt.Sprintf("preview shows at most %d shades, clamping %d", preview.MaxSize, size))
	}

	app.Logger.Debug("launching preview")
	program := tea.NewProgram(
		preview.NewModel(th, size),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := program.Run(); err != nil {
		app.Logger.Error(err, "preview command failed")
		return fmt.Errorf("failed to run preview: %w", err)
	}
	app.Logger.Debug("preview closed")
	return nil
}
