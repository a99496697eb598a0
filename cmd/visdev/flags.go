package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/visdev-lib/color/internal/config"
	"github.com/visdev-lib/color/internal/validation"
	colorerrors "github.com/visdev-lib/color/pkg/errors"
	"github.com/visdev-lib/color/pkg/theme"
)

type outputFlags struct {
	format   string
	swatches bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "Output format: table, json or yaml")
	cmd.Flags().BoolVar(&o.swatches, "swatches", true, "Draw colored blocks in table output when writing to a terminal")
}

// resolve applies the changed flags over the configured output settings.
func (o *outputFlags) resolve(cmd *cobra.Command, base config.OutputSettings) (config.OutputSettings, error) {
	out := base
	if cmd.Flags().Changed("format") {
		out.Format = strings.ToLower(strings.TrimSpace(o.format))
	}
	if cmd.Flags().Changed("swatches") {
		out.Swatches = o.swatches
	}

	if err := validation.Instance().Var(out.Format, "oneof=table json yaml"); err != nil {
		return out, colorerrors.NewValidationError("format", fmt.Sprintf("unsupported output format %q", out.Format), err)
	}
	return out, nil
}

// parseOverrides turns repeated role=color pairs into a scheme.
func parseOverrides(pairs []string) (theme.Scheme[string], error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	scheme := make(theme.Scheme[string], len(pairs))
	for _, pair := range pairs {
		role, value, ok := strings.Cut(pair, "=")
		role = strings.TrimSpace(role)
		value = strings.TrimSpace(value)
		if !ok || role == "" || value == "" {
			return nil, colorerrors.NewValidationError("set", fmt.Sprintf("expected role=color, got %q", pair), nil)
		}
		scheme[role] = value
	}
	return scheme, nil
}
