package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/visdev-lib/color/internal/config"
	"github.com/visdev-lib/color/pkg/logger"
)

// AppContext bundles the configuration and logger a command runs with.
type AppContext struct {
	Config *config.Config
	Logger *logger.Logger
}

func loadAppContext(cmd *cobra.Command, flags *rootFlags, component string) (*AppContext, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.configPath != "" {
		cfg, err = config.Load(flags.configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, newCommandError(component, "loading configuration", err, "Fix the configuration file or pass --config with a valid path.")
	}

	log, err := newCommandLogger(cmd.ErrOrStderr(), cfg.Log, flags.verbose, component)
	if err != nil {
		return nil, newCommandError(component, "creating logger", err, "Use one of trace, debug, info, warn or error as log level.")
	}

	if log.Enabled(zerolog.DebugLevel) {
		log.WithFields(map[string]any{
			"path":   flags.configPath,
			"size":   cfg.Palette.Size,
			"format": cfg.Output.Format,
		}).Debug("configuration loaded")
	}
	return &AppContext{Config: cfg, Logger: log}, nil
}

func newCommandLogger(w io.Writer, settings config.LogSettings, verbose bool, component string) (*logger.Logger, error) {
	level := settings.Level
	if verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: settings.HumanReadable,
		Writer:        w,
		Component:     component,
	})
}
