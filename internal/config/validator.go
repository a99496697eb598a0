package config

import (
	"github.com/visdev-lib/color/internal/validation"
	colorerrors "github.com/visdev-lib/color/pkg/errors"
)

// Validate checks field ranges and enumerations on the configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return colorerrors.NewValidationError("config", "configuration is nil", nil)
	}

	return validation.Struct(cfg, colorerrors.NewValidationError)
}
