package validation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/visdev-lib/color/pkg/colorspace"
)

// ErrorFactory builds the domain error returned for a failed field.
type ErrorFactory func(field, message string, err error) error

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Instance configures and returns the shared validator used by palette options and configuration.
//
// Custom tags:
//   - color_tag: the string (or colorspace.Tag) names a supported color representation
//   - color: the string parses as a color in any supported representation
//   - fraction: the float lies in [0, 1]
func Instance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("color_tag", func(fl validator.FieldLevel) bool {
			return colorspace.Tag(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			_, err := colorspace.Detect(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("fraction", func(fl validator.FieldLevel) bool {
			f := fl.Field().Float()
			return f >= 0 && f <= 1
		})

		validateInst = v
	})

	return validateInst
}

// Struct validates s and converts the first failure with newErr.
func Struct(s any, newErr ErrorFactory) error {
	if err := Instance().Struct(s); err != nil {
		return Convert(err, newErr)
	}
	return nil
}

// Convert maps validator failures to a domain error naming the offending field.
func Convert(err error, newErr ErrorFactory) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		field := FieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return newErr(field, msg, err)
	}

	return newErr("", err.Error(), err)
}

// FieldName renders the namespace of a failed field in lower-case dotted form, without the root struct.
func FieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
