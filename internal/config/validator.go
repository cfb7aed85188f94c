package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aleister1102/sidediff/internal/common/errorwrapper"
	"github.com/go-playground/validator/v10"
)

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	// Register custom validation for LogLevel
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		level := strings.ToLower(fl.Field().String())
		switch level {
		case "", "debug", "info", "warn", "error", "fatal", "panic": // Allow empty for omitempty
			return true
		default:
			return false
		}
	})

	// Register custom validation for LogFormat
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		format := strings.ToLower(fl.Field().String())
		switch format {
		case "", "console", "text", "json": // Allow empty for omitempty
			return true
		default:
			return false
		}
	})

	// -1 stands for "all"
	_ = validate.RegisterValidation("contextlines", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() >= -1
	})

	_ = validate.RegisterValidation("outputformat", func(fl validator.FieldLevel) bool {
		switch NormalizeOutputFormat(fl.Field().String()) {
		case OutputFormatHTML, OutputFormatTable, OutputFormatUnified:
			return true
		default:
			return false
		}
	})

	err := validate.Struct(cfg)
	if err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			var validationErrorMessages []string
			for _, e := range errs {
				msg := fmt.Sprintf("Validation failed for '%s': rule '%s'", e.Namespace(), e.Tag())
				if e.Param() != "" {
					msg += fmt.Sprintf(" (expected: %s)", e.Param())
				}
				if e.Value() != nil && e.Value() != "" {
					msg += fmt.Sprintf(", actual: '%v'", e.Value())
				}
				validationErrorMessages = append(validationErrorMessages, msg)
			}
			return fmt.Errorf("%w: configuration validation failed:\n  %s", errorwrapper.ErrInvalidConfiguration, strings.Join(validationErrorMessages, "\n  "))
		}
		return errorwrapper.WrapError(err, "configuration validation error")
	}
	return nil
}
