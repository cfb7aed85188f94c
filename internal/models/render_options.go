package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/aleister1102/sidediff/internal/common/errorwrapper"
	"github.com/go-playground/validator/v10"
)

const (
	DefaultColumnWidth = 0
	DefaultTabSize     = 8
)

// RenderOptions controls how two line sequences are diffed and rendered.
type RenderOptions struct {
	// ColumnWidth is the number of display cells after which a line wraps.
	// Zero disables wrapping.
	ColumnWidth  int          `json:"column_width" yaml:"column_width" validate:"min=0"`
	ContextLines ContextLines `json:"context_lines" yaml:"context_lines" validate:"min=-1"`
	LineNumbers  bool         `json:"line_numbers" yaml:"line_numbers"`
	TabSize      int          `json:"tab_size" yaml:"tab_size" validate:"min=1"`
	// SemanticCleanup merges trivial character matches inside changed lines.
	SemanticCleanup bool   `json:"semantic_cleanup" yaml:"semantic_cleanup"`
	TableOnly       bool   `json:"table_only" yaml:"table_only"`
	Title           string `json:"title,omitempty" yaml:"title,omitempty"`
	FromDesc        string `json:"from_desc,omitempty" yaml:"from_desc,omitempty"`
	ToDesc          string `json:"to_desc,omitempty" yaml:"to_desc,omitempty"`
}

// DefaultRenderOptions shows every line with line numbers and no wrapping.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		ColumnWidth:     DefaultColumnWidth,
		ContextLines:    AllContext,
		LineNumbers:     true,
		TabSize:         DefaultTabSize,
		SemanticCleanup: true,
	}
}

// Validate checks the numeric bounds of the options.
func (o RenderOptions) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	err := validate.Struct(o)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		fe := errs[0]
		return errorwrapper.NewValidationError(fe.Field(), fe.Value(), fmt.Sprintf("failed rule '%s=%s'", fe.Tag(), fe.Param()))
	}
	return errorwrapper.WrapError(err, "render options validation error")
}
