package config

import "github.com/aleister1102/sidediff/internal/models"

// DiffConfig defines how two texts are diffed and laid out
type DiffConfig struct {
	ColumnWidth     int                 `json:"column_width" yaml:"column_width" validate:"min=0"`
	ContextLines    models.ContextLines `json:"context_lines" yaml:"context_lines" validate:"contextlines"`
	LineNumbers     bool                `json:"line_numbers" yaml:"line_numbers"`
	TabSize         int                 `json:"tab_size,omitempty" yaml:"tab_size,omitempty" validate:"min=1"`
	SemanticCleanup bool                `json:"semantic_cleanup" yaml:"semantic_cleanup"`
	Title           string              `json:"title,omitempty" yaml:"title,omitempty"`
	FromDesc        string              `json:"from_desc,omitempty" yaml:"from_desc,omitempty"`
	ToDesc          string              `json:"to_desc,omitempty" yaml:"to_desc,omitempty"`
}

// NewDefaultDiffConfig creates default diff configuration
func NewDefaultDiffConfig() DiffConfig {
	contextLines, _ := models.ParseContextLines(DefaultDiffContextLines)
	return DiffConfig{
		ColumnWidth:     DefaultDiffColumnWidth,
		ContextLines:    contextLines,
		LineNumbers:     DefaultDiffLineNumbers,
		TabSize:         DefaultDiffTabSize,
		SemanticCleanup: DefaultDiffSemanticCleanup,
	}
}

// RenderOptions converts the configuration into render options
func (c DiffConfig) RenderOptions() models.RenderOptions {
	return models.RenderOptions{
		ColumnWidth:     c.ColumnWidth,
		ContextLines:    c.ContextLines,
		LineNumbers:     c.LineNumbers,
		TabSize:         c.TabSize,
		SemanticCleanup: c.SemanticCleanup,
		Title:           c.Title,
		FromDesc:        c.FromDesc,
		ToDesc:          c.ToDesc,
	}
}
