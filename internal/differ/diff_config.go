package differ

import "github.com/aleister1102/sidediff/internal/models"

// DiffConfig holds configuration for line diffing and row building
type DiffConfig struct {
	EnableSemanticCleanup bool
	ContextLines          models.ContextLines
	ColumnWidth           int
	TabSize               int
}

// DefaultDiffConfig returns default configuration
func DefaultDiffConfig() DiffConfig {
	return DiffConfigFromOptions(models.DefaultRenderOptions())
}

// DiffConfigFromOptions picks the diff-related fields out of render options
func DiffConfigFromOptions(opts models.RenderOptions) DiffConfig {
	return DiffConfig{
		EnableSemanticCleanup: opts.SemanticCleanup,
		ContextLines:          opts.ContextLines,
		ColumnWidth:           opts.ColumnWidth,
		TabSize:               opts.TabSize,
	}
}
