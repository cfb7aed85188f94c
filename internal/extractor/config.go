package extractor

import "github.com/aleister1102/sidediff/internal/models"

const maxUnwrapDepth = 3

// Wrapped rows show continuationMarker instead of a line number and may carry
// continuationClass.
const (
	continuationMarker = ">"
	continuationClass  = "diff_cont"
)

// ChangeExtractorConfig holds configuration for ChangeExtractor
type ChangeExtractorConfig struct {
	// Placeholder stands in for the missing side of added or removed lines
	Placeholder string
	// MaxContentSize limits the documents accepted, in bytes. Zero disables it.
	MaxContentSize int64
}

// DefaultChangeExtractorConfig returns default configuration
func DefaultChangeExtractorConfig() ChangeExtractorConfig {
	return ChangeExtractorConfig{
		Placeholder:    models.DefaultMissingPlaceholder,
		MaxContentSize: 50 * 1024 * 1024,
	}
}
