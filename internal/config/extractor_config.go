package config

// ExtractorConfig defines configuration for reading changes back out of a diff
type ExtractorConfig struct {
	Placeholder       string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	MaxDocumentSizeMB int    `json:"max_document_size_mb,omitempty" yaml:"max_document_size_mb,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultExtractorConfig creates default extractor configuration
func NewDefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Placeholder:       DefaultExtractorPlaceholder,
		MaxDocumentSizeMB: DefaultExtractorMaxDocumentSizeMB,
	}
}
