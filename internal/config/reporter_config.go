package config

import "strings"

// ReporterConfig defines where and how a diff is written
type ReporterConfig struct {
	OutputPath         string `json:"output_path,omitempty" yaml:"output_path,omitempty"`
	OutputFormat       string `json:"output_format,omitempty" yaml:"output_format,omitempty" validate:"omitempty,outputformat"`
	MaxInputFileSizeMB int    `json:"max_input_file_size_mb,omitempty" yaml:"max_input_file_size_mb,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultReporterConfig creates default reporter configuration
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		OutputPath:         DefaultReporterOutputPath,
		OutputFormat:       DefaultReporterOutputFormat,
		MaxInputFileSizeMB: DefaultReporterMaxInputFileSize,
	}
}

// Format returns the output format in its canonical lower-case form
func (c ReporterConfig) Format() string {
	return NormalizeOutputFormat(c.OutputFormat)
}

// NormalizeOutputFormat lower-cases and trims an output format name
func NormalizeOutputFormat(format string) string {
	return strings.ToLower(strings.TrimSpace(format))
}
