package config

import (
	"encoding/json"
	"path/filepath"

	"github.com/aleister1102/sidediff/internal/common/errorwrapper"
	"github.com/aleister1102/sidediff/internal/common/filemanager"
	"github.com/aleister1102/sidediff/internal/models"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type GlobalConfig struct {
	DiffConfig      DiffConfig      `json:"diff_config,omitempty" yaml:"diff_config,omitempty"`
	ExtractorConfig ExtractorConfig `json:"extractor_config,omitempty" yaml:"extractor_config,omitempty"`
	LogConfig       LogConfig       `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	ReporterConfig  ReporterConfig  `json:"reporter_config,omitempty" yaml:"reporter_config,omitempty"`
}

func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		DiffConfig:      NewDefaultDiffConfig(),
		ExtractorConfig: NewDefaultExtractorConfig(),
		LogConfig:       NewDefaultLogConfig(),
		ReporterConfig:  NewDefaultReporterConfig(),
	}
}

// RenderOptions returns the render options for the configured output format
func (c *GlobalConfig) RenderOptions() models.RenderOptions {
	opts := c.DiffConfig.RenderOptions()
	opts.TableOnly = c.ReporterConfig.Format() == OutputFormatTable
	return opts
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// It determines the config file path using GetConfigPath, supports both JSON and YAML formats.
// YAML is preferred if the file extension is .yaml or .yml. Keys missing from
// the file keep their defaults.
func LoadGlobalConfig(providedPath string, logger zerolog.Logger) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		return cfg, nil
	}

	fileManager := filemanager.NewFileManager(logger)
	if !fileManager.FileExists(filePath) {
		return nil, errorwrapper.NewValidationError("config_file", filePath, "config file does not exist")
	}

	data, err := loadConfigFileContent(fileManager, filePath)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to load config file content")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse config content")
	}
	cfg.ReporterConfig.OutputFormat = NormalizeOutputFormat(cfg.ReporterConfig.OutputFormat)

	return cfg, nil
}

// loadConfigFileContent reads the config file using FileManager
func loadConfigFileContent(fileManager *filemanager.FileManager, filePath string) ([]byte, error) {
	opts := filemanager.DefaultFileReadOptions()
	opts.MaxSize = MaxConfigFileSizeMB * 1024 * 1024

	return fileManager.ReadFile(filePath, opts)
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	ext := filepath.Ext(filePath)
	if isYAMLFile(ext) {
		return parseYAMLConfig(data, filePath, cfg)
	}
	return parseJSONConfig(data, filePath, cfg)
}

// isYAMLFile checks if the file extension indicates a YAML file
func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

// parseYAMLConfig parses YAML configuration
func parseYAMLConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
	}
	return nil
}

// parseJSONConfig parses JSON configuration
func parseJSONConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := json.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}
