package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aleister1102/sidediff/internal/common/errorwrapper"
	"github.com/aleister1102/sidediff/internal/common/filemanager"
	"github.com/aleister1102/sidediff/internal/config"
	"github.com/aleister1102/sidediff/internal/extractor"
	"github.com/aleister1102/sidediff/internal/models"
	"github.com/rs/zerolog"
)

// runExtract reads a rendered diff and prints the changes it contains
func runExtract(cfg *config.GlobalConfig, flags ExtractFlags, logger zerolog.Logger, stdout io.Writer) error {
	if flags.InputFile == "" {
		return errorwrapper.NewValidationError("file", flags.InputFile, "a diff document to extract from is required")
	}

	maxSize := int64(cfg.ExtractorConfig.MaxDocumentSizeMB) * 1024 * 1024
	readOpts := filemanager.DefaultFileReadOptions()
	readOpts.MaxSize = maxSize

	data, err := filemanager.NewFileManager(logger).ReadFile(flags.InputFile, readOpts)
	if err != nil {
		return errorwrapper.WrapError(err, "failed to read diff document")
	}

	changeExtractor := extractor.NewChangeExtractor(logger, extractor.ChangeExtractorConfig{
		Placeholder:    cfg.ExtractorConfig.Placeholder,
		MaxContentSize: maxSize,
	})
	result, err := changeExtractor.Extract(string(data))
	if err != nil {
		return err
	}

	if flags.JSON {
		encoder := json.NewEncoder(stdout)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		return encoder.Encode(result)
	}
	return writeChangesText(stdout, result)
}

// writeChangesText prints numbered before/after blocks
func writeChangesText(w io.Writer, result *models.ExtractionResult) error {
	if len(result.Changes) == 0 {
		_, err := fmt.Fprintf(w, "No changes found (detected: %s, columns: %d)\n", result.Meta.DetectedType, result.Meta.ColumnCount)
		return err
	}

	for i, change := range result.Changes {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "[change %d]\nBefore: %s\nAfter : %s\n", i+1, change.Before, change.After); err != nil {
			return err
		}
	}
	return nil
}
