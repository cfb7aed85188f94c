package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/aleister1102/sidediff/internal/common/errorwrapper"
	"github.com/aleister1102/sidediff/internal/common/filemanager"
	"github.com/aleister1102/sidediff/internal/config"
	"github.com/aleister1102/sidediff/internal/differ"
	"github.com/aleister1102/sidediff/internal/models"
	"github.com/aleister1102/sidediff/internal/reporter"
	"github.com/rs/zerolog"
)

// applyFlagOverrides copies command line values over the loaded configuration
func applyFlagOverrides(cfg *config.GlobalConfig, flags AppFlags) error {
	if flags.OutputPath != "" {
		cfg.ReporterConfig.OutputPath = flags.OutputPath
	}
	if flags.Format != "" {
		cfg.ReporterConfig.OutputFormat = config.NormalizeOutputFormat(flags.Format)
	}
	if flags.ContextLines != "" {
		contextLines, err := models.ParseContextLines(flags.ContextLines)
		if err != nil {
			return errorwrapper.NewValidationError("context", flags.ContextLines, err.Error())
		}
		cfg.DiffConfig.ContextLines = contextLines
	}
	return nil
}

// loadInputs returns the two line sequences and their descriptions. Without
// input files the built-in sample is used.
func loadInputs(fm *filemanager.FileManager, cfg *config.GlobalConfig, flags AppFlags) (before, after []string, fromDesc, toDesc string, err error) {
	if flags.FromFile == "" && flags.ToFile == "" {
		return sampleBefore, sampleAfter, sampleFromDesc, sampleToDesc, nil
	}
	if flags.FromFile == "" || flags.ToFile == "" {
		return nil, nil, "", "", errorwrapper.NewValidationError("from/to", fmt.Sprintf("%q/%q", flags.FromFile, flags.ToFile), "both -from and -to are required to diff files")
	}

	opts := filemanager.DefaultFileReadOptions()
	opts.MaxSize = int64(cfg.ReporterConfig.MaxInputFileSizeMB) * 1024 * 1024

	fromData, err := fm.ReadFile(flags.FromFile, opts)
	if err != nil {
		return nil, nil, "", "", errorwrapper.WrapError(err, "failed to read -from file")
	}
	toData, err := fm.ReadFile(flags.ToFile, opts)
	if err != nil {
		return nil, nil, "", "", errorwrapper.WrapError(err, "failed to read -to file")
	}

	return differ.SplitLines(string(fromData)), differ.SplitLines(string(toData)),
		filepath.Base(flags.FromFile), filepath.Base(flags.ToFile), nil
}

// runDiff renders the configured output and writes it, printing the path
func runDiff(ctx context.Context, cfg *config.GlobalConfig, flags AppFlags, logger zerolog.Logger, stdout io.Writer) error {
	fm := filemanager.NewFileManager(logger)

	before, after, fromDesc, toDesc, err := loadInputs(fm, cfg, flags)
	if err != nil {
		return err
	}

	opts := cfg.RenderOptions()
	if opts.FromDesc == "" {
		opts.FromDesc = fromDesc
	}
	if opts.ToDesc == "" {
		opts.ToDesc = toDesc
	}

	htmlReporter, err := reporter.NewHtmlDiffReporter(logger)
	if err != nil {
		return errorwrapper.WrapError(err, "failed to initialize HTML diff reporter")
	}

	var content string
	switch cfg.ReporterConfig.Format() {
	case config.OutputFormatUnified:
		content, err = differ.UnifiedDiff(before, after, opts.FromDesc, opts.ToDesc, opts.ContextLines)
	default:
		content, err = htmlReporter.Render(before, after, opts)
	}
	if err != nil {
		return err
	}

	path, err := htmlReporter.WriteReport(ctx, content, cfg.ReporterConfig.OutputPath)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout, "Generated %s\n", path)
	return err
}
