package reporter

import (
	"bytes"
	"context"
	"embed"
	"html/template"

	"github.com/aleister1102/sidediff/internal/common/errorwrapper"
	"github.com/aleister1102/sidediff/internal/common/filemanager"
	"github.com/aleister1102/sidediff/internal/differ"
	"github.com/aleister1102/sidediff/internal/models"
	"github.com/rs/zerolog"
)

//go:embed templates/*
var templateFS embed.FS

//go:embed assets/*
var assetsFS embed.FS

// HtmlDiffReporter renders side-by-side HTML diffs of two line sequences
type HtmlDiffReporter struct {
	logger      zerolog.Logger
	template    *template.Template
	pageBuilder *PageDataBuilder
	fileManager *filemanager.FileManager
}

// NewHtmlDiffReporter creates a new instance of HtmlDiffReporter
func NewHtmlDiffReporter(logger zerolog.Logger) (*HtmlDiffReporter, error) {
	reporter := &HtmlDiffReporter{
		logger:      logger.With().Str("component", "HtmlDiffReporter").Logger(),
		fileManager: filemanager.NewFileManager(logger),
	}

	if err := reporter.initializeTemplate(); err != nil {
		return nil, err
	}

	css, err := assetsFS.ReadFile(EmbeddedDiffCSSPath)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read embedded diff stylesheet")
	}
	reporter.pageBuilder = NewPageDataBuilder(template.CSS(css))

	return reporter, nil
}

// initializeTemplate initializes template with functions
func (r *HtmlDiffReporter) initializeTemplate() error {
	tmpl, err := template.New("").Funcs(GetDiffTemplateFunctions()).ParseFS(templateFS, DiffReportTemplateFile)
	if err != nil {
		return errorwrapper.WrapError(err, "failed to parse HTML diff template")
	}

	r.logger.Debug().Str("defined_templates", tmpl.DefinedTemplates()).Msg("HTML diff template parsed successfully")
	r.template = tmpl
	return nil
}

// Render returns the diff of before and after as a complete HTML document,
// or only the table when opts.TableOnly is set. The output depends on the
// inputs alone.
func (r *HtmlDiffReporter) Render(before, after []string, opts models.RenderOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	d, err := differ.NewDiffer(r.logger, opts)
	if err != nil {
		return "", err
	}

	return r.RenderResult(d.Diff(before, after), opts)
}

// RenderResult renders an already computed diff result
func (r *HtmlDiffReporter) RenderResult(result *models.DiffResult, opts models.RenderOptions) (string, error) {
	pageData := r.pageBuilder.Build(result, opts)

	name := DiffReportTemplateName
	if opts.TableOnly {
		name = DiffTableTemplateName
	}

	var buf bytes.Buffer
	if err := r.template.ExecuteTemplate(&buf, name, pageData); err != nil {
		r.logger.Error().Err(err).Str("template", name).Msg("Failed to execute template for diff report")
		return "", errorwrapper.WrapError(err, "failed to execute template")
	}

	return buf.String(), nil
}

// GenerateDiffReport renders the diff and writes it to outputPath
func (r *HtmlDiffReporter) GenerateDiffReport(ctx context.Context, before, after []string, opts models.RenderOptions, outputPath string) (string, error) {
	html, err := r.Render(before, after, opts)
	if err != nil {
		return "", err
	}
	return r.WriteReport(ctx, html, outputPath)
}

// WriteReport writes rendered output to outputPath
func (r *HtmlDiffReporter) WriteReport(ctx context.Context, content, outputPath string) (string, error) {
	if outputPath == "" {
		outputPath = DefaultOutputPath
	}

	writeOpts := filemanager.DefaultFileWriteOptions()
	writeOpts.Context = ctx
	if err := r.fileManager.WriteFile(outputPath, []byte(content), writeOpts); err != nil {
		r.logger.Error().Err(err).Str("path", outputPath).Msg("Failed to write diff report file")
		return "", errorwrapper.WrapError(err, "failed to write diff report")
	}

	r.logger.Info().Str("path", outputPath).Int("bytes", len(content)).Msg("Successfully wrote diff report")
	return outputPath, nil
}
