package differ

import (
	"github.com/aleister1102/sidediff/internal/common/errorwrapper"
	"github.com/aleister1102/sidediff/internal/models"
	"github.com/rs/zerolog"
)

// DifferBuilder provides a fluent interface for creating Differ
type DifferBuilder struct {
	logger      zerolog.Logger
	config      DiffConfig
	aligner     LineAligner
	highlighter LineHighlighter
}

// NewDifferBuilder creates a new builder
func NewDifferBuilder(logger zerolog.Logger) *DifferBuilder {
	return &DifferBuilder{
		logger: logger.With().Str("component", "Differ").Logger(),
		config: DefaultDiffConfig(),
	}
}

// WithConfig sets the diff configuration
func (b *DifferBuilder) WithConfig(config DiffConfig) *DifferBuilder {
	b.config = config
	return b
}

// WithOptions takes the diff configuration from render options
func (b *DifferBuilder) WithOptions(opts models.RenderOptions) *DifferBuilder {
	b.config = DiffConfigFromOptions(opts)
	return b
}

// WithAligner replaces the line aligner
func (b *DifferBuilder) WithAligner(aligner LineAligner) *DifferBuilder {
	b.aligner = aligner
	return b
}

// WithHighlighter replaces the intra-line highlighter
func (b *DifferBuilder) WithHighlighter(highlighter LineHighlighter) *DifferBuilder {
	b.highlighter = highlighter
	return b
}

// Build creates a new Differ instance
func (b *DifferBuilder) Build() (*Differ, error) {
	if b.config.ColumnWidth < 0 {
		return nil, errorwrapper.NewValidationError("column_width", b.config.ColumnWidth, "must not be negative")
	}
	if b.config.TabSize < 1 {
		return nil, errorwrapper.NewValidationError("tab_size", b.config.TabSize, "must be at least 1")
	}
	if b.config.ContextLines < models.AllContext {
		return nil, errorwrapper.NewValidationError("context_lines", int(b.config.ContextLines), "must be 'all' or not negative")
	}

	aligner := b.aligner
	if aligner == nil {
		aligner = NewLineDiffer()
	}
	highlighter := b.highlighter
	if highlighter == nil {
		highlighter = NewDiffProcessor(b.config)
	}

	return &Differ{
		logger:          b.logger,
		config:          b.config,
		aligner:         aligner,
		rowBuilder:      NewRowBuilder(highlighter, b.config.TabSize),
		wrapper:         NewLineWrapper(b.config.ColumnWidth),
		statsCalculator: NewDiffStatsCalculator(),
	}, nil
}
