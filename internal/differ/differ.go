package differ

import (
	"github.com/aleister1102/sidediff/internal/models"
	"github.com/rs/zerolog"
)

// Differ aligns two line sequences and lays them out as side-by-side rows
type Differ struct {
	logger          zerolog.Logger
	config          DiffConfig
	aligner         LineAligner
	rowBuilder      *RowBuilder
	wrapper         *LineWrapper
	statsCalculator *DiffStatsCalculator
}

// NewDiffer creates a Differ for the given render options
func NewDiffer(logger zerolog.Logger, opts models.RenderOptions) (*Differ, error) {
	return NewDifferBuilder(logger).
		WithOptions(opts).
		Build()
}

// Diff compares before against after. It never fails; every pair of
// sequences has a result.
func (d *Differ) Diff(before, after []string) *models.DiffResult {
	opcodes := d.aligner.Opcodes(before, after)

	groups := d.rowBuilder.BuildGroups(before, after, opcodes)
	groups = ApplyContext(groups, d.config.ContextLines)
	groups = d.wrapper.WrapGroups(groups)

	stats := d.statsCalculator.CalculateStats(opcodes)

	d.logger.Debug().
		Int("before_lines", len(before)).
		Int("after_lines", len(after)).
		Int("opcodes", len(opcodes)).
		Int("groups", len(groups)).
		Bool("identical", stats.IsIdentical).
		Msg("Computed line diff")

	return &models.DiffResult{
		Before:  before,
		After:   after,
		Opcodes: opcodes,
		Groups:  groups,
		Stats:   stats,
	}
}

// Config returns the configuration the differ was built with
func (d *Differ) Config() DiffConfig {
	return d.config
}
