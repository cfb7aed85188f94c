package differ

import (
	"github.com/aleister1102/sidediff/internal/models"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffProcessor handles character-level diffing of paired lines
type DiffProcessor struct {
	dmp    *diffmatchpatch.DiffMatchPatch
	config DiffConfig
}

// NewDiffProcessor creates a new diff processor
func NewDiffProcessor(config DiffConfig) *DiffProcessor {
	dmp := diffmatchpatch.New()
	// No deadline: the same pair must always produce the same diff.
	dmp.DiffTimeout = 0

	return &DiffProcessor{
		dmp:    dmp,
		config: config,
	}
}

// ProcessDiff generates a character diff between two strings
func (dp *DiffProcessor) ProcessDiff(text1, text2 string) []diffmatchpatch.Diff {
	diffs := dp.dmp.DiffMain(text1, text2, false)

	if dp.config.EnableSemanticCleanup {
		diffs = dp.dmp.DiffCleanupSemantic(diffs)
	}

	return diffs
}

// Highlight returns the styled segments of each side of a paired line. A
// deletion directly followed by an insertion is a change on both sides; lone
// deletions and insertions only show on their own side.
func (dp *DiffProcessor) Highlight(left, right string) ([]models.Segment, []models.Segment) {
	diffs := dp.ProcessDiff(left, right)

	var leftSegs, rightSegs []models.Segment
	for i := 0; i < len(diffs); i++ {
		d := diffs[i]
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			leftSegs = appendSegment(leftSegs, d.Text, models.SegmentPlain)
			rightSegs = appendSegment(rightSegs, d.Text, models.SegmentPlain)
		case diffmatchpatch.DiffDelete:
			if i+1 < len(diffs) && diffs[i+1].Type == diffmatchpatch.DiffInsert {
				leftSegs = appendSegment(leftSegs, d.Text, models.SegmentChanged)
				rightSegs = appendSegment(rightSegs, diffs[i+1].Text, models.SegmentChanged)
				i++
				continue
			}
			leftSegs = appendSegment(leftSegs, d.Text, models.SegmentRemoved)
		case diffmatchpatch.DiffInsert:
			if i+1 < len(diffs) && diffs[i+1].Type == diffmatchpatch.DiffDelete {
				leftSegs = appendSegment(leftSegs, diffs[i+1].Text, models.SegmentChanged)
				rightSegs = appendSegment(rightSegs, d.Text, models.SegmentChanged)
				i++
				continue
			}
			rightSegs = appendSegment(rightSegs, d.Text, models.SegmentAdded)
		}
	}

	return leftSegs, rightSegs
}

// appendSegment adds text to segs, merging with the last segment of the same kind
func appendSegment(segs []models.Segment, text string, kind models.SegmentKind) []models.Segment {
	if text == "" {
		return segs
	}
	if n := len(segs); n > 0 && segs[n-1].Kind == kind {
		segs[n-1].Text += text
		return segs
	}
	return append(segs, models.Segment{Text: text, Kind: kind})
}

// DiffStatsCalculator calculates statistics from opcodes
type DiffStatsCalculator struct{}

// NewDiffStatsCalculator creates a new diff stats calculator
func NewDiffStatsCalculator() *DiffStatsCalculator {
	return &DiffStatsCalculator{}
}

// CalculateStats counts lines per opcode kind. Paired lines of a replace count
// as changed; the unpaired remainder counts as added or deleted.
func (dsc *DiffStatsCalculator) CalculateStats(opcodes []models.Opcode) models.DiffStatistics {
	stats := models.DiffStatistics{}

	for _, op := range opcodes {
		switch op.Tag {
		case models.OpEqual:
			stats.LinesEqual += op.BeforeLen()
		case models.OpInsert:
			stats.LinesAdded += op.AfterLen()
		case models.OpDelete:
			stats.LinesDeleted += op.BeforeLen()
		case models.OpReplace:
			paired := min(op.BeforeLen(), op.AfterLen())
			stats.LinesChanged += paired
			stats.LinesDeleted += op.BeforeLen() - paired
			stats.LinesAdded += op.AfterLen() - paired
		}
	}

	stats.IsIdentical = stats.LinesAdded == 0 && stats.LinesDeleted == 0 && stats.LinesChanged == 0
	return stats
}
