package differ

import "github.com/aleister1102/sidediff/internal/models"

// RowBuilder turns opcodes into side-by-side row groups, one group per opcode
type RowBuilder struct {
	highlighter LineHighlighter
	tabSize     int
}

// NewRowBuilder creates a new row builder
func NewRowBuilder(highlighter LineHighlighter, tabSize int) *RowBuilder {
	return &RowBuilder{
		highlighter: highlighter,
		tabSize:     tabSize,
	}
}

// BuildGroups renders every opcode into rows. Line numbers are 1-based and
// advance independently on each side.
func (rb *RowBuilder) BuildGroups(before, after []string, opcodes []models.Opcode) []models.RowGroup {
	before = expandAllTabs(before, rb.tabSize)
	after = expandAllTabs(after, rb.tabSize)

	groups := make([]models.RowGroup, 0, len(opcodes))
	for _, op := range opcodes {
		var rows []models.DiffRow
		switch op.Tag {
		case models.OpEqual:
			rows = rb.buildEqualRows(before, after, op)
		case models.OpDelete:
			rows = rb.buildDeleteRows(before, op.I1, op.I2)
		case models.OpInsert:
			rows = rb.buildInsertRows(after, op.J1, op.J2)
		case models.OpReplace:
			rows = rb.buildReplaceRows(before, after, op)
		}
		groups = append(groups, models.RowGroup{Tag: op.Tag, Rows: rows})
	}
	return groups
}

func (rb *RowBuilder) buildEqualRows(before, after []string, op models.Opcode) []models.DiffRow {
	rows := make([]models.DiffRow, 0, op.BeforeLen())
	for k := 0; k < op.BeforeLen(); k++ {
		rows = append(rows, models.DiffRow{
			Tag:   models.OpEqual,
			Left:  newCell(op.I1+k+1, before[op.I1+k], models.SegmentPlain),
			Right: newCell(op.J1+k+1, after[op.J1+k], models.SegmentPlain),
		})
	}
	return rows
}

func (rb *RowBuilder) buildDeleteRows(before []string, i1, i2 int) []models.DiffRow {
	rows := make([]models.DiffRow, 0, i2-i1)
	for i := i1; i < i2; i++ {
		rows = append(rows, models.DiffRow{
			Tag:  models.OpDelete,
			Left: newCell(i+1, before[i], models.SegmentRemoved),
		})
	}
	return rows
}

func (rb *RowBuilder) buildInsertRows(after []string, j1, j2 int) []models.DiffRow {
	rows := make([]models.DiffRow, 0, j2-j1)
	for j := j1; j < j2; j++ {
		rows = append(rows, models.DiffRow{
			Tag:   models.OpInsert,
			Right: newCell(j+1, after[j], models.SegmentAdded),
		})
	}
	return rows
}

// buildReplaceRows pairs lines by position. The shorter range is fully paired
// and the rest of the longer one becomes delete or insert rows.
func (rb *RowBuilder) buildReplaceRows(before, after []string, op models.Opcode) []models.DiffRow {
	paired := min(op.BeforeLen(), op.AfterLen())
	rows := make([]models.DiffRow, 0, max(op.BeforeLen(), op.AfterLen()))

	for k := 0; k < paired; k++ {
		i, j := op.I1+k, op.J1+k
		leftSegs, rightSegs := rb.highlighter.Highlight(before[i], after[j])
		rows = append(rows, models.DiffRow{
			Tag:   models.OpReplace,
			Left:  &models.Cell{LineNo: i + 1, Segments: leftSegs},
			Right: &models.Cell{LineNo: j + 1, Segments: rightSegs},
		})
	}

	rows = append(rows, rb.buildDeleteRows(before, op.I1+paired, op.I2)...)
	rows = append(rows, rb.buildInsertRows(after, op.J1+paired, op.J2)...)
	return rows
}

// newCell builds a cell holding the whole line as one segment
func newCell(lineNo int, text string, kind models.SegmentKind) *models.Cell {
	return &models.Cell{
		LineNo:   lineNo,
		Segments: appendSegment(nil, text, kind),
	}
}
