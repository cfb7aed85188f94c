package models

import "strings"

// OpTag classifies an opcode.
type OpTag string

const (
	// OpEqual marks ranges that are identical on both sides.
	OpEqual OpTag = "equal"
	// OpReplace marks a before range replaced by an after range.
	OpReplace OpTag = "replace"
	// OpDelete marks a before range with no counterpart in after.
	OpDelete OpTag = "delete"
	// OpInsert marks an after range with no counterpart in before.
	OpInsert OpTag = "insert"
)

// IsChange reports whether the tag describes a difference.
func (t OpTag) IsChange() bool {
	return t == OpReplace || t == OpDelete || t == OpInsert
}

// Opcode relates the half-open range [I1,I2) of the before sequence to the
// half-open range [J1,J2) of the after sequence.
type Opcode struct {
	Tag OpTag `json:"tag"`
	I1  int   `json:"i1"`
	I2  int   `json:"i2"`
	J1  int   `json:"j1"`
	J2  int   `json:"j2"`
}

// BeforeLen returns the number of before lines covered by the opcode.
func (o Opcode) BeforeLen() int { return o.I2 - o.I1 }

// AfterLen returns the number of after lines covered by the opcode.
func (o Opcode) AfterLen() int { return o.J2 - o.J1 }

// SegmentKind defines how a run of text inside a cell is styled.
type SegmentKind string

const (
	SegmentPlain   SegmentKind = "plain"
	SegmentAdded   SegmentKind = "added"
	SegmentRemoved SegmentKind = "removed"
	SegmentChanged SegmentKind = "changed"
)

// Segment is a run of text with a single styling kind.
type Segment struct {
	Text string      `json:"text"`
	Kind SegmentKind `json:"kind"`
}

// Cell is one side of a rendered row.
type Cell struct {
	// LineNo is 1-based; it is 0 on wrapped continuation cells.
	LineNo       int       `json:"line_no"`
	Continuation bool      `json:"continuation,omitempty"`
	Segments     []Segment `json:"segments"`
}

// Text joins the segment texts of the cell.
func (c *Cell) Text() string {
	if c == nil {
		return ""
	}
	var sb strings.Builder
	for _, seg := range c.Segments {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// DiffRow is one aligned line pair. A nil side renders as a blank cell.
type DiffRow struct {
	Tag   OpTag `json:"tag"`
	Left  *Cell `json:"left,omitempty"`
	Right *Cell `json:"right,omitempty"`
}

// RowGroup holds the rows produced by one opcode. Skipped groups stand in for
// unchanged lines hidden by context trimming and carry no rows.
type RowGroup struct {
	Tag         OpTag     `json:"tag"`
	Rows        []DiffRow `json:"rows,omitempty"`
	Skipped     bool      `json:"skipped,omitempty"`
	HiddenLines int       `json:"hidden_lines,omitempty"`
}

// DiffStatistics holds line counts for a diff.
type DiffStatistics struct {
	LinesAdded   int  `json:"lines_added"`
	LinesDeleted int  `json:"lines_deleted"`
	LinesChanged int  `json:"lines_changed"`
	LinesEqual   int  `json:"lines_equal"`
	IsIdentical  bool `json:"is_identical"`
}

// DiffResult holds the structured result of diffing two line sequences.
type DiffResult struct {
	Before  []string       `json:"-"`
	After   []string       `json:"-"`
	Opcodes []Opcode       `json:"opcodes"`
	Groups  []RowGroup     `json:"groups"`
	Stats   DiffStatistics `json:"stats"`
}

// HasChanges reports whether any opcode is not an equal opcode.
func (r *DiffResult) HasChanges() bool {
	for _, op := range r.Opcodes {
		if op.Tag.IsChange() {
			return true
		}
	}
	return false
}
