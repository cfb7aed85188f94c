package differ

import (
	"strings"

	"github.com/aleister1102/sidediff/internal/models"
	"github.com/mattn/go-runewidth"
)

// LineWrapper splits long cells into continuation rows of bounded display width
type LineWrapper struct {
	width     int
	condition *runewidth.Condition
}

// NewLineWrapper creates a wrapper for the given column width. East Asian
// ambiguous runes are measured as narrow regardless of the host locale.
func NewLineWrapper(width int) *LineWrapper {
	return &LineWrapper{
		width:     width,
		condition: &runewidth.Condition{EastAsianWidth: false},
	}
}

// WrapGroups wraps every row of every group. Widths below 1 leave rows intact.
func (lw *LineWrapper) WrapGroups(groups []models.RowGroup) []models.RowGroup {
	if lw.width < 1 {
		return groups
	}

	wrapped := make([]models.RowGroup, 0, len(groups))
	for _, group := range groups {
		if group.Skipped {
			wrapped = append(wrapped, group)
			continue
		}
		rows := make([]models.DiffRow, 0, len(group.Rows))
		for _, row := range group.Rows {
			rows = append(rows, lw.wrapRow(row)...)
		}
		group.Rows = rows
		wrapped = append(wrapped, group)
	}
	return wrapped
}

// wrapRow splits one row; the first output row keeps the line numbers and
// later rows are continuations. A side with fewer chunks is left blank.
func (lw *LineWrapper) wrapRow(row models.DiffRow) []models.DiffRow {
	leftChunks := lw.wrapCell(row.Left)
	rightChunks := lw.wrapCell(row.Right)

	count := max(len(leftChunks), len(rightChunks), 1)
	rows := make([]models.DiffRow, 0, count)
	for k := 0; k < count; k++ {
		rows = append(rows, models.DiffRow{
			Tag:   row.Tag,
			Left:  chunkCell(row.Left, leftChunks, k),
			Right: chunkCell(row.Right, rightChunks, k),
		})
	}
	return rows
}

func chunkCell(orig *models.Cell, chunks [][]models.Segment, k int) *models.Cell {
	if orig == nil || k >= len(chunks) {
		return nil
	}
	if k == 0 {
		return &models.Cell{LineNo: orig.LineNo, Segments: chunks[0]}
	}
	return &models.Cell{Continuation: true, Segments: chunks[k]}
}

// wrapCell splits the cell segments into chunks no wider than the column
// width. A rune wider than the column is placed alone on its chunk.
func (lw *LineWrapper) wrapCell(cell *models.Cell) [][]models.Segment {
	if cell == nil {
		return nil
	}

	chunks := [][]models.Segment{nil}
	used := 0
	for _, seg := range cell.Segments {
		var sb strings.Builder
		for _, r := range seg.Text {
			w := lw.condition.RuneWidth(r)
			if used > 0 && used+w > lw.width {
				last := len(chunks) - 1
				chunks[last] = appendSegment(chunks[last], sb.String(), seg.Kind)
				chunks = append(chunks, nil)
				sb.Reset()
				used = 0
			}
			sb.WriteRune(r)
			used += w
		}
		last := len(chunks) - 1
		chunks[last] = appendSegment(chunks[last], sb.String(), seg.Kind)
	}
	return chunks
}

// StringWidth reports the display width of s as measured by the wrapper
func (lw *LineWrapper) StringWidth(s string) int {
	return lw.condition.StringWidth(s)
}
