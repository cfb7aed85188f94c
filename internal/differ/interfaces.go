package differ

import "github.com/aleister1102/sidediff/internal/models"

// LineAligner computes the opcode sequence relating two line sequences.
type LineAligner interface {
	Opcodes(before, after []string) []models.Opcode
}

// LineHighlighter splits a paired line into styled segments for each side.
type LineHighlighter interface {
	Highlight(left, right string) ([]models.Segment, []models.Segment)
}
