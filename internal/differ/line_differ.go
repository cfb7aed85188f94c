package differ

import (
	"strings"

	"github.com/aleister1102/sidediff/internal/models"
	"github.com/pmezard/go-difflib/difflib"
)

// LineDiffer aligns two line sequences with longest-matching-block search.
// Every line takes part in matching; the popularity junk heuristic is off so
// repeated lines are never skipped.
type LineDiffer struct{}

// NewLineDiffer creates a new line differ
func NewLineDiffer() *LineDiffer {
	return &LineDiffer{}
}

// Opcodes returns the ordered opcodes turning before into after. The ranges
// partition both sequences; identical non-empty inputs yield one equal opcode
// and two empty inputs yield none.
func (ld *LineDiffer) Opcodes(before, after []string) []models.Opcode {
	matcher := difflib.NewMatcherWithJunk(before, after, false, nil)
	codes := matcher.GetOpCodes()

	opcodes := make([]models.Opcode, 0, len(codes))
	for _, code := range codes {
		if code.I1 == code.I2 && code.J1 == code.J2 {
			continue
		}
		opcodes = append(opcodes, models.Opcode{
			Tag: mapOpTag(code.Tag),
			I1:  code.I1,
			I2:  code.I2,
			J1:  code.J1,
			J2:  code.J2,
		})
	}
	return opcodes
}

// mapOpTag maps difflib opcode bytes to models tags
func mapOpTag(tag byte) models.OpTag {
	switch tag {
	case 'r':
		return models.OpReplace
	case 'd':
		return models.OpDelete
	case 'i':
		return models.OpInsert
	default:
		return models.OpEqual
	}
}

// SplitLines splits text into lines without their line terminators. A final
// newline does not produce a trailing empty line, and "" yields no lines.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
