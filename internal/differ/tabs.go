package differ

import "strings"

// expandTabs replaces each tab with spaces up to the next multiple of tabSize
// columns. Columns count runes, matching how the classic renderer expands.
func expandTabs(line string, tabSize int) string {
	if tabSize < 1 || !strings.Contains(line, "\t") {
		return line
	}

	var sb strings.Builder
	col := 0
	for _, r := range line {
		switch r {
		case '\t':
			pad := tabSize - col%tabSize
			sb.WriteString(strings.Repeat(" ", pad))
			col += pad
		case '\n', '\r':
			sb.WriteRune(r)
			col = 0
		default:
			sb.WriteRune(r)
			col++
		}
	}
	return sb.String()
}

// expandAllTabs expands tabs in every line, returning a new slice
func expandAllTabs(lines []string, tabSize int) []string {
	expanded := make([]string, len(lines))
	for i, line := range lines {
		expanded[i] = expandTabs(line, tabSize)
	}
	return expanded
}
