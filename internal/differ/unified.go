package differ

import (
	"github.com/aleister1102/sidediff/internal/common/errorwrapper"
	"github.com/aleister1102/sidediff/internal/models"
	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedDiff renders a unified text diff of the two sequences. AllContext
// keeps every unchanged line in a single hunk.
func UnifiedDiff(before, after []string, fromFile, toFile string, context models.ContextLines) (string, error) {
	n := int(context)
	if context.IsAll() {
		n = len(before) + len(after)
	}

	diff := difflib.UnifiedDiff{
		A:        terminateLines(before),
		B:        terminateLines(after),
		FromFile: fromFile,
		ToFile:   toFile,
		Context:  n,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", errorwrapper.WrapError(err, "failed to write unified diff")
	}
	return text, nil
}

// terminateLines appends a newline to every line
func terminateLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line + "\n"
	}
	return out
}
