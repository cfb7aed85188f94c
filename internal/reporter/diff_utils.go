package reporter

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/aleister1102/sidediff/internal/models"
)

// DiffUtils contains helpers turning diff cells into markup
type DiffUtils struct{}

// NewDiffUtils creates a new DiffUtils
func NewDiffUtils() *DiffUtils {
	return &DiffUtils{}
}

// segmentClass maps segment kinds to the inline highlight classes
var segmentClass = map[models.SegmentKind]string{
	models.SegmentAdded:   "diff_add",
	models.SegmentRemoved: "diff_sub",
	models.SegmentChanged: "diff_chg",
}

// GenerateSegmentsHTML escapes each segment and wraps highlighted ones in a span
func (du *DiffUtils) GenerateSegmentsHTML(segments []models.Segment) template.HTML {
	var htmlBuilder strings.Builder
	for _, seg := range segments {
		escapedText := template.HTMLEscapeString(seg.Text)

		class, highlighted := segmentClass[seg.Kind]
		if !highlighted {
			htmlBuilder.WriteString(escapedText)
			continue
		}
		htmlBuilder.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, class, escapedText))
	}
	return template.HTML(htmlBuilder.String())
}

// CreateDiffSummary creates text summary of diff
func (du *DiffUtils) CreateDiffSummary(stats models.DiffStatistics) string {
	if stats.IsIdentical {
		return "No differences."
	}
	return fmt.Sprintf("%d changed, %d added (+), %d deleted (-), %d unchanged.",
		stats.LinesChanged, stats.LinesAdded, stats.LinesDeleted, stats.LinesEqual)
}
