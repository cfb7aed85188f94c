package extractor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/aleister1102/sidediff/internal/common/errorwrapper"
	"github.com/aleister1102/sidediff/internal/models"
	"github.com/rs/zerolog"
)

// changeSelector matches the inline highlight classes of a diff table
const changeSelector = ".diff_sub, .diff_chg, .diff_add"

// ChangeExtractor reads before/after change pairs back out of a rendered
// diff: side-by-side tables with six, four or three cells per row, pages
// saved from a browser's source view, and plain unified diff text.
type ChangeExtractor struct {
	logger zerolog.Logger
	config ChangeExtractorConfig
}

// NewChangeExtractor creates a new ChangeExtractor
func NewChangeExtractor(logger zerolog.Logger, config ChangeExtractorConfig) *ChangeExtractor {
	if config.Placeholder == "" {
		config.Placeholder = models.DefaultMissingPlaceholder
	}
	return &ChangeExtractor{
		logger: logger.With().Str("component", "ChangeExtractor").Logger(),
		config: config,
	}
}

// Extract returns every change found in document. An unrecognised document
// yields an empty result, not an error; only unreadable input fails.
func (ce *ChangeExtractor) Extract(document string) (*models.ExtractionResult, error) {
	if ce.config.MaxContentSize > 0 && int64(len(document)) > ce.config.MaxContentSize {
		return nil, errorwrapper.NewValidationError("document", len(document),
			fmt.Sprintf("exceeds maximum size of %d bytes", ce.config.MaxContentSize))
	}
	return ce.extract(document, 0)
}

func (ce *ChangeExtractor) extract(document string, depth int) (*models.ExtractionResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse diff document")
	}

	if depth < maxUnwrapDepth && isViewSource(doc) {
		raw := doc.Find("body").Text()
		if strings.HasPrefix(strings.TrimSpace(raw), "<") {
			ce.logger.Debug().Int("depth", depth).Msg("Detected source view page, unwrapping content")
			return ce.extract(raw, depth+1)
		}
	}

	rows := doc.Find("tr")
	result := &models.ExtractionResult{
		Changes: []models.Change{},
		Meta: models.ExtractionMeta{
			TotalRows:    rows.Length(),
			DetectedType: models.LayoutUnknown,
		},
	}

	if rows.Length() == 0 {
		ce.logger.Debug().Msg("No table rows found, parsing as plain unified diff")
		if changes := ce.parsePlainText(document); len(changes) > 0 {
			result.Changes = changes
			result.Meta.DetectedType = models.LayoutPlainTextUnified
			result.Meta.ColumnCount = 1
		}
		return result, nil
	}

	maxCells := 0
	rows.Each(func(_ int, row *goquery.Selection) {
		maxCells = max(maxCells, rowCells(row).Length())
	})
	result.Meta.ColumnCount = maxCells

	if maxCells == 0 {
		if changes := ce.parsePlainText(document); len(changes) > 0 {
			result.Changes = changes
			result.Meta.DetectedType = models.LayoutPlainTextUnifiedAlt
			result.Meta.ColumnCount = 1
			return result, nil
		}
	}

	layout := detectLayout(maxCells)
	result.Meta.DetectedType = layout

	var pending *sideBySideRow
	flush := func() {
		if pending == nil {
			return
		}
		if change, found := ce.sideBySideChange(pending); found {
			result.Changes = append(result.Changes, change)
		}
		pending = nil
	}

	rows.Each(func(_ int, row *goquery.Selection) {
		cells := rowCells(row)
		if cells.Length() < maxCells {
			return
		}

		switch layout {
		case models.LayoutStandard6Col, models.LayoutCompact4Col:
			next := readSideBySideRow(row, cells, layout)
			if pending != nil && next.continuation {
				pending.merge(next)
				return
			}
			flush()
			pending = &next
		case models.LayoutUnified3Col:
			if change, found := ce.unifiedRowChange(row); found {
				result.Changes = append(result.Changes, change)
			}
		}
	})
	flush()

	ce.logger.Debug().
		Int("rows", result.Meta.TotalRows).
		Int("columns", maxCells).
		Str("layout", string(layout)).
		Int("changes", len(result.Changes)).
		Msg("Parsed diff document")

	return result, nil
}

// sideBySideRow is one line pair of a two-sided table with the rows it
// wrapped onto folded back in
type sideBySideRow struct {
	left         string
	right        string
	changed      bool
	continuation bool
}

// readSideBySideRow reads the content cells of a row. A row counts as
// changed when a content cell holds a highlight, or, for six-column tables,
// when the row carries a change navigation link.
func readSideBySideRow(row, cells *goquery.Selection, layout models.Layout) sideBySideRow {
	left, right := cells.Eq(1), cells.Eq(3)
	continuation := row.HasClass(continuationClass)
	if layout == models.LayoutStandard6Col {
		left, right = cells.Eq(2), cells.Eq(5)
		continuation = continuation || isContinuationHeader(cells.Eq(1), cells.Eq(4))
	}

	changed := left.Find(changeSelector).Length() > 0 || right.Find(changeSelector).Length() > 0
	if !changed && layout == models.LayoutStandard6Col {
		changed = row.Find(`a[href*="#difflib_chg"]`).Length() > 0
	}

	return sideBySideRow{
		left:         left.Text(),
		right:        right.Text(),
		changed:      changed,
		continuation: continuation,
	}
}

// merge appends a continuation row. Wrapping splits lines at any rune, so
// the chunks are joined as is.
func (r *sideBySideRow) merge(next sideBySideRow) {
	r.left += next.left
	r.right += next.right
	r.changed = r.changed || next.changed
}

// isContinuationHeader reports whether the line number cells mark a wrapped
// row: at least one side shows the marker and neither shows a number.
func isContinuationHeader(left, right *goquery.Selection) bool {
	l := strings.TrimSpace(left.Text())
	r := strings.TrimSpace(right.Text())
	if l != continuationMarker && r != continuationMarker {
		return false
	}
	return (l == "" || l == continuationMarker) && (r == "" || r == continuationMarker)
}

func (ce *ChangeExtractor) sideBySideChange(row *sideBySideRow) (models.Change, bool) {
	if !row.changed {
		return models.Change{}, false
	}
	return ce.newChange(collapseWhitespace(row.left), collapseWhitespace(row.right))
}

// unifiedRowChange reads a one-sided change from a three-column row
func (ce *ChangeExtractor) unifiedRowChange(row *goquery.Selection) (models.Change, bool) {
	if added := row.Find(".diff_add").First(); added.Length() > 0 {
		return ce.newChange(ce.config.Placeholder, collapseWhitespace(added.Text()))
	}
	if removed := row.Find(".diff_sub").First(); removed.Length() > 0 {
		return ce.newChange(collapseWhitespace(removed.Text()), ce.config.Placeholder)
	}
	return models.Change{}, false
}

// newChange drops empty and identical pairs and fills empty sides
func (ce *ChangeExtractor) newChange(before, after string) (models.Change, bool) {
	if before == "" && after == "" {
		return models.Change{}, false
	}
	if before == after {
		return models.Change{}, false
	}
	return models.Change{
		Before: orPlaceholder(before, ce.config.Placeholder),
		After:  orPlaceholder(after, ce.config.Placeholder),
	}, true
}

// parsePlainText reads removed and added lines of a unified diff. File
// headers are skipped and hunk lines are not paired.
func (ce *ChangeExtractor) parsePlainText(text string) []models.Change {
	var changes []models.Change
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			continue
		case strings.HasPrefix(line, "-"):
			changes = append(changes, models.Change{
				Before: strings.TrimSpace(line[1:]),
				After:  ce.config.Placeholder,
			})
		case strings.HasPrefix(line, "+"):
			changes = append(changes, models.Change{
				Before: ce.config.Placeholder,
				After:  strings.TrimSpace(line[1:]),
			})
		}
	}
	return changes
}

// rowCells returns the cells of row itself, not of tables nested in it
func rowCells(row *goquery.Selection) *goquery.Selection {
	return row.ChildrenFiltered("td")
}

func isViewSource(doc *goquery.Document) bool {
	if id, ok := doc.Find("body").Attr("id"); ok && id == "viewsource" {
		return true
	}
	return doc.Find(".line-number").Length() > 0
}

func detectLayout(columns int) models.Layout {
	switch {
	case columns >= 6:
		return models.LayoutStandard6Col
	case columns == 4:
		return models.LayoutCompact4Col
	case columns == 3:
		return models.LayoutUnified3Col
	default:
		return models.LayoutUnknown
	}
}
