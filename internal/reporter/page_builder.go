package reporter

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/aleister1102/sidediff/internal/models"
)

// rowClass is the <tr> class of each row kind; equal rows carry none
var rowClass = map[models.OpTag]string{
	models.OpReplace: "diff_chg",
	models.OpDelete:  "diff_sub",
	models.OpInsert:  "diff_add",
}

// PageDataBuilder lays a diff result out as template data
type PageDataBuilder struct {
	diffUtils *DiffUtils
	css       template.CSS
}

// NewPageDataBuilder creates a builder embedding the given stylesheet
func NewPageDataBuilder(css template.CSS) *PageDataBuilder {
	return &PageDataBuilder{
		diffUtils: NewDiffUtils(),
		css:       css,
	}
}

// Build converts a diff result into page data. Each change group gets an
// anchor; the first row links to the first change and every change links to
// the next one, the last change linking back to the top.
func (pb *PageDataBuilder) Build(result *models.DiffResult, opts models.RenderOptions) models.DiffReportPageData {
	title := opts.Title
	if title == "" {
		title = DefaultReportTitle
	}

	columns := ColumnsWithoutLineNumbers
	if opts.LineNumbers {
		columns = ColumnsWithLineNumbers
	}

	data := models.DiffReportPageData{
		ReportTitle: title,
		FromDesc:    opts.FromDesc,
		ToDesc:      opts.ToDesc,
		LineNumbers: opts.LineNumbers,
		ColumnCount: columns,
		TopID:       TopAnchorID,
		Summary:     pb.diffUtils.CreateDiffSummary(result.Stats),
		Notice:      notice(result, opts),
		StyleCSS:    pb.css,
	}

	totalChanges := 0
	for _, group := range result.Groups {
		if group.Tag.IsChange() {
			totalChanges++
		}
	}

	changeIdx := 0
	for _, group := range result.Groups {
		view := models.DiffGroupView{
			Class:       "diff_op_" + string(group.Tag),
			Skipped:     group.Skipped,
			HiddenLines: group.HiddenLines,
		}
		if group.Skipped {
			view.Class = "diff_skip"
			data.Groups = append(data.Groups, view)
			continue
		}

		for rowIdx, row := range group.Rows {
			rowView := models.DiffRowView{
				Class: rowClass[row.Tag],
				Left:  pb.cellView(row.Left),
				Right: pb.cellView(row.Right),
			}
			if isContinuationRow(row) {
				rowView.Class = strings.TrimSpace(rowView.Class + " " + ContinuationRowClass)
			}
			if group.Tag.IsChange() && rowIdx == 0 {
				rowView.NextID = anchorID(changeIdx)
				if changeIdx+1 < totalChanges {
					rowView.NextLink = anchorLink(anchorID(changeIdx+1), "n")
				} else {
					rowView.NextLink = anchorLink(TopAnchorID, "t")
				}
				changeIdx++
			}
			view.Rows = append(view.Rows, rowView)
		}
		data.Groups = append(data.Groups, view)
	}

	pb.linkFirstChange(&data, totalChanges)
	return data
}

// linkFirstChange puts the "f" link on the first row unless that row
// already starts a change.
func (pb *PageDataBuilder) linkFirstChange(data *models.DiffReportPageData, totalChanges int) {
	if totalChanges == 0 {
		return
	}
	for gi := range data.Groups {
		if data.Groups[gi].Skipped || len(data.Groups[gi].Rows) == 0 {
			continue
		}
		first := &data.Groups[gi].Rows[0]
		if first.NextID == "" {
			first.NextLink = anchorLink(anchorID(0), "f")
		}
		return
	}
}

func (pb *PageDataBuilder) cellView(cell *models.Cell) models.DiffCellView {
	if cell == nil {
		return models.DiffCellView{Blank: true}
	}

	lineNo := ContinuationMarker
	if !cell.Continuation {
		lineNo = strconv.Itoa(cell.LineNo)
	}
	return models.DiffCellView{
		LineNo:  lineNo,
		Content: pb.diffUtils.GenerateSegmentsHTML(cell.Segments),
	}
}

// notice returns the message shown when no rows are rendered
func notice(result *models.DiffResult, opts models.RenderOptions) string {
	if !opts.ContextLines.IsAll() {
		if !result.HasChanges() {
			return NoDifferencesNotice
		}
		return ""
	}
	if len(result.Before) == 0 && len(result.After) == 0 {
		return EmptyFileNotice
	}
	return ""
}

func isContinuationRow(row models.DiffRow) bool {
	return (row.Left != nil && row.Left.Continuation) || (row.Right != nil && row.Right.Continuation)
}

func anchorID(n int) string {
	return fmt.Sprintf("%s%d", AnchorPrefix, n)
}

func anchorLink(id, label string) template.HTML {
	return template.HTML(fmt.Sprintf(`<a href="#%s">%s</a>`, id, label))
}
