package models

import "html/template"

// DiffCellView is one side of a row, ready for the template.
type DiffCellView struct {
	Blank   bool
	LineNo  string
	Content template.HTML
}

// DiffRowView is a rendered table row.
type DiffRowView struct {
	Class    string
	NextID   string
	NextLink template.HTML
	Left     DiffCellView
	Right    DiffCellView
}

// DiffGroupView is a <tbody> of rows. Skipped groups render a single
// separator row.
type DiffGroupView struct {
	Class       string
	Skipped     bool
	HiddenLines int
	Rows        []DiffRowView
}

// DiffReportPageData holds all the data needed to render the diff template.
type DiffReportPageData struct {
	ReportTitle string
	FromDesc    string
	ToDesc      string
	LineNumbers bool
	ColumnCount int
	TopID       string
	Summary     string
	Notice      string
	Groups      []DiffGroupView
	StyleCSS    template.CSS
}
