package reporter

const (
	DefaultOutputPath         = "sample_diff.html"
	DefaultReportTitle        = "Side-by-side Diff"
	DiffReportTemplateFile    = "templates/diff_report.html.tmpl"
	DiffReportTemplateName    = "diff_report"
	DiffTableTemplateName     = "diff_table"

	// Embedded asset paths
	EmbeddedDiffCSSPath = "assets/css/diff_report.css"

	// Anchor prefix shared by every rendered table
	AnchorPrefix = "difflib_chg_to0__"
	TopAnchorID  = AnchorPrefix + "top"

	// Marker shown instead of a line number on wrapped continuation rows,
	// and the class those rows carry
	ContinuationMarker   = ">"
	ContinuationRowClass = "diff_cont"

	// Notice rows
	EmptyFileNotice     = "Empty File"
	NoDifferencesNotice = "No Differences Found"

	// Column counts of the diff table
	ColumnsWithLineNumbers    = 6
	ColumnsWithoutLineNumbers = 4
)
