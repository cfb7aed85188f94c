package models

// DefaultMissingPlaceholder stands in for the absent side of an added or
// removed line.
const DefaultMissingPlaceholder = "(なし)"

// Layout names the table shape a change extraction detected.
type Layout string

const (
	LayoutUnknown             Layout = "unknown"
	LayoutStandard6Col        Layout = "standard_6col"
	LayoutCompact4Col         Layout = "compact_4col"
	LayoutUnified3Col         Layout = "unified_3col"
	LayoutPlainTextUnified    Layout = "plain_text_unified"
	LayoutPlainTextUnifiedAlt Layout = "plain_text_unified_fallback"
)

// Change is one before/after pair pulled out of a rendered diff.
type Change struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// ExtractionMeta describes how a document was interpreted.
type ExtractionMeta struct {
	TotalRows    int    `json:"total_rows"`
	DetectedType Layout `json:"detected_type"`
	ColumnCount  int    `json:"column_count"`
}

// ExtractionResult is the outcome of reading changes from a document.
type ExtractionResult struct {
	Changes []Change       `json:"changes"`
	Meta    ExtractionMeta `json:"meta"`
}
