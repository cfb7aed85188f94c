package config

const (
	// Config file resolution
	ConfigPathEnvVar    = "SIDEDIFF_CONFIG_PATH"
	MaxConfigFileSizeMB = 10

	// Diff Defaults
	DefaultDiffColumnWidth     = 0
	DefaultDiffContextLines    = "all"
	DefaultDiffLineNumbers     = true
	DefaultDiffTabSize         = 8
	DefaultDiffSemanticCleanup = true

	// Reporter Defaults
	DefaultReporterOutputPath       = "sample_diff.html"
	DefaultReporterOutputFormat     = OutputFormatHTML
	DefaultReporterMaxInputFileSize = 50

	// Extractor Defaults
	DefaultExtractorPlaceholder       = "(なし)"
	DefaultExtractorMaxDocumentSizeMB = 50

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3
)

// Output formats
const (
	OutputFormatHTML    = "html"
	OutputFormatTable   = "table"
	OutputFormatUnified = "unified"
)
