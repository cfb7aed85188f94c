package main

import (
	"flag"
	"io"
)

type AppFlags struct {
	FromFile         string
	ToFile           string
	OutputPath       string
	Format           string
	GlobalConfigFile string
	ContextLines     string
}

type ExtractFlags struct {
	InputFile        string
	JSON             bool
	GlobalConfigFile string
}

// ParseFlags parses the diff command line. Long flags win over their aliases.
func ParseFlags(args []string, output io.Writer) (AppFlags, error) {
	fs := flag.NewFlagSet("sidediff", flag.ContinueOnError)
	fs.SetOutput(output)

	fromFile := fs.String("from", "", "Path to the original text file. Uses a built-in sample when neither -from nor -to is set.")
	fromFileAlias := fs.String("f", "", "Alias for -from")

	toFile := fs.String("to", "", "Path to the changed text file.")
	toFileAlias := fs.String("t", "", "Alias for -to")

	outputPath := fs.String("output", "", "Path of the generated file (overrides config file if set)")
	outputPathAlias := fs.String("o", "", "Alias for -output")

	format := fs.String("format", "", "Output format: html, table or unified (overrides config file if set)")

	globalConfigFile := fs.String("globalconfig", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := fs.String("gc", "", "Alias for -globalconfig")

	contextLines := fs.String("context", "", "Unchanged lines kept around each change, or 'all' (overrides config file if set)")

	if err := fs.Parse(args); err != nil {
		return AppFlags{}, err
	}

	return AppFlags{
		FromFile:         firstNonEmpty(*fromFile, *fromFileAlias),
		ToFile:           firstNonEmpty(*toFile, *toFileAlias),
		OutputPath:       firstNonEmpty(*outputPath, *outputPathAlias),
		Format:           *format,
		GlobalConfigFile: firstNonEmpty(*globalConfigFile, *globalConfigFileAlias),
		ContextLines:     *contextLines,
	}, nil
}

// ParseExtractFlags parses the arguments of the extract subcommand
func ParseExtractFlags(args []string, output io.Writer) (ExtractFlags, error) {
	fs := flag.NewFlagSet("sidediff extract", flag.ContinueOnError)
	fs.SetOutput(output)

	jsonOutput := fs.Bool("json", false, "Print the extracted changes as JSON")
	globalConfigFile := fs.String("globalconfig", "", "Path to the global YAML/JSON configuration file.")
	globalConfigFileAlias := fs.String("gc", "", "Alias for -globalconfig")

	if err := fs.Parse(args); err != nil {
		return ExtractFlags{}, err
	}

	return ExtractFlags{
		InputFile:        fs.Arg(0),
		JSON:             *jsonOutput,
		GlobalConfigFile: firstNonEmpty(*globalConfigFile, *globalConfigFileAlias),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
