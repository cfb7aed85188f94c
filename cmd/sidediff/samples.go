package main

// Built-in texts diffed when no input files are given
var (
	sampleBefore = []string{"Line 1", "Line 2", "Line 3"}
	sampleAfter  = []string{"Line 1", "Line 2 changed", "Line 3", "Line 4 added"}
)

const (
	sampleFromDesc = "before"
	sampleToDesc   = "after"
)
