package reporter

import (
	"html/template"

	"github.com/aleister1102/sidediff/internal/models"
)

// cellTemplateArgs is the argument of the "diff_cell" template
type cellTemplateArgs struct {
	Cell        models.DiffCellView
	LineNumbers bool
}

// GetCommonTemplateFunctions returns common functions for templates
func GetCommonTemplateFunctions() template.FuncMap {
	return template.FuncMap{
		"dec": func(i int) int {
			return i - 1
		},
	}
}

// GetDiffTemplateFunctions returns functions specific for diff templates
func GetDiffTemplateFunctions() template.FuncMap {
	funcMap := GetCommonTemplateFunctions()

	funcMap["cellArgs"] = func(cell models.DiffCellView, lineNumbers bool) cellTemplateArgs {
		return cellTemplateArgs{Cell: cell, LineNumbers: lineNumbers}
	}

	return funcMap
}
