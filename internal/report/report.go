// Package report renders analysis results for the command line as a styled
// text report, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/bpe-analyzer/internal/domain"
)

// Render writes files to w in the given format.
func Render(w io.Writer, format domain.OutputFormat, files []domain.FileAnalysis) error {
	switch format {
	case domain.OutputFormatText:
		return Text(w, files)
	case domain.OutputFormatJSON:
		return JSON(w, files)
	case domain.OutputFormatYAML:
		return YAML(w, files)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// JSON writes files as an indented JSON array.
func JSON(w io.Writer, files []domain.FileAnalysis) error {
	if files == nil {
		files = []domain.FileAnalysis{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(files)
}

// YAML writes files as a YAML sequence.
func YAML(w io.Writer, files []domain.FileAnalysis) error {
	if files == nil {
		files = []domain.FileAnalysis{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(files); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
