// Package output provides report output formatters.
package output

import (
	"encoding/json"
	"io"

	"github.com/pgxtools/pgx-risk/internal/report"
)

// ReportWriter writes a complete analysis report.
type ReportWriter interface {
	Write(r *report.Report) error
}

// JSONWriter writes the full report as indented JSON.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a JSON report writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// Write marshals the report to the underlying writer.
func (jw *JSONWriter) Write(r *report.Report) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
