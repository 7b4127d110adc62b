package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pgxtools/pgx-risk/internal/report"
)

// TabWriter writes a tab-delimited per-drug summary.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a tab-delimited summary writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Drug",
			"Gene",
			"Diplotype",
			"Phenotype",
			"Risk",
			"Severity",
			"Confidence",
			"Urgency",
			"Evidence",
			"Note",
		},
	}
}

// Write writes the header line and one row per drug, then flushes.
func (tw *TabWriter) Write(r *report.Report) error {
	if _, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n"); err != nil {
		return err
	}

	for _, d := range r.Drugs {
		if err := tw.writeRow(d); err != nil {
			return err
		}
	}

	return tw.w.Flush()
}

func (tw *TabWriter) writeRow(d report.DrugReport) error {
	if d.Error != "" {
		values := []string{d.Drug, "-", "-", "-", "Unknown", "-", "-", "-", "-", d.Error}
		_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
		return err
	}

	values := []string{
		d.Drug,
		d.Profile.Gene,
		d.Profile.Diplotype,
		d.Profile.Phenotype,
		d.Risk.Label,
		d.Risk.Severity,
		fmt.Sprintf("%.2f", d.Risk.Confidence),
		d.Recommendation.Urgency,
		d.Recommendation.EvidenceTier,
		"-",
	}

	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}
