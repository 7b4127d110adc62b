package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgxtools/pgx-risk/internal/report"
)

func sampleReport() *report.Report {
	return &report.Report{
		GeneratedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Drugs: []report.DrugReport{
			{
				Drug: "Codeine",
				Risk: &report.RiskAssessment{Label: "Ineffective", Severity: "High", Confidence: 0.95},
				Profile: &report.Profile{
					Gene:      "CYP2D6",
					Diplotype: "*4/*4",
					Phenotype: "Poor Metabolizer",
					Variants:  []report.VariantSummary{},
				},
				Recommendation: &report.Recommendation{Urgency: "HIGH", EvidenceTier: "CPIC Level A"},
				Explanation:    &report.Explanation{Mechanism: "CYP2D6 activates codeine."},
			},
			{
				Drug:  "Aspirin",
				Error: "drug \"Aspirin\" is not in the supported drug list",
			},
		},
		Quality: report.Quality{RecordsAnalyzed: 3, RelevantVariants: 1},
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONWriter(&buf).Write(sampleReport()))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	drugs, ok := decoded["drugs"].([]interface{})
	require.True(t, ok)
	require.Len(t, drugs, 2)

	first := drugs[0].(map[string]interface{})
	assert.Equal(t, "Codeine", first["drug"])
	assert.NotContains(t, first, "error")

	second := drugs[1].(map[string]interface{})
	assert.Equal(t, "Aspirin", second["drug"])
	assert.NotContains(t, second, "risk")
	assert.Contains(t, second["error"], "not in the supported drug list")

	// Indented output for human inspection.
	assert.True(t, strings.Contains(buf.String(), "\n  "))
}

func TestTabWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTabWriter(&buf).Write(sampleReport()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	header := strings.Split(lines[0], "\t")
	assert.Equal(t, "#Drug", header[0])
	assert.Len(t, header, 10)

	row := strings.Split(lines[1], "\t")
	require.Len(t, row, 10)
	assert.Equal(t, "Codeine", row[0])
	assert.Equal(t, "CYP2D6", row[1])
	assert.Equal(t, "*4/*4", row[2])
	assert.Equal(t, "Ineffective", row[4])
	assert.Equal(t, "0.95", row[6])
	assert.Equal(t, "HIGH", row[7])
	assert.Equal(t, "-", row[9])

	errRow := strings.Split(lines[2], "\t")
	require.Len(t, errRow, 10)
	assert.Equal(t, "Aspirin", errRow[0])
	assert.Equal(t, "-", errRow[1])
	assert.Equal(t, "Unknown", errRow[4])
	assert.Contains(t, errRow[9], "not in the supported drug list")
}
