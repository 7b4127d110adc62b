package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgxtools/pgx-risk/internal/vcf"
)

func TestConfidenceTier(t *testing.T) {
	tests := []struct {
		confidence float64
		want       string
	}{
		{0.95, "1A"},
		{0.90, "1A"},
		{0.89, "1B"},
		{0.80, "1B"},
		{0.79, "2A"},
		{0.70, "2A"},
		{0.69, "2B"},
		{0.0, "2B"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, confidenceTier(tt.confidence), "confidence %.2f", tt.confidence)
	}
}

func TestExplain_WithVariants(t *testing.T) {
	groups := map[string][]*vcf.Record{
		"CYP2D6": {
			{
				ID:         "rs3892097",
				Chrom:      "22",
				Pos:        42524947,
				Ref:        "C",
				Alt:        "T",
				Gene:       "CYP2D6",
				StarAllele: "*4",
				Zygosity:   vcf.ZygosityHomozygousAlternate,
			},
		},
	}
	a := analysisFor(t, "Codeine", groups)
	ex := Explain(a)

	assert.Contains(t, ex.Mechanism, "CYP2D6")
	assert.Contains(t, ex.Mechanism, "far slower than typical")

	require.Len(t, ex.Variants, 1)
	assert.Contains(t, ex.Variants[0], "rs3892097")
	assert.Contains(t, ex.Variants[0], "22:42524947")
	assert.Contains(t, ex.Variants[0], "*4")
	assert.Contains(t, ex.Variants[0], "homozygous_alternate")

	assert.Contains(t, ex.RiskContext, "*4/*4")
	assert.Contains(t, ex.RiskContext, "0.0")
	assert.Contains(t, ex.RiskContext, "Poor Metabolizer")

	assert.Contains(t, ex.Factors, "Relevant variants matched: 1")
	assert.Equal(t, "1A", ex.ConfidenceTier)
}

func TestExplain_NoVariants(t *testing.T) {
	a := analysisFor(t, "Warfarin", map[string][]*vcf.Record{})
	ex := Explain(a)

	require.Len(t, ex.Variants, 1)
	assert.Contains(t, ex.Variants[0], "No CYP2C9 variants were detected")
	assert.Contains(t, ex.Variants[0], "*1/*1")
	assert.Contains(t, ex.Factors, "No relevant variants detected; reference genotype assumed")
}

func TestExplain_UncharacterizedAllele(t *testing.T) {
	groups := map[string][]*vcf.Record{
		"CYP2C19": {
			{ID: "rs4244285", Chrom: "10", Pos: 94781859, Ref: "G", Alt: "A",
				Gene: "CYP2C19", Zygosity: vcf.ZygosityHeterozygous},
		},
	}
	a := analysisFor(t, "Clopidogrel", groups)
	ex := Explain(a)

	require.Len(t, ex.Variants, 1)
	assert.Contains(t, ex.Variants[0], "an uncharacterized allele")
}
