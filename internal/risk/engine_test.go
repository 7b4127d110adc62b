package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgxtools/pgx-risk/internal/kb"
	"github.com/pgxtools/pgx-risk/internal/vcf"
)

func cyp2d6Star4HomAlt() map[string][]*vcf.Record {
	return map[string][]*vcf.Record{
		"CYP2D6": {
			{ID: "rs3892097", Gene: "CYP2D6", StarAllele: "*4", Zygosity: vcf.ZygosityHomozygousAlternate},
		},
	}
}

// rs3892097 hom-alt: *4/*4, activity 0, PM, codeine rule Ineffective/High.
func TestAnalyzeDrug_CodeinePoorMetabolizer(t *testing.T) {
	outcome := NewEngine().AnalyzeDrug("Codeine", cyp2d6Star4HomAlt())
	require.True(t, outcome.Succeeded())

	a := outcome.Analysis
	assert.Equal(t, "Codeine", a.Drug)
	assert.Equal(t, "CYP2D6", a.Gene)
	assert.Equal(t, "*4/*4", a.Phenotype.Diplotype)
	assert.Equal(t, 0.0, a.Phenotype.ActivityScore)
	assert.Equal(t, "PM", a.Phenotype.Phenotype.Abbrev())
	assert.Equal(t, kb.RiskIneffective, a.Rule.Risk)
	assert.Equal(t, kb.SeverityHigh, a.Rule.Severity)
	require.Len(t, a.Variants, 1)
}

// No variants for any gene: default diplotype, NM, warfarin is Safe.
func TestAnalyzeDrug_WarfarinNoVariants(t *testing.T) {
	outcome := NewEngine().AnalyzeDrug("Warfarin", map[string][]*vcf.Record{})
	require.True(t, outcome.Succeeded())

	a := outcome.Analysis
	assert.Equal(t, "CYP2C9", a.Gene)
	assert.Equal(t, "*1/*1", a.Phenotype.Diplotype)
	assert.Equal(t, "NM", a.Phenotype.Phenotype.Abbrev())
	assert.Equal(t, kb.RiskSafe, a.Rule.Risk)
	assert.Empty(t, a.Variants)
}

func TestAnalyzeDrug_UnsupportedDrug(t *testing.T) {
	outcome := NewEngine().AnalyzeDrug("Aspirin", map[string][]*vcf.Record{})
	require.False(t, outcome.Succeeded())
	assert.Nil(t, outcome.Analysis)
	require.NotNil(t, outcome.Failure)
	assert.Equal(t, "Aspirin", outcome.Failure.Drug)
	assert.Contains(t, outcome.Failure.Reason, "not in the supported drug list")
}

func TestAnalyzeDrug_NameNormalization(t *testing.T) {
	outcome := NewEngine().AnalyzeDrug("  CODEINE ", cyp2d6Star4HomAlt())
	require.True(t, outcome.Succeeded())
	assert.Equal(t, "Codeine", outcome.Analysis.Drug)
}

// Rule-table gaps resolve through the NM fallback, never an error.
// Tramadol has no RM entry; a *1/*1xN genotype scores 2.5 (RM) and must
// dispatch the NM rule.
func TestAnalyzeDrug_PhenotypeFallback(t *testing.T) {
	groups := map[string][]*vcf.Record{
		"CYP2D6": {
			{ID: "dup", Gene: "CYP2D6", StarAllele: "*1xN", Zygosity: vcf.ZygosityHeterozygous},
		},
	}
	outcome := NewEngine().AnalyzeDrug("Tramadol", groups)
	require.True(t, outcome.Succeeded())

	a := outcome.Analysis
	assert.Equal(t, "*1/*1xN", a.Phenotype.Diplotype)
	assert.Equal(t, "RM", a.Phenotype.Phenotype.Abbrev())
	assert.Equal(t, kb.RiskSafe, a.Rule.Risk, "RM gap falls back to the NM rule")
}

// An unsupported drug yields exactly one failure entry and leaves sibling
// drugs untouched.
func TestAnalyzeAll_PartialFailure(t *testing.T) {
	outcomes := NewEngine().AnalyzeAll([]string{"Codeine", "Aspirin", "Warfarin"}, cyp2d6Star4HomAlt())
	require.Len(t, outcomes, 3)

	assert.True(t, outcomes[0].Succeeded())
	assert.False(t, outcomes[1].Succeeded())
	assert.True(t, outcomes[2].Succeeded())
}

// The output slice preserves the caller's drug ordering regardless of
// worker scheduling.
func TestAnalyzeAll_OrderPreservation(t *testing.T) {
	drugs := []string{
		"Codeine", "Tramadol", "Clopidogrel", "Voriconazole", "Warfarin",
		"Simvastatin", "Azathioprine", "Mercaptopurine", "Fluorouracil", "Capecitabine",
	}
	// Repeat the list to give the pool enough work to interleave.
	var request []string
	for range 20 {
		request = append(request, drugs...)
	}

	outcomes := NewEngine().AnalyzeAll(request, map[string][]*vcf.Record{})
	require.Len(t, outcomes, len(request))
	for i, o := range outcomes {
		assert.Equal(t, request[i], o.Drug, "outcome %d out of order", i)
	}
}

func TestAnalyzeAll_EmptyRequest(t *testing.T) {
	outcomes := NewEngine().AnalyzeAll(nil, map[string][]*vcf.Record{})
	assert.Empty(t, outcomes)
}
