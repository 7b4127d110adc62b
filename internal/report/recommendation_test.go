package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgxtools/pgx-risk/internal/kb"
	"github.com/pgxtools/pgx-risk/internal/risk"
	"github.com/pgxtools/pgx-risk/internal/vcf"
)

func analysisFor(t *testing.T, drug string, groups map[string][]*vcf.Record) *risk.Analysis {
	t.Helper()
	outcome := risk.NewEngine().AnalyzeDrug(drug, groups)
	require.True(t, outcome.Succeeded())
	return outcome.Analysis
}

func TestUrgency(t *testing.T) {
	tests := []struct {
		name string
		rule kb.RiskRule
		want string
	}{
		{"critical severity", kb.RiskRule{Risk: kb.RiskToxic, Severity: kb.SeverityCritical}, UrgencyUrgent},
		{"high severity", kb.RiskRule{Risk: kb.RiskIneffective, Severity: kb.SeverityHigh}, UrgencyHigh},
		{"adjust dosage", kb.RiskRule{Risk: kb.RiskAdjustDosage, Severity: kb.SeverityModerate}, UrgencyModerate},
		{"safe", kb.RiskRule{Risk: kb.RiskSafe, Severity: kb.SeverityLow}, UrgencyRoutine},
		{"high beats adjust", kb.RiskRule{Risk: kb.RiskAdjustDosage, Severity: kb.SeverityHigh}, UrgencyHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, urgency(tt.rule))
		})
	}
}

func TestRecommend_SafeDrug(t *testing.T) {
	a := analysisFor(t, "Warfarin", map[string][]*vcf.Record{})
	rec := Recommend(a)

	assert.Equal(t, UrgencyRoutine, rec.Urgency)
	assert.Contains(t, rec.Summary, "Warfarin")
	assert.Contains(t, rec.Summary, "standard dosing")
	assert.NotEmpty(t, rec.Text)
	assert.NotEmpty(t, rec.DosageAdvice)
	assert.Equal(t, "CPIC Level A", rec.EvidenceTier)
	assert.Contains(t, rec.MonitoringPlan, "INR")
}

func TestRecommend_IneffectiveDrug(t *testing.T) {
	groups := map[string][]*vcf.Record{
		"CYP2D6": {
			{ID: "rs3892097", Gene: "CYP2D6", StarAllele: "*4", Zygosity: vcf.ZygosityHomozygousAlternate},
		},
	}
	a := analysisFor(t, "Codeine", groups)
	rec := Recommend(a)

	assert.Equal(t, UrgencyHigh, rec.Urgency)
	assert.Contains(t, rec.Summary, "ineffective")
	assert.NotEmpty(t, rec.Alternatives)
}

func TestRecommend_AdjustDosagePlan(t *testing.T) {
	groups := map[string][]*vcf.Record{
		"CYP2C9": {
			{ID: "rs1057910", Gene: "CYP2C9", StarAllele: "*3", Zygosity: vcf.ZygosityHomozygousAlternate},
		},
	}
	a := analysisFor(t, "Warfarin", groups)
	require.Equal(t, kb.RiskAdjustDosage, a.Rule.Risk)

	rec := Recommend(a)
	assert.Contains(t, rec.MonitoringPlan, "INR every 2-3 days")
}
