package report

import (
	"fmt"

	"github.com/pgxtools/pgx-risk/internal/kb"
	"github.com/pgxtools/pgx-risk/internal/risk"
)

// Urgency levels for clinical follow-up.
const (
	UrgencyUrgent   = "URGENT"
	UrgencyHigh     = "HIGH"
	UrgencyModerate = "MODERATE"
	UrgencyRoutine  = "ROUTINE"
)

// Recommendation is the clinical recommendation derived from one analysis.
type Recommendation struct {
	Urgency        string   `json:"urgency"`
	Summary        string   `json:"summary"`
	Text           string   `json:"text"`
	DosageAdvice   string   `json:"dosage_advice"`
	Alternatives   []string `json:"alternatives,omitempty"`
	MonitoringPlan string   `json:"monitoring_plan"`
	EvidenceTier   string   `json:"evidence_tier"`
}

// Recommend derives the clinical recommendation from a completed analysis.
// It reads only engine output and is independent of Explain.
func Recommend(a *risk.Analysis) Recommendation {
	return Recommendation{
		Urgency:        urgency(a.Rule),
		Summary:        summarize(a),
		Text:           a.Rule.Recommendation,
		DosageAdvice:   a.Rule.DosageAdvice,
		Alternatives:   a.Rule.Alternatives,
		MonitoringPlan: kb.MonitoringPlan(a.Drug, a.Rule.Risk),
		EvidenceTier:   kb.EvidenceTier(a.Drug),
	}
}

// urgency grades follow-up priority from the dispatched rule.
func urgency(rule kb.RiskRule) string {
	switch {
	case rule.Severity == kb.SeverityCritical:
		return UrgencyUrgent
	case rule.Severity == kb.SeverityHigh:
		return UrgencyHigh
	case rule.Risk == kb.RiskAdjustDosage:
		return UrgencyModerate
	default:
		return UrgencyRoutine
	}
}

// summarize produces the risk-category-keyed narrative headline.
func summarize(a *risk.Analysis) string {
	phenotype := a.Phenotype.Phenotype.String()
	switch a.Rule.Risk {
	case kb.RiskSafe:
		return fmt.Sprintf("%s can be used at standard dosing; the patient's %s %s genotype predicts normal drug handling.",
			a.Drug, a.Gene, phenotype)
	case kb.RiskAdjustDosage:
		return fmt.Sprintf("%s requires dose adjustment: the patient's %s %s status alters expected drug exposure.",
			a.Drug, a.Gene, phenotype)
	case kb.RiskToxic:
		return fmt.Sprintf("%s carries an elevated toxicity risk for this patient due to %s %s status.",
			a.Drug, a.Gene, phenotype)
	case kb.RiskIneffective:
		return fmt.Sprintf("%s is likely to be ineffective for this patient due to %s %s status.",
			a.Drug, a.Gene, phenotype)
	default:
		return fmt.Sprintf("The pharmacogenomic risk of %s could not be classified for this patient.", a.Drug)
	}
}
