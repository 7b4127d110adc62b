package report

import (
	"fmt"

	"github.com/pgxtools/pgx-risk/internal/kb"
	"github.com/pgxtools/pgx-risk/internal/risk"
)

// Explanation is the narrative backing an assessment.
type Explanation struct {
	Mechanism      string   `json:"mechanism"`
	Variants       []string `json:"variants"`
	RiskContext    string   `json:"risk_context"`
	Factors        []string `json:"factors"`
	ConfidenceTier string   `json:"confidence_tier"`
}

// patientImpact phrases the consequence of each metabolizer category.
var patientImpact = map[string]string{
	"PM":  "This patient carries two non-functional or severely reduced alleles and metabolizes substrates of this enzyme far slower than typical.",
	"IM":  "This patient carries reduced-function variation and metabolizes substrates of this enzyme slower than typical.",
	"NM":  "This patient's genotype predicts typical enzyme activity and drug handling.",
	"RM":  "This patient carries increased-function variation and metabolizes substrates of this enzyme faster than typical.",
	"URM": "This patient carries strongly increased-function variation and metabolizes substrates of this enzyme much faster than typical.",
}

// Explain derives the explanatory narrative from a completed analysis.
// It reads only engine output and is independent of Recommend.
func Explain(a *risk.Analysis) Explanation {
	return Explanation{
		Mechanism:      mechanism(a),
		Variants:       variantNarratives(a),
		RiskContext:    riskContext(a),
		Factors:        contributingFactors(a),
		ConfidenceTier: confidenceTier(a.Rule.Confidence),
	}
}

// mechanism combines the gene's biological role with the patient-specific
// impact of the scored phenotype.
func mechanism(a *risk.Analysis) string {
	impact := patientImpact[a.Phenotype.Phenotype.Abbrev()]
	return kb.GeneRole(a.Gene) + " " + impact
}

// variantNarratives interprets each matched record, or states explicitly
// that the reference genotype was assumed when none matched.
func variantNarratives(a *risk.Analysis) []string {
	if len(a.Variants) == 0 {
		return []string{fmt.Sprintf(
			"No %s variants were detected in the supplied file; the reference genotype %s was assumed with normal function.",
			a.Gene, a.Phenotype.Diplotype)}
	}

	narratives := make([]string, 0, len(a.Variants))
	for _, v := range a.Variants {
		allele := v.StarAllele
		if allele == "" {
			allele = "an uncharacterized allele"
		}
		narratives = append(narratives, fmt.Sprintf(
			"%s at %s:%d (%s>%s) defines %s %s and was called %s.",
			v.ID, v.Chrom, v.Pos, v.Ref, v.Alt, a.Gene, allele, v.Zygosity))
	}
	return narratives
}

// riskContext explains why the dispatched rule applies.
func riskContext(a *risk.Analysis) string {
	return fmt.Sprintf(
		"The %s diplotype %s yields an activity score of %.1f, classifying the patient as a %s. %s",
		a.Gene, a.Phenotype.Diplotype, a.Phenotype.ActivityScore,
		a.Phenotype.Phenotype.String(), a.Rule.Mechanism)
}

// contributingFactors lists the evidence behind the classification.
func contributingFactors(a *risk.Analysis) []string {
	factors := []string{
		fmt.Sprintf("%s diplotype: %s (%s / %s)", a.Gene, a.Phenotype.Diplotype,
			a.Assignment.Function1, a.Assignment.Function2),
		fmt.Sprintf("Activity score: %.1f", a.Phenotype.ActivityScore),
		fmt.Sprintf("Metabolizer phenotype: %s", a.Phenotype.Phenotype.String()),
	}
	if len(a.Variants) == 0 {
		factors = append(factors, "No relevant variants detected; reference genotype assumed")
	} else {
		factors = append(factors, fmt.Sprintf("Relevant variants matched: %d", len(a.Variants)))
	}
	return factors
}

// confidenceTier maps a rule confidence score onto CPIC-style evidence
// tiers.
func confidenceTier(confidence float64) string {
	switch {
	case confidence >= 0.90:
		return "1A"
	case confidence >= 0.80:
		return "1B"
	case confidence >= 0.70:
		return "2A"
	default:
		return "2B"
	}
}
