// Package report turns risk-engine outcomes into clinical reports:
// recommendation and explanation text plus the per-drug report objects
// consumed by the caller.
package report

import (
	"time"

	"github.com/pgxtools/pgx-risk/internal/risk"
	"github.com/pgxtools/pgx-risk/internal/vcf"
)

// Report is the complete response for one analysis request. Drugs preserves
// the caller's requested ordering.
type Report struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Drugs       []DrugReport `json:"drugs"`
	Quality     Quality      `json:"quality"`
}

// Quality echoes aggregate input metrics back to the caller.
type Quality struct {
	RecordsAnalyzed   int      `json:"records_analyzed"`
	RelevantVariants  int      `json:"relevant_variants"`
	GenesWithFindings []string `json:"genes_with_findings,omitempty"`
}

// DrugReport is the per-drug result entry. Exactly one shape is populated:
// a failed drug carries only Error, a successful one carries the full
// assessment and never an error string.
type DrugReport struct {
	Drug           string          `json:"drug"`
	Error          string          `json:"error,omitempty"`
	Risk           *RiskAssessment `json:"risk,omitempty"`
	Profile        *Profile        `json:"profile,omitempty"`
	Recommendation *Recommendation `json:"recommendation,omitempty"`
	Explanation    *Explanation    `json:"explanation,omitempty"`
}

// RiskAssessment is the headline classification for a drug.
type RiskAssessment struct {
	Label      string  `json:"label"`
	Severity   string  `json:"severity"`
	Confidence float64 `json:"confidence"`
}

// Profile is the pharmacogenomic profile backing an assessment.
type Profile struct {
	Gene          string           `json:"gene"`
	Diplotype     string           `json:"diplotype"`
	Phenotype     string           `json:"phenotype"`
	ActivityScore float64          `json:"activity_score"`
	Variants      []VariantSummary `json:"variants"`
}

// VariantSummary is the caller-facing view of one matched variant record.
type VariantSummary struct {
	ID         string `json:"id"`
	Chrom      string `json:"chrom"`
	Pos        int64  `json:"pos"`
	Ref        string `json:"ref"`
	Alt        string `json:"alt"`
	StarAllele string `json:"star_allele,omitempty"`
	Zygosity   string `json:"zygosity"`
}

// Build assembles the per-drug report entry for one engine outcome.
func Build(o risk.Outcome) DrugReport {
	if !o.Succeeded() {
		return DrugReport{Drug: o.Drug, Error: o.Failure.Reason}
	}

	a := o.Analysis
	rec := Recommend(a)
	exp := Explain(a)

	return DrugReport{
		Drug: a.Drug,
		Risk: &RiskAssessment{
			Label:      a.Rule.Risk,
			Severity:   a.Rule.Severity,
			Confidence: a.Rule.Confidence,
		},
		Profile: &Profile{
			Gene:          a.Gene,
			Diplotype:     a.Phenotype.Diplotype,
			Phenotype:     a.Phenotype.Phenotype.String(),
			ActivityScore: a.Phenotype.ActivityScore,
			Variants:      summarizeVariants(a.Variants),
		},
		Recommendation: &rec,
		Explanation:    &exp,
	}
}

func summarizeVariants(records []*vcf.Record) []VariantSummary {
	summaries := make([]VariantSummary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, VariantSummary{
			ID:         r.ID,
			Chrom:      r.Chrom,
			Pos:        r.Pos,
			Ref:        r.Ref,
			Alt:        r.Alt,
			StarAllele: r.StarAllele,
			Zygosity:   r.Zygosity.String(),
		})
	}
	return summaries
}
