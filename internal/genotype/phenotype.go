package genotype

import "github.com/pgxtools/pgx-risk/internal/kb"

// Phenotype is the metabolizer category derived from an activity score.
type Phenotype int

const (
	PoorMetabolizer Phenotype = iota
	IntermediateMetabolizer
	NormalMetabolizer
	RapidMetabolizer
	UltraRapidMetabolizer
)

// String returns the full metabolizer category name.
func (p Phenotype) String() string {
	switch p {
	case PoorMetabolizer:
		return "Poor Metabolizer"
	case IntermediateMetabolizer:
		return "Intermediate Metabolizer"
	case RapidMetabolizer:
		return "Rapid Metabolizer"
	case UltraRapidMetabolizer:
		return "Ultrarapid Metabolizer"
	default:
		return "Normal Metabolizer"
	}
}

// Abbrev returns the category abbreviation used to key rule tables.
func (p Phenotype) Abbrev() string {
	switch p {
	case PoorMetabolizer:
		return "PM"
	case IntermediateMetabolizer:
		return "IM"
	case RapidMetabolizer:
		return "RM"
	case UltraRapidMetabolizer:
		return "URM"
	default:
		return "NM"
	}
}

// Result is the scored phenotype for one gene.
type Result struct {
	Diplotype     string  // "allele1/allele2"
	Phenotype     Phenotype
	ActivityScore float64 // sum of both allele contributions, in [0,3]
}

// Score maps an allele assignment to an activity score and metabolizer
// category. Each allele contributes its function value from the gene's
// table (normal function when absent), so the sum stays in [0,3].
func Score(a Assignment) Result {
	score := kb.AlleleActivity(a.Gene, a.Allele1) + kb.AlleleActivity(a.Gene, a.Allele2)

	return Result{
		Diplotype:     a.Allele1 + "/" + a.Allele2,
		Phenotype:     classify(score),
		ActivityScore: score,
	}
}

// classify applies the activity-score thresholds. Boundaries are
// lower-inclusive: a score of exactly 1.0 is Intermediate and exactly 2.0
// is Normal.
func classify(score float64) Phenotype {
	switch {
	case score == 0:
		return PoorMetabolizer
	case score <= 1.0:
		return IntermediateMetabolizer
	case score <= 2.0:
		return NormalMetabolizer
	case score <= 2.5:
		return RapidMetabolizer
	default:
		return UltraRapidMetabolizer
	}
}
