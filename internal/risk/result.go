// Package risk dispatches drug-gene rule tables against scored phenotypes.
package risk

import (
	"github.com/pgxtools/pgx-risk/internal/genotype"
	"github.com/pgxtools/pgx-risk/internal/kb"
	"github.com/pgxtools/pgx-risk/internal/vcf"
)

// Analysis is the full per-drug analysis produced by the engine.
type Analysis struct {
	Drug       string
	Gene       string
	Variants   []*vcf.Record // matched records for the governing gene
	Assignment genotype.Assignment
	Phenotype  genotype.Result
	Rule       kb.RiskRule
}

// Outcome is the tagged per-drug result: exactly one of Analysis or Failure
// is set. Failed drugs never carry a partially populated analysis.
type Outcome struct {
	Drug     string
	Analysis *Analysis
	Failure  *Failure
}

// Failure marks a drug that could not be analyzed. Risk is always Unknown.
type Failure struct {
	Drug   string
	Reason string
}

// Succeeded reports whether the outcome carries a full analysis.
func (o Outcome) Succeeded() bool {
	return o.Analysis != nil
}

// Success wraps a completed analysis.
func Success(a *Analysis) Outcome {
	return Outcome{Drug: a.Drug, Analysis: a}
}

// Fail wraps a per-drug failure.
func Fail(drug, reason string) Outcome {
	return Outcome{Drug: drug, Failure: &Failure{Drug: drug, Reason: reason}}
}
