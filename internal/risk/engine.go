package risk

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pgxtools/pgx-risk/internal/genotype"
	"github.com/pgxtools/pgx-risk/internal/kb"
	"github.com/pgxtools/pgx-risk/internal/vcf"
)

// Engine resolves genotypes, scores phenotypes, and dispatches the drug-gene
// rule tables. It holds no per-request state; one Engine serves any number
// of concurrent requests.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates an engine.
func NewEngine() *Engine {
	return &Engine{logger: zap.NewNop()}
}

// SetLogger sets the logger for dispatch diagnostics.
func (e *Engine) SetLogger(l *zap.Logger) {
	e.logger = l
}

// AnalyzeDrug runs the full per-drug analysis against the per-gene variant
// groups. An unsupported drug yields a failure outcome; it never aborts the
// batch.
func (e *Engine) AnalyzeDrug(drug string, groups map[string][]*vcf.Record) Outcome {
	rule, ok := kb.LookupDrug(drug)
	if !ok {
		e.logger.Warn("unsupported drug requested", zap.String("drug", drug))
		return Fail(drug, fmt.Sprintf("drug %q is not in the supported drug list", drug))
	}

	variants := groups[rule.Gene]
	assignment := genotype.Resolve(rule.Gene, variants)
	phenotype := genotype.Score(assignment)

	e.logger.Debug("dispatched drug-gene rule",
		zap.String("drug", rule.Drug),
		zap.String("gene", rule.Gene),
		zap.String("diplotype", phenotype.Diplotype),
		zap.String("phenotype", phenotype.Phenotype.Abbrev()))

	return Success(&Analysis{
		Drug:       rule.Drug,
		Gene:       rule.Gene,
		Variants:   variants,
		Assignment: assignment,
		Phenotype:  phenotype,
		Rule:       kb.RuleFor(rule, phenotype.Phenotype.Abbrev()),
	})
}

// AnalyzeAll analyzes every requested drug. Per-drug computations are
// independent and run on a worker pool; the returned slice preserves the
// caller's drug ordering.
func (e *Engine) AnalyzeAll(drugs []string, groups map[string][]*vcf.Record) []Outcome {
	items := make(chan workItem, len(drugs))
	for i, drug := range drugs {
		items <- workItem{Seq: i, Drug: drug}
	}
	close(items)

	results := e.parallelAnalyze(items, groups, 0)

	outcomes := make([]Outcome, 0, len(drugs))
	collectOrdered(results, func(r workResult) {
		outcomes = append(outcomes, r.Outcome)
	})

	return outcomes
}
