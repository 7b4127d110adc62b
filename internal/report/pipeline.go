package report

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pgxtools/pgx-risk/internal/risk"
	"github.com/pgxtools/pgx-risk/internal/vcf"
)

// ValidationError carries the accumulated structural validation failures.
// It is returned before any per-drug work begins.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "input validation failed: " + strings.Join(e.Errors, "; ")
}

// Pipeline runs the full analysis: validate, extract, analyze each drug,
// and assemble the report. It is stateless across requests; only the
// read-only knowledge base is shared.
type Pipeline struct {
	extractor *vcf.Extractor
	engine    *risk.Engine
}

// NewPipeline creates a pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{
		extractor: vcf.NewExtractor(),
		engine:    risk.NewEngine(),
	}
}

// SetLogger sets the logger on all pipeline stages.
func (p *Pipeline) SetLogger(l *zap.Logger) {
	p.extractor.SetLogger(l)
	p.engine.SetLogger(l)
}

// Run analyzes raw input text against an ordered drug list. Structural
// validation failures abort before extraction and are returned as a
// *ValidationError; everything downstream is representable as report data,
// so per-drug problems never surface here as errors.
func (p *Pipeline) Run(text string, drugs []string) (*Report, error) {
	if v := vcf.Validate(text); !v.Valid {
		return nil, &ValidationError{Errors: v.Errors}
	}

	extraction, err := p.extractor.Extract(strings.NewReader(text))
	if err != nil {
		return nil, err
	}

	groups := vcf.GroupByGene(extraction.Records)
	outcomes := p.engine.AnalyzeAll(drugs, groups)

	reports := make([]DrugReport, 0, len(outcomes))
	for _, o := range outcomes {
		reports = append(reports, Build(o))
	}

	return &Report{
		GeneratedAt: time.Now().UTC(),
		Drugs:       reports,
		Quality: Quality{
			RecordsAnalyzed:   extraction.TotalRecords,
			RelevantVariants:  extraction.RelevantCount,
			GenesWithFindings: extraction.Genes,
		},
	}, nil
}
