package vcf

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/pgxtools/pgx-risk/internal/kb"
)

// Extraction holds the pharmacogenomically relevant records from one input
// file plus aggregate metadata echoed back in reports.
type Extraction struct {
	Records       []*Record // relevant records in input order
	TotalRecords  int       // data rows seen, including skipped and irrelevant ones
	RelevantCount int       // len(Records)
	Genes         []string  // distinct relevant genes in first-seen order
}

// Extractor filters parsed records down to the pharmacogenomically relevant
// set. A record is relevant if its INFO field carries explicit gene and
// star-allele tags, if its identifier is in the known-variant reference
// table, or if its INFO gene tag names a supported pharmacogene.
type Extractor struct {
	logger *zap.Logger
}

// NewExtractor creates an extractor.
func NewExtractor() *Extractor {
	return &Extractor{logger: zap.NewNop()}
}

// SetLogger sets the logger for skipped-row diagnostics.
func (e *Extractor) SetLogger(l *zap.Logger) {
	e.logger = l
}

// Extract reads all records from r and returns the relevant subset plus
// aggregate counts. Rows that fail to parse are skipped silently: they
// count toward TotalRecords but produce no diagnostic in the result, only
// a debug log entry.
func (e *Extractor) Extract(r io.Reader) (*Extraction, error) {
	parser, err := NewParserFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}

	result := &Extraction{}
	seen := make(map[string]bool)

	for {
		rec, err := parser.Next()
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				// Malformed row: count it, drop it, move on.
				result.TotalRecords++
				e.logger.Debug("skipping malformed row",
					zap.Int("line", perr.Line),
					zap.String("reason", perr.Message))
				continue
			}
			return nil, err
		}
		if rec == nil {
			break
		}
		result.TotalRecords++

		if !e.resolve(rec) {
			continue
		}

		result.Records = append(result.Records, rec)
		if !seen[rec.Gene] {
			seen[rec.Gene] = true
			result.Genes = append(result.Genes, rec.Gene)
		}
	}

	result.RelevantCount = len(result.Records)
	return result, nil
}

// resolve determines relevance and fills in the record's gene and star
// allele. Explicit INFO tags win over the identifier reference table.
func (e *Extractor) resolve(rec *Record) bool {
	gene := rec.InfoString("GENE")
	star := rec.InfoString("STAR")
	if star == "" {
		star = rec.InfoString("ALLELE")
	}

	if gene != "" && star != "" {
		rec.Gene = gene
		rec.StarAllele = star
		return true
	}

	if g, a, ok := kb.KnownVariant(rec.ID); ok {
		rec.Gene = g
		rec.StarAllele = a
		return true
	}

	if gene != "" && kb.IsSupportedGene(gene) {
		rec.Gene = gene
		return true
	}

	return false
}

// GroupByGene partitions relevant records by gene symbol, preserving input
// order within each group.
func GroupByGene(records []*Record) map[string][]*Record {
	groups := make(map[string][]*Record)
	for _, rec := range records {
		groups[rec.Gene] = append(groups[rec.Gene], rec)
	}
	return groups
}
