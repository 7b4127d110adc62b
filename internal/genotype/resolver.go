// Package genotype resolves diploid star-allele pairs from variant evidence
// and scores metabolizer phenotypes.
package genotype

import (
	"github.com/pgxtools/pgx-risk/internal/kb"
	"github.com/pgxtools/pgx-risk/internal/vcf"
)

// Assignment is the resolved allele pair for one gene.
type Assignment struct {
	Gene      string
	Allele1   string
	Allele2   string
	Function1 string // function description of Allele1
	Function2 string // function description of Allele2
}

// Resolve turns a gene's relevant-variant list into a two-allele genotype.
//
// This is a heuristic approximation of compound heterozygosity from unphased
// genotype calls, not haplotype phasing: only the first variant's zygosity
// is inspected, and with two or more variants at most the second variant's
// star allele is used. Remaining variants are ignored. Known limitation.
//
// Resolution is deterministic: identical (gene, variants) inputs always
// yield the same assignment.
func Resolve(gene string, variants []*vcf.Record) Assignment {
	def := kb.DefaultAllele(gene)

	var a1, a2 string
	switch {
	case len(variants) == 0:
		// No evidence: assumed normal function on both haplotypes.
		a1, a2 = def, def

	case len(variants) == 1:
		star := starOrDefault(variants[0], def)
		switch variants[0].Zygosity {
		case vcf.ZygosityHomozygousAlternate:
			a1, a2 = star, star
		case vcf.ZygosityHeterozygous:
			a1, a2 = def, star
		default:
			a1, a2 = def, def
		}

	default:
		switch variants[0].Zygosity {
		case vcf.ZygosityHomozygousAlternate:
			star := starOrDefault(variants[0], def)
			a1, a2 = star, star
		case vcf.ZygosityHeterozygous:
			a1, a2 = def, starOrDefault(variants[1], def)
		default:
			a1, a2 = def, def
		}
	}

	return Assignment{
		Gene:      gene,
		Allele1:   a1,
		Allele2:   a2,
		Function1: kb.FunctionLabel(kb.AlleleActivity(gene, a1)),
		Function2: kb.FunctionLabel(kb.AlleleActivity(gene, a2)),
	}
}

// starOrDefault returns the record's star allele, or the gene default when
// the record was matched on gene evidence alone.
func starOrDefault(rec *vcf.Record, def string) string {
	if rec.StarAllele != "" {
		return rec.StarAllele
	}
	return def
}
