// Package vcf provides parsing of VCF-flavored pharmacogenomic input files.
package vcf

// Zygosity describes the genotype call at a variant site.
type Zygosity int

const (
	ZygosityUnknown Zygosity = iota
	ZygosityHomozygousReference
	ZygosityHomozygousAlternate
	ZygosityHeterozygous
)

// String returns the human-readable zygosity label.
func (z Zygosity) String() string {
	switch z {
	case ZygosityHomozygousReference:
		return "homozygous_reference"
	case ZygosityHomozygousAlternate:
		return "homozygous_alternate"
	case ZygosityHeterozygous:
		return "heterozygous"
	default:
		return "unknown"
	}
}

// Record represents a single variant row from the input file.
// Records are immutable once parsed and scoped to one analysis request.
type Record struct {
	Chrom      string                 // Chromosome name (e.g., "22", "chr22")
	Pos        int64                  // 1-based genomic position
	ID         string                 // Variant identifier (e.g., rs ID)
	Ref        string                 // Reference allele
	Alt        string                 // Alternate allele
	Qual       float64                // Quality score, 0 if "."
	Filter     string                 // Filter status (PASS or filter name)
	Info       map[string]interface{} // INFO field key-value pairs
	Gene       string                 // Resolved gene symbol, empty if unresolved
	StarAllele string                 // Resolved star allele (e.g., "*4"), empty if unresolved
	Zygosity   Zygosity               // Genotype call, ZygosityUnknown without sample data
}

// InfoString returns the INFO value for key as a string, or "" if the key
// is absent or a bare flag.
func (r *Record) InfoString(key string) string {
	if r.Info == nil {
		return ""
	}
	if s, ok := r.Info[key].(string); ok {
		return s
	}
	return ""
}

// HasInfo returns true if the INFO field carries the given key.
func (r *Record) HasInfo(key string) bool {
	_, ok := r.Info[key]
	return ok
}

// NormalizeChrom returns the chromosome name without "chr" prefix.
func (r *Record) NormalizeChrom() string {
	if len(r.Chrom) > 3 && r.Chrom[:3] == "chr" {
		return r.Chrom[3:]
	}
	return r.Chrom
}
