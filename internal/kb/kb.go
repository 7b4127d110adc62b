// Package kb holds the pharmacogenomic knowledge base: drug-gene mappings,
// star-allele function tables, known variant identifiers, and per-drug risk
// rule tables. All tables are plain map literals built at process start and
// shared read-only across requests; nothing in this package mutates them.
package kb

import (
	"sort"
	"strings"
)

// Risk categories for a drug-gene interaction.
const (
	RiskSafe         = "Safe"
	RiskAdjustDosage = "AdjustDosage"
	RiskToxic        = "Toxic"
	RiskIneffective  = "Ineffective"
	RiskUnknown      = "Unknown"
)

// Severity levels for a risk rule.
const (
	SeverityLow      = "Low"
	SeverityModerate = "Moderate"
	SeverityHigh     = "High"
	SeverityCritical = "Critical"
)

// RiskRule is one entry of a drug's phenotype rule table.
type RiskRule struct {
	Risk           string   // Risk category
	Severity       string   // Severity level
	Confidence     float64  // Confidence in [0,1]
	Recommendation string   // Clinical recommendation text
	DosageAdvice   string   // Dosage adjustment advice
	Alternatives   []string // Alternative drugs
	Mechanism      string   // Pharmacological mechanism text
}

// DrugGeneRule binds a drug to its governing gene and phenotype rule table.
// Rule tables are keyed by phenotype abbreviation (PM, IM, NM, RM, URM).
type DrugGeneRule struct {
	Drug  string
	Gene  string
	Rules map[string]RiskRule
}

// NormalizeDrug canonicalizes a requested drug name for lookup.
func NormalizeDrug(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// LookupDrug returns the rule table for a requested drug name, matching
// case-insensitively. ok is false for unsupported drugs.
func LookupDrug(name string) (DrugGeneRule, bool) {
	r, ok := drugGeneRules[NormalizeDrug(name)]
	return r, ok
}

// RuleFor resolves the risk rule for a drug and phenotype abbreviation.
// Lookup order: exact phenotype entry, then the drug's NormalMetabolizer
// entry. The NM fallback is a deliberate policy; every table is required to
// carry an NM entry, so the second layer always resolves.
func RuleFor(rule DrugGeneRule, abbrev string) RiskRule {
	if r, ok := rule.Rules[abbrev]; ok {
		return r
	}
	return rule.Rules["NM"]
}

// SupportedDrugs returns the supported drug names in stable sorted order.
func SupportedDrugs() []string {
	names := make([]string, 0, len(drugGeneRules))
	for name := range drugGeneRules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SupportedGenes returns the supported pharmacogene symbols in sorted order.
func SupportedGenes() []string {
	genes := make([]string, 0, len(alleleFunctions))
	for g := range alleleFunctions {
		genes = append(genes, g)
	}
	sort.Strings(genes)
	return genes
}

// Alleles returns the star alleles with curated function assignments for a
// gene, in sorted order.
func Alleles(gene string) []string {
	table, ok := alleleFunctions[gene]
	if !ok {
		return nil
	}
	alleles := make([]string, 0, len(table))
	for a := range table {
		alleles = append(alleles, a)
	}
	sort.Strings(alleles)
	return alleles
}

// IsSupportedGene returns true if the gene symbol is in the supported set.
func IsSupportedGene(gene string) bool {
	_, ok := alleleFunctions[gene]
	return ok
}

// DefaultAllele returns the assumed-normal allele for a gene.
func DefaultAllele(gene string) string {
	if a, ok := defaultAlleles[gene]; ok {
		return a
	}
	return "*1"
}

// AlleleActivity returns the activity contribution of one allele of a gene.
// An allele absent from the gene's table defaults to normal function.
func AlleleActivity(gene, allele string) float64 {
	if table, ok := alleleFunctions[gene]; ok {
		if score, ok := table[allele]; ok {
			return score
		}
	}
	return FunctionNormal
}

// KnownVariant resolves a variant identifier (rs ID) to its gene and star
// allele. ok is false for identifiers outside the reference table.
func KnownVariant(id string) (gene, allele string, ok bool) {
	kv, ok := knownVariants[id]
	if !ok {
		return "", "", false
	}
	return kv.Gene, kv.Allele, true
}

// GeneRole returns the biological-role narrative for a gene.
func GeneRole(gene string) string {
	if role, ok := geneRoles[gene]; ok {
		return role
	}
	return gene + " is a pharmacogene involved in drug disposition."
}

// MonitoringPlan resolves the monitoring plan for a drug and risk category.
// Lookup order: exact (drug, risk) entry, then the drug's Safe-category
// plan, then a generic routine plan.
func MonitoringPlan(drug, risk string) string {
	key := NormalizeDrug(drug)
	if plans, ok := monitoringPlans[key]; ok {
		if p, ok := plans[risk]; ok {
			return p
		}
		if p, ok := plans[RiskSafe]; ok {
			return p
		}
	}
	return "Routine clinical follow-up; no genotype-directed monitoring required."
}

// EvidenceTier returns the CPIC-style evidence tier for a drug.
func EvidenceTier(drug string) string {
	if t, ok := evidenceTiers[NormalizeDrug(drug)]; ok {
		return t
	}
	return "CPIC Level B"
}
