package kb

// Activity contribution of a single allele.
const (
	FunctionNone      = 0.0
	FunctionDecreased = 0.5
	FunctionNormal    = 1.0
	FunctionIncreased = 1.5
)

// FunctionLabel returns the clinical function description for an allele
// activity value.
func FunctionLabel(score float64) string {
	switch {
	case score <= FunctionNone:
		return "no function"
	case score <= FunctionDecreased:
		return "decreased function"
	case score <= FunctionNormal:
		return "normal function"
	default:
		return "increased function"
	}
}

// alleleFunctions maps gene -> star allele -> activity contribution.
// Alleles not listed are treated as normal function. Values follow CPIC
// allele-function assignments.
var alleleFunctions = map[string]map[string]float64{
	"CYP2D6": {
		"*1":   FunctionNormal,
		"*2":   FunctionNormal,
		"*3":   FunctionNone,
		"*4":   FunctionNone,
		"*5":   FunctionNone,
		"*6":   FunctionNone,
		"*10":  FunctionDecreased,
		"*17":  FunctionDecreased,
		"*41":  FunctionDecreased,
		"*1xN": FunctionIncreased,
		"*2xN": FunctionIncreased,
	},
	"CYP2C19": {
		"*1":  FunctionNormal,
		"*2":  FunctionNone,
		"*3":  FunctionNone,
		"*17": FunctionIncreased,
	},
	"CYP2C9": {
		"*1": FunctionNormal,
		"*2": FunctionDecreased,
		"*3": FunctionNone,
	},
	"SLCO1B1": {
		"*1":  FunctionNormal,
		"*5":  FunctionDecreased,
		"*15": FunctionDecreased,
	},
	"TPMT": {
		"*1":  FunctionNormal,
		"*2":  FunctionNone,
		"*3A": FunctionNone,
		"*3B": FunctionNone,
		"*3C": FunctionNone,
	},
	"DPYD": {
		"*1":  FunctionNormal,
		"*2A": FunctionNone,
		"*13": FunctionNone,
	},
}

// defaultAlleles maps gene -> assumed-normal allele used when no relevant
// variant is observed.
var defaultAlleles = map[string]string{
	"CYP2D6":  "*1",
	"CYP2C19": "*1",
	"CYP2C9":  "*1",
	"SLCO1B1": "*1",
	"TPMT":    "*1",
	"DPYD":    "*1",
}

type knownVariant struct {
	Gene   string
	Allele string
}

// knownVariants maps variant identifier (rs ID) -> defining gene and star
// allele. Single-SNP allele definitions only; multi-SNP haplotypes are
// approximated by their tag SNP.
var knownVariants = map[string]knownVariant{
	// CYP2D6
	"rs16947":    {"CYP2D6", "*2"},
	"rs35742686": {"CYP2D6", "*3"},
	"rs3892097":  {"CYP2D6", "*4"},
	"rs5030655":  {"CYP2D6", "*6"},
	"rs1065852":  {"CYP2D6", "*10"},
	"rs28371706": {"CYP2D6", "*17"},
	"rs28371725": {"CYP2D6", "*41"},
	// CYP2C19
	"rs4244285":  {"CYP2C19", "*2"},
	"rs4986893":  {"CYP2C19", "*3"},
	"rs12248560": {"CYP2C19", "*17"},
	// CYP2C9
	"rs1799853": {"CYP2C9", "*2"},
	"rs1057910": {"CYP2C9", "*3"},
	// SLCO1B1
	"rs4149056": {"SLCO1B1", "*5"},
	// TPMT
	"rs1800462": {"TPMT", "*2"},
	"rs1800460": {"TPMT", "*3B"},
	"rs1142345": {"TPMT", "*3C"},
	// DPYD
	"rs3918290":  {"DPYD", "*2A"},
	"rs55886062": {"DPYD", "*13"},
}

// geneRoles holds the biological-role narrative used in explanations.
var geneRoles = map[string]string{
	"CYP2D6":  "CYP2D6 encodes a hepatic cytochrome P450 enzyme responsible for metabolizing roughly a quarter of commonly prescribed drugs, including many opioids, antidepressants, and antiarrhythmics.",
	"CYP2C19": "CYP2C19 encodes a hepatic cytochrome P450 enzyme that activates the antiplatelet prodrug clopidogrel and clears proton pump inhibitors and several antifungals.",
	"CYP2C9":  "CYP2C9 encodes a hepatic cytochrome P450 enzyme that clears S-warfarin, phenytoin, and many NSAIDs; reduced activity prolongs drug exposure.",
	"SLCO1B1": "SLCO1B1 encodes the hepatic uptake transporter OATP1B1, which moves statins from blood into the liver; reduced transport raises circulating statin levels.",
	"TPMT":    "TPMT encodes thiopurine S-methyltransferase, which inactivates thiopurine drugs; deficient activity shunts thiopurines toward cytotoxic metabolites.",
	"DPYD":    "DPYD encodes dihydropyrimidine dehydrogenase, the rate-limiting enzyme degrading fluoropyrimidine chemotherapeutics; deficiency causes severe drug accumulation.",
}
