package vcf

import "strings"

// ValidationResult holds the outcome of a structural pre-check.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// Validate performs a structural sanity check of raw input text before any
// record parsing. All failures are accumulated so the caller gets a complete
// diagnostic list in one pass rather than stopping at the first problem.
// Row-level shape is not checked here; malformed rows are skipped during
// extraction.
func Validate(text string) ValidationResult {
	var errs []string

	if strings.TrimSpace(text) == "" {
		errs = append(errs, "file is empty")
		return ValidationResult{Valid: false, Errors: errs}
	}

	hasFileformat := false
	hasChromHeader := false
	hasData := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case strings.HasPrefix(line, "##fileformat=VCF"):
			hasFileformat = true
		case strings.HasPrefix(line, "#CHROM"):
			hasChromHeader = true
		case line != "" && !strings.HasPrefix(line, "#"):
			hasData = true
		}
	}

	if !hasFileformat {
		errs = append(errs, "missing ##fileformat=VCF header line")
	}
	if !hasChromHeader {
		errs = append(errs, "missing #CHROM column header line")
	}
	if !hasData {
		errs = append(errs, "no variant data lines found")
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
