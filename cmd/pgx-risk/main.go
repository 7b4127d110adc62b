// Package main provides the pgx-risk command-line tool.
package main

import (
	"bytes"
	"compress/gzip"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/pgxtools/pgx-risk/internal/duckdb"
	"github.com/pgxtools/pgx-risk/internal/kb"
	"github.com/pgxtools/pgx-risk/internal/output"
	"github.com/pgxtools/pgx-risk/internal/report"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Parse()

	if showVersion {
		fmt.Printf("pgx-risk version %s (%s) built %s\n", version, commit, date)
		return ExitSuccess
	}

	initConfig()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		return ExitUsage
	}

	switch args[0] {
	case "analyze":
		return runAnalyze(args[1:])
	case "export-kb":
		return runExportKB(args[1:])
	case "drugs":
		return runDrugs()
	case "config":
		return runConfig(args[1:])
	case "help":
		printUsage()
		return ExitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
		printUsage()
		return ExitUsage
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `pgx-risk - Pharmacogenomic drug-risk inference

Usage:
  pgx-risk [options] <command> [arguments]

Commands:
  analyze     Analyze a VCF file against a list of drugs
  export-kb   Export the drug-gene knowledge base to DuckDB
  drugs       List supported drugs and their governing genes
  config      Manage pgx-risk configuration
  help        Show this help message

Global Options:
  --version   Show version information

Examples:
  # Analyze a patient VCF for codeine and warfarin risk
  pgx-risk analyze --drugs codeine,warfarin patient.vcf

  # Tab-delimited summary, keeping an audit trail in DuckDB
  pgx-risk analyze --drugs simvastatin -f tab --store audit.duckdb patient.vcf

  # Export the rule tables for ad hoc querying
  pgx-risk export-kb --output kb.duckdb

For more information on a command, use:
  pgx-risk <command> --help
`)
}

func runAnalyze(args []string) int {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)

	var (
		drugList     string
		outputFormat string
		outputFile   string
		storePath    string
		verbose      bool
	)

	fs.StringVar(&drugList, "drugs", "", "Comma-separated list of drugs to analyze (required)")
	fs.StringVar(&outputFormat, "f", "", "Output format: json, tab")
	fs.StringVar(&outputFormat, "output-format", "", "Output format: json, tab")
	fs.StringVar(&outputFile, "o", "", "Output file (default: stdout)")
	fs.StringVar(&outputFile, "output", "", "Output file (default: stdout)")
	fs.StringVar(&storePath, "store", "", "DuckDB file to append results to (optional)")
	fs.BoolVar(&verbose, "verbose", false, "Enable debug logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Analyze variant records in a VCF file for drug-metabolism risk.

Usage:
  pgx-risk analyze [options] <input-file>

Arguments:
  <input-file>  Input VCF file (use '-' for stdin; .vcf.gz supported)

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  pgx-risk analyze --drugs codeine patient.vcf
  pgx-risk analyze --drugs codeine,warfarin -f tab -o summary.tsv patient.vcf
  cat patient.vcf | pgx-risk analyze --drugs clopidogrel -
`)
	}

	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: input file argument required\n\n")
		fs.Usage()
		return ExitUsage
	}
	if drugList == "" {
		fmt.Fprintf(os.Stderr, "Error: --drugs is required\n\n")
		fs.Usage()
		return ExitUsage
	}

	drugs := splitDrugs(drugList)
	if len(drugs) == 0 {
		fmt.Fprintf(os.Stderr, "Error: --drugs list is empty\n")
		return ExitUsage
	}

	if outputFormat == "" {
		outputFormat = configString("output.format", "json")
	}

	text, err := readInput(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Hint: Check that the file path is correct\n")
		}
		return ExitError
	}

	logger := newLogger(verbose)
	defer logger.Sync()

	pipeline := report.NewPipeline()
	pipeline.SetLogger(logger)

	rep, err := pipeline.Run(text, drugs)
	if err != nil {
		var verr *report.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "Error: input failed validation:\n")
			for _, msg := range verr.Errors {
				fmt.Fprintf(os.Stderr, "  - %s\n", msg)
			}
			return ExitError
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}

	var out *os.File
	if outputFile == "" {
		out = os.Stdout
	} else {
		out, err = os.Create(outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			return ExitError
		}
		defer out.Close()
	}

	var writer output.ReportWriter
	switch outputFormat {
	case "json":
		writer = output.NewJSONWriter(out)
	case "tab":
		writer = output.NewTabWriter(out)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q\n", outputFormat)
		return ExitError
	}

	if err := writer.Write(rep); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return ExitError
	}

	if storePath != "" {
		if err := appendToStore(storePath, rep); err != nil {
			fmt.Fprintf(os.Stderr, "Error storing results: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(os.Stderr, "Appended %d result rows to %s\n", len(rep.Drugs), storePath)
	}

	return ExitSuccess
}

func runExportKB(args []string) int {
	fs := flag.NewFlagSet("export-kb", flag.ExitOnError)

	var outputPath string
	fs.StringVar(&outputPath, "output", "", "Output DuckDB file path")
	fs.StringVar(&outputPath, "o", "", "Output DuckDB file path (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Export the drug-gene rule tables and allele function assignments to DuckDB.

Rules are written post-fallback: every drug gets a row for all five
metabolizer phenotypes.

Usage:
  pgx-risk export-kb --output kb.duckdb
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	if outputPath == "" {
		fmt.Fprintf(os.Stderr, "Error: --output is required\n\n")
		fs.Usage()
		return ExitUsage
	}

	store, err := duckdb.Open(outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		return ExitError
	}
	defer store.Close()

	if err := store.ExportKnowledgeBase(); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting knowledge base: %v\n", err)
		return ExitError
	}

	count, err := store.RuleCount()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error verifying export: %v\n", err)
		return ExitError
	}

	fmt.Fprintf(os.Stderr, "Exported %d rule rows to %s\n", count, outputPath)
	return ExitSuccess
}

func runDrugs() int {
	for _, name := range kb.SupportedDrugs() {
		rule, _ := kb.LookupDrug(name)
		fmt.Printf("%s\t%s\n", rule.Drug, rule.Gene)
	}
	return ExitSuccess
}

// readInput reads the whole input file (or stdin for "-") into memory,
// transparently decompressing gzip. Validation needs the complete text
// before extraction begins.
func readInput(path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return "", err
		}
	}

	if len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b {
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return "", fmt.Errorf("open gzip input: %w", err)
		}
		defer gz.Close()
		data, err = io.ReadAll(gz)
		if err != nil {
			return "", fmt.Errorf("decompress input: %w", err)
		}
	}

	return string(data), nil
}

func splitDrugs(list string) []string {
	var drugs []string
	for _, d := range strings.Split(list, ",") {
		if d = strings.TrimSpace(d); d != "" {
			drugs = append(drugs, d)
		}
	}
	return drugs
}

func appendToStore(path string, rep *report.Report) error {
	store, err := duckdb.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.InsertReport(rep)
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
