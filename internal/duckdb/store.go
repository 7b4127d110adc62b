// Package duckdb persists analysis results and knowledge-base snapshots in
// a DuckDB database. Result storage is append-only and queryable; the
// pipeline itself never reads from it.
package duckdb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/pgxtools/pgx-risk/internal/kb"
	"github.com/pgxtools/pgx-risk/internal/report"
)

// phenotypeAbbrevs lists the rule-table keys in canonical order.
var phenotypeAbbrevs = []string{"PM", "IM", "NM", "RM", "URM"}

// Store manages a DuckDB connection.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS drug_reports (
		generated_at TIMESTAMP,
		drug VARCHAR,
		gene VARCHAR,
		diplotype VARCHAR,
		phenotype VARCHAR,
		activity_score DOUBLE,
		risk VARCHAR,
		severity VARCHAR,
		confidence DOUBLE,
		urgency VARCHAR,
		note VARCHAR
	)`)
	return err
}

// InsertReport appends one row per drug entry of a completed report.
func (s *Store) InsertReport(r *report.Report) error {
	for _, d := range r.Drugs {
		if d.Error != "" {
			_, err := s.db.Exec(
				`INSERT INTO drug_reports VALUES (?, ?, NULL, NULL, NULL, NULL, ?, NULL, NULL, NULL, ?)`,
				r.GeneratedAt, d.Drug, "Unknown", d.Error)
			if err != nil {
				return fmt.Errorf("insert failed drug %s: %w", d.Drug, err)
			}
			continue
		}

		_, err := s.db.Exec(
			`INSERT INTO drug_reports VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)`,
			r.GeneratedAt, d.Drug,
			d.Profile.Gene, d.Profile.Diplotype, d.Profile.Phenotype, d.Profile.ActivityScore,
			d.Risk.Label, d.Risk.Severity, d.Risk.Confidence,
			d.Recommendation.Urgency)
		if err != nil {
			return fmt.Errorf("insert drug %s: %w", d.Drug, err)
		}
	}
	return nil
}

// ReportCount returns the number of stored per-drug rows.
func (s *Store) ReportCount() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM drug_reports`).Scan(&count)
	return count, err
}

// ExportKnowledgeBase materializes the effective rule tables and allele
// function assignments into the database. Rules are written post-fallback:
// every drug gets a row for all five phenotype abbreviations.
func (s *Store) ExportKnowledgeBase() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS drug_rules (
		drug VARCHAR,
		gene VARCHAR,
		phenotype VARCHAR,
		risk VARCHAR,
		severity VARCHAR,
		confidence DOUBLE,
		recommendation VARCHAR,
		dosage_advice VARCHAR,
		alternatives VARCHAR,
		mechanism VARCHAR,
		PRIMARY KEY (drug, phenotype)
	)`)
	if err != nil {
		return fmt.Errorf("create drug_rules: %w", err)
	}

	_, err = s.db.Exec(`CREATE TABLE IF NOT EXISTS allele_functions (
		gene VARCHAR,
		allele VARCHAR,
		activity DOUBLE,
		function VARCHAR,
		PRIMARY KEY (gene, allele)
	)`)
	if err != nil {
		return fmt.Errorf("create allele_functions: %w", err)
	}

	for _, name := range kb.SupportedDrugs() {
		rule, _ := kb.LookupDrug(name)
		for _, abbrev := range phenotypeAbbrevs {
			r := kb.RuleFor(rule, abbrev)
			_, err := s.db.Exec(
				`INSERT OR REPLACE INTO drug_rules VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				rule.Drug, rule.Gene, abbrev,
				r.Risk, r.Severity, r.Confidence,
				r.Recommendation, r.DosageAdvice,
				strings.Join(r.Alternatives, "; "), r.Mechanism)
			if err != nil {
				return fmt.Errorf("insert rule %s/%s: %w", rule.Drug, abbrev, err)
			}
		}
	}

	for _, gene := range kb.SupportedGenes() {
		for _, allele := range kb.Alleles(gene) {
			activity := kb.AlleleActivity(gene, allele)
			_, err := s.db.Exec(
				`INSERT OR REPLACE INTO allele_functions VALUES (?, ?, ?, ?)`,
				gene, allele, activity, kb.FunctionLabel(activity))
			if err != nil {
				return fmt.Errorf("insert allele %s %s: %w", gene, allele, err)
			}
		}
	}

	return nil
}

// RuleCount returns the number of exported rule rows.
func (s *Store) RuleCount() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM drug_rules`).Scan(&count)
	return count, err
}
