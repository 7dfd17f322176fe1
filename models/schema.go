package models

import (
	"fmt"
	"sort"

	"gorm.io/gorm"
)

/*
Column mismatch report

Compares the columns that exist in the database with the columns declared on
the Go models. Run the binary with GENERATE_COLUMN_REPORT=true to print it.

Example output:
  table projects: 1 column(s) not mapped by the model: legacy_slug
  table projects: all columns are accounted for
*/

// schemaModels lists every model that owns a table.
func schemaModels() []any {
	return []any{&Project{}}
}

// Migrate creates missing tables, columns and indexes for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(schemaModels()...)
}

// TableReport lists the database columns and model fields that do not line up for one table.
type TableReport struct {
	Table           string
	Exists          bool
	UnmappedColumns []string // in the database but not on the model
	MissingColumns  []string // on the model but not in the database
}

// Clean reports whether the table matches its model.
func (t TableReport) Clean() bool {
	return t.Exists && len(t.UnmappedColumns) == 0 && len(t.MissingColumns) == 0
}

func (t TableReport) String() string {
	switch {
	case !t.Exists:
		return fmt.Sprintf("table %s does not exist yet (will be created during migration)", t.Table)
	case t.Clean():
		return fmt.Sprintf("table %s: all columns are accounted for", t.Table)
	default:
		return fmt.Sprintf("table %s: %d column(s) not mapped by the model: %v; %d model column(s) missing: %v",
			t.Table, len(t.UnmappedColumns), t.UnmappedColumns, len(t.MissingColumns), t.MissingColumns)
	}
}

// GenerateColumnMismatchReport inspects every model table without modifying it.
func GenerateColumnMismatchReport(db *gorm.DB) ([]TableReport, error) {
	reports := make([]TableReport, 0, len(schemaModels()))
	for _, model := range schemaModels() {
		report, err := tableReport(db, model)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func tableReport(db *gorm.DB, model any) (TableReport, error) {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return TableReport{}, fmt.Errorf("parse model %T: %w", model, err)
	}
	report := TableReport{Table: stmt.Schema.Table}

	migrator := db.Migrator()
	if !migrator.HasTable(model) {
		return report, nil
	}
	report.Exists = true

	columnTypes, err := migrator.ColumnTypes(model)
	if err != nil {
		return TableReport{}, fmt.Errorf("error querying columns for table %s: %w", report.Table, err)
	}
	dbColumns := make([]string, 0, len(columnTypes))
	for _, ct := range columnTypes {
		dbColumns = append(dbColumns, ct.Name())
	}

	report.UnmappedColumns = difference(dbColumns, stmt.Schema.DBNames)
	report.MissingColumns = difference(stmt.Schema.DBNames, dbColumns)
	return report, nil
}

// difference returns the sorted members of a that are not in b.
func difference(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, v := range b {
		set[v] = true
	}

	var out []string
	for _, v := range a {
		if !set[v] {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
