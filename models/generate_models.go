package models

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

/*
Column Mismatch Report Usage:

The backend schema is owned by the hosted database, not by this service. The
report lists columns that exist in a table but have no field in the matching
Go model, which is how drift shows up after someone edits a table in the
Supabase console.

	GENERATE_COLUMN_REPORT=true go run .

Example output:

	--- Table: projects ---
	Found 1 columns not accounted for in model:
	  - featured

Certificates are intentionally absent: their extra columns are carried in
Certificate.Attributes.
*/

// Managed lists every gorm-mapped model keyed by table name.
func Managed() map[string]any {
	return map[string]any{
		"about_sections": AboutSection{},
		"projects":       Project{},
		"web_skills":     Skill{},
		"contacts":       ContactMessage{},
		"hero_content":   HeroContent{},
	}
}

// GenerateModels writes typed query helpers for the managed models to outPath.
func GenerateModels(db *gorm.DB, outPath string) {
	g := gen.NewGenerator(gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(
		AboutSection{},
		Project{},
		Skill{},
		ContactMessage{},
		HeroContent{},
	)
	g.Execute()
}

// TableReport is the drift found for one table.
type TableReport struct {
	Table    string
	Missing  bool
	Unmapped []string
}

// ColumnMismatchReport compares live table columns against the model fields.
func ColumnMismatchReport(db *gorm.DB) ([]TableReport, error) {
	var reports []TableReport
	for table, model := range Managed() {
		report := TableReport{Table: table}
		if !db.Migrator().HasTable(table) {
			report.Missing = true
			reports = append(reports, report)
			continue
		}

		columns, err := db.Migrator().ColumnTypes(table)
		if err != nil {
			return nil, fmt.Errorf("error querying columns for table %s: %w", table, err)
		}

		fields, err := modelColumns(model)
		if err != nil {
			return nil, err
		}

		for _, col := range columns {
			if !fields[col.Name()] {
				report.Unmapped = append(report.Unmapped, col.Name())
			}
		}
		reports = append(reports, report)
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].Table < reports[j].Table })
	return reports, nil
}

// modelColumns returns the set of column names gorm maps for model.
func modelColumns(model any) (map[string]bool, error) {
	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		return nil, fmt.Errorf("parse model %T: %w", model, err)
	}
	set := make(map[string]bool, len(s.DBNames))
	for _, name := range s.DBNames {
		set[name] = true
	}
	return set, nil
}

// WriteColumnMismatchReport prints the report in the same layout the
// maintenance mode has always used.
func WriteColumnMismatchReport(w io.Writer, reports []TableReport) int {
	fmt.Fprintln(w, "=== COLUMN MISMATCH REPORT ===")
	total := 0
	for _, r := range reports {
		fmt.Fprintf(w, "\n--- Table: %s ---\n", r.Table)
		switch {
		case r.Missing:
			fmt.Fprintln(w, "Table does not exist yet")
		case len(r.Unmapped) > 0:
			fmt.Fprintf(w, "Found %d columns not accounted for in model:\n", len(r.Unmapped))
			for _, col := range r.Unmapped {
				fmt.Fprintf(w, "  - %s\n", col)
			}
			total += len(r.Unmapped)
		default:
			fmt.Fprintln(w, "All columns are accounted for in the model.")
		}
	}
	fmt.Fprintf(w, "\n=== SUMMARY ===\n")
	fmt.Fprintf(w, "Total mismatched columns across all tables: %d\n", total)
	return total
}
