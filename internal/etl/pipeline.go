// Package etl drives the cleaning workflows over whole extracts: CSV in,
// canonicalized CSV out, with an audit trail of every value the rules
// changed.
package etl

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/massprop-dedup/internal/config"
	"github.com/massprop-dedup/internal/debug"
	"github.com/massprop-dedup/internal/flow"
	"github.com/massprop-dedup/internal/normalize"
	"github.com/massprop-dedup/internal/table"
)

// ColumnConfig names which columns each workflow targets. A name that is
// absent from the extract's schema is skipped, not an error, so one
// config can serve several assessor extracts with drifting schemas.
type ColumnConfig struct {
	Strings   []string
	Addresses []string
	Cities    []string
	Names     []string
	Zips      []string
}

// textTargets is the union of all configured columns, in first-seen order.
func (c ColumnConfig) textTargets() []string {
	var out []string
	seen := make(map[string]bool)
	for _, group := range [][]string{c.Strings, c.Addresses, c.Cities, c.Names} {
		for _, name := range group {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}

// Change records one field the pipeline rewrote.
type Change struct {
	RunID    string
	Row      int
	Column   string
	Workflow string
	Before   table.Field
	After    table.Field
}

// Report summarizes a cleaning run.
type Report struct {
	RunID   string
	Rows    int
	Changes []Change
}

// Pipeline applies the cleaning workflows with a fixed neighborhood
// lookup. The lookup must be fully loaded before Run is called.
type Pipeline struct {
	lookup  normalize.CityLookup
	log     zerolog.Logger
	verbose bool
}

// New creates a pipeline. CLEANSE_DEBUG=true turns on per-workflow
// tracing.
func New(lookup normalize.CityLookup, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		lookup:  lookup,
		log:     log,
		verbose: config.GetEnvBool("CLEANSE_DEBUG", false),
	}
}

// Run cleans a table. The input is untouched; a new table comes back with
// the same rows, same order, same schema. The
// generic string cleanup runs first over every configured column, then
// each specialized workflow over its own columns.
func (p *Pipeline) Run(t *table.Table, cfg ColumnConfig) (*table.Table, *Report) {
	report := &Report{RunID: uuid.New().String(), Rows: t.NumRows()}
	defer debug.Timing(p.verbose, "cleaning run")()

	debug.Output(p.verbose, "strings workflow over %v", cfg.textTargets())
	out := flow.Strings().Run(t, cfg.textTargets())
	out = flow.Addresses().Run(out, cfg.Addresses)
	out = flow.Cities(p.lookup).Run(out, cfg.Cities)
	out = flow.Names().Run(out, cfg.Names)
	out = flow.Zip().Run(out, cfg.Zips)

	groups := []struct {
		workflow string
		columns  []string
	}{
		{"strings", cfg.Strings},
		{"addresses", cfg.Addresses},
		{"cities", cfg.Cities},
		{"names", cfg.Names},
		{"zip", cfg.Zips},
	}
	for _, g := range groups {
		for _, name := range g.columns {
			before, ok := t.TextValues(name)
			if !ok {
				p.log.Warn().Str("column", name).Str("workflow", g.workflow).
					Msg("configured column missing from extract, skipped")
				continue
			}
			after, _ := out.TextValues(name)
			for i := range before {
				if before[i] != after[i] {
					report.Changes = append(report.Changes, Change{
						RunID:    report.RunID,
						Row:      i,
						Column:   name,
						Workflow: g.workflow,
						Before:   before[i],
						After:    after[i],
					})
				}
			}
		}
	}

	p.log.Info().Str("run_id", report.RunID).Int("rows", report.Rows).
		Int("changes", len(report.Changes)).Msg("cleaning run complete")
	return out, report
}

// CleanCSV runs the pipeline over a CSV extract and writes the cleaned
// extract alongside.
func (p *Pipeline) CleanCSV(inPath, outPath string, cfg ColumnConfig) (*Report, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", inPath, err)
	}
	defer in.Close()

	t, err := FromCSV(in)
	if err != nil {
		return nil, err
	}
	p.log.Info().Str("file", inPath).Int("rows", t.NumRows()).Msg("loaded extract")

	cleaned, report := p.Run(t, cfg)

	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer out.Close()

	if err := ToCSV(out, cleaned); err != nil {
		return nil, err
	}
	return report, nil
}

// RecordChanges persists a run's audit trail so reviewers can see what
// the rules did to each field.
func RecordChanges(db *sql.DB, report *Report) error {
	if len(report.Changes) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS cleaning_audit (
			id SERIAL PRIMARY KEY,
			run_id UUID NOT NULL,
			row_num INTEGER NOT NULL,
			column_name TEXT NOT NULL,
			workflow TEXT NOT NULL,
			original_value TEXT,
			new_value TEXT,
			cleaned_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create cleaning_audit: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cleaning_audit (run_id, row_num, column_name, workflow, original_value, new_value)
		VALUES ($1, $2, $3, $4, $5, $6)
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare audit insert: %w", err)
	}
	defer stmt.Close()

	for _, ch := range report.Changes {
		_, err := stmt.ExecContext(ctx, ch.RunID, ch.Row, ch.Column, ch.Workflow,
			nullable(ch.Before), nullable(ch.After))
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert audit row: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit audit rows: %w", err)
	}
	return nil
}

func nullable(f table.Field) sql.NullString {
	return sql.NullString{String: f.String, Valid: f.Valid}
}
