// Package refdata owns the neighborhood-to-city reference table. The
// normalization core never fetches this itself: a loaded, pre-uppercased
// lookup is handed to the cities workflow as a parameter.
package refdata

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/massprop-dedup/internal/normalize"
)

// Load reads the ref_neighborhood table. Keys and values come back
// uppercased; the table must be fully loaded before any cities workflow
// runs and is never mutated afterwards.
func Load(db *sql.DB) (normalize.CityLookup, error) {
	rows, err := db.Query(`SELECT neighborhood, city FROM ref_neighborhood`)
	if err != nil {
		return nil, fmt.Errorf("failed to query ref_neighborhood: %w", err)
	}
	defer rows.Close()

	lookup := make(normalize.CityLookup)
	for rows.Next() {
		var neighborhood, city string
		if err := rows.Scan(&neighborhood, &city); err != nil {
			return nil, fmt.Errorf("failed to scan ref_neighborhood row: %w", err)
		}
		lookup[strings.ToUpper(strings.TrimSpace(neighborhood))] = strings.ToUpper(strings.TrimSpace(city))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ref_neighborhood: %w", err)
	}
	return lookup, nil
}

// Static returns the compiled-in Boston-area table, for offline runs and
// tests where no database is available.
func Static() normalize.CityLookup {
	return normalize.CityLookup{
		"ALLSTON":       "BOSTON",
		"BACK BAY":      "BOSTON",
		"BEACON HILL":   "BOSTON",
		"BRIGHTON":      "BOSTON",
		"CHARLESTOWN":   "BOSTON",
		"DORCHESTER":    "BOSTON",
		"EAST BOSTON":   "BOSTON",
		"FENWAY":        "BOSTON",
		"HYDE PARK":     "BOSTON",
		"JAMAICA PLAIN": "BOSTON",
		"MATTAPAN":      "BOSTON",
		"MISSION HILL":  "BOSTON",
		"NORTH END":     "BOSTON",
		"ROSLINDALE":    "BOSTON",
		"ROXBURY":       "BOSTON",
		"SOUTH BOSTON":  "BOSTON",
		"SOUTH END":     "BOSTON",
		"WEST END":      "BOSTON",
		"WEST ROXBURY":  "BOSTON",
	}
}
