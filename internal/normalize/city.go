package normalize

import (
	"strings"

	"github.com/massprop-dedup/internal/table"
)

// CityLookup maps a neighborhood name to its parent city. It is loaded by
// a collaborator (see internal/refdata), pre-uppercased, and treated as
// read-only reference data for the lifetime of a pipeline run.
type CityLookup map[string]string

// Spelling variants folded in before the lookup. DORCHESTER CTR resolves
// through the neighborhood table to its parent city when present.
var cityAliases = map[string]string{
	"SOMERVILE":      "SOMERVILLE",
	"DORCHESTER CTR": "DORCHESTER",
}

// SubstituteCity returns a transform that replaces a city-field value
// exactly matching a known neighborhood (case-normalized) with its parent
// city. Values that match nothing pass through unchanged.
func SubstituteCity(lookup CityLookup) table.Transform {
	return func(f table.Field) table.Field {
		if !f.Valid {
			return f
		}
		key := strings.ToUpper(collapse(f.String))
		aliased := false
		if alias, ok := cityAliases[key]; ok {
			key = alias
			aliased = true
		}
		if city, ok := lookup[key]; ok {
			return table.String(city)
		}
		if aliased {
			return table.String(key)
		}
		return f
	}
}
