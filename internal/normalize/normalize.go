// Package normalize holds the rule tables that canonicalize noisy
// free-text fields from administrative property records: street
// addresses, owner and corporate names, city names, and postal codes.
// Every stage is a pure function over a field value; nulls pass through
// untouched.
package normalize

import (
	"strings"

	"github.com/massprop-dedup/internal/rules"
	"github.com/massprop-dedup/internal/table"
)

// apply lifts a rule set to a field transform.
func apply(set *rules.Set) table.Transform {
	return func(f table.Field) table.Field {
		if !f.Valid {
			return f
		}
		out, blanked := set.Apply(f.String)
		if blanked {
			return table.Null()
		}
		return table.String(out)
	}
}

// applyCollapsed runs a rule set and then squeezes whitespace, for tables
// whose replacements pad with spaces.
func applyCollapsed(set *rules.Set) table.Transform {
	inner := apply(set)
	return func(f table.Field) table.Field {
		out := inner(f)
		if !out.Valid {
			return out
		}
		return table.String(collapse(out.String))
	}
}

// collapse trims edges and squeezes runs of internal whitespace.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
