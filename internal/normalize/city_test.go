package normalize

import (
	"testing"

	"github.com/massprop-dedup/internal/table"
)

func TestSubstituteCity(t *testing.T) {
	lookup := CityLookup{
		"ROSLINDALE":  "BOSTON",
		"DORCHESTER":  "BOSTON",
		"EAST BOSTON": "BOSTON",
	}
	fn := SubstituteCity(lookup)

	tests := []struct {
		input string
		want  string
	}{
		{"ROSLINDALE", "BOSTON"},
		{"roslindale", "BOSTON"},
		{"  DORCHESTER  ", "BOSTON"},
		// Alias resolves first, then the lookup.
		{"DORCHESTER CTR", "BOSTON"},
		{"SOMERVILE", "SOMERVILLE"},
		{"CAMBRIDGE", "CAMBRIDGE"},
		{"BOSTON", "BOSTON"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			runTransform(t, fn, tt.input, tt.want, false)
		})
	}

	if got := fn(table.Null()); got.Valid {
		t.Error("SubstituteCity() rewrote a null field")
	}
}

func TestSubstituteCityNilLookup(t *testing.T) {
	fn := SubstituteCity(nil)
	runTransform(t, fn, "SOMERVILE", "SOMERVILLE", false)
	runTransform(t, fn, "ROSLINDALE", "ROSLINDALE", false)
}
