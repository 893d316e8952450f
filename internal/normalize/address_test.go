package normalize

import (
	"testing"

	"github.com/massprop-dedup/internal/table"
)

func TestExpandStreetTypes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"123 MAIN ST", "123 MAIN STREET"},
		{"45 COMMONWEALTH AVE.", "45 COMMONWEALTH AVENUE"},
		{"10 OCEAN DR", "10 OCEAN DRIVE"},
		{"5 SCHOOL CT", "5 SCHOOL COURT"},
		{"ADAMS SQ", "ADAMS SQUARE"},
		{"1 CENTER PLZ", "1 CENTER PLAZA"},
		{"8 UNION WHF", "8 UNION WHARF"},
		{"1 CHESTNUT TER", "1 CHESTNUT TERRACE"},
		{"1 CHESTNUT TERR", "1 CHESTNUT TERRACE"},
		{"STANLEY CT", "STANLEY COURT"},
		{"WATER ST", "WATER STREET"},
		// A digit followed by a detached ordinal suffix rejoins before
		// any street-type rule can read the suffix as an abbreviation.
		{"121 ST", "121ST"},
		{"4 TH FLOOR", "4TH FLOOR"},
		{"P.O. BOX 12", "PO BOX 12"},
		{"PO BOX 12", "PO BOX 12"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			runTransform(t, ExpandStreetTypes, tt.input, tt.want, false)
		})
	}
}

func TestIsPOBox(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"PO BOX 45", true},
		{"  PO BOX 45", true},
		{"PO BOX", true},
		{"DEPO BOX 45", false},
		{"PO BOXER", false},
		{"123 MAIN STREET", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsPOBox(tt.input); got != tt.want {
				t.Errorf("IsPOBox(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSegmentUnits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"marker with code", "45 ELM STREET APT 3B", "45 ELM STREET"},
		{"ordinal floor", "100 FEDERAL STREET 3RD FLOOR", "100 FEDERAL STREET"},
		{"suite number", "22 BEACON STREET SUITE 900", "22 BEACON STREET"},
		{"bare marker", "15 COURT SQUARE UNIT", "15 COURT SQUARE"},
		{"trailing digit code", "1 CENTER PLAZA 600", "1 CENTER PLAZA"},
		{"hash code", "33 UNION WHARF #2", "33 UNION WHARF"},
		{"single trailing letter", "89 SOUTH STREET A", "89 SOUTH STREET"},
		{"po box kept whole", "PO BOX 45", "PO BOX 45"},
		{"po box short number", "PO BOX 3", "PO BOX 3"},
		{"direction is not a marker", "123 NORTH", "123 NORTH"},
		{"plain address", "52 SALEM STREET", "52 SALEM STREET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := SegmentUnits([]table.Field{table.String(tt.input)})
			if !out[0].Valid {
				t.Fatalf("SegmentUnits(%q) nulled the value", tt.input)
			}
			if out[0].String != tt.want {
				t.Errorf("SegmentUnits(%q) = %q, want %q", tt.input, out[0].String, tt.want)
			}
		})
	}
}

func TestSegmentUnitsPreservesRowOrderAndNulls(t *testing.T) {
	in := []table.Field{
		table.String("45 ELM STREET APT 3B"),
		table.Null(),
		table.String("PO BOX 45"),
		table.String("22 BEACON STREET SUITE 900"),
	}
	out := SegmentUnits(in)

	if len(out) != len(in) {
		t.Fatalf("SegmentUnits() returned %d rows, want %d", len(out), len(in))
	}
	if out[0] != table.String("45 ELM STREET") {
		t.Errorf("row 0 = %+v", out[0])
	}
	if out[1].Valid {
		t.Errorf("row 1 = %+v, want null", out[1])
	}
	if out[2] != table.String("PO BOX 45") {
		t.Errorf("row 2 = %+v, want PO Box untouched in place", out[2])
	}
	if out[3] != table.String("22 BEACON STREET") {
		t.Errorf("row 3 = %+v", out[3])
	}
}

func TestStripHyphenRanges(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"125-127A MAIN STREET", "125 MAIN STREET"},
		{"36-38 CHESTNUT AVENUE", "36 CHESTNUT AVENUE"},
		{"12A-14 OAK STREET", "12 OAK STREET"},
		{"125-A MAIN STREET", "125 MAIN STREET"},
		{"40 MAIN STREET", "40 MAIN STREET"},
		{"KING-SMITH ROAD", "KING-SMITH ROAD"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			runTransform(t, StripHyphenRanges, tt.input, tt.want, false)
		})
	}
}

func TestBlankOneWordAddresses(t *testing.T) {
	tests := []struct {
		input    string
		want     string
		wantNull bool
	}{
		{input: "APT", wantNull: true},
		{input: "REAR", wantNull: true},
		{input: "123", wantNull: true},
		{input: " 45 ", wantNull: true},
		{input: "123 MAIN", want: "123 MAIN"},
		{input: "PO BOX 45", want: "PO BOX 45"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			runTransform(t, BlankOneWordAddresses, tt.input, tt.want, tt.wantNull)
		})
	}
}

func TestExpandStateNames(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"BOSTON MASS 02108", "BOSTON MASSACHUSETTS 02108"},
		{"MASS AVE", "MASSACHUSETTS AVE"},
		{"SPRINGFIELD MASS", "SPRINGFIELD MASS"},
		{"AMASSED FORTUNE LANE", "AMASSED FORTUNE LANE"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			runTransform(t, ExpandStateNames, tt.input, tt.want, false)
		})
	}
}

func TestTruncateZip(t *testing.T) {
	tests := []struct {
		input    string
		want     string
		wantNull bool
	}{
		{input: "02134-1533", want: "02134"},
		{input: "02134 1533", want: "02134"},
		{input: "02134", want: "02134"},
		{input: "  02108 ", want: "02108"},
		{input: "00000", wantNull: true},
		{input: "0", wantNull: true},
		{input: "", wantNull: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			runTransform(t, TruncateZip, tt.input, tt.want, tt.wantNull)
		})
	}

	if got := TruncateZip(table.Null()); got.Valid {
		t.Error("TruncateZip() rewrote a null field")
	}
}
