package etl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/massprop-dedup/internal/table"
)

func TestFromCSV(t *testing.T) {
	input := "addr,owner\n45 Elm St,\n,JOHN SMITH\n"

	got, err := FromCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("FromCSV() error = %v", err)
	}

	if got.NumRows() != 2 {
		t.Fatalf("NumRows() = %d, want 2", got.NumRows())
	}

	addr, ok := got.TextValues("addr")
	if !ok {
		t.Fatal("addr column missing")
	}
	if addr[0] != table.String("45 Elm St") {
		t.Errorf("addr[0] = %+v", addr[0])
	}
	if addr[1].Valid {
		t.Errorf("addr[1] = %+v, want null for empty cell", addr[1])
	}

	owner, _ := got.TextValues("owner")
	if owner[0].Valid {
		t.Errorf("owner[0] = %+v, want null for empty cell", owner[0])
	}
	if owner[1] != table.String("JOHN SMITH") {
		t.Errorf("owner[1] = %+v", owner[1])
	}
}

func TestFromCSVEmptyInput(t *testing.T) {
	if _, err := FromCSV(strings.NewReader("")); err == nil {
		t.Error("FromCSV() accepted input with no header")
	}
}

func TestCSVRoundTrip(t *testing.T) {
	in := table.MustNew(
		table.TextColumn("addr", table.String("45 ELM STREET"), table.Null()),
		table.TextColumn("city", table.String("BOSTON"), table.String("SALEM")),
	)

	var buf bytes.Buffer
	if err := ToCSV(&buf, in); err != nil {
		t.Fatalf("ToCSV() error = %v", err)
	}

	out, err := FromCSV(&buf)
	if err != nil {
		t.Fatalf("FromCSV() error = %v", err)
	}

	for _, name := range []string{"addr", "city"} {
		want, _ := in.TextValues(name)
		got, _ := out.TextValues(name)
		if len(got) != len(want) {
			t.Fatalf("column %s has %d rows, want %d", name, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s[%d] = %+v, want %+v", name, i, got[i], want[i])
			}
		}
	}
}
