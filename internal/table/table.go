package table

import "fmt"

// Type classifies a column. Normalization only ever touches text columns;
// everything else rides through a pipeline untouched.
type Type int

const (
	TypeText Type = iota
	TypeOpaque
)

// Field is an optional string value. Valid=false means NULL, which is a
// meaningful state distinct from the empty string.
type Field struct {
	String string
	Valid  bool
}

// String builds a non-null field.
func String(s string) Field {
	return Field{String: s, Valid: true}
}

// Null builds a null field.
func Null() Field {
	return Field{}
}

// Transform rewrites a single field value.
type Transform func(Field) Field

// Column is a named, typed column of values. Text columns carry Field
// values; opaque columns carry whatever the caller loaded (numbers,
// geometries) and are never rewritten.
type Column struct {
	Name string
	Type Type
	Text []Field
	Raw  []any
}

// TextColumn builds a text column from field values.
func TextColumn(name string, values ...Field) Column {
	return Column{Name: name, Type: TypeText, Text: values}
}

// OpaqueColumn builds a pass-through column.
func OpaqueColumn(name string, values ...any) Column {
	return Column{Name: name, Type: TypeOpaque, Raw: values}
}

func (c Column) length() int {
	if c.Type == TypeText {
		return len(c.Text)
	}
	return len(c.Raw)
}

// Table is an ordered set of records sharing a fixed schema. Row count and
// row order are invariant across every normalization stage.
type Table struct {
	cols []Column
	rows int
}

// New builds a table from columns, which must all have the same length and
// distinct names.
func New(cols ...Column) (*Table, error) {
	rows := 0
	if len(cols) > 0 {
		rows = cols[0].length()
	}
	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		if c.length() != rows {
			return nil, fmt.Errorf("column %s has %d rows, expected %d", c.Name, c.length(), rows)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("duplicate column %s", c.Name)
		}
		seen[c.Name] = true
	}
	return &Table{cols: cols, rows: rows}, nil
}

// MustNew is New for fixture and test data.
func MustNew(cols ...Column) *Table {
	t, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return t
}

// NumRows returns the row count.
func (t *Table) NumRows() int {
	return t.rows
}

// ColumnNames returns the schema's column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.cols {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// TextValues returns the values of a text column.
func (t *Table) TextValues(name string) ([]Field, bool) {
	c, ok := t.Column(name)
	if !ok || c.Type != TypeText {
		return nil, false
	}
	return c.Text, true
}

// Apply rewrites every targeted text column with fn and returns a new
// table. A target that is absent from the schema, or not text-typed, is
// silently skipped: pipelines stay resilient to schema drift across
// datasets, at the cost that an operator must check the schema to know a
// column was really normalized. Columns outside the target set are shared
// with the input table, never copied or mutated.
func (t *Table) Apply(targets []string, fn Transform) *Table {
	return t.ApplyColumn(targets, func(values []Field) []Field {
		out := make([]Field, len(values))
		for i, v := range values {
			out[i] = fn(v)
		}
		return out
	})
}

// ApplyColumn is Apply for stages that need the whole column at once, such
// as split/transform/recombine stages. fn must return a slice of the same
// length; anything else would break row identity, so the original column
// is kept instead.
func (t *Table) ApplyColumn(targets []string, fn func([]Field) []Field) *Table {
	wanted := make(map[string]bool, len(targets))
	for _, name := range targets {
		wanted[name] = true
	}

	cols := make([]Column, len(t.cols))
	for i, c := range t.cols {
		if c.Type != TypeText || !wanted[c.Name] {
			cols[i] = c
			continue
		}
		rewritten := fn(append([]Field(nil), c.Text...))
		if len(rewritten) != len(c.Text) {
			cols[i] = c
			continue
		}
		cols[i] = Column{Name: c.Name, Type: TypeText, Text: rewritten}
	}
	return &Table{cols: cols, rows: t.rows}
}
