package etl

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/massprop-dedup/internal/table"
)

// FromCSV reads a CSV file into a table. Every column is text-typed; an
// empty cell is a null field, not an empty string, matching how the
// assessor extracts serialize missing values.
func FromCSV(r io.Reader) (*table.Table, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	values := make([][]table.Field, len(header))
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		for i := range header {
			f := table.Null()
			if i < len(record) && record[i] != "" {
				f = table.String(record[i])
			}
			values[i] = append(values[i], f)
		}
	}

	cols := make([]table.Column, len(header))
	for i, name := range header {
		cols[i] = table.TextColumn(name, values[i]...)
	}
	return table.New(cols...)
}

// ToCSV writes a table back out, serializing nulls as empty cells.
func ToCSV(w io.Writer, t *table.Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.ColumnNames()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	names := t.ColumnNames()
	record := make([]string, len(names))
	for row := 0; row < t.NumRows(); row++ {
		for i, name := range names {
			c, _ := t.Column(name)
			switch c.Type {
			case table.TypeText:
				if f := c.Text[row]; f.Valid {
					record[i] = f.String
				} else {
					record[i] = ""
				}
			default:
				if v := c.Raw[row]; v != nil {
					record[i] = fmt.Sprint(v)
				} else {
					record[i] = ""
				}
			}
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
