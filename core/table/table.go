package table

import (
	"fmt"
	"strings"

	"pair-compare/core/utils"
)

// Kind is the declared type of a column.
type Kind string

const (
	KindNumeric Kind = "numeric"
	KindText    Kind = "text"
)

// IsValid reports whether k is a known kind.
func (k Kind) IsValid() bool {
	return k == KindNumeric || k == KindText
}

// Column is a named, typed column.
type Column struct {
	Name string `json:"name"`
	Kind Kind   `json:"type"`
}

// Row maps column names to normalized cell values (nil, int64, float64 or string).
// Integral cells of numeric columns are int64 so large integer ids stay exact.
type Row map[string]any

// Clone returns a shallow copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is an in-memory tabular dataset.
type Table struct {
	Name    string
	Columns []Column
	Rows    []Row
}

// New builds a table from string records, as produced by CSV and spreadsheet readers.
func New(name string, headers []string, records [][]string) *Table {
	values := make([][]any, len(records))
	for i, rec := range records {
		row := make([]any, len(rec))
		for j, cell := range rec {
			row[j] = cell
		}
		values[i] = row
	}
	return FromValues(name, headers, values)
}

// FromValues builds a table from positional values and infers each column's kind.
// Records shorter than the header are padded with nil, extra cells are dropped.
// Repeated header names are suffixed (".1", ".2") so every column stays addressable.
func FromValues(name string, headers []string, records [][]any) *Table {
	names := uniqueHeaders(headers)
	t := &Table{Name: name, Columns: make([]Column, len(names)), Rows: make([]Row, len(records))}

	for j, col := range names {
		kind := inferKind(records, j)
		t.Columns[j] = Column{Name: col, Kind: kind}
	}

	for i, rec := range records {
		row := make(Row, len(names))
		for j, col := range t.Columns {
			var v any
			if j < len(rec) {
				v = rec[j]
			}
			row[col.Name] = normalize(v, col.Kind)
		}
		t.Rows[i] = row
	}
	return t
}

func inferKind(records [][]any, idx int) Kind {
	seen := false
	for _, rec := range records {
		if idx >= len(rec) || utils.IsBlank(rec[idx]) {
			continue
		}
		if _, ok := utils.ToFloat(rec[idx]); !ok {
			return KindText
		}
		seen = true
	}
	if !seen {
		return KindText
	}
	return KindNumeric
}

func normalize(v any, kind Kind) any {
	if utils.IsBlank(v) {
		return nil
	}
	if kind == KindNumeric {
		if i, ok := utils.ToInt(v); ok {
			return i
		}
		f, _ := utils.ToFloat(v)
		return f
	}
	return utils.ToString(v)
}

func uniqueHeaders(headers []string) []string {
	out := make([]string, len(headers))
	suffix := make(map[string]int, len(headers))
	taken := make(map[string]bool, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		name := h
		for taken[name] {
			suffix[h]++
			name = fmt.Sprintf("%s.%d", h, suffix[h])
		}
		taken[name] = true
		out[i] = name
	}
	return out
}

// Headers returns the column names in order.
func (t *Table) Headers() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Name
	}
	return out
}

// Column returns the named column.
func (t *Table) Column(name string) (Column, bool) {
	if t == nil {
		return Column{}, false
	}
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Has reports whether the table has the named column.
func (t *Table) Has(name string) bool {
	_, ok := t.Column(name)
	return ok
}

// ColumnsOfKind returns the names of all columns with the given kind.
func (t *Table) ColumnsOfKind(kind Kind) []string {
	var out []string
	for _, c := range t.Columns {
		if c.Kind == kind {
			out = append(out, c.Name)
		}
	}
	return out
}

// Values returns the values of a column in row order.
func (t *Table) Values(name string) []any {
	out := make([]any, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r[name]
	}
	return out
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// IsEmpty reports whether the table has no columns or no rows.
func (t *Table) IsEmpty() bool {
	return t == nil || len(t.Columns) == 0 || len(t.Rows) == 0
}
