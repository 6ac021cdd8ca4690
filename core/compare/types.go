package compare

import (
	"encoding/json"
	"fmt"
	"strings"

	"pair-compare/core/table"
	"pair-compare/core/utils"
)

// Output column names of the merged table.
const (
	ColID1        = "ID_1"
	ColID2        = "ID_2"
	ColName1      = "Name_1"
	ColName2      = "Name_2"
	ColSimilarity = "Similarity/Score"
)

// Fill colors of the derived columns.
const (
	ColorShared  = "#D6F5D6"
	ColorUnique1 = "#FFFACD"
	ColorUnique2 = "#FFD9EC"
)

const (
	suffixShared  = " | Shared in both"
	suffixUnique1 = " | Unique to ID 1"
	suffixUnique2 = " | Unique to ID 2"
)

// SharedColumn names the derived column listing values found on both sides.
func SharedColumn(col string) string { return col + suffixShared }

// Unique1Column names the derived column listing values only found on side 1.
func Unique1Column(col string) string { return col + suffixUnique1 }

// Unique2Column names the derived column listing values only found on side 2.
func Unique2Column(col string) string { return col + suffixUnique2 }

// DerivedColumns returns the shared, unique-to-1 and unique-to-2 column names of col.
func DerivedColumns(col string) [3]string {
	return [3]string{SharedColumn(col), Unique1Column(col), Unique2Column(col)}
}

// UsageColumn names the per-side usage column, e.g. "count_1".
func UsageColumn(usage string, side int) string {
	return fmt.Sprintf("%s_%d", usage, side)
}

// EntityID is the canonical join key of an id cell. Numeric 1 and the string "1" share a key.
type EntityID string

// IDOf returns the canonical key of a raw id value. Blank values give the empty key.
func IDOf(v any) EntityID {
	if utils.IsBlank(v) {
		return ""
	}
	return EntityID(strings.TrimSpace(utils.ToString(v)))
}

// PairRecord is one comparison request read from the pairs table.
type PairRecord struct {
	ID1   any
	ID2   any
	Score any
	// Row is the full source row, carried into the merged table.
	Row table.Row
}

// EntityRecord is one row of the lookup table.
type EntityRecord struct {
	ID         any
	Name       any
	Usage      any
	Attributes table.Row
}

// Roles maps table headers to the roles the engine needs.
type Roles struct {
	ID1        string `json:"id1"`
	ID2        string `json:"id2"`
	Similarity string `json:"similarity,omitempty"`
	LookupID   string `json:"lookup_id"`
	Name       string `json:"name,omitempty"`
	Usage      string `json:"usage,omitempty"`
	Meta       string `json:"meta,omitempty"`
}

// Validate checks the required roles are set and present in their tables.
func (r Roles) Validate(pairs, lookup *table.Table) error {
	required := []struct {
		role, col string
		tbl       *table.Table
	}{
		{"id1", r.ID1, pairs},
		{"id2", r.ID2, pairs},
		{"lookup_id", r.LookupID, lookup},
	}
	for _, req := range required {
		if req.col == "" {
			return fmt.Errorf("%w: %s", ErrMissingRole, req.role)
		}
		if !req.tbl.Has(req.col) {
			return fmt.Errorf("%w: %s column %q in %s", ErrColumnNotFound, req.role, req.col, req.tbl.Name)
		}
	}
	return nil
}

// ColumnSpec selects a lookup column for shared/unique comparison.
// Kind is fixed when the build is configured; empty means the lookup column's own kind.
type ColumnSpec struct {
	Source string     `json:"column"`
	Kind   table.Kind `json:"type,omitempty"`
}

// IsNumeric reports whether values are compared as atomic numbers.
func (s ColumnSpec) IsNumeric() bool {
	return s.Kind == table.KindNumeric
}

// UnmarshalJSON accepts either a bare column name or an object.
func (s *ColumnSpec) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*s = ColumnSpec{Source: name}
		return nil
	}
	type plain ColumnSpec
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = ColumnSpec(p)
	return nil
}

// Breakdown is the shared/unique split of one comparison column for one pair.
type Breakdown struct {
	Shared  []string `json:"shared"`
	Unique1 []string `json:"unique_1"`
	Unique2 []string `json:"unique_2"`
}

// MergedRow is a pair enriched with both sides' metadata and its breakdowns.
type MergedRow struct {
	Values table.Row `json:"values"`
	// Breakdowns are keyed by comparison source column.
	Breakdowns map[string]Breakdown `json:"breakdowns"`
}

// Merged is the joined pairs table.
type Merged struct {
	Columns []string
	Rows    []MergedRow
}

func (m *Merged) addColumn(name string) {
	for _, c := range m.Columns {
		if c == name {
			return
		}
	}
	m.Columns = append(m.Columns, name)
}

func (m *Merged) hasColumn(name string) bool {
	for _, c := range m.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// HighlightRule marks a cell of Column whenever its value is non-empty.
type HighlightRule struct {
	Column    string `json:"column"`
	Color     string `json:"background_color"`
	TextColor string `json:"color"`
	When      string `json:"when"`
}

// Matches reports whether the rule applies to a cell value.
func (h HighlightRule) Matches(v any) bool {
	return strings.TrimSpace(utils.ToString(v)) != ""
}

// DisplaySchema is the ordered, typed output column list plus highlight rules.
type DisplaySchema struct {
	Columns    []table.Column  `json:"columns"`
	Highlights []HighlightRule `json:"highlights"`
}

// Names returns the column names in order.
func (s DisplaySchema) Names() []string {
	out := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		out[i] = c.Name
	}
	return out
}

// Request is the immutable input of one build.
type Request struct {
	Roles Roles `json:"roles"`
	// Compare lists comparison columns in selection order. Nil falls back to the meta role.
	Compare []ColumnSpec `json:"compare"`
	// Display lists passthrough fields. Nil shows every offered field.
	Display         []string        `json:"display"`
	DuplicatePolicy DuplicatePolicy `json:"duplicate_policy,omitempty"`
}

// Result is the output of one build.
type Result struct {
	Schema DisplaySchema `json:"schema"`
	Rows   []MergedRow   `json:"rows"`
	// Specs are the comparison columns actually applied, with resolved kinds.
	Specs []ColumnSpec `json:"specs"`
}
