package compare

import (
	"pair-compare/core/table"
	"pair-compare/core/utils"
)

// DisplayOptions lists the passthrough fields offered for display, in canonical order.
// Usage fields are only offered when a usage role is set.
func DisplayOptions(roles Roles) []string {
	opts := []string{ColID1, ColID2, ColName1, ColName2}
	if roles.Usage != "" {
		opts = append(opts, UsageColumn(roles.Usage, 1), UsageColumn(roles.Usage, 2))
	}
	return append(opts, ColSimilarity)
}

// BuildSchema resolves the ordered, typed output columns of a merged table.
//
// The chosen display fields come first in canonical order, whatever order they
// were selected in. Nil display selects every offered field. The three derived
// columns of each comparison column follow in selection order. Columns missing from merged
// are skipped and repeats dropped. Only highlights of kept columns survive.
func BuildSchema(merged *Merged, roles Roles, display []string, specs []ColumnSpec, highlights []HighlightRule) DisplaySchema {
	offered := DisplayOptions(roles)
	if display == nil {
		display = offered
	}
	chosen := make(map[string]bool, len(display))
	for _, d := range display {
		chosen[d] = true
	}

	schema := DisplaySchema{Columns: []table.Column{}, Highlights: []HighlightRule{}}
	seen := make(map[string]bool)
	add := func(name string, kind table.Kind) {
		if seen[name] || !merged.hasColumn(name) {
			return
		}
		seen[name] = true
		schema.Columns = append(schema.Columns, table.Column{Name: name, Kind: kind})
	}

	for _, name := range offered {
		if chosen[name] {
			add(name, observedKind(merged, name))
		}
	}
	for _, spec := range specs {
		for _, name := range DerivedColumns(spec.Source) {
			add(name, table.KindText)
		}
	}

	for _, rule := range highlights {
		if seen[rule.Column] {
			schema.Highlights = append(schema.Highlights, rule)
		}
	}
	return schema
}

// observedKind is numeric when every non-nil value of the column is a number and one exists.
func observedKind(merged *Merged, name string) table.Kind {
	found := false
	for _, row := range merged.Rows {
		v := row.Values[name]
		if v == nil {
			continue
		}
		if !utils.IsNumber(v) {
			return table.KindText
		}
		found = true
	}
	if !found {
		return table.KindText
	}
	return table.KindNumeric
}

// Project returns copies of the rows keeping only the schema columns.
// Breakdowns are kept for the specs whose derived columns are in the schema.
func Project(rows []MergedRow, schema DisplaySchema, specs []ColumnSpec) []MergedRow {
	names := schema.Names()
	inSchema := make(map[string]bool, len(names))
	for _, n := range names {
		inSchema[n] = true
	}

	out := make([]MergedRow, len(rows))
	for i, row := range rows {
		values := make(table.Row, len(names))
		for _, n := range names {
			values[n] = row.Values[n]
		}
		breakdowns := make(map[string]Breakdown)
		for _, spec := range specs {
			b, ok := row.Breakdowns[spec.Source]
			if ok && inSchema[SharedColumn(spec.Source)] {
				breakdowns[spec.Source] = b
			}
		}
		out[i] = MergedRow{Values: values, Breakdowns: breakdowns}
	}
	return out
}
