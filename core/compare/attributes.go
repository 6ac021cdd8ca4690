package compare

import (
	"pair-compare/core/table"
)

// ResolveSpecs fixes the comparison columns of a build.
// Columns missing from the lookup table are dropped, repeats keep their first
// position, and specs without a valid kind take the lookup column's kind.
func ResolveSpecs(lookup *table.Table, requested []ColumnSpec) []ColumnSpec {
	out := make([]ColumnSpec, 0, len(requested))
	seen := make(map[string]bool, len(requested))
	for _, spec := range requested {
		col, ok := lookup.Column(spec.Source)
		if !ok || seen[spec.Source] {
			continue
		}
		seen[spec.Source] = true
		if !spec.Kind.IsValid() {
			spec.Kind = col.Kind
		}
		out = append(out, spec)
	}
	return out
}

// attributeIndex maps each id to its raw value in one lookup column.
// The first row carrying an id wins.
func attributeIndex(lookup *table.Table, idColumn, column string) map[EntityID]any {
	idx := make(map[EntityID]any, len(lookup.Rows))
	for _, row := range lookup.Rows {
		key := IDOf(row[idColumn])
		if key == "" {
			continue
		}
		if _, ok := idx[key]; !ok {
			idx[key] = row[column]
		}
	}
	return idx
}

// CompareAttributes adds the three derived columns of every comparison column to the merged rows
// and returns the highlight rules that color them.
func CompareAttributes(merged *Merged, lookup *table.Table, roles Roles, specs []ColumnSpec) []HighlightRule {
	var rules []HighlightRule
	for _, spec := range specs {
		if !lookup.Has(spec.Source) {
			continue
		}
		idx := attributeIndex(lookup, roles.LookupID, spec.Source)
		derived := DerivedColumns(spec.Source)

		for i := range merged.Rows {
			row := &merged.Rows[i]
			set1 := TokensOf(idx[IDOf(row.Values[ColID1])], spec.Kind)
			set2 := TokensOf(idx[IDOf(row.Values[ColID2])], spec.Kind)
			b := Split(set1, set2)

			if row.Breakdowns == nil {
				row.Breakdowns = map[string]Breakdown{}
			}
			row.Breakdowns[spec.Source] = b
			row.Values[derived[0]] = JoinTokens(b.Shared)
			row.Values[derived[1]] = JoinTokens(b.Unique1)
			row.Values[derived[2]] = JoinTokens(b.Unique2)
		}

		for _, col := range derived {
			merged.addColumn(col)
		}
		rules = append(rules, highlightRules(spec.Source)...)
	}
	return rules
}

func highlightRules(col string) []HighlightRule {
	colors := [3]string{ColorShared, ColorUnique1, ColorUnique2}
	derived := DerivedColumns(col)
	rules := make([]HighlightRule, len(derived))
	for i, name := range derived {
		rules[i] = HighlightRule{Column: name, Color: colors[i], TextColor: "black", When: "non_empty"}
	}
	return rules
}
