package compare

import (
	"pair-compare/core/table"
)

// Build runs the full comparison pipeline over a pairs table and a lookup table.
//
// The steps run in a fixed order: validate the roles, resolve the comparison
// columns, enrich the pairs, compare attributes, build the display schema and
// project the rows onto it. Inputs are never modified. Empty tables give an
// empty result.
func Build(pairs, lookup *table.Table, req Request) (*Result, error) {
	if pairs.IsEmpty() || lookup.IsEmpty() {
		return emptyResult(), nil
	}
	if err := req.Roles.Validate(pairs, lookup); err != nil {
		return nil, err
	}

	requested := req.Compare
	if requested == nil && req.Roles.Meta != "" {
		requested = []ColumnSpec{{Source: req.Roles.Meta}}
	}
	specs := ResolveSpecs(lookup, requested)

	merged, err := Enrich(pairs, lookup, req.Roles, req.DuplicatePolicy)
	if err != nil {
		return nil, err
	}
	highlights := CompareAttributes(merged, lookup, req.Roles, specs)
	schema := BuildSchema(merged, req.Roles, req.Display, specs, highlights)

	return &Result{
		Schema: schema,
		Rows:   Project(merged.Rows, schema, specs),
		Specs:  specs,
	}, nil
}

func emptyResult() *Result {
	return &Result{
		Schema: DisplaySchema{Columns: []table.Column{}, Highlights: []HighlightRule{}},
		Rows:   []MergedRow{},
		Specs:  []ColumnSpec{},
	}
}
