// Package compare implements pair enrichment and attribute-set comparison.
//
// A build takes a pairs table (two entity ids per row, optionally a similarity
// score) and a lookup table (one row per entity) and produces one merged row
// per pair. Each merged row carries both sides' names and usage values, plus
// three derived columns per comparison column listing the attribute tokens
// shared by both entities and the tokens unique to each side.
//
// # Pipeline
//
// Build runs a fixed sequence of pure steps:
//
//  1. Roles.Validate checks the required roles (id1, id2, lookup id).
//  2. ResolveSpecs drops stale comparison columns and fixes each column kind.
//  3. Enrich left joins the pairs against the lookup table on both ids.
//  4. CompareAttributes computes the shared and unique token sets.
//  5. BuildSchema orders and types the output columns.
//  6. Project trims merged rows to the schema.
//
// Every call allocates its own output. Inputs are never written to, so
// concurrent builds over the same tables are safe.
//
// # Tokens
//
// Numeric comparison columns yield at most one token, the formatted number.
// Text columns are split on commas, trimmed, and empty tokens dropped.
// Derived columns hold the sorted tokens joined with ", ". The token sets
// themselves are carried on MergedRow.Breakdowns for the detail view.
//
// # Duplicate IDs
//
// A lookup id repeated k times multiplies the rows of every pair referencing
// it by k. DuplicateReject turns this into ErrDuplicateLookupID instead.
// Attribute values always come from the first row carrying an id.
//
// # Usage Example
//
//	result, err := compare.Build(pairs, lookup, compare.Request{
//	    Roles: compare.Roles{ID1: "id1", ID2: "id2", LookupID: "id", Name: "name"},
//	    Compare: []compare.ColumnSpec{{Source: "tag"}},
//	})
//	if err != nil {
//	    return err
//	}
//	detail, err := compare.DetailAt(result, 0)
package compare
