// Package table holds the in-memory tabular model shared by every stage of a
// comparison build.
//
// A Table is an ordered list of typed columns and a list of rows keyed by column
// name. Cell values are normalized on construction: blank cells become nil,
// cells of numeric columns become float64 and every other cell is a string.
//
// # Column Kinds
//
// A column is numeric when every non-blank cell parses as a number and at least
// one such cell exists. Otherwise it is text. The kind is decided once, when the
// table is built, and carried with the column from then on.
//
// # Readers
//
// Tables are read from CSV and XLSX sources:
//
//	t, err := table.ReadFile("lookup.xlsx")
//	t, err := table.Read("pairs.csv", r)
//	t, err := table.FromStorage(ctx, client, "uploads", "pairs.csv")
package table
