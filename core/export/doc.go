// Package export writes comparison results and generated pairs as xlsx workbooks.
//
// Merged workbooks have a single sheet with a bold header row and columns
// sized to max(longest cell, 10) + 2 characters. The derived columns of every
// comparison column are filled on non-empty data cells:
//
//	<col> | Shared in both    #D6F5D6
//	<col> | Unique to ID 1    #FFFACD
//	<col> | Unique to ID 2    #FFD9EC
//
// Fills are matched on the exact header text. Numeric cells are written as numbers.
package export
