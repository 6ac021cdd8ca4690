package compare

import (
	"fmt"
	"strings"

	"pair-compare/core/table"
	"pair-compare/core/utils"
)

// ColumnDetail is the breakdown of one comparison column for a single pair.
type ColumnDetail struct {
	Column       string   `json:"column"`
	Shared       []string `json:"shared"`
	Unique1      []string `json:"unique_1"`
	Unique2      []string `json:"unique_2"`
	SharedCount  int      `json:"shared_count"`
	Unique1Count int      `json:"unique_1_count"`
	Unique2Count int      `json:"unique_2_count"`
}

// Detail is the drill-down view of one merged row.
type Detail struct {
	Name1       string         `json:"name_1"`
	Name2       string         `json:"name_2"`
	Usage1      *float64       `json:"usage_1,omitempty"`
	Usage2      *float64       `json:"usage_2,omitempty"`
	Comparisons []ColumnDetail `json:"comparisons"`
}

// DetailAt builds the detail of the idx-th row of a result.
func DetailAt(result *Result, idx int) (*Detail, error) {
	if idx < 0 || idx >= len(result.Rows) {
		return nil, fmt.Errorf("%w: %d of %d", ErrRowOutOfRange, idx, len(result.Rows))
	}
	d := DetailOf(result.Rows[idx], result.Schema.Names(), result.Specs)
	return &d, nil
}

// DetailOf builds the detail of a merged row. Columns give the order in which
// usage candidates are scanned. Carried breakdowns are preferred over the
// derived string values.
func DetailOf(row MergedRow, columns []string, specs []ColumnSpec) Detail {
	d := header(row.Values, columns)
	for _, spec := range specs {
		if b, ok := row.Breakdowns[spec.Source]; ok {
			d.Comparisons = append(d.Comparisons, columnDetail(spec.Source, b))
			continue
		}
		d.Comparisons = append(d.Comparisons, parsedDetail(row.Values, spec.Source))
	}
	return d
}

// DetailFromValues builds the detail of a row known only by its string values,
// such as a row posted back by a client.
func DetailFromValues(values table.Row, columns []string, specs []ColumnSpec) Detail {
	d := header(values, columns)
	for _, spec := range specs {
		d.Comparisons = append(d.Comparisons, parsedDetail(values, spec.Source))
	}
	return d
}

func header(values table.Row, columns []string) Detail {
	d := Detail{
		Name1:       displayName(values, ColName1, ColID1),
		Name2:       displayName(values, ColName2, ColID2),
		Comparisons: []ColumnDetail{},
	}
	for _, col := range columns {
		if col == ColID1 || col == ColID2 || col == ColName1 || col == ColName2 {
			continue
		}
		v := values[col]
		if !utils.IsNumber(v) {
			continue
		}
		f, _ := utils.ToFloat(v)
		switch {
		case strings.HasSuffix(col, "_1"):
			d.Usage1 = &f
		case strings.HasSuffix(col, "_2"):
			d.Usage2 = &f
		}
	}
	return d
}

func displayName(values table.Row, nameCol, idCol string) string {
	if v := values[nameCol]; !utils.IsBlank(v) {
		return utils.ToString(v)
	}
	return utils.ToString(values[idCol])
}

func parsedDetail(values table.Row, source string) ColumnDetail {
	derived := DerivedColumns(source)
	return columnDetail(source, Breakdown{
		Shared:  ParseTokens(utils.ToString(values[derived[0]])),
		Unique1: ParseTokens(utils.ToString(values[derived[1]])),
		Unique2: ParseTokens(utils.ToString(values[derived[2]])),
	})
}

func columnDetail(source string, b Breakdown) ColumnDetail {
	return ColumnDetail{
		Column:       source,
		Shared:       b.Shared,
		Unique1:      b.Unique1,
		Unique2:      b.Unique2,
		SharedCount:  len(b.Shared),
		Unique1Count: len(b.Unique1),
		Unique2Count: len(b.Unique2),
	}
}
