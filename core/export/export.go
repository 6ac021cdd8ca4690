package export

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"pair-compare/core/compare"
	"pair-compare/core/table"
	"pair-compare/core/utils"

	"github.com/xuri/excelize/v2"
)

const (
	// DefaultSheet is the sheet of merged comparison workbooks.
	DefaultSheet = "Merged"
	// PairsSheet is the sheet of generated pairs workbooks.
	PairsSheet = "Pairs"

	minWidth     = 10
	widthPadding = 2
)

// WriteMerged writes a build result as a one-sheet workbook.
//
// The header row is bold and every column is sized to its longest cell. Data
// cells are filled by the schema highlight rules that match them. Rules naming
// a column missing from the schema are skipped.
func WriteMerged(w io.Writer, result *compare.Result, sheet string) error {
	if sheet == "" {
		sheet = DefaultSheet
	}
	f, err := newSheet(sheet)
	if err != nil {
		return err
	}
	defer f.Close()

	columns := result.Schema.Names()
	records := make([]table.Row, len(result.Rows))
	for i, row := range result.Rows {
		records[i] = row.Values
	}
	if err := writeRows(f, sheet, columns, records); err != nil {
		return err
	}

	position := make(map[string]int, len(columns))
	for i, col := range columns {
		position[col] = i + 1
	}
	for _, rule := range result.Schema.Highlights {
		idx, ok := position[rule.Column]
		if !ok {
			continue
		}
		style, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{strings.TrimPrefix(rule.Color, "#")}},
		})
		if err != nil {
			return fmt.Errorf("failed to create fill style: %w", err)
		}
		for r, rec := range records {
			if !rule.Matches(rec[rule.Column]) {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(idx, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
				return fmt.Errorf("failed to fill %s: %w", cell, err)
			}
		}
	}

	return f.Write(w)
}

// WritePairs writes a generated pairs table as a one-sheet workbook.
func WritePairs(w io.Writer, pairs *table.Table) error {
	f, err := newSheet(PairsSheet)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := writeRows(f, PairsSheet, pairs.Headers(), pairs.Rows); err != nil {
		return err
	}
	return f.Write(w)
}

// ReadHeader returns the header row of the first sheet of a workbook.
func ReadHeader(r io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.Rows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	if !rows.Next() {
		return []string{}, rows.Error()
	}
	return rows.Columns()
}

func newSheet(name string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet %q: %w", name, err)
	}
	return f, nil
}

// writeRows writes a bold header and the records, then sizes every column.
func writeRows(f *excelize.File, sheet string, columns []string, records []table.Row) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	header := make([]any, len(columns))
	widths := make([]int, len(columns))
	for i, col := range columns {
		header[i] = col
		widths[i] = utf8.RuneCountInString(col)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if len(columns) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(columns), 1)
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			return fmt.Errorf("failed to style header: %w", err)
		}
	}

	for r, rec := range records {
		values := make([]any, len(columns))
		for i, col := range columns {
			values[i] = rec[col]
			if n := utf8.RuneCountInString(utils.ToString(rec[col])); n > widths[i] {
				widths[i] = n
			}
		}
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", r+2, err)
		}
	}

	for i, w := range widths {
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, name, name, float64(max(w, minWidth)+widthPadding)); err != nil {
			return fmt.Errorf("failed to size column %s: %w", name, err)
		}
	}
	return nil
}
