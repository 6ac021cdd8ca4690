package compare

import (
	"fmt"
	"strings"

	"pair-compare/core/table"
)

// Headers of a generated pairs table.
const (
	PairsColID1 = "ID1"
	PairsColID2 = "ID2"
)

// GeneratePairs returns every unordered pair of the distinct ids, in combination order.
// Only the first occurrence of an id is used and blank ids are dropped, so n distinct
// ids always give n*(n-1)/2 pairs.
func GeneratePairs(ids []any) []PairRecord {
	distinct := make([]any, 0, len(ids))
	seen := make(map[EntityID]struct{}, len(ids))
	for _, id := range ids {
		key := IDOf(id)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		distinct = append(distinct, id)
	}

	n := len(distinct)
	if n < 2 {
		return []PairRecord{}
	}

	pairs := make([]PairRecord, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, PairRecord{ID1: distinct[i], ID2: distinct[j]})
		}
	}
	return pairs
}

// PairsTable renders generated pairs as a two column ID1, ID2 table.
func PairsTable(pairs []PairRecord) *table.Table {
	records := make([][]any, len(pairs))
	for i, p := range pairs {
		records[i] = []any{p.ID1, p.ID2}
	}
	return table.FromValues("Pairs", []string{PairsColID1, PairsColID2}, records)
}

// GuessIDColumn picks the first header containing "id" (any case), else the first header.
func GuessIDColumn(headers []string) string {
	for _, h := range headers {
		if strings.Contains(strings.ToLower(h), "id") {
			return h
		}
	}
	if len(headers) > 0 {
		return headers[0]
	}
	return ""
}

// PairsFromTable generates pairs from one column of an id list.
// An empty column name falls back to GuessIDColumn.
func PairsFromTable(ids *table.Table, column string) ([]PairRecord, error) {
	if ids.IsEmpty() {
		return []PairRecord{}, nil
	}
	if column == "" {
		column = GuessIDColumn(ids.Headers())
	}
	if !ids.Has(column) {
		return nil, fmt.Errorf("%w: id column %q in %s", ErrColumnNotFound, column, ids.Name)
	}
	return GeneratePairs(ids.Values(column)), nil
}
