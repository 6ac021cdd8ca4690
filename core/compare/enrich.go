package compare

import (
	"fmt"
	"sort"

	"pair-compare/core/table"
	"pair-compare/core/utils"
)

// similarityPlaces is the rounding applied to similarity scores.
const similarityPlaces = 3

// Entities reads the lookup table into entity records using the lookup roles.
func Entities(lookup *table.Table, roles Roles) []EntityRecord {
	out := make([]EntityRecord, len(lookup.Rows))
	usage := roles.Usage != "" && lookup.Has(roles.Usage)
	name := roles.Name != "" && lookup.Has(roles.Name)
	for i, row := range lookup.Rows {
		rec := EntityRecord{ID: row[roles.LookupID], Attributes: row}
		if name {
			rec.Name = row[roles.Name]
		}
		if usage {
			rec.Usage = row[roles.Usage]
		}
		out[i] = rec
	}
	return out
}

// PairRecords reads the pairs table into pair records using the pair roles.
func PairRecords(pairs *table.Table, roles Roles) []PairRecord {
	out := make([]PairRecord, len(pairs.Rows))
	sim := roles.Similarity != "" && pairs.Has(roles.Similarity)
	for i, row := range pairs.Rows {
		rec := PairRecord{ID1: row[roles.ID1], ID2: row[roles.ID2], Row: row}
		if sim {
			rec.Score = row[roles.Similarity]
		}
		out[i] = rec
	}
	return out
}

// indexEntities groups entity records by id, keeping lookup order inside each group.
func indexEntities(entities []EntityRecord) map[EntityID][]EntityRecord {
	idx := make(map[EntityID][]EntityRecord, len(entities))
	for _, e := range entities {
		key := IDOf(e.ID)
		if key == "" {
			continue
		}
		idx[key] = append(idx[key], e)
	}
	return idx
}

// DuplicateIDs returns the ids that occur more than once in the lookup table, sorted.
func DuplicateIDs(lookup *table.Table, idColumn string) []string {
	counts := make(map[EntityID]int)
	for _, v := range lookup.Values(idColumn) {
		if key := IDOf(v); key != "" {
			counts[key]++
		}
	}
	var dups []string
	for key, n := range counts {
		if n > 1 {
			dups = append(dups, string(key))
		}
	}
	sort.Strings(dups)
	return dups
}

// RoundScore rounds a similarity value to three decimals when it converts to a number.
// Integers and other values pass through unchanged.
func RoundScore(v any) any {
	if utils.IsBlank(v) {
		return nil
	}
	if i, ok := v.(int64); ok {
		return i
	}
	if f, ok := utils.ToFloat(v); ok {
		return utils.RoundTo(f, similarityPlaces)
	}
	return v
}

// Enrich left joins the pairs table against the lookup table on both ids.
//
// Every pair yields at least one merged row, with nil name and usage for ids the
// lookup table does not know. A side whose id occurs k times in the lookup table
// multiplies the pair's rows by k (fan-out), unless policy is DuplicateReject.
//
// Other pairs-table columns pass through. The engine-owned columns (ID_1, ID_2,
// Name_x, <usage>_x, Similarity/Score) win over a pairs column of the same name.
func Enrich(pairs, lookup *table.Table, roles Roles, policy DuplicatePolicy) (*Merged, error) {
	if !policy.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPolicy, policy)
	}
	if policy == DuplicateReject {
		if dups := DuplicateIDs(lookup, roles.LookupID); len(dups) > 0 {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateLookupID, dups)
		}
	}

	merged := &Merged{Columns: []string{ColID1, ColID2}}
	for _, col := range pairs.Headers() {
		if col != roles.ID1 && col != roles.ID2 {
			merged.addColumn(col)
		}
	}

	withName := roles.Name != "" && lookup.Has(roles.Name)
	withUsage := roles.Usage != "" && lookup.Has(roles.Usage)
	withSim := roles.Similarity != "" && pairs.Has(roles.Similarity)
	if withName {
		merged.addColumn(ColName1)
		merged.addColumn(ColName2)
	}
	if withUsage {
		merged.addColumn(UsageColumn(roles.Usage, 1))
		merged.addColumn(UsageColumn(roles.Usage, 2))
	}
	if withSim {
		merged.addColumn(ColSimilarity)
	}

	index := indexEntities(Entities(lookup, roles))
	// an empty record stands for "no match" and keeps the row
	noMatch := []EntityRecord{{}}

	for _, pair := range PairRecords(pairs, roles) {
		side1, ok := index[IDOf(pair.ID1)]
		if !ok {
			side1 = noMatch
		}
		side2, ok := index[IDOf(pair.ID2)]
		if !ok {
			side2 = noMatch
		}

		for _, e1 := range side1 {
			for _, e2 := range side2 {
				values := pair.Row.Clone()
				delete(values, roles.ID1)
				delete(values, roles.ID2)
				values[ColID1] = pair.ID1
				values[ColID2] = pair.ID2
				if withName {
					values[ColName1] = e1.Name
					values[ColName2] = e2.Name
				}
				if withUsage {
					values[UsageColumn(roles.Usage, 1)] = e1.Usage
					values[UsageColumn(roles.Usage, 2)] = e2.Usage
				}
				if withSim {
					values[ColSimilarity] = RoundScore(pair.Score)
				}
				merged.Rows = append(merged.Rows, MergedRow{Values: values, Breakdowns: map[string]Breakdown{}})
			}
		}
	}

	return merged, nil
}
