package compare

import (
	"strings"

	"pair-compare/core/table"
)

var (
	id1Hints        = []string{"id1", "query", "id_1", "id 1"}
	id2Hints        = []string{"id2", "subject", "id_2", "id 2"}
	similarityHints = []string{"sim", "score", "similarity"}
	lookupIDHints   = []string{"id"}
	nameHints       = []string{"name"}
	usageHints      = []string{"usage", "count", "amount", "score"}
	metaHints       = []string{"meta", "attribute", "attr"}
)

// Suggestion is a proposed role mapping for a pair of uploaded tables.
type Suggestion struct {
	Roles   Roles        `json:"roles"`
	Compare []ColumnSpec `json:"compare"`
}

// SuggestRoles guesses column roles from header names.
// Hints are tried in order and the first header containing a hint wins.
// Usage is only guessed among numeric lookup columns and meta among text ones.
func SuggestRoles(pairs, lookup *table.Table) Suggestion {
	var s Suggestion
	var pairHeaders, lookupHeaders []string
	if pairs != nil {
		pairHeaders = pairs.Headers()
	}
	if lookup != nil {
		lookupHeaders = lookup.Headers()
	}

	s.Roles.ID1 = guess(pairHeaders, id1Hints)
	s.Roles.ID2 = guess(pairHeaders, id2Hints)
	if s.Roles.ID1 == "" || s.Roles.ID2 == "" {
		var ids []string
		for _, h := range pairHeaders {
			if strings.Contains(strings.ToLower(h), "id") {
				ids = append(ids, h)
			}
		}
		if len(ids) >= 2 {
			s.Roles.ID1, s.Roles.ID2 = ids[0], ids[1]
		}
	}
	s.Roles.Similarity = guess(pairHeaders, similarityHints)
	s.Roles.LookupID = guess(lookupHeaders, lookupIDHints)
	s.Roles.Name = guess(lookupHeaders, nameHints)
	if lookup != nil {
		s.Roles.Usage = guess(lookup.ColumnsOfKind(table.KindNumeric), usageHints)
		s.Roles.Meta = guess(lookup.ColumnsOfKind(table.KindText), metaHints)
	}

	s.Compare = []ColumnSpec{}
	if s.Roles.Meta != "" {
		s.Compare = append(s.Compare, ColumnSpec{Source: s.Roles.Meta, Kind: table.KindText})
	}
	return s
}

func guess(headers, hints []string) string {
	for _, h := range hints {
		for _, c := range headers {
			if strings.Contains(strings.ToLower(c), h) {
				return c
			}
		}
	}
	return ""
}
