package compare

import (
	"sort"
	"strings"

	"pair-compare/core/table"
	"pair-compare/core/utils"
)

// tokenJoiner separates tokens inside a derived column.
const tokenJoiner = ", "

// TokenSet is a set of attribute tokens.
type TokenSet map[string]struct{}

// TokensOf converts a raw cell to a token set.
// Blank cells give the empty set. Numeric columns give at most one token, the
// stringified value. Text columns split on commas, trim and drop empty tokens.
func TokensOf(v any, kind table.Kind) TokenSet {
	set := make(TokenSet)
	if utils.IsBlank(v) {
		return set
	}
	s := utils.ToString(v)
	if kind == table.KindNumeric {
		set[strings.TrimSpace(s)] = struct{}{}
		return set
	}
	for _, tok := range strings.Split(s, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			set[tok] = struct{}{}
		}
	}
	return set
}

// Sorted returns the tokens in lexicographic order.
func (s TokenSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for tok := range s {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// Split computes the shared and one-sided tokens of two sets.
func Split(set1, set2 TokenSet) Breakdown {
	b := Breakdown{Shared: []string{}, Unique1: []string{}, Unique2: []string{}}
	for tok := range set1 {
		if _, ok := set2[tok]; ok {
			b.Shared = append(b.Shared, tok)
		} else {
			b.Unique1 = append(b.Unique1, tok)
		}
	}
	for tok := range set2 {
		if _, ok := set1[tok]; !ok {
			b.Unique2 = append(b.Unique2, tok)
		}
	}
	sort.Strings(b.Shared)
	sort.Strings(b.Unique1)
	sort.Strings(b.Unique2)
	return b
}

// JoinTokens renders a token list as a derived column value.
func JoinTokens(tokens []string) string {
	return strings.Join(tokens, tokenJoiner)
}

// ParseTokens reads a derived column value back into tokens.
// Values are split on ";" and then on ",", trimmed, and empty tokens dropped.
func ParseTokens(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ";") {
		for _, tok := range strings.Split(part, ",") {
			if tok = strings.TrimSpace(tok); tok != "" {
				out = append(out, tok)
			}
		}
	}
	return out
}
