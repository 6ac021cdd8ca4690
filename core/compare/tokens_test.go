package compare

import (
	"testing"

	"pair-compare/core/table"

	"github.com/stretchr/testify/assert"
)

func TestTokensOf(t *testing.T) {
	tests := []struct {
		name string
		val  any
		kind table.Kind
		want []string
	}{
		{"Nil", nil, table.KindText, []string{}},
		{"Blank", "   ", table.KindText, []string{}},
		{"Text", "x, y", table.KindText, []string{"x", "y"}},
		{"TextDuplicatesAndEmpties", "b,, a ,b,", table.KindText, []string{"a", "b"}},
		{"NumericFloat", 5.0, table.KindNumeric, []string{"5"}},
		{"NumericFraction", 2.5, table.KindNumeric, []string{"2.5"}},
		{"NumericKeepsCommas", "1,000", table.KindNumeric, []string{"1,000"}},
		{"TextFromNumber", 7.0, table.KindText, []string{"7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TokensOf(tt.val, tt.kind).Sorted())
		})
	}
}

func TestSplit(t *testing.T) {
	b := Split(TokensOf("x, y", table.KindText), TokensOf("y, z", table.KindText))
	assert.Equal(t, []string{"y"}, b.Shared)
	assert.Equal(t, []string{"x"}, b.Unique1)
	assert.Equal(t, []string{"z"}, b.Unique2)

	empty := Split(TokenSet{}, TokenSet{})
	assert.Empty(t, empty.Shared)
	assert.NotNil(t, empty.Shared)
}

func TestSplit_Invariants(t *testing.T) {
	set1 := TokensOf("a, b, c, d", table.KindText)
	set2 := TokensOf("c, d, e", table.KindText)
	b := Split(set1, set2)

	seen := map[string]int{}
	for _, list := range [][]string{b.Shared, b.Unique1, b.Unique2} {
		for _, tok := range list {
			seen[tok]++
		}
	}
	// pairwise disjoint and covering the union
	assert.Len(t, seen, 5)
	for tok, n := range seen {
		assert.Equal(t, 1, n, tok)
	}
}

func TestJoinAndParseTokens(t *testing.T) {
	assert.Equal(t, "a, b", JoinTokens([]string{"a", "b"}))
	assert.Equal(t, "", JoinTokens(nil))

	assert.Equal(t, []string{"a", "b", "c"}, ParseTokens("a, b; c"))
	assert.Equal(t, []string{}, ParseTokens(""))
	assert.Equal(t, []string{"x"}, ParseTokens(" ;, x ,;"))
}
