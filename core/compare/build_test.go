package compare

import (
	"encoding/json"
	"sync"
	"testing"

	"pair-compare/core/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTables() (*table.Table, *table.Table) {
	pairs := table.New("pairs", []string{"id1", "id2"}, [][]string{{"1", "2"}})
	lookup := table.New("lookup", []string{"id", "name", "tag"}, [][]string{
		{"1", "A", "x,y"},
		{"2", "B", "y,z"},
	})
	return pairs, lookup
}

var sampleRoles = Roles{ID1: "id1", ID2: "id2", LookupID: "id", Name: "name"}

func TestBuild_SampleTables(t *testing.T) {
	pairs, lookup := sampleTables()

	result, err := Build(pairs, lookup, Request{Roles: sampleRoles, Compare: []ColumnSpec{{Source: "tag"}}})
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)

	row := result.Rows[0].Values
	assert.Equal(t, "A", row[ColName1])
	assert.Equal(t, "B", row[ColName2])
	assert.Equal(t, "y", row["tag | Shared in both"])
	assert.Equal(t, "x", row["tag | Unique to ID 1"])
	assert.Equal(t, "z", row["tag | Unique to ID 2"])

	assert.Equal(t, []string{
		ColID1, ColID2, ColName1, ColName2,
		"tag | Shared in both", "tag | Unique to ID 1", "tag | Unique to ID 2",
	}, result.Schema.Names())
	assert.Equal(t, []ColumnSpec{{Source: "tag", Kind: table.KindText}}, result.Specs)
	assert.Len(t, result.Schema.Highlights, 3)
}

func TestBuild_DefaultsToMetaColumn(t *testing.T) {
	pairs, lookup := sampleTables()
	roles := sampleRoles
	roles.Meta = "tag"

	result, err := Build(pairs, lookup, Request{Roles: roles})
	require.NoError(t, err)
	assert.Equal(t, []ColumnSpec{{Source: "tag", Kind: table.KindText}}, result.Specs)

	result, err = Build(pairs, lookup, Request{Roles: roles, Compare: []ColumnSpec{}})
	require.NoError(t, err)
	assert.Empty(t, result.Specs)
	assert.Equal(t, []string{ColID1, ColID2, ColName1, ColName2}, result.Schema.Names())
}

func TestBuild_Idempotent(t *testing.T) {
	pairs := table.New("pairs", []string{"id1", "id2", "sim"}, [][]string{
		{"1", "2", "0.91234"}, {"2", "3", "0.5"}, {"1", "3", ""},
	})
	lookup := table.New("lookup", []string{"id", "name", "uses", "tag", "size"}, [][]string{
		{"1", "A", "3", "a, b, c", "1"},
		{"2", "B", "4", "c, d", "2"},
		{"3", "", "", "e, a, b", "1"},
	})
	req := Request{
		Roles:   Roles{ID1: "id1", ID2: "id2", Similarity: "sim", LookupID: "id", Name: "name", Usage: "uses"},
		Compare: []ColumnSpec{{Source: "tag"}, {Source: "size"}},
	}

	first, err := Build(pairs, lookup, req)
	require.NoError(t, err)
	second, err := Build(pairs, lookup, req)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestBuild_DoesNotMutateInputs(t *testing.T) {
	pairs, lookup := sampleTables()
	before := lookup.Rows[0].Clone()

	result, err := Build(pairs, lookup, Request{Roles: sampleRoles, Compare: []ColumnSpec{{Source: "tag"}}})
	require.NoError(t, err)
	result.Rows[0].Values[ColName1] = "changed"

	assert.Equal(t, before, lookup.Rows[0])
	assert.Equal(t, []string{"id1", "id2"}, pairs.Headers())
	assert.Len(t, pairs.Rows[0], 2)
}

func TestBuild_Concurrent(t *testing.T) {
	pairs, lookup := sampleTables()
	req := Request{Roles: sampleRoles, Compare: []ColumnSpec{{Source: "tag"}}}

	var wg sync.WaitGroup
	results := make([]*Result, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Build(pairs, lookup, req)
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, "y", r.Rows[0].Values["tag | Shared in both"])
	}
}

func TestBuild_Validation(t *testing.T) {
	pairs, lookup := sampleTables()
	tests := []struct {
		name  string
		roles Roles
		want  error
	}{
		{"missing id1", Roles{ID2: "id2", LookupID: "id"}, ErrMissingRole},
		{"missing id2", Roles{ID1: "id1", LookupID: "id"}, ErrMissingRole},
		{"missing lookup id", Roles{ID1: "id1", ID2: "id2"}, ErrMissingRole},
		{"absent id column", Roles{ID1: "nope", ID2: "id2", LookupID: "id"}, ErrColumnNotFound},
		{"absent lookup column", Roles{ID1: "id1", ID2: "id2", LookupID: "key"}, ErrColumnNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(pairs, lookup, Request{Roles: tt.roles})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuild_EmptyTables(t *testing.T) {
	_, lookup := sampleTables()
	empty := table.New("pairs", nil, nil)

	result, err := Build(empty, lookup, Request{})
	require.NoError(t, err)
	assert.Empty(t, result.Rows)
	assert.Empty(t, result.Schema.Columns)

	result, err = Build(nil, nil, Request{Roles: sampleRoles})
	require.NoError(t, err)
	assert.Empty(t, result.Rows)
}

func TestBuild_RejectDuplicates(t *testing.T) {
	pairs, _ := sampleTables()
	lookup := table.New("lookup", []string{"id", "name"}, [][]string{{"1", "A"}, {"1", "A2"}, {"2", "B"}})

	result, err := Build(pairs, lookup, Request{Roles: sampleRoles})
	require.NoError(t, err)
	assert.Len(t, result.Rows, 2)

	_, err = Build(pairs, lookup, Request{Roles: sampleRoles, DuplicatePolicy: DuplicateReject})
	assert.ErrorIs(t, err, ErrDuplicateLookupID)
}
