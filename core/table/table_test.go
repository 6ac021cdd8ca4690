package table_test

import (
	"testing"

	"pair-compare/core/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromValues_InfersKinds(t *testing.T) {
	tbl := table.New("lookup", []string{"id", "name", "usage", "tags", "empty"}, [][]string{
		{"1", "A", "10", "x, y", ""},
		{"2", "B", "", "y,z", " "},
		{"3", "C", "2.5", "", ""},
	})

	require.Len(t, tbl.Columns, 5)
	kinds := map[string]table.Kind{}
	for _, c := range tbl.Columns {
		kinds[c.Name] = c.Kind
	}
	assert.Equal(t, table.KindNumeric, kinds["id"])
	assert.Equal(t, table.KindText, kinds["name"])
	assert.Equal(t, table.KindNumeric, kinds["usage"])
	assert.Equal(t, table.KindText, kinds["tags"])
	assert.Equal(t, table.KindText, kinds["empty"])

	assert.Equal(t, int64(1), tbl.Rows[0]["id"])
	assert.Equal(t, "A", tbl.Rows[0]["name"])
	assert.Nil(t, tbl.Rows[1]["usage"])
	assert.Equal(t, 2.5, tbl.Rows[2]["usage"])
	assert.Nil(t, tbl.Rows[2]["tags"])
	assert.Nil(t, tbl.Rows[1]["empty"])
}

func TestFromValues_PadsShortRecords(t *testing.T) {
	tbl := table.New("t", []string{"a", "b"}, [][]string{{"1"}, {"2", "x", "extra"}})
	assert.Nil(t, tbl.Rows[0]["b"])
	assert.Equal(t, "x", tbl.Rows[1]["b"])
	assert.Len(t, tbl.Rows[1], 2)
}

func TestFromValues_DuplicateHeaders(t *testing.T) {
	tbl := table.New("t", []string{"a", "a", "", "a"}, nil)
	assert.Equal(t, []string{"a", "a.1", "Unnamed: 2", "a.2"}, tbl.Headers())
}

func TestTableAccessors(t *testing.T) {
	tbl := table.New("t", []string{"id", "tag"}, [][]string{{"1", "x"}, {"2", "y"}})

	assert.True(t, tbl.Has("tag"))
	assert.False(t, tbl.Has("missing"))
	assert.Equal(t, []string{"id"}, tbl.ColumnsOfKind(table.KindNumeric))
	assert.Equal(t, []string{"tag"}, tbl.ColumnsOfKind(table.KindText))
	assert.Equal(t, []any{"x", "y"}, tbl.Values("tag"))
	assert.Equal(t, 2, tbl.Len())
	assert.False(t, tbl.IsEmpty())

	var nilTable *table.Table
	assert.True(t, nilTable.IsEmpty())
	assert.Equal(t, 0, nilTable.Len())
}

func TestFromValues_IntegerCellsStayExact(t *testing.T) {
	tbl := table.FromValues("ids", []string{"id", "score"}, [][]any{
		{"9007199254740993", "1.5"},
		{int64(9007199254740992), "15"},
		{uint8(3), 0.25},
	})

	assert.Equal(t, []any{int64(9007199254740993), int64(9007199254740992), int64(3)}, tbl.Values("id"))
	assert.Equal(t, []any{1.5, int64(15), 0.25}, tbl.Values("score"))
	assert.Equal(t, []string{"id", "score"}, tbl.ColumnsOfKind(table.KindNumeric))
}

func TestFromValues_TextColumnKeepsDigits(t *testing.T) {
	tbl := table.New("lookup", []string{"id"}, [][]string{{"0012"}, {"A7"}, {"9007199254740993"}})

	col, ok := tbl.Column("id")
	require.True(t, ok)
	assert.Equal(t, table.KindText, col.Kind)
	assert.Equal(t, []any{"0012", "A7", "9007199254740993"}, tbl.Values("id"))
}

func TestRowClone(t *testing.T) {
	r := table.Row{"a": 1.0}
	c := r.Clone()
	c["a"] = 2.0
	assert.Equal(t, 1.0, r["a"])
}
