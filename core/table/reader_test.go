package table_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"strings"
	"testing"

	"pair-compare/core/storage/mocks"
	"pair-compare/core/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadCSV(t *testing.T) {
	data := "\ufeffid,name,tag\n1,A,\"x, y\"\n2,B,\"y, z\"\n"
	tbl, err := table.Read("lookup.csv", strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "tag"}, tbl.Headers())
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, "x, y", tbl.Rows[0]["tag"])
	assert.Equal(t, int64(2), tbl.Rows[1]["id"])
}

func TestReadCSV_Empty(t *testing.T) {
	tbl, err := table.Read("empty.csv", strings.NewReader(""))
	require.NoError(t, err)
	assert.True(t, tbl.IsEmpty())
}

func TestRead_UnsupportedFormat(t *testing.T) {
	_, err := table.Read("notes.txt", strings.NewReader("a"))
	assert.ErrorIs(t, err, table.ErrUnsupportedFormat)
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"ID1", "ID2", "score"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{1, 2, 0.5}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{1, 3, 0.75}))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	tbl, err := table.ReadBytes("pairs.xlsx", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []string{"ID1", "ID2", "score"}, tbl.Headers())
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, int64(3), tbl.Rows[1]["ID2"])
	assert.Equal(t, 0.75, tbl.Rows[1]["score"])

	col, ok := tbl.Column("score")
	require.True(t, ok)
	assert.Equal(t, table.KindNumeric, col.Kind)
}

func TestReadXLSX_Corrupt(t *testing.T) {
	_, err := table.ReadBytes("broken.xlsx", []byte("not a workbook"))
	assert.Error(t, err)
}

func TestFromStorage(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "uploads", "in/pairs.csv", mock.Anything).
		Return(io.NopCloser(strings.NewReader("ID1,ID2\na,b\n")), nil)

	tbl, err := table.FromStorage(context.Background(), mockClient, "uploads", "in/pairs.csv")
	require.NoError(t, err)
	assert.Equal(t, "pairs.csv", tbl.Name)
	assert.Equal(t, "b", tbl.Rows[0]["ID2"])

	mockClient.On("GetObject", mock.Anything, "uploads", "missing.csv", mock.Anything).
		Return(nil, assert.AnError)
	_, err = table.FromStorage(context.Background(), mockClient, "uploads", "missing.csv")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestReadUpload(t *testing.T) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", "ids.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("id\n1\n2\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	defer form.RemoveAll()

	tbl, err := table.ReadUpload(form.File["file"][0])
	require.NoError(t, err)
	assert.Equal(t, "ids.csv", tbl.Name)
	assert.Equal(t, []any{int64(1), int64(2)}, tbl.Values("id"))
}

func TestEmpty(t *testing.T) {
	tbl := table.Empty("x")
	assert.True(t, tbl.IsEmpty())
	assert.Equal(t, "x", tbl.Name)
}
