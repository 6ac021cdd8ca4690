package comparison

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"pair-compare/core/export"
	"pair-compare/core/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	pairsCSV  = "query,subject,score\n1,2,0.87654\n1,3,0.5\n"
	lookupCSV = "id,name,tags\n1,A,\"x, y\"\n2,B,\"y, z\"\n3,C,\"x, y\"\n"
	requestJS = `{"roles":{"id1":"query","id2":"subject","similarity":"score","lookup_id":"id","name":"name","meta":"tags"},"compare":["tags"]}`
)

func setupTestApp() *fiber.App {
	app := fiber.New()
	svc := NewService(nil, "", nil, defaultConfig, zap.NewNop())
	NewHandler(svc).RegisterRoutes(app)
	return app
}

type form struct {
	files  map[string]string
	names  map[string]string
	fields map[string]string
}

func (f form) request(t *testing.T, url string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for field, content := range f.files {
		name := field + ".csv"
		if n, ok := f.names[field]; ok {
			name = n
		}
		part, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	for k, v := range f.fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", url, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func uploads(fields map[string]string) form {
	return form{files: map[string]string{"pairs": pairsCSV, "lookup": lookupCSV}, fields: fields}
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHandleColumns(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(uploads(nil).request(t, "/comparison/columns"))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, []any{"id"}, body["numeric_columns"])
	suggestion := body["suggestion"].(map[string]any)
	roles := suggestion["roles"].(map[string]any)
	assert.Equal(t, "query", roles["id1"])
	assert.Equal(t, "name", roles["name"])
	assert.Nil(t, roles["meta"], "no header looks like metadata")
}

func TestHandleBuild(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(uploads(map[string]string{"request": requestJS}).request(t, "/comparison/build"))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decode(t, resp)
	rows := body["rows"].([]any)
	require.Len(t, rows, 2)
	values := rows[0].(map[string]any)["values"].(map[string]any)
	assert.Equal(t, "A", values["Name_1"])
	assert.Equal(t, "B", values["Name_2"])
	assert.Equal(t, 0.877, values["Similarity/Score"])
	assert.Equal(t, "y", values["tags | Shared in both"])

	schema := body["schema"].(map[string]any)
	assert.Len(t, schema["highlights"], 3)
}

func TestHandleBuild_Unreadable(t *testing.T) {
	app := setupTestApp()

	f := uploads(map[string]string{"request": requestJS})
	f.names = map[string]string{"pairs": "pairs.pdf"}
	resp, err := app.Test(f.request(t, "/comparison/build"))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Empty(t, decode(t, resp)["rows"])
}

func TestHandleBuild_BadRequests(t *testing.T) {
	app := setupTestApp()

	tests := []struct {
		name   string
		fields map[string]string
	}{
		{"missing request", nil},
		{"invalid json", map[string]string{"request": "{"}},
		{"missing role", map[string]string{"request": `{"roles":{"id1":"query","lookup_id":"id"}}`}},
		{"absent column", map[string]string{"request": `{"roles":{"id1":"query","id2":"nope","lookup_id":"id"}}`}},
		{"invalid policy", map[string]string{"request": `{"roles":{"id1":"query","id2":"subject","lookup_id":"id"},"duplicate_policy":"merge"}`}},
		{"database disabled", map[string]string{"request": requestJS, "lookup_table": "entities"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := uploads(tt.fields)
			if tt.fields["lookup_table"] != "" {
				delete(f.files, "lookup")
			}
			resp, err := app.Test(f.request(t, "/comparison/build"))
			require.NoError(t, err)
			assert.Equal(t, 400, resp.StatusCode)
			assert.NotEmpty(t, decode(t, resp)["error"])
		})
	}
}

func TestHandleDetail(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(uploads(map[string]string{"request": requestJS, "row": "1"}).request(t, "/comparison/detail"))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "A", body["name_1"])
	assert.Equal(t, "C", body["name_2"])
	comparisons := body["comparisons"].([]any)
	require.Len(t, comparisons, 1)
	assert.Equal(t, 2.0, comparisons[0].(map[string]any)["shared_count"])

	resp, err = app.Test(uploads(map[string]string{"request": requestJS, "row": "5"}).request(t, "/comparison/detail"))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	resp, err = app.Test(uploads(map[string]string{"request": requestJS, "row": "x"}).request(t, "/comparison/detail"))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleDetail_PostedValues(t *testing.T) {
	app := setupTestApp()

	f := form{fields: map[string]string{
		"values":  `{"ID_1":"q","ID_2":"s","count_1":4,"tags | Shared in both":"a; b","tags | Unique to ID 1":"","tags | Unique to ID 2":"c"}`,
		"request": `{"roles":{"meta":"tags"}}`,
	}}
	resp, err := app.Test(f.request(t, "/comparison/detail"))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "q", body["name_1"])
	assert.Equal(t, 4.0, body["usage_1"])
	c := body["comparisons"].([]any)[0].(map[string]any)
	assert.Equal(t, []any{"a", "b"}, c["shared"])
	assert.Equal(t, []any{"c"}, c["unique_2"])
}

func TestHandleExport(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(uploads(map[string]string{"request": requestJS}).request(t, "/comparison/export"))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, storage.XLSXContentType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), FileName)

	header, err := export.ReadHeader(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ID_1", "ID_2", "Name_1", "Name_2", "Similarity/Score",
		"tags | Shared in both", "tags | Unique to ID 1", "tags | Unique to ID 2",
	}, header)
}

func TestHandleExport_StoreWithoutStorage(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(uploads(map[string]string{"request": requestJS}).request(t, "/comparison/export?store=true"))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
