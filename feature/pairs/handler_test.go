package pairs

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"pair-compare/core/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp() *fiber.App {
	app := fiber.New()
	NewHandler(NewService(nil, "", "exports", zap.NewNop())).RegisterRoutes(app)
	return app
}

func uploadRequest(t *testing.T, url, fileName, content string, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if fileName != "" {
		part, err := w.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", url, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestHandleGenerate(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(uploadRequest(t, "/pairs/generate", "ids.csv", "id\n1\n2\n3\n", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "3", resp.Header.Get("X-Pair-Count"))
	assert.Equal(t, storage.XLSXContentType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), FileName)
}

func TestHandleGenerate_UnreadableFile(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(uploadRequest(t, "/pairs/generate", "ids.txt", "id\n1\n", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "0", resp.Header.Get("X-Pair-Count"))
}

func TestHandleGenerate_BadRequests(t *testing.T) {
	app := setupTestApp()

	tests := []struct {
		name string
		req  *http.Request
	}{
		{"missing file", uploadRequest(t, "/pairs/generate", "", "", map[string]string{"column": "id"})},
		{"unknown column", uploadRequest(t, "/pairs/generate", "ids.csv", "id\n1\n2\n", map[string]string{"column": "nope"})},
		{"storage disabled", uploadRequest(t, "/pairs/generate?store=true", "ids.csv", "id\n1\n2\n", nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(tt.req)
			require.NoError(t, err)
			assert.Equal(t, 400, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body["error"])
		})
	}
}
