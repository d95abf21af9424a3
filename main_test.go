package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/content-audit/config"
	"github.com/blogem/content-audit/models"
)

const testRegistry = `
contentTypes:
  - uid: api::article.article
    kind: collectionType
    singularName: article
    pluralName: articles
    displayName: Article
  - uid: api::tag.tag
    kind: collectionType
    singularName: tag
    pluralName: tags
  - uid: plugin::users-permissions.user
    kind: collectionType
    singularName: user
    pluralName: users
`

func setupServer(t *testing.T) *httptest.Server {
	dir := t.TempDir()
	registryPath := filepath.Join(dir, "content-types.yaml")
	require.NoError(t, os.WriteFile(registryPath, []byte(testRegistry), 0o600))

	cfg := &config.Config{
		Port:              "0",
		DBDriver:          "sqlite3",
		DatabaseURL:       filepath.Join(dir, "test.db"),
		RegistryPath:      registryPath,
		RegistryCacheSize: 16,
		APIPrefix:         "api",
		AdminPrefix:       "/audit-logs",
		MaxBodyBytes:      1 << 20,
		LogLevel:          "debug",
		LogFormat:         "text",
		MetricsEnabled:    true,
	}
	require.NoError(t, cfg.Validate())

	logger, _ := test.NewNullLogger()
	app, err := newApplication(t.Context(), cfg, logger)
	require.NoError(t, err)
	t.Cleanup(app.Close)

	srv := httptest.NewServer(setupRouter(app))
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, body string) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "audit-test")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &decoded), string(raw))
	}
	return resp.StatusCode, decoded
}

func fetchLogs(t *testing.T, srv *httptest.Server, path string) []models.AuditLogEntry {
	t.Helper()

	resp, err := srv.Client().Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page models.Page[models.AuditLogEntry]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	return page.Results
}

func TestAuditTrail_EndToEnd(t *testing.T) {
	srv := setupServer(t)

	// Nothing is audited until enabled
	code, _ := call(t, srv, http.MethodPost, "/api/articles", `{"data":{"title":"Draft"}}`)
	require.Equal(t, http.StatusCreated, code)
	assert.Empty(t, fetchLogs(t, srv, "/audit-logs/logs"))

	code, _ = call(t, srv, http.MethodPut, "/audit-logs/content-type-settings/api::article.article", `{"enabled":true}`)
	require.Equal(t, http.StatusOK, code)

	code, created := call(t, srv, http.MethodPost, "/api/articles", `{"data":{"title":"Hello","body":"first"}}`)
	require.Equal(t, http.StatusCreated, code)
	docID := created["data"].(map[string]interface{})["documentId"].(string)

	code, _ = call(t, srv, http.MethodPut, "/api/articles/"+docID, `{"data":{"title":"Hello world"}}`)
	require.Equal(t, http.StatusOK, code)

	code, _ = call(t, srv, http.MethodPost, "/api/articles/"+docID+"/actions/publish", "")
	require.Equal(t, http.StatusOK, code)

	code, _ = call(t, srv, http.MethodDelete, "/api/articles/"+docID, "")
	require.Equal(t, http.StatusOK, code)

	// Failed writes are not audited
	code, _ = call(t, srv, http.MethodDelete, "/api/articles/"+docID, "")
	require.Equal(t, http.StatusNotFound, code)

	logs := fetchLogs(t, srv, "/audit-logs/logs/api::article.article/"+docID)
	require.Len(t, logs, 4)

	actions := make([]models.Action, len(logs))
	for i, entry := range logs {
		actions[i] = entry.Action
		assert.Equal(t, "api::article.article", entry.ContentType)
		assert.Equal(t, docID, entry.EntityID)
		assert.Equal(t, "audit-test", entry.UserAgent)
		assert.Empty(t, entry.UserID)
	}
	assert.ElementsMatch(t, []models.Action{
		models.ActionCreate, models.ActionUpdate, models.ActionPublish, models.ActionDelete,
	}, actions)

	for _, entry := range logs {
		switch entry.Action {
		case models.ActionUpdate:
			require.Contains(t, entry.Changes, "title")
			assert.Equal(t, "Hello", entry.Changes["title"].From)
			assert.Equal(t, "Hello world", entry.Changes["title"].To)
			assert.NotContains(t, entry.Changes, "body")
			assert.Equal(t, "Hello", entry.PreviousValues["title"])
		case models.ActionDelete:
			assert.Nil(t, entry.NewValues)
			assert.Equal(t, "Hello world", entry.PreviousValues["title"])
		case models.ActionCreate:
			assert.Nil(t, entry.PreviousValues)
			assert.Equal(t, "Hello", entry.NewValues["title"])
		}
	}

	assert.Len(t, fetchLogs(t, srv, "/audit-logs/logs?search=publish"), 1)
	assert.Empty(t, fetchLogs(t, srv, "/audit-logs/logs?contentType=api::tag.tag"))

	resp, err := srv.Client().Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `audit_entries_written_total{action="update",content_type="api::article.article"} 1`)
}

func TestSettingsListing_EndToEnd(t *testing.T) {
	srv := setupServer(t)

	code, _ := call(t, srv, http.MethodPut, "/audit-logs/content-type-settings/api::tag.tag", `{"enabled":"yes"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body := call(t, srv, http.MethodGet, "/audit-logs/content-type-settings?search=ARTICLE", "")
	require.Equal(t, http.StatusOK, code)

	results := body["results"].([]interface{})
	require.Len(t, results, 1)
	first := results[0].(map[string]interface{})
	assert.Equal(t, "api::article.article", first["contentType"])
	assert.Equal(t, false, first["enabled"])
	assert.Equal(t, "Article", first["displayName"])
}

func TestAuthRoutes_WithoutOIDC(t *testing.T) {
	srv := setupServer(t)

	code, _ := call(t, srv, http.MethodGet, "/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = call(t, srv, http.MethodGet, "/auth/login", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, body := call(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", body["status"])
}
