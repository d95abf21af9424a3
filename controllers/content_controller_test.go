package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blogem/content-audit/database"
	"github.com/blogem/content-audit/models"
	"github.com/blogem/content-audit/registry"
	"github.com/blogem/content-audit/repositories"
	"github.com/blogem/content-audit/repositories/mocks"
)

func testRegistry() *registry.Directory {
	return registry.NewDirectory([]models.ContentType{
		{UID: "api::article.article", Kind: models.KindCollection, SingularName: "article", PluralName: "articles", DisplayName: "Article"},
		{UID: "api::homepage.homepage", Kind: models.KindSingle, SingularName: "homepage", PluralName: "homepages"},
	})
}

func setupContentRouter(t *testing.T) *chi.Mux {
	db, err := database.InitializeDatabase("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger, _ := test.NewNullLogger()
	ctrl := NewContentController(repositories.NewDocumentRepository(db, database.SQLite), testRegistry(), logger)

	r := chi.NewRouter()
	r.Route("/api", ctrl.Routes)
	return r
}

type contentResponse struct {
	Data  map[string]interface{} `json:"data"`
	Error string                 `json:"error"`
}

func doContent(t *testing.T, r http.Handler, method, path, body string) (int, contentResponse) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var resp contentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec.Code, resp
}

func TestContentController_Lifecycle(t *testing.T) {
	r := setupContentRouter(t)

	code, created := doContent(t, r, http.MethodPost, "/api/articles", `{"data":{"title":"Hello","views":1}}`)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Hello", created.Data["title"])
	assert.Nil(t, created.Data["publishedAt"])
	docID, ok := created.Data["documentId"].(string)
	require.True(t, ok)
	require.NotEmpty(t, docID)

	code, shown := doContent(t, r, http.MethodGet, "/api/articles/"+docID, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, created.Data["id"], shown.Data["id"])

	code, updated := doContent(t, r, http.MethodPut, "/api/articles/"+docID, `{"data":{"title":"Hello again"}}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Hello again", updated.Data["title"])
	assert.Equal(t, float64(1), updated.Data["views"])

	code, published := doContent(t, r, http.MethodPost, "/api/articles/"+docID+"/actions/publish", "")
	require.Equal(t, http.StatusOK, code)
	assert.NotNil(t, published.Data["publishedAt"])

	code, unpublished := doContent(t, r, http.MethodPost, "/api/articles/"+docID+"/actions/unpublish", "")
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, unpublished.Data["publishedAt"])

	code, deleted := doContent(t, r, http.MethodDelete, "/api/articles/"+docID, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Hello again", deleted.Data["title"])

	code, missing := doContent(t, r, http.MethodGet, "/api/articles/"+docID, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "document not found", missing.Error)
}

func TestContentController_Index(t *testing.T) {
	r := setupContentRouter(t)

	for _, title := range []string{"one", "two", "three"} {
		code, _ := doContent(t, r, http.MethodPost, "/api/articles", `{"data":{"title":"`+title+`"}}`)
		require.Equal(t, http.StatusCreated, code)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/articles?page=2&pageSize=2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []map[string]interface{} `json:"data"`
		Meta struct {
			Pagination models.Pagination `json:"pagination"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "three", resp.Data[0]["title"])
	assert.Equal(t, models.Pagination{Page: 2, PageSize: 2, Total: 3, PageCount: 2}, resp.Meta.Pagination)
}

func TestContentController_Errors(t *testing.T) {
	r := setupContentRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"unknown type", http.MethodGet, "/api/widgets", "", http.StatusNotFound},
		{"single type is not served", http.MethodGet, "/api/homepages", "", http.StatusNotFound},
		{"missing data", http.MethodPost, "/api/articles", `{"title":"x"}`, http.StatusBadRequest},
		{"invalid json", http.MethodPost, "/api/articles", `{`, http.StatusBadRequest},
		{"invalid publishedAt", http.MethodPost, "/api/articles", `{"data":{"publishedAt":42}}`, http.StatusBadRequest},
		{"update missing document", http.MethodPut, "/api/articles/nope", `{"data":{"title":"x"}}`, http.StatusNotFound},
		{"delete missing document", http.MethodDelete, "/api/articles/nope", "", http.StatusNotFound},
		{"publish missing document", http.MethodPost, "/api/articles/nope/actions/publish", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := doContent(t, r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, code)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestContentController_StoreFailure(t *testing.T) {
	documents := mocks.NewMockDocumentRepository(t)
	logger, hook := test.NewNullLogger()
	ctrl := NewContentController(documents, testRegistry(), logger)

	r := chi.NewRouter()
	r.Route("/api", ctrl.Routes)

	documents.EXPECT().FindMany(mock.Anything, "api::article.article", 25, 0).Return(nil, errors.New("disk I/O error"))

	code, resp := doContent(t, r, http.MethodGet, "/api/articles", "")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "disk I/O error", resp.Error)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "Content request failed", hook.LastEntry().Message)
}
