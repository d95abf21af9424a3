package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/blogem/content-audit/models"
	"github.com/blogem/content-audit/services"
	"github.com/blogem/content-audit/services/mocks"
)

func setupLogsRouter(t *testing.T) (*chi.Mux, *mocks.MockAuditService) {
	audit := mocks.NewMockAuditService(t)
	logger, _ := test.NewNullLogger()
	ctrl := NewLogsController(&services.Services{Audit: audit}, logger)

	r := chi.NewRouter()
	r.Get("/logs", ctrl.Index)
	r.Get("/logs/{contentType}/{entityId}", ctrl.Entity)
	r.Get("/logs/{contentType}/{entityId}/recent", ctrl.Recent)
	return r, audit
}

func TestLogsController_Index(t *testing.T) {
	r, audit := setupLogsRouter(t)

	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	filter := models.LogFilter{ContentType: "api::article.article", SearchTerm: "upd"}
	audit.EXPECT().FindPaginated(mock.Anything, filter, 1, 25).Return(&models.Page[models.AuditLogEntry]{
		Results: []models.AuditLogEntry{{
			ID:          1,
			ContentType: "api::article.article",
			EntityID:    "7",
			Action:      models.ActionUpdate,
			Changes:     models.Changes{"title": {From: "A", To: "B"}},
			CreatedAt:   created,
		}},
		Pagination: models.Pagination{Page: 1, PageSize: 25, Total: 1, PageCount: 1},
	}, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/logs?contentType=api::article.article&search=upd&page=1&pageSize=25", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"results": [{
			"id": 1,
			"contentType": "api::article.article",
			"entityId": "7",
			"action": "update",
			"changes": {"title": {"from": "A", "to": "B"}},
			"createdAt": "2024-01-02T03:04:05Z"
		}],
		"pagination": {"page": 1, "pageSize": 25, "total": 1, "pageCount": 1}
	}`, rec.Body.String())
}

func TestLogsController_Entity(t *testing.T) {
	r, audit := setupLogsRouter(t)

	filter := models.LogFilter{ContentType: "api::article.article", EntityID: "abc"}
	audit.EXPECT().FindPaginated(mock.Anything, filter, 3, 0).Return(&models.Page[models.AuditLogEntry]{
		Results:    []models.AuditLogEntry{},
		Pagination: models.Pagination{Page: 3, PageSize: 25, Total: 10, PageCount: 1},
	}, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/logs/api::article.article/abc?page=3", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"results":[],"pagination":{"page":3,"pageSize":25,"total":10,"pageCount":1}}`, rec.Body.String())
}

func TestLogsController_Failure(t *testing.T) {
	r, audit := setupLogsRouter(t)
	audit.EXPECT().FindPaginated(mock.Anything, models.LogFilter{}, 0, 0).Return(nil, errors.New("connection refused"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/logs", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"connection refused"}`, rec.Body.String())
}

func TestLogsController_Recent(t *testing.T) {
	r, audit := setupLogsRouter(t)
	audit.EXPECT().RecentLogs(mock.Anything, "api::article.article", "7", 5).
		Return([]models.AuditLogEntry{{ID: 9, ContentType: "api::article.article", EntityID: "7", Action: models.ActionDelete}}, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/logs/api::article.article/7/recent?limit=5", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"action":"delete"`)
}
