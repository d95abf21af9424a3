package controllers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/blogem/content-audit/models"
	"github.com/blogem/content-audit/services"
)

// LogsController serves audit log queries
type LogsController struct {
	services *services.Services
	logger   logrus.FieldLogger
}

// NewLogsController creates a new logs controller
func NewLogsController(services *services.Services, logger logrus.FieldLogger) *LogsController {
	return &LogsController{
		services: services,
		logger:   logger,
	}
}

// Index handles GET /logs
func (c *LogsController) Index(w http.ResponseWriter, r *http.Request) {
	filter := models.LogFilter{
		ContentType: r.URL.Query().Get("contentType"),
		SearchTerm:  r.URL.Query().Get("search"),
	}
	c.writePage(w, r, filter)
}

// Entity handles GET /logs/{contentType}/{entityId}
func (c *LogsController) Entity(w http.ResponseWriter, r *http.Request) {
	contentType, entityID, ok := entityParams(r)
	if !ok {
		writeError(w, c.logger, http.StatusBadRequest, "invalid content type or entity id")
		return
	}

	filter := models.LogFilter{
		ContentType: contentType,
		EntityID:    entityID,
		SearchTerm:  r.URL.Query().Get("search"),
	}
	c.writePage(w, r, filter)
}

// Recent handles GET /logs/{contentType}/{entityId}/recent
func (c *LogsController) Recent(w http.ResponseWriter, r *http.Request) {
	contentType, entityID, ok := entityParams(r)
	if !ok {
		writeError(w, c.logger, http.StatusBadRequest, "invalid content type or entity id")
		return
	}

	logs, err := c.services.Audit.RecentLogs(r.Context(), contentType, entityID, queryInt(r, "limit"))
	if err != nil {
		c.logger.WithError(err).Error("Failed to load recent audit logs")
		writeError(w, c.logger, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, c.logger, http.StatusOK, map[string]interface{}{"data": logs})
}

func (c *LogsController) writePage(w http.ResponseWriter, r *http.Request, filter models.LogFilter) {
	page, err := c.services.Audit.FindPaginated(r.Context(), filter, queryInt(r, "page"), queryInt(r, "pageSize"))
	if err != nil {
		c.logger.WithError(err).Error("Failed to query audit logs")
		writeError(w, c.logger, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, c.logger, http.StatusOK, page)
}

func entityParams(r *http.Request) (string, string, bool) {
	contentType, err := url.PathUnescape(chi.URLParam(r, "contentType"))
	if err != nil || contentType == "" {
		return "", "", false
	}
	entityID, err := url.PathUnescape(chi.URLParam(r, "entityId"))
	if err != nil || entityID == "" {
		return "", "", false
	}
	return contentType, entityID, true
}
