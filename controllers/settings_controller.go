package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/blogem/content-audit/models"
	"github.com/blogem/content-audit/services"
)

// SettingsController handles the per content type audit toggles
type SettingsController struct {
	services *services.Services
	logger   logrus.FieldLogger
}

// NewSettingsController creates a new settings controller
func NewSettingsController(services *services.Services, logger logrus.FieldLogger) *SettingsController {
	return &SettingsController{
		services: services,
		logger:   logger,
	}
}

// updateSettingRequest is the body of a toggle request. A pointer tells a missing field from false.
type updateSettingRequest struct {
	Enabled *bool `json:"enabled"`
}

// Index handles GET /content-type-settings
func (c *SettingsController) Index(w http.ResponseWriter, r *http.Request) {
	page, err := c.services.Settings.ListSettings(
		r.Context(),
		queryInt(r, "page"),
		queryInt(r, "pageSize"),
		r.URL.Query().Get("search"),
	)
	if err != nil {
		c.logger.WithError(err).Error("Failed to list content type settings")
		writeError(w, c.logger, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, c.logger, http.StatusOK, page)
}

// Update handles PUT /content-type-settings/{contentType}
func (c *SettingsController) Update(w http.ResponseWriter, r *http.Request) {
	contentType, err := url.PathUnescape(chi.URLParam(r, "contentType"))
	contentType = strings.TrimSpace(contentType)
	if err != nil || contentType == "" {
		writeError(w, c.logger, http.StatusBadRequest, "invalid content type")
		return
	}

	var req updateSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Enabled == nil {
		writeError(w, c.logger, http.StatusBadRequest, "enabled must be a boolean")
		return
	}

	if err := c.services.Settings.SetEnabled(r.Context(), contentType, *req.Enabled); err != nil {
		var invalid models.ValidationErrors
		if errors.As(err, &invalid) {
			writeError(w, c.logger, http.StatusBadRequest, invalid.Error())
			return
		}
		writeError(w, c.logger, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, c.logger, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"contentType": contentType,
			"enabled":     *req.Enabled,
		},
	})
}
