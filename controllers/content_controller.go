package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/blogem/content-audit/models"
	"github.com/blogem/content-audit/registry"
	"github.com/blogem/content-audit/repositories"
)

// ContentController serves the content API the audit middleware observes
type ContentController struct {
	documents repositories.DocumentRepository
	registry  registry.Registry
	logger    logrus.FieldLogger
}

// NewContentController creates a new content controller
func NewContentController(documents repositories.DocumentRepository, reg registry.Registry, logger logrus.FieldLogger) *ContentController {
	return &ContentController{
		documents: documents,
		registry:  reg,
		logger:    logger,
	}
}

type contentRequest struct {
	Data map[string]interface{} `json:"data"`
}

// Routes mounts the content API handlers
func (c *ContentController) Routes(r chi.Router) {
	r.Route("/{pluralName}", func(r chi.Router) {
		r.Get("/", c.Index)
		r.Post("/", c.Create)
		r.Get("/{documentId}", c.Show)
		r.Put("/{documentId}", c.Update)
		r.Patch("/{documentId}", c.Update)
		r.Delete("/{documentId}", c.Delete)
		r.Post("/{documentId}/actions/publish", c.Publish)
		r.Post("/{documentId}/actions/unpublish", c.Unpublish)
	})
}

// resolve finds the content type of the request's plural name, writing a 404 when there is none
func (c *ContentController) resolve(w http.ResponseWriter, r *http.Request) (models.ContentType, bool) {
	ct, ok := c.registry.FindByPluralName(chi.URLParam(r, "pluralName"))
	if !ok {
		writeError(w, c.logger, http.StatusNotFound, "content type not found")
	}
	return ct, ok
}

// Index handles GET /{pluralName}
func (c *ContentController) Index(w http.ResponseWriter, r *http.Request) {
	ct, ok := c.resolve(w, r)
	if !ok {
		return
	}

	req := models.NewPageRequest(queryInt(r, "page"), queryInt(r, "pageSize"))
	docs, err := c.documents.FindMany(r.Context(), ct.UID, req.PageSize, req.Offset())
	if err != nil {
		c.fail(w, err)
		return
	}
	total, err := c.documents.Count(r.Context(), ct.UID)
	if err != nil {
		c.fail(w, err)
		return
	}

	writeJSON(w, c.logger, http.StatusOK, map[string]interface{}{
		"data": docs,
		"meta": map[string]interface{}{"pagination": req.Paginate(total)},
	})
}

// Show handles GET /{pluralName}/{documentId}
func (c *ContentController) Show(w http.ResponseWriter, r *http.Request) {
	ct, ok := c.resolve(w, r)
	if !ok {
		return
	}

	doc, err := c.documents.FindOne(r.Context(), ct.UID, chi.URLParam(r, "documentId"))
	if err != nil {
		c.fail(w, err)
		return
	}

	writeJSON(w, c.logger, http.StatusOK, map[string]interface{}{"data": doc})
}

// Create handles POST /{pluralName}
func (c *ContentController) Create(w http.ResponseWriter, r *http.Request) {
	ct, ok := c.resolve(w, r)
	if !ok {
		return
	}

	data, ok := c.decodeContent(w, r)
	if !ok {
		return
	}

	doc, err := c.documents.Create(r.Context(), ct.UID, data)
	if err != nil {
		c.fail(w, err)
		return
	}

	writeJSON(w, c.logger, http.StatusCreated, map[string]interface{}{"data": doc})
}

// Update handles PUT and PATCH /{pluralName}/{documentId}
func (c *ContentController) Update(w http.ResponseWriter, r *http.Request) {
	ct, ok := c.resolve(w, r)
	if !ok {
		return
	}

	data, ok := c.decodeContent(w, r)
	if !ok {
		return
	}

	doc, err := c.documents.Update(r.Context(), ct.UID, chi.URLParam(r, "documentId"), data)
	if err != nil {
		c.fail(w, err)
		return
	}

	writeJSON(w, c.logger, http.StatusOK, map[string]interface{}{"data": doc})
}

// Delete handles DELETE /{pluralName}/{documentId}
func (c *ContentController) Delete(w http.ResponseWriter, r *http.Request) {
	ct, ok := c.resolve(w, r)
	if !ok {
		return
	}

	doc, err := c.documents.Delete(r.Context(), ct.UID, chi.URLParam(r, "documentId"))
	if err != nil {
		c.fail(w, err)
		return
	}

	writeJSON(w, c.logger, http.StatusOK, map[string]interface{}{"data": doc})
}

// Publish handles POST /{pluralName}/{documentId}/actions/publish
func (c *ContentController) Publish(w http.ResponseWriter, r *http.Request) {
	c.setPublished(w, r, true)
}

// Unpublish handles POST /{pluralName}/{documentId}/actions/unpublish
func (c *ContentController) Unpublish(w http.ResponseWriter, r *http.Request) {
	c.setPublished(w, r, false)
}

func (c *ContentController) setPublished(w http.ResponseWriter, r *http.Request, published bool) {
	ct, ok := c.resolve(w, r)
	if !ok {
		return
	}

	doc, err := c.documents.SetPublished(r.Context(), ct.UID, chi.URLParam(r, "documentId"), published)
	if err != nil {
		c.fail(w, err)
		return
	}

	writeJSON(w, c.logger, http.StatusOK, map[string]interface{}{"data": doc})
}

// fail maps document store errors to a response
func (c *ContentController) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		writeError(w, c.logger, http.StatusNotFound, "document not found")
	case errors.Is(err, repositories.ErrInvalidDocument):
		writeError(w, c.logger, http.StatusBadRequest, err.Error())
	default:
		c.logger.WithError(err).Error("Content request failed")
		writeError(w, c.logger, http.StatusInternalServerError, err.Error())
	}
}

func (c *ContentController) decodeContent(w http.ResponseWriter, r *http.Request) (map[string]interface{}, bool) {
	var req contentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, c.logger, http.StatusBadRequest, "invalid JSON body")
		return nil, false
	}
	if req.Data == nil {
		writeError(w, c.logger, http.StatusBadRequest, `missing "data" payload`)
		return nil, false
	}
	return req.Data, true
}
