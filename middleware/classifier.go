package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/blogem/content-audit/models"
)

// Path markers recognised by the classifier
const (
	PublishMarker   = "/actions/publish"
	UnpublishMarker = "/actions/unpublish"
	LoginMarker     = "/auth/local"
)

const publishedAtField = "publishedAt"

// Route is a request path split into its content API parts
type Route struct {
	// API is true when the first segment is the content API prefix
	API        bool
	PluralName string
	EntityID   string
	Segments   []string
}

// Classifier maps requests on the content API to audit actions
type Classifier struct {
	APIPrefix string
}

// NewClassifier creates a classifier for content API routes below prefix
func NewClassifier(apiPrefix string) *Classifier {
	return &Classifier{APIPrefix: strings.Trim(apiPrefix, "/")}
}

// Parse splits path into segments. Only API routes carry a plural name and an entity id.
func (c *Classifier) Parse(path string) Route {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	route := Route{Segments: segments}
	if len(segments) == 0 || segments[0] != c.APIPrefix {
		return route
	}

	route.API = true
	if len(segments) > 1 {
		route.PluralName = segments[1]
	}
	if len(segments) > 2 {
		route.EntityID = segments[2]
	}
	return route
}

// IsAPIRoute reports whether path belongs to the content API
func (c *Classifier) IsAPIRoute(path string) bool {
	return c.Parse(path).API
}

// NeedsPreviousEntity reports whether the entity must be loaded before the handler runs
func (c *Classifier) NeedsPreviousEntity(method, path string) bool {
	switch method {
	case http.MethodPut, http.MethodPatch, http.MethodDelete:
		return c.IsAPIRoute(path)
	}
	return false
}

// ShouldProcessRequest reports whether a finished request is a candidate for an audit entry
func (c *Classifier) ShouldProcessRequest(method, path string, status int) bool {
	return status >= 200 && status < 300 && method != http.MethodGet && c.IsAPIRoute(path)
}

// IsLoginRoute reports whether the request is a local login
func IsLoginRoute(method, path string) bool {
	return method == http.MethodPost && strings.Contains(path, LoginMarker)
}

// ClassifyAction derives the audit action of a request. The second result is false when the
// request is not an audited action.
func ClassifyAction(method, path string, requestBody map[string]interface{}, previous models.Snapshot, responseData map[string]interface{}) (models.Action, bool) {
	switch {
	case strings.Contains(path, PublishMarker):
		return models.ActionPublish, true
	case strings.Contains(path, UnpublishMarker):
		return models.ActionUnpublish, true
	case IsLoginRoute(method, path):
		return models.ActionLogin, true
	}

	if (method == http.MethodPut || method == http.MethodPatch) && previous != nil {
		if final, ok := finalPublishedAt(requestBody, responseData); ok {
			wasPublished := !isEmpty(previous[publishedAtField])
			isPublished := !isEmpty(final)
			switch {
			case !wasPublished && isPublished:
				return models.ActionPublish, true
			case wasPublished && !isPublished:
				return models.ActionUnpublish, true
			}
		}
	}

	switch method {
	case http.MethodPost:
		return models.ActionCreate, true
	case http.MethodPut, http.MethodPatch:
		return models.ActionUpdate, true
	case http.MethodDelete:
		return models.ActionDelete, true
	}
	return "", false
}

// finalPublishedAt returns the publishedAt value the entity ends up with: the response's if it
// has one, otherwise the one the request sent.
func finalPublishedAt(requestBody, responseData map[string]interface{}) (interface{}, bool) {
	if v, ok := responseData[publishedAtField]; ok {
		return v, true
	}
	if v, ok := RequestData(requestBody)[publishedAtField]; ok {
		return v, true
	}
	if v, ok := requestBody[publishedAtField]; ok {
		return v, true
	}
	return nil, false
}

func isEmpty(v interface{}) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// ExtractEntityID finds the affected entity: the third path segment, then the response's
// documentId and id, then the request's data.documentId and data.id.
// It returns an empty string when none is present.
func ExtractEntityID(segments []string, responseData, requestBody map[string]interface{}) string {
	if len(segments) > 2 && segments[2] != "" {
		return segments[2]
	}

	requestData := RequestData(requestBody)
	candidates := []interface{}{
		responseData["documentId"],
		responseData["id"],
		requestData["documentId"],
		requestData["id"],
	}
	for _, c := range candidates {
		if id := idString(c); id != "" {
			return id
		}
	}
	return ""
}

// idString normalizes a string or numeric identifier. Zero and empty values yield "".
func idString(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		if id == 0 {
			return ""
		}
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		if id == 0 {
			return ""
		}
		return strconv.Itoa(id)
	case int64:
		if id == 0 {
			return ""
		}
		return strconv.FormatInt(id, 10)
	case json.Number:
		if id == "0" {
			return ""
		}
		return id.String()
	}
	return ""
}

// RequestData returns the "data" object of a content API request body
func RequestData(body map[string]interface{}) map[string]interface{} {
	data, _ := body["data"].(map[string]interface{})
	return data
}

// ResponseData returns the entity a content API response describes: its "data" object,
// or the body itself when it has no "data" member.
func ResponseData(body map[string]interface{}) map[string]interface{} {
	raw, ok := body["data"]
	if !ok {
		return body
	}
	data, _ := raw.(map[string]interface{})
	return data
}

// LoginUser returns the user object of a login response
func LoginUser(body map[string]interface{}) map[string]interface{} {
	user, _ := body["user"].(map[string]interface{})
	return user
}
