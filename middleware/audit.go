package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/blogem/content-audit/metrics"
	"github.com/blogem/content-audit/models"
	"github.com/blogem/content-audit/registry"
	"github.com/blogem/content-audit/repositories"
	"github.com/blogem/content-audit/services"
	"github.com/blogem/content-audit/userctx"
)

// SettingsChecker tells whether a content type is audited
type SettingsChecker interface {
	IsEnabled(ctx context.Context, contentType string) bool
}

// EntityStore loads the current state of an entity
type EntityStore interface {
	FindOne(ctx context.Context, contentType, documentID string) (models.Snapshot, error)
}

// Recorder persists audit log entries
type Recorder interface {
	Record(ctx context.Context, entry *models.AuditLogEntry) error
}

// AuditOptions configures the AuditLogger middleware
type AuditOptions struct {
	Registry     registry.Registry
	Settings     SettingsChecker
	Entities     EntityStore
	Recorder     Recorder
	Logger       logrus.FieldLogger
	Metrics      *metrics.Metrics
	APIPrefix    string
	MaxBodyBytes int64
}

// DefaultMaxBodyBytes bounds request and response capture when no limit is configured
const DefaultMaxBodyBytes = 1 << 20

type auditPipeline struct {
	AuditOptions
	classifier *Classifier
}

// AuditLogger middleware records an audit entry for every successful write on an audited content type.
// Failures inside the pipeline are logged and never reach the client.
func AuditLogger(opts AuditOptions) func(http.Handler) http.Handler {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	p := &auditPipeline{AuditOptions: opts, classifier: NewClassifier(opts.APIPrefix)}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := p.classifier.Parse(r.URL.Path)
			if !route.API || r.Method == http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			var previous models.Snapshot
			if p.classifier.NeedsPreviousEntity(r.Method, r.URL.Path) {
				previous = p.prefetch(r, route)
			}

			requestBody := p.captureRequestBody(r)

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			responseBody := newCappedBuffer(p.MaxBodyBytes)
			ww.Tee(responseBody)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			if !p.classifier.ShouldProcessRequest(r.Method, r.URL.Path, status) {
				p.Metrics.Skipped(metrics.SkipNotProcessed)
				return
			}

			p.record(r, route, previous, requestBody, responseBody)
		})
	}
}

// prefetch loads the entity a write is about to change. A missing entity is expected.
func (p *auditPipeline) prefetch(r *http.Request, route Route) (previous models.Snapshot) {
	defer func() {
		if rec := recover(); rec != nil {
			p.Logger.WithField("panic", rec).WithField("path", r.URL.Path).Error("Audit log prefetch panicked")
			p.Metrics.Failed(metrics.StagePrefetch)
			previous = nil
		}
	}()

	if route.EntityID == "" {
		p.Metrics.Prefetched(metrics.PrefetchSkipped)
		return nil
	}

	ct, ok := p.Registry.FindByPluralName(route.PluralName)
	if !ok || !p.Settings.IsEnabled(r.Context(), ct.UID) {
		p.Metrics.Prefetched(metrics.PrefetchSkipped)
		return nil
	}

	snapshot, err := p.Entities.FindOne(r.Context(), ct.UID, route.EntityID)
	if err != nil {
		entry := p.Logger.WithError(err).WithFields(logrus.Fields{
			"content_type": ct.UID,
			"entity_id":    route.EntityID,
		})
		if !errors.Is(err, repositories.ErrNotFound) {
			p.Metrics.Failed(metrics.StagePrefetch)
		}
		entry.Debug("Could not fetch previous entity for audit log")
		p.Metrics.Prefetched(metrics.PrefetchMissing)
		return nil
	}

	p.Metrics.Prefetched(metrics.PrefetchFound)
	return snapshot
}

// captureRequestBody reads up to MaxBodyBytes of the request body and puts them back
// in front of the unread remainder for the handler.
func (p *auditPipeline) captureRequestBody(r *http.Request) []byte {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}

	buf, err := io.ReadAll(io.LimitReader(r.Body, p.MaxBodyBytes+1))
	r.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(buf), r.Body), r.Body}

	if err != nil {
		p.Logger.WithError(err).WithField("path", r.URL.Path).Debug("Could not read request body for audit log")
		return nil
	}
	if int64(len(buf)) > p.MaxBodyBytes {
		return nil
	}
	return buf
}

// record builds and writes the audit entry for a finished request
func (p *auditPipeline) record(r *http.Request, route Route, previous models.Snapshot, rawRequest []byte, response *cappedBuffer) {
	defer func() {
		if rec := recover(); rec != nil {
			p.Logger.WithField("panic", rec).WithField("path", r.URL.Path).Error("Error in audit log middleware")
			p.Metrics.Failed(metrics.StagePost)
		}
	}()

	// The client may be gone by now; the entry is still written
	ctx := context.WithoutCancel(r.Context())
	log := p.Logger.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	})

	login := IsLoginRoute(r.Method, r.URL.Path)

	var ct models.ContentType
	var ok bool
	if login {
		ct, ok = p.Registry.FindByUID(models.UserContentType)
	} else {
		ct, ok = p.Registry.FindByPluralName(route.PluralName)
	}
	if !ok {
		log.WithField("plural_name", route.PluralName).Debug("Skipping audit log: no content type found")
		p.Metrics.Skipped(metrics.SkipUnknownType)
		return
	}
	log = log.WithField("content_type", ct.UID)

	if !p.Settings.IsEnabled(ctx, ct.UID) {
		log.Debug("Skipping audit log: not enabled")
		p.Metrics.Skipped(metrics.SkipDisabled)
		return
	}

	requestBody := decodeObject(rawRequest)
	var responseBody map[string]interface{}
	if !response.Truncated() {
		responseBody = decodeObject(response.Bytes())
	}

	segments := route.Segments
	responseData := ResponseData(responseBody)
	if login {
		segments = nil
		responseData = LoginUser(responseBody)
	}

	action, ok := ClassifyAction(r.Method, r.URL.Path, requestBody, previous, responseData)
	if !ok {
		log.Debug("Skipping audit log: no action")
		p.Metrics.Skipped(metrics.SkipNoAction)
		return
	}

	entityID := ExtractEntityID(segments, responseData, requestBody)
	if entityID == "" {
		log.WithField("action", action).Warn("Skipping audit log: no entity id")
		p.Metrics.Skipped(metrics.SkipNoEntityID)
		return
	}

	actor := userctx.GetUser(r.Context())
	entry := &models.AuditLogEntry{
		ContentType: ct.UID,
		EntityID:    entityID,
		Action:      action,
		UserID:      actor.ID,
		UserEmail:   actor.Email,
		IPAddress:   getIPAddress(r),
		UserAgent:   r.UserAgent(),
	}

	if action == models.ActionUpdate && previous != nil {
		entry.Changes = services.DetectChanges(previous, models.Snapshot(responseData))
	}
	if action == models.ActionUpdate || action == models.ActionDelete {
		entry.PreviousValues = previous
	}
	if action != models.ActionDelete && responseData != nil {
		entry.NewValues = models.Snapshot(responseData)
	}

	if err := p.Recorder.Record(ctx, entry); err != nil {
		log.WithError(err).Error("Error creating audit log")
		p.Metrics.Failed(metrics.StageWrite)
		return
	}

	log.WithFields(logrus.Fields{
		"entity_id": entry.EntityID,
		"action":    entry.Action,
	}).Info("Audit log entry created")
	p.Metrics.EntryWritten(ct.UID, string(action))
}

// decodeObject parses a JSON object, returning nil for anything else.
// Numbers stay json.Number so large ids keep every digit.
func decodeObject(raw []byte) map[string]interface{} {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var obj map[string]interface{}
	if err := dec.Decode(&obj); err != nil {
		return nil
	}
	return obj
}

// cappedBuffer keeps the first limit bytes written to it. Writes never fail.
type cappedBuffer struct {
	buf       bytes.Buffer
	limit     int64
	truncated bool
}

func newCappedBuffer(limit int64) *cappedBuffer {
	return &cappedBuffer{limit: limit}
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	room := b.limit - int64(b.buf.Len())
	if int64(len(p)) > room {
		b.truncated = true
		if room > 0 {
			b.buf.Write(p[:room])
		}
		return len(p), nil
	}
	b.buf.Write(p)
	return len(p), nil
}

// Bytes returns the captured bytes
func (b *cappedBuffer) Bytes() []byte {
	return b.buf.Bytes()
}

// Truncated reports whether more than limit bytes were written
func (b *cappedBuffer) Truncated() bool {
	return b.truncated
}
