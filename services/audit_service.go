package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/blogem/content-audit/models"
	"github.com/blogem/content-audit/repositories"
)

const (
	DefaultRecentLimit = 50
	MaxRecentLimit     = 100
)

// AuditService records audit log entries and serves log queries
type AuditService interface {
	Record(ctx context.Context, entry *models.AuditLogEntry) error
	FindPaginated(ctx context.Context, filter models.LogFilter, page, pageSize int) (*models.Page[models.AuditLogEntry], error)
	RecentLogs(ctx context.Context, contentType, entityID string, limit int) ([]models.AuditLogEntry, error)
}

// auditService implements AuditService interface
type auditService struct {
	auditRepo repositories.AuditRepository
	logger    logrus.FieldLogger
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repositories.AuditRepository, logger logrus.FieldLogger) AuditService {
	return &auditService{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// Record validates and persists one entry
func (s *auditService) Record(ctx context.Context, entry *models.AuditLogEntry) error {
	if entry == nil {
		return fmt.Errorf("audit log entry is required")
	}
	if errs := validateEntry(entry); errs.HasErrors() {
		return errs
	}

	if err := s.auditRepo.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to record audit log: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"id":           entry.ID,
		"content_type": entry.ContentType,
		"entity_id":    entry.EntityID,
		"action":       entry.Action,
	}).Debug("Audit log recorded")
	return nil
}

// FindPaginated returns one page of entries matching filter, newest first.
// The page and the total count are loaded concurrently.
func (s *auditService) FindPaginated(ctx context.Context, filter models.LogFilter, page, pageSize int) (*models.Page[models.AuditLogEntry], error) {
	req := models.NewPageRequest(page, pageSize)

	var (
		results []models.AuditLogEntry
		total   int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		results, err = s.auditRepo.Find(gctx, filter, req.PageSize, req.Offset())
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.auditRepo.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to query audit logs: %w", err)
	}

	if results == nil {
		results = []models.AuditLogEntry{}
	}

	return &models.Page[models.AuditLogEntry]{
		Results:    results,
		Pagination: req.Paginate(total),
	}, nil
}

// RecentLogs returns the latest entries of one entity without counting
func (s *auditService) RecentLogs(ctx context.Context, contentType, entityID string, limit int) ([]models.AuditLogEntry, error) {
	if limit < 1 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	filter := models.LogFilter{ContentType: contentType, EntityID: entityID}
	logs, err := s.auditRepo.Find(ctx, filter, limit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit logs: %w", err)
	}
	return logs, nil
}

// validateEntry checks the fields every stored entry must carry
func validateEntry(entry *models.AuditLogEntry) models.ValidationErrors {
	var errs models.ValidationErrors

	if entry.ContentType == "" {
		errs = append(errs, models.ValidationError{Field: "contentType", Message: "content type is required"})
	}
	if entry.EntityID == "" {
		errs = append(errs, models.ValidationError{Field: "entityId", Message: "entity id is required"})
	}
	if !entry.Action.Valid() {
		errs = append(errs, models.ValidationError{Field: "action", Message: fmt.Sprintf("invalid audit action: %q", entry.Action)})
	}

	return errs
}
