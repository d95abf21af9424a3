package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/blogem/content-audit/models"
	"github.com/blogem/content-audit/registry"
	"github.com/blogem/content-audit/repositories"
)

// SettingsService manages which content types are audited
type SettingsService interface {
	// IsEnabled reports whether auditing is on for a content type. Storage failures count as disabled.
	IsEnabled(ctx context.Context, contentType string) bool
	SetEnabled(ctx context.Context, contentType string, enabled bool) error
	ListSettings(ctx context.Context, page, pageSize int, search string) (*models.Page[models.ContentTypeSetting], error)
}

// settingsService implements SettingsService interface
type settingsService struct {
	settingsRepo repositories.SettingsRepository
	registry     registry.Registry
	logger       logrus.FieldLogger
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repositories.SettingsRepository, reg registry.Registry, logger logrus.FieldLogger) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		registry:     reg,
		logger:       logger,
	}
}

// IsEnabled checks the stored toggle for a content type
func (s *settingsService) IsEnabled(ctx context.Context, contentType string) bool {
	setting, err := s.settingsRepo.GetByContentType(ctx, contentType)
	if err != nil {
		s.logger.WithError(err).WithField("content_type", contentType).Error("Error checking audit log setting")
		return false
	}
	return setting != nil && setting.Enabled
}

// SetEnabled turns auditing on or off for a content type
func (s *settingsService) SetEnabled(ctx context.Context, contentType string, enabled bool) error {
	if strings.TrimSpace(contentType) == "" {
		return models.ValidationErrors{{Field: "contentType", Message: "content type is required"}}
	}

	if err := s.settingsRepo.Upsert(ctx, contentType, enabled); err != nil {
		s.logger.WithError(err).WithField("content_type", contentType).Error("Error setting audit log setting")
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"content_type": contentType,
		"enabled":      enabled,
	}).Info("Audit log setting updated")
	return nil
}

// ListSettings joins every auditable content type with its stored toggle, filters by search and paginates
func (s *settingsService) ListSettings(ctx context.Context, page, pageSize int, search string) (*models.Page[models.ContentTypeSetting], error) {
	stored, err := s.settingsRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	enabled := make(map[string]bool, len(stored))
	for _, setting := range stored {
		enabled[setting.ContentType] = setting.Enabled
	}

	term := strings.ToLower(strings.TrimSpace(search))
	settings := []models.ContentTypeSetting{}
	for _, ct := range s.registry.Auditable() {
		if term != "" &&
			!strings.Contains(strings.ToLower(ct.Label()), term) &&
			!strings.Contains(strings.ToLower(ct.UID), term) {
			continue
		}
		settings = append(settings, models.ContentTypeSetting{
			ContentType: ct.UID,
			Enabled:     enabled[ct.UID],
			DisplayName: ct.Label(),
		})
	}

	req := models.NewPageRequest(page, pageSize)
	start := min(max(req.Offset(), 0), len(settings))
	end := min(start+req.PageSize, len(settings))

	return &models.Page[models.ContentTypeSetting]{
		Results:    settings[start:end],
		Pagination: req.Paginate(len(settings)),
	}, nil
}
