package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blogem/content-audit/database"
	"github.com/blogem/content-audit/models"
)

// SettingsRepository persists the per content type audit toggle
type SettingsRepository interface {
	// GetByContentType returns the setting or nil when none was ever stored
	GetByContentType(ctx context.Context, contentType string) (*models.ContentTypeSetting, error)
	// Upsert creates the setting or updates the existing one
	Upsert(ctx context.Context, contentType string, enabled bool) error
	// GetAll returns every stored setting
	GetAll(ctx context.Context) ([]models.ContentTypeSetting, error)
}

type settingsRepository struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *sql.DB, dialect database.Dialect) SettingsRepository {
	return &settingsRepository{db: db, dialect: dialect}
}

// GetByContentType retrieves the setting for a content type
func (r *settingsRepository) GetByContentType(ctx context.Context, contentType string) (*models.ContentTypeSetting, error) {
	query := r.dialect.Rebind(`
		SELECT id, content_type, enabled, created_at, updated_at
		FROM audit_log_settings
		WHERE content_type = ?
	`)

	var s models.ContentTypeSetting
	err := r.db.QueryRowContext(ctx, query, contentType).Scan(
		&s.ID,
		&s.ContentType,
		&s.Enabled,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get setting for %s: %w", contentType, err)
	}

	return &s, nil
}

// Upsert stores the enabled flag for a content type in a single statement
func (r *settingsRepository) Upsert(ctx context.Context, contentType string, enabled bool) error {
	query := r.dialect.Rebind(`
		INSERT INTO audit_log_settings (content_type, enabled, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(content_type) DO UPDATE SET
			enabled = excluded.enabled,
			updated_at = excluded.updated_at
	`)

	now := time.Now().UTC()
	if _, err := r.db.ExecContext(ctx, query, contentType, enabled, now, now); err != nil {
		return fmt.Errorf("failed to save setting for %s: %w", contentType, err)
	}

	return nil
}

// GetAll retrieves all stored settings
func (r *settingsRepository) GetAll(ctx context.Context) ([]models.ContentTypeSetting, error) {
	query := `
		SELECT id, content_type, enabled, created_at, updated_at
		FROM audit_log_settings
		ORDER BY content_type ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	var settings []models.ContentTypeSetting
	for rows.Next() {
		var s models.ContentTypeSetting
		if err := rows.Scan(&s.ID, &s.ContentType, &s.Enabled, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings = append(settings, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating settings: %w", err)
	}

	return settings, nil
}
