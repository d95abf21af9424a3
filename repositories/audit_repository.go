package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/blogem/content-audit/database"
	"github.com/blogem/content-audit/models"
)

// AuditRepository handles audit log persistence. Entries are insert-only.
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLogEntry) error
	Find(ctx context.Context, filter models.LogFilter, limit, offset int) ([]models.AuditLogEntry, error)
	Count(ctx context.Context, filter models.LogFilter) (int, error)
}

type auditRepository struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB, dialect database.Dialect) AuditRepository {
	return &auditRepository{db: db, dialect: dialect}
}

const auditColumns = `id, content_type, entity_id, action, user_id, user_email,
	changes, previous_values, new_values, ip_address, user_agent, created_at`

// Create inserts a new audit log entry, assigning its ID and creation time
func (r *auditRepository) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	changes, err := marshalNullable(entry.Changes, entry.Changes == nil)
	if err != nil {
		return fmt.Errorf("failed to encode changes: %w", err)
	}
	previous, err := marshalNullable(entry.PreviousValues, entry.PreviousValues == nil)
	if err != nil {
		return fmt.Errorf("failed to encode previous values: %w", err)
	}
	next, err := marshalNullable(entry.NewValues, entry.NewValues == nil)
	if err != nil {
		return fmt.Errorf("failed to encode new values: %w", err)
	}

	query := r.dialect.Rebind(`
		INSERT INTO audit_logs (content_type, entity_id, action, user_id, user_email,
			changes, previous_values, new_values, ip_address, user_agent, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	createdAt := time.Now().UTC()
	err = r.db.QueryRowContext(ctx, query,
		entry.ContentType,
		entry.EntityID,
		string(entry.Action),
		nullString(entry.UserID),
		nullString(entry.UserEmail),
		changes,
		previous,
		next,
		nullString(entry.IPAddress),
		nullString(entry.UserAgent),
		createdAt,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to insert audit log: %w", err)
	}

	entry.CreatedAt = createdAt
	return nil
}

// Find returns entries matching filter, newest first
func (r *auditRepository) Find(ctx context.Context, filter models.LogFilter, limit, offset int) ([]models.AuditLogEntry, error) {
	where, args := r.buildWhere(filter)
	query := r.dialect.Rebind(`SELECT ` + auditColumns + ` FROM audit_logs` + where +
		` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit logs: %w", err)
	}
	defer rows.Close()

	entries := []models.AuditLogEntry{}
	for rows.Next() {
		entry, err := scanAuditEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit logs: %w", err)
	}

	return entries, nil
}

// Count returns the number of entries matching filter
func (r *auditRepository) Count(ctx context.Context, filter models.LogFilter) (int, error) {
	where, args := r.buildWhere(filter)
	query := r.dialect.Rebind(`SELECT COUNT(*) FROM audit_logs` + where)

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	return count, nil
}

// buildWhere renders the WHERE clause for a filter.
// The search term matches entity id, user email and content type as stored,
// and the action case-insensitively.
func (r *auditRepository) buildWhere(filter models.LogFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if filter.ContentType != "" {
		clauses = append(clauses, "content_type = ?")
		args = append(args, filter.ContentType)
	}
	if filter.EntityID != "" {
		clauses = append(clauses, "entity_id = ?")
		args = append(args, filter.EntityID)
	}
	if filter.SearchTerm != "" {
		clauses = append(clauses, "("+strings.Join([]string{
			r.dialect.Contains("entity_id"),
			r.dialect.Contains("user_email"),
			r.dialect.Contains("action"),
			r.dialect.Contains("content_type"),
		}, " OR ")+")")
		args = append(args,
			filter.SearchTerm,
			filter.SearchTerm,
			strings.ToLower(filter.SearchTerm),
			filter.SearchTerm,
		)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAuditEntry(row rowScanner) (*models.AuditLogEntry, error) {
	var entry models.AuditLogEntry
	var action string
	var userID, userEmail, changes, previous, next, ipAddress, userAgent sql.NullString

	err := row.Scan(
		&entry.ID,
		&entry.ContentType,
		&entry.EntityID,
		&action,
		&userID,
		&userEmail,
		&changes,
		&previous,
		&next,
		&ipAddress,
		&userAgent,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan audit log: %w", err)
	}

	entry.Action = models.Action(action)
	entry.UserID = userID.String
	entry.UserEmail = userEmail.String
	entry.IPAddress = ipAddress.String
	entry.UserAgent = userAgent.String

	if err := unmarshalNullable(changes, &entry.Changes); err != nil {
		return nil, err
	}
	if err := unmarshalNullable(previous, &entry.PreviousValues); err != nil {
		return nil, err
	}
	if err := unmarshalNullable(next, &entry.NewValues); err != nil {
		return nil, err
	}

	return &entry, nil
}
