package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blogem/content-audit/database"
	"github.com/blogem/content-audit/models"
)

// ErrInvalidDocument is returned when document input cannot be stored
var ErrInvalidDocument = errors.New("invalid document")

// Reserved document attributes managed by the store
const (
	FieldID          = "id"
	FieldDocumentID  = "documentId"
	FieldCreatedAt   = "createdAt"
	FieldUpdatedAt   = "updatedAt"
	FieldPublishedAt = "publishedAt"
)

// DocumentRepository stores the entities of every content type as JSON documents.
// It is the entity store the audit pipeline reads previous state from.
type DocumentRepository interface {
	FindOne(ctx context.Context, contentType, documentID string) (models.Snapshot, error)
	FindMany(ctx context.Context, contentType string, limit, offset int) ([]models.Snapshot, error)
	Count(ctx context.Context, contentType string) (int, error)
	Create(ctx context.Context, contentType string, data map[string]interface{}) (models.Snapshot, error)
	Update(ctx context.Context, contentType, documentID string, data map[string]interface{}) (models.Snapshot, error)
	Delete(ctx context.Context, contentType, documentID string) (models.Snapshot, error)
	SetPublished(ctx context.Context, contentType, documentID string, published bool) (models.Snapshot, error)
}

type documentRepository struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *sql.DB, dialect database.Dialect) DocumentRepository {
	return &documentRepository{db: db, dialect: dialect}
}

type documentRow struct {
	id          int64
	documentID  string
	data        string
	publishedAt sql.NullTime
	createdAt   time.Time
	updatedAt   time.Time
}

// snapshot flattens the stored row into the document shape returned by the API
func (d documentRow) snapshot() (models.Snapshot, error) {
	snap := models.Snapshot{}
	if err := decodeJSON(d.data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", d.documentID, err)
	}

	snap[FieldID] = d.id
	snap[FieldDocumentID] = d.documentID
	snap[FieldCreatedAt] = d.createdAt.UTC().Format(time.RFC3339Nano)
	snap[FieldUpdatedAt] = d.updatedAt.UTC().Format(time.RFC3339Nano)
	if d.publishedAt.Valid {
		snap[FieldPublishedAt] = d.publishedAt.Time.UTC().Format(time.RFC3339Nano)
	} else {
		snap[FieldPublishedAt] = nil
	}
	return snap, nil
}

const documentColumns = `id, document_id, data, published_at, created_at, updated_at`

func (r *documentRepository) get(ctx context.Context, contentType, documentID string) (*documentRow, error) {
	query := r.dialect.Rebind(`SELECT ` + documentColumns + ` FROM documents WHERE content_type = ? AND document_id = ?`)

	var row documentRow
	err := r.db.QueryRowContext(ctx, query, contentType, documentID).Scan(
		&row.id, &row.documentID, &row.data, &row.publishedAt, &row.createdAt, &row.updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("document %s of %s: %w", documentID, contentType, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &row, nil
}

// FindOne retrieves a document by its document ID
func (r *documentRepository) FindOne(ctx context.Context, contentType, documentID string) (models.Snapshot, error) {
	row, err := r.get(ctx, contentType, documentID)
	if err != nil {
		return nil, err
	}
	return row.snapshot()
}

// FindMany lists documents of a content type in insertion order
func (r *documentRepository) FindMany(ctx context.Context, contentType string, limit, offset int) ([]models.Snapshot, error) {
	query := r.dialect.Rebind(`SELECT ` + documentColumns + ` FROM documents WHERE content_type = ? ORDER BY id ASC LIMIT ? OFFSET ?`)

	rows, err := r.db.QueryContext(ctx, query, contentType, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	docs := []models.Snapshot{}
	for rows.Next() {
		var row documentRow
		if err := rows.Scan(&row.id, &row.documentID, &row.data, &row.publishedAt, &row.createdAt, &row.updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		snap, err := row.snapshot()
		if err != nil {
			return nil, err
		}
		docs = append(docs, snap)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating documents: %w", err)
	}

	return docs, nil
}

// Count returns the number of documents of a content type
func (r *documentRepository) Count(ctx context.Context, contentType string) (int, error) {
	var count int
	query := r.dialect.Rebind(`SELECT COUNT(*) FROM documents WHERE content_type = ?`)
	if err := r.db.QueryRowContext(ctx, query, contentType).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}

// Create stores a new document with a generated document ID
func (r *documentRepository) Create(ctx context.Context, contentType string, data map[string]interface{}) (models.Snapshot, error) {
	fields, publishedAt, _, err := splitFields(data)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	now := time.Now().UTC()
	row := documentRow{
		documentID:  uuid.NewString(),
		data:        string(encoded),
		publishedAt: publishedAt,
		createdAt:   now,
		updatedAt:   now,
	}

	query := r.dialect.Rebind(`
		INSERT INTO documents (document_id, content_type, data, published_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`)
	err = r.db.QueryRowContext(ctx, query,
		row.documentID, contentType, row.data, row.publishedAt, row.createdAt, row.updatedAt,
	).Scan(&row.id)
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	return row.snapshot()
}

// Update merges data into an existing document
func (r *documentRepository) Update(ctx context.Context, contentType, documentID string, data map[string]interface{}) (models.Snapshot, error) {
	row, err := r.get(ctx, contentType, documentID)
	if err != nil {
		return nil, err
	}

	fields, publishedAt, hasPublishedAt, err := splitFields(data)
	if err != nil {
		return nil, err
	}

	current := map[string]interface{}{}
	if err := decodeJSON(row.data, &current); err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", documentID, err)
	}
	for k, v := range fields {
		current[k] = v
	}

	encoded, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	row.data = string(encoded)
	row.updatedAt = time.Now().UTC()
	if hasPublishedAt {
		row.publishedAt = publishedAt
	}

	if err := r.save(ctx, row); err != nil {
		return nil, err
	}
	return row.snapshot()
}

// SetPublished publishes or unpublishes a document
func (r *documentRepository) SetPublished(ctx context.Context, contentType, documentID string, published bool) (models.Snapshot, error) {
	row, err := r.get(ctx, contentType, documentID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	row.updatedAt = now
	if published {
		row.publishedAt = sql.NullTime{Time: now, Valid: true}
	} else {
		row.publishedAt = sql.NullTime{}
	}

	if err := r.save(ctx, row); err != nil {
		return nil, err
	}
	return row.snapshot()
}

// Delete removes a document and returns its last state
func (r *documentRepository) Delete(ctx context.Context, contentType, documentID string) (models.Snapshot, error) {
	row, err := r.get(ctx, contentType, documentID)
	if err != nil {
		return nil, err
	}

	query := r.dialect.Rebind(`DELETE FROM documents WHERE id = ?`)
	if _, err := r.db.ExecContext(ctx, query, row.id); err != nil {
		return nil, fmt.Errorf("failed to delete document: %w", err)
	}

	return row.snapshot()
}

func (r *documentRepository) save(ctx context.Context, row *documentRow) error {
	query := r.dialect.Rebind(`UPDATE documents SET data = ?, published_at = ?, updated_at = ? WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, row.data, row.publishedAt, row.updatedAt, row.id)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("document %s: %w", row.documentID, ErrNotFound)
	}
	return nil
}

// splitFields separates user fields from store-managed attributes.
// publishedAt may be set through data; the other reserved attributes are ignored.
func splitFields(data map[string]interface{}) (map[string]interface{}, sql.NullTime, bool, error) {
	fields := make(map[string]interface{}, len(data))
	var publishedAt sql.NullTime
	hasPublishedAt := false

	for k, v := range data {
		switch k {
		case FieldID, FieldDocumentID, FieldCreatedAt, FieldUpdatedAt:
			continue
		case FieldPublishedAt:
			hasPublishedAt = true
			t, err := parsePublishedAt(v)
			if err != nil {
				return nil, sql.NullTime{}, false, err
			}
			publishedAt = t
		default:
			fields[k] = v
		}
	}

	return fields, publishedAt, hasPublishedAt, nil
}

func parsePublishedAt(v interface{}) (sql.NullTime, error) {
	switch val := v.(type) {
	case nil:
		return sql.NullTime{}, nil
	case string:
		if val == "" {
			return sql.NullTime{}, nil
		}
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
			if t, err := time.Parse(layout, val); err == nil {
				return sql.NullTime{Time: t.UTC(), Valid: true}, nil
			}
		}
	}
	return sql.NullTime{}, fmt.Errorf("%w: publishedAt must be a date, a timestamp or null", ErrInvalidDocument)
}
