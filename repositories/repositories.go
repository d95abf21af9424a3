package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/blogem/content-audit/database"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// Repositories struct holds all repository interfaces
type Repositories struct {
	Settings  SettingsRepository
	Audit     AuditRepository
	Documents DocumentRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB, dialect database.Dialect) *Repositories {
	return &Repositories{
		Settings:  NewSettingsRepository(db, dialect),
		Audit:     NewAuditRepository(db, dialect),
		Documents: NewDocumentRepository(db, dialect),
	}
}

// marshalNullable encodes v as JSON, storing NULL for nil values
func marshalNullable(v interface{}, isNil bool) (sql.NullString, error) {
	if isNil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

// unmarshalNullable decodes a nullable JSON column into dest
func unmarshalNullable(col sql.NullString, dest interface{}) error {
	if !col.Valid || col.String == "" {
		return nil
	}
	if err := decodeJSON(col.String, dest); err != nil {
		return fmt.Errorf("failed to decode JSON column: %w", err)
	}
	return nil
}

// decodeJSON decodes data into dest keeping numbers as json.Number
func decodeJSON(data string, dest interface{}) error {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()
	return dec.Decode(dest)
}

// nullString stores empty strings as NULL
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
