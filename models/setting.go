package models

import "time"

// ContentTypeSetting is the persisted audit toggle for one resource type.
// A missing record means logging is disabled.
type ContentTypeSetting struct {
	ID          int64     `json:"id,omitempty"`
	ContentType string    `json:"contentType"`
	Enabled     bool      `json:"enabled"`
	DisplayName string    `json:"displayName,omitempty"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
