package models

import "time"

// Action is the semantic classification of an audited write operation
type Action string

const (
	ActionCreate    Action = "create"
	ActionUpdate    Action = "update"
	ActionDelete    Action = "delete"
	ActionPublish   Action = "publish"
	ActionUnpublish Action = "unpublish"
	ActionLogin     Action = "login"
)

// Valid reports whether a is one of the known audit actions
func (a Action) Valid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete, ActionPublish, ActionUnpublish, ActionLogin:
		return true
	}
	return false
}

// FieldChange holds the before and after value of a single field
type FieldChange struct {
	From interface{} `json:"from"`
	To   interface{} `json:"to"`
}

// Changes maps field names to their change
type Changes map[string]FieldChange

// Snapshot is a point-in-time copy of an entity's field values
type Snapshot map[string]interface{}

// AuditLogEntry represents a single audited write on a content entity.
// Entries are append-only.
type AuditLogEntry struct {
	ID             int64     `json:"id"`
	ContentType    string    `json:"contentType"`
	EntityID       string    `json:"entityId"`
	Action         Action    `json:"action"`
	UserID         string    `json:"userId,omitempty"`
	UserEmail      string    `json:"userEmail,omitempty"`
	Changes        Changes   `json:"changes,omitempty"`
	PreviousValues Snapshot  `json:"previousValues,omitempty"`
	NewValues      Snapshot  `json:"newValues,omitempty"`
	IPAddress      string    `json:"ipAddress,omitempty"`
	UserAgent      string    `json:"userAgent,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// LogFilter narrows an audit log query
type LogFilter struct {
	ContentType string
	EntityID    string
	SearchTerm  string
}
