package models

import "strings"

const (
	// KindCollection marks a resource type holding many entities
	KindCollection = "collectionType"
	// KindSingle marks a resource type holding exactly one entity
	KindSingle = "singleType"

	// ApplicationNamespace prefixes application-defined resource types
	ApplicationNamespace = "api::"
	// UserContentType is the built-in user resource type
	UserContentType = "plugin::users-permissions.user"
)

// ContentType describes a resource type exposed by the content API
type ContentType struct {
	UID          string `json:"uid" yaml:"uid"`
	Kind         string `json:"kind" yaml:"kind"`
	SingularName string `json:"singularName,omitempty" yaml:"singularName"`
	PluralName   string `json:"pluralName" yaml:"pluralName"`
	DisplayName  string `json:"displayName,omitempty" yaml:"displayName"`
}

// IsCollection reports whether the type is a collection type
func (c ContentType) IsCollection() bool {
	return c.Kind == KindCollection
}

// Auditable reports whether the type is a collection in an audited namespace
func (c ContentType) Auditable() bool {
	if !c.IsCollection() {
		return false
	}
	return strings.HasPrefix(c.UID, ApplicationNamespace) || c.UID == UserContentType
}

// Label returns the human-readable name, falling back to the identifier
func (c ContentType) Label() string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	return c.UID
}
