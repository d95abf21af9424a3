// Package registry resolves content API resource types from a read-only directory of descriptors.
package registry

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/blogem/content-audit/models"
)

// Registry looks up resource type descriptors.
// Repeated calls with the same input return the same answer until the directory is reloaded.
type Registry interface {
	// FindByPluralName returns the auditable collection type whose plural name matches
	FindByPluralName(pluralName string) (models.ContentType, bool)
	// FindByUID returns the collection type with the exact identifier
	FindByUID(uid string) (models.ContentType, bool)
	// Auditable lists every auditable collection type ordered by identifier
	Auditable() []models.ContentType
}

// Directory is an in-memory Registry whose descriptors can be swapped atomically
type Directory struct {
	mu        sync.RWMutex
	types     []models.ContentType
	listeners []func()
	// generation counts replacements
	generation uint64
}

// NewDirectory creates a directory holding the given descriptors
func NewDirectory(types []models.ContentType) *Directory {
	d := &Directory{}
	d.types = sortedCopy(types)
	return d
}

// FindByPluralName implements Registry
func (d *Directory) FindByPluralName(pluralName string) (models.ContentType, bool) {
	ct, found, _ := d.findByPluralName(pluralName)
	return ct, found
}

// findByPluralName also returns the generation the answer was read from
func (d *Directory) findByPluralName(pluralName string) (models.ContentType, bool, uint64) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, ct := range d.types {
		if ct.PluralName == pluralName && ct.Auditable() {
			return ct, true, d.generation
		}
	}
	return models.ContentType{}, false, d.generation
}

// Generation returns the number of times the descriptors were replaced
func (d *Directory) Generation() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.generation
}

// FindByUID implements Registry
func (d *Directory) FindByUID(uid string) (models.ContentType, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, ct := range d.types {
		if ct.UID == uid && ct.IsCollection() {
			return ct, true
		}
	}
	return models.ContentType{}, false
}

// Auditable implements Registry
func (d *Directory) Auditable() []models.ContentType {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []models.ContentType
	for _, ct := range d.types {
		if ct.Auditable() {
			out = append(out, ct)
		}
	}
	return out
}

// All returns every descriptor, auditable or not
func (d *Directory) All() []models.ContentType {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]models.ContentType(nil), d.types...)
}

// Replace swaps the descriptor set and notifies listeners
func (d *Directory) Replace(types []models.ContentType) {
	d.mu.Lock()
	d.types = sortedCopy(types)
	d.generation++
	listeners := append([]func(){}, d.listeners...)
	d.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// OnReplace registers fn to run after every Replace
func (d *Directory) OnReplace(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, fn)
}

func sortedCopy(types []models.ContentType) []models.ContentType {
	out := append([]models.ContentType(nil), types...)
	sort.Slice(out, func(i, j int) bool { return out[i].UID < out[j].UID })
	return out
}

// fileFormat is the on-disk layout of a registry file
type fileFormat struct {
	ContentTypes []models.ContentType `yaml:"contentTypes"`
}

// Parse decodes and validates registry YAML
func Parse(data []byte) ([]models.ContentType, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse registry: %w", err)
	}

	if len(f.ContentTypes) == 0 {
		return nil, errors.New("registry declares no content types")
	}

	seen := make(map[string]bool, len(f.ContentTypes))
	for i, ct := range f.ContentTypes {
		if ct.UID == "" {
			return nil, fmt.Errorf("content type #%d: uid is required", i+1)
		}
		if ct.Kind != models.KindCollection && ct.Kind != models.KindSingle {
			return nil, fmt.Errorf("content type %s: unknown kind %q", ct.UID, ct.Kind)
		}
		if ct.PluralName == "" {
			return nil, fmt.Errorf("content type %s: pluralName is required", ct.UID)
		}
		if seen[ct.UID] {
			return nil, fmt.Errorf("content type %s: duplicate uid", ct.UID)
		}
		seen[ct.UID] = true
	}

	return f.ContentTypes, nil
}

// LoadFile reads and validates a registry file
func LoadFile(path string) ([]models.ContentType, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("registry file %s not found: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}
	return Parse(data)
}
