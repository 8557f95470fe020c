// Package platforms owns the fixed platform definition list and the mutable
// enabled subset.
package platforms

import (
	"sync"

	"github.com/handl-app/handl/internal/domain"
)

// Registry holds the ordered platform definitions (fixed for the process
// lifetime) and the set of currently enabled platform ids.
type Registry struct {
	mu      sync.RWMutex
	defs    []domain.PlatformDef
	enabled []string // ordered, subset of defs ids
}

// NewRegistry creates a registry over defs with the given platforms enabled.
// Unknown ids in enabled are dropped silently.
func NewRegistry(defs []domain.PlatformDef, enabled []string) *Registry {
	r := &Registry{defs: defs}
	r.enabled = r.filterKnown(enabled)
	return r
}

// All returns the platform definitions in display order.
func (r *Registry) All() []domain.PlatformDef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]domain.PlatformDef, len(r.defs))
	copy(defs, r.defs)
	return defs
}

// Get resolves a platform definition by id, degrading unknown ids to a
// generic definition.
func (r *Registry) Get(id string) domain.PlatformDef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return domain.ResolvePlatform(id, r.defs)
}

// Enabled returns the enabled platform ids in toggle order.
func (r *Registry) Enabled() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, len(r.enabled))
	copy(ids, r.enabled)
	return ids
}

// SetEnabled replaces the enabled set. Unknown ids are dropped, duplicates
// collapse to their first occurrence, order is preserved.
func (r *Registry) SetEnabled(ids []string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.enabled = r.filterKnown(ids)
	out := make([]string, len(r.enabled))
	copy(out, r.enabled)
	return out
}

// Toggle flips one platform in or out of the enabled set. Toggling an unknown
// id is a no-op. Returns the new enabled set.
func (r *Registry) Toggle(id string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.known(id) {
		out := make([]string, len(r.enabled))
		copy(out, r.enabled)
		return out
	}

	next := make([]string, 0, len(r.enabled)+1)
	found := false
	for _, existing := range r.enabled {
		if existing == id {
			found = true
			continue
		}
		next = append(next, existing)
	}
	if !found {
		next = append(next, id)
	}
	r.enabled = next

	out := make([]string, len(r.enabled))
	copy(out, r.enabled)
	return out
}

// EnableAll enables every known platform in definition order.
func (r *Registry) EnableAll() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.enabled = make([]string, 0, len(r.defs))
	for _, def := range r.defs {
		r.enabled = append(r.enabled, def.ID)
	}

	out := make([]string, len(r.enabled))
	copy(out, r.enabled)
	return out
}

// DisableAll empties the enabled set.
func (r *Registry) DisableAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.enabled = nil
}

func (r *Registry) known(id string) bool {
	for _, def := range r.defs {
		if def.ID == id {
			return true
		}
	}
	return false
}

func (r *Registry) filterKnown(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] || !r.known(id) {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
