// Package state wires the in-memory stores to the persistence substrate:
// startup sync, write-through persistence, and the theme preference holder.
package state

import (
	"sync"

	"github.com/handl-app/handl/internal/domain"
)

// ThemeHolder owns the current theme preference.
type ThemeHolder struct {
	mu  sync.RWMutex
	cur domain.Theme
}

// NewThemeHolder starts at the first-run default theme.
func NewThemeHolder() *ThemeHolder {
	return &ThemeHolder{cur: domain.ThemeLight}
}

// Get returns the current theme.
func (t *ThemeHolder) Get() domain.Theme {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.cur
}

// Set stores a theme. Invalid values are ignored and the previous theme kept.
func (t *ThemeHolder) Set(theme domain.Theme) bool {
	if !theme.Valid() {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.cur = theme
	return true
}

// Reset returns the theme to the first-run default.
func (t *ThemeHolder) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cur = domain.ThemeLight
}
