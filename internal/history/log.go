// Package history keeps the capped, deduplicated log of past searches.
package history

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/handl-app/handl/internal/domain"
)

// DefaultCap is the maximum number of entries the log retains.
const DefaultCap = 50

// csvHeader matches the export surface contract.
const csvHeader = "Timestamp,Handle,Available,Total"

// Log is an append-only, newest-first search log. A query string appears at
// most once: re-searching the same text neither duplicates nor reorders it.
type Log struct {
	mu      sync.RWMutex
	items   []domain.HistoryItem
	cap     int
	timeNow func() time.Time
}

// NewLog creates an empty log capped at max entries. A non-positive max
// falls back to DefaultCap.
func NewLog(max int) *Log {
	if max <= 0 {
		max = DefaultCap
	}
	return &Log{cap: max, timeNow: time.Now}
}

// Record inserts a new entry for query unless one already exists, in which
// case the existing entry keeps its position and timestamp. The log is
// truncated to the newest cap entries. Returns the inserted entry and whether
// an insert happened.
func (l *Log) Record(query string, platformIDs []string, results []domain.Result) (domain.HistoryItem, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, existing := range l.items {
		if existing.Query == query {
			return domain.HistoryItem{}, false
		}
	}

	available := 0
	for _, r := range results {
		if r.Status == domain.StatusAvailable {
			available++
		}
	}

	platforms := make([]string, len(platformIDs))
	copy(platforms, platformIDs)

	item := domain.HistoryItem{
		ID:             uuid.NewString(),
		Query:          query,
		Timestamp:      l.timeNow().UnixMilli(),
		AvailableCount: available,
		TotalCount:     len(results),
		Platforms:      platforms,
	}

	l.items = append([]domain.HistoryItem{item}, l.items...)
	if len(l.items) > l.cap {
		l.items = l.items[:l.cap]
	}
	return item, true
}

// Delete removes the entry with the given id. Missing ids are a no-op.
func (l *Log) Delete(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, item := range l.items {
		if item.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// Clear empties the log. The confirmation gate lives in the caller; the
// operation itself is unconditional.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = nil
}

// Items returns the log newest-first.
func (l *Log) Items() []domain.HistoryItem {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.HistoryItem, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of entries.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.items)
}

// ExportCSV renders the log as a CSV byte stream, newest-first, matching the
// log's current order. Pure formatting over current state.
func (l *Log) ExportCSV() []byte {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var b strings.Builder
	b.WriteString(csvHeader)
	for _, item := range l.items {
		ts := time.UnixMilli(item.Timestamp).UTC().Format("2006-01-02T15:04:05.000Z")
		b.WriteString(fmt.Sprintf("\n%s,%s,%d,%d", ts, item.Query, item.AvailableCount, item.TotalCount))
	}
	return []byte(b.String())
}

// Snapshot returns the current entries for persistence, newest-first.
func (l *Log) Snapshot() []domain.HistoryItem {
	return l.Items()
}

// Restore replaces the log with a previously persisted snapshot, re-applying
// the cap in case it shrank since the snapshot was taken.
func (l *Log) Restore(items []domain.HistoryItem) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(items) > l.cap {
		items = items[:l.cap]
	}
	l.items = make([]domain.HistoryItem, len(items))
	copy(l.items, items)
}
