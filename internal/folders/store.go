// Package folders owns the folder tree and the saved items inside user
// folders. System folder counts are never stored: they are recomputed as a
// pure projection on every read.
package folders

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/handl-app/handl/internal/domain"
)

// Store is the single owner of folder state. All mutation goes through its
// methods; callers only ever see copies.
type Store struct {
	mu      sync.RWMutex
	folders []domain.Folder
	timeNow func() time.Time
}

// NewStore creates a store seeded with the system folders and the first-run
// demo folder.
func NewStore() *Store {
	s := &Store{timeNow: time.Now}
	s.folders = s.defaults()
	return s
}

func (s *Store) defaults() []domain.Folder {
	now := s.timeNow().UnixMilli()
	return []domain.Folder{
		{ID: domain.FolderDashboard, Name: "Dashboard", Icon: "layout-grid", Kind: domain.FolderSystem},
		{ID: domain.FolderBusiness, Name: "Business", Icon: "briefcase", Kind: domain.FolderSystem},
		{ID: domain.FolderProjects, Name: "Projects", Icon: "folder-kanban", Kind: domain.FolderSystem},
		{ID: domain.FolderHandles, Name: "Handles", Icon: "hash", Kind: domain.FolderSystem},
		{ID: domain.FolderHistory, Name: "History", Icon: "clock", Kind: domain.FolderSystem},
		{
			ID:   "demo-folder",
			Name: "Startup Ideas",
			Icon: "folder",
			Kind: domain.FolderUser,
			Items: []domain.SavedItem{
				{Handle: "tech-start", Kind: domain.KindBusiness, Timestamp: now - 100000},
				{Handle: "pixel-lab", Kind: domain.KindProject, Timestamp: now - 200000},
			},
			Count: 2,
		},
	}
}

// Create adds a new user folder and returns its id. The id is derived from
// the name by lowercasing and collapsing whitespace runs into single
// hyphens. Ids are unique across the store: a colliding slug gets a numeric
// suffix, so callers must use the returned id rather than re-deriving it.
func (s *Store) Create(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.uniqueID(Slug(name))
	s.folders = append(s.folders, domain.Folder{
		ID:    id,
		Name:  name,
		Icon:  "folder",
		Kind:  domain.FolderUser,
		Items: []domain.SavedItem{},
	})
	return id
}

// SaveItem appends a handle to a user folder. Unknown folder ids, system
// folders and duplicate handles within the folder are silent no-ops.
// Reports whether the item was added.
func (s *Store) SaveItem(handle, folderID string, kind domain.ItemKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.folders {
		f := &s.folders[i]
		if f.ID != folderID || f.Kind != domain.FolderUser {
			continue
		}
		for _, item := range f.Items {
			if item.Handle == handle {
				return false
			}
		}
		f.Items = append(f.Items, domain.SavedItem{
			Handle:    handle,
			Kind:      kind,
			Timestamp: s.timeNow().UnixMilli(),
		})
		f.Count = len(f.Items)
		return true
	}
	return false
}

// WithCounts returns every folder with its displayed count filled in:
// aggregate scans for the system folders, item sequence length for user
// folders. Pure projection over the current state.
func (s *Store) WithCounts() []domain.Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var businessCount, projectCount, totalCount int
	for _, f := range s.folders {
		if f.Kind != domain.FolderUser {
			continue
		}
		for _, item := range f.Items {
			switch item.Kind {
			case domain.KindBusiness:
				businessCount++
			case domain.KindProject:
				projectCount++
			}
			totalCount++
		}
	}

	out := make([]domain.Folder, 0, len(s.folders))
	for _, f := range s.folders {
		folder := copyFolder(f)
		switch {
		case folder.ID == domain.FolderBusiness:
			folder.Count = businessCount
		case folder.ID == domain.FolderProjects:
			folder.Count = projectCount
		case folder.ID == domain.FolderHandles:
			folder.Count = totalCount
		case folder.Kind == domain.FolderUser:
			folder.Count = len(folder.Items)
		}
		out = append(out, folder)
	}
	return out
}

// Get returns the folder with the given id. A missing id falls back to the
// dashboard folder so a view pointed at a deleted folder still renders.
func (s *Store) Get(id string) domain.Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.folders {
		if f.ID == id {
			return copyFolder(f)
		}
	}
	for _, f := range s.folders {
		if f.ID == domain.FolderDashboard {
			return copyFolder(f)
		}
	}
	return domain.Folder{}
}

// Snapshot returns the stored state as-is, for persistence.
func (s *Store) Snapshot() []domain.Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Folder, 0, len(s.folders))
	for _, f := range s.folders {
		out = append(out, copyFolder(f))
	}
	return out
}

// Restore replaces the stored state with a previously persisted snapshot.
// An empty snapshot is ignored so a missing persistence key keeps defaults.
func (s *Store) Restore(folders []domain.Folder) {
	if len(folders) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.folders = make([]domain.Folder, 0, len(folders))
	for _, f := range folders {
		s.folders = append(s.folders, copyFolder(f))
	}
}

// Reset drops all user state and reinstates the first-run defaults.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.folders = s.defaults()
}

// Slug derives a folder id from a display name: lowercase, whitespace runs
// collapsed to a single hyphen.
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// uniqueID suffixes base with -2, -3, ... until it no longer collides with an
// existing folder id. Caller holds the lock.
func (s *Store) uniqueID(base string) string {
	id := base
	for n := 2; s.exists(id); n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	return id
}

func (s *Store) exists(id string) bool {
	for _, f := range s.folders {
		if f.ID == id {
			return true
		}
	}
	return false
}

func copyFolder(f domain.Folder) domain.Folder {
	out := f
	if f.Items != nil {
		out.Items = make([]domain.SavedItem, len(f.Items))
		copy(out.Items, f.Items)
	}
	return out
}
