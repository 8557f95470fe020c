package domain

// ItemKind classifies a saved handle.
type ItemKind string

const (
	KindBusiness ItemKind = "business"
	KindProject  ItemKind = "project"
)

// FolderKind distinguishes the fixed system folders from user-created ones.
type FolderKind string

const (
	FolderSystem FolderKind = "system"
	FolderUser   FolderKind = "user"
)

// Well-known system folder ids.
const (
	FolderDashboard = "dashboard"
	FolderBusiness  = "business"
	FolderProjects  = "projects"
	FolderHandles   = "handles"
	FolderHistory   = "history"
)

// SavedItem is one handle saved into a user folder. Immutable once created.
type SavedItem struct {
	Handle    string   `json:"handle"`
	Kind      ItemKind `json:"type"`
	Timestamp int64    `json:"timestamp"` // epoch milliseconds
}

// Folder groups saved handles. System folders carry no item sequence of their
// own: their displayed count is derived by scanning user folders.
type Folder struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Icon  string      `json:"icon"`
	Kind  FolderKind  `json:"type"`
	Count int         `json:"count"`
	Items []SavedItem `json:"items,omitempty"`
}

// HistoryItem is one recorded search.
type HistoryItem struct {
	ID             string   `json:"id"`
	Query          string   `json:"query"`
	Timestamp      int64    `json:"timestamp"` // epoch milliseconds
	AvailableCount int      `json:"availableCount"`
	TotalCount     int      `json:"totalCount"`
	Platforms      []string `json:"platforms"`
}

// Theme is the persisted visual theme preference. It belongs to the
// presentation layer but rides through the core's persistence substrate.
type Theme string

const (
	ThemeDefault Theme = "default"
	ThemeDark    Theme = "dark"
	ThemeLight   Theme = "light"
)

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	switch t {
	case ThemeDefault, ThemeDark, ThemeLight:
		return true
	}
	return false
}
