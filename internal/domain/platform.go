package domain

// PlatformDef describes one simulated platform the checker knows about.
//
// The set of definitions is fixed at process start: it is loaded once from the
// platforms file (or the built-in defaults) and never mutated afterwards. Only
// the enabled subset changes at runtime.
type PlatformDef struct {
	// ID is the canonical unique identifier (ex: "twitter").
	ID string `json:"id" yaml:"id"`

	// Name is the display name (ex: "Twitter").
	Name string `json:"name" yaml:"name"`

	// Icon is the icon key used by the presentation layer.
	Icon string `json:"icon" yaml:"icon"`

	// Color is the display color class used by the presentation layer.
	Color string `json:"color" yaml:"color"`
}

// DefaultPlatforms is the built-in platform list, used when no platforms file
// is configured. Order matters: it is the display order.
var DefaultPlatforms = []PlatformDef{
	{ID: "twitter", Name: "Twitter", Icon: "twitter", Color: "text-sky-400"},
	{ID: "instagram", Name: "Instagram", Icon: "instagram", Color: "text-pink-400"},
	{ID: "facebook", Name: "Facebook", Icon: "facebook", Color: "text-blue-500"},
	{ID: "linkedin", Name: "LinkedIn", Icon: "linkedin", Color: "text-blue-600"},
	{ID: "youtube", Name: "YouTube", Icon: "youtube", Color: "text-red-500"},
	{ID: "github", Name: "GitHub", Icon: "github", Color: "text-gray-300"},
	{ID: "reddit", Name: "Reddit", Icon: "reddit", Color: "text-orange-500"},
	{ID: "tiktok", Name: "TikTok", Icon: "tiktok", Color: "text-pink-500"},
}

// DefaultEnabledPlatformIDs is the enabled subset on first run.
var DefaultEnabledPlatformIDs = []string{"twitter", "instagram", "facebook", "linkedin"}

// ResolvePlatform finds a definition by id in defs. Unknown ids degrade to a
// generic definition that reuses the raw id as name and icon, so callers never
// have to handle a missing platform.
func ResolvePlatform(id string, defs []PlatformDef) PlatformDef {
	for _, def := range defs {
		if def.ID == id {
			return def
		}
	}
	return PlatformDef{ID: id, Name: id, Icon: id}
}
