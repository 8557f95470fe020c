package redis

const (
	// KeyFolders holds the persisted folder tree.
	KeyFolders = "handl:folders"
	// KeyHistory holds the persisted search history.
	KeyHistory = "handl:history"
	// KeyEnabledPlatforms holds the persisted enabled-platform id list.
	KeyEnabledPlatforms = "handl:platforms:enabled"
	// KeyTheme holds the persisted theme preference.
	KeyTheme = "handl:theme"
)

// StateKeys lists every key the reset operation clears.
var StateKeys = []string{KeyFolders, KeyHistory, KeyEnabledPlatforms, KeyTheme}
