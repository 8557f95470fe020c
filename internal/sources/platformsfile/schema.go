package platformsfile

// File is the top-level structure of platforms.yaml.
type File struct {
	Platforms []PlatformProps `yaml:"platforms"`
}

// PlatformProps contains one platform's properties as written in the file.
type PlatformProps struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Icon  string `yaml:"icon,omitempty"`
	Color string `yaml:"color,omitempty"`
}
