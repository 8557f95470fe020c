// Package platformsfile loads the platform definition list from a YAML file
// supplied at startup. The list is fixed for the process lifetime.
package platformsfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of platforms.yaml.
type Loader struct {
	filePath string
}

// NewLoader creates a new platforms file loader.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the platforms file.
func (l *Loader) Load() (File, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return File{}, fmt.Errorf("failed to read platforms file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return File{}, fmt.Errorf("failed to parse platforms yaml: %w", err)
	}

	return file, nil
}
