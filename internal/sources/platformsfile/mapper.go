package platformsfile

import (
	"fmt"

	"github.com/handl-app/handl/internal/domain"
)

// Mapper converts file entries to domain.PlatformDef values.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapPlatforms converts a parsed platforms file into platform definitions,
// preserving file order. Entries without an id or name are skipped. Duplicate
// ids keep the first occurrence.
func (m *Mapper) MapPlatforms(file File) ([]domain.PlatformDef, error) {
	seen := make(map[string]bool, len(file.Platforms))
	defs := make([]domain.PlatformDef, 0, len(file.Platforms))

	for _, props := range file.Platforms {
		if props.ID == "" || props.Name == "" {
			continue
		}
		if seen[props.ID] {
			continue
		}
		seen[props.ID] = true

		icon := props.Icon
		if icon == "" {
			icon = props.ID
		}

		defs = append(defs, domain.PlatformDef{
			ID:    props.ID,
			Name:  props.Name,
			Icon:  icon,
			Color: props.Color,
		})
	}

	if len(defs) == 0 {
		return nil, fmt.Errorf("no valid platforms found in platforms file")
	}

	return defs, nil
}
