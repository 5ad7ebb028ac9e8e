package installer

import (
	"strings"

	"github.com/spf13/afero"

	"shadcn-helper/internal/index"
)

// componentName derives the on-disk component name from an identifier.
// Registry URLs usually point at "<name>.json".
func componentName(id string) string {
	return strings.TrimSuffix(index.Name(id), ".json")
}

// existsRel checks a project-relative path.
func existsRel(i *Installer, rel string) (bool, error) {
	return afero.Exists(i.fs, i.layout.Abs(rel))
}
