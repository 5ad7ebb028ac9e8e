// Package framework resolves which shadcn flavour a project uses and seeds
// its components.json.
package framework

import (
	"embed"
	"fmt"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"
)

//go:embed assets/*.json
var assets embed.FS

// Framework is one of the front-end ecosystems the generator can target.
type Framework int

const (
	// React is the primary family (shadcn/ui). Components are single .tsx files.
	React Framework = iota
	// Vue (shadcn-vue). Components are folders with a capitalized entry file.
	Vue
	// Svelte (shadcn-svelte). Same layout as Vue.
	Svelte
)

// All lists every framework in detection order.
var All = []Framework{React, Vue, Svelte}

func (f Framework) String() string {
	switch f {
	case React:
		return "react"
	case Vue:
		return "vue"
	case Svelte:
		return "svelte"
	}
	return fmt.Sprintf("Framework(%d)", int(f))
}

// Parse maps a settings value back to a Framework.
func Parse(name string) (Framework, error) {
	for _, f := range All {
		if f.String() == strings.ToLower(strings.TrimSpace(name)) {
			return f, nil
		}
	}
	return React, fmt.Errorf("unknown framework %q", name)
}

// CLICommand is the npm package that runs the generator.
func (f Framework) CLICommand() string {
	switch f {
	case Vue:
		return "shadcn-vue@latest"
	case Svelte:
		return "shadcn-svelte@latest"
	default:
		return "shadcn@latest"
	}
}

// FileExtension of generated component entry files.
func (f Framework) FileExtension() string {
	switch f {
	case Vue:
		return "vue"
	case Svelte:
		return "svelte"
	default:
		return "tsx"
	}
}

// DefaultConfig returns the bundled components.json for f.
func (f Framework) DefaultConfig() ([]byte, error) {
	return assets.ReadFile("assets/" + f.String() + ".json")
}

// ComponentPaths returns where the component name lives under componentsDir.
// file is what the editor opens; tracked is what git should track, which is
// the whole folder for frameworks that generate one folder per component.
func (f Framework) ComponentPaths(componentsDir, name string) (file, tracked string) {
	componentsDir = path.Clean(strings.ReplaceAll(componentsDir, "\\", "/"))

	switch f {
	case Vue, Svelte:
		folder := path.Join(componentsDir, name)
		return path.Join(folder, capitalize(name)+"."+f.FileExtension()), folder
	default:
		file = path.Join(componentsDir, name+"."+f.FileExtension())
		return file, file
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
