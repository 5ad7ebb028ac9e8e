package framework

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"shadcn-helper/internal/logger"
)

const (
	// ConfigFile is the generator configuration at the project root.
	ConfigFile = "components.json"
	// ManifestFile is the host project's package manifest.
	ManifestFile = "package.json"
)

// schemaMarkers match the $schema URL of components.json.
var schemaMarkers = map[Framework]string{
	Vue:    "shadcn-vue.com",
	Svelte: "shadcn-svelte.com",
}

// dependencyMarkers match package.json dependency names.
var dependencyMarkers = map[Framework][]string{
	Vue:    {"vue", "nuxt"},
	Svelte: {"svelte", "@sveltejs/kit"},
}

// Detect reports the framework used by the project in dir. components.json
// wins when it exists and parses; otherwise package.json dependencies are
// checked. Parse failures are logged and fall through to the next heuristic,
// ending at React.
func Detect(fs afero.Fs, dir string) Framework {
	if f, ok := detectFromConfig(fs, filepath.Join(dir, ConfigFile)); ok {
		return f
	}
	if f, ok := detectFromManifest(fs, filepath.Join(dir, ManifestFile)); ok {
		return f
	}
	return React
}

func detectFromConfig(fs afero.Fs, path string) (Framework, bool) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("[WARN] Could not read %s: %v\n", path, err)
		}
		return React, false
	}

	var config struct {
		Schema string `json:"$schema"`
	}
	if err := json.Unmarshal(data, &config); err != nil {
		logger.Warn("[WARN] %s is not valid JSON, checking %s instead: %v\n", path, ManifestFile, err)
		return React, false
	}

	for _, f := range []Framework{Vue, Svelte} {
		if strings.Contains(config.Schema, schemaMarkers[f]) {
			logger.Debug("[DEBUG] %s schema %q selects %s\n", path, config.Schema, f)
			return f, true
		}
	}
	logger.Debug("[DEBUG] %s schema %q selects %s\n", path, config.Schema, React)
	return React, true
}

func detectFromManifest(fs afero.Fs, path string) (Framework, bool) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("[WARN] Could not read %s: %v\n", path, err)
		}
		return React, false
	}

	var manifest struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		logger.Warn("[WARN] %s is not valid JSON, assuming %s: %v\n", path, React, err)
		return React, false
	}

	for _, f := range []Framework{Vue, Svelte} {
		for _, dep := range dependencyMarkers[f] {
			_, inDeps := manifest.Dependencies[dep]
			_, inDevDeps := manifest.DevDependencies[dep]
			if inDeps || inDevDeps {
				logger.Debug("[DEBUG] %s depends on %s, selecting %s\n", path, dep, f)
				return f, true
			}
		}
	}
	return React, true
}

// SeedConfig writes the bundled components.json for f into dir unless one is
// already there. Creation is exclusive, so a file that appears concurrently is
// never overwritten. created reports whether a file was written.
func SeedConfig(fs afero.Fs, dir string, f Framework) (created bool, err error) {
	content, err := f.DefaultConfig()
	if err != nil {
		return false, err
	}

	path := filepath.Join(dir, ConfigFile)
	file, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	if _, err := file.Write(content); err != nil {
		return false, err
	}
	logger.Info("[INFO] Created %s for %s\n", path, f)
	return true, nil
}
