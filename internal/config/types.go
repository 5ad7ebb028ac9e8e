package config

import (
	"os"
)

const (
	// DefaultConfigFile is the settings file looked up in the project directory.
	DefaultConfigFile = ".shadcn-helper.yaml"

	// EnvPrefix is the prefix for environment variable overrides,
	// e.g. SHADCN_HELPER_EDITOR=vim.
	EnvPrefix = "SHADCN_HELPER"

	// DefaultRunner launches the generator package.
	DefaultRunner = "npx"

	// DefaultEditor is tried first by the edit command.
	DefaultEditor = "code"

	// DefaultIndexMode is the permission of index.ini. The legacy behavior was
	// 0777; set index_mode to restore it.
	DefaultIndexMode os.FileMode = 0o644
)

// Frameworks accepted by the framework setting. Empty means auto-detect.
var Frameworks = []string{"react", "vue", "svelte"}

// Config holds the tool settings. It is built once by the root command and
// passed to every component.
//   - ProjectDir: directory that holds components.json, .gitignore and the components tree.
//   - Debug: print [DEBUG] lines.
//   - Runner: package runner used to launch the generator (npx, pnpm dlx, bunx...).
//   - Editor: editor command tried before the OS file opener.
//   - IndexMode: file mode applied to index.ini on every save.
//   - ComponentsDir: overrides the detected components directory (relative to ProjectDir).
//   - Framework: overrides framework detection.
type Config struct {
	ProjectDir    string      `mapstructure:"-"`
	Debug         bool        `mapstructure:"debug"`
	Runner        string      `mapstructure:"runner"`
	Editor        string      `mapstructure:"editor"`
	IndexMode     os.FileMode `mapstructure:"index_mode"`
	ComponentsDir string      `mapstructure:"components_dir"`
	Framework     string      `mapstructure:"framework"`
}

// Default returns the settings used when no file or environment overrides exist.
func Default(projectDir string) *Config {
	return &Config{
		ProjectDir: projectDir,
		Runner:     DefaultRunner,
		Editor:     DefaultEditor,
		IndexMode:  DefaultIndexMode,
	}
}
