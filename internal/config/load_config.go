package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"shadcn-helper/internal/errors"
	"shadcn-helper/internal/logger"
)

// Loader layers defaults, the optional settings file, SHADCN_HELPER_* environment
// variables and bound command-line flags, in increasing priority.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a Loader with defaults and environment support set up.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Every key needs a default so AutomaticEnv picks it up during Unmarshal.
	v.SetDefault("debug", false)
	v.SetDefault("runner", DefaultRunner)
	v.SetDefault("editor", DefaultEditor)
	v.SetDefault("index_mode", fmt.Sprintf("%#o", uint32(DefaultIndexMode)))
	v.SetDefault("components_dir", "")
	v.SetDefault("framework", "")

	return &Loader{v: v}
}

// BindFlag makes a parsed command-line flag override the setting key.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	return l.v.BindPFlag(key, flag)
}

// Load builds the Config for projectDir. When path is empty the settings file
// is DefaultConfigFile inside projectDir and may be absent; an explicit path
// must exist.
func (l *Loader) Load(projectDir, path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(projectDir, DefaultConfigFile)
	}

	if _, err := os.Stat(path); err == nil {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfig, "failed to read settings file").
				WithDetails("path", path)
		}
		logger.Debug("[DEBUG] Loaded settings from %s\n", path)
	} else if explicit {
		return nil, errors.Wrap(err, errors.ErrConfig, "settings file not found").
			WithDetails("path", path)
	}

	cfg := Default(projectDir)
	if err := l.v.Unmarshal(cfg, decodeHook); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfig, "failed to parse settings").
			WithDetails("path", path)
	}
	cfg.ProjectDir = projectDir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks setting values that would otherwise fail late.
func (c *Config) Validate() error {
	if len(strings.Fields(c.Runner)) == 0 {
		return errors.New(errors.ErrConfig, "runner must not be empty").
			WithSuggestion("Set runner to npx, pnpm dlx or bunx")
	}
	if c.IndexMode&^os.ModePerm != 0 || c.IndexMode == 0 {
		return errors.New(errors.ErrConfig, fmt.Sprintf("invalid index_mode %#o", uint32(c.IndexMode))).
			WithSuggestion("Use an octal permission such as 0644")
	}
	if c.Framework != "" && !slices.Contains(Frameworks, c.Framework) {
		return errors.New(errors.ErrConfig, fmt.Sprintf("unknown framework %q", c.Framework)).
			WithSuggestion("Valid options: " + strings.Join(Frameworks, ", "))
	}
	if filepath.IsAbs(c.ComponentsDir) {
		return errors.New(errors.ErrConfig, "components_dir must be relative to the project directory").
			WithDetails("components_dir", c.ComponentsDir)
	}
	return nil
}

// Dump renders the effective settings as YAML.
func (c *Config) Dump() (string, error) {
	view := struct {
		ProjectDir    string `yaml:"project_dir"`
		Debug         bool   `yaml:"debug"`
		Runner        string `yaml:"runner"`
		Editor        string `yaml:"editor"`
		IndexMode     string `yaml:"index_mode"`
		ComponentsDir string `yaml:"components_dir,omitempty"`
		Framework     string `yaml:"framework,omitempty"`
	}{
		ProjectDir:    c.ProjectDir,
		Debug:         c.Debug,
		Runner:        c.Runner,
		Editor:        c.Editor,
		IndexMode:     fmt.Sprintf("%#o", uint32(c.IndexMode)),
		ComponentsDir: c.ComponentsDir,
		Framework:     c.Framework,
	}

	out, err := yaml.Marshal(view)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func decodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		stringToFileModeHookFunc(),
	)
}

// stringToFileModeHookFunc parses octal strings like "0644" or "0o777"
// into os.FileMode. Quote the value in YAML so it reaches the hook as a string.
func stringToFileModeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(os.FileMode(0)) {
			return data, nil
		}
		s := strings.TrimSpace(data.(string))
		s = strings.TrimPrefix(strings.TrimPrefix(s, "0o"), "0O")
		mode, err := strconv.ParseUint(s, 8, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid file mode %q: %w", data, err)
		}
		return os.FileMode(mode), nil
	}
}
