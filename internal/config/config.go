package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/agentx-labs/new-component/internal/branding"
	"github.com/agentx-labs/new-component/internal/failopen"
	"github.com/agentx-labs/new-component/internal/format"
	"github.com/agentx-labs/new-component/internal/logger"
	"github.com/agentx-labs/new-component/internal/scaffold"
)

// DefaultDir is the parent directory used when nothing overrides it.
const DefaultDir = "src/components"

// Keys as viper reports them (lower-cased).
const (
	KeyDir            = "dir"
	KeyTemplate       = "template"
	KeyFormatter      = "formatter"
	KeyPrettierPath   = "prettierpath"
	KeyPrettierConfig = "prettierconfig"
)

// extensions are tried in order in each override location.
var extensions = []string{".json", ".yaml", ".yml"}

// Config is the resolved configuration of a run.
type Config struct {
	Dir            string                 `mapstructure:"dir" yaml:"dir"`
	Template       string                 `mapstructure:"template" yaml:"template"`
	Formatter      format.Engine          `mapstructure:"formatter" yaml:"formatter"`
	PrettierPath   string                 `mapstructure:"prettierpath" yaml:"prettierPath,omitempty"`
	PrettierConfig format.PrettierOptions `mapstructure:"prettierconfig" yaml:"prettierConfig"`

	// Sources lists the override files that were applied, lowest
	// precedence first.
	Sources []string `mapstructure:"-" yaml:"-"`
}

// FormatSettings returns the formatter settings carried by c.
func (c *Config) FormatSettings() format.Settings {
	return format.Settings{
		Engine:       c.Formatter,
		PrettierPath: c.PrettierPath,
		Prettier:     c.PrettierConfig,
	}
}

// Defaults returns the built-in settings as a viper-style map.
func Defaults() map[string]any {
	return map[string]any{
		KeyDir:          DefaultDir,
		KeyTemplate:     scaffold.DefaultSet,
		KeyFormatter:    string(format.EnginePrettier),
		KeyPrettierPath: "",
		KeyPrettierConfig: map[string]any{
			"singlequote":   true,
			"semi":          true,
			"trailingcomma": "es5",
			"tabwidth":      2,
			"printwidth":    80,
		},
	}
}

// Locations are the directories searched for override files.
type Locations struct {
	Home    string // user-global override
	Project string // project-local override
}

// DefaultLocations returns the home directory and the working directory.
// A location that cannot be determined is left empty and skipped.
func DefaultLocations() Locations {
	home, _ := os.UserHomeDir()
	wd, _ := os.Getwd()
	return Locations{Home: home, Project: wd}
}

// Load resolves the configuration from the default locations.
func Load() *Config {
	return Resolve(DefaultLocations())
}

// Resolve merges defaults, the override files found in loc, and environment
// variables. It never fails: unusable override files are skipped.
func Resolve(loc Locations) *Config {
	merged := Defaults()
	var sources []string

	for _, dir := range []string{loc.Home, loc.Project} {
		path, ok := find(dir)
		if !ok || contains(sources, path) {
			continue
		}
		settings := failopen.Call(func() (map[string]any, error) {
			return readOverride(path)
		}, nil, "ignoring config override", "path", path)
		if settings == nil {
			continue
		}

		// Shallow merge: an override key replaces the whole value.
		for k, v := range settings {
			merged[k] = v
		}
		sources = append(sources, path)
		logger.Debug("applied config override", "path", path)
	}

	cfg := failopen.Call(func() (*Config, error) {
		return decode(merged, true)
	}, nil, "ignoring config overrides", "sources", sources)
	if cfg == nil {
		// Defaults always decode.
		cfg, _ = decode(Defaults(), false)
		sources = nil
	}
	cfg.Sources = sources
	return cfg
}

// find returns the first override file present in dir.
func find(dir string) (string, bool) {
	if dir == "" {
		return "", false
	}
	for _, ext := range extensions {
		path := filepath.Join(dir, branding.ConfigFile()+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// readOverride validates and parses one override file.
func readOverride(path string) (map[string]any, error) {
	res, err := ValidateFile(path)
	if err != nil {
		return nil, err
	}
	if !res.Valid {
		return nil, errors.Newf("%s does not match the config schema: %s", path, res.Summary())
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return v.AllSettings(), nil
}

// decode turns a settings map into a Config, optionally letting
// NEW_COMPONENT_* environment variables override top-level keys.
func decode(settings map[string]any, env bool) (*Config, error) {
	v := viper.New()
	if env {
		v.SetEnvPrefix(branding.EnvPrefix())
		v.AutomaticEnv()
	}
	for k, val := range settings {
		v.SetDefault(k, val)
	}

	var cfg Config
	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		engineHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hooks); err != nil {
		return nil, errors.Wrap(err, "decoding configuration")
	}
	return &cfg, nil
}

// engineHook normalises formatter names, which may arrive from the
// environment in any case.
func engineHook() mapstructure.DecodeHookFuncType {
	engineType := reflect.TypeOf(format.Engine(""))
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != engineType {
			return data, nil
		}
		return format.Engine(strings.ToLower(strings.TrimSpace(data.(string)))), nil
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
