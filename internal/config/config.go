// Package config loads ngrxgen.yml, the optional per-project settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the config file written by `ngrxgen init`.
const FileName = "ngrxgen.yml"

// ErrConfigExists is returned by WriteDefault when the file is already there.
var ErrConfigExists = errors.New("config file already exists")

// Config holds project settings. Zero values are never returned by Load;
// missing keys fall back to Default.
type Config struct {
	Workspace  string      // Base directory when no context path is given
	Sequential bool        // Write files one at a time
	FileMode   fs.FileMode // Mode for generated files
	DirMode    fs.FileMode // Mode for created directories
	Kinds      []string    // Template kinds to emit by default (empty: all)
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		Workspace: ".",
		FileMode:  0644,
		DirMode:   0755,
	}
}

// LoadOptions tells Load where to look.
type LoadOptions struct {
	Fs   afero.Fs // Filesystem to read from (default: the OS filesystem)
	Dir  string   // Directory searched for ngrxgen.yml (default ".")
	File string   // Explicit config file; must exist when set
}

// Load reads ngrxgen.yml with NGRXGEN_* environment overrides.
// A missing file is not an error unless File was given explicitly.
func Load(opts LoadOptions) (*Config, error) {
	def := Default()

	v := viper.New()
	if opts.Fs != nil {
		v.SetFs(opts.Fs)
	}
	v.SetDefault("workspace", def.Workspace)
	v.SetDefault("sequential", def.Sequential)
	v.SetDefault("file_mode", formatMode(def.FileMode))
	v.SetDefault("dir_mode", formatMode(def.DirMode))

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		dir := opts.Dir
		if dir == "" {
			dir = "."
		}
		v.SetConfigName("ngrxgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}

	// Enable environment variable overrides
	v.SetEnvPrefix("NGRXGEN")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	fileMode, err := parseMode(v.Get("file_mode"))
	if err != nil {
		return nil, fmt.Errorf("invalid file_mode: %w", err)
	}
	dirMode, err := parseMode(v.Get("dir_mode"))
	if err != nil {
		return nil, fmt.Errorf("invalid dir_mode: %w", err)
	}

	cfg := &Config{
		Workspace:  v.GetString("workspace"),
		Sequential: v.GetBool("sequential"),
		FileMode:   fileMode,
		DirMode:    dirMode,
	}
	if cfg.Workspace == "" {
		cfg.Workspace = def.Workspace
	}
	if kinds := v.GetStringSlice("kinds"); len(kinds) > 0 {
		cfg.Kinds = kinds
	}

	return cfg, nil
}

// fileConfig is the on-disk shape of ngrxgen.yml.
type fileConfig struct {
	Workspace  string   `yaml:"workspace"`
	Sequential bool     `yaml:"sequential"`
	FileMode   string   `yaml:"file_mode"`
	DirMode    string   `yaml:"dir_mode"`
	Kinds      []string `yaml:"kinds,omitempty"`
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(fileConfig{
		Workspace:  cfg.Workspace,
		Sequential: cfg.Sequential,
		FileMode:   formatMode(cfg.FileMode),
		DirMode:    formatMode(cfg.DirMode),
		Kinds:      cfg.Kinds,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// WriteDefault writes the default config to path. An existing file is
// only replaced when force is set.
func WriteDefault(fsys afero.Fs, path string, force bool) error {
	if !force {
		exists, err := afero.Exists(fsys, path)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	data, err := Marshal(Default())
	if err != nil {
		return err
	}
	return afero.WriteFile(fsys, path, data, 0644)
}

// parseMode accepts an octal string ("0644", from quoted YAML or the
// environment) or an integer the YAML decoder already resolved from an
// unquoted octal literal (0644 -> 420).
func parseMode(raw any) (fs.FileMode, error) {
	var n uint64
	switch val := raw.(type) {
	case string:
		parsed, err := strconv.ParseUint(val, 8, 32)
		if err != nil {
			return 0, err
		}
		n = parsed
	case int:
		if val < 0 {
			return 0, fmt.Errorf("mode %d out of range", val)
		}
		n = uint64(val)
	case int64:
		if val < 0 {
			return 0, fmt.Errorf("mode %d out of range", val)
		}
		n = uint64(val)
	case uint64:
		n = val
	default:
		return 0, fmt.Errorf("unsupported mode value %v (%T)", raw, raw)
	}

	if n == 0 || n > 0777 {
		return 0, fmt.Errorf("mode %#o out of range", n)
	}
	return fs.FileMode(n), nil
}

func formatMode(m fs.FileMode) string {
	return fmt.Sprintf("%04o", uint32(m.Perm()))
}
