package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Nomadcxx/slotsheet/internal/logging"
	"github.com/Nomadcxx/slotsheet/internal/paths"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SLOTSHEET_LOGGING_LEVEL.
const EnvPrefix = "SLOTSHEET"

type Config struct {
	Convert ConvertConfig  `mapstructure:"convert"`
	Serve   ServeConfig    `mapstructure:"serve"`
	Watch   WatchConfig    `mapstructure:"watch"`
	Logging logging.Config `mapstructure:"logging"`
}

// ConvertConfig holds defaults for the conversion itself. Empty paths mean
// stdin and stdout.
type ConvertConfig struct {
	Input           string `mapstructure:"input"`
	Output          string `mapstructure:"output"`
	PlaceholderName string `mapstructure:"placeholder_name"`
}

// ServeConfig configures the HTTP API.
type ServeConfig struct {
	Addr      string `mapstructure:"addr"`
	MaxBodyKB int64  `mapstructure:"max_body_kb"`
}

// WatchConfig configures re-conversion on input changes.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// MaxBodyBytes returns the request body limit in bytes.
func (s ServeConfig) MaxBodyBytes() int64 {
	if s.MaxBodyKB <= 0 {
		return 1024 * 1024
	}
	return s.MaxBodyKB * 1024
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Convert: ConvertConfig{
			Input:           "",
			Output:          "",
			PlaceholderName: "Unknown",
		},
		Serve: ServeConfig{
			Addr:      ":8080",
			MaxBodyKB: 1024,
		},
		Watch: WatchConfig{
			Debounce: 250 * time.Millisecond,
		},
		Logging: logging.DefaultConfig(),
	}
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("convert.input", cfg.Convert.Input)
	v.SetDefault("convert.output", cfg.Convert.Output)
	v.SetDefault("convert.placeholder_name", cfg.Convert.PlaceholderName)
	v.SetDefault("serve.addr", cfg.Serve.Addr)
	v.SetDefault("serve.max_body_kb", cfg.Serve.MaxBodyKB)
	v.SetDefault("watch.debounce", cfg.Watch.Debounce)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.max_size_mb", cfg.Logging.MaxSizeMB)
	v.SetDefault("logging.max_backups", cfg.Logging.MaxBackups)
}

// Load reads configuration from path, or from the default location when path
// is empty, layering it over DefaultConfig and SLOTSHEET_* environment
// variables. An explicit path must exist. The default location is optional,
// and is skipped entirely when the home directory cannot be resolved.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file, err := resolveFile(path)
	if err != nil {
		return nil, err
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return cfg, nil
}

// resolveFile returns the config file Load should read, or "" when there is
// none to read.
func resolveFile(path string) (string, error) {
	if path == "" {
		p, err := paths.ConfigPath()
		if err != nil {
			return "", nil
		}
		if _, err := os.Stat(p); err != nil {
			return "", nil
		}
		return p, nil
	}

	p, err := paths.ExpandHome(path)
	if err != nil {
		return "", fmt.Errorf("unable to expand config path: %w", err)
	}
	if _, err := os.Stat(p); err != nil {
		return "", fmt.Errorf("config file not found: %w", err)
	}
	return p, nil
}

// Save writes the configuration as TOML to path, or to the default location
// when path is empty.
func (c *Config) Save(path string) error {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("unable to create config dir: %w", err)
	}

	return os.WriteFile(path, []byte(c.ToTOML()), 0644)
}

func ConfigPath() (string, error) {
	return paths.ConfigPath()
}

func ConfigExists(path string) bool {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return false
		}
		path = p
	}
	_, err := os.Stat(path)
	return err == nil
}

func (c *Config) ToTOML() string {
	return fmt.Sprintf(`# slotsheet configuration
# Generated by: slotsheet config init

# ============================================================================
# CONVERSION
# Empty input reads stdin, empty output writes stdout.
# Command-line flags override these values.
# ============================================================================
[convert]
input = %q
output = %q

# Name used for data lines that carry no name fields
placeholder_name = %q

# ============================================================================
# HTTP API (slotsheet serve)
# ============================================================================
[serve]
addr = %q
max_body_kb = %d

# ============================================================================
# WATCH MODE (slotsheet watch)
# ============================================================================
[watch]
# Quiet period after the last change before converting again
debounce = %q

# ============================================================================
# LOGGING
# Console output goes to stderr. Set file to also log to disk.
# ============================================================================
[logging]
level = %q
file = %q
max_size_mb = %d
max_backups = %d
`,
		c.Convert.Input,
		c.Convert.Output,
		c.Convert.PlaceholderName,
		c.Serve.Addr,
		c.Serve.MaxBodyKB,
		c.Watch.Debounce.String(),
		c.Logging.Level,
		c.Logging.File,
		c.Logging.MaxSizeMB,
		c.Logging.MaxBackups,
	)
}
