/*
Package config loads calculator settings from TOML or YAML files.

PURPOSE:
  Holds the settings the outer layers need: logger level and format, HTTP
  listen address, timeouts and CORS origins, the APY percent threshold and
  the longest span one API request may compound.
  The core packages never read configuration; callers pass values in.

FILE FORMATS:
  The format is chosen by extension: .toml, .yaml or .yml.

    [log]
    level = "debug"
    format = "json"

    [server]
    port = 8080
    read_timeout = "15s"

    [savings]
    percent_threshold = 0.25
    max_days = 36525

  Missing values fall back to Default().

SEE ALSO:
  - cmd/compound/cmd/root.go: --config flag and COMPOUND_CONFIG lookup
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/warp/compound-engine/logging"
	"gopkg.in/yaml.v3"
)

// EnvVar names a config file when no --config flag is given.
const EnvVar = "COMPOUND_CONFIG"

const (
	defaultPercentThreshold = 0.25
	defaultMaxDays          = 36525
)

// Config holds the complete application configuration.
type Config struct {
	Log     LogConfig     `toml:"log" yaml:"log"`
	Server  ServerConfig  `toml:"server" yaml:"server"`
	Savings SavingsConfig `toml:"savings" yaml:"savings"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Host            string     `toml:"host" yaml:"host"`
	Port            int        `toml:"port" yaml:"port"`
	ReadTimeout     Duration   `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    Duration   `toml:"write_timeout" yaml:"write_timeout"`
	IdleTimeout     Duration   `toml:"idle_timeout" yaml:"idle_timeout"`
	ShutdownTimeout Duration   `toml:"shutdown_timeout" yaml:"shutdown_timeout"`
	CORS            CORSConfig `toml:"cors" yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins" yaml:"allowed_origins"`
}

// SavingsConfig holds calculator input conventions. Both fields are pointers
// so that an explicit 0 in a file survives applyDefaults.
type SavingsConfig struct {
	// PercentThreshold separates fractional APYs from whole-number
	// percentages: a raw APY above it is divided by 100. 0 reads every
	// positive APY as a percentage.
	PercentThreshold *float64 `toml:"percent_threshold" yaml:"percent_threshold"`

	// MaxDays caps the days one API request may compound. 0 removes the cap.
	MaxDays *int `toml:"max_days" yaml:"max_days"`
}

// Threshold returns the configured percent threshold, or the default when unset.
func (s SavingsConfig) Threshold() float64 {
	if s.PercentThreshold == nil {
		return defaultPercentThreshold
	}
	return *s.PercentThreshold
}

// Horizon returns the configured day cap, or the default when unset.
func (s SavingsConfig) Horizon() int {
	if s.MaxDays == nil {
		return defaultMaxDays
	}
	return *s.MaxDays
}

// Duration wraps time.Duration so it can be written as "15s" in files.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", node.Line)
	}
	return d.UnmarshalText([]byte(node.Value))
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the file at path, choosing the decoder from its extension.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q: want .toml, .yaml or .yml", ext)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by COMPOUND_CONFIG, or returns Default()
// when the variable is unset.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) applyDefaults() {
	// Log
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	// Server
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout.Duration == 0 {
		c.Server.ReadTimeout.Duration = 15 * time.Second
	}
	if c.Server.WriteTimeout.Duration == 0 {
		c.Server.WriteTimeout.Duration = 15 * time.Second
	}
	if c.Server.IdleTimeout.Duration == 0 {
		c.Server.IdleTimeout.Duration = 60 * time.Second
	}
	if c.Server.ShutdownTimeout.Duration == 0 {
		c.Server.ShutdownTimeout.Duration = 30 * time.Second
	}
	if len(c.Server.CORS.AllowedOrigins) == 0 {
		c.Server.CORS.AllowedOrigins = []string{"http://localhost:*"}
	}

	// Savings
	if c.Savings.PercentThreshold == nil {
		threshold := defaultPercentThreshold
		c.Savings.PercentThreshold = &threshold
	}
	if c.Savings.MaxDays == nil {
		maxDays := defaultMaxDays
		c.Savings.MaxDays = &maxDays
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q: want text or json", c.Log.Format)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	for name, d := range map[string]Duration{
		"read_timeout":     c.Server.ReadTimeout,
		"write_timeout":    c.Server.WriteTimeout,
		"idle_timeout":     c.Server.IdleTimeout,
		"shutdown_timeout": c.Server.ShutdownTimeout,
	} {
		if d.Duration < 0 {
			return fmt.Errorf("server.%s must not be negative", name)
		}
	}
	if c.Savings.Threshold() < 0 {
		return fmt.Errorf("savings.percent_threshold must not be negative")
	}
	if c.Savings.Horizon() < 0 {
		return fmt.Errorf("savings.max_days must not be negative")
	}
	return nil
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
