package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides. A double underscore descends
// into a section: POSTBOARD_WEB__PORT -> web.port.
const EnvPrefix = "POSTBOARD_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (POSTBOARD_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Timeout returns the HTTP client timeout. Zero means no timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.BaseURL != "" {
		if err := ValidateBaseURL(c.BaseURL); err != nil {
			return err
		}
	}

	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must be non-negative")
	}

	if c.DefaultSort.Direction != "" && !validDirections[c.DefaultSort.Direction] {
		return fmt.Errorf("invalid default_sort.direction %q: must be one of asc, desc", c.DefaultSort.Direction)
	}

	if !validPort(c.Web.Port) {
		return fmt.Errorf("invalid web.port %d", c.Web.Port)
	}
	if !validPort(c.Backend.Port) {
		return fmt.Errorf("invalid backend.port %d", c.Backend.Port)
	}
	if c.Backend.Database == "" {
		return fmt.Errorf("backend.database is required")
	}

	return nil
}

var validDirections = map[SortDirection]bool{
	SortAsc:  true,
	SortDesc: true,
}

func validPort(p int) bool {
	return p > 0 && p <= 65535
}

// ValidateBaseURL reports whether raw is an absolute http(s) URL.
func ValidateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid base_url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base_url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid base_url %q: missing host", raw)
	}
	return nil
}
