package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Contact holds the contact block shown on the home page.
type Contact struct {
	Email     string `yaml:"email" json:"email"`
	Phone     string `yaml:"phone" json:"phone"`
	Instagram string `yaml:"instagram" json:"instagram"`
}

// Duration wraps time.Duration so YAML configs can say "2s" or "500ms".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Geocoder holds the external geocoding service settings.
type Geocoder struct {
	Endpoint  string   `yaml:"endpoint"`
	UserAgent string   `yaml:"useragent"`
	Delay     Duration `yaml:"delay"`
}

// Config is the site configuration, loaded from atelier.yaml with
// environment overrides.
type Config struct {
	SiteTitle  string   `yaml:"sitetitle"`
	Contact    Contact  `yaml:"contact"`
	Locales    []string `yaml:"locales"`
	ContentDir string   `yaml:"contentdir"`
	CacheFile  string   `yaml:"cachefile"`
	Priority   []string `yaml:"priority"` // overrides catalog.DefaultPriority when set
	Geocoder   Geocoder `yaml:"geocoder"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		SiteTitle:  "Atelier Rovira",
		Locales:    []string{"ca", "en"},
		ContentDir: "content",
		CacheFile:  "geocode_cache.json",
		Geocoder: Geocoder{
			Endpoint:  "https://nominatim.openstreetmap.org/search",
			UserAgent: "atelier-web/0.1 (portfolio site)",
			Delay:     Duration(time.Second),
		},
	}
}

// Load reads the YAML config at path on top of the defaults. A missing file
// is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	// Environment wins over file values
	if dir := os.Getenv("ATELIER_CONTENT_DIR"); dir != "" {
		cfg.ContentDir = dir
	}
	if cache := os.Getenv("ATELIER_CACHE_FILE"); cache != "" {
		cfg.CacheFile = cache
	}

	if len(cfg.Locales) == 0 {
		cfg.Locales = []string{"ca", "en"}
	}
	if cfg.Geocoder.Delay <= 0 {
		cfg.Geocoder.Delay = Duration(time.Second)
	}

	return cfg, nil
}

// DefaultLocale returns the first configured locale.
func (c *Config) DefaultLocale() string {
	return c.Locales[0]
}

// HasLocale reports whether l is a configured locale.
func (c *Config) HasLocale(l string) bool {
	for _, loc := range c.Locales {
		if loc == l {
			return true
		}
	}
	return false
}
