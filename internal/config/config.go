package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pelletier/go-toml/v2"

	"dropzone/internal/dropzone"
)

// FileName is the per-directory config file
const FileName = ".dropzone.toml"

// MaxNameLength bounds the zone label
const MaxNameLength = 128

// Config represents the application configuration
type Config struct {
	Version      int    `toml:"version"`
	Name         string `toml:"name"`
	Accept       string `toml:"accept"` // comma-separated accept patterns
	Multiple     bool   `toml:"multiple"`
	Required     bool   `toml:"required"`
	LegacyEvents bool   `toml:"legacy_events"`
	StartDir     string `toml:"start_dir"`
	LogFile      string `toml:"log_file"`
}

// an extension (".png") or a MIME pattern ("image/png", "image/*")
var acceptPattern = regexp.MustCompile(`^(\.[^\s/,]*|[A-Za-z0-9][\w.+-]*/(\*|[\w.+-]+))$`)

// Validate checks the configuration values
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Version, validation.Min(1)),
		validation.Field(&c.Name, validation.Length(0, MaxNameLength)),
		validation.Field(&c.Accept, validation.By(validateAccept)),
	)
}

func validateAccept(value interface{}) error {
	s, _ := value.(string)
	return validation.Validate(dropzone.ParseAccept(s),
		validation.Each(validation.Match(acceptPattern).Error("must be an extension like .png or a MIME type like image/*")),
	)
}

// ZoneOptions converts the configuration into zone options
func (c *Config) ZoneOptions() dropzone.Options {
	return dropzone.Options{
		Required:     c.Required,
		Multiple:     c.Multiple,
		Accept:       dropzone.ParseAccept(c.Accept),
		Name:         c.Name,
		LegacyEvents: c.LegacyEvents,
	}
}

// ApplyEnv overrides values from DROPZONE_* environment variables
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("DROPZONE_ACCEPT"); ok {
		c.Accept = v
	}
	if v, ok := lookup("DROPZONE_NAME"); ok {
		c.Name = v
	}
	for key, dst := range map[string]*bool{
		"DROPZONE_MULTIPLE":      &c.Multiple,
		"DROPZONE_REQUIRED":      &c.Required,
		"DROPZONE_LEGACY_EVENTS": &c.LegacyEvents,
	} {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = b
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service for the file in dir
func NewConfigService(dir string) ConfigService {
	return &configService{
		filePath: filepath.Join(dir, FileName),
	}
}

// Load loads the configuration, returning defaults when no file exists
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Name:     "files",
		StartDir: ".",
		LogFile:  "dropzone.log",
	}
}
