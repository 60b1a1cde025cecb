package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	UI      UIConfig      `mapstructure:"ui"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Logging LoggingConfig `mapstructure:"logging"`

	// File is the config file the values were read from (or will be written to)
	File string `mapstructure:"-"`
}

// APIConfig describes the remote photo API
type APIConfig struct {
	URL       string        `mapstructure:"url"`        // e.g. http://localhost:5000/api
	UploadURL string        `mapstructure:"upload_url"` // Base path for stored images
	Timeout   time.Duration `mapstructure:"timeout"`

	// PhotoField is the multipart field carrying the image file on publish
	PhotoField string `mapstructure:"photo_field"`

	// LegacyPhotoField appends the extra "photo" text field the original
	// web client sent ("undefined"), for servers that expect it
	LegacyPhotoField bool `mapstructure:"legacy_photo_field"`
}

// SessionConfig holds the opaque credentials issued by the API
type SessionConfig struct {
	Token  string `mapstructure:"token"`
	UserID string `mapstructure:"user_id"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	MessageDelay time.Duration `mapstructure:"message_delay"` // Transient message lifetime
}

// CacheConfig holds local cache configuration
type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// Defaults
const (
	DefaultAPIURL       = "http://localhost:5000/api"
	DefaultUploadURL    = "http://localhost:5000/uploads"
	DefaultTimeout      = 30 * time.Second
	DefaultPhotoField   = "image"
	DefaultMessageDelay = 2 * time.Second
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			URL:        DefaultAPIURL,
			UploadURL:  DefaultUploadURL,
			Timeout:    DefaultTimeout,
			PhotoField: DefaultPhotoField,
		},
		UI: UIConfig{
			MessageDelay: DefaultMessageDelay,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     defaultCachePath(),
		},
		Logging: LoggingConfig{
			File:       defaultLogPath(),
			Level:      "INFO",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		File: filepath.Join(defaultConfigPath(), "config.yaml"),
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "foto", "foto.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "foto", "foto.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "foto")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "foto")
	}
}

// defaultCachePath returns the default cache directory path for the current OS
func defaultCachePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "foto", "cache")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "foto", "cache")
	}
}

// LoadConfig loads configuration from file and environment.
// An empty path searches the default config directory and the working directory.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		cfg.File = path
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. FOTO_SESSION_TOKEN
	v.SetEnvPrefix("FOTO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindKeys(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	} else {
		cfg.File = v.ConfigFileUsed()
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// bindKeys registers every key so AutomaticEnv also applies to Unmarshal
func bindKeys(v *viper.Viper) {
	for _, k := range []string{
		"api.url", "api.upload_url", "api.timeout", "api.photo_field", "api.legacy_photo_field",
		"session.token", "session.user_id",
		"ui.message_delay",
		"cache.enabled", "cache.dir",
		"logging.file", "logging.level", "logging.max_size_mb", "logging.max_backups",
	} {
		_ = v.BindEnv(k)
	}
}

func (c *Config) normalize() {
	c.API.URL = strings.TrimRight(strings.TrimSpace(c.API.URL), "/")
	c.API.UploadURL = strings.TrimRight(strings.TrimSpace(c.API.UploadURL), "/")
	if c.API.URL == "" {
		c.API.URL = DefaultAPIURL
	}
	if c.API.UploadURL == "" {
		c.API.UploadURL = DefaultUploadURL
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = DefaultTimeout
	}
	if strings.TrimSpace(c.API.PhotoField) == "" {
		c.API.PhotoField = DefaultPhotoField
	}
	if c.UI.MessageDelay <= 0 {
		c.UI.MessageDelay = DefaultMessageDelay
	}
	c.Session.Token = strings.TrimSpace(c.Session.Token)
	c.Session.UserID = strings.TrimSpace(c.Session.UserID)
}

// SaveConfig writes the configuration to cfg.File
func SaveConfig(cfg *Config) error {
	if cfg.File == "" {
		cfg.File = filepath.Join(defaultConfigPath(), "config.yaml")
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("api.url", cfg.API.URL)
	v.Set("api.upload_url", cfg.API.UploadURL)
	v.Set("api.timeout", cfg.API.Timeout.String())
	v.Set("api.photo_field", cfg.API.PhotoField)
	v.Set("api.legacy_photo_field", cfg.API.LegacyPhotoField)

	v.Set("session.token", cfg.Session.Token)
	v.Set("session.user_id", cfg.Session.UserID)

	v.Set("ui.message_delay", cfg.UI.MessageDelay.String())

	v.Set("cache.enabled", cfg.Cache.Enabled)
	v.Set("cache.dir", cfg.Cache.Dir)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)
	v.Set("logging.max_size_mb", cfg.Logging.MaxSizeMB)
	v.Set("logging.max_backups", cfg.Logging.MaxBackups)

	if err := v.WriteConfigAs(cfg.File); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// IsConfigured returns true if the API URL and session token are set
func (c *Config) IsConfigured() bool {
	return c.API.URL != "" && c.Session.Token != ""
}

// CachePath returns the cache directory, or "" when caching is disabled
func (c *Config) CachePath() string {
	if !c.Cache.Enabled {
		return ""
	}
	if strings.TrimSpace(c.Cache.Dir) == "" {
		return defaultCachePath()
	}
	return c.Cache.Dir
}
