package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

// FileName is the default config file name inside the config directory
const FileName = "config.toml"

// Config represents the application configuration
type Config struct {
	Version       int                  `toml:"version"`
	CatalogPath   string               `toml:"catalog_path" env:"HOLOHOLO_CATALOG"`
	Search        SearchSettings       `toml:"search"`
	Cart          CartSettings         `toml:"cart"`
	Notifications NotificationSettings `toml:"notifications"`
	UISettings    UISettings           `toml:"ui"`
	Share         ShareSettings        `toml:"share"`
	Log           LogSettings          `toml:"log"`
}

// SearchSettings controls the suggestion dropdown
type SearchSettings struct {
	DebounceMS        int `toml:"debounce_ms" env:"HOLOHOLO_DEBOUNCE_MS"`
	MinQueryLength    int `toml:"min_query_length" env:"HOLOHOLO_MIN_QUERY_LENGTH"`
	MaxSuggestions    int `toml:"max_suggestions" env:"HOLOHOLO_MAX_SUGGESTIONS"`
	MaxProductMatches int `toml:"max_product_matches" env:"HOLOHOLO_MAX_PRODUCT_MATCHES"`
}

// CartSettings controls the add-to-cart button state
type CartSettings struct {
	BusyMS int `toml:"busy_ms" env:"HOLOHOLO_CART_BUSY_MS"`
}

// NotificationSettings controls toast notifications
type NotificationSettings struct {
	TimeoutMS  int `toml:"timeout_ms" env:"HOLOHOLO_NOTIFY_TIMEOUT_MS"`
	MaxVisible int `toml:"max_visible" env:"HOLOHOLO_NOTIFY_MAX_VISIBLE"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	BackToTopThreshold int  `toml:"back_to_top_threshold" env:"HOLOHOLO_BACK_TO_TOP"`
	ShowRatings        bool `toml:"show_ratings" env:"HOLOHOLO_SHOW_RATINGS"`
}

// ShareSettings controls share link construction
type ShareSettings struct {
	BaseURL   string `toml:"base_url" env:"HOLOHOLO_SHARE_BASE_URL"`
	SiteTitle string `toml:"site_title" env:"HOLOHOLO_SITE_TITLE"`
}

// LogSettings controls the log file
type LogSettings struct {
	Level  string `toml:"level" env:"HOLOHOLO_LOG_LEVEL"`
	Format string `toml:"format" env:"HOLOHOLO_LOG_FORMAT"` // console or json
	File   string `toml:"file" env:"HOLOHOLO_LOG_FILE"`
}

// Debounce returns the quiet window for search suggestions
func (s SearchSettings) Debounce() time.Duration {
	return time.Duration(s.DebounceMS) * time.Millisecond
}

// Busy returns how long the add-to-cart button stays busy
func (s CartSettings) Busy() time.Duration {
	return time.Duration(s.BusyMS) * time.Millisecond
}

// Timeout returns how long a notification stays visible
func (s NotificationSettings) Timeout() time.Duration {
	return time.Duration(s.TimeoutMS) * time.Millisecond
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service using the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "holoholo", FileName),
	}
}

// NewConfigServiceAt creates a config service bound to an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file.
// A missing file yields the defaults with environment overrides applied.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		if err := applyEnv(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return cfg, err
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
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

func applyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	cfg.normalize()
	return nil
}

// normalize replaces out-of-range values with defaults
func (c *Config) normalize() {
	def := DefaultConfig()

	if c.Search.DebounceMS < 0 {
		c.Search.DebounceMS = def.Search.DebounceMS
	}
	if c.Search.MinQueryLength < 0 {
		c.Search.MinQueryLength = def.Search.MinQueryLength
	}
	if c.Search.MaxSuggestions <= 0 {
		c.Search.MaxSuggestions = def.Search.MaxSuggestions
	}
	if c.Search.MaxProductMatches < 0 {
		c.Search.MaxProductMatches = 0
	}
	if c.Cart.BusyMS < 0 {
		c.Cart.BusyMS = def.Cart.BusyMS
	}
	if c.Notifications.TimeoutMS <= 0 {
		c.Notifications.TimeoutMS = def.Notifications.TimeoutMS
	}
	if c.Notifications.MaxVisible <= 0 {
		c.Notifications.MaxVisible = def.Notifications.MaxVisible
	}
	if c.UISettings.BackToTopThreshold < 0 {
		c.UISettings.BackToTopThreshold = def.UISettings.BackToTopThreshold
	}
	if c.Share.BaseURL == "" {
		c.Share.BaseURL = def.Share.BaseURL
	}
	if c.Share.SiteTitle == "" {
		c.Share.SiteTitle = def.Share.SiteTitle
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Search: SearchSettings{
			DebounceMS:        300,
			MinQueryLength:    2,
			MaxSuggestions:    8,
			MaxProductMatches: 4,
		},
		Cart: CartSettings{
			BusyMS: 1000,
		},
		Notifications: NotificationSettings{
			TimeoutMS:  5000,
			MaxVisible: 3,
		},
		UISettings: UISettings{
			BackToTopThreshold: 10,
			ShowRatings:        true,
		},
		Share: ShareSettings{
			BaseURL:   "https://holoholo.example",
			SiteTitle: "Holoholo",
		},
		Log: LogSettings{
			Level:  "info",
			Format: "console",
		},
	}
}
