package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tmdb"
)

const (
	appName    = "marquee"
	envPrefix  = "MARQUEE"
	configName = "config"
	configType = "yaml"
)

// Config holds all application configuration
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDBConfig holds catalog API configuration
type TMDBConfig struct {
	APIKey   string        `mapstructure:"api_key"`
	BaseURL  string        `mapstructure:"base_url"`
	Language string        `mapstructure:"language"` // e.g. "es-ES"
	Timeout  time.Duration `mapstructure:"timeout"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	GridColumns     int           `mapstructure:"grid_columns"`
	SlideInterval   time.Duration `mapstructure:"slide_interval"`
	DefaultCategory string        `mapstructure:"default_category"`
	ShowUpcoming    bool          `mapstructure:"show_upcoming"`
	Browser         string        `mapstructure:"browser"` // empty for system default
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{
			BaseURL:  tmdb.DefaultBaseURL,
			Language: tmdb.DefaultLanguage,
			Timeout:  30 * time.Second,
		},
		UI: UIConfig{
			GridColumns:     5,
			SlideInterval:   5 * time.Second,
			DefaultCategory: string(domain.CategoryPopular),
			ShowUpcoming:    true,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), appName, appName+".log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", appName, appName+".log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), appName)
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", appName)
	}
}

// ConfigFile returns the path SaveConfig writes to
func ConfigFile() string {
	return filepath.Join(defaultConfigPath(), configName+"."+configType)
}

// LoadConfig loads configuration from .env, the config file, and the
// environment, in increasing order of precedence
func LoadConfig() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	return loadConfig(defaultConfigPath(), ".")
}

// loadDotEnv exports variables from a .env file without overriding the
// real environment. A missing file is fine.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error reading %s: %w", path, err)
	}
	return nil
}

func loadConfig(paths ...string) (*Config, error) {
	cfg := DefaultConfig()
	v := newViper(cfg)
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.TMDB.APIKey = strings.TrimSpace(cfg.TMDB.APIKey)
	if !domain.Category(cfg.UI.DefaultCategory).Valid() {
		cfg.UI.DefaultCategory = string(domain.CategoryPopular)
	}
	return cfg, nil
}

// newViper returns a viper instance seeded with defaults. Every key must have
// a default or AutomaticEnv never sees it during Unmarshal.
func newViper(defaults *Config) *viper.Viper {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)

	// MARQUEE_TMDB_API_KEY, MARQUEE_UI_SLIDE_INTERVAL, ...
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("tmdb.api_key", envPrefix+"_TMDB_API_KEY", "TMDB_API_KEY")

	for key, val := range settings(defaults) {
		v.SetDefault(key, val)
	}
	return v
}

// settings flattens cfg into viper keys
func settings(cfg *Config) map[string]any {
	return map[string]any{
		"tmdb.api_key":        cfg.TMDB.APIKey,
		"tmdb.base_url":       cfg.TMDB.BaseURL,
		"tmdb.language":       cfg.TMDB.Language,
		"tmdb.timeout":        cfg.TMDB.Timeout.String(),
		"ui.grid_columns":     cfg.UI.GridColumns,
		"ui.slide_interval":   cfg.UI.SlideInterval.String(),
		"ui.default_category": cfg.UI.DefaultCategory,
		"ui.show_upcoming":    cfg.UI.ShowUpcoming,
		"ui.browser":          cfg.UI.Browser,
		"logging.file":        cfg.Logging.File,
		"logging.level":       cfg.Logging.Level,
	}
}

// SaveConfig saves the configuration to the default config file
func SaveConfig(cfg *Config) error {
	return saveConfig(cfg, defaultConfigPath())
}

func saveConfig(cfg *Config, dir string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType(configType)
	// Set fields individually to keep snake_case key names
	for key, val := range settings(cfg) {
		v.Set(key, val)
	}

	configFile := filepath.Join(dir, configName+"."+configType)
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	// The file holds the API key
	if err := os.Chmod(configFile, 0600); err != nil {
		return fmt.Errorf("failed to restrict config file: %w", err)
	}
	return nil
}

// SaveAPIKey updates just the API key, keeping every other setting
func SaveAPIKey(key string) error {
	cfg, err := loadConfig(defaultConfigPath())
	if err != nil {
		return err
	}
	cfg.TMDB.APIKey = strings.TrimSpace(key)
	return SaveConfig(cfg)
}

// IsConfigured returns true if an API key is set
func (c *Config) IsConfigured() bool {
	return c.TMDB.APIKey != ""
}

// ClientOptions maps the TMDB section onto catalog client options
func (c *Config) ClientOptions() tmdb.Options {
	return tmdb.Options{
		APIKey:   c.TMDB.APIKey,
		BaseURL:  c.TMDB.BaseURL,
		Language: c.TMDB.Language,
		Timeout:  c.TMDB.Timeout,
	}
}
