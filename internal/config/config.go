package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// QABackend identifies the generative-language backend
type QABackend string

const (
	// QABackendREST calls the generative-language HTTP endpoint directly
	QABackendREST QABackend = "rest"
	// QABackendSDK calls the same service through the Gemini Go SDK
	QABackendSDK QABackend = "sdk"
)

// Config holds all application configuration
type Config struct {
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	QA        QAConfig        `mapstructure:"qa"`
	Favorites FavoritesConfig `mapstructure:"favorites"`
	UI        UIConfig        `mapstructure:"ui"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// CatalogConfig holds book catalog API configuration
type CatalogConfig struct {
	BaseURL   string `mapstructure:"base_url"`   // Open Library API root
	CoversURL string `mapstructure:"covers_url"` // Cover image host
	PageSize  int    `mapstructure:"page_size"`  // Results per search page
}

// QAConfig holds generative-language API configuration
type QAConfig struct {
	Backend QABackend `mapstructure:"backend"`  // "rest" or "sdk"
	APIKey  string    `mapstructure:"api_key"`  // Gemini API key, never embedded in code
	Model   string    `mapstructure:"model"`    // Model name, e.g. "gemini-1.5-flash"
	BaseURL string    `mapstructure:"base_url"` // REST backend only; overridable for tests
}

// FavoritesConfig holds favorite store configuration
type FavoritesConfig struct {
	Path string `mapstructure:"path"` // bbolt database file
}

// UIConfig holds UI configuration
type UIConfig struct {
	ShowDegraded bool `mapstructure:"show_degraded"` // Show "sample data"/"offline answer" notices
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL:   "https://openlibrary.org",
			CoversURL: "https://covers.openlibrary.org",
			PageSize:  20,
		},
		QA: QAConfig{
			Backend: QABackendREST,
			Model:   "gemini-1.5-flash",
			BaseURL: "https://generativelanguage.googleapis.com",
		},
		Favorites: FavoritesConfig{
			Path: filepath.Join(defaultDataPath(), "favorites.db"),
		},
		UI: UIConfig{
			ShowDegraded: true,
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "bookexplore.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "bookexplore")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "bookexplore")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "bookexplore")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "bookexplore")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides, e.g. BOOKEXPLORE_QA_API_KEY
	viper.SetEnvPrefix("BOOKEXPLORE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if key := os.Getenv("BOOKEXPLORE_QA_API_KEY"); key != "" {
		cfg.QA.APIKey = key
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()

	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure correct key names (snake_case)
	viper.Set("catalog.base_url", cfg.Catalog.BaseURL)
	viper.Set("catalog.covers_url", cfg.Catalog.CoversURL)
	viper.Set("catalog.page_size", cfg.Catalog.PageSize)

	viper.Set("qa.backend", cfg.QA.Backend)
	viper.Set("qa.api_key", cfg.QA.APIKey)
	viper.Set("qa.model", cfg.QA.Model)
	viper.Set("qa.base_url", cfg.QA.BaseURL)

	viper.Set("favorites.path", cfg.Favorites.Path)

	viper.Set("ui.show_degraded", cfg.UI.ShowDegraded)

	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// HasAPIKey returns true if a generative-language API key is configured.
// The catalog works without one; Q&A falls back to offline answers.
func (c *Config) HasAPIKey() bool {
	return c.QA.APIKey != ""
}
