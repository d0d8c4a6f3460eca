package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Backend API, also the base for generated media URLs
	APIBaseURL string
	APITimeout time.Duration

	// Optional object storage mirror for generated images
	MediaStorageURL    string
	MediaStorageKey    string
	MediaStorageBucket string

	// Rendering
	DisplayTimezone string

	// Server
	Port        string
	Environment string
	LogLevel    string
}

// Option overrides a loaded value before validation. Command-line flags use it.
type Option func(*Config)

// WithAPIBaseURL overrides API_BASE_URL unless url is empty.
func WithAPIBaseURL(url string) Option {
	return func(c *Config) {
		if url != "" {
			c.APIBaseURL = url
		}
	}
}

// WithPort overrides PORT unless port is empty.
func WithPort(port string) Option {
	return func(c *Config) {
		if port != "" {
			c.Port = port
		}
	}
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load(opts ...Option) (*Config, error) {
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("API_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_TIMEOUT: %w", err)
	}

	cfg := &Config{
		APIBaseURL: getEnv("API_BASE_URL", getEnv("VITE_API_BASE_URL", "")),
		APITimeout: timeout,

		MediaStorageURL:    getEnv("MEDIA_STORAGE_URL", ""),
		MediaStorageKey:    getEnv("MEDIA_STORAGE_KEY", ""),
		MediaStorageBucket: getEnv("MEDIA_STORAGE_BUCKET", "generated-images"),

		DisplayTimezone: getEnv("DISPLAY_TIMEZONE", "Local"),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API_BASE_URL must be an absolute URL, got %q", c.APIBaseURL)
	}
	c.APIBaseURL = strings.TrimSuffix(c.APIBaseURL, "/")

	if c.APITimeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid DISPLAY_TIMEZONE: %w", err)
	}
	if c.MediaStorageURL != "" && c.MediaStorageBucket == "" {
		return fmt.Errorf("MEDIA_STORAGE_BUCKET is required when MEDIA_STORAGE_URL is set")
	}
	return nil
}

// Location resolves DisplayTimezone; "Local" and "" mean the host zone.
func (c *Config) Location() (*time.Location, error) {
	if c.DisplayTimezone == "" || c.DisplayTimezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.DisplayTimezone)
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) UsesMediaStorage() bool {
	return c.MediaStorageURL != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
