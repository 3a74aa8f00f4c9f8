package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultAppVersion identifies this integration to the CRM's LogIn endpoint
	// when EWAY_CRM_APP_VERSION is not set.
	DefaultAppVersion = "LeadGate1.0"

	// DefaultHTTPTimeout bounds every outbound CRM call. The legacy API has no
	// server-side deadline we can rely on.
	DefaultHTTPTimeout = 30 * time.Second
)

type Config struct {
	ServiceURL  string
	Username    string
	Password    string
	AppVersion  string
	TestMode    bool
	HTTPTimeout time.Duration
	Port        string
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		ServiceURL: strings.TrimRight(strings.TrimSpace(os.Getenv("EWAY_CRM_SERVICE_URL")), "/"),
		Username:   os.Getenv("EWAY_CRM_USERNAME"),
		Password:   os.Getenv("EWAY_CRM_PASSWORD"),
		AppVersion: os.Getenv("EWAY_CRM_APP_VERSION"),
		Port:       os.Getenv("PORT"),
	}

	if cfg.AppVersion == "" {
		cfg.AppVersion = DefaultAppVersion
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if raw := os.Getenv("EWAY_TEST_MODE"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid EWAY_TEST_MODE %q: %w", raw, err)
		}
		cfg.TestMode = parsed
	}

	cfg.HTTPTimeout = DefaultHTTPTimeout
	if raw := os.Getenv("EWAY_HTTP_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid EWAY_HTTP_TIMEOUT %q: %w", raw, err)
		}
		cfg.HTTPTimeout = parsed
	}

	return cfg, nil
}

// HasCredentials reports whether everything needed to talk to the CRM is
// present. Credentials are validated lazily so test mode works without them;
// the intake handler maps a false result to an opaque 500.
func (c *Config) HasCredentials() bool {
	return c.ServiceURL != "" && c.Username != "" && c.Password != ""
}

// Validate checks the full CRM configuration. Intended for tooling that has no
// test-mode escape hatch.
func (c *Config) Validate() error {
	if c.ServiceURL == "" {
		return fmt.Errorf("EWAY_CRM_SERVICE_URL is required")
	}
	if c.Username == "" {
		return fmt.Errorf("EWAY_CRM_USERNAME is required")
	}
	if c.Password == "" {
		return fmt.Errorf("EWAY_CRM_PASSWORD is required")
	}
	return nil
}
