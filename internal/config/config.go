package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the public TheMealDB instance using the shared test key.
const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1/"

const keyedBaseURL = "https://www.themealdb.com/api/json/v1/%s/"

// Config holds runtime settings for the recipe finder.
type Config struct {
	Port                string
	BaseURL             string
	APIKey              string
	UpstreamTimeout     time.Duration
	FallbackConcurrency int
	SynonymsFile        string
	RabbitMQURL         string
	LogLevel            string
}

// Load reads an optional .env file and then the process environment.
// A missing .env file is not an error.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	timeout, err := time.ParseDuration(envOrDefault("UPSTREAM_TIMEOUT", "12s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_TIMEOUT: %w", err)
	}

	concurrency, err := strconv.Atoi(envOrDefault("FALLBACK_CONCURRENCY", "4"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FALLBACK_CONCURRENCY: %w", err)
	}

	return Config{
		Port:                envOrDefault("PORT", "5000"),
		BaseURL:             envOrDefault("BASE_URL", DefaultBaseURL),
		APIKey:              os.Getenv("API_KEY"),
		UpstreamTimeout:     timeout,
		FallbackConcurrency: concurrency,
		SynonymsFile:        os.Getenv("SYNONYMS_FILE"),
		RabbitMQURL:         os.Getenv("RABBITMQ_URL"),
		LogLevel:            envOrDefault("LOG_LEVEL", "info"),
	}, nil
}

// ResolvedBaseURL returns the upstream base URL with a trailing slash. When an
// API key is configured against the default public instance, the key replaces
// the shared test key path segment.
func (c Config) ResolvedBaseURL() string {
	base := c.BaseURL
	if c.APIKey != "" && NormalizeBaseURL(base) == DefaultBaseURL {
		base = fmt.Sprintf(keyedBaseURL, url.PathEscape(c.APIKey))
	}
	return NormalizeBaseURL(base)
}

// Validate checks the settings that would otherwise fail at request time.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid BASE_URL %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("BASE_URL must be http or https, got %q", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("BASE_URL %q has no host", c.BaseURL)
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("upstream timeout must be positive, got %s", c.UpstreamTimeout)
	}
	if c.FallbackConcurrency < 1 {
		return fmt.Errorf("fallback concurrency must be at least 1, got %d", c.FallbackConcurrency)
	}
	if c.Port == "" {
		return errors.New("port is required")
	}
	return nil
}

// NormalizeBaseURL guarantees a trailing slash so paths can be
// appended by plain concatenation.
func NormalizeBaseURL(base string) string {
	base = strings.TrimSpace(base)
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
