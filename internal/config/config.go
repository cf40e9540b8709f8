package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults applied when an environment variable is absent or unparseable
const (
	DefaultOutputFile       = "local_businesses.csv"
	DefaultMaxResults       = 200
	DefaultPaginationDelay  = 2 * time.Second
	DefaultDetailDelay      = 100 * time.Millisecond
	DefaultSearchDelay      = 500 * time.Millisecond
	DefaultDBPath           = "harvest.db"
	DefaultMetricsPath      = "metrics.json"
	DefaultRequestTimeoutMs = 10000
)

// Config holds all runtime configuration parameters
type Config struct {
	APIKey              string
	SiteInclusion       bool
	OutputFile          string
	MaxResultsPerSearch int
	PaginationDelay     time.Duration
	DetailDelay         time.Duration
	SearchDelay         time.Duration
	DBPath              string
	MetricsPath         string
	RequestTimeout      time.Duration
}

// LoadConfig reads configuration from the environment after loading an
// optional .env file. Variables already set in the environment win over
// .env entries. Numeric variables that fail to parse fall back to their
// defaults rather than aborting the run.
func LoadConfig() (*Config, error) {
	// A missing .env file just means env-only configuration
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:              strings.TrimSpace(os.Getenv("GOOGLE_API_KEY")),
		SiteInclusion:       parseBoolEnv("SITE_INCLUSION", true),
		OutputFile:          valueOrDefault(os.Getenv("OUTPUT_FILE"), DefaultOutputFile),
		MaxResultsPerSearch: parseIntEnv("MAX_RESULTS_PER_SEARCH", DefaultMaxResults),
		PaginationDelay:     parseSecondsEnv("PAGINATION_DELAY_SECONDS", DefaultPaginationDelay),
		DetailDelay:         parseSecondsEnv("DETAIL_DELAY_SECONDS", DefaultDetailDelay),
		SearchDelay:         parseSecondsEnv("SEARCH_DELAY_SECONDS", DefaultSearchDelay),
		DBPath:              valueOrDefault(os.Getenv("DB_PATH"), DefaultDBPath),
		MetricsPath:         valueOrDefault(os.Getenv("METRICS_PATH"), DefaultMetricsPath),
		RequestTimeout:      parseDurationEnv("REQUEST_TIMEOUT_MS", DefaultRequestTimeoutMs),
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// validate checks that required fields are present and values are sensible
func validate(cfg *Config) error {
	if cfg.APIKey == "" {
		return fmt.Errorf("GOOGLE_API_KEY is required in environment or .env file")
	}
	if cfg.MaxResultsPerSearch < 1 {
		return fmt.Errorf("MAX_RESULTS_PER_SEARCH must be >= 1")
	}
	if cfg.RequestTimeout < time.Second {
		return fmt.Errorf("REQUEST_TIMEOUT_MS must be >= 1000")
	}
	return nil
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}

func parseBoolEnv(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return strings.ToLower(value) == "true"
}

func parseIntEnv(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// parseSecondsEnv reads a delay expressed in (possibly fractional) seconds
func parseSecondsEnv(key string, fallback time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	seconds, err := strconv.ParseFloat(value, 64)
	if err != nil || seconds < 0 {
		return fallback
	}
	return time.Duration(seconds * float64(time.Second))
}

// parseDurationEnv reads a timeout in milliseconds. Values below one second
// are treated as invalid and fall back, like the other numeric helpers.
func parseDurationEnv(key string, defaultMs int) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return time.Duration(defaultMs) * time.Millisecond
	}
	ms, err := strconv.Atoi(value)
	if err != nil || ms < 1000 {
		return time.Duration(defaultMs) * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}
