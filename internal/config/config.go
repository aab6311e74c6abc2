package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

const (
	DefaultRefreshThreshold = 180
	DefaultLogLevel         = "warn"
	DefaultTogglAPIURL      = "https://api.track.toggl.com/api/v9"
	DefaultTogglReportsURL  = "https://api.track.toggl.com/reports/api/v2"
)

// Config is the application configuration stored in config.yaml.
type Config struct {
	DBPath string `yaml:"db_path"`

	// RefreshThreshold is the cache age in minutes after which intervals are
	// fetched again. Zero refreshes on every run.
	RefreshThreshold int `yaml:"refresh_threshold_minutes"`

	LogLevel    string `yaml:"log_level"`
	LogFile     string `yaml:"log_file,omitempty"`
	MetricsFile string `yaml:"metrics_file,omitempty"`

	TogglAPIURL     string `yaml:"toggl_api_url"`
	TogglReportsURL string `yaml:"toggl_reports_url"`

	// TogglToken is only ever taken from the environment.
	TogglToken string `yaml:"-"`

	// envProblems collects environment values that could not be parsed.
	envProblems []string
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	db, err := DefaultDBPath()
	if err != nil {
		db = DBFileName
	}
	return &Config{
		DBPath:           db,
		RefreshThreshold: DefaultRefreshThreshold,
		LogLevel:         DefaultLogLevel,
		TogglAPIURL:      DefaultTogglAPIURL,
		TogglReportsURL:  DefaultTogglReportsURL,
	}
}

// Load reads path (or the default location when empty), applies .env and
// environment overrides and validates the result. On first run the defaults
// are written to path so there is a file to edit.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultFile()
		if err != nil {
			return nil, fmt.Errorf("locate config: %w", err)
		}
		path = p
	}

	// A missing .env is normal.
	_ = godotenv.Load()

	firstRun := !FileExists(path)
	cfg, err := LoadYAMLOrDefault(path, Default)
	if err != nil {
		return nil, err
	}
	if firstRun {
		// A read-only config dir still runs on defaults.
		_ = Save(path, cfg)
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path (or the default location when empty).
func Save(path string, cfg *Config) error {
	if path == "" {
		p, err := DefaultFile()
		if err != nil {
			return fmt.Errorf("locate config: %w", err)
		}
		path = p
	}
	return SaveYAML(path, cfg)
}

func (c *Config) applyEnv() {
	c.DBPath = getEnv("HOURS_DB_PATH", c.DBPath)
	c.LogLevel = getEnv("HOURS_LOG_LEVEL", c.LogLevel)
	c.LogFile = getEnv("HOURS_LOG_FILE", c.LogFile)
	c.MetricsFile = getEnv("HOURS_METRICS_FILE", c.MetricsFile)
	c.RefreshThreshold = c.getEnvInt("HOURS_REFRESH_THRESHOLD", c.RefreshThreshold)
	c.TogglToken = getEnv("TOGGL_API_TOKEN", c.TogglToken)
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	problems := append([]string(nil), c.envProblems...)

	if strings.TrimSpace(c.DBPath) == "" {
		problems = append(problems, "db_path must not be empty")
	}
	if c.RefreshThreshold < 0 {
		problems = append(problems, fmt.Sprintf("invalid refresh_threshold_minutes %d: must not be negative", c.RefreshThreshold))
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	isValidLevel := false
	for _, l := range validLevels {
		if strings.EqualFold(c.LogLevel, l) {
			isValidLevel = true
			break
		}
	}
	if !isValidLevel {
		problems = append(problems, fmt.Sprintf("invalid log_level '%s': must be one of %v", c.LogLevel, validLevels))
	}

	if c.TogglAPIURL == "" || c.TogglReportsURL == "" {
		problems = append(problems, "toggl_api_url and toggl_reports_url must be set")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func (c *Config) getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		c.envProblems = append(c.envProblems, fmt.Sprintf("invalid %s '%s': must be a whole number", key, v))
		return fallback
	}
	return n
}
