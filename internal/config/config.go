// Package config loads runtime settings from flags, the environment, an optional
// .env file and the prize table file.
package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/abrezinsky/reviewwheel/internal/errors"
	"github.com/abrezinsky/reviewwheel/internal/models"
)

const (
	NavigateBrowser = "browser"
	NavigateClient  = "client"
)

const (
	DefaultPort         = 8082
	DefaultDBPath       = "reviewwheel.db"
	DefaultReviewURL    = "https://naver.me/xOmvlCzr"
	DefaultSpinDuration = 3 * time.Second
)

const (
	envPort          = "REVIEWWHEEL_PORT"
	envDB            = "REVIEWWHEEL_DB"
	envPrizes        = "REVIEWWHEEL_PRIZES"
	envReviewURL     = "REVIEWWHEEL_REVIEW_URL"
	envSpinDuration  = "REVIEWWHEEL_SPIN_DURATION"
	envNavigate      = "REVIEWWHEEL_NAVIGATE"
	envStaffPassword = "REVIEWWHEEL_STAFF_PASSWORD"
	envCORSOrigins   = "REVIEWWHEEL_CORS_ORIGINS"
	envLogLevel      = "REVIEWWHEEL_LOG_LEVEL"
)

// Config holds everything the application needs to start
type Config struct {
	Port          int
	DBPath        string
	PrizesPath    string
	ReviewURL     string
	SpinDuration  time.Duration
	Navigate      string
	StaffPassword string
	CORSOrigins   []string
	LogLevel      string
	Kiosk         bool
	NoKeyboard    bool

	Prizes []models.Prize
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// A missing file is not an error; variables already set are kept.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// FromEnv builds a Config from defaults overridden by the environment
func FromEnv() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from defaults overridden by lookup
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{
		Port:         DefaultPort,
		DBPath:       DefaultDBPath,
		ReviewURL:    DefaultReviewURL,
		SpinDuration: DefaultSpinDuration,
		Navigate:     NavigateBrowser,
		CORSOrigins:  []string{"*"},
		LogLevel:     "info",
	}

	if v, ok := lookup(envPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return cfg, errors.Validationf("%s: invalid port %q", envPort, v)
		}
		cfg.Port = port
	}
	if v, ok := lookup(envSpinDuration); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, errors.Validationf("%s: invalid duration %q", envSpinDuration, v)
		}
		cfg.SpinDuration = d
	}
	if v, ok := lookup(envCORSOrigins); ok && v != "" {
		cfg.CORSOrigins = SplitList(v)
	}

	setString(lookup, envDB, &cfg.DBPath)
	setString(lookup, envPrizes, &cfg.PrizesPath)
	setString(lookup, envReviewURL, &cfg.ReviewURL)
	setString(lookup, envNavigate, &cfg.Navigate)
	setString(lookup, envStaffPassword, &cfg.StaffPassword)
	setString(lookup, envLogLevel, &cfg.LogLevel)

	return cfg, nil
}

func setString(lookup func(string) (string, bool), key string, dst *string) {
	if v, ok := lookup(key); ok && v != "" {
		*dst = v
	}
}

// SplitList splits a comma separated list, dropping blanks
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// LoadPrizeTable fills Prizes from PrizesPath
func (c *Config) LoadPrizeTable() error {
	prizes, err := LoadPrizes(c.PrizesPath)
	if err != nil {
		return err
	}
	c.Prizes = prizes
	return nil
}

// Validate checks the settings the application cannot run without
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return errors.Validationf("port %d out of range", c.Port)
	}
	if c.DBPath == "" {
		return errors.Validation("database path is required")
	}
	u, err := url.Parse(c.ReviewURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.Validationf("review url %q must be an absolute http(s) url", c.ReviewURL)
	}
	if c.SpinDuration <= 0 {
		return errors.Validationf("spin duration must be positive, got %v", c.SpinDuration)
	}
	if c.Navigate != NavigateBrowser && c.Navigate != NavigateClient {
		return errors.Validationf("navigate mode must be %q or %q, got %q", NavigateBrowser, NavigateClient, c.Navigate)
	}
	return ValidatePrizes(c.Prizes)
}
