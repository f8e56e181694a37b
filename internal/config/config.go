package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// EnvConfigFile names the variable that points at an optional TOML file.
const EnvConfigFile = "TEAMTRACKER_CONFIG"

// Config keeps runtime settings for the bot.
type Config struct {
	TelegramToken  string
	DatabaseDriver string
	DatabaseURL    string
	DatabaseRetry  int
	ReportChatID   int64
	ReportTime     string
	ReportInterval time.Duration
	LogLevel       string
	Timezone       string
}

// fileConfig mirrors the TOML layout.
type fileConfig struct {
	TelegramToken string `toml:"telegram_token"`
	LogLevel      string `toml:"log_level"`
	Timezone      string `toml:"timezone"`
	Database      struct {
		Driver  string `toml:"driver"`
		URL     string `toml:"url"`
		Retries int    `toml:"retries"`
	} `toml:"database"`
	Report struct {
		ChatID        int64  `toml:"chat_id"`
		Time          string `toml:"time"`
		IntervalHours int    `toml:"interval_hours"`
	} `toml:"report"`
}

// Load builds the configuration from defaults, then the TOML file at path
// (or $TEAMTRACKER_CONFIG), then environment variables.
func Load(path string) (Config, error) {
	cfg := Config{
		DatabaseDriver: "sqlite",
		DatabaseURL:    "team_tracker.db",
		LogLevel:       "info",
	}

	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfigFile))
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return cfg, err
		}
	}

	if err := cfg.loadEnv(); err != nil {
		return cfg, err
	}

	if cfg.DatabaseRetry == 0 {
		cfg.DatabaseRetry = defaultRetries(cfg.DatabaseDriver)
	}

	if _, err := cfg.Location(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// RequireToken fails when the bot token is missing.
func (c Config) RequireToken() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_TOKEN is required")
	}
	return nil
}

// Location resolves Timezone; empty means the host zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&c.TelegramToken, fc.TelegramToken)
	setString(&c.LogLevel, fc.LogLevel)
	setString(&c.Timezone, fc.Timezone)
	setString(&c.DatabaseDriver, fc.Database.Driver)
	setString(&c.DatabaseURL, fc.Database.URL)
	setString(&c.ReportTime, fc.Report.Time)
	if fc.Database.Retries > 0 {
		c.DatabaseRetry = fc.Database.Retries
	}
	if fc.Report.ChatID != 0 {
		c.ReportChatID = fc.Report.ChatID
	}
	if fc.Report.IntervalHours > 0 {
		c.ReportInterval = time.Duration(fc.Report.IntervalHours) * time.Hour
	}
	return nil
}

func (c *Config) loadEnv() error {
	setString(&c.TelegramToken, env("TELEGRAM_TOKEN"))
	setString(&c.DatabaseDriver, strings.ToLower(env("DATABASE_DRIVER")))
	setString(&c.DatabaseURL, env("DATABASE_URL"))
	setString(&c.ReportTime, env("REPORT_TIME"))
	setString(&c.LogLevel, env("LOG_LEVEL"))
	setString(&c.Timezone, env("TIMEZONE"))

	if raw := env("REPORT_CHAT_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("REPORT_CHAT_ID must be a chat id: %w", err)
		}
		c.ReportChatID = id
	}
	if interval := parseInterval(env("REPORT_INTERVAL_HOURS")); interval > 0 {
		c.ReportInterval = interval
	}
	if raw := env("DATABASE_RETRIES"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return fmt.Errorf("DATABASE_RETRIES must be a positive number")
		}
		c.DatabaseRetry = n
	}
	return nil
}

// defaultRetries is the connection attempt count when none is configured.
func defaultRetries(driver string) int {
	switch driver {
	case "postgres", "postgresql":
		return 30
	default:
		return 1
	}
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}
