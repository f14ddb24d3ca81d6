// Package config загружает настройки клиента: значения по умолчанию,
// файл (TOML, YAML или JSON), переменные окружения, флаги командной строки.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"
)

// Значения по умолчанию
const (
	DefaultServerURL      = "http://localhost:8000/api"
	DefaultDBPath         = "biblioshare-client.db"
	DefaultLogLevel       = "info"
	DefaultPollInterval   = 4 * time.Second
	DefaultRequestTimeout = 30 * time.Second
)

// Переменные окружения
const (
	EnvServerURL      = "BIBLIOSHARE_SERVER"
	EnvDBPath         = "BIBLIOSHARE_DB"
	EnvLogLevel       = "BIBLIOSHARE_LOG_LEVEL"
	EnvPollInterval   = "BIBLIOSHARE_POLL_INTERVAL"
	EnvRequestTimeout = "BIBLIOSHARE_TIMEOUT"
)

// Config настройки клиента
type Config struct {
	ServerURL      string
	DBPath         string
	LogLevel       string
	PollInterval   time.Duration
	RequestTimeout time.Duration
}

// DefaultConfig возвращает настройки по умолчанию
func DefaultConfig() *Config {
	return &Config{
		ServerURL:      DefaultServerURL,
		DBPath:         DefaultDBPath,
		LogLevel:       DefaultLogLevel,
		PollInterval:   DefaultPollInterval,
		RequestTimeout: DefaultRequestTimeout,
	}
}

// ApplyEnvOverrides заменяет значения заданными переменными окружения
func (c *Config) ApplyEnvOverrides() error {
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvServerURL); ok && v != "" {
		c.ServerURL = v
	}
	if v, ok := lookup(EnvDBPath); ok && v != "" {
		c.DBPath = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvPollInterval); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvPollInterval, err)
		}
		c.PollInterval = d
	}
	if v, ok := lookup(EnvRequestTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRequestTimeout, err)
		}
		c.RequestTimeout = d
	}
	return nil
}

// Validate проверяет настройки
func (c *Config) Validate() error {
	var errs []error

	if c.ServerURL == "" {
		errs = append(errs, errors.New("server URL is required"))
	} else if u, err := url.Parse(c.ServerURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("invalid server URL %q", c.ServerURL))
	}
	if c.DBPath == "" {
		errs = append(errs, errors.New("database path is required"))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.PollInterval <= 0 {
		errs = append(errs, errors.New("poll interval must be positive"))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, errors.New("request timeout must be positive"))
	}

	return errors.Join(errs...)
}

// Level возвращает уровень логирования; некорректное значение отбрасывается Validate
func (c *Config) Level() slog.Level {
	level, _ := ParseLevel(c.LogLevel)
	return level
}

// ParseLevel разбирает уровень логирования: debug, info, warn, error
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
