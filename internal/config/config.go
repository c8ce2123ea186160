// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// StorageDriver selects the entity store backend.
type StorageDriver string

const (
	StorageDriverMemory   StorageDriver = "memory"
	StorageDriverPostgres StorageDriver = "postgres"
)

// Config holds the API server settings.
type Config struct {
	Port            string
	MetricsAddr     string
	StorageDriver   StorageDriver
	DatabaseURL     string
	AutoMigrate     bool
	SeedData        bool
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Default returns the settings used when no environment overrides are present.
func Default() Config {
	return Config{
		Port:            "8080",
		MetricsAddr:     ":9090",
		StorageDriver:   StorageDriverMemory,
		AutoMigrate:     true,
		SeedData:        true,
		LogLevel:        "info",
		LogFormat:       "text",
		ShutdownTimeout: 5 * time.Second,
	}
}

// LoadDotEnv loads the given .env files (or ".env" when none are given).
// A missing file is reported as os.ErrNotExist so callers can ignore it.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return fmt.Errorf("load env file: %w", os.ErrNotExist)
		}
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// Load builds a Config from environment variables on top of Default.
func Load() (Config, error) {
	cfg := Default()

	if v := env("APP_PORT"); v != "" {
		cfg.Port = v
	}
	if v := env("METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
	if v := env("STORAGE_DRIVER"); v != "" {
		cfg.StorageDriver = StorageDriver(strings.ToLower(v))
	}
	cfg.DatabaseURL = env("DATABASE_URL")
	if v := env("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := env("LOG_FORMAT"); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}

	var err error
	if cfg.AutoMigrate, err = envBool("AUTO_MIGRATE", cfg.AutoMigrate); err != nil {
		return Config{}, err
	}
	if cfg.SeedData, err = envBool("SEED_DATA", cfg.SeedData); err != nil {
		return Config{}, err
	}
	if v := env("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		cfg.ShutdownTimeout = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("APP_PORT must not be empty")
	}
	switch c.StorageDriver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required when STORAGE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q (allowed: memory, postgres)", c.StorageDriver)
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// ListenAddr is the API server address.
func (c Config) ListenAddr() string {
	return ":" + c.Port
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envBool(key string, fallback bool) (bool, error) {
	v := env(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}
