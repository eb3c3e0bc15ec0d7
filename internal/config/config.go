// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ericfisherdev/credcheck/internal/domain/model"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	Backend       model.Backend
	DBPath        string
	PostgresDSN   string
	StaticUsers   string
	ListenAddr    string
	LookupTimeout time.Duration
	LogLevel      string
	LogFormat     string
}

// Load reads configuration from environment variables and returns a validated Config.
// Optional variables with defaults: CREDCHECK_BACKEND (sqlite), CREDCHECK_DB_PATH (users.db),
// CREDCHECK_LISTEN_ADDR (127.0.0.1:8080), CREDCHECK_LOOKUP_TIMEOUT (0, no timeout),
// CREDCHECK_LOG_LEVEL (info), CREDCHECK_LOG_FORMAT (text).
// CREDCHECK_POSTGRES_DSN is required when the backend is postgres.
func Load() (*Config, error) {
	backend := model.BackendSQLite
	if v, ok := os.LookupEnv("CREDCHECK_BACKEND"); ok && v != "" {
		backend = model.Backend(strings.ToLower(strings.TrimSpace(v)))
	}
	switch backend {
	case model.BackendSQLite, model.BackendPostgres, model.BackendStatic:
	default:
		return nil, fmt.Errorf("CREDCHECK_BACKEND has unsupported value %q (want sqlite, postgres or static)", backend)
	}

	dbPath := "users.db"
	if v, ok := os.LookupEnv("CREDCHECK_DB_PATH"); ok && v != "" {
		dbPath = v
	}

	postgresDSN := os.Getenv("CREDCHECK_POSTGRES_DSN")
	if backend == model.BackendPostgres && postgresDSN == "" {
		return nil, errors.New("CREDCHECK_POSTGRES_DSN is required when CREDCHECK_BACKEND=postgres")
	}

	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("CREDCHECK_LISTEN_ADDR"); ok && v != "" {
		listenAddr = v
	}

	var lookupTimeout time.Duration
	if v, ok := os.LookupEnv("CREDCHECK_LOOKUP_TIMEOUT"); ok && v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("CREDCHECK_LOOKUP_TIMEOUT has invalid duration %q: %w", v, err)
		}
		if parsed < 0 {
			return nil, fmt.Errorf("CREDCHECK_LOOKUP_TIMEOUT must not be negative, got %s", parsed)
		}
		lookupTimeout = parsed
	}

	logLevel := "info"
	if v, ok := os.LookupEnv("CREDCHECK_LOG_LEVEL"); ok && v != "" {
		logLevel = strings.ToLower(v)
	}
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("CREDCHECK_LOG_LEVEL has unsupported value %q", logLevel)
	}

	logFormat := "text"
	if v, ok := os.LookupEnv("CREDCHECK_LOG_FORMAT"); ok && v != "" {
		logFormat = strings.ToLower(v)
	}
	if logFormat != "text" && logFormat != "json" {
		return nil, fmt.Errorf("CREDCHECK_LOG_FORMAT has unsupported value %q (want text or json)", logFormat)
	}

	return &Config{
		Backend:       backend,
		DBPath:        dbPath,
		PostgresDSN:   postgresDSN,
		StaticUsers:   os.Getenv("CREDCHECK_STATIC_USERS"),
		ListenAddr:    listenAddr,
		LookupTimeout: lookupTimeout,
		LogLevel:      logLevel,
		LogFormat:     logFormat,
	}, nil
}
