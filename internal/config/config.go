// Package config reads service configuration from the environment.
package config

import (
	"fmt"
	"os"
)

const (
	BackendJSONFile = "jsonfile"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

type Config struct {
	// Backend selects the event log implementation:
	// jsonfile (default), sqlite, or postgres.
	Backend string

	EventLogFile string
	SQLitePath   string
	PostgresDSN  string

	ListenAddr string
}

func Load() (Config, error) {
	cfg := Config{
		Backend:      getenv("EVENT_STORE_BACKEND", BackendJSONFile),
		EventLogFile: getenv("EVENT_LOG_FILE", "log.json"),
		SQLitePath:   getenv("SQLITE_PATH", "events.db"),
		PostgresDSN:  os.Getenv("POSTGRES_DSN"),
		ListenAddr:   getenv("LISTEN_ADDR", ":8080"),
	}

	switch cfg.Backend {
	case BackendJSONFile, BackendSQLite:
	case BackendPostgres:
		if cfg.PostgresDSN == "" {
			return Config{}, fmt.Errorf("POSTGRES_DSN is required for the postgres backend")
		}
	default:
		return Config{}, fmt.Errorf("unknown event store backend: %q", cfg.Backend)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
