package config

import (
	"fmt"
	"os"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	// Driver selects the storage backend. The desktop build ships with
	// sqlite; postgres is available for shared installations.
	Driver string
	// Path to the sqlite store file.
	Path string
	// DSN for the postgres backend.
	DSN string
	// AdminPassword is the cleartext password the seed routine hashes for
	// the default administrator account.
	AdminPassword string
	// Debug enables SQL statement logging.
	Debug bool
}

func Load() (*Config, error) {
	cfg := &Config{
		Driver:        getEnv("DB_DRIVER", DriverSQLite),
		Path:          getEnv("DB_PATH", "sistema_clinico.db"),
		DSN:           getEnv("DB_DSN", ""),
		AdminPassword: getEnv("SEED_ADMIN_PASSWORD", "admin"),
		Debug:         getEnv("DB_DEBUG", "") == "1",
	}

	switch cfg.Driver {
	case DriverSQLite:
		if cfg.Path == "" {
			return nil, fmt.Errorf("invalid config: DB_PATH must not be empty")
		}
	case DriverPostgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("invalid config: DB_DSN is required for the postgres driver")
		}
	default:
		return nil, fmt.Errorf("invalid config: unknown driver %q", cfg.Driver)
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
