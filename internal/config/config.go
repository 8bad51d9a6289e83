package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	GinMode   string
	TZ        string
	DBDriver  string
	DBPath    string
	DBHost    string
	DBPort    string
	DBUser    string
	DBPass    string
	DBName    string
	DBSSLMode string
	DBSeed    bool
}

// findEnvFile walks up from the working directory looking for name.
// It returns "" when no parent holds the file.
func findEnvFile(name string) string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Load reads the store settings of the server from the environment. A .env
// file found in the working directory or any parent is loaded first; values
// already present in the environment win.
func Load() (*Config, error) {
	if envPath := findEnvFile(".env"); envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			return nil, errors.Wrapf(err, "could not load %s", envPath)
		}
	}

	cfg := &Config{
		GinMode:   getenv("GIN_MODE", "debug"),
		TZ:        getenv("TZ", "UTC"),
		DBDriver:  strings.ToLower(getenv("DB_DRIVER", DriverSQLite)),
		DBPath:    getenv("DB_PATH", "catalog.db"),
		DBHost:    getenv("DB_HOST", "localhost"),
		DBPort:    getenv("DB_PORT", "5432"),
		DBUser:    getenv("DB_USER", "postgres"),
		DBPass:    getenv("DB_PASS", ""),
		DBName:    getenv("DB_NAME", "postgres"),
		DBSSLMode: os.Getenv("DB_SSLMODE"),
		DBSeed:    getenv("DB_SEED", "false") == "true",
	}

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	switch cfg.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, errors.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
