package config

import (
	"fmt"
	"os"
	"strconv"
)

// The signing key must be long enough to be worth signing with. Startup
// fails when it is absent; there is no fallback key.
const minSecretLen = 16

type Config struct {
	Server struct {
		Port int
	}
	Database struct {
		Host     string
		Port     int
		User     string
		Password string
		Name     string
		SSLMode  string
	}
	JWT struct {
		Secret string
	}
	SeedAdmin struct {
		Email    string
		Password string
	}
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return def
}

func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Server.Port = getEnvInt("APP_PORT", 8080)

	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnvInt("DB_PORT", 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Name = getEnv("DB_NAME", "vehicle_registry")
	cfg.Database.SSLMode = getEnv("DB_SSL_MODE", "disable")

	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	if len(cfg.JWT.Secret) < minSecretLen {
		return nil, fmt.Errorf("JWT_SECRET must be set and at least %d characters long", minSecretLen)
	}

	cfg.SeedAdmin.Email = getEnv("SEED_ADMIN_EMAIL", "adm@teste.com")
	cfg.SeedAdmin.Password = getEnv("SEED_ADMIN_PASSWORD", "123456")

	return cfg, nil
}
