package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries all runtime settings, loaded once at startup from the
// environment (with an optional .env file for development).
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Platform core API
	PlatformBaseURL string
	PlatformToken   string
	PlatformTimeout time.Duration

	JWTSecret string

	AllowedOrigins []string
}

// Load reads configuration from configs/.env (if present) and the
// process environment. It panics only for a missing JWT secret in
// release mode; everything else has a development default.
func Load() *Config {
	_ = godotenv.Load("configs/.env")

	cfg := &Config{
		Port:            envOr("PORT", "8080"),
		DBHost:          envOr("DB_HOST", "localhost"),
		DBPort:          envOr("DB_PORT", "5432"),
		DBUser:          envOr("DB_USER", "postgres"),
		DBPassword:      envOr("DB_PASSWORD", "postgres"),
		DBName:          envOr("DB_NAME", "aurum_admin"),
		DBSSLMode:       envOr("DB_SSLMODE", "disable"),
		PlatformBaseURL: envOr("PLATFORM_BASE_URL", "http://localhost:9000/api"),
		PlatformToken:   os.Getenv("PLATFORM_API_TOKEN"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AllowedOrigins:  []string{envOr("ADMIN_UI_ORIGIN", "http://localhost:5173")},
	}

	timeout := envOr("PLATFORM_TIMEOUT", "15s")
	d, err := time.ParseDuration(timeout)
	if err != nil {
		d = 15 * time.Second
	}
	cfg.PlatformTimeout = d

	if cfg.JWTSecret == "" {
		if os.Getenv("GIN_MODE") == "release" {
			panic("FATAL: JWT_SECRET environment variable is required in production mode")
		}
		cfg.JWTSecret = "default_super_secret_key" // Development fallback only — DO NOT use in production
	}

	return cfg
}

// DSN builds the postgres connection string for the local admin database.
func (c *Config) DSN() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName + "?sslmode=" + c.DBSSLMode
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
