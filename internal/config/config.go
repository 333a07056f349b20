package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all environment-driven settings, loaded once at startup.
// Storage parameters are optional: empty means not configured, and the
// diagnostic endpoint reports them as such.
type Config struct {
	Port         string
	DatabaseURL  string
	DatabaseName string
	RedisAddr    string

	CORSAllowedOrigins string
	CORSAllowedMethods string
	CORSAllowedHeaders string
}

func Load() *Config {
	// Best-effort .env loading for local development
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "8000"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
		RedisAddr:    os.Getenv("REDIS_URI"),

		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		CORSAllowedMethods: getEnv("CORS_ALLOWED_METHODS", "*"),
		CORSAllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "*"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
