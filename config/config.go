// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Redis   RedisConfig
	Gemini  GeminiConfig
	Email   EmailConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// StorageConfig holds snapshot storage configuration.
// DSN selects the backend: a postgres:// URL opens PostgreSQL, anything
// else is treated as a SQLite file path.
type StorageConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig holds the optional oracle cache configuration.
type RedisConfig struct {
	URL     string
	Enabled bool
	TTL     time.Duration
}

// GeminiConfig holds Gemini oracle configuration.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// EmailConfig holds agenda reminder email configuration.
type EmailConfig struct {
	ResendAPIKey  string
	FromName      string
	FromEmail     string
	ToEmail       string
	WorkerEnabled bool
	PollInterval  time.Duration
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Storage: StorageConfig{
			DSN:             getEnv("STORAGE_DSN", "dashboard.db"),
			MaxOpenConns:    getEnvAsInt("STORAGE_MAX_OPEN_CONNS", 5),
			MaxIdleConns:    getEnvAsInt("STORAGE_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getEnvAsDuration("STORAGE_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			URL:     getEnv("REDIS_URL", "redis://localhost:6379/0"),
			Enabled: getEnvAsBool("REDIS_CACHE_ENABLED", false),
			TTL:     getEnvAsDuration("REDIS_CACHE_TTL", 6*time.Hour),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Email: EmailConfig{
			ResendAPIKey:  getEnv("RESEND_API_KEY", ""),
			FromName:      getEnv("RESEND_FROM_NAME", "Painel Pessoal"),
			FromEmail:     getEnv("RESEND_FROM_EMAIL", "onboarding@resend.dev"),
			ToEmail:       getEnv("REMINDER_TO_EMAIL", ""),
			WorkerEnabled: getEnvAsBool("REMINDER_WORKER_ENABLED", false),
			PollInterval:  getEnvAsDuration("REMINDER_POLL_INTERVAL", time.Hour),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
