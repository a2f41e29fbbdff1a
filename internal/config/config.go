package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Insights InsightsConfig
	Swagger  bool
}

type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
}

type InsightsConfig struct {
	// Seed makes tip selection reproducible; nil means seeded from entropy.
	Seed *uint64
}

func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// Load reads .env from the working directory when present, then the
// process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnv("SERVER_PORT", "5000"),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 10),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		Swagger: getEnvAsBool("SWAGGER_ENABLED", true),
	}

	if raw := strings.TrimSpace(getEnv("INSIGHTS_SEED", "")); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, errors.New("INSIGHTS_SEED must be an unsigned integer")
		}
		cfg.Insights.Seed = &seed
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, seconds int) time.Duration {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return time.Duration(value) * time.Second
	}
	return time.Duration(seconds) * time.Second
}
