package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis / message bus
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Stream topics and consumer group identity
	CommandStream  string `env:"COMMAND_STREAM" envDefault:"responder-command"`
	LocationStream string `env:"LOCATION_STREAM" envDefault:"responder-update-location"`
	EventStream    string `env:"EVENT_STREAM" envDefault:"responder-event"`
	ConsumerGroup  string `env:"CONSUMER_GROUP" envDefault:"responder-service"`
	ConsumerName   string `env:"CONSUMER_NAME"`

	// How long a single XREADGROUP call blocks waiting for messages
	ConsumerBlock time.Duration `env:"CONSUMER_BLOCK" envDefault:"5s"`

	// Tracing
	OtelEndpoint string `env:"OTEL_ENDPOINT"`
}

// LoadConfig loads configuration from environment variables and an
// optional .env file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getEnvAsInt("REDIS_DB", 0),
		CommandStream:  getEnv("COMMAND_STREAM", "responder-command"),
		LocationStream: getEnv("LOCATION_STREAM", "responder-update-location"),
		EventStream:    getEnv("EVENT_STREAM", "responder-event"),
		ConsumerGroup:  getEnv("CONSUMER_GROUP", "responder-service"),
		ConsumerName:   getEnv("CONSUMER_NAME", defaultConsumerName()),
		ConsumerBlock:  getEnvAsDuration("CONSUMER_BLOCK", 5*time.Second),
		OtelEndpoint:   os.Getenv("OTEL_ENDPOINT"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// defaultConsumerName derives a per-process consumer identity so pending
// stream entries can be traced back to the instance that claimed them.
func defaultConsumerName() string {
	host, err := os.Hostname()
	if err != nil {
		host = "responder-service"
	}
	return fmt.Sprintf("%s-%d", host, os.Getpid())
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns an environment variable parsed as int or a default.
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns an environment variable parsed as
// time.Duration or a default.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
