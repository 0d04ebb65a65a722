package config

import (
	"fmt"
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
)

const defaultPort = 8080

// Config holds application configuration sourced from environment variables.
// Database settings stay in the database package, which reads its own DB_*
// variables; token secrets stay in utils for the same reason.
type Config struct {
	Port          int
	RedisAddr     string
	WebhookSecret string
	CORSOrigins   []string
}

// Load reads environment variables and returns a populated Config.
func Load() (Config, error) {
	cfg := Config{
		Port:          defaultPort,
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		WebhookSecret: os.Getenv("PAYMENT_WEBHOOK_SECRET"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT value %q: %w", portStr, err)
		}
		cfg.Port = port
	}

	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = []string{origins}
	}

	if cfg.WebhookSecret == "" {
		return Config{}, fmt.Errorf("PAYMENT_WEBHOOK_SECRET environment variable is required")
	}

	return cfg, nil
}
