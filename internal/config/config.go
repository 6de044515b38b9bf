package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Database
	DBDSN string

	// Login credentials
	AppUsername string
	AppPassword string

	// Sessions
	SessionTTL time.Duration
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "3000"),
		DBDSN:       getEnv("DB_DSN", "user:password@/catfoodtracker?parseTime=true&multiStatements=true"),
		AppUsername: getEnv("APP_USERNAME", "margot"),
		AppPassword: getEnv("APP_PASSWORD", "margot"),
		SessionTTL:  getEnvDuration("SESSION_TTL", 24*time.Hour),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DBDSN == "" {
		errors = append(errors, "database DSN cannot be empty")
	}

	if c.AppUsername == "" || c.AppPassword == "" {
		errors = append(errors, "login credentials cannot be empty")
	}

	if c.SessionTTL < time.Minute {
		errors = append(errors, fmt.Sprintf("invalid session ttl %v: must be at least 1 minute", c.SessionTTL))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
