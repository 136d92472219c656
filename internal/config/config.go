package config

import (
	"os"
	"strconv"
	"strings"

	"roadmap/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig
	Roadmap RoadmapConfig
	Export  ExportConfig
	Log     LogConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port          string
	GinMode       string
	SessionCookie string
	// MaxSessions caps in-memory selection sessions.
	MaxSessions int
}

// RoadmapConfig holds content and initial selection settings
type RoadmapConfig struct {
	// ContentPath points at a .yaml/.yml/.json/.xlsx/.csv file; empty uses the built-in book.
	ContentPath   string
	DefaultYear   string
	DefaultActive int
}

// ExportConfig holds CLI bulk export settings
type ExportConfig struct {
	Workers int
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:  *loadServerConfig(),
		Roadmap: *loadRoadmapConfig(),
		Export:  *loadExportConfig(),
		Log:     LogConfig{Level: getEnvOrDefault("LOG_LEVEL", "INFO")},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:          getEnvOrDefault("PORT", "8080"),
		GinMode:       getEnvOrDefault("GIN_MODE", "debug"),
		SessionCookie: getEnvOrDefault("SESSION_COOKIE", "roadmap_session"),
		MaxSessions:   getEnvIntOrDefault("SESSION_MAX", 10000),
	}
}

func loadRoadmapConfig() *RoadmapConfig {
	return &RoadmapConfig{
		ContentPath:   strings.TrimSpace(os.Getenv("ROADMAP_CONTENT")),
		DefaultYear:   getEnvOrDefault("ROADMAP_YEAR", "2024"),
		DefaultActive: getEnvIntOrDefault("ROADMAP_ACTIVE", 1),
	}
}

func loadExportConfig() *ExportConfig {
	return &ExportConfig{
		Workers: getEnvIntOrDefault("EXPORT_WORKERS", 4),
	}
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT is required")
	}
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return errors.ConfigInvalid("PORT must be numeric")
	}
	if config.Server.SessionCookie == "" {
		return errors.ConfigInvalid("SESSION_COOKIE must not be empty")
	}
	if config.Server.MaxSessions < 1 {
		return errors.ConfigInvalid("SESSION_MAX must be at least 1")
	}
	if config.Roadmap.DefaultActive < 1 || config.Roadmap.DefaultActive > 4 {
		return errors.ConfigInvalid("ROADMAP_ACTIVE must be between 1 and 4")
	}
	if config.Export.Workers < 1 {
		return errors.ConfigInvalid("EXPORT_WORKERS must be at least 1")
	}
	return nil
}

// Addr returns the listen address for the web server
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
