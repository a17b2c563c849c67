package config

import (
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Config holds the service's runtime settings, all read from environment
// variables with sensible defaults.
type Config struct {
	Port     int
	LogLevel string
	GinMode  string
}

// Load reads configuration from the environment. An unparseable PORT falls
// back to the default with a warning rather than failing startup.
func Load() Config {
	cfg := Config{
		Port:     8080,
		LogLevel: getEnv("LOG_LEVEL", "info"),
		GinMode:  getEnv("GIN_MODE", gin.ReleaseMode),
	}

	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 || port > 65535 {
			log.WithField("port", raw).Warn("Invalid PORT, using default 8080")
		} else {
			cfg.Port = port
		}
	}

	return cfg
}

// getEnv gets environment variable with fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
