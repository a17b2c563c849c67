package config

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv registers the restore; unset so Load sees a clean environment.
	for _, key := range []string{"PORT", "LOG_LEVEL", "GIN_MODE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, gin.ReleaseMode, cfg.GinMode)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GIN_MODE", gin.DebugMode)

	cfg := Load()
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, gin.DebugMode, cfg.GinMode)
}

func TestLoadInvalidPortFallsBack(t *testing.T) {
	tests := []string{"abc", "-1", "0", "70000"}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			t.Setenv("PORT", raw)
			cfg := Load()
			assert.Equal(t, 8080, cfg.Port)
		})
	}
}
