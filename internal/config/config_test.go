package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "margot", cfg.AppUsername)
	assert.Equal(t, "margot", cfg.AppPassword)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Contains(t, cfg.DBDSN, "parseTime=true")
	assert.Contains(t, cfg.DBDSN, "multiStatements=true")
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("APP_USERNAME", "moritz")
	t.Setenv("SESSION_TTL", "1h")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "moritz", cfg.AppUsername)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
}

func TestValidate(t *testing.T) {
	cfg := Load()
	require.NoError(t, cfg.Validate())

	t.Run("bad port", func(t *testing.T) {
		cfg := Load()
		cfg.Port = "not-a-port"
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty credentials", func(t *testing.T) {
		cfg := Load()
		cfg.AppPassword = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("ttl too short", func(t *testing.T) {
		cfg := Load()
		cfg.SessionTTL = time.Second
		assert.Error(t, cfg.Validate())
	})
}
