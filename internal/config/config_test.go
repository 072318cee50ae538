package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProductionConfig() *Config {
	return &Config{
		Port:       "8473",
		JWTSecret:  strings.Repeat("s", 32),
		DBPassword: "a-strong-password",
		DBSSLMode:  "require",
		Env:        "production",
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid production config", func(t *testing.T) {
		require.NoError(t, validProductionConfig().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := validProductionConfig()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := validProductionConfig()
		cfg.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("default jwt secret rejected in production", func(t *testing.T) {
		cfg := validProductionConfig()
		cfg.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("short jwt secret rejected in production", func(t *testing.T) {
		cfg := validProductionConfig()
		cfg.JWTSecret = "short"
		assert.Error(t, cfg.Validate())
	})

	t.Run("weak db password rejected in production", func(t *testing.T) {
		cfg := validProductionConfig()
		cfg.DBPassword = "password"
		assert.Error(t, cfg.Validate())
	})

	t.Run("development allows defaults", func(t *testing.T) {
		cfg := &Config{
			Port:      "8473",
			JWTSecret: "your-secret-key-change-in-production",
			Env:       "development",
		}
		assert.NoError(t, cfg.Validate())
	})
}
