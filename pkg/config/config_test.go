package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Should load defaults when no environment is set", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, 3000, cfg.Server.Port)
		assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
	})
	t.Run("Should override defaults from IDR_ env vars", func(t *testing.T) {
		t.Setenv("IDR_SERVER_PORT", "8080")
		t.Setenv("IDR_LOG_LEVEL", "debug")
		t.Setenv("IDR_DATABASE_NAME", "idr_test")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "idr_test", cfg.Database.Name)
	})
	t.Run("Should parse duration values from env", func(t *testing.T) {
		t.Setenv("IDR_SERVER_SHUTDOWN_TIMEOUT", "30s")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	})
	t.Run("Should reject an invalid log level", func(t *testing.T) {
		t.Setenv("IDR_LOG_LEVEL", "loud")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestServerConfig_Addr(t *testing.T) {
	t.Run("Should join host and port", func(t *testing.T) {
		cfg := ServerConfig{Host: "127.0.0.1", Port: 3000}
		assert.Equal(t, "127.0.0.1:3000", cfg.Addr())
	})
}

func TestTransformEnvKey(t *testing.T) {
	t.Run("Should map section and field names", func(t *testing.T) {
		assert.Equal(t, "server.shutdown_timeout", transformEnvKey("IDR_SERVER_SHUTDOWN_TIMEOUT"))
		assert.Equal(t, "database.ssl_mode", transformEnvKey("IDR_DATABASE_SSL_MODE"))
		assert.Equal(t, "log.level", transformEnvKey("IDR_LOG_LEVEL"))
	})
}
