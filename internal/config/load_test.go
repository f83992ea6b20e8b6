package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, DefaultLogLevel, cfg.Server.LogLevel)
	assert.Equal(t, DefaultIdentityHeader, cfg.Server.IdentityHeader)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SHAREIT_SERVER_PORT", "9090")
	t.Setenv("SHAREIT_SERVER_LOG_LEVEL", "debug")
	t.Setenv("SHAREIT_SERVER_IDENTITY_HEADER", "X-Acting-User")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "X-Acting-User", cfg.Server.IdentityHeader)
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	t.Run("bad_port", func(t *testing.T) {
		t.Setenv("SHAREIT_SERVER_PORT", "70000")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad_log_level", func(t *testing.T) {
		t.Setenv("SHAREIT_SERVER_LOG_LEVEL", "verbose")

		_, err := Load()
		assert.Error(t, err)
	})
}
