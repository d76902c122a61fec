package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

// clearEnv makes sure no CALC_ variable from the outer environment leaks in.
func clearEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		"CALC_SERVER_PORT":                     "",
		"CALC_SERVER_LOG_LEVEL":                "",
		"CALC_SERVER_SHUTDOWN_TIMEOUT_SECONDS": "",
	})
}

// TestLoadDefaults verifies that Load falls back to the documented defaults
// when neither environment variables nor a config file are present.
func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFrom(t.TempDir())

	require.NoError(t, err, "LoadFrom() should not return an error with default values")
	require.NotNil(t, cfg, "LoadFrom() should return a non-nil config")
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSeconds)
}

// TestLoadFromEnv verifies that Load correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	setupEnv(t, map[string]string{
		"CALC_SERVER_PORT":                     "9090",
		"CALC_SERVER_LOG_LEVEL":                "debug",
		"CALC_SERVER_SHUTDOWN_TIMEOUT_SECONDS": "3",
	})

	cfg, err := LoadFrom(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port, "Server port should be loaded from environment variables")
	assert.Equal(t, "debug", cfg.Server.LogLevel, "Log level should be loaded from environment variables")
	assert.Equal(t, 3, cfg.Server.ShutdownTimeoutSeconds)
}

// TestLoadFromFile verifies config.yaml is read and that env still wins over it.
func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	content := "server:\n  port: 7070\n  log_level: warn\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Server.LogLevel)

	setupEnv(t, map[string]string{"CALC_SERVER_PORT": "6060"})

	cfg, err = LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Server.Port, "environment should override config file")
	assert.Equal(t, "warn", cfg.Server.LogLevel)
}

// TestLoadValidationErrors verifies that Load rejects invalid settings.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		errorSubstring string
	}{
		{
			name:           "Invalid port number",
			envVars:        map[string]string{"CALC_SERVER_PORT": "999999"},
			errorSubstring: "config validation failed",
		},
		{
			name:           "Invalid log level",
			envVars:        map[string]string{"CALC_SERVER_LOG_LEVEL": "invalid-level"},
			errorSubstring: "config validation failed",
		},
		{
			name:           "Negative shutdown timeout",
			envVars:        map[string]string{"CALC_SERVER_SHUTDOWN_TIMEOUT_SECONDS": "-1"},
			errorSubstring: "config validation failed",
		},
		{
			name:           "Non-numeric port",
			envVars:        map[string]string{"CALC_SERVER_PORT": "not-a-port"},
			errorSubstring: "failed to unmarshal config",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			setupEnv(t, tc.envVars)

			cfg, err := LoadFrom(t.TempDir())

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tc.errorSubstring)
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [unterminated"), 0o600))

	_, err := LoadFrom(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
