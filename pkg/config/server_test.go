package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearServerEnv isolates a test from the caller's environment.
func clearServerEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CONFIG_FILE", "PORT", "ALLOWED_ORIGINS", "PUBLIC_DIR", "LOG_LEVEL", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}
}

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "news.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadServerConfig_Defaults(t *testing.T) {
	clearServerEnv(t)

	cfg, err := LoadServerConfig()
	require.NoError(t, err)

	want := ServerConfig{
		Port:            3000,
		AllowedOrigins:  []string{"http://localhost:3000"},
		LogLevel:        "info",
		ShutdownTimeout: 5 * time.Second,
	}
	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Errorf("LoadServerConfig() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "0.0.0.0:3000", cfg.Addr())
	assert.Equal(t, "http://localhost:3000", cfg.BaseURL())
}

func TestLoadServerConfig_Env(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("ALLOWED_ORIGINS", "https://news.example.com, http://localhost:5173")
	t.Setenv("PUBLIC_DIR", "/srv/public")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")

	cfg, err := LoadServerConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, []string{"https://news.example.com", "http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, "/srv/public", cfg.PublicDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestLoadServerConfig_InvalidValuesFallBack(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, cfg *ServerConfig)
	}{
		{name: "port not a number", key: "PORT", value: "http", check: func(t *testing.T, cfg *ServerConfig) {
			assert.Equal(t, DefaultPort, cfg.Port)
		}},
		{name: "port zero", key: "PORT", value: "0", check: func(t *testing.T, cfg *ServerConfig) {
			assert.Equal(t, DefaultPort, cfg.Port)
		}},
		{name: "port too large", key: "PORT", value: "70000", check: func(t *testing.T, cfg *ServerConfig) {
			assert.Equal(t, DefaultPort, cfg.Port)
		}},
		{name: "timeout unparsable", key: "SHUTDOWN_TIMEOUT", value: "soon", check: func(t *testing.T, cfg *ServerConfig) {
			assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
		}},
		{name: "timeout negative", key: "SHUTDOWN_TIMEOUT", value: "-1s", check: func(t *testing.T, cfg *ServerConfig) {
			assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
		}},
		{name: "origins blank", key: "ALLOWED_ORIGINS", value: " , ", check: func(t *testing.T, cfg *ServerConfig) {
			assert.Equal(t, DefaultAllowedOrigins, cfg.AllowedOrigins)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearServerEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := LoadServerConfig()
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadServerConfig_File(t *testing.T) {
	clearServerEnv(t)
	path := writeConfigFile(t, `
port: 4000
allowed_origins:
  - https://news.example.com
public_dir: ./public
log_level: debug
shutdown_timeout: 15s
`)
	t.Setenv("CONFIG_FILE", path)

	cfg, err := LoadServerConfig()
	require.NoError(t, err)

	want := ServerConfig{
		Port:            4000,
		AllowedOrigins:  []string{"https://news.example.com"},
		PublicDir:       "./public",
		LogLevel:        "debug",
		ShutdownTimeout: 15 * time.Second,
	}
	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Errorf("LoadServerConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadServerConfig_EnvOverridesFile(t *testing.T) {
	clearServerEnv(t)
	path := writeConfigFile(t, "port: 4000\nlog_level: debug\n")
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "5000")

	cfg, err := LoadServerConfig()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DefaultAllowedOrigins, cfg.AllowedOrigins)
}

func TestLoadServerConfig_FileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		clearServerEnv(t)
		t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

		_, err := LoadServerConfig()
		assert.ErrorContains(t, err, "read config file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		clearServerEnv(t)
		t.Setenv("CONFIG_FILE", writeConfigFile(t, "port: [not, a, port\n"))

		_, err := LoadServerConfig()
		assert.ErrorContains(t, err, "parse config file")
	})
}

func TestValidatePort(t *testing.T) {
	assert.NoError(t, ValidatePort(1))
	assert.NoError(t, ValidatePort(65535))
	assert.Error(t, ValidatePort(0))
	assert.Error(t, ValidatePort(65536))
}
